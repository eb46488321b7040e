package service

import (
	"context"
	"fmt"

	"keyworker-data/internal/domain"
	"keyworker-data/internal/repository"

	"go.uber.org/zap"
)

// ResidentService manages the resident directory. Every mutation is paired
// with an audit entry attributing the action to the acting username; the
// audit write is best-effort and never rolls back the mutation.
type ResidentService struct {
	residents repository.ResidentsRepository
	activity  repository.ActivityRepository
	logger    *zap.Logger
}

func NewResidentService(residents repository.ResidentsRepository, activity repository.ActivityRepository, logger *zap.Logger) *ResidentService {
	return &ResidentService{residents: residents, activity: activity, logger: logger}
}

func (s *ResidentService) Add(ctx context.Context, actor, name, dateOfBirth string) (int64, error) {
	id, err := s.residents.Add(ctx, name, dateOfBirth)
	if err != nil {
		return 0, err
	}
	s.audit(ctx, actor, "ADD SERVICE USER", fmt.Sprintf("Added: %s", name))
	return id, nil
}

func (s *ResidentService) Update(ctx context.Context, actor string, id int64, name, dateOfBirth string) error {
	if err := s.residents.Update(ctx, id, name, dateOfBirth); err != nil {
		return err
	}
	s.audit(ctx, actor, "UPDATE SERVICE USER",
		fmt.Sprintf("Updated ID %d to Name: %s, DOB: %s", id, name, dateOfBirth))
	return nil
}

// Delete removes the resident and, through the repository's transaction,
// every form and appointment belonging to them. Deleting an unknown id is
// a no-op and leaves no audit entry.
func (s *ResidentService) Delete(ctx context.Context, actor string, id int64) error {
	resident, err := s.residents.Get(ctx, id)
	if err != nil {
		return err
	}
	if resident == nil {
		return nil
	}
	if err := s.residents.Delete(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, actor, "DELETE SERVICE USER", fmt.Sprintf("Deleted: %s (ID: %d)", resident.Name, id))
	return nil
}

func (s *ResidentService) Get(ctx context.Context, id int64) (*domain.Resident, error) {
	return s.residents.Get(ctx, id)
}

func (s *ResidentService) List(ctx context.Context) ([]domain.Resident, error) {
	return s.residents.List(ctx)
}

func (s *ResidentService) audit(ctx context.Context, user, action, details string) {
	if err := s.activity.Record(ctx, user, action, details); err != nil {
		s.logger.Warn("audit write failed",
			zap.String("action", action), zap.String("user", user), zap.Error(err))
	}
}
