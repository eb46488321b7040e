package service

import (
	"context"

	"keyworker-data/internal/domain"
	"keyworker-data/internal/repository"

	"go.uber.org/zap"
)

// ActivityService exposes the audit trail to the activity-log viewer.
type ActivityService struct {
	activity repository.ActivityRepository
	logger   *zap.Logger
}

func NewActivityService(activity repository.ActivityRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{activity: activity, logger: logger}
}

// Record appends an entry. Unlike the best-effort audit writes that ride
// along with mutations, a direct Record surfaces its error.
func (s *ActivityService) Record(ctx context.Context, user, action, details string) error {
	return s.activity.Record(ctx, user, action, details)
}

// List returns every entry, newest first.
func (s *ActivityService) List(ctx context.Context) ([]domain.ActivityEntry, error) {
	return s.activity.ListAll(ctx)
}
