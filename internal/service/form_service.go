package service

import (
	"context"
	"fmt"
	"strconv"

	"keyworker-data/internal/domain"
	"keyworker-data/internal/repository"

	"go.uber.org/zap"
)

// FormService is the save/load surface the form editor talks to.
type FormService struct {
	forms     repository.FormsRepository
	residents repository.ResidentsRepository
	activity  repository.ActivityRepository
	logger    *zap.Logger
}

func NewFormService(forms repository.FormsRepository, residents repository.ResidentsRepository, activity repository.ActivityRepository, logger *zap.Logger) *FormService {
	return &FormService{forms: forms, residents: residents, activity: activity, logger: logger}
}

// Save persists a (possibly partial) form and, when appointments is
// non-nil, replaces the form's appointment set — all in one transaction.
// The audit entry names the resident and month; it is written after the
// commit and never affects the save result.
func (s *FormService) Save(ctx context.Context, actor string, form *domain.Form, appointments []domain.Appointment) (int64, error) {
	formID, err := s.forms.SaveWithAppointments(ctx, form, appointments)
	if err != nil {
		return 0, err
	}

	residentName := strconv.FormatInt(form.ResidentID, 10)
	if resident, lookErr := s.residents.Get(ctx, form.ResidentID); lookErr == nil && resident != nil {
		residentName = resident.Name
	}
	s.audit(ctx, actor, "SAVE FORM",
		fmt.Sprintf("Saved form for %s for month %s", residentName, form.MonthYear))

	return formID, nil
}

// Load returns the stored form and its appointments for an exact
// (resident, month) key, or (nil, nil, nil) when no form exists.
func (s *FormService) Load(ctx context.Context, residentID int64, monthYear string) (*domain.Form, []domain.Appointment, error) {
	form, err := s.forms.Get(ctx, residentID, monthYear)
	if err != nil || form == nil {
		return nil, nil, err
	}
	appointments, err := s.forms.Appointments(ctx, form.ID)
	if err != nil {
		return nil, nil, err
	}
	return form, appointments, nil
}

// Snapshot assembles the export view handed to the document collaborator.
// Returns (nil, nil) when the form does not exist.
func (s *FormService) Snapshot(ctx context.Context, residentID int64, monthYear string) (*domain.FormSnapshot, error) {
	return s.forms.Snapshot(ctx, residentID, monthYear)
}

func (s *FormService) audit(ctx context.Context, user, action, details string) {
	if err := s.activity.Record(ctx, user, action, details); err != nil {
		s.logger.Warn("audit write failed",
			zap.String("action", action), zap.String("user", user), zap.Error(err))
	}
}
