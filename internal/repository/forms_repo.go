package repository

import (
	"context"

	"keyworker-data/internal/domain"
)

// FormsRepository stores the monthly wellbeing forms and their appointment
// sub-records. A form is keyed by the unique (resident, month) pair; there
// is never more than one row per key.
type FormsRepository interface {
	// Get performs an exact key lookup, returning (nil, nil) on a miss.
	Get(ctx context.Context, residentID int64, monthYear string) (*domain.Form, error)

	// Upsert saves a (possibly partial) form. If a row already exists for
	// the (resident, month) key, only the fields present in the payload
	// (non-nil pointers) are updated — absent fields keep their stored
	// values. Otherwise a new row is inserted and absent fields take the
	// schema defaults. Returns the stable form id either way.
	//
	// A payload naming a resident that does not exist fails with
	// ErrForeignKey.
	Upsert(ctx context.Context, form *domain.Form) (int64, error)

	// Appointments returns the form's appointment rows in insertion order.
	Appointments(ctx context.Context, formID int64) ([]domain.Appointment, error)

	// ReplaceAppointments deletes every appointment of the form and bulk
	// inserts the given list. An empty list clears the form's
	// appointments. The rows have no identity across saves.
	ReplaceAppointments(ctx context.Context, formID int64, appointments []domain.Appointment) error

	// SaveWithAppointments runs Upsert and ReplaceAppointments as one
	// transaction, so an interrupted save can never leave a form row
	// without its appointment set or vice versa. A nil appointments slice
	// leaves the stored appointments untouched; an empty one clears them.
	SaveWithAppointments(ctx context.Context, form *domain.Form, appointments []domain.Appointment) (int64, error)

	// Snapshot assembles the read-only export view for one form: the form
	// row, its appointments, and the resident's name and date of birth.
	// Returns (nil, nil) when the form does not exist.
	Snapshot(ctx context.Context, residentID int64, monthYear string) (*domain.FormSnapshot, error)
}
