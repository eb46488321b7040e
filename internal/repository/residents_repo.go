package repository

import (
	"context"

	"keyworker-data/internal/domain"
)

// ResidentsRepository is the canonical directory of care recipients.
type ResidentsRepository interface {
	// Add inserts a resident. Returns ErrAlreadyExists on a name collision.
	Add(ctx context.Context, name, dateOfBirth string) (int64, error)

	// Update renames a resident or corrects their date of birth. Returns
	// ErrAlreadyExists when the new name collides with another resident;
	// on collision no data is mutated.
	Update(ctx context.Context, id int64, name, dateOfBirth string) error

	// Delete removes a resident together with all their forms and those
	// forms' appointments, in one transaction. An interrupted delete
	// leaves either everything or nothing.
	Delete(ctx context.Context, id int64) error

	// Get returns (nil, nil) when no such resident exists.
	Get(ctx context.Context, id int64) (*domain.Resident, error)

	// List returns all residents ordered by name.
	List(ctx context.Context) ([]domain.Resident, error)
}
