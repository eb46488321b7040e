package repository

import (
	"context"

	"keyworker-data/internal/domain"
)

// ActivityRepository is the append-only audit trail. Entries carry a
// database-assigned timestamp and are never updated or deleted.
type ActivityRepository interface {
	Record(ctx context.Context, user, action, details string) error

	// ListAll returns every entry, newest first.
	ListAll(ctx context.Context) ([]domain.ActivityEntry, error)
}
