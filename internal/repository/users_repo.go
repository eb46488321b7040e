package repository

import (
	"context"

	"keyworker-data/internal/domain"
)

// UsersRepository is the credential store. Password digest comparison lives
// in the auth service; this layer only moves rows.
type UsersRepository interface {
	// GetByUsername returns (nil, nil) when no such account exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetByID returns (nil, nil) when no such account exists.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// Create inserts a new account with first_login set. Returns
	// ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, username, passwordHash, role string) (int64, error)

	// SetPasswordHash replaces the stored digest and sets first_login.
	// A self-initiated change passes firstLogin=false; a supervisor reset
	// passes true, forcing the user back through the change flow.
	SetPasswordHash(ctx context.Context, id int64, passwordHash string, firstLogin bool) error

	// Delete removes the account. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id int64) error

	// List returns all accounts ordered by username.
	List(ctx context.Context) ([]domain.User, error)

	// EnsureDefaultSupervisor seeds the well-known supervisor account iff
	// it does not exist, first_login set so the password must be rotated
	// on first use. Reports whether a row was created.
	EnsureDefaultSupervisor(ctx context.Context, passwordHash string) (bool, error)
}
