package repository

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Typed outcomes for the store boundary. Callers match with errors.Is;
// everything else coming out of a repository is a generic storage failure.
//
// Lookups never produce a not-found error: a missing row is returned as
// (nil, nil) so that "absent" stays an ordinary result, not a failure.
var (
	// ErrAlreadyExists is returned when a unique key collides: a taken
	// username, a duplicate resident name, or a second form for the same
	// (resident, month) pair.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrForeignKey is returned when a write references a row that does
	// not exist, e.g. a form for a deleted resident.
	ErrForeignKey = errors.New("referenced record does not exist")
)

// mapError converts driver constraint errors into the typed outcomes above.
// Anything unrecognized is returned wrapped with the given context.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w", op, ErrForeignKey)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
