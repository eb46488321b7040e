package domain

// Resident is a care recipient (service_users table). Names are unique
// across the home; date of birth is kept as the free-text string the UI
// collected, matching what older database files already hold.
type Resident struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`          // NOT NULL, UNIQUE
	DateOfBirth string `db:"date_of_birth"` // nullable in older files
}
