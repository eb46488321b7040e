package domain

import "time"

// Roles a staff account can hold (users.role).
const (
	RoleStaff      = "staff"
	RoleSupervisor = "supervisor"
)

// User is a staff account record (users table). Usernames are derived as
// firstname.lastname, lowercase, and are unique.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`      // NOT NULL, UNIQUE
	PasswordHash string `db:"password_hash"` // NOT NULL, bcrypt or legacy sha256 hex
	Role         string `db:"role"`          // NOT NULL, DEFAULT 'staff'
	FirstLogin   bool   `db:"first_login"`   // NOT NULL, DEFAULT 1; forces a password change
}

// UserSession is the in-memory result of a successful login. It never
// touches the database; the session ID only identifies this process run.
type UserSession struct {
	SessionID  string
	UserID     int64
	Username   string
	Role       string
	FirstLogin bool
	IssuedAt   time.Time
}

// IsSupervisor reports whether the session may perform account management.
func (s *UserSession) IsSupervisor() bool {
	return s != nil && s.Role == RoleSupervisor
}
