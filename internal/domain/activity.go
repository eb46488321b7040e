package domain

import "time"

// ActivityEntry is one append-only audit record (activity_log table).
// Timestamps are assigned by the database at insert; entries are never
// updated or deleted.
type ActivityEntry struct {
	ID        int64     `db:"id"`
	Timestamp time.Time `db:"timestamp"`
	User      string    `db:"user"`
	Action    string    `db:"action"`
	Details   string    `db:"details"`
}
