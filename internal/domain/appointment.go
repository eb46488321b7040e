package domain

// Booked states an appointment row can hold.
const (
	BookedYes = "Yes"
	BookedNo  = "No"
	BookedNA  = "N/A"
)

// Appointment is a child row of exactly one Form (appointments table).
// Rows carry no identity across saves: a form's whole appointment set is
// replaced atomically on every save.
type Appointment struct {
	FormID   int64  `db:"form_id"`
	Name     string `db:"name"`
	LastSeen string `db:"last_seen"`
	NextDue  string `db:"next_due"`
	Booked   string `db:"booked"` // "Yes"/"No"/"N/A"
}
