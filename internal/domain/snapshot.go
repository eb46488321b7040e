package domain

// FormSnapshot is the read-only view handed to an export collaborator: one
// form, its resolved appointments, and the resident's identifying details.
// The core has no opinion on how the collaborator lays the document out.
type FormSnapshot struct {
	Resident     Resident
	MonthYear    string
	Form         Form
	Appointments []Appointment
}
