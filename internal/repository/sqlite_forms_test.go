package repository

import (
	"context"
	"testing"

	"keyworker-data/internal/domain"

	"github.com/stretchr/testify/require"
)

func addResident(t *testing.T, repo *SQLiteResidentsRepository, name string) int64 {
	t.Helper()
	id, err := repo.Add(context.Background(), name, "1990-01-01")
	require.NoError(t, err)
	return id
}

func TestFormsRepository_UpsertInsertThenGet(t *testing.T) {
	db := newTestDB(t)
	residents := NewSQLiteResidentsRepository(db)
	forms := NewSQLiteFormsRepository(db)
	ctx := context.Background()

	residentID := addResident(t, residents, "Jane Doe")

	id, err := forms.Upsert(ctx, &domain.Form{
		ResidentID: residentID,
		MonthYear:  "March 2024",
		Weight:     strp("60kg"),
		NailsCheck: strp(domain.AnswerYes),
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	form, err := forms.Get(ctx, residentID, "March 2024")
	require.NoError(t, err)
	require.NotNil(t, form)
	require.Equal(t, id, form.ID)
	require.Equal(t, "60kg", *form.Weight)
	require.Equal(t, domain.AnswerYes, *form.NailsCheck)

	// Fields absent from the payload stay at the schema default.
	require.Nil(t, form.BP)
	require.Nil(t, form.CurrentGoal)

	missing, err := forms.Get(ctx, residentID, "April 2024")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestFormsRepository_UpsertPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	residents := NewSQLiteResidentsRepository(db)
	forms := NewSQLiteFormsRepository(db)
	ctx := context.Background()

	residentID := addResident(t, residents, "Jane Doe")

	first, err := forms.Upsert(ctx, &domain.Form{
		ResidentID: residentID,
		MonthYear:  "March 2024",
		Weight:     strp("60kg"),
	})
	require.NoError(t, err)

	// Second save for the same key carries only bp: weight must survive
	// and no second row may appear.
	second, err := forms.Upsert(ctx, &domain.Form{
		ResidentID: residentID,
		MonthYear:  "March 2024",
		BP:         strp("120/80"),
	})
	require.NoError(t, err)
	require.Equal(t, first, second, "upsert must reuse the existing row")

	form, err := forms.Get(ctx, residentID, "March 2024")
	require.NoError(t, err)
	require.Equal(t, "60kg", *form.Weight)
	require.Equal(t, "120/80", *form.BP)

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM forms WHERE service_user_id = ? AND form_month_year = ?`,
		residentID, "March 2024").Scan(&count))
	require.Equal(t, 1, count)
}

func TestFormsRepository_UpsertUnknownResident(t *testing.T) {
	db := newTestDB(t)
	forms := NewSQLiteFormsRepository(db)

	_, err := forms.Upsert(context.Background(), &domain.Form{
		ResidentID: 4242,
		MonthYear:  "March 2024",
		Weight:     strp("60kg"),
	})
	require.ErrorIs(t, err, ErrForeignKey)
}

func TestFormsRepository_ReplaceAppointments(t *testing.T) {
	db := newTestDB(t)
	residents := NewSQLiteResidentsRepository(db)
	forms := NewSQLiteFormsRepository(db)
	ctx := context.Background()

	residentID := addResident(t, residents, "Jane Doe")
	formID, err := forms.Upsert(ctx, &domain.Form{ResidentID: residentID, MonthYear: "March 2024"})
	require.NoError(t, err)

	err = forms.ReplaceAppointments(ctx, formID, []domain.Appointment{
		{Name: "Dentist", LastSeen: "01/02/2024", NextDue: "01/08/2024", Booked: domain.BookedYes},
		{Name: "Optician", LastSeen: "15/01/2024", NextDue: "15/01/2025", Booked: domain.BookedNA},
	})
	require.NoError(t, err)

	appointments, err := forms.Appointments(ctx, formID)
	require.NoError(t, err)
	require.Len(t, appointments, 2)
	require.Equal(t, "Dentist", appointments[0].Name, "insertion order is preserved")
	require.Equal(t, "Optician", appointments[1].Name)
	require.Equal(t, domain.BookedNA, appointments[1].Booked)

	// A new list replaces, never merges.
	err = forms.ReplaceAppointments(ctx, formID, []domain.Appointment{
		{Name: "Chiropodist", LastSeen: "", NextDue: "01/06/2024", Booked: domain.BookedNo},
	})
	require.NoError(t, err)
	appointments, err = forms.Appointments(ctx, formID)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	require.Equal(t, "Chiropodist", appointments[0].Name)

	// Empty list clears.
	require.NoError(t, forms.ReplaceAppointments(ctx, formID, []domain.Appointment{}))
	appointments, err = forms.Appointments(ctx, formID)
	require.NoError(t, err)
	require.Empty(t, appointments)
}

func TestFormsRepository_SaveWithAppointmentsAtomic(t *testing.T) {
	db := newTestDB(t)
	residents := NewSQLiteResidentsRepository(db)
	forms := NewSQLiteFormsRepository(db)
	ctx := context.Background()

	residentID := addResident(t, residents, "Jane Doe")

	formID, err := forms.SaveWithAppointments(ctx,
		&domain.Form{ResidentID: residentID, MonthYear: "March 2024", Weight: strp("60kg")},
		[]domain.Appointment{{Name: "Dentist", Booked: domain.BookedYes}})
	require.NoError(t, err)

	appointments, err := forms.Appointments(ctx, formID)
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	// A save against a missing resident fails as one unit: no form row,
	// no appointment rows.
	_, err = forms.SaveWithAppointments(ctx,
		&domain.Form{ResidentID: 4242, MonthYear: "March 2024"},
		[]domain.Appointment{{Name: "Dentist", Booked: domain.BookedYes}})
	require.ErrorIs(t, err, ErrForeignKey)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM forms WHERE service_user_id = 4242`).Scan(&count))
	require.Zero(t, count)

	// A nil appointments slice leaves the stored set alone; an empty one
	// clears it.
	_, err = forms.SaveWithAppointments(ctx,
		&domain.Form{ResidentID: residentID, MonthYear: "March 2024", BP: strp("120/80")}, nil)
	require.NoError(t, err)
	appointments, err = forms.Appointments(ctx, formID)
	require.NoError(t, err)
	require.Len(t, appointments, 1, "nil slice must not touch appointments")

	_, err = forms.SaveWithAppointments(ctx,
		&domain.Form{ResidentID: residentID, MonthYear: "March 2024"}, []domain.Appointment{})
	require.NoError(t, err)
	appointments, err = forms.Appointments(ctx, formID)
	require.NoError(t, err)
	require.Empty(t, appointments)
}

func TestFormsRepository_Snapshot(t *testing.T) {
	db := newTestDB(t)
	residents := NewSQLiteResidentsRepository(db)
	forms := NewSQLiteFormsRepository(db)
	ctx := context.Background()

	residentID := addResident(t, residents, "Jane Doe")
	_, err := forms.SaveWithAppointments(ctx,
		&domain.Form{
			ResidentID:    residentID,
			MonthYear:     "March 2024",
			KeyWorkerName: strp("Sam Porter"),
			Weight:        strp("60kg"),
		},
		[]domain.Appointment{{Name: "Dentist", Booked: domain.BookedYes}})
	require.NoError(t, err)

	snap, err := forms.Snapshot(ctx, residentID, "March 2024")
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, "Jane Doe", snap.Resident.Name)
	require.Equal(t, "1990-01-01", snap.Resident.DateOfBirth)
	require.Equal(t, "March 2024", snap.MonthYear)
	require.Equal(t, "Sam Porter", *snap.Form.KeyWorkerName)
	require.Len(t, snap.Appointments, 1)

	missing, err := forms.Snapshot(ctx, residentID, "April 2024")
	require.NoError(t, err)
	require.Nil(t, missing)
}
