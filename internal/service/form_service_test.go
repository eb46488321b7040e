package service

import (
	"context"
	"testing"

	"keyworker-data/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestFormService_SaveAndLoad(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	residentID, err := app.Residents.Add(ctx, "staff", "Jane Doe", "1990-01-01")
	require.NoError(t, err)

	formID, err := app.Forms.Save(ctx, "staff", &domain.Form{
		ResidentID:    residentID,
		MonthYear:     "March 2024",
		KeyWorkerName: strp("Sam Porter"),
		Weight:        strp("60kg"),
	}, []domain.Appointment{
		{Name: "Dentist", Booked: domain.BookedYes},
		{Name: "Optician", Booked: domain.BookedNA},
	})
	require.NoError(t, err)
	require.NotZero(t, formID)

	entry := lastActivity(t, app)
	require.Equal(t, "SAVE FORM", entry.Action)
	require.Equal(t, "staff", entry.User)
	require.Equal(t, "Saved form for Jane Doe for month March 2024", entry.Details)

	form, appointments, err := app.Forms.Load(ctx, residentID, "March 2024")
	require.NoError(t, err)
	require.Equal(t, formID, form.ID)
	require.Equal(t, "Sam Porter", *form.KeyWorkerName)
	require.Equal(t, "60kg", *form.Weight)
	require.Nil(t, form.BP)
	require.Len(t, appointments, 2)
	require.Equal(t, "Dentist", appointments[0].Name)
}

func TestFormService_LoadMissingMonth(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	residentID, err := app.Residents.Add(ctx, "staff", "Jane Doe", "1990-01-01")
	require.NoError(t, err)

	form, appointments, err := app.Forms.Load(ctx, residentID, "March 2024")
	require.NoError(t, err)
	require.Nil(t, form)
	require.Nil(t, appointments)
}

func TestFormService_Snapshot(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()

	residentID, err := app.Residents.Add(ctx, "staff", "Jane Doe", "1990-01-01")
	require.NoError(t, err)

	_, err = app.Forms.Save(ctx, "staff", &domain.Form{
		ResidentID: residentID,
		MonthYear:  "March 2024",
		Weight:     strp("60kg"),
	}, []domain.Appointment{{Name: "Dentist", Booked: domain.BookedYes}})
	require.NoError(t, err)

	snap, err := app.Forms.Snapshot(ctx, residentID, "March 2024")
	require.NoError(t, err)
	require.NotNil(t, snap)
	require.Equal(t, "Jane Doe", snap.Resident.Name)
	require.Equal(t, "March 2024", snap.MonthYear)
	require.Equal(t, "60kg", *snap.Form.Weight)
	require.Len(t, snap.Appointments, 1)

	missing, err := app.Forms.Snapshot(ctx, residentID, "April 2024")
	require.NoError(t, err)
	require.Nil(t, missing)
}
