package export

import (
	"bytes"
	"testing"

	"keyworker-data/internal/domain"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strp(s string) *string { return &s }

func TestFormWorkbook(t *testing.T) {
	snap := &domain.FormSnapshot{
		Resident:  domain.Resident{ID: 1, Name: "Jane Doe", DateOfBirth: "1990-01-01"},
		MonthYear: "March 2024",
		Form: domain.Form{
			ResidentID:    1,
			MonthYear:     "March 2024",
			KeyWorkerName: strp("Sam Porter"),
			Weight:        strp("60kg"),
			BP:            strp("120/80"),
			CurrentGoal:   strp("join the art group"),
		},
		Appointments: []domain.Appointment{
			{Name: "Dentist", LastSeen: "01/12/2023", NextDue: "01/06/2024", Booked: domain.BookedYes},
			{Name: "Optician", Booked: domain.BookedNA},
		},
	}

	data, err := FormWorkbook(snap)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, []string{"Monthly Form"}, f.GetSheetList())

	cell := func(ref string) string {
		v, err := f.GetCellValue("Monthly Form", ref)
		require.NoError(t, err)
		return v
	}

	// Identity block
	require.Equal(t, "Service User", cell("A1"))
	require.Equal(t, "Jane Doe", cell("B1"))
	require.Equal(t, "Date of Birth", cell("A2"))
	require.Equal(t, "1990-01-01", cell("B2"))
	require.Equal(t, "Month", cell("A3"))
	require.Equal(t, "March 2024", cell("B3"))
	require.Equal(t, "Key Worker", cell("A4"))
	require.Equal(t, "Sam Porter", cell("B4"))

	// Appointments table
	require.Equal(t, "Appointments", cell("A7"))
	require.Equal(t, "Appointment", cell("A8"))
	require.Equal(t, "Booked", cell("D8"))
	require.Equal(t, "Dentist", cell("A9"))
	require.Equal(t, "01/06/2024", cell("C9"))
	require.Equal(t, "Yes", cell("D9"))
	require.Equal(t, "Optician", cell("A10"))
	require.Equal(t, "N/A", cell("D10"))

	// First section follows the appointment rows
	require.Equal(t, "Health Checks", cell("A12"))
	require.Equal(t, "Weight", cell("A13"))
	require.Equal(t, "60kg", cell("B13"))
	require.Equal(t, "Blood Pressure", cell("A14"))
	require.Equal(t, "120/80", cell("B14"))

	rows, err := f.GetRows("Monthly Form")
	require.NoError(t, err)

	var sawGoal bool
	for _, r := range rows {
		if len(r) >= 2 && r[0] == "Current Goal" {
			sawGoal = true
			require.Equal(t, "join the art group", r[1])
		}
	}
	require.True(t, sawGoal)
}

func TestFormWorkbook_NoAppointments(t *testing.T) {
	snap := &domain.FormSnapshot{
		Resident:  domain.Resident{ID: 1, Name: "Jane Doe"},
		MonthYear: "March 2024",
		Form:      domain.Form{ResidentID: 1, MonthYear: "March 2024"},
	}

	data, err := FormWorkbook(snap)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Monthly Form", "A9")
	require.NoError(t, err)
	require.Equal(t, "No appointments added for this month.", v)
}
