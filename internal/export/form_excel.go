package export

import (
	"bytes"
	"fmt"

	"keyworker-data/internal/domain"

	"github.com/xuri/excelize/v2"
)

// AppointmentHeader is the column row of the appointments table.
var AppointmentHeader = []string{"Appointment", "Last Seen", "Next Due", "Booked"}

// FormWorkbook renders one form snapshot as a spreadsheet and returns the
// file bytes. The layout mirrors the printed monthly report: identity
// block, appointments table, then every form section as label/value rows.
func FormWorkbook(snap *domain.FormSnapshot) ([]byte, error) {
	f := excelize.NewFile()
	// Don't defer Close() before WriteTo; the file has to stay open.

	sheetName := "Monthly Form"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	row := 1
	var setErr error
	set := func(col string, r int, v string) {
		if err := f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, r), v); err != nil && setErr == nil {
			setErr = fmt.Errorf("set cell %s%d: %w", col, r, err)
		}
	}
	pair := func(label, value string) {
		set("A", row, label)
		set("B", row, value)
		row++
	}

	// Identity block
	pair("Service User", snap.Resident.Name)
	pair("Date of Birth", snap.Resident.DateOfBirth)
	pair("Month", snap.MonthYear)
	pair("Key Worker", str(snap.Form.KeyWorkerName))
	pair("Session Date", str(snap.Form.SessionDatetime))
	row++

	// Appointments table
	set("A", row, "Appointments")
	row++
	for i, h := range AppointmentHeader {
		col, _ := excelize.ColumnNumberToName(i + 1)
		set(col, row, h)
	}
	row++
	if len(snap.Appointments) == 0 {
		set("A", row, "No appointments added for this month.")
		row++
	}
	for _, a := range snap.Appointments {
		set("A", row, a.Name)
		set("B", row, a.LastSeen)
		set("C", row, a.NextDue)
		set("D", row, a.Booked)
		row++
	}
	row++

	sections := []struct {
		title string
		pairs [][2]string
	}{
		{"Health Checks", [][2]string{
			{"Weight", str(snap.Form.Weight)},
			{"Blood Pressure", str(snap.Form.BP)},
			{"Weight/BP Comments", str(snap.Form.WeightBPComments)},
			{"Health Concerns", str(snap.Form.HealthConcerns)},
			{"Health Concerns Comments", str(snap.Form.HealthConcernsComments)},
			{"Nails Check", str(snap.Form.NailsCheck)},
			{"Nails Due Date", str(snap.Form.NailsDate)},
			{"Nails Comments", str(snap.Form.NailsComments)},
			{"Hair Check", str(snap.Form.HairCheck)},
			{"Hair Due Date", str(snap.Form.HairDate)},
			{"Hair Comments", str(snap.Form.HairComments)},
		}},
		{"Medication", [][2]string{
			{"MAR Sheets Correct", str(snap.Form.MarSheetsCheck)},
			{"MAR Sheets Comments", str(snap.Form.MarSheetsComments)},
		}},
		{"Finance", [][2]string{
			{"Cash Box Balance", str(snap.Form.FinanceCashBox)},
			{"Top Up Needed", str(snap.Form.FinanceTopUp)},
			{"Amount Taken Out", str(snap.Form.FinanceTakeOut)},
			{"Diary Date/Time", str(snap.Form.FinanceDiaryDatetime)},
			{"Diary Staff", str(snap.Form.FinanceDiaryStaff)},
		}},
		{"Shopping Needs", [][2]string{
			{"Toiletries Needed", str(snap.Form.ShopQ1Toiletries)},
			{"Toiletries Comments", str(snap.Form.ShopQ1Comments)},
			{"Clothes Needed", str(snap.Form.ShopQ2Clothes)},
			{"Clothes Comments", str(snap.Form.ShopQ2Comments)},
			{"Personal Items Needed", str(snap.Form.ShopQ3PersonalItems)},
			{"Personal Items Comments", str(snap.Form.ShopQ3Comments)},
		}},
		{"Care Documentation", [][2]string{
			{"Contacts Up To Date", str(snap.Form.CaredocsContacts)},
			{"Care Plan Up To Date", str(snap.Form.CaredocsCareplan)},
			{"Medication Up To Date", str(snap.Form.CaredocsMeds)},
			{"Body Map Up To Date", str(snap.Form.CaredocsBodymap)},
			{"Charts Up To Date", str(snap.Form.CaredocsCharts)},
			{"Health Plan Up To Date", str(snap.Form.HealthPlanFile)},
			{"Actions Required", str(snap.Form.ActionsRequired)},
		}},
		{"Family Communication", [][2]string{
			{"Contact Made", str(snap.Form.FamilyCommMade)},
			{"Date", str(snap.Form.FamilyCommDatetime)},
			{"Reason", str(snap.Form.FamilyCommReason)},
			{"Issues", str(snap.Form.FamilyCommIssues)},
		}},
		{"Goals and Feedback", [][2]string{
			{"Current Goal", str(snap.Form.CurrentGoal)},
			{"Last Month's Goal Progress", str(snap.Form.LastGoalProgress)},
			{"How They Are Feeling", str(snap.Form.FeelingResponse)},
			{"What Makes Them Happy", str(snap.Form.HappyResponse)},
			{"Feeling Icons", str(snap.Form.FeelingIconsSelected)},
			{"Care Icons", str(snap.Form.CareIconsSelected)},
			{"Other Notes", str(snap.Form.OtherNotes)},
		}},
	}

	for _, sec := range sections {
		set("A", row, sec.title)
		row++
		for _, p := range sec.pairs {
			pair(p[0], p[1])
		}
		row++
	}

	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "D", 34)

	if setErr != nil {
		f.Close()
		return nil, setErr
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
