package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"keyworker-data/internal/domain"
)

// ErrNoPreviousForm is returned by LoadPrevious when the resident has no
// stored form for the preceding month. The caller's in-progress form is
// untouched: the engine is read-only.
var ErrNoPreviousForm = errors.New("no form for previous month")

// monthKeyLayout is the month key format the application has always used,
// e.g. "March 2024".
const monthKeyLayout = "January 2006"

// PreviousMonthKey computes the calendar month immediately before the given
// key, rolling January back into December of the prior year.
func PreviousMonthKey(monthYear string) (string, error) {
	t, err := time.Parse(monthKeyLayout, monthYear)
	if err != nil {
		return "", fmt.Errorf("invalid month key %q: %w", monthYear, err)
	}
	return t.AddDate(0, -1, 0).Format(monthKeyLayout), nil
}

// LoadPrevious fetches the resident's form for the month before monthYear
// and returns a carry-over projection for the new month, together with the
// previous month's appointment rows for the editor to pre-fill. On a miss
// it returns ErrNoPreviousForm and has no side effects.
func (s *FormService) LoadPrevious(ctx context.Context, residentID int64, monthYear string) (*domain.Form, []domain.Appointment, error) {
	prevKey, err := PreviousMonthKey(monthYear)
	if err != nil {
		return nil, nil, err
	}

	prev, err := s.forms.Get(ctx, residentID, prevKey)
	if err != nil {
		return nil, nil, err
	}
	if prev == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrNoPreviousForm, prevKey)
	}

	appointments, err := s.forms.Appointments(ctx, prev.ID)
	if err != nil {
		return nil, nil, err
	}

	return carryOver(prev, monthYear), appointments, nil
}

// carryOver maps last month's answers onto a fresh form for the new month.
//
// Not carried: key worker name and session date/time (a new session),
// feelings/happy responses and their icon selections (in-the-moment
// answers), and the current goal. Goals roll forward one slot instead:
// last month's "current goal" becomes this month's "last month's goal
// progress". Everything else copies across.
func carryOver(prev *domain.Form, monthYear string) *domain.Form {
	next := &domain.Form{
		ResidentID: prev.ResidentID,
		MonthYear:  monthYear,
	}

	next.Weight = copyField(prev.Weight)
	next.BP = copyField(prev.BP)
	next.WeightBPComments = copyField(prev.WeightBPComments)
	next.HealthConcerns = copyField(prev.HealthConcerns)
	next.HealthConcernsComments = copyField(prev.HealthConcernsComments)
	next.NailsCheck = copyField(prev.NailsCheck)
	next.NailsDate = copyField(prev.NailsDate)
	next.NailsComments = copyField(prev.NailsComments)
	next.HairCheck = copyField(prev.HairCheck)
	next.HairDate = copyField(prev.HairDate)
	next.HairComments = copyField(prev.HairComments)
	next.MarSheetsCheck = copyField(prev.MarSheetsCheck)
	next.MarSheetsComments = copyField(prev.MarSheetsComments)
	next.FinanceCashBox = copyField(prev.FinanceCashBox)
	next.FinanceTopUp = copyField(prev.FinanceTopUp)
	next.FinanceTakeOut = copyField(prev.FinanceTakeOut)
	next.FinanceDiaryDatetime = copyField(prev.FinanceDiaryDatetime)
	next.FinanceDiaryStaff = copyField(prev.FinanceDiaryStaff)
	next.ShopQ1Toiletries = copyField(prev.ShopQ1Toiletries)
	next.ShopQ1Comments = copyField(prev.ShopQ1Comments)
	next.ShopQ2Clothes = copyField(prev.ShopQ2Clothes)
	next.ShopQ2Comments = copyField(prev.ShopQ2Comments)
	next.ShopQ3PersonalItems = copyField(prev.ShopQ3PersonalItems)
	next.ShopQ3Comments = copyField(prev.ShopQ3Comments)
	next.CaredocsContacts = copyField(prev.CaredocsContacts)
	next.CaredocsCareplan = copyField(prev.CaredocsCareplan)
	next.CaredocsMeds = copyField(prev.CaredocsMeds)
	next.CaredocsBodymap = copyField(prev.CaredocsBodymap)
	next.CaredocsCharts = copyField(prev.CaredocsCharts)
	next.HealthPlanFile = copyField(prev.HealthPlanFile)
	next.ActionsRequired = copyField(prev.ActionsRequired)
	next.FamilyCommMade = copyField(prev.FamilyCommMade)
	next.FamilyCommDatetime = copyField(prev.FamilyCommDatetime)
	next.FamilyCommReason = copyField(prev.FamilyCommReason)
	next.FamilyCommIssues = copyField(prev.FamilyCommIssues)
	next.OtherNotes = copyField(prev.OtherNotes)

	next.LastGoalProgress = copyField(prev.CurrentGoal)

	return next
}

func copyField(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
