package domain

// Form is one resident's monthly wellbeing record (forms table). The pair
// (ResidentID, MonthYear) is unique; MonthYear is the human month key the
// application has always used, e.g. "March 2024".
//
// Every section field is a *string: nil means the column was absent from
// the save payload and must be left untouched by an update (or take the
// schema default on insert). Yes/no answers are stored as the literal
// strings "Yes" and "No" — widgets read the same literals back, so the
// textual encoding is part of the persisted contract.
type Form struct {
	ID         int64  `db:"id"`
	ResidentID int64  `db:"service_user_id"` // NOT NULL, FK to service_users
	MonthYear  string `db:"form_month_year"` // NOT NULL, UNIQUE with service_user_id

	// Session
	KeyWorkerName   *string `db:"key_worker_name"`
	SessionDatetime *string `db:"session_datetime"`

	// Health checks
	Weight                 *string `db:"weight"`
	BP                     *string `db:"bp"`
	WeightBPComments       *string `db:"weight_bp_comments"`
	HealthConcerns         *string `db:"health_concerns"` // "Yes"/"No"
	HealthConcernsComments *string `db:"health_concerns_comments"`
	NailsCheck             *string `db:"nails_check"` // "Yes"/"No"
	NailsDate              *string `db:"nails_date"`
	NailsComments          *string `db:"nails_comments"`
	HairCheck              *string `db:"hair_check"` // "Yes"/"No"
	HairDate               *string `db:"hair_date"`
	HairComments           *string `db:"hair_comments"`

	// Medication sheets
	MarSheetsCheck    *string `db:"mar_sheets_check"` // "Yes"/"No"
	MarSheetsComments *string `db:"mar_sheets_comments"`

	// Finance
	FinanceCashBox       *string `db:"finance_cash_box"`
	FinanceTopUp         *string `db:"finance_top_up"` // "Yes"/"No"
	FinanceTakeOut       *string `db:"finance_take_out"`
	FinanceDiaryDatetime *string `db:"finance_diary_datetime"`
	FinanceDiaryStaff    *string `db:"finance_diary_staff"`

	// Shopping needs
	ShopQ1Toiletries    *string `db:"shop_q1_toiletries"` // "Yes"/"No"
	ShopQ1Comments      *string `db:"shop_q1_comments"`
	ShopQ2Clothes       *string `db:"shop_q2_clothes"` // "Yes"/"No"
	ShopQ2Comments      *string `db:"shop_q2_comments"`
	ShopQ3PersonalItems *string `db:"shop_q3_personal_items"` // "Yes"/"No"
	ShopQ3Comments      *string `db:"shop_q3_comments"`

	// Care documentation currency
	CaredocsContacts *string `db:"caredocs_contacts"` // "Yes"/"No"
	CaredocsCareplan *string `db:"caredocs_careplan"` // "Yes"/"No"
	CaredocsMeds     *string `db:"caredocs_meds"`     // "Yes"/"No"
	CaredocsBodymap  *string `db:"caredocs_bodymap"`  // "Yes"/"No"
	CaredocsCharts   *string `db:"caredocs_charts"`   // "Yes"/"No"
	HealthPlanFile   *string `db:"health_plan_file"`  // "Yes"/"No"
	ActionsRequired  *string `db:"actions_required"`

	// Family communication
	FamilyCommMade     *string `db:"family_comm_made"` // "Yes"/"No"
	FamilyCommDatetime *string `db:"family_comm_datetime"`
	FamilyCommReason   *string `db:"family_comm_reason"`
	FamilyCommIssues   *string `db:"family_comm_issues"`

	// Goals and feedback
	CurrentGoal      *string `db:"current_goal"`
	LastGoalProgress *string `db:"last_goal_progress"`
	FeelingResponse  *string `db:"feeling_response"`
	HappyResponse    *string `db:"happy_response"`
	OtherNotes       *string `db:"other_notes"`

	// Icon selections, stored as comma-joined labels
	FeelingIconsSelected *string `db:"feeling_icons_selected"`
	CareIconsSelected    *string `db:"care_icons_selected"`
}

// Yes/No literals used by every flag column.
const (
	AnswerYes = "Yes"
	AnswerNo  = "No"
)
