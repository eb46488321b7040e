package repository

import "keyworker-data/internal/domain"

// formField ties one optional forms column to its struct field. The slice
// below is the single source of truth for column order: Upsert iterates it
// to build statements and scanForm iterates it to read rows, so the two can
// never drift apart.
type formField struct {
	column string
	ptr    **string
}

func formFields(f *domain.Form) []formField {
	return []formField{
		{"key_worker_name", &f.KeyWorkerName},
		{"session_datetime", &f.SessionDatetime},
		{"weight", &f.Weight},
		{"bp", &f.BP},
		{"weight_bp_comments", &f.WeightBPComments},
		{"health_concerns", &f.HealthConcerns},
		{"health_concerns_comments", &f.HealthConcernsComments},
		{"nails_check", &f.NailsCheck},
		{"nails_date", &f.NailsDate},
		{"nails_comments", &f.NailsComments},
		{"hair_check", &f.HairCheck},
		{"hair_date", &f.HairDate},
		{"hair_comments", &f.HairComments},
		{"mar_sheets_check", &f.MarSheetsCheck},
		{"mar_sheets_comments", &f.MarSheetsComments},
		{"finance_cash_box", &f.FinanceCashBox},
		{"finance_top_up", &f.FinanceTopUp},
		{"finance_take_out", &f.FinanceTakeOut},
		{"finance_diary_datetime", &f.FinanceDiaryDatetime},
		{"finance_diary_staff", &f.FinanceDiaryStaff},
		{"shop_q1_toiletries", &f.ShopQ1Toiletries},
		{"shop_q1_comments", &f.ShopQ1Comments},
		{"shop_q2_clothes", &f.ShopQ2Clothes},
		{"shop_q2_comments", &f.ShopQ2Comments},
		{"shop_q3_personal_items", &f.ShopQ3PersonalItems},
		{"shop_q3_comments", &f.ShopQ3Comments},
		{"caredocs_contacts", &f.CaredocsContacts},
		{"caredocs_careplan", &f.CaredocsCareplan},
		{"caredocs_meds", &f.CaredocsMeds},
		{"caredocs_bodymap", &f.CaredocsBodymap},
		{"caredocs_charts", &f.CaredocsCharts},
		{"health_plan_file", &f.HealthPlanFile},
		{"actions_required", &f.ActionsRequired},
		{"family_comm_made", &f.FamilyCommMade},
		{"family_comm_datetime", &f.FamilyCommDatetime},
		{"family_comm_reason", &f.FamilyCommReason},
		{"family_comm_issues", &f.FamilyCommIssues},
		{"current_goal", &f.CurrentGoal},
		{"last_goal_progress", &f.LastGoalProgress},
		{"feeling_response", &f.FeelingResponse},
		{"happy_response", &f.HappyResponse},
		{"other_notes", &f.OtherNotes},
		{"feeling_icons_selected", &f.FeelingIconsSelected},
		{"care_icons_selected", &f.CareIconsSelected},
	}
}
