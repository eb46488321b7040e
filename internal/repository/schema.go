package repository

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the five application tables if they don't exist and
// appends columns that were added after early deployments. Safe to run on
// every start: CREATE TABLE IF NOT EXISTS plus guarded ALTERs make it a
// no-op against an already-migrated file. Existing rows are never rewritten.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	// Additive migrations. Older database files predate these columns;
	// newer files already have them from the CREATE above.
	guards := []struct {
		table  string
		column string
		ddl    string
	}{
		{"users", "role", "ALTER TABLE users ADD COLUMN role TEXT NOT NULL DEFAULT 'staff'"},
		{"users", "first_login", "ALTER TABLE users ADD COLUMN first_login INTEGER NOT NULL DEFAULT 1"},
		{"forms", "shop_q1_comments", "ALTER TABLE forms ADD COLUMN shop_q1_comments TEXT"},
		{"forms", "shop_q2_comments", "ALTER TABLE forms ADD COLUMN shop_q2_comments TEXT"},
		{"forms", "shop_q3_comments", "ALTER TABLE forms ADD COLUMN shop_q3_comments TEXT"},
		{"forms", "feeling_icons_selected", "ALTER TABLE forms ADD COLUMN feeling_icons_selected TEXT"},
		{"forms", "care_icons_selected", "ALTER TABLE forms ADD COLUMN care_icons_selected TEXT"},
	}
	for _, g := range guards {
		ok, err := columnExists(db, g.table, g.column)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if _, err := db.Exec(g.ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", g.table, g.column, err)
		}
	}

	return nil
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%s)`, table))
	if err != nil {
		return false, fmt.Errorf("table_info %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dfltValue  sql.NullString
			primaryKey int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &dfltValue, &primaryKey); err != nil {
			return false, fmt.Errorf("scan table_info %s: %w", table, err)
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

const schema = `
-- Staff accounts
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL DEFAULT 'staff',
    first_login INTEGER NOT NULL DEFAULT 1
);

-- Care recipients
CREATE TABLE IF NOT EXISTS service_users (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    date_of_birth TEXT
);

-- One wide record per (resident, month)
CREATE TABLE IF NOT EXISTS forms (
    id INTEGER PRIMARY KEY,
    service_user_id INTEGER NOT NULL,
    form_month_year TEXT NOT NULL,
    key_worker_name TEXT, session_datetime TEXT, weight TEXT, bp TEXT,
    weight_bp_comments TEXT, health_concerns TEXT, health_concerns_comments TEXT,
    nails_check TEXT, nails_date TEXT, nails_comments TEXT, hair_check TEXT,
    hair_date TEXT, hair_comments TEXT, mar_sheets_check TEXT,
    mar_sheets_comments TEXT, finance_cash_box TEXT, finance_top_up TEXT,
    finance_take_out TEXT, finance_diary_datetime TEXT, finance_diary_staff TEXT,
    shop_q1_toiletries TEXT, shop_q1_comments TEXT, shop_q2_clothes TEXT, shop_q2_comments TEXT,
    shop_q3_personal_items TEXT, shop_q3_comments TEXT,
    caredocs_contacts TEXT, caredocs_careplan TEXT, caredocs_meds TEXT,
    caredocs_bodymap TEXT, caredocs_charts TEXT, health_plan_file TEXT,
    actions_required TEXT, family_comm_made TEXT, family_comm_datetime TEXT,
    family_comm_reason TEXT, family_comm_issues TEXT, current_goal TEXT,
    last_goal_progress TEXT, feeling_response TEXT, happy_response TEXT,
    other_notes TEXT, feeling_icons_selected TEXT, care_icons_selected TEXT,
    FOREIGN KEY (service_user_id) REFERENCES service_users (id),
    UNIQUE(service_user_id, form_month_year)
);

-- Appointment rows, replaced wholesale on every form save
CREATE TABLE IF NOT EXISTS appointments (
    id INTEGER PRIMARY KEY,
    form_id INTEGER NOT NULL,
    name TEXT, last_seen TEXT, next_due TEXT, booked TEXT,
    FOREIGN KEY (form_id) REFERENCES forms (id)
);

-- Append-only audit trail
CREATE TABLE IF NOT EXISTS activity_log (
    id INTEGER PRIMARY KEY,
    timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
    user TEXT NOT NULL,
    action TEXT NOT NULL,
    details TEXT
);
`
