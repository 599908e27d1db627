package store

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Migrate brings the schema up to the current version, tracked via
// PRAGMA user_version, all inside one transaction.
func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}

	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1: tables ----

	stmts := []string{`
CREATE TABLE IF NOT EXISTS candidates (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  email TEXT NOT NULL,
  phone TEXT NOT NULL DEFAULT '',
  enrollment_no TEXT NOT NULL,
  branch TEXT NOT NULL,
  semester INTEGER NOT NULL DEFAULT 1,
  batch TEXT NOT NULL,
  average REAL NOT NULL DEFAULT 0,
  backlogs_current INTEGER NOT NULL DEFAULT 0,
  backlogs_history INTEGER NOT NULL DEFAULT 0,
  tenth_percent REAL NOT NULL DEFAULT 0,
  twelfth_percent REAL NOT NULL DEFAULT 0,
  skills TEXT NOT NULL DEFAULT '[]',
  projects TEXT NOT NULL DEFAULT '[]',
  certifications TEXT NOT NULL DEFAULT '[]',
  linkedin TEXT NOT NULL DEFAULT '',
  github TEXT NOT NULL DEFAULT '',
  portfolio TEXT NOT NULL DEFAULT '',
  resume_text TEXT NOT NULL DEFAULT '',
  resume_parsed TEXT NOT NULL DEFAULT '{}',
  placement_status TEXT NOT NULL DEFAULT 'unplaced',
  placed_company_id INTEGER NOT NULL DEFAULT 0,
  placement_package REAL NOT NULL DEFAULT 0,
  placement_date TEXT NOT NULL DEFAULT '',
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);`, `
CREATE UNIQUE INDEX IF NOT EXISTS idx_candidates_enrollment
ON candidates(enrollment_no);`, `
CREATE INDEX IF NOT EXISTS idx_candidates_branch_batch
ON candidates(branch, batch);`, `
CREATE TABLE IF NOT EXISTS companies (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  industry TEXT NOT NULL DEFAULT '',
  website TEXT NOT NULL DEFAULT '',
  contact_email TEXT NOT NULL DEFAULT '',
  verified INTEGER NOT NULL DEFAULT 0,
  active INTEGER NOT NULL DEFAULT 1,
  created_at TEXT NOT NULL
);`, `
CREATE TABLE IF NOT EXISTS postings (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  company_id INTEGER NOT NULL REFERENCES companies(id),
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  job_type TEXT NOT NULL DEFAULT 'full-time',
  package_min REAL NOT NULL DEFAULT 0,
  package_max REAL NOT NULL DEFAULT 0,
  locations TEXT NOT NULL DEFAULT '[]',
  criteria TEXT NOT NULL DEFAULT '{}',
  required_skills TEXT NOT NULL DEFAULT '[]',
  preferred_skills TEXT NOT NULL DEFAULT '[]',
  deadline TEXT NOT NULL DEFAULT '',
  openings INTEGER NOT NULL DEFAULT 1,
  status TEXT NOT NULL DEFAULT 'draft',
  applications_count INTEGER NOT NULL DEFAULT 0,
  shortlisted_count INTEGER NOT NULL DEFAULT 0,
  selected_count INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);`, `
CREATE INDEX IF NOT EXISTS idx_postings_status
ON postings(status);`, `
CREATE TABLE IF NOT EXISTS applications (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  posting_id INTEGER NOT NULL REFERENCES postings(id),
  candidate_id INTEGER NOT NULL REFERENCES candidates(id),
  status TEXT NOT NULL DEFAULT 'applied',
  cover_letter TEXT NOT NULL DEFAULT '',
  fit TEXT NOT NULL DEFAULT '{}',
  rounds TEXT NOT NULL DEFAULT '[]',
  applied_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);`, `
CREATE UNIQUE INDEX IF NOT EXISTS idx_applications_pair
ON applications(posting_id, candidate_id);`, `
CREATE INDEX IF NOT EXISTS idx_applications_status
ON applications(status, applied_at);`, `
CREATE TABLE IF NOT EXISTS application_events (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  application_id INTEGER NOT NULL REFERENCES applications(id),
  event TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  at TEXT NOT NULL
);`, `
CREATE INDEX IF NOT EXISTS idx_application_events_app
ON application_events(application_id, id);`, `
CREATE TABLE IF NOT EXISTS notifications (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  recipient_id INTEGER NOT NULL,
  type TEXT NOT NULL,
  title TEXT NOT NULL,
  message TEXT NOT NULL DEFAULT '',
  entity_type TEXT NOT NULL DEFAULT '',
  entity_id INTEGER NOT NULL DEFAULT 0,
  read INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);`, `
CREATE INDEX IF NOT EXISTS idx_notifications_recipient
ON notifications(recipient_id, created_at);`,
	}

	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// JSON TEXT column helpers. Reads tolerate garbage the same way the rest of
// the store does: a bad blob decodes to the zero value.

func encodeJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func decodeJSON(s string, v any) {
	_ = json.Unmarshal([]byte(s), v)
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}
