package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

const applicationCols = `id, posting_id, candidate_id, status, cover_letter, fit, rounds, applied_at, updated_at`

func scanApplication(row interface{ Scan(...any) error }) (domain.Application, error) {
	var a domain.Application
	var fit, rounds, appliedAt, updatedAt string
	err := row.Scan(&a.ID, &a.PostingID, &a.CandidateID, &a.Status,
		&a.CoverLetter, &fit, &rounds, &appliedAt, &updatedAt)
	if err != nil {
		return domain.Application{}, err
	}
	decodeJSON(fit, &a.Fit)
	decodeJSON(rounds, &a.Rounds)
	a.AppliedAt = parseTime(appliedAt)
	a.UpdatedAt = parseTime(updatedAt)
	return a, nil
}

// CreateApplication inserts the application, its first timeline entry, and
// bumps the posting's applications_count in one transaction. The unique
// (posting_id, candidate_id) index plus INSERT OR IGNORE makes a repeat
// apply a clean conflict instead of a constraint error.
func CreateApplication(ctx context.Context, db *sql.DB, a domain.Application) (domain.Application, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Application{}, err
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx, `
INSERT OR IGNORE INTO applications
  (posting_id, candidate_id, status, cover_letter, fit, rounds, applied_at, updated_at)
VALUES (?,?,?,?,?,?,?,?);`,
		a.PostingID, a.CandidateID, domain.StatusApplied, a.CoverLetter,
		encodeJSON(a.Fit), encodeJSON(a.Rounds), fmtTime(now), fmtTime(now))
	if err != nil {
		return domain.Application{}, err
	}

	var changed int
	if err := tx.QueryRowContext(ctx, `SELECT changes();`).Scan(&changed); err != nil {
		return domain.Application{}, err
	}
	if changed == 0 {
		return domain.Application{}, domain.NewError(domain.CodeConflict, "already applied to this posting")
	}
	a.ID, _ = res.LastInsertId()
	a.Status = domain.StatusApplied
	a.AppliedAt = now
	a.UpdatedAt = now

	if _, err := tx.ExecContext(ctx, `
INSERT INTO application_events (application_id, event, description, at)
VALUES (?,?,?,?);`, a.ID, "applied", "Application submitted", fmtTime(now)); err != nil {
		return domain.Application{}, err
	}
	if _, err := tx.ExecContext(ctx, `
UPDATE postings SET applications_count = applications_count + 1 WHERE id = ?;`, a.PostingID); err != nil {
		return domain.Application{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Application{}, err
	}
	a.Timeline = []domain.TimelineEntry{{Event: "applied", Description: "Application submitted", At: now}}
	return a, nil
}

func GetApplication(ctx context.Context, db *sql.DB, id int64) (domain.Application, error) {
	row := db.QueryRowContext(ctx, `SELECT `+applicationCols+` FROM applications WHERE id = ?;`, id)
	a, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return domain.Application{}, domain.NewError(domain.CodeNotFound, "application not found")
	}
	if err != nil {
		return domain.Application{}, err
	}
	a.Timeline, err = ListTimeline(ctx, db, id)
	return a, err
}

// FindApplication looks up the (posting, candidate) pair without loading the
// timeline. sql.ErrNoRows maps to not_found like GetApplication.
func FindApplication(ctx context.Context, db *sql.DB, postingID, candidateID int64) (domain.Application, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+applicationCols+` FROM applications WHERE posting_id = ? AND candidate_id = ?;`,
		postingID, candidateID)
	a, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return domain.Application{}, domain.NewError(domain.CodeNotFound, "application not found")
	}
	return a, err
}

func ListApplicationsByPosting(ctx context.Context, db *sql.DB, postingID int64) ([]domain.Application, error) {
	return listApplications(ctx, db, `posting_id = ?`, postingID)
}

func ListApplicationsByCandidate(ctx context.Context, db *sql.DB, candidateID int64) ([]domain.Application, error) {
	return listApplications(ctx, db, `candidate_id = ?`, candidateID)
}

func listApplications(ctx context.Context, db *sql.DB, where string, arg int64) ([]domain.Application, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+applicationCols+` FROM applications WHERE `+where+` ORDER BY applied_at DESC;`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// StatusSideEffects are the writes that ride along with a status change.
type StatusSideEffects struct {
	// Posting counter column to bump, e.g. "shortlisted_count". Empty means
	// no counter change. The column name is fixed by the caller, never user
	// input.
	BumpCounter string

	// When set, the candidate row is marked placed at this company with
	// this package.
	PlaceCandidate bool
	CompanyID      int64
	Package        float64
}

// UpdateApplicationStatus writes the new status, appends the timeline entry,
// and applies side effects in one transaction.
func UpdateApplicationStatus(ctx context.Context, db *sql.DB, a domain.Application, to domain.ApplicationStatus, description string, fx StatusSideEffects) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE applications SET status = ?, updated_at = ? WHERE id = ? AND status = ?;`,
		to, fmtTime(now), a.ID, a.Status)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Lost a race with another writer. The lifecycle layer re-reads and
		// decides whether the transition is still valid.
		return domain.NewError(domain.CodeConflict, "application changed concurrently")
	}

	if _, err := tx.ExecContext(ctx, `
INSERT INTO application_events (application_id, event, description, at)
VALUES (?,?,?,?);`, a.ID, string(to), description, fmtTime(now)); err != nil {
		return err
	}

	if fx.BumpCounter != "" {
		if _, err := tx.ExecContext(ctx,
			`UPDATE postings SET `+fx.BumpCounter+` = `+fx.BumpCounter+` + 1 WHERE id = ?;`,
			a.PostingID); err != nil {
			return err
		}
	}
	if fx.PlaceCandidate {
		if _, err := tx.ExecContext(ctx, `
UPDATE candidates SET placement_status = ?, placed_company_id = ?, placement_package = ?,
  placement_date = ?, updated_at = ?
WHERE id = ?;`, domain.Placed, fx.CompanyID, fx.Package, fmtTime(now), fmtTime(now), a.CandidateID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// UpdateApplicationRounds replaces the interview round sheet.
func UpdateApplicationRounds(ctx context.Context, db *sql.DB, id int64, rounds []domain.Round) error {
	res, err := db.ExecContext(ctx,
		`UPDATE applications SET rounds = ?, updated_at = ? WHERE id = ?;`,
		encodeJSON(rounds), fmtTime(time.Now()), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewError(domain.CodeNotFound, "application not found")
	}
	return nil
}

func AppendEvent(ctx context.Context, db *sql.DB, applicationID int64, event, description string) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO application_events (application_id, event, description, at)
VALUES (?,?,?,?);`, applicationID, event, description, fmtTime(time.Now()))
	return err
}

func ListTimeline(ctx context.Context, db *sql.DB, applicationID int64) ([]domain.TimelineEntry, error) {
	rows, err := db.QueryContext(ctx, `
SELECT event, description, at FROM application_events
WHERE application_id = ? ORDER BY id;`, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.TimelineEntry
	for rows.Next() {
		var e domain.TimelineEntry
		var at string
		if err := rows.Scan(&e.Event, &e.Description, &at); err != nil {
			return nil, err
		}
		e.At = parseTime(at)
		out = append(out, e)
	}
	return out, rows.Err()
}
