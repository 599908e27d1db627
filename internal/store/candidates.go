package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

type ListCandidatesOpts struct {
	Branch          string
	Batch           string
	PlacementStatus string
	Limit           int
	Offset          int
}

const candidateCols = `id, first_name, last_name, email, phone, enrollment_no,
branch, semester, batch, average, backlogs_current, backlogs_history,
tenth_percent, twelfth_percent, skills, projects, certifications,
linkedin, github, portfolio, resume_text, placement_status,
placed_company_id, placement_package, placement_date, created_at, updated_at`

func scanCandidate(row interface{ Scan(...any) error }) (domain.Candidate, error) {
	var c domain.Candidate
	var skills, projects, certs, placementDate, createdAt, updatedAt string
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.EnrollmentNo,
		&c.Branch, &c.Semester, &c.Batch, &c.Average, &c.BacklogsCurrent, &c.BacklogsHistory,
		&c.TenthPercent, &c.TwelfthPercent, &skills, &projects, &certs,
		&c.LinkedIn, &c.GitHub, &c.Portfolio, &c.ResumeText, &c.PlacementStatus,
		&c.PlacedCompanyID, &c.PlacementPackage, &placementDate, &createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Candidate{}, err
	}
	decodeJSON(skills, &c.Skills)
	decodeJSON(projects, &c.Projects)
	decodeJSON(certs, &c.Certifications)
	c.PlacementDate = parseTimePtr(placementDate)
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return c, nil
}

func InsertCandidate(ctx context.Context, db *sql.DB, c domain.Candidate) (domain.Candidate, error) {
	now := time.Now()
	res, err := db.ExecContext(ctx, `
INSERT INTO candidates (first_name, last_name, email, phone, enrollment_no,
  branch, semester, batch, average, backlogs_current, backlogs_history,
  tenth_percent, twelfth_percent, skills, projects, certifications,
  linkedin, github, portfolio, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		c.FirstName, c.LastName, c.Email, c.Phone, c.EnrollmentNo,
		c.Branch, c.Semester, c.Batch, c.Average, c.BacklogsCurrent, c.BacklogsHistory,
		c.TenthPercent, c.TwelfthPercent, encodeJSON(c.Skills), encodeJSON(c.Projects),
		encodeJSON(c.Certifications), c.LinkedIn, c.GitHub, c.Portfolio,
		fmtTime(now), fmtTime(now))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Candidate{}, domain.NewError(domain.CodeConflict, "enrollment number already registered")
		}
		return domain.Candidate{}, err
	}
	c.ID, _ = res.LastInsertId()
	c.PlacementStatus = domain.Unplaced
	c.CreatedAt = now
	c.UpdatedAt = now
	return c, nil
}

func GetCandidate(ctx context.Context, db *sql.DB, id int64) (domain.Candidate, error) {
	row := db.QueryRowContext(ctx, `SELECT `+candidateCols+` FROM candidates WHERE id = ?;`, id)
	c, err := scanCandidate(row)
	if err == sql.ErrNoRows {
		return domain.Candidate{}, domain.NewError(domain.CodeNotFound, "candidate not found")
	}
	return c, err
}

// UpdateCandidateProfile overwrites the self-service fields. Placement fields
// are owned by the application lifecycle and left alone here.
func UpdateCandidateProfile(ctx context.Context, db *sql.DB, c domain.Candidate) error {
	res, err := db.ExecContext(ctx, `
UPDATE candidates SET
  first_name = ?, last_name = ?, email = ?, phone = ?,
  branch = ?, semester = ?, batch = ?, average = ?,
  backlogs_current = ?, backlogs_history = ?,
  tenth_percent = ?, twelfth_percent = ?,
  skills = ?, projects = ?, certifications = ?,
  linkedin = ?, github = ?, portfolio = ?, updated_at = ?
WHERE id = ?;`,
		c.FirstName, c.LastName, c.Email, c.Phone,
		c.Branch, c.Semester, c.Batch, c.Average,
		c.BacklogsCurrent, c.BacklogsHistory,
		c.TenthPercent, c.TwelfthPercent,
		encodeJSON(c.Skills), encodeJSON(c.Projects), encodeJSON(c.Certifications),
		c.LinkedIn, c.GitHub, c.Portfolio, fmtTime(time.Now()),
		c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewError(domain.CodeNotFound, "candidate not found")
	}
	return nil
}

// UpdateCandidateResume stores extracted resume text plus the parsed blob.
func UpdateCandidateResume(ctx context.Context, db *sql.DB, id int64, text string, parsed any) error {
	res, err := db.ExecContext(ctx, `
UPDATE candidates SET resume_text = ?, resume_parsed = ?, updated_at = ?
WHERE id = ?;`,
		text, encodeJSON(parsed), fmtTime(time.Now()), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewError(domain.CodeNotFound, "candidate not found")
	}
	return nil
}

func ListCandidates(ctx context.Context, db *sql.DB, opts ListCandidatesOpts) ([]domain.Candidate, error) {
	if opts.Limit <= 0 || opts.Limit > 500 {
		opts.Limit = 100
	}

	where := ` WHERE 1=1`
	args := []any{}
	if opts.Branch != "" {
		where += ` AND branch = ?`
		args = append(args, opts.Branch)
	}
	if opts.Batch != "" {
		where += ` AND batch = ?`
		args = append(args, opts.Batch)
	}
	if opts.PlacementStatus != "" {
		where += ` AND placement_status = ?`
		args = append(args, opts.PlacementStatus)
	}
	args = append(args, opts.Limit, opts.Offset)

	rows, err := db.QueryContext(ctx,
		`SELECT `+candidateCols+` FROM candidates`+where+` ORDER BY created_at DESC LIMIT ? OFFSET ?;`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
