package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

type ListPostingsOpts struct {
	Status    string
	CompanyID int64
	Sort      string // created | title | applications
	Limit     int
}

const postingCols = `id, company_id, title, description, job_type,
package_min, package_max, locations, criteria, required_skills, preferred_skills,
deadline, openings, status, applications_count, shortlisted_count, selected_count, created_at`

func scanPosting(row interface{ Scan(...any) error }) (domain.Posting, error) {
	var p domain.Posting
	var locations, criteria, required, preferred, deadline, createdAt string
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Title, &p.Description, &p.JobType,
		&p.PackageMin, &p.PackageMax, &locations, &criteria, &required, &preferred,
		&deadline, &p.Openings, &p.Status,
		&p.ApplicationsCount, &p.ShortlistedCount, &p.SelectedCount, &createdAt,
	)
	if err != nil {
		return domain.Posting{}, err
	}
	decodeJSON(locations, &p.Locations)
	decodeJSON(criteria, &p.Criteria)
	decodeJSON(required, &p.RequiredSkills)
	decodeJSON(preferred, &p.PreferredSkills)
	p.Deadline = parseTimePtr(deadline)
	p.CreatedAt = parseTime(createdAt)
	return p, nil
}

func InsertPosting(ctx context.Context, db *sql.DB, p domain.Posting) (domain.Posting, error) {
	if p.Status == "" {
		p.Status = domain.PostingDraft
	}
	if p.Openings <= 0 {
		p.Openings = 1
	}
	now := time.Now()
	deadline := ""
	if p.Deadline != nil {
		deadline = fmtTime(*p.Deadline)
	}
	res, err := db.ExecContext(ctx, `
INSERT INTO postings (company_id, title, description, job_type,
  package_min, package_max, locations, criteria, required_skills, preferred_skills,
  deadline, openings, status, created_at)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?);`,
		p.CompanyID, p.Title, p.Description, p.JobType,
		p.PackageMin, p.PackageMax, encodeJSON(p.Locations), encodeJSON(p.Criteria),
		encodeJSON(p.RequiredSkills), encodeJSON(p.PreferredSkills),
		deadline, p.Openings, p.Status, fmtTime(now))
	if err != nil {
		return domain.Posting{}, err
	}
	p.ID, _ = res.LastInsertId()
	p.CreatedAt = now
	return p, nil
}

func GetPosting(ctx context.Context, db *sql.DB, id int64) (domain.Posting, error) {
	row := db.QueryRowContext(ctx, `SELECT `+postingCols+` FROM postings WHERE id = ?;`, id)
	p, err := scanPosting(row)
	if err == sql.ErrNoRows {
		return domain.Posting{}, domain.NewError(domain.CodeNotFound, "posting not found")
	}
	return p, err
}

func ListPostings(ctx context.Context, db *sql.DB, opts ListPostingsOpts) ([]domain.Posting, error) {
	if opts.Limit <= 0 || opts.Limit > 1000 {
		opts.Limit = 200
	}

	// whitelist sort columns (prevents SQL injection)
	sortCol := map[string]string{
		"created":      "created_at DESC",
		"title":        "title ASC",
		"applications": "applications_count DESC",
	}[opts.Sort]
	if sortCol == "" {
		sortCol = "created_at DESC"
	}

	where := ` WHERE 1=1`
	args := []any{}
	if opts.Status != "" {
		where += ` AND status = ?`
		args = append(args, opts.Status)
	}
	if opts.CompanyID > 0 {
		where += ` AND company_id = ?`
		args = append(args, opts.CompanyID)
	}
	args = append(args, opts.Limit)

	rows, err := db.QueryContext(ctx,
		`SELECT `+postingCols+` FROM postings`+where+` ORDER BY `+sortCol+` LIMIT ?;`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Posting
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ListOpenPostings is the eligibility/skill-gap working set.
func ListOpenPostings(ctx context.Context, db *sql.DB) ([]domain.Posting, error) {
	return ListPostings(ctx, db, ListPostingsOpts{Status: string(domain.PostingOpen), Limit: 1000})
}

func UpdatePostingStatus(ctx context.Context, db *sql.DB, id int64, status domain.PostingStatus) error {
	res, err := db.ExecContext(ctx, `UPDATE postings SET status = ? WHERE id = ?;`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewError(domain.CodeNotFound, "posting not found")
	}
	return nil
}
