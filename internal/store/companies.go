package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

func InsertCompany(ctx context.Context, db *sql.DB, c domain.Company) (domain.Company, error) {
	now := time.Now()
	res, err := db.ExecContext(ctx, `
INSERT INTO companies (name, industry, website, contact_email, verified, active, created_at)
VALUES (?,?,?,?,?,?,?);`,
		c.Name, c.Industry, c.Website, c.ContactEmail, boolInt(c.Verified), boolInt(true), fmtTime(now))
	if err != nil {
		return domain.Company{}, err
	}
	c.ID, _ = res.LastInsertId()
	c.Active = true
	c.CreatedAt = now
	return c, nil
}

func GetCompany(ctx context.Context, db *sql.DB, id int64) (domain.Company, error) {
	row := db.QueryRowContext(ctx, `
SELECT id, name, industry, website, contact_email, verified, active, created_at
FROM companies WHERE id = ?;`, id)
	var c domain.Company
	var verified, active int
	var createdAt string
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.ContactEmail, &verified, &active, &createdAt)
	if err == sql.ErrNoRows {
		return domain.Company{}, domain.NewError(domain.CodeNotFound, "company not found")
	}
	if err != nil {
		return domain.Company{}, err
	}
	c.Verified = verified != 0
	c.Active = active != 0
	c.CreatedAt = parseTime(createdAt)
	return c, nil
}

// FindCompanyByEmail matches the intake sender allowlist against registered
// companies.
func FindCompanyByEmail(ctx context.Context, db *sql.DB, email string) (domain.Company, error) {
	row := db.QueryRowContext(ctx, `
SELECT id, name, industry, website, contact_email, verified, active, created_at
FROM companies WHERE lower(contact_email) = lower(?) LIMIT 1;`, email)
	var c domain.Company
	var verified, active int
	var createdAt string
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.ContactEmail, &verified, &active, &createdAt)
	if err == sql.ErrNoRows {
		return domain.Company{}, domain.NewError(domain.CodeNotFound, "company not found")
	}
	if err != nil {
		return domain.Company{}, err
	}
	c.Verified = verified != 0
	c.Active = active != 0
	c.CreatedAt = parseTime(createdAt)
	return c, nil
}

func ListCompanies(ctx context.Context, db *sql.DB) ([]domain.Company, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, name, industry, website, contact_email, verified, active, created_at
FROM companies ORDER BY name ASC;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Company
	for rows.Next() {
		var c domain.Company
		var verified, active int
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.ContactEmail, &verified, &active, &createdAt); err != nil {
			return nil, err
		}
		c.Verified = verified != 0
		c.Active = active != 0
		c.CreatedAt = parseTime(createdAt)
		out = append(out, c)
	}
	return out, rows.Err()
}

func VerifyCompany(ctx context.Context, db *sql.DB, id int64) error {
	res, err := db.ExecContext(ctx, `UPDATE companies SET verified = 1 WHERE id = ?;`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NewError(domain.CodeNotFound, "company not found")
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
