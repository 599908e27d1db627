package store

import (
	"context"
	"database/sql"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

// OverallStats is the headline counters block of the placement report.
type OverallStats struct {
	TotalCandidates int     `json:"totalCandidates"`
	Placed          int     `json:"placed"`
	Unplaced        int     `json:"unplaced"`
	PlacementRate   float64 `json:"placementRate"` // percent, one decimal
	OpenPostings    int     `json:"openPostings"`
	Applications    int     `json:"applications"`
	Companies       int     `json:"companies"`
}

type BranchStat struct {
	Branch        string  `json:"branch"`
	Total         int     `json:"total"`
	Placed        int     `json:"placed"`
	PlacementRate float64 `json:"placementRate"`
}

type PackageStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

type CompanyHires struct {
	CompanyID int64  `json:"companyId"`
	Name      string `json:"name"`
	Hires     int    `json:"hires"`
}

// QueryOverallStats reports the headline counters. Non-empty batch or
// branch restricts candidate counts.
func QueryOverallStats(ctx context.Context, db *sql.DB, batch, branch string) (OverallStats, error) {
	var s OverallStats
	err := db.QueryRowContext(ctx, `
SELECT
  (SELECT COUNT(*) FROM candidates WHERE (?1 = '' OR batch = ?1) AND (?2 = '' OR branch = ?2)),
  (SELECT COUNT(*) FROM candidates WHERE placement_status = 'placed' AND (?1 = '' OR batch = ?1) AND (?2 = '' OR branch = ?2)),
  (SELECT COUNT(*) FROM postings WHERE status = 'open'),
  (SELECT COUNT(*) FROM applications),
  (SELECT COUNT(*) FROM companies);`, batch, branch,
	).Scan(&s.TotalCandidates, &s.Placed, &s.OpenPostings, &s.Applications, &s.Companies)
	if err != nil {
		return OverallStats{}, err
	}
	s.Unplaced = s.TotalCandidates - s.Placed
	if s.TotalCandidates > 0 {
		s.PlacementRate = round1(float64(s.Placed) * 100 / float64(s.TotalCandidates))
	}
	return s, nil
}

func QueryBranchStats(ctx context.Context, db *sql.DB, batch, branch string) ([]BranchStat, error) {
	rows, err := db.QueryContext(ctx, `
SELECT branch,
       COUNT(*),
       SUM(CASE WHEN placement_status = 'placed' THEN 1 ELSE 0 END)
FROM candidates
WHERE (?1 = '' OR batch = ?1) AND (?2 = '' OR branch = ?2)
GROUP BY branch
ORDER BY branch;`, batch, branch)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []BranchStat
	for rows.Next() {
		var b BranchStat
		if err := rows.Scan(&b.Branch, &b.Total, &b.Placed); err != nil {
			return nil, err
		}
		if b.Total > 0 {
			b.PlacementRate = round1(float64(b.Placed) * 100 / float64(b.Total))
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// QueryPackageStats folds over placed candidates with a recorded package.
func QueryPackageStats(ctx context.Context, db *sql.DB, batch, branch string) (PackageStats, error) {
	var s PackageStats
	var min, max, avg sql.NullFloat64
	err := db.QueryRowContext(ctx, `
SELECT MIN(placement_package), MAX(placement_package), AVG(placement_package)
FROM candidates
WHERE placement_status = 'placed' AND placement_package > 0
  AND (?1 = '' OR batch = ?1) AND (?2 = '' OR branch = ?2);`, batch, branch).Scan(&min, &max, &avg)
	if err != nil {
		return PackageStats{}, err
	}
	s.Min = min.Float64
	s.Max = max.Float64
	s.Avg = round1(avg.Float64)
	return s, nil
}

func QueryTopCompanies(ctx context.Context, db *sql.DB, limit int) ([]CompanyHires, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.QueryContext(ctx, `
SELECT c.placed_company_id, co.name, COUNT(*) AS hires
FROM candidates c
JOIN companies co ON co.id = c.placed_company_id
WHERE c.placement_status = 'placed'
GROUP BY c.placed_company_id
ORDER BY hires DESC, co.name
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CompanyHires
	for rows.Next() {
		var h CompanyHires
		if err := rows.Scan(&h.CompanyID, &h.Name, &h.Hires); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// QueryStatusBreakdown counts applications per status for one candidate.
// Zero candidateID counts across the whole table.
func QueryStatusBreakdown(ctx context.Context, db *sql.DB, candidateID int64) (map[domain.ApplicationStatus]int, error) {
	q := `SELECT status, COUNT(*) FROM applications`
	args := []any{}
	if candidateID > 0 {
		q += ` WHERE candidate_id = ?`
		args = append(args, candidateID)
	}
	q += ` GROUP BY status;`

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[domain.ApplicationStatus]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		out[domain.ApplicationStatus(status)] = n
	}
	return out, rows.Err()
}

func round1(v float64) float64 {
	if v < 0 {
		return float64(int(v*10-0.5)) / 10
	}
	return float64(int(v*10+0.5)) / 10
}
