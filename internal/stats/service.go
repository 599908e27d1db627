package stats

import (
	"context"
	"database/sql"

	"golang.org/x/sync/errgroup"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/store"
)

// Report is the full placement picture, built from independent queries run
// concurrently.
type Report struct {
	Overall      store.OverallStats               `json:"overall"`
	Branches     []store.BranchStat               `json:"branches"`
	Packages     store.PackageStats               `json:"packages"`
	TopCompanies []store.CompanyHires             `json:"topCompanies"`
	Applications map[domain.ApplicationStatus]int `json:"applications"`
}

// Filter narrows candidate-derived numbers. Zero value means everything.
type Filter struct {
	Batch  string
	Branch string
}

type Service struct {
	DB   *sql.DB
	TopN int // companies in the top-recruiters table
}

func (s *Service) Report(ctx context.Context, f Filter) (Report, error) {
	var r Report
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		r.Overall, err = store.QueryOverallStats(ctx, s.DB, f.Batch, f.Branch)
		return err
	})
	g.Go(func() error {
		var err error
		r.Branches, err = store.QueryBranchStats(ctx, s.DB, f.Batch, f.Branch)
		return err
	})
	g.Go(func() error {
		var err error
		r.Packages, err = store.QueryPackageStats(ctx, s.DB, f.Batch, f.Branch)
		return err
	})
	g.Go(func() error {
		var err error
		r.TopCompanies, err = store.QueryTopCompanies(ctx, s.DB, s.TopN)
		return err
	})
	g.Go(func() error {
		var err error
		r.Applications, err = store.QueryStatusBreakdown(ctx, s.DB, 0)
		return err
	})

	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	return r, nil
}

// Dashboard is the per-candidate summary block.
type Dashboard struct {
	Applications map[domain.ApplicationStatus]int `json:"applications"`
	Eligible     int                              `json:"eligiblePostings"`
	Profile      int                              `json:"profileCompletion"`
	SkillGap     []SkillDemand                    `json:"skillGap"`
}

// CandidateDashboard aggregates one candidate's standing against the
// current market.
func (s *Service) CandidateDashboard(ctx context.Context, candidateID int64, eligibleCount int) (Dashboard, error) {
	c, err := store.GetCandidate(ctx, s.DB, candidateID)
	if err != nil {
		return Dashboard{}, err
	}
	breakdown, err := store.QueryStatusBreakdown(ctx, s.DB, candidateID)
	if err != nil {
		return Dashboard{}, err
	}
	open, err := store.ListOpenPostings(ctx, s.DB)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Applications: breakdown,
		Eligible:     eligibleCount,
		Profile:      c.ProfileCompletion(),
		SkillGap:     SkillGapFor(c.SkillNames(), open),
	}, nil
}

// SkillGap splits the open market's demanded skills by whether the
// candidate has them, missing side ranked for action.
func (s *Service) SkillGap(ctx context.Context, candidateID int64) (Gap, error) {
	c, err := store.GetCandidate(ctx, s.DB, candidateID)
	if err != nil {
		return Gap{}, err
	}
	open, err := store.ListOpenPostings(ctx, s.DB)
	if err != nil {
		return Gap{}, err
	}
	return GapFor(c.SkillNames(), open), nil
}
