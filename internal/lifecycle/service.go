package lifecycle

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/akshaynaik00018/cpms/internal/domain"
	"github.com/akshaynaik00018/cpms/internal/eligibility"
	"github.com/akshaynaik00018/cpms/internal/match"
	"github.com/akshaynaik00018/cpms/internal/store"
)

// Notifier fans a lifecycle event out to whoever listens. Implementations
// must not fail the transition; delivery is best effort.
type Notifier interface {
	ApplicationCreated(ctx context.Context, app domain.Application, p domain.Posting, c domain.Candidate)
	StatusChanged(ctx context.Context, app domain.Application, p domain.Posting, to domain.ApplicationStatus)
}

// NopNotifier satisfies Notifier for tests and tooling.
type NopNotifier struct{}

func (NopNotifier) ApplicationCreated(context.Context, domain.Application, domain.Posting, domain.Candidate) {
}
func (NopNotifier) StatusChanged(context.Context, domain.Application, domain.Posting, domain.ApplicationStatus) {
}

// CellActor marks placement-cell moves in Transition.
const CellActor int64 = 0

type Service struct {
	DB     *sql.DB
	Notify Notifier
}

func NewService(db *sql.DB, n Notifier) *Service {
	if n == nil {
		n = NopNotifier{}
	}
	return &Service{DB: db, Notify: n}
}

// Apply screens the candidate against the posting and creates the
// application with its fit snapshot. The snapshot is computed once here and
// never revised by later profile edits.
func (s *Service) Apply(ctx context.Context, candidateID, postingID int64, coverLetter string) (domain.Application, error) {
	p, err := store.GetPosting(ctx, s.DB, postingID)
	if err != nil {
		return domain.Application{}, err
	}
	if !p.AcceptingApplications(time.Now()) {
		return domain.Application{}, domain.NewError(domain.CodeConflict, "posting is not accepting applications")
	}
	c, err := store.GetCandidate(ctx, s.DB, candidateID)
	if err != nil {
		return domain.Application{}, err
	}
	if c.PlacementStatus == domain.Placed {
		return domain.Application{}, domain.NewError(domain.CodeConflict, "candidate is already placed")
	}
	if ok, reason := eligibility.Check(c, p.Criteria); !ok {
		return domain.Application{}, domain.NewError(domain.CodeIneligible,
			fmt.Sprintf("not eligible: %s", reason))
	}

	fit := match.Skills(c.SkillNames(), p.RequiredSkills)
	app, err := store.CreateApplication(ctx, s.DB, domain.Application{
		PostingID:   postingID,
		CandidateID: candidateID,
		CoverLetter: coverLetter,
		Fit: domain.FitScore{
			SkillMatch:     fit.Percentage,
			EducationMatch: educationMatch(c, p.Criteria),
			MatchingSkills: fit.Matching,
			MissingSkills:  fit.Missing,
			AnalyzedAt:     time.Now(),
		},
	})
	if err != nil {
		return domain.Application{}, err
	}
	s.Notify.ApplicationCreated(ctx, app, p, c)
	return app, nil
}

// Transition moves the application to a new status. actor is the candidate
// performing the move, or CellActor for placement-cell staff. Repeating the
// last transition is a no-op, not an error.
func (s *Service) Transition(ctx context.Context, applicationID int64, to domain.ApplicationStatus, actor int64, note string) (domain.Application, error) {
	app, err := store.GetApplication(ctx, s.DB, applicationID)
	if err != nil {
		return domain.Application{}, err
	}
	if candidateOwned(to) {
		if actor != app.CandidateID {
			return domain.Application{}, domain.NewError(domain.CodeForbidden, "not your application")
		}
	} else if actor != CellActor {
		return domain.Application{}, domain.NewError(domain.CodeForbidden, "placement cell only")
	}
	if app.Status == to {
		return app, nil
	}
	if isTerminal(app.Status) {
		return domain.Application{}, domain.NewError(domain.CodeInvalidTransition,
			fmt.Sprintf("application is %s and cannot change", app.Status))
	}
	if !allowedTransition(app.Status, to) {
		return domain.Application{}, domain.NewError(domain.CodeInvalidTransition,
			fmt.Sprintf("cannot move from %s to %s", app.Status, to))
	}

	p, err := store.GetPosting(ctx, s.DB, app.PostingID)
	if err != nil {
		return domain.Application{}, err
	}

	fx := store.StatusSideEffects{}
	switch to {
	case domain.StatusShortlisted:
		fx.BumpCounter = "shortlisted_count"
	case domain.StatusSelected:
		fx.BumpCounter = "selected_count"
		fx.PlaceCandidate = true
		fx.CompanyID = p.CompanyID
		fx.Package = offeredPackage(p)
	}

	if note == "" {
		note = defaultNote(to)
	}
	if err := store.UpdateApplicationStatus(ctx, s.DB, app, to, note, fx); err != nil {
		return domain.Application{}, err
	}

	app.Status = to
	app.UpdatedAt = time.Now()
	app.Timeline = append(app.Timeline, domain.TimelineEntry{Event: string(to), Description: note, At: app.UpdatedAt})
	s.Notify.StatusChanged(ctx, app, p, to)
	return app, nil
}

// Withdraw is the candidate pulling their own application.
func (s *Service) Withdraw(ctx context.Context, applicationID, candidateID int64) (domain.Application, error) {
	return s.Transition(ctx, applicationID, domain.StatusWithdrawn, candidateID, "Withdrawn by candidate")
}

// PostingMatch pairs an open posting with the candidate's skill fit.
type PostingMatch struct {
	Posting    domain.Posting `json:"posting"`
	SkillMatch int            `json:"skillMatch"`
	Missing    []string       `json:"missingSkills,omitempty"`
}

// EligiblePostings returns the open postings this candidate clears the
// criteria for, best skill fit first.
func (s *Service) EligiblePostings(ctx context.Context, candidateID int64) ([]PostingMatch, error) {
	c, err := store.GetCandidate(ctx, s.DB, candidateID)
	if err != nil {
		return nil, err
	}
	open, err := store.ListOpenPostings(ctx, s.DB)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	skills := c.SkillNames()
	var out []PostingMatch
	for _, p := range open {
		if !p.AcceptingApplications(now) {
			continue
		}
		if ok, _ := eligibility.Check(c, p.Criteria); !ok {
			continue
		}
		r := match.Skills(skills, p.RequiredSkills)
		out = append(out, PostingMatch{Posting: p, SkillMatch: r.Percentage, Missing: r.Missing})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SkillMatch > out[j].SkillMatch
	})
	return out, nil
}

// educationMatch grades academics against the posting's bar: full marks at
// or above the minimum average, proportional below it. No bar, full marks.
func educationMatch(c domain.Candidate, cr domain.Criteria) int {
	if cr.MinAverage <= 0 {
		return 100
	}
	ratio := c.Average / cr.MinAverage
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

func offeredPackage(p domain.Posting) float64 {
	if p.PackageMax > 0 {
		return p.PackageMax
	}
	return p.PackageMin
}

func defaultNote(to domain.ApplicationStatus) string {
	switch to {
	case domain.StatusShortlisted:
		return "Shortlisted for interviews"
	case domain.StatusRejected:
		return "Application rejected"
	case domain.StatusSelected:
		return "Selected by the company"
	case domain.StatusOfferAccepted:
		return "Offer accepted"
	case domain.StatusOfferDeclined:
		return "Offer declined"
	case domain.StatusWithdrawn:
		return "Withdrawn by candidate"
	}
	return string(to)
}
