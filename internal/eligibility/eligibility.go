package eligibility

import (
	"github.com/akshaynaik00018/cpms/internal/domain"
)

// Check evaluates a candidate against a posting's criteria. Every rule must
// pass; the first failing rule short-circuits and names itself in reason.
// A missing optional criterion (empty list, zero minimum) is no constraint;
// backlog rules default closed.
func Check(c domain.Candidate, cr domain.Criteria) (ok bool, reason string) {
	if !branchAllowed(c.Branch, cr.Branches) {
		return false, "branch"
	}

	if c.Average < cr.MinAverage {
		return false, "min_average"
	}

	if c.BacklogsCurrent > cr.MaxBacklogs {
		return false, "active_backlogs"
	}

	if !cr.AllowHistoryBacklogs && c.BacklogsHistory > 0 {
		return false, "history_backlogs"
	}

	if len(cr.Batches) > 0 && !contains(cr.Batches, c.Batch) {
		return false, "batch"
	}

	// Absence of a recorded percentage fails a set criterion: unrecorded
	// marks are stored as 0, which can never meet a positive minimum.
	if cr.TenthMinPercent > 0 && c.TenthPercent < cr.TenthMinPercent {
		return false, "tenth_percent"
	}
	if cr.TwelfthMinPercent > 0 && c.TwelfthPercent < cr.TwelfthMinPercent {
		return false, "twelfth_percent"
	}

	return true, ""
}

// Eligible is Check without the reason.
func Eligible(c domain.Candidate, cr domain.Criteria) bool {
	ok, _ := Check(c, cr)
	return ok
}

func branchAllowed(branch string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, b := range allowed {
		if b == domain.BranchAll || b == branch {
			return true
		}
	}
	return false
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
