package domain

import "time"

type PostingStatus string

const (
	PostingDraft     PostingStatus = "draft"
	PostingOpen      PostingStatus = "open"
	PostingClosed    PostingStatus = "closed"
	PostingCancelled PostingStatus = "cancelled"
)

// BranchAll is the wildcard branch: a criteria list containing it accepts
// every branch.
const BranchAll = "ALL"

// Criteria is a posting's eligibility rules. Zero values mean "no constraint"
// except the backlog fields, which default closed (0 allowed, history
// disallowed).
type Criteria struct {
	Branches             []string `json:"branches,omitempty"`
	MinAverage           float64  `json:"minAverage,omitempty"`
	MaxBacklogs          int      `json:"maxBacklogs,omitempty"`
	AllowHistoryBacklogs bool     `json:"allowHistoryBacklogs,omitempty"`
	Batches              []string `json:"batches,omitempty"`
	TenthMinPercent      float64  `json:"tenthMinPercent,omitempty"`
	TwelfthMinPercent    float64  `json:"twelfthMinPercent,omitempty"`
}

type Posting struct {
	ID          int64  `json:"id"`
	CompanyID   int64  `json:"companyId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	JobType     string `json:"jobType"` // full-time/internship/contract/part-time

	PackageMin float64 `json:"packageMin,omitempty"` // LPA
	PackageMax float64 `json:"packageMax,omitempty"`
	Locations  []string `json:"locations,omitempty"`

	Criteria        Criteria `json:"criteria"`
	RequiredSkills  []string `json:"requiredSkills"`
	PreferredSkills []string `json:"preferredSkills,omitempty"`

	Deadline *time.Time    `json:"deadline,omitempty"`
	Openings int           `json:"openings"`
	Status   PostingStatus `json:"status"`

	// Denormalized counters, maintained by atomic SQL increments only.
	ApplicationsCount int `json:"applicationsCount"`
	ShortlistedCount  int `json:"shortlistedCount"`
	SelectedCount     int `json:"selectedCount"`

	CreatedAt time.Time `json:"createdAt"`
}

// AcceptingApplications reports whether new applications are allowed.
func (p Posting) AcceptingApplications(now time.Time) bool {
	if p.Status != PostingOpen {
		return false
	}
	if p.Deadline != nil && now.After(*p.Deadline) {
		return false
	}
	return true
}
