package domain

import "time"

type ApplicationStatus string

const (
	StatusApplied       ApplicationStatus = "applied"
	StatusShortlisted   ApplicationStatus = "shortlisted"
	StatusRejected      ApplicationStatus = "rejected"
	StatusSelected      ApplicationStatus = "selected"
	StatusOfferAccepted ApplicationStatus = "offer_accepted"
	StatusOfferDeclined ApplicationStatus = "offer_declined"
	StatusWithdrawn     ApplicationStatus = "withdrawn"
)

// FitScore is the screening snapshot computed once at apply time. Later
// profile edits do not change it.
type FitScore struct {
	SkillMatch     int      `json:"skillMatch"` // 0..100
	EducationMatch int      `json:"educationMatch"`
	MatchingSkills []string `json:"matchingSkills"`
	MissingSkills  []string `json:"missingSkills"`
	AnalyzedAt     time.Time `json:"analyzedAt"`
}

// TimelineEntry is one line of the append-only audit trail.
type TimelineEntry struct {
	Event       string    `json:"event"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

type Round struct {
	Name     string  `json:"name"`
	Type     string  `json:"type"` // aptitude/technical/coding/hr/other
	Status   string  `json:"status"` // pending/cleared/failed/skipped
	Score    float64 `json:"score,omitempty"`
	Feedback string  `json:"feedback,omitempty"`
}

// Application links one Candidate to one Posting. At most one exists per
// (candidate, posting) pair; it is never deleted, only status-transitioned.
type Application struct {
	ID          int64             `json:"id"`
	PostingID   int64             `json:"postingId"`
	CandidateID int64             `json:"candidateId"`
	Status      ApplicationStatus `json:"status"`
	CoverLetter string            `json:"coverLetter,omitempty"`
	Fit         FitScore          `json:"fit"`
	Rounds      []Round           `json:"rounds,omitempty"`
	Timeline    []TimelineEntry   `json:"timeline,omitempty"`
	AppliedAt   time.Time         `json:"appliedAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
