package domain

import "time"

type PlacementStatus string

const (
	Unplaced      PlacementStatus = "unplaced"
	Placed        PlacementStatus = "placed"
	HigherStudies PlacementStatus = "higher_studies"
	NotInterested PlacementStatus = "not_interested"
)

type Skill struct {
	Name  string `json:"name"`
	Level string `json:"level"` // beginner/intermediate/advanced/expert
}

type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty"`
}

type Certification struct {
	Title        string `json:"title"`
	IssuedBy     string `json:"issuedBy"`
	IssuedAt     string `json:"issuedAt,omitempty"` // YYYY-MM
	CredentialID string `json:"credentialId,omitempty"`
}

// Candidate is a student profile. A percentage or average of 0 means
// "not recorded"; eligibility treats unrecorded marks as failing any
// criterion that requires them.
type Candidate struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	EnrollmentNo string `json:"enrollmentNo"`

	Branch   string  `json:"branch"`
	Semester int     `json:"semester"`
	Batch    string  `json:"batch"` // e.g. "2022-2026"
	Average  float64 `json:"average"`

	BacklogsCurrent int `json:"backlogsCurrent"`
	BacklogsHistory int `json:"backlogsHistory"`

	TenthPercent   float64 `json:"tenthPercent"`
	TwelfthPercent float64 `json:"twelfthPercent"`

	Skills         []Skill         `json:"skills"`
	Projects       []Project       `json:"projects"`
	Certifications []Certification `json:"certifications"`

	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`

	ResumeText string `json:"-"`

	PlacementStatus  PlacementStatus `json:"placementStatus"`
	PlacedCompanyID  int64           `json:"placedCompanyId,omitempty"`
	PlacementPackage float64         `json:"placementPackage,omitempty"`
	PlacementDate    *time.Time      `json:"placementDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SkillNames flattens the skill list for matching.
func (c Candidate) SkillNames() []string {
	out := make([]string, 0, len(c.Skills))
	for _, s := range c.Skills {
		out = append(out, s.Name)
	}
	return out
}

// ProfileCompletion reports how much of the profile is filled in, 0..100.
func (c Candidate) ProfileCompletion() int {
	total := 10
	done := 0
	if c.FirstName != "" && c.LastName != "" {
		done++
	}
	if c.Phone != "" {
		done++
	}
	if c.LinkedIn != "" {
		done++
	}
	if c.GitHub != "" {
		done++
	}
	if c.Average > 0 {
		done++
	}
	if len(c.Skills) > 0 {
		done++
	}
	if c.ResumeText != "" {
		done++
	}
	if c.TenthPercent > 0 {
		done++
	}
	if c.TwelfthPercent > 0 {
		done++
	}
	if len(c.Projects) > 0 {
		done++
	}
	return done * 100 / total
}
