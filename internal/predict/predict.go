// Package predict estimates a candidate's placement likelihood with a fixed
// weighted sum over profile attributes. It is read-only and recomputed on
// demand; nothing here touches storage.
package predict

import (
	"github.com/akshaynaik00018/cpms/internal/domain"
)

const (
	weightAcademic = 40.0
	weightSkills   = 25.0
	weightProjects = 15.0
	weightCerts    = 10.0
	weightBacklogs = 10.0
)

type Factor struct {
	Factor   string  `json:"factor"`
	Score    float64 `json:"score"`
	MaxScore float64 `json:"maxScore"`
}

type Prediction struct {
	OverallScore    float64  `json:"overallScore"` // 0..100
	Probability     string   `json:"probability"`  // Low/Medium/High
	Factors         []Factor `json:"factors"`
	Recommendations []string `json:"recommendations"`
}

// Estimate scores the five factors and bands the total. Each sub-score is
// independently monotonic in its input.
func Estimate(c domain.Candidate) Prediction {
	avg := clamp(c.Average, 0, 10)
	skills := len(c.Skills)
	projects := len(c.Projects)
	certs := len(c.Certifications)

	academic := avg / 10 * weightAcademic
	skillScore := capRatio(skills, 10) * weightSkills
	projectScore := capRatio(projects, 5) * weightProjects
	certScore := capRatio(certs, 5) * weightCerts
	backlogScore := 0.0
	if c.BacklogsCurrent == 0 {
		backlogScore = weightBacklogs
	}

	total := academic + skillScore + projectScore + certScore + backlogScore

	p := Prediction{
		OverallScore: total,
		Probability:  band(total),
		Factors: []Factor{
			{Factor: "Academic Average", Score: academic, MaxScore: weightAcademic},
			{Factor: "Skills", Score: skillScore, MaxScore: weightSkills},
			{Factor: "Projects", Score: projectScore, MaxScore: weightProjects},
			{Factor: "Certifications", Score: certScore, MaxScore: weightCerts},
			{Factor: "No Active Backlogs", Score: backlogScore, MaxScore: weightBacklogs},
		},
	}

	// Threshold checks are independent; order is fixed.
	if avg < 7.0 {
		p.Recommendations = append(p.Recommendations, "Focus on improving your academic average")
	}
	if skills < 5 {
		p.Recommendations = append(p.Recommendations, "Learn more in-demand skills")
	}
	if projects < 3 {
		p.Recommendations = append(p.Recommendations, "Build more projects to showcase your skills")
	}
	if certs < 2 {
		p.Recommendations = append(p.Recommendations, "Obtain relevant certifications")
	}
	if c.BacklogsCurrent > 0 {
		p.Recommendations = append(p.Recommendations, "Clear your active backlogs")
	}

	return p
}

func band(score float64) string {
	switch {
	case score >= 70:
		return "High"
	case score >= 50:
		return "Medium"
	default:
		return "Low"
	}
}

func capRatio(count, denom int) float64 {
	r := float64(count) / float64(denom)
	if r > 1 {
		return 1
	}
	return r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
