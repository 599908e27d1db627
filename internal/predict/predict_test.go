package predict

import (
	"math"
	"testing"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

func candidateWith(avg float64, skills, projects, certs, backlogs int) domain.Candidate {
	c := domain.Candidate{Average: avg, BacklogsCurrent: backlogs}
	for i := 0; i < skills; i++ {
		c.Skills = append(c.Skills, domain.Skill{Name: "s"})
	}
	for i := 0; i < projects; i++ {
		c.Projects = append(c.Projects, domain.Project{Title: "p"})
	}
	for i := 0; i < certs; i++ {
		c.Certifications = append(c.Certifications, domain.Certification{Title: "c"})
	}
	return c
}

func TestEstimateReferenceScenario(t *testing.T) {
	// avg 8.5, 6 skills, 4 projects, 3 certs, 0 backlogs
	// 34 + 15 + 12 + 6 + 10 = 77 -> High
	p := Estimate(candidateWith(8.5, 6, 4, 3, 0))
	if math.Abs(p.OverallScore-77) > 1e-9 {
		t.Errorf("OverallScore = %v, want 77", p.OverallScore)
	}
	if p.Probability != "High" {
		t.Errorf("Probability = %q, want High", p.Probability)
	}
	if len(p.Factors) != 5 {
		t.Fatalf("Factors = %d entries, want 5", len(p.Factors))
	}
	wantScores := []float64{34, 15, 12, 6, 10}
	for i, f := range p.Factors {
		if math.Abs(f.Score-wantScores[i]) > 1e-9 {
			t.Errorf("factor %q score = %v, want %v", f.Factor, f.Score, wantScores[i])
		}
	}
}

func TestEstimateBands(t *testing.T) {
	tests := []struct {
		name  string
		c     domain.Candidate
		wantP string
	}{
		{"all zero is low", candidateWith(0, 0, 0, 0, 1), "Low"},
		{"forty is still low", candidateWith(10, 0, 0, 0, 1), "Low"}, // 40 < 50
		{"medium band", candidateWith(10, 4, 0, 0, 0), "Medium"},         // 40+10+10 = 60
		{"seventy is high", candidateWith(10, 8, 0, 0, 0), "High"},       // 40+20+10 = 70
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.c).Probability; got != tt.wantP {
				t.Errorf("Probability = %q, want %q (score=%v)", got, tt.wantP, Estimate(tt.c).OverallScore)
			}
		})
	}
}

func TestEstimateSubScoresCap(t *testing.T) {
	p := Estimate(candidateWith(12, 40, 40, 40, 0)) // average clamped, counts capped
	if p.OverallScore != 100 {
		t.Errorf("OverallScore = %v, want 100", p.OverallScore)
	}
}

func TestEstimateMonotonic(t *testing.T) {
	base := candidateWith(6, 3, 1, 1, 1)
	baseScore := Estimate(base).OverallScore

	bump := []struct {
		name string
		c    domain.Candidate
	}{
		{"average", candidateWith(7, 3, 1, 1, 1)},
		{"skills", candidateWith(6, 4, 1, 1, 1)},
		{"projects", candidateWith(6, 3, 2, 1, 1)},
		{"certifications", candidateWith(6, 3, 1, 2, 1)},
		{"backlogs cleared", candidateWith(6, 3, 1, 1, 0)},
	}
	for _, tt := range bump {
		t.Run(tt.name, func(t *testing.T) {
			if got := Estimate(tt.c).OverallScore; got < baseScore {
				t.Errorf("score decreased: %v -> %v", baseScore, got)
			}
		})
	}
}

func TestEstimateRecommendationsOrder(t *testing.T) {
	p := Estimate(candidateWith(5, 2, 1, 0, 2))
	want := []string{
		"Focus on improving your academic average",
		"Learn more in-demand skills",
		"Build more projects to showcase your skills",
		"Obtain relevant certifications",
		"Clear your active backlogs",
	}
	if len(p.Recommendations) != len(want) {
		t.Fatalf("Recommendations = %d entries, want %d", len(p.Recommendations), len(want))
	}
	for i := range want {
		if p.Recommendations[i] != want[i] {
			t.Errorf("recommendation[%d] = %q, want %q", i, p.Recommendations[i], want[i])
		}
	}

	strong := Estimate(candidateWith(9, 8, 4, 3, 0))
	if len(strong.Recommendations) != 0 {
		t.Errorf("strong profile got recommendations: %v", strong.Recommendations)
	}
}
