package stats

import (
	"sort"
	"strings"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

// SkillDemand is one skill the open market asks for, weighted by how many
// postings want it.
type SkillDemand struct {
	Skill    string `json:"skill"`
	Postings int    `json:"postings"`
	Priority string `json:"priority"` // High, Medium, Low
}

// Gap splits the open market's demanded skills by whether the candidate
// has them.
type Gap struct {
	Missing  []SkillDemand `json:"missing"`
	Matching []SkillDemand `json:"matching"`
}

// GapFor folds over the open postings' required skills and splits them
// against the candidate's set, most demanded first on both sides. Each
// posting counts a skill once regardless of repeats.
func GapFor(candidateSkills []string, open []domain.Posting) Gap {
	have := map[string]bool{}
	for _, s := range candidateSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	demand := map[string]int{}
	for _, p := range open {
		seen := map[string]bool{}
		for _, s := range p.RequiredSkills {
			k := strings.ToLower(strings.TrimSpace(s))
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			demand[k]++
		}
	}

	var g Gap
	for skill, n := range demand {
		d := SkillDemand{Skill: skill, Postings: n, Priority: priority(n)}
		if have[skill] {
			g.Matching = append(g.Matching, d)
		} else {
			g.Missing = append(g.Missing, d)
		}
	}
	sortByDemand(g.Missing)
	sortByDemand(g.Matching)
	return g
}

// SkillGapFor keeps only the missing side, for dashboard summaries.
func SkillGapFor(candidateSkills []string, open []domain.Posting) []SkillDemand {
	return GapFor(candidateSkills, open).Missing
}

func sortByDemand(out []SkillDemand) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Postings != out[j].Postings {
			return out[i].Postings > out[j].Postings
		}
		return out[i].Skill < out[j].Skill
	})
}

func priority(postings int) string {
	switch {
	case postings > 10:
		return "High"
	case postings > 5:
		return "Medium"
	default:
		return "Low"
	}
}

// TopRecommendations trims the gap to what is worth acting on.
func TopRecommendations(gap []SkillDemand) []SkillDemand {
	if len(gap) > 5 {
		gap = gap[:5]
	}
	return gap
}
