// Package match scores a candidate's skill set against a posting's
// requirements. Comparison is case-insensitive; the snapshot taken at apply
// time is what sticks to the application.
package match

import (
	"math"
	"strings"
)

type Result struct {
	Percentage int      `json:"percentage"`
	Matching   []string `json:"matching"`
	Missing    []string `json:"missing"`
}

// Skills compares candidateSkills against required. Duplicates in required
// count once; output order follows the required list. An empty required list
// scores 0, not 100.
func Skills(candidateSkills []string, required []string) Result {
	have := make(map[string]bool, len(candidateSkills))
	for _, s := range candidateSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	seen := make(map[string]bool, len(required))
	var matching, missing []string
	total := 0
	for _, r := range required {
		key := strings.ToLower(strings.TrimSpace(r))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		total++
		if have[key] {
			matching = append(matching, key)
		} else {
			missing = append(missing, key)
		}
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(len(matching)) / float64(total)))
	}
	return Result{Percentage: pct, Matching: matching, Missing: missing}
}
