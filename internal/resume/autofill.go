package resume

import (
	"strings"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

// Autofill copies parsed resume fields into profile fields the candidate
// left blank. Existing values always win. Reports whether anything changed.
func Autofill(c *domain.Candidate, p Parsed) bool {
	changed := false
	if c.Phone == "" && p.Phone != "" {
		c.Phone = p.Phone
		changed = true
	}
	if c.Average == 0 && p.CGPA > 0 {
		c.Average = p.CGPA
		changed = true
	}
	if c.GitHub == "" && p.GitHub != "" {
		c.GitHub = p.GitHub
		changed = true
	}
	if c.LinkedIn == "" && p.LinkedIn != "" {
		c.LinkedIn = p.LinkedIn
		changed = true
	}

	have := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		have[strings.ToLower(s.Name)] = true
	}
	for _, name := range p.Skills {
		key := strings.ToLower(name)
		if have[key] {
			continue
		}
		c.Skills = append(c.Skills, domain.Skill{Name: name})
		have[key] = true
		changed = true
	}
	return changed
}
