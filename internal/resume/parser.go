package resume

import (
	"regexp"
	"strconv"
	"strings"
)

// Parsed holds whatever the keyword pass could pull out of the resume text.
// Everything is optional; blanks mean the resume did not say.
type Parsed struct {
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	CGPA     float64  `json:"cgpa,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	LinkedIn string   `json:"linkedin,omitempty"`
	Skills   []string `json:"skills,omitempty"`
	Degrees  []string `json:"degrees,omitempty"`
}

// commonSkills is the dictionary the keyword pass matches against. Matching
// is whole-word and case-insensitive.
var commonSkills = []string{
	"c", "c++", "java", "python", "go", "golang", "javascript", "typescript",
	"rust", "kotlin", "swift", "php", "ruby", "scala", "r", "matlab",
	"html", "css", "react", "angular", "vue", "node.js", "nodejs", "express",
	"django", "flask", "spring", "spring boot", ".net", "rails",
	"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
	"docker", "kubernetes", "aws", "azure", "gcp", "terraform", "jenkins",
	"git", "linux", "bash", "ci/cd",
	"machine learning", "deep learning", "tensorflow", "pytorch", "pandas",
	"numpy", "data structures", "algorithms", "rest api", "graphql", "grpc",
	"android", "ios", "flutter", "react native",
}

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`(?:\+?\d{1,3}[\s\-]?)?\d{10}\b`)
	cgpaRe     = regexp.MustCompile(`(?i)(?:cgpa|gpa)\s*[:\-]?\s*(\d{1,2}(?:\.\d{1,2})?)`)
	githubRe   = regexp.MustCompile(`(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9\-_.]+`)
	linkedinRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9\-_.]+`)
)

var degreeKeywords = []string{
	"b.tech", "btech", "b.e", "be", "m.tech", "mtech", "bca", "mca",
	"b.sc", "bsc", "m.sc", "msc", "mba", "phd", "diploma",
}

// Parse runs the keyword pass over extracted resume text.
func Parse(text string) Parsed {
	var p Parsed
	lower := strings.ToLower(text)

	if m := emailRe.FindString(text); m != "" {
		p.Email = m
	}
	if m := phoneRe.FindString(text); m != "" {
		p.Phone = strings.TrimSpace(m)
	}
	if m := cgpaRe.FindStringSubmatch(text); len(m) == 2 {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v <= 10 {
			p.CGPA = v
		}
	}
	if m := githubRe.FindString(text); m != "" {
		p.GitHub = m
	}
	if m := linkedinRe.FindString(text); m != "" {
		p.LinkedIn = m
	}

	words := tokenSet(lower)
	for _, s := range commonSkills {
		if containsSkill(lower, words, s) {
			p.Skills = append(p.Skills, s)
		}
	}
	for _, d := range degreeKeywords {
		if words[d] {
			p.Degrees = append(p.Degrees, d)
			break
		}
	}
	return p
}

var tokenRe = regexp.MustCompile(`[a-z0-9.+/#]+`)

func tokenSet(lower string) map[string]bool {
	out := map[string]bool{}
	for _, w := range tokenRe.FindAllString(lower, -1) {
		out[w] = true
	}
	return out
}

// containsSkill is whole-word for single tokens and substring for multiword
// dictionary entries.
func containsSkill(lower string, words map[string]bool, skill string) bool {
	if strings.ContainsAny(skill, " ") {
		return strings.Contains(lower, skill)
	}
	return words[skill]
}
