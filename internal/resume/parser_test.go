package resume

import (
	"strings"
	"testing"
)

const sampleResume = `
Priya Sharma
B.Tech Computer Science, Batch of 2026
Email: priya.sharma@college.edu | Phone: +91 9876543210
CGPA: 8.45
github.com/priyasharma | linkedin.com/in/priya-sharma

SKILLS
Python, Go, SQL, Docker, Machine Learning

PROJECTS
Built a REST API with Django and PostgreSQL.
`

func TestParse(t *testing.T) {
	p := Parse(sampleResume)

	if p.Email != "priya.sharma@college.edu" {
		t.Errorf("email = %q", p.Email)
	}
	if !strings.Contains(p.Phone, "9876543210") {
		t.Errorf("phone = %q", p.Phone)
	}
	if p.CGPA != 8.45 {
		t.Errorf("cgpa = %v", p.CGPA)
	}
	if p.GitHub != "github.com/priyasharma" {
		t.Errorf("github = %q", p.GitHub)
	}
	if p.LinkedIn != "linkedin.com/in/priya-sharma" {
		t.Errorf("linkedin = %q", p.LinkedIn)
	}

	wantSkills := []string{"python", "go", "sql", "docker", "django", "postgresql", "machine learning", "rest api"}
	have := map[string]bool{}
	for _, s := range p.Skills {
		have[s] = true
	}
	for _, w := range wantSkills {
		if !have[w] {
			t.Errorf("skill %q not detected in %v", w, p.Skills)
		}
	}

	if len(p.Degrees) != 1 || p.Degrees[0] != "b.tech" {
		t.Errorf("degrees = %v", p.Degrees)
	}
}

func TestParseWholeWordSkills(t *testing.T) {
	// "r" and "c" must not fire on ordinary prose
	p := Parse("I wrote a report about computers and their care.")
	for _, s := range p.Skills {
		if s == "r" || s == "c" {
			t.Errorf("false positive skill %q", s)
		}
	}
}

func TestParseRejectsAbsurdCGPA(t *testing.T) {
	p := Parse("GPA: 88.5 on some other scale")
	if p.CGPA != 0 {
		t.Errorf("cgpa = %v, want 0", p.CGPA)
	}
}

func TestParseEmptyText(t *testing.T) {
	p := Parse("")
	if p.Email != "" || p.CGPA != 0 || len(p.Skills) != 0 {
		t.Errorf("parsed = %+v", p)
	}
}

func TestExtractTextTxt(t *testing.T) {
	got, err := ExtractText([]byte("  plain resume text\n"), "txt")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "plain resume text" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractTextHTML(t *testing.T) {
	html := `<html><head><style>p{color:red}</style></head>
<body><h1>Priya Sharma</h1><p>Skills: Go, SQL</p><script>x()</script></body></html>`
	got, err := ExtractText([]byte(html), "html")
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(got, "Priya Sharma") || !strings.Contains(got, "Skills: Go, SQL") {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(got, "x()") || strings.Contains(got, "color:red") {
		t.Fatalf("script/style leaked: %q", got)
	}
}

func TestExtractTextUnsupported(t *testing.T) {
	if _, err := ExtractText([]byte("x"), "exe"); err == nil {
		t.Fatal("want error for unsupported format")
	}
}
