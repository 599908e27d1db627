package resume

import (
	"testing"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

func TestAutofillFillsOnlyBlankFields(t *testing.T) {
	c := domain.Candidate{
		Phone:  "9000000000",
		Skills: []domain.Skill{{Name: "Go"}},
	}
	p := Parsed{
		Phone:    "9111111111",
		CGPA:     8.2,
		GitHub:   "https://github.com/asha",
		LinkedIn: "https://linkedin.com/in/asha",
		Skills:   []string{"go", "docker"},
	}

	if !Autofill(&c, p) {
		t.Fatal("expected changes")
	}
	if c.Phone != "9000000000" {
		t.Fatalf("existing phone overwritten: %s", c.Phone)
	}
	if c.Average != 8.2 {
		t.Fatalf("average = %v", c.Average)
	}
	if c.GitHub != p.GitHub || c.LinkedIn != p.LinkedIn {
		t.Fatalf("links not filled: %+v", c)
	}
	if len(c.Skills) != 2 || c.Skills[1].Name != "docker" {
		t.Fatalf("skills merged wrong: %+v", c.Skills)
	}
}

func TestAutofillNoChanges(t *testing.T) {
	c := domain.Candidate{
		Phone:    "9000000000",
		Average:  7.5,
		GitHub:   "g",
		LinkedIn: "l",
		Skills:   []domain.Skill{{Name: "Docker"}},
	}
	if Autofill(&c, Parsed{Phone: "x", CGPA: 9, GitHub: "y", LinkedIn: "z", Skills: []string{"docker"}}) {
		t.Fatalf("unexpected change: %+v", c)
	}
}
