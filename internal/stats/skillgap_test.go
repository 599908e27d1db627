package stats

import (
	"testing"

	"github.com/akshaynaik00018/cpms/internal/domain"
)

func posting(skills ...string) domain.Posting {
	return domain.Posting{RequiredSkills: skills, Status: domain.PostingOpen}
}

func TestSkillGapFor(t *testing.T) {
	open := []domain.Posting{
		posting("Go", "Kubernetes"),
		posting("go", "sql"),
		posting("SQL", "Kubernetes"),
	}

	gap := SkillGapFor([]string{"Go"}, open)
	if len(gap) != 2 {
		t.Fatalf("gap = %+v", gap)
	}
	if gap[0].Skill != "kubernetes" || gap[0].Postings != 2 {
		t.Fatalf("top = %+v", gap[0])
	}
	if gap[1].Skill != "sql" || gap[1].Postings != 2 {
		t.Fatalf("second = %+v", gap[1])
	}
}

func TestGapForSplitsMatching(t *testing.T) {
	open := []domain.Posting{
		posting("Go", "Kubernetes"),
		posting("go", "sql"),
	}

	g := GapFor([]string{"Go"}, open)
	if len(g.Matching) != 1 || g.Matching[0].Skill != "go" || g.Matching[0].Postings != 2 {
		t.Fatalf("matching = %+v", g.Matching)
	}
	if len(g.Missing) != 2 {
		t.Fatalf("missing = %+v", g.Missing)
	}
}

func TestSkillGapCaseInsensitive(t *testing.T) {
	gap := SkillGapFor([]string{"PYTHON"}, []domain.Posting{posting("python", "Django")})
	if len(gap) != 1 || gap[0].Skill != "django" {
		t.Fatalf("gap = %+v", gap)
	}
}

func TestSkillGapDedupesWithinPosting(t *testing.T) {
	gap := SkillGapFor(nil, []domain.Posting{posting("Rust", "rust", "RUST")})
	if len(gap) != 1 || gap[0].Postings != 1 {
		t.Fatalf("gap = %+v", gap)
	}
}

func TestSkillGapTieBreaksAlphabetically(t *testing.T) {
	gap := SkillGapFor(nil, []domain.Posting{posting("zig", "ada")})
	if gap[0].Skill != "ada" || gap[1].Skill != "zig" {
		t.Fatalf("gap = %+v", gap)
	}
}

func TestPriorityBands(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "Low"}, {5, "Low"}, {6, "Medium"}, {10, "Medium"}, {11, "High"},
	}
	for _, tc := range cases {
		if got := priority(tc.n); got != tc.want {
			t.Errorf("priority(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestTopRecommendationsCap(t *testing.T) {
	gap := make([]SkillDemand, 8)
	if got := TopRecommendations(gap); len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	short := make([]SkillDemand, 3)
	if got := TopRecommendations(short); len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}
