package match

import (
	"reflect"
	"testing"
)

func TestSkills(t *testing.T) {
	tests := []struct {
		name      string
		candidate []string
		required  []string
		want      Result
	}{
		{
			name:      "half match case insensitive",
			candidate: []string{"python"},
			required:  []string{"Python", "SQL"},
			want:      Result{Percentage: 50, Matching: []string{"python"}, Missing: []string{"sql"}},
		},
		{
			name:      "empty required is zero percent",
			candidate: []string{"go", "rust"},
			required:  nil,
			want:      Result{Percentage: 0},
		},
		{
			name:      "duplicates in required count once",
			candidate: []string{"go"},
			required:  []string{"Go", "go", "SQL"},
			want:      Result{Percentage: 50, Matching: []string{"go"}, Missing: []string{"sql"}},
		},
		{
			name:      "full match",
			candidate: []string{"React", "Node.js"},
			required:  []string{"react", "node.js"},
			want:      Result{Percentage: 100, Matching: []string{"react", "node.js"}},
		},
		{
			name:      "no overlap",
			candidate: []string{"java"},
			required:  []string{"Go", "SQL", "Docker"},
			want:      Result{Percentage: 0, Missing: []string{"go", "sql", "docker"}},
		},
		{
			name:      "rounding one of three",
			candidate: []string{"go"},
			required:  []string{"go", "sql", "docker"},
			want:      Result{Percentage: 33, Matching: []string{"go"}, Missing: []string{"sql", "docker"}},
		},
		{
			name:      "whitespace trimmed",
			candidate: []string{"  Python "},
			required:  []string{" python"},
			want:      Result{Percentage: 100, Matching: []string{"python"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Skills(tt.candidate, tt.required)
			if got.Percentage != tt.want.Percentage {
				t.Errorf("Percentage = %d, want %d", got.Percentage, tt.want.Percentage)
			}
			if !reflect.DeepEqual(got.Matching, tt.want.Matching) {
				t.Errorf("Matching = %v, want %v", got.Matching, tt.want.Matching)
			}
			if !reflect.DeepEqual(got.Missing, tt.want.Missing) {
				t.Errorf("Missing = %v, want %v", got.Missing, tt.want.Missing)
			}
		})
	}
}

func TestSkillsOrderFollowsRequiredList(t *testing.T) {
	got := Skills([]string{"b", "d"}, []string{"c", "b", "a", "d"})
	if !reflect.DeepEqual(got.Matching, []string{"b", "d"}) {
		t.Errorf("Matching order = %v, want [b d]", got.Matching)
	}
	if !reflect.DeepEqual(got.Missing, []string{"c", "a"}) {
		t.Errorf("Missing order = %v, want [c a]", got.Missing)
	}
}
