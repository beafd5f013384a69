package skills

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	m := NewMatcher(Config{}, nil, nil)

	got := m.Compare(
		[]string{"PostgreSQL", "ReactJS", "k8s", "Terraform", "react.js", "  "},
		[]string{"SQL Server", "React", "Kubernetes", "Python", ""},
	)
	want := Comparison{
		Matched: []string{"sql", "react", "kubernetes"},
		Missing: []string{"python"},
		Extra:   []string{"terraform"},
		Score:   0.75,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("comparison mismatch (-want +got):\n%s", diff)
	}
}

func TestCompareNothingRequired(t *testing.T) {
	m := NewMatcher(Config{}, nil, nil)

	got := m.Compare([]string{"Go"}, nil)
	if got.Score != 0 {
		t.Fatalf("expected zero score got %v", got.Score)
	}
	if diff := cmp.Diff([]string{"mongodb"}, got.Extra); diff != "" {
		t.Fatalf("extra mismatch (-want +got):\n%s", diff)
	}
	if len(got.Matched) != 0 || len(got.Missing) != 0 {
		t.Fatalf("unexpected matches: %+v", got)
	}
}
