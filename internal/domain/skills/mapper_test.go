package skills

import "testing"

func TestResolveDefaultTable(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "exact postgres", in: "PostgreSQL", out: "sql"},
		{name: "exact k8s", in: "k8s", out: "kubernetes"},
		{name: "exact reactjs", in: "ReactJS", out: "react"},
		{name: "dotted react", in: "React.js", out: "react"},
		{name: "dotted node", in: "Node.js", out: "node.js"},
		{name: "accented", in: "Dócker", out: "docker"},
		{name: "aws long form", in: "Amazon Web Services", out: "aws"},
		{name: "identity fallback", in: "Terraform", out: "terraform"},
		{name: "identity keeps normalized form", in: "  Machine-Learning ", out: "machine learning"},
		{name: "input inside variant", in: "Mongo D", out: "mongodb"},
		{name: "prefix of a variant", in: "Restf", out: "rest api"},
	}

	m := NewMapper(NewNormalizer(), DefaultTable())
	for _, tc := range cases {
		if got := m.Resolve(tc.in); got != tc.out {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.out, got)
		}
	}
}

// The substring fallback is a heuristic and matches short inputs against the
// first variant containing them. These cases pin that behavior.
func TestResolveSubstringQuirks(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{in: "", out: "sql"},
		{in: "!!!", out: "sql"},
		{in: "Server", out: "sql"},
		{in: "C++", out: "sql"},
		{in: "ES", out: "sql"},
		{in: "Go", out: "mongodb"},
		{in: "script", out: "javascript"},
		{in: "data", out: "data science"},
		// a variant inside the input never matches on its own
		{in: "node js developer", out: "node js developer"},
		{in: "senior java engineer", out: "senior java engineer"},
		{in: "JavaScript", out: "javascript"},
	}

	m := NewMapper(NewNormalizer(), DefaultTable())
	for _, tc := range cases {
		if got := m.Resolve(tc.in); got != tc.out {
			t.Fatalf("%q: expected %q got %q", tc.in, tc.out, got)
		}
	}
}

func TestResolveFirstPairWins(t *testing.T) {
	first := MustNewTable([]Pair{
		{Variant: "javascript", Canonical: "first"},
		{Variant: "java", Canonical: "second"},
	})
	second := MustNewTable([]Pair{
		{Variant: "java", Canonical: "second"},
		{Variant: "javascript", Canonical: "first"},
	})

	if got := NewMapper(NewNormalizer(), first).Resolve("jav"); got != "first" {
		t.Fatalf("expected %q got %q", "first", got)
	}
	if got := NewMapper(NewNormalizer(), second).Resolve("jav"); got != "second" {
		t.Fatalf("expected %q got %q", "second", got)
	}
	// exact hits ignore order
	if got := NewMapper(NewNormalizer(), first).Resolve("Java"); got != "second" {
		t.Fatalf("expected exact hit %q got %q", "second", got)
	}
}

func TestResolveEqualLengthOnlyMatchesExactly(t *testing.T) {
	table := MustNewTable([]Pair{
		{Variant: "abcd", Canonical: "first"},
		{Variant: "abce", Canonical: "second"},
	})
	m := NewMapper(NewNormalizer(), table)

	if got := m.Resolve("abce"); got != "second" {
		t.Fatalf("expected %q got %q", "second", got)
	}
	if got := m.Resolve("abcf"); got != "abcf" {
		t.Fatalf("expected identity got %q", got)
	}
}

func TestSubstringMatch(t *testing.T) {
	cases := []struct {
		variant    string
		normalized string
		want       bool
	}{
		{variant: "mongo", normalized: "go", want: true},
		{variant: "node", normalized: "node js developer", want: false},
		{variant: "java", normalized: "java", want: true},
		{variant: "java", normalized: "ruby", want: false},
		{variant: "sql server", normalized: "", want: true},
	}
	for _, tc := range cases {
		if got := substringMatch(tc.variant, tc.normalized); got != tc.want {
			t.Fatalf("substringMatch(%q, %q): expected %v got %v", tc.variant, tc.normalized, tc.want, got)
		}
	}
}

func TestResolveCanonicalFormsAreStable(t *testing.T) {
	m := NewMapper(NewNormalizer(), DefaultTable())
	seen := map[string]struct{}{}
	for _, p := range DefaultPairs() {
		if _, ok := seen[p.Canonical]; ok {
			continue
		}
		seen[p.Canonical] = struct{}{}
		if got := m.Resolve(p.Canonical); got != p.Canonical {
			t.Fatalf("resolve(%q): expected %q got %q", p.Canonical, p.Canonical, got)
		}
	}

	inputs := []string{"PostgreSQL", "k8s", "ReactJS", "Terraform", "nodejs", "Python 3", "GitLab"}
	for _, in := range inputs {
		once := m.Resolve(in)
		if twice := m.Resolve(once); twice != once {
			t.Fatalf("resolve(%q): %q then %q", in, once, twice)
		}
	}
}

func TestResolveNilTable(t *testing.T) {
	m := NewMapper(NewNormalizer(), nil)
	if got := m.Resolve("PostgreSQL"); got != "postgresql" {
		t.Fatalf("expected %q got %q", "postgresql", got)
	}
}

func TestMatchReportsTableHits(t *testing.T) {
	m := NewMapper(NewNormalizer(), DefaultTable())
	cases := []struct {
		in    string
		out   string
		found bool
	}{
		{in: "Java", out: "java", found: true},
		{in: "html", out: "html", found: true},
		{in: "Terraform", out: "terraform", found: false},
	}
	for _, tc := range cases {
		got, found := m.Match(tc.in)
		if got != tc.out || found != tc.found {
			t.Fatalf("%q: expected (%q, %v) got (%q, %v)", tc.in, tc.out, tc.found, got, found)
		}
	}
}
