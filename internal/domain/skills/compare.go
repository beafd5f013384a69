package skills

// Comparison describes how a candidate's skills cover a set of required
// skills. All names are canonical.
type Comparison struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
	Extra   []string `json:"extra"`
	Score   float64  `json:"score"`
}

// Compare canonicalizes both lists and matches them by equality. Empty
// canonical names are ignored and duplicates collapse to their first
// occurrence.
func (m *Matcher) Compare(candidate, required []string) Comparison {
	have := m.uniqueCanonical(candidate)
	want := m.uniqueCanonical(required)

	haveSet := make(map[string]struct{}, len(have))
	for _, s := range have {
		haveSet[s] = struct{}{}
	}
	wantSet := make(map[string]struct{}, len(want))

	result := Comparison{
		Matched: []string{},
		Missing: []string{},
		Extra:   []string{},
	}
	for _, s := range want {
		wantSet[s] = struct{}{}
		if _, ok := haveSet[s]; ok {
			result.Matched = append(result.Matched, s)
		} else {
			result.Missing = append(result.Missing, s)
		}
	}
	for _, s := range have {
		if _, ok := wantSet[s]; !ok {
			result.Extra = append(result.Extra, s)
		}
	}
	if len(want) > 0 {
		result.Score = float64(len(result.Matched)) / float64(len(want))
	}
	return result
}

func (m *Matcher) uniqueCanonical(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, raw := range skills {
		// skip blanks before resolving, "" would otherwise resolve through the
		// substring fallback
		if m.Normalize(raw) == "" {
			continue
		}
		canonical := m.Canonicalize(raw)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out
}
