package skills

import "log/slog"

// Matcher canonicalizes skill names. It is immutable after construction and
// safe for concurrent use.
type Matcher struct {
	cfg        Config
	normalizer Normalizer
	mapper     Mapper
}

// NewMatcher wires a matcher around table. A nil table falls back to the
// built-in synonyms.
func NewMatcher(cfg Config, table *Table, logger *slog.Logger) *Matcher {
	if table == nil {
		table = DefaultTable()
	}
	normalizer := NewNormalizer()
	m := &Matcher{
		cfg:        cfg,
		normalizer: normalizer,
		mapper:     NewMapper(normalizer, table),
	}
	if logger != nil {
		logger = logger.With("component", "skills.matcher")
		if cfg.UseSemantic {
			logger.Warn("semantic matching requested but not available, using synonym table only")
		}
		logger.Info("skill matcher initialized", "semantic", cfg.UseSemantic, "synonyms", table.Len())
	}
	return m
}

// SemanticEnabled reports whether the semantic stage was requested.
func (m *Matcher) SemanticEnabled() bool {
	return m.cfg.UseSemantic
}

// Normalize applies text cleanup only.
func (m *Matcher) Normalize(skill string) string {
	return m.normalizer.Normalize(skill)
}

// Canonicalize returns the canonical name for skill.
func (m *Matcher) Canonicalize(skill string) string {
	return m.mapper.Resolve(skill)
}

// Lookup canonicalizes skill and reports whether the synonym table knew it.
func (m *Matcher) Lookup(skill string) (string, bool) {
	return m.mapper.Match(skill)
}

// CanonicalizeAll canonicalizes every entry, keeping positions.
func (m *Matcher) CanonicalizeAll(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = m.Canonicalize(s)
	}
	return out
}
