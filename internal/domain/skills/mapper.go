package skills

import "strings"

// Mapper resolves skill names to canonical names using a synonym table.
type Mapper struct {
	normalizer Normalizer
	table      *Table
}

// NewMapper builds a mapper over table. A nil table resolves every skill
// to its normalized form.
func NewMapper(normalizer Normalizer, table *Table) Mapper {
	return Mapper{normalizer: normalizer, table: table}
}

// Resolve returns the canonical name for skill.
func (m Mapper) Resolve(skill string) string {
	canonical, _ := m.Match(skill)
	return canonical
}

// Match resolves skill and reports whether a table entry was used.
//
// An exact table hit wins. Otherwise pairs are scanned in table order and the
// first one passing substringMatch is used. Skills that match nothing are
// returned normalized with found set to false.
func (m Mapper) Match(skill string) (canonical string, found bool) {
	normalized := m.normalizer.Normalize(skill)
	if canonical, ok := m.table.Lookup(normalized); ok {
		return canonical, true
	}
	canonical = normalized
	m.table.each(func(p Pair) bool {
		if substringMatch(p.Variant, normalized) {
			canonical = p.Canonical
			found = true
			return false
		}
		return true
	})
	return canonical, found
}

// substringMatch keeps both containment checks and the length guard as they
// are. Since a variant contained in the input can never be longer than it,
// only "input inside variant" ends up matching, and an empty input matches
// every variant.
func substringMatch(variant, normalized string) bool {
	variantInInput := strings.Contains(normalized, variant)
	inputInVariant := strings.Contains(variant, normalized)
	if !variantInInput && !inputInVariant {
		return false
	}
	return len(variant) > len(normalized) || inputInVariant
}
