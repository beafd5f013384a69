package skills

import (
	"fmt"
	"strings"

	apperrors "github.com/yanqian/skillcanon/pkg/errors"
)

// Pair maps a skill variant to its canonical name.
type Pair struct {
	Variant   string `yaml:"variant" json:"variant"`
	Canonical string `yaml:"canonical" json:"canonical"`
}

// Table is an ordered, read-only synonym table. Pair order decides which
// entry wins during substring matching.
type Table struct {
	pairs []Pair
	index map[string]string
}

// NewTable validates pairs and builds a table that keeps their order.
func NewTable(pairs []Pair) (*Table, error) {
	t := &Table{
		pairs: make([]Pair, 0, len(pairs)),
		index: make(map[string]string, len(pairs)),
	}
	if err := t.add(pairs); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNewTable is NewTable for static pair lists.
func MustNewTable(pairs []Pair) *Table {
	t, err := NewTable(pairs)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Table) add(pairs []Pair) error {
	for i, p := range pairs {
		if strings.TrimSpace(p.Variant) == "" {
			return apperrors.Wrap("invalid_table", fmt.Sprintf("pair %d has an empty variant", i), nil)
		}
		if strings.TrimSpace(p.Canonical) == "" {
			return apperrors.Wrap("invalid_table", fmt.Sprintf("variant %q has an empty canonical name", p.Variant), nil)
		}
		if _, exists := t.index[p.Variant]; exists {
			return apperrors.Wrap("invalid_table", fmt.Sprintf("duplicate variant %q", p.Variant), nil)
		}
		t.index[p.Variant] = p.Canonical
		t.pairs = append(t.pairs, p)
	}
	return nil
}

// Extend returns a new table holding the receiver's pairs followed by extra.
// The receiver is left untouched.
func (t *Table) Extend(extra []Pair) (*Table, error) {
	combined := make([]Pair, 0, t.Len()+len(extra))
	combined = append(combined, t.Pairs()...)
	combined = append(combined, extra...)
	return NewTable(combined)
}

// Lookup returns the canonical name registered for an exact variant.
func (t *Table) Lookup(variant string) (string, bool) {
	if t == nil {
		return "", false
	}
	canonical, ok := t.index[variant]
	return canonical, ok
}

// Pairs returns a copy of the table in match order.
func (t *Table) Pairs() []Pair {
	if t == nil {
		return nil
	}
	out := make([]Pair, len(t.pairs))
	copy(out, t.pairs)
	return out
}

// Len reports the number of pairs.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pairs)
}

func (t *Table) each(fn func(Pair) bool) {
	if t == nil {
		return
	}
	for _, p := range t.pairs {
		if !fn(p) {
			return
		}
	}
}
