package catalog

import (
	"context"

	"github.com/yanqian/skillcanon/internal/domain/skills"
)

// MemorySource serves a fixed list of pairs, used for tests/dev.
type MemorySource struct {
	pairs []skills.Pair
}

// NewMemorySource copies pairs so later changes by the caller are not seen.
func NewMemorySource(pairs []skills.Pair) *MemorySource {
	out := make([]skills.Pair, len(pairs))
	copy(out, pairs)
	return &MemorySource{pairs: out}
}

// Load implements skills.CatalogSource.
func (s *MemorySource) Load(_ context.Context) ([]skills.Pair, error) {
	out := make([]skills.Pair, len(s.pairs))
	copy(out, s.pairs)
	return out, nil
}

var _ skills.CatalogSource = (*MemorySource)(nil)
