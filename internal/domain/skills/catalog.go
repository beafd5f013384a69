package skills

import (
	"context"
	"fmt"

	apperrors "github.com/yanqian/skillcanon/pkg/errors"
)

// LoadTable builds the process synonym table. Pairs from src are appended
// after the built-in ones when extend is set, and replace them otherwise.
// Catalog variants are normalized first so they can match exactly; built-in
// variants are kept verbatim. A nil src yields the built-in table.
func LoadTable(ctx context.Context, src CatalogSource, extend bool) (*Table, error) {
	if src == nil {
		return DefaultTable(), nil
	}
	pairs, err := src.Load(ctx)
	if err != nil {
		return nil, apperrors.Wrap("catalog_error", "load synonym catalog", err)
	}
	pairs, err = normalizeVariants(pairs)
	if err != nil {
		return nil, err
	}
	if extend {
		return DefaultTable().Extend(pairs)
	}
	if len(pairs) == 0 {
		return nil, apperrors.Wrap("invalid_table", "synonym catalog is empty", nil)
	}
	return NewTable(pairs)
}

func normalizeVariants(pairs []Pair) ([]Pair, error) {
	n := NewNormalizer()
	out := make([]Pair, len(pairs))
	for i, p := range pairs {
		variant := n.Normalize(p.Variant)
		if variant == "" {
			return nil, apperrors.Wrap("invalid_table", fmt.Sprintf("catalog variant %q is empty once normalized", p.Variant), nil)
		}
		out[i] = Pair{Variant: variant, Canonical: p.Canonical}
	}
	return out, nil
}
