package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yanqian/skillcanon/internal/domain/skills"
	apperrors "github.com/yanqian/skillcanon/pkg/errors"
)

// FileSource reads synonym pairs from a YAML document. The top-level
// "synonyms" key holds either a mapping of variant to canonical name or a
// list of {variant, canonical} objects. Document order is kept.
type FileSource struct {
	path string
}

// NewFileSource constructs a source for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load implements skills.CatalogSource.
func (s *FileSource) Load(ctx context.Context) ([]skills.Pair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, apperrors.Wrap("catalog_error", "read synonym file", err)
	}
	pairs, err := ParsePairs(data)
	if err != nil {
		return nil, apperrors.Wrap("catalog_error", fmt.Sprintf("parse synonym file %s", s.path), err)
	}
	return pairs, nil
}

// ParsePairs decodes a synonym document.
func ParsePairs(data []byte) ([]skills.Pair, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("expected a yaml document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping with a synonyms key", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "synonyms" {
			continue
		}
		return decodeSynonyms(root.Content[i+1])
	}
	return nil, errors.New("missing synonyms key")
}

func decodeSynonyms(node *yaml.Node) ([]skills.Pair, error) {
	seen := make(map[string]int)
	var pairs []skills.Pair
	add := func(p skills.Pair, line int) error {
		if first, ok := seen[p.Variant]; ok {
			return fmt.Errorf("line %d: variant %q already defined on line %d", line, p.Variant, first)
		}
		seen[p.Variant] = line
		pairs = append(pairs, p)
		return nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: canonical name for %q must be a string", value.Line, key.Value)
			}
			if err := add(skills.Pair{Variant: key.Value, Canonical: value.Value}, key.Line); err != nil {
				return nil, err
			}
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			var p skills.Pair
			if err := item.Decode(&p); err != nil {
				return nil, fmt.Errorf("line %d: %w", item.Line, err)
			}
			if err := add(p, item.Line); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("line %d: synonyms must be a mapping or a list", node.Line)
	}
	return pairs, nil
}

var _ skills.CatalogSource = (*FileSource)(nil)
