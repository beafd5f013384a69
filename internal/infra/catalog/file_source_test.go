package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/skillcanon/internal/domain/skills"
	apperrors "github.com/yanqian/skillcanon/pkg/errors"
)

func TestParsePairsMappingKeepsOrder(t *testing.T) {
	pairs, err := ParsePairs([]byte(`
synonyms:
  tf: terraform
  golang: go
  ts: typescript
  "c#": csharp
`))
	require.NoError(t, err)
	require.Equal(t, []skills.Pair{
		{Variant: "tf", Canonical: "terraform"},
		{Variant: "golang", Canonical: "go"},
		{Variant: "ts", Canonical: "typescript"},
		{Variant: "c#", Canonical: "csharp"},
	}, pairs)
}

func TestParsePairsSequence(t *testing.T) {
	pairs, err := ParsePairs([]byte(`
version: 1
synonyms:
  - variant: gcp
    canonical: google cloud
  - variant: google cloud platform
    canonical: google cloud
`))
	require.NoError(t, err)
	require.Equal(t, []skills.Pair{
		{Variant: "gcp", Canonical: "google cloud"},
		{Variant: "google cloud platform", Canonical: "google cloud"},
	}, pairs)
}

func TestParsePairsErrors(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		errMsg string
	}{
		{name: "duplicate", doc: "synonyms:\n  tf: terraform\n  tf: tofu\n", errMsg: "already defined on line 2"},
		{name: "missing key", doc: "aliases:\n  tf: terraform\n", errMsg: "missing synonyms key"},
		{name: "not a mapping", doc: "- tf\n", errMsg: "expected a mapping"},
		{name: "nested value", doc: "synonyms:\n  tf:\n    - terraform\n", errMsg: "must be a string"},
		{name: "scalar synonyms", doc: "synonyms: terraform\n", errMsg: "mapping or a list"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePairs([]byte(tc.doc))
			require.ErrorContains(t, err, tc.errMsg)
		})
	}
}

func TestParsePairsEmptyDocument(t *testing.T) {
	pairs, err := ParsePairs(nil)
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestFileSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("synonyms:\n  golang: go\n"), 0o600))

	pairs, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []skills.Pair{{Variant: "golang", Canonical: "go"}}, pairs)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	require.True(t, apperrors.IsCode(err, "catalog_error"))
}

func TestFileSourceHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFileSource("unused.yaml").Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestMemorySourceCopies(t *testing.T) {
	in := []skills.Pair{{Variant: "golang", Canonical: "go"}}
	src := NewMemorySource(in)
	in[0].Canonical = "changed"

	pairs, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, "go", pairs[0].Canonical)
}

func TestPostgresSourceQuery(t *testing.T) {
	src := NewPostgresSource(nil, "")
	require.Contains(t, src.query(), `FROM "skill_synonyms"`)
	require.Contains(t, src.query(), "ORDER BY position, variant")
}
