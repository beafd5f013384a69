package skills

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer lowercases, folds accents, strips punctuation and collapses
// whitespace. The zero value is ready to use.
type Normalizer struct {
	// newFolder builds the accent folding transformer. Transformers carry
	// state, so a fresh one is built per call.
	newFolder func() transform.Transformer
}

// NewNormalizer returns a Normalizer using the default accent folding chain.
func NewNormalizer() Normalizer {
	return Normalizer{}
}

func newNormalizerWithFolder(newFolder func() transform.Transformer) Normalizer {
	return Normalizer{newFolder: newFolder}
}

func defaultFolder() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
}

// Normalize returns the cleaned form of text. It never fails: when accent
// folding cannot be applied the lowercased text is used as-is.
func (n Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	folded, ok := n.foldAccents(lowered)
	if !ok {
		folded = lowered
	}
	return collapse(folded)
}

func (n Normalizer) foldAccents(s string) (string, bool) {
	build := n.newFolder
	if build == nil {
		build = defaultFolder
	}
	out, _, err := transform.String(build(), s)
	if err != nil {
		return "", false
	}
	return out, true
}

// collapse turns every non-word rune into a separator and joins the
// remaining words with single spaces.
func collapse(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		if isWordRune(r) {
			builder.WriteRune(r)
			lastSpace = false
			continue
		}
		// whitespace and punctuation both act as a separator
		if !lastSpace {
			builder.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimSpace(builder.String())
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
