package nlp

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// textNormalizer is the reference Normalizer: it folds fullwidth/halfwidth
// forms, applies Unicode NFC normalization, and collapses runs of
// whitespace to a single space. This mirrors what the source text would
// have gone through before a UD-style tagger/parser ever sees it.
type textNormalizer struct{}

// DefaultNormalizer returns the reference Normalizer.
func DefaultNormalizer() Normalizer { return textNormalizer{} }

func (textNormalizer) Normalize(text string) string {
	folded := width.Fold.String(text)
	nfc := norm.NFC.String(folded)
	return collapseSpace(strings.TrimSpace(nfc))
}

// collapseSpace replaces any run of whitespace with a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := false
	for _, r := range s {
		if isSpace(r) {
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f', ' ':
		return true
	}
	return false
}
