package nlp

import (
	"regexp"

	"github.com/arjunmenon/tagteam/deptree"
)

// tokenRe splits on words (including internal apostrophes/hyphens as in
// "doesn't", "fire-damper") and standalone punctuation.
var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['\-][\p{L}\p{N}]+)*|[.,!?;:()"]`)

// ruleTokenizer is the reference Tokenizer.
type ruleTokenizer struct{}

// RuleTokenizer returns the reference Tokenizer.
func RuleTokenizer() Tokenizer { return ruleTokenizer{} }

func (ruleTokenizer) Tokenize(text string) []deptree.Token {
	matches := tokenRe.FindAllString(text, -1)
	tokens := make([]deptree.Token, 0, len(matches))
	for i, m := range matches {
		tokens = append(tokens, deptree.Token{Text: m, Index: i + 1})
	}
	return tokens
}
