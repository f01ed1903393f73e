package tagteam

import (
	"github.com/arjunmenon/tagteam/deptree"
	"github.com/arjunmenon/tagteam/jsonld"
)

// debugTokens renders tree's token sequence as the spec §6 _debug.tokens
// shape: one entry per token, with its resolved head index and arc label
// (0/"root" for a sentence root, which has no governing arc).
func debugTokens(tree *deptree.DepTree) []jsonld.DebugToken {
	out := make([]jsonld.DebugToken, 0, len(tree.Tokens))
	for _, tok := range tree.Tokens {
		head, label := 0, "root"
		if e, ok := tree.Parent(tok.Index); ok {
			head, label = e.Index, e.Label
		}
		out = append(out, jsonld.DebugToken{
			Index: tok.Index,
			Text:  tok.Text,
			Tag:   tok.Tag,
			Head:  head,
			Label: label,
		})
	}
	return out
}
