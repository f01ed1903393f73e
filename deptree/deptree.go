// Package deptree models a single sentence's dependency tree: the tokens,
// their POS tags, and the labeled arcs connecting them. It is read-only
// once built and offers the constant-time children/parent indices and the
// two traversal primitives the extractors in package extract depend on.
package deptree

import "sort"

// RootHead is the virtual head index UD-style parsers use to mark a root
// dependent: an arc {Head: RootHead, Dep: i, Label: "root"} means token i
// is a sentence root.
const RootHead = 0

// Token is a single surface word with its part-of-speech tag and its
// 1-based position in the sentence.
type Token struct {
	Text  string
	Tag   string
	Index int // 1-based
}

// Arc is a single labeled dependency edge, head -> dependent.
type Arc struct {
	Head  int
	Dep   int
	Label string
}

// Edge is a (other-end-index, label) pair returned by the children/parent
// indices.
type Edge struct {
	Index int
	Label string
}

// excludedEntitySubtreeLabels are never followed when collecting an entity's
// subtree: they mark clausal/appositive/punctuation attachments, not part of
// the entity's own referring expression.
var excludedEntitySubtreeLabels = map[string]bool{
	"acl":       true,
	"acl:relcl": true,
	"advcl":     true,
	"cop":       true,
	"punct":     true,
	"appos":     true,
}

// DepTree is an immutable dependency tree over a token sequence, with
// derived children/parent indices built once at construction.
type DepTree struct {
	Tokens   []Token
	Arcs     []Arc
	children map[int][]Edge // head -> deps, insertion order preserved
	parent   map[int]Edge   // dep -> head
}

// Build constructs a DepTree from tokens and arcs, computing the
// children/parent indices in a single pass.
func Build(tokens []Token, arcs []Arc) *DepTree {
	t := &DepTree{
		Tokens:   tokens,
		Arcs:     arcs,
		children: make(map[int][]Edge, len(arcs)),
		parent:   make(map[int]Edge, len(arcs)),
	}
	for _, a := range arcs {
		t.children[a.Head] = append(t.children[a.Head], Edge{Index: a.Dep, Label: a.Label})
		if a.Head != RootHead {
			t.parent[a.Dep] = Edge{Index: a.Head, Label: a.Label}
		}
	}
	return t
}

// Children returns the dependents of head in the order their arcs were
// supplied to Build.
func (t *DepTree) Children(head int) []Edge {
	return t.children[head]
}

// Parent returns the (head, label) of dep's governing arc, if any.
func (t *DepTree) Parent(dep int) (Edge, bool) {
	e, ok := t.parent[dep]
	return e, ok
}

// Roots returns the indices of every token attached to the virtual root
// (arcs with Head == RootHead), in ascending token order.
func (t *DepTree) Roots() []int {
	var roots []int
	for _, e := range t.children[RootHead] {
		roots = append(roots, e.Index)
	}
	sort.Ints(roots)
	return roots
}

// Token looks up a token by its 1-based index. ok is false for an
// out-of-range index (e.g. RootHead).
func (t *DepTree) Token(index int) (Token, bool) {
	if index < 1 || index > len(t.Tokens) {
		return Token{}, false
	}
	return t.Tokens[index-1], true
}

// Appositions returns the dependents of head labeled "appos".
func (t *DepTree) Appositions(head int) []int {
	var out []int
	for _, e := range t.children[head] {
		if e.Label == "appos" {
			out = append(out, e.Index)
		}
	}
	return out
}

// SubtreeOptions configures EntitySubtree.
type SubtreeOptions struct {
	// SkipLabels adds labels to exclude beyond the fixed excluded set
	// (used when splitting conjuncts out of a coordination).
	SkipLabels []string
	// IsHead is true at the outermost call: it additionally excludes
	// "case" (the dependent marks role via a preposition/marker, not
	// entity text) from the subtree.
	IsHead bool
}

// EntitySubtree returns every index reachable from head by following arcs
// whose label is not in the excluded set, sorted ascending. The excluded
// set is {acl, acl:relcl, advcl, cop, punct, appos} always, plus "case"
// when opts.IsHead is true, plus opts.SkipLabels.
func (t *DepTree) EntitySubtree(head int, opts SubtreeOptions) []int {
	skip := make(map[string]bool, len(excludedEntitySubtreeLabels)+len(opts.SkipLabels)+1)
	for l := range excludedEntitySubtreeLabels {
		skip[l] = true
	}
	if opts.IsHead {
		skip["case"] = true
	}
	for _, l := range opts.SkipLabels {
		skip[l] = true
	}

	seen := map[int]bool{head: true}
	queue := []int{head}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range t.children[cur] {
			if skip[e.Label] || seen[e.Index] {
				continue
			}
			seen[e.Index] = true
			queue = append(queue, e.Index)
		}
	}

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// Text joins the surface forms of the tokens at the given indices (already
// expected to be sorted ascending) with a single space.
func (t *DepTree) Text(indices []int) string {
	if len(indices) == 0 {
		return ""
	}
	var buf []byte
	for i, idx := range indices {
		tok, ok := t.Token(idx)
		if !ok {
			continue
		}
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, tok.Text...)
	}
	return string(buf)
}
