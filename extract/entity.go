// Package extract implements the dependency-tree–driven extractors of
// spec §4.2-4.4: entities, acts/structural assertions, and the role
// mapper linking them. Each extractor is a narrow interface over a
// concrete Tree* implementation, per spec §9's "trait/interface
// boundaries" design note — Graph Assembly (package graph) is their
// coordinator and owns no extraction logic of its own.
package extract

import (
	"strconv"
	"strings"

	"github.com/arjunmenon/tagteam/deptree"
	"github.com/arjunmenon/tagteam/nlp"
	"github.com/arjunmenon/tagteam/ontology"
)

// entityBearingLabels is the fixed arc-label set spec §4.2 step 2 names.
var entityBearingLabels = map[string]bool{
	"nsubj": true, "nsubj:pass": true, "obj": true, "iobj": true,
	"obl": true, "obl:agent": true, "nmod": true,
}

var scarcityAdjectives = map[string]bool{
	"last": true, "only": true, "final": true, "sole": true, "remaining": true,
}

// Entity is the extractor's view of a T1 DiscourseReferent before the
// graph builder mints its paired T2 RealWorldEntity.
type Entity struct {
	IRI            string
	Text           string
	HeadIndex      int
	HeadTag        string
	SpanOffset     int // deterministic positional proxy for IRI minting (spec §4.9)
	Role           string // UD label of the governing arc, "" for root nouns
	DenotesType    ontology.TypeTag
	Definiteness   string // definite | indefinite | bare
	Quantity       *int
	QuantityIndicator string
	IsScarce       bool
	Aliases        []string
	ResolvedVia    string // "alias" when promoted via spec §4.2 step 5
	CanonicalForm  string
	SubtreeIndices []int
}

// EntityExtractor is the spec §9 interface boundary for entity
// extraction.
type EntityExtractor interface {
	Extract(tree *deptree.DepTree) (entities []Entity, aliasMap map[string]string)
}

// treeEntityExtractor is the reference TreeEntityExtractor (spec §4.2).
type treeEntityExtractor struct {
	Gazetteer nlp.Gazetteer
	Mint      ontology.MintOptions
}

// NewEntityExtractor returns the reference EntityExtractor.
func NewEntityExtractor(gazetteer nlp.Gazetteer, mint ontology.MintOptions) EntityExtractor {
	return treeEntityExtractor{Gazetteer: gazetteer, Mint: mint}
}

func (x treeEntityExtractor) Extract(tree *deptree.DepTree) ([]Entity, map[string]string) {
	aliasMap := make(map[string]string)
	seen := make(map[int]bool)
	var entities []Entity

	for _, root := range tree.Roots() {
		tok, _ := tree.Token(root)
		if strings.HasPrefix(tok.Tag, "VB") {
			continue
		}
		if hasChildLabel(tree, root, "cop") || hasChildLabel(tree, root, "nsubj") {
			continue
		}
		if seen[root] {
			continue
		}
		entities = append(entities, x.buildEntitiesFromHead(tree, root, "root", seen, aliasMap)...)
	}

	for _, arc := range tree.Arcs {
		if !entityBearingLabels[arc.Label] || seen[arc.Dep] {
			continue
		}
		entities = append(entities, x.buildEntitiesFromHead(tree, arc.Dep, arc.Label, seen, aliasMap)...)
	}

	promoteAliases(entities, aliasMap)
	return entities, aliasMap
}

// buildEntitiesFromHead applies the conservative coordination split
// (spec §4.2 step 3) and returns one or more Entity values rooted at
// head.
func (x treeEntityExtractor) buildEntitiesFromHead(tree *deptree.DepTree, head int, role string, seen map[int]bool, aliasMap map[string]string) []Entity {
	if heads, ok := x.trySplitCoordination(tree, head); ok {
		var out []Entity
		out = append(out, x.buildOneEntity(tree, head, role, []string{"conj", "cc"}, seen, aliasMap))
		for _, conjHead := range heads {
			out = append(out, x.buildOneEntity(tree, conjHead, "conj", []string{"cc"}, seen, aliasMap))
		}
		return out
	}
	return []Entity{x.buildOneEntity(tree, head, role, nil, seen, aliasMap)}
}

func (x treeEntityExtractor) buildOneEntity(tree *deptree.DepTree, head int, role string, skip []string, seen map[int]bool, aliasMap map[string]string) Entity {
	indices := tree.EntitySubtree(head, deptree.SubtreeOptions{SkipLabels: skip, IsHead: true})
	for _, i := range indices {
		seen[i] = true
	}
	text := tree.Text(indices)
	headTok, _ := tree.Token(head)

	e := Entity{
		Text:           ontology.Sanitize(text),
		HeadIndex:      head,
		HeadTag:        headTok.Tag,
		SpanOffset:     head,
		Role:           role,
		SubtreeIndices: indices,
	}

	e.Definiteness, e.QuantityIndicator = classifyDeterminer(tree, head)
	e.Quantity, e.IsScarce = classifyQuantity(tree, head)
	e.Aliases = collectAliases(tree, indices, text, aliasMap)
	e.DenotesType = x.classifyType(text, headTok.Text)
	e.IRI = ontology.Mint(x.Mint, e.Text, e.SpanOffset, ontology.TypeDiscourseReferent, "")

	return e
}

// trySplitCoordination implements spec §4.2 step 3's four-part
// condition. It returns the conjunct head indices (excluding head
// itself) and true when all conditions hold.
func (x treeEntityExtractor) trySplitCoordination(tree *deptree.DepTree, head int) ([]int, bool) {
	var conjuncts []int
	for _, e := range tree.Children(head) {
		if e.Label == "conj" {
			conjuncts = append(conjuncts, e.Index)
		}
	}
	if len(conjuncts) == 0 {
		return nil, false
	}

	headTok, _ := tree.Token(head)
	if !isProperNounTag(headTok.Tag) {
		return nil, false
	}
	if hasChildLabel(tree, head, "compound") {
		return nil, false
	}
	headText, _ := tree.Token(head)
	if _, ok := x.Gazetteer.Classify(headText.Text); !ok {
		return nil, false
	}

	for _, c := range conjuncts {
		tok, _ := tree.Token(c)
		if !isProperNounTag(tok.Tag) {
			return nil, false
		}
		if hasChildLabel(tree, c, "compound") {
			return nil, false
		}
		if _, ok := x.Gazetteer.Classify(tok.Text); !ok {
			return nil, false
		}
	}
	return conjuncts, true
}

// classifyType implements spec §4.2 step 6: gazetteer-first on the
// full text, then the head word, then ontology.TypeGenericEntity when
// neither is known (the head's POS tag is not consulted).
func (x treeEntityExtractor) classifyType(fullText, headWord string) ontology.TypeTag {
	if t, ok := x.Gazetteer.Classify(fullText); ok {
		return ontology.TypeTag(t)
	}
	if t, ok := x.Gazetteer.Classify(headWord); ok {
		return ontology.TypeTag(t)
	}
	return ontology.TypeGenericEntity
}

func classifyDeterminer(tree *deptree.DepTree, head int) (definiteness, quantityIndicator string) {
	for _, e := range tree.Children(head) {
		if e.Label != "det" {
			continue
		}
		tok, _ := tree.Token(e.Index)
		switch strings.ToLower(tok.Text) {
		case "the", "this", "that", "these", "those":
			return "definite", ""
		case "a", "an":
			return "indefinite", ""
		case "every", "all", "each", "some", "any", "no":
			return "bare", strings.ToLower(tok.Text)
		}
	}
	return "bare", ""
}

func classifyQuantity(tree *deptree.DepTree, head int) (*int, bool) {
	scarce := false
	var quantity *int
	for _, e := range tree.Children(head) {
		tok, _ := tree.Token(e.Index)
		switch e.Label {
		case "amod":
			if scarcityAdjectives[strings.ToLower(tok.Text)] {
				scarce = true
				one := 1
				quantity = &one
			}
		case "nmod", "nummod", "det":
			if tok.Tag == "CD" {
				if n, err := strconv.Atoi(tok.Text); err == nil {
					quantity = &n
				} else if n, ok := wordNumbers[strings.ToLower(tok.Text)]; ok {
					quantity = &n
				}
			}
		}
	}
	return quantity, scarce
}

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// collectAliases implements spec §4.2 step 4: appos dependents across
// the entity's subtree become aliases, registered canonical-by-text in
// aliasMap.
func collectAliases(tree *deptree.DepTree, indices []int, canonicalText string, aliasMap map[string]string) []string {
	var aliases []string
	for _, idx := range indices {
		for _, a := range tree.Appositions(idx) {
			subtree := tree.EntitySubtree(a, deptree.SubtreeOptions{IsHead: true})
			aliasText := tree.Text(subtree)
			aliases = append(aliases, ontology.Sanitize(aliasText))
			aliasMap[strings.ToLower(aliasText)] = canonicalText
		}
	}
	return aliases
}

// promoteAliases implements spec §4.2 step 5: a later entity whose
// text is a registered alias of an earlier entity is marked resolved.
func promoteAliases(entities []Entity, aliasMap map[string]string) {
	seenCanonical := make(map[string]bool)
	for i := range entities {
		lower := strings.ToLower(entities[i].Text)
		if canonical, ok := aliasMap[lower]; ok && seenCanonical[strings.ToLower(canonical)] {
			entities[i].ResolvedVia = "alias"
			entities[i].CanonicalForm = canonical
		}
		seenCanonical[lower] = true
	}
}

func hasChildLabel(tree *deptree.DepTree, head int, label string) bool {
	for _, e := range tree.Children(head) {
		if e.Label == label {
			return true
		}
	}
	return false
}

func isProperNounTag(tag string) bool {
	return tag == "NNP" || tag == "NNPS"
}
