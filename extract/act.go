package extract

import (
	"strings"

	"github.com/arjunmenon/tagteam/deptree"
	"github.com/arjunmenon/tagteam/nlp"
	"github.com/arjunmenon/tagteam/ontology"
)

// negationMarkers are surface forms that set Act.IsNegated when found
// under a neg/advmod dependent of the act head (spec §4.3 step 1).
var negationMarkers = map[string]bool{
	"not": true, "never": true, "n't": true, "no": true,
}

// Act is the extractor's view of a T1 VerbPhrase.
type Act struct {
	IRI        string
	HeadIndex  int
	SpanOffset int
	Surface    string
	Lemma      string
	Modal      string
	Auxiliaries []string
	Tense      string
	IsPassive  bool
	IsPerfect  bool
	IsNegated  bool
}

// StructuralAssertion is a copular/possessive/locative/existential
// claim (spec §3/§4.3), modeled as a typed edge rather than an act.
type StructuralAssertion struct {
	IRI         string
	Type        string // copular | existential | possessive | locative
	SubjectIRI  string
	Relation    ontology.Relation
	ObjectIRI   string
	CopulaToken string
	Negated     bool
}

// ActExtractor turns a dependency tree's predicates into Acts and
// copular StructuralAssertions. The phrase on a copular predicate
// (spec §4.3 step 2) is located in the tree here and mapped to its
// relation by ontology.CopulaRelation, which holds the phrase table.
type ActExtractor interface {
	Extract(tree *deptree.DepTree, entities []Entity) (acts []Act, assertions []StructuralAssertion)
}

type treeActExtractor struct {
	Lemmatizer nlp.Lemmatizer
	Mint       ontology.MintOptions
}

// NewActExtractor returns the reference TreeActExtractor.
func NewActExtractor(lemmatizer nlp.Lemmatizer, mint ontology.MintOptions) ActExtractor {
	return treeActExtractor{Lemmatizer: lemmatizer, Mint: mint}
}

func (x treeActExtractor) Extract(tree *deptree.DepTree, entities []Entity) ([]Act, []StructuralAssertion) {
	entityByHead := make(map[int]Entity, len(entities))
	for _, e := range entities {
		entityByHead[e.HeadIndex] = e
	}

	var acts []Act
	var assertions []StructuralAssertion

	for _, root := range tree.Roots() {
		tok, _ := tree.Token(root)

		if hasChildLabel(tree, root, "cop") {
			if a := x.buildCopularAssertion(tree, root, entityByHead); a != nil {
				assertions = append(assertions, *a)
			}
			continue
		}
		if strings.EqualFold(tok.Text, "is") || strings.EqualFold(tok.Text, "are") {
			if hasChildLabel(tree, root, "expl") {
				assertions = append(assertions, x.buildExistentialAssertion(tree, root))
				continue
			}
		}
		if !strings.HasPrefix(tok.Tag, "VB") {
			continue
		}

		lemma := x.Lemmatizer.Lemmatize(tok.Text, tok.Tag)
		if lemma == "have" && !hasAnyAux(tree, root) {
			if a := x.buildPossessiveAssertion(tree, root, entityByHead); a != nil {
				assertions = append(assertions, *a)
				continue
			}
		}

		acts = append(acts, x.buildAct(tree, root, tok, lemma))
	}

	return acts, assertions
}

func (x treeActExtractor) buildAct(tree *deptree.DepTree, head int, tok deptree.Token, lemma string) Act {
	a := Act{
		HeadIndex:  head,
		SpanOffset: head,
		Surface:    ontology.Sanitize(tok.Text),
		Lemma:      lemma,
	}

	for _, e := range tree.Children(head) {
		ctok, _ := tree.Token(e.Index)
		switch e.Label {
		case "aux", "aux:pass":
			a.Auxiliaries = append(a.Auxiliaries, ctok.Text)
			if ctok.Tag == "MD" {
				a.Modal = strings.ToLower(ctok.Text)
			}
			if e.Label == "aux:pass" {
				a.IsPassive = true
			}
			if strings.EqualFold(ctok.Text, "have") || strings.EqualFold(ctok.Text, "has") || strings.EqualFold(ctok.Text, "had") {
				a.IsPerfect = true
			}
		case "nsubj:pass":
			a.IsPassive = true
		case "neg":
			a.IsNegated = true
		case "advmod":
			if negationMarkers[strings.ToLower(ctok.Text)] {
				a.IsNegated = true
			}
		}
	}

	a.Tense = inferTense(a)
	a.IRI = ontology.Mint(x.Mint, a.Surface, a.SpanOffset, ontology.TypeVerbPhrase, "")
	return a
}

func inferTense(a Act) string {
	switch {
	case a.Modal != "":
		return "modal"
	case a.IsPerfect:
		return "perfect"
	default:
		return "present"
	}
}

func hasAnyAux(tree *deptree.DepTree, head int) bool {
	return hasChildLabel(tree, head, "aux") || hasChildLabel(tree, head, "aux:pass")
}

// buildCopularAssertion implements spec §4.3 step 2: the relation IRI
// is inferred from the preposition/marker phrase on the predicate via
// the fixed table in ontology.CopulaRelation.
func (x treeActExtractor) buildCopularAssertion(tree *deptree.DepTree, predicateHead int, entityByHead map[int]Entity) *StructuralAssertion {
	predTok, _ := tree.Token(predicateHead)
	var subjIRI, copToken string
	negated := false
	var objIndex int
	var prepWord string

	for _, e := range tree.Children(predicateHead) {
		ctok, _ := tree.Token(e.Index)
		switch e.Label {
		case "cop":
			copToken = ctok.Text
		case "nsubj":
			if ent, ok := entityByHead[e.Index]; ok {
				subjIRI = ent.IRI
			}
		case "neg":
			negated = true
		case "nmod":
			objIndex = e.Index
			prepWord = findCasePreposition(tree, e.Index)
		}
	}

	phrase := strings.TrimSpace(strings.ToLower(predTok.Text) + " " + prepWord)
	rel, ok := ontology.CopulaRelation(phrase)
	if !ok {
		rel = ontology.RelType
	}

	var objIRI string
	if ent, ok := entityByHead[objIndex]; ok {
		objIRI = ent.IRI
	}
	if subjIRI == "" && objIRI == "" {
		return nil
	}

	assertionType := "copular"
	if rel == ontology.RelLocatedIn {
		assertionType = "locative"
	}

	a := &StructuralAssertion{
		Type:        assertionType,
		SubjectIRI:  subjIRI,
		Relation:    rel,
		ObjectIRI:   objIRI,
		CopulaToken: copToken,
		Negated:     negated,
	}
	a.IRI = ontology.Mint(x.Mint, phrase, predicateHead, ontology.TypeStructuralAssertion, "")
	return a
}

func findCasePreposition(tree *deptree.DepTree, head int) string {
	for _, e := range tree.Children(head) {
		if e.Label == "case" {
			tok, _ := tree.Token(e.Index)
			return strings.ToLower(tok.Text)
		}
	}
	return ""
}

// buildExistentialAssertion implements spec §4.3 step 3 ("there is/are
// X").
func (x treeActExtractor) buildExistentialAssertion(tree *deptree.DepTree, head int) StructuralAssertion {
	var subjIRI string
	for _, e := range tree.Children(head) {
		if e.Label == "nsubj" {
			tok, _ := tree.Token(e.Index)
			subjIRI = ontology.Mint(x.Mint, tok.Text, e.Index, ontology.TypeDiscourseReferent, "")
		}
	}
	a := StructuralAssertion{Type: "existential", SubjectIRI: subjIRI, Relation: ontology.RelType}
	a.IRI = ontology.Mint(x.Mint, "existential", head, ontology.TypeStructuralAssertion, "")
	return a
}

// buildPossessiveAssertion implements spec §4.3 step 4 ("X has Y" with
// lemma have and no auxiliary).
func (x treeActExtractor) buildPossessiveAssertion(tree *deptree.DepTree, head int, entityByHead map[int]Entity) *StructuralAssertion {
	var subjIRI, objIRI string
	for _, e := range tree.Children(head) {
		switch e.Label {
		case "nsubj":
			if ent, ok := entityByHead[e.Index]; ok {
				subjIRI = ent.IRI
			}
		case "obj":
			if ent, ok := entityByHead[e.Index]; ok {
				objIRI = ent.IRI
			}
		}
	}
	if subjIRI == "" && objIRI == "" {
		return nil
	}
	a := &StructuralAssertion{
		Type: "possessive", SubjectIRI: subjIRI, Relation: ontology.RelHasPart, ObjectIRI: objIRI,
	}
	a.IRI = ontology.Mint(x.Mint, "have", head, ontology.TypeStructuralAssertion, "")
	return a
}
