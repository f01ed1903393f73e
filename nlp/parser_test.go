package nlp

import (
	"testing"

	"github.com/arjunmenon/tagteam/deptree"
)

func pipeline(text string) *deptree.DepTree {
	tok := RuleTokenizer().Tokenize(DefaultNormalizer().Normalize(text))
	tagged := RuleTagger().Tag(tok)
	tree, err := RuleParser().Parse(tagged)
	if err != nil {
		panic(err)
	}
	return tree
}

func findArc(tree *deptree.DepTree, label string) (deptree.Arc, bool) {
	for _, a := range tree.Arcs {
		if a.Label == label {
			return a, true
		}
	}
	return deptree.Arc{}, false
}

func textOf(tree *deptree.DepTree, index int) string {
	tok, ok := tree.Token(index)
	if !ok {
		return ""
	}
	return tok.Text
}

func TestParseActiveTransitive(t *testing.T) {
	tree := pipeline("The doctor treated the patient")

	root := tree.Roots()
	if len(root) != 1 || textOf(tree, root[0]) != "treated" {
		t.Fatalf("Roots() = %v, want [treated]", root)
	}

	nsubj, ok := findArc(tree, "nsubj")
	if !ok || textOf(tree, nsubj.Dep) != "doctor" {
		t.Fatalf("nsubj arc = %+v, want dep=doctor", nsubj)
	}

	obj, ok := findArc(tree, "obj")
	if !ok || textOf(tree, obj.Dep) != "patient" {
		t.Fatalf("obj arc = %+v, want dep=patient", obj)
	}
}

func TestParsePassiveObliqueAgent(t *testing.T) {
	tree := pipeline("The patient was treated by the doctor")

	root := tree.Roots()
	if len(root) != 1 || textOf(tree, root[0]) != "treated" {
		t.Fatalf("Roots() = %v, want [treated]", root)
	}

	nsubjPass, ok := findArc(tree, "nsubj:pass")
	if !ok || textOf(tree, nsubjPass.Dep) != "patient" {
		t.Fatalf("nsubj:pass arc = %+v, want dep=patient", nsubjPass)
	}

	auxPass, ok := findArc(tree, "aux:pass")
	if !ok || textOf(tree, auxPass.Dep) != "was" {
		t.Fatalf("aux:pass arc = %+v, want dep=was", auxPass)
	}

	agent, ok := findArc(tree, "obl:agent")
	if !ok || textOf(tree, agent.Dep) != "doctor" {
		t.Fatalf("obl:agent arc = %+v, want dep=doctor", agent)
	}
}

func TestParseCopularPartWhole(t *testing.T) {
	tree := pipeline("CBP is a component of DHS")

	cop, ok := findArc(tree, "cop")
	if !ok || textOf(tree, cop.Dep) != "is" {
		t.Fatalf("cop arc = %+v, want dep=is", cop)
	}
	predicateHead := cop.Head
	if textOf(tree, predicateHead) != "component" {
		t.Fatalf("cop head = %q, want component", textOf(tree, predicateHead))
	}

	nmod, ok := findArc(tree, "nmod")
	if !ok || textOf(tree, nmod.Dep) != "DHS" || nmod.Head != predicateHead {
		t.Fatalf("nmod arc = %+v, want component->DHS", nmod)
	}

	nsubj, ok := findArc(tree, "nsubj")
	if !ok || textOf(tree, nsubj.Dep) != "CBP" {
		t.Fatalf("nsubj arc = %+v, want dep=CBP", nsubj)
	}
}

func TestParseModalDeontic(t *testing.T) {
	tree := pipeline("The doctor should allocate the ventilator")

	root := tree.Roots()
	if len(root) != 1 || textOf(tree, root[0]) != "allocate" {
		t.Fatalf("Roots() = %v, want [allocate]", root)
	}

	aux, ok := findArc(tree, "aux")
	if !ok || textOf(tree, aux.Dep) != "should" {
		t.Fatalf("aux arc = %+v, want dep=should", aux)
	}

	obj, ok := findArc(tree, "obj")
	if !ok || textOf(tree, obj.Dep) != "ventilator" {
		t.Fatalf("obj arc = %+v, want dep=ventilator", obj)
	}
}

func TestParseScarcityDeontic(t *testing.T) {
	tree := pipeline("The doctor must allocate the last ventilator between two patients")

	obj, ok := findArc(tree, "obj")
	if !ok || textOf(tree, obj.Dep) != "ventilator" {
		t.Fatalf("obj arc = %+v, want dep=ventilator", obj)
	}

	amod, ok := findArc(tree, "amod")
	if !ok || textOf(tree, amod.Dep) != "last" || amod.Head != obj.Dep {
		t.Fatalf("amod arc = %+v, want ventilator->last", amod)
	}

	obl, ok := findArc(tree, "obl")
	if !ok || textOf(tree, obl.Dep) != "patients" {
		t.Fatalf("obl arc = %+v, want dep=patients", obl)
	}

	nmod, ok := findArc(tree, "nmod")
	if !ok || textOf(tree, nmod.Dep) != "two" || nmod.Head != obl.Dep {
		t.Fatalf("nmod arc = %+v, want patients->two", nmod)
	}
}

func TestParseSelectionalViolationStructure(t *testing.T) {
	tree := pipeline("The rock decided to move")

	root := tree.Roots()
	if len(root) != 1 || textOf(tree, root[0]) != "decided" {
		t.Fatalf("Roots() = %v, want [decided]", root)
	}

	nsubj, ok := findArc(tree, "nsubj")
	if !ok || textOf(tree, nsubj.Dep) != "rock" {
		t.Fatalf("nsubj arc = %+v, want dep=rock", nsubj)
	}

	advcl, ok := findArc(tree, "advcl")
	if !ok || textOf(tree, advcl.Dep) != "move" {
		t.Fatalf("advcl arc = %+v, want dep=move", advcl)
	}
}

func TestLemmatizeVerbsDictionaryFirst(t *testing.T) {
	cases := []struct {
		word, tag, want string
	}{
		{"treated", "VBD", "treat"},
		{"allocated", "VBN", "allocate"},
		{"decided", "VBD", "decide"},
		{"required", "VBN", "require"},
		{"patients", "NNS", "patient"},
		{"was", "VBD", "be"},
	}
	for _, c := range cases {
		if got := Lemmatize(c.word, c.tag); got != c.want {
			t.Errorf("Lemmatize(%q, %q) = %q, want %q", c.word, c.tag, got, c.want)
		}
	}
}

func TestGazetteerExtendDoesNotMutateReceiver(t *testing.T) {
	base := NewGazetteer()
	if _, ok := base.Classify("acme corp"); ok {
		t.Fatalf("base gazetteer should not know acme corp yet")
	}

	extended := base.Extend(map[string]string{"acme corp": "cco:ont00001262"}, []string{"Langley"})

	if _, ok := base.Classify("acme corp"); ok {
		t.Fatalf("Extend must not mutate the receiver")
	}
	if _, ok := extended.Classify("acme corp"); !ok {
		t.Fatalf("extended gazetteer should know acme corp")
	}
	if !extended.IsMetonymicLocation("Langley") {
		t.Fatalf("extended gazetteer should recognize Langley as metonymic")
	}
	if base.IsMetonymicLocation("Langley") {
		t.Fatalf("Extend must not mutate the receiver's metonymic set")
	}
}
