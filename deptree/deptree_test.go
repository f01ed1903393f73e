package deptree

import "testing"

// buildSentence builds "The doctor treated the patient" as a DepTree:
// 1 The (DT) det->2
// 2 doctor (NN) nsubj->3
// 3 treated (VBD) root
// 4 the (DT) det->5
// 5 patient (NN) obj->3
func buildSentence() *DepTree {
	tokens := []Token{
		{Text: "The", Tag: "DT", Index: 1},
		{Text: "doctor", Tag: "NN", Index: 2},
		{Text: "treated", Tag: "VBD", Index: 3},
		{Text: "the", Tag: "DT", Index: 4},
		{Text: "patient", Tag: "NN", Index: 5},
	}
	arcs := []Arc{
		{Head: RootHead, Dep: 3, Label: "root"},
		{Head: 2, Dep: 1, Label: "det"},
		{Head: 3, Dep: 2, Label: "nsubj"},
		{Head: 5, Dep: 4, Label: "det"},
		{Head: 3, Dep: 5, Label: "obj"},
	}
	return Build(tokens, arcs)
}

func TestRoots(t *testing.T) {
	tree := buildSentence()
	roots := tree.Roots()
	if len(roots) != 1 || roots[0] != 3 {
		t.Fatalf("Roots() = %v, want [3]", roots)
	}
}

func TestChildrenAndParent(t *testing.T) {
	tree := buildSentence()

	children := tree.Children(3)
	if len(children) != 2 {
		t.Fatalf("Children(3) = %v, want 2 edges", children)
	}

	parent, ok := tree.Parent(2)
	if !ok || parent.Index != 3 || parent.Label != "nsubj" {
		t.Fatalf("Parent(2) = %+v, %v, want {3 nsubj} true", parent, ok)
	}

	if _, ok := tree.Parent(3); ok {
		t.Fatalf("Parent(3) should be absent: token 3 is a root")
	}
}

func TestEntitySubtreeExcludesCaseAtTop(t *testing.T) {
	tokens := []Token{
		{Text: "a", Tag: "DT", Index: 1},
		{Text: "report", Tag: "NN", Index: 2},
		{Text: "about", Tag: "IN", Index: 3},
		{Text: "risk", Tag: "NN", Index: 4},
	}
	arcs := []Arc{
		{Head: RootHead, Dep: 2, Label: "root"},
		{Head: 2, Dep: 1, Label: "det"},
		{Head: 2, Dep: 4, Label: "nmod"},
		{Head: 4, Dep: 3, Label: "case"},
	}
	tree := Build(tokens, arcs)

	top := tree.EntitySubtree(2, SubtreeOptions{IsHead: true})
	if got := tree.Text(top); got != "a report risk" {
		t.Fatalf("top-level EntitySubtree text = %q, want %q (case excluded)", got, "a report risk")
	}

	nested := tree.EntitySubtree(4, SubtreeOptions{IsHead: false})
	if got := tree.Text(nested); got != "about risk" {
		t.Fatalf("nested EntitySubtree text = %q, want %q (case kept below top call)", got, "about risk")
	}
}

func TestEntitySubtreeSortedAscending(t *testing.T) {
	tree := buildSentence()
	sub := tree.EntitySubtree(2, SubtreeOptions{IsHead: true})
	want := []int{1, 2}
	if len(sub) != len(want) {
		t.Fatalf("EntitySubtree(2) = %v, want %v", sub, want)
	}
	for i := range want {
		if sub[i] != want[i] {
			t.Fatalf("EntitySubtree(2) = %v, want %v", sub, want)
		}
	}
}

func TestAppositions(t *testing.T) {
	tokens := []Token{
		{Text: "CBP", Tag: "NNP", Index: 1},
		{Text: "the", Tag: "DT", Index: 2},
		{Text: "agency", Tag: "NN", Index: 3},
	}
	arcs := []Arc{
		{Head: RootHead, Dep: 1, Label: "root"},
		{Head: 1, Dep: 3, Label: "appos"},
		{Head: 3, Dep: 2, Label: "det"},
	}
	tree := Build(tokens, arcs)
	appos := tree.Appositions(1)
	if len(appos) != 1 || appos[0] != 3 {
		t.Fatalf("Appositions(1) = %v, want [3]", appos)
	}
}
