package nlp

import (
	"strings"

	"github.com/arjunmenon/tagteam/deptree"
)

// verbTags are the POS tags ruleParser treats as eligible members of a verb
// cluster (the contiguous run of auxiliaries/modal/lexical verb anchoring a
// clause).
var verbTags = map[string]bool{
	"MD": true, "VB": true, "VBZ": true, "VBD": true, "VBP": true, "VBG": true, "VBN": true,
}

var beForms = map[string]bool{
	"is": true, "are": true, "was": true, "were": true, "am": true, "be": true,
}

var haveForms = map[string]bool{"has": true, "have": true, "had": true}

var nounTags = map[string]bool{"NN": true, "NNS": true, "NNP": true, "NNPS": true, "PRP": true}

func isNegator(tok deptree.Token) bool {
	l := strings.ToLower(tok.Text)
	return tok.Tag == "RB" && (l == "not" || l == "n't")
}

// ruleParser is the reference DependencyParser: a single-clause, pattern
// matching parser covering active/passive transitives, copular predication
// (nominal and locative), modal and negated clauses, oblique prepositional
// phrases, coordination, and appositives. It does not handle relative
// clauses, multi-clause coordination, or long-distance dependencies.
type ruleParser struct{}

// RuleParser returns the reference DependencyParser.
func RuleParser() DependencyParser { return ruleParser{} }

type arcBuilder struct {
	tokens []deptree.Token
	arcs   []deptree.Arc
}

func (b *arcBuilder) add(head, dep int, label string) {
	b.arcs = append(b.arcs, deptree.Arc{Head: head, Dep: dep, Label: label})
}

func (ruleParser) Parse(tokens []deptree.Token) (*deptree.DepTree, error) {
	if len(tokens) == 0 {
		return nil, errEmptySentence
	}
	b := &arcBuilder{tokens: tokens}

	cluster, ok := firstVerbCluster(tokens)
	if !ok {
		// Verbless sentence/headline: root is the head of the only NP span.
		span := nlpSpan{start: tokens[0].Index, end: lastNonPunctIndex(tokens)}
		head := b.attachNP(span)
		b.add(deptree.RootHead, head, "root")
		b.attachTrailingPunct(tokens, head)
		return deptree.Build(tokens, b.arcs), nil
	}

	root, passive, isCopula, consumedThrough := b.attachVerbCluster(tokens, cluster)
	b.add(deptree.RootHead, root, "root")

	if cluster.neg >= 0 {
		b.add(root, cluster.neg, "neg")
	}

	// Subject: everything strictly before the cluster, minus existential "there".
	if cluster.start > tokens[0].Index {
		subjSpan := nlpSpan{start: tokens[0].Index, end: cluster.start - 1}
		if tok, ok := tokenAt(tokens, subjSpan.start); ok && strings.EqualFold(tok.Text, "there") {
			if subjSpan.start != subjSpan.end {
				subjSpan.start++
				subjHead := b.attachNP(subjSpan)
				b.add(root, subjHead, "nsubj")
			} else {
				b.add(root, subjSpan.start, "nsubj")
			}
		} else {
			subjHead := b.attachNP(subjSpan)
			if passive {
				b.add(root, subjHead, "nsubj:pass")
			} else {
				b.add(root, subjHead, "nsubj")
			}
		}
	}

	// Everything after the cluster (and, for copular sentences, after the
	// predicate NP already consumed): trailing oblique PPs or direct object.
	rest := nlpSpan{start: consumedThrough + 1, end: lastNonPunctIndex(tokens)}
	b.attachPostVerbal(tokens, root, rest, passive, isCopula)

	b.attachTrailingPunct(tokens, root)
	return deptree.Build(tokens, b.arcs), nil
}

type nlpSpan struct{ start, end int }

func (s nlpSpan) empty() bool { return s.start > s.end }

type verbCluster struct {
	start, end int
	neg        int // negator index, or -1
}

// firstVerbCluster finds the first contiguous run of verb-tagged tokens,
// allowing a single embedded negator ("not"/"n't") to splice through
// without breaking the run.
func firstVerbCluster(tokens []deptree.Token) (verbCluster, bool) {
	start := -1
	end := -1
	neg := -1
	for i, tok := range tokens {
		if verbTags[tok.Tag] {
			if start == -1 {
				start = tok.Index
			} else if end != -1 && tok.Index != end+1 {
				if tok.Index == end+2 && i > 0 && isNegator(tokens[i-1]) {
					neg = end + 1
				} else {
					break
				}
			}
			end = tok.Index
			continue
		}
		if start != -1 && end != -1 {
			break
		}
	}
	if start == -1 {
		return verbCluster{}, false
	}
	return verbCluster{start: start, end: end, neg: neg}, true
}

// attachVerbCluster wires the verb cluster's internal structure (aux,
// aux:pass, cop) and returns the clause root token index, whether the
// clause is passive, whether the root is a copular predicate nominal, and
// the index through which it consumed tokens (callers resume scanning for
// oblique phrases and objects immediately after this index).
func (b *arcBuilder) attachVerbCluster(tokens []deptree.Token, c verbCluster) (root int, passive bool, isCopula bool, consumedThrough int) {
	var clusterToks []deptree.Token
	for i := c.start; i <= c.end; i++ {
		if tok, ok := tokenAt(tokens, i); ok {
			if c.neg == i {
				continue
			}
			clusterToks = append(clusterToks, tok)
		}
	}

	if len(clusterToks) == 1 && beForms[strings.ToLower(clusterToks[0].Text)] {
		beTok := clusterToks[0]
		nextIdx := beTok.Index + 1
		if next, ok := tokenAt(tokens, nextIdx); ok && next.Tag == "IN" {
			// Locative copula: be-verb is itself the clause root.
			return beTok.Index, false, false, beTok.Index
		}
		// The predicate nominal's own NP: up to (but not including) its
		// first trailing preposition, which attaches separately as a
		// clause-level nmod/obl once control returns to the caller.
		predHeadEnd := lastNonPunctIndex(tokens)
		for i := nextIdx; i <= predHeadEnd; i++ {
			if tok, ok := tokenAt(tokens, i); ok && tok.Tag == "IN" {
				predHeadEnd = i - 1
				break
			}
		}
		predSpan := nlpSpan{start: nextIdx, end: predHeadEnd}
		head := b.attachNP(predSpan)
		b.add(head, beTok.Index, "cop")
		return head, false, true, predHeadEnd
	}

	// Locate the lexical verb (rightmost non-modal, non-aux token); earlier
	// tokens attach as aux or aux:pass.
	lexicalAt := len(clusterToks) - 1
	for lexicalAt > 0 {
		t := clusterToks[lexicalAt]
		if t.Tag == "MD" {
			lexicalAt--
			continue
		}
		break
	}
	root = clusterToks[lexicalAt].Index

	passive = false
	if clusterToks[lexicalAt].Tag == "VBN" {
		for i := 0; i < lexicalAt; i++ {
			if beForms[strings.ToLower(clusterToks[i].Text)] {
				passive = true
				break
			}
		}
	}

	for i := 0; i < len(clusterToks); i++ {
		if i == lexicalAt {
			continue
		}
		tok := clusterToks[i]
		label := "aux"
		if passive && beForms[strings.ToLower(tok.Text)] {
			label = "aux:pass"
		}
		b.add(root, tok.Index, label)
	}
	return root, passive, false, root
}

// attachPostVerbal handles the object/predicate span and any trailing
// oblique prepositional phrases or subordinate infinitival clauses.
func (b *arcBuilder) attachPostVerbal(tokens []deptree.Token, root int, rest nlpSpan, passive, isCopula bool) {
	if rest.empty() {
		return
	}

	// Subordinate "to VB" clause: e.g. "decided to move".
	if first, ok := tokenAt(tokens, rest.start); ok && strings.EqualFold(first.Text, "to") {
		if second, ok := tokenAt(tokens, rest.start+1); ok && strings.HasPrefix(second.Tag, "VB") {
			b.add(second.Index, first.Index, "mark")
			b.add(root, second.Index, "advcl")
			return
		}
	}

	spans := splitByPrepositions(tokens, rest)
	firstNmodDone := false
	for i, s := range spans {
		if s.span.empty() {
			continue
		}
		if i == 0 && s.prep == "" {
			// Direct object (no leading preposition).
			head := b.attachNP(s.span)
			b.add(root, head, "obj")
			continue
		}
		head := b.attachNP(s.span)
		if s.prepIndex >= 0 {
			b.add(head, s.prepIndex, "case")
		}
		switch {
		case passive && strings.EqualFold(s.prep, "by"):
			b.add(root, head, "obl:agent")
		case isCopula && strings.EqualFold(s.prep, "of") && !firstNmodDone:
			b.add(root, head, "nmod")
			firstNmodDone = true
		default:
			b.add(root, head, "obl")
		}
	}
}

type prepSpan struct {
	prep      string
	prepIndex int
	span      nlpSpan
}

// splitByPrepositions walks rest left to right, yielding the leading
// no-preposition chunk (if any) followed by one chunk per top-level IN
// token and its following NP.
func splitByPrepositions(tokens []deptree.Token, rest nlpSpan) []prepSpan {
	var out []prepSpan
	cur := prepSpan{span: nlpSpan{start: rest.start, end: rest.start - 1}}
	for i := rest.start; i <= rest.end; i++ {
		tok, ok := tokenAt(tokens, i)
		if !ok {
			continue
		}
		if tok.Tag == "IN" {
			if !cur.span.empty() || cur.prep != "" {
				out = append(out, cur)
			}
			cur = prepSpan{prep: tok.Text, prepIndex: tok.Index, span: nlpSpan{start: i + 1, end: i}}
			continue
		}
		if cur.span.empty() && cur.prep == "" {
			cur.span = nlpSpan{start: i, end: i}
		} else {
			cur.span.end = i
		}
	}
	if !cur.span.empty() || cur.prep != "" {
		out = append(out, cur)
	}
	return out
}

// attachNP wires det/amod/nmod(quantity)/compound/conj/cc/appos edges
// within an NP span and returns the index of its head token (rightmost
// noun-tagged token, or the rightmost token if none is tagged as a noun).
func (b *arcBuilder) attachNP(s nlpSpan) int {
	if s.empty() {
		return s.start
	}

	// Apposition: split on a comma into two NP chunks and recurse.
	if idx := findCommaNP(b.tokens, s); idx != -1 {
		left := nlpSpan{start: s.start, end: idx - 1}
		right := nlpSpan{start: idx + 1, end: s.end}
		leftHead := b.attachNP(left)
		if !right.empty() {
			rightHead := b.attachNP(right)
			b.add(leftHead, rightHead, "appos")
		}
		return leftHead
	}

	// Coordination: split on a top-level CC into conjuncts.
	if idx := findCC(b.tokens, s); idx != -1 {
		left := nlpSpan{start: s.start, end: idx - 1}
		right := nlpSpan{start: idx + 1, end: s.end}
		leftHead := b.attachNP(left)
		if !right.empty() {
			rightHead := b.attachNP(right)
			b.add(leftHead, rightHead, "conj")
			b.add(leftHead, idx, "cc")
		}
		return leftHead
	}

	head := headOf(b.tokens, s)
	for i := s.start; i <= s.end; i++ {
		if i == head {
			continue
		}
		tok, ok := tokenAt(b.tokens, i)
		if !ok {
			continue
		}
		switch {
		case tok.Tag == "DT", tok.Tag == "PRP$":
			b.add(head, i, "det")
		case tok.Tag == "CD":
			b.add(head, i, "nmod")
		case tok.Tag == "JJ":
			b.add(head, i, "amod")
		case nounTags[tok.Tag] && i < head:
			b.add(head, i, "compound")
		}
	}
	return head
}

func (b *arcBuilder) attachTrailingPunct(tokens []deptree.Token, root int) {
	if len(tokens) == 0 {
		return
	}
	last := tokens[len(tokens)-1]
	if last.Tag == "." {
		b.add(root, last.Index, "punct")
	}
}

func headOf(tokens []deptree.Token, s nlpSpan) int {
	best := -1
	for i := s.start; i <= s.end; i++ {
		tok, ok := tokenAt(tokens, i)
		if !ok {
			continue
		}
		if nounTags[tok.Tag] {
			best = i
		}
	}
	if best == -1 {
		// no noun found: fall back to the rightmost token in the span
		return s.end
	}
	return best
}

func findCommaNP(tokens []deptree.Token, s nlpSpan) int {
	for i := s.start; i <= s.end; i++ {
		tok, ok := tokenAt(tokens, i)
		if ok && tok.Tag == "," && i > s.start && i < s.end {
			return i
		}
	}
	return -1
}

func findCC(tokens []deptree.Token, s nlpSpan) int {
	for i := s.start; i <= s.end; i++ {
		tok, ok := tokenAt(tokens, i)
		if ok && tok.Tag == "CC" && i > s.start && i < s.end {
			return i
		}
	}
	return -1
}

func tokenAt(tokens []deptree.Token, index int) (deptree.Token, bool) {
	for _, t := range tokens {
		if t.Index == index {
			return t, true
		}
	}
	return deptree.Token{}, false
}

func lastNonPunctIndex(tokens []deptree.Token) int {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].Tag != "." && tokens[i].Tag != "," {
			return tokens[i].Index
		}
	}
	if len(tokens) == 0 {
		return 0
	}
	return tokens[len(tokens)-1].Index
}

type parseError string

func (e parseError) Error() string { return string(e) }

const errEmptySentence = parseError("nlp: cannot parse an empty token sequence")
