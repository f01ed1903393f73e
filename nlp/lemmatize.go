package nlp

import "strings"

// irregularLemmas centralizes the exceptions a suffix cascade cannot
// derive (the spec calls out "-ered" losing its silent e as the kind of
// bug that creeps in when lemmatizer rules are duplicated across call
// sites; this table plus ruleLemmatizer.Lemmatize is the single path).
var irregularLemmas = map[string]string{
	"was": "be", "were": "be", "is": "be", "are": "be", "am": "be", "been": "be", "being": "be",
	"had": "have", "has": "have", "having": "have",
	"did": "do", "does": "do", "doing": "do",
	"went": "go", "gone": "go", "going": "go",
	"made": "make", "making": "make",
	"took": "take", "taken": "take", "taking": "take",
	"gave": "give", "given": "give", "giving": "give",
	"came": "come", "coming": "come",
	"said": "say", "saying": "say",
	"decided": "decide", "deciding": "decide",
	"children": "child", "people": "person", "men": "man", "women": "woman",
}

type ruleLemmatizer struct{}

// DefaultLemmatizer returns the reference Lemmatizer.
func DefaultLemmatizer() Lemmatizer { return ruleLemmatizer{} }

func (ruleLemmatizer) Lemmatize(word, tag string) string {
	return Lemmatize(word, tag)
}

// Lemmatize reduces word to its dictionary form for tag. It is exported so
// other packages (and tests) can call it without constructing a Lemmatizer.
func Lemmatize(word, tag string) string {
	lower := strings.ToLower(word)
	if lemma, ok := irregularLemmas[lower]; ok {
		return lemma
	}

	switch {
	case strings.HasPrefix(tag, "NN"):
		return lemmatizeNoun(lower)
	case strings.HasPrefix(tag, "VB"):
		return lemmatizeVerb(lower)
	case tag == "JJR" || tag == "JJS":
		return lemmatizeAdjective(lower)
	default:
		return lower
	}
}

func lemmatizeNoun(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ses"), strings.HasSuffix(word, "xes"),
		strings.HasSuffix(word, "zes"), strings.HasSuffix(word, "ches"), strings.HasSuffix(word, "shes"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 1:
		return strings.TrimSuffix(word, "s")
	}
	return word
}

func lemmatizeVerb(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ies"):
		return word
	case strings.HasSuffix(word, "ing") && len(word) > 4:
		return restoreStem(strings.TrimSuffix(word, "ing"))
	case strings.HasSuffix(word, "ed") && len(word) > 3:
		return restoreStem(strings.TrimSuffix(word, "ed"))
	case strings.HasSuffix(word, "es") && len(word) > 2 && endsSibilant(strings.TrimSuffix(word, "es")):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 1:
		return strings.TrimSuffix(word, "s")
	}
	return word
}

func lemmatizeAdjective(word string) string {
	switch {
	case strings.HasSuffix(word, "iest"):
		return word[:len(word)-4] + "y"
	case strings.HasSuffix(word, "ier"):
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "est"):
		return strings.TrimSuffix(word, "est")
	case strings.HasSuffix(word, "er"):
		return strings.TrimSuffix(word, "er")
	}
	return word
}

func endsSibilant(stem string) bool {
	for _, suf := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(stem, suf) {
			return true
		}
	}
	return false
}

// restoreStem recovers a verb's dictionary form from a -ed/-ing stem. A
// bare suffix strip is ambiguous both ways: "treated" strips to "treat"
// (already correct) while "allocated" strips to "allocat" (missing its
// silent e), and "referred" strips to "referr" (doubled consonant to
// undo) while "offered" strips to "offer" (no doubling). Guessing from
// spelling alone gets this wrong in both directions, so the stem is
// checked against knownVerbRoots before anything is added or removed;
// only an unrecognized stem falls back to the doubling heuristic.
func restoreStem(stem string) string {
	if knownVerbRoots[stem] {
		return stem
	}
	if knownVerbRoots[stem+"e"] {
		return stem + "e"
	}
	runes := []rune(stem)
	n := len(runes)
	if n >= 3 && runes[n-1] == runes[n-2] && !isVowel(runes[n-1]) {
		return string(runes[:n-1])
	}
	return stem
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
