package nlp

import (
	"strings"

	"github.com/arjunmenon/tagteam/deptree"
)

// ruleTagger is the reference POSTagger: a small closed-class lexicon plus
// an ordered suffix cascade for open-class words, consulting the
// previously assigned tag for the handful of ambiguities (VBG vs NN,
// VBD vs VBN, VB vs VBZ/NNS) that depend on local context rather than
// the word alone.
type ruleTagger struct{}

// RuleTagger returns the reference POSTagger.
func RuleTagger() POSTagger { return ruleTagger{} }

var closedClass = map[string]string{
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "IN", "these": "DT", "those": "DT",
	"every": "DT", "all": "DT", "each": "DT", "some": "DT", "any": "DT", "no": "DT",

	"he": "PRP", "she": "PRP", "it": "PRP", "they": "PRP", "we": "PRP", "you": "PRP", "i": "PRP",
	"him": "PRP", "her": "PRP", "them": "PRP", "us": "PRP", "me": "PRP",
	"his": "PRP$", "its": "PRP$", "their": "PRP$", "our": "PRP$", "your": "PRP$", "my": "PRP$",

	"must": "MD", "should": "MD", "may": "MD", "can": "MD", "could": "MD",
	"would": "MD", "might": "MD", "shall": "MD", "will": "MD",

	"is": "VBZ", "are": "VBP", "am": "VBP", "was": "VBD", "were": "VBD",
	"be": "VB", "been": "VBN", "being": "VBG",

	"has": "VBZ", "have": "VBP", "had": "VBD",

	"there": "EX",
	"not":   "RB", "n't": "RB",

	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "with": "IN", "for": "IN",
	"to": "TO", "of": "IN", "about": "IN", "between": "IN", "from": "IN",
	"into": "IN", "onto": "IN", "within": "IN", "among": "IN", "under": "IN", "over": "IN",

	"and": "CC", "or": "CC", "but": "CC", "nor": "CC",

	"who": "WP", "whom": "WP", "whose": "WP$", "which": "WDT", "what": "WDT",

	"last": "JJ", "first": "JJ", "next": "JJ", "same": "JJ", "own": "JJ",

	"one": "CD", "two": "CD", "three": "CD", "four": "CD", "five": "CD",
	"six": "CD", "seven": "CD", "eight": "CD", "nine": "CD", "ten": "CD",

	".": ".", ",": ",", "!": ".", "?": ".", ";": ":", ":": ":",
}

// knownVerbRoots disambiguates the -ed/-s suffix rules below: a stripped
// stem found here is treated as a verb, not a noun.
var knownVerbRoots = map[string]bool{
	"treat": true, "allocate": true, "require": true, "decide": true, "move": true,
	"defin": true, "contradict": true, "supersede": true, "amend": true, "reference": true,
	"complie": true, "rate": true, "specify": true, "process": true, "assess": true,
	"determine": true, "recommend": true, "prohibit": true, "permit": true, "need": true,
}

func (ruleTagger) Tag(tokens []deptree.Token) []deptree.Token {
	out := make([]deptree.Token, len(tokens))
	prevTag := ""
	for i, tok := range tokens {
		tag := tagOne(tok.Text, prevTag)
		out[i] = deptree.Token{Text: tok.Text, Tag: tag, Index: tok.Index}
		prevTag = tag
	}
	return out
}

func tagOne(word, prevTag string) string {
	lower := strings.ToLower(word)
	if tag, ok := closedClass[lower]; ok {
		return tag
	}
	if isAllDigits(word) {
		return "CD"
	}
	if isAllCaps(word) && len([]rune(word)) >= 2 {
		return "NNP"
	}

	switch {
	case strings.HasSuffix(lower, "tion"), strings.HasSuffix(lower, "sion"),
		strings.HasSuffix(lower, "ment"), strings.HasSuffix(lower, "ness"),
		strings.HasSuffix(lower, "ity"):
		return "NN"
	case strings.HasSuffix(lower, "ing"):
		if prevTag == "DT" || prevTag == "PRP$" || prevTag == "JJ" {
			return "NN"
		}
		return "VBG"
	case strings.HasSuffix(lower, "ed"):
		stem := strings.TrimSuffix(lower, "ed")
		if prevTag == "VBZ" || prevTag == "VBD" || prevTag == "VBP" || prevTag == "VB" || prevTag == "MD" {
			return "VBN"
		}
		if knownVerbRoots[stem] || knownVerbRoots[stem+"e"] {
			return "VBD"
		}
		return "VBD"
	case prevTag == "MD" || prevTag == "TO":
		return "VB"
	case strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss"):
		stem := strings.TrimSuffix(lower, "s")
		if knownVerbRoots[stem] || knownVerbRoots[stem+"e"] {
			return "VBZ"
		}
		return "NNS"
	case strings.HasSuffix(lower, "ly"):
		return "RB"
	case strings.HasSuffix(lower, "er"), strings.HasSuffix(lower, "or"):
		return "NN"
	}

	if isCapitalized(word) {
		return "NNP"
	}
	return "NN"
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

func isCapitalized(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return r >= 'A' && r <= 'Z'
}
