// Package nlp declares the interfaces for the linguistic models the core
// consumes but does not own: a Unicode normalizer, a tokenizer, a
// part-of-speech tagger, a dependency parser, a lemmatizer, and a
// gazetteer. Per the core's scope, these are "pre-trained models and
// tables" the pipeline is handed, not trained or fitted by it.
//
// The reference implementations in this package (DefaultNormalizer,
// RuleTokenizer, RuleTagger, RuleParser, Lemmatize, NewGazetteer) are
// deterministic, frozen, rule-based stand-ins sufficient to exercise the
// pipeline end to end on ordinary declarative English sentences. They are
// not a production POS tagger or dependency parser; callers with a real
// model should implement these interfaces against it.
package nlp

import "github.com/arjunmenon/tagteam/deptree"

// Normalizer performs Unicode normalization and whitespace cleanup ahead
// of tokenization.
type Normalizer interface {
	Normalize(text string) string
}

// Tokenizer splits normalized text into a 1-based token sequence.
type Tokenizer interface {
	Tokenize(text string) []deptree.Token
}

// POSTagger assigns a part-of-speech tag to each token. It receives and
// returns tokens so a tagger may also correct the tokenizer's guesses
// (case folding artifacts, etc.) but must not change token count or order.
type POSTagger interface {
	Tag(tokens []deptree.Token) []deptree.Token
}

// DependencyParser builds a DepTree from tagged tokens.
type DependencyParser interface {
	Parse(tokens []deptree.Token) (*deptree.DepTree, error)
}

// Lemmatizer reduces a surface word to its dictionary form given its POS
// tag. Implementations must be pure functions: same (word, tag) always
// yields the same lemma, with no internal state mutated by lookups.
type Lemmatizer interface {
	Lemmatize(word, tag string) string
}

// Gazetteer classifies surface text (full mention or head word) into a
// CCO/BFO ontology type, and tracks the fixed set of metonymic locations
// used by potential_metonymy ambiguity detection.
type Gazetteer interface {
	// Classify returns the denoted ontology type for text and whether a
	// gazetteer entry matched.
	Classify(text string) (ontologyType string, ok bool)
	// IsMetonymicLocation reports whether text names a place-for-institution
	// metonymy candidate (e.g. "White House", "Kremlin", "Pentagon").
	IsMetonymicLocation(text string) bool
	// Extend returns a copy of the gazetteer with additional entries merged
	// in; the receiver is left untouched (copy-on-write, per the frozen
	// shared-table policy).
	Extend(entries map[string]string, metonymicLocations []string) Gazetteer
}
