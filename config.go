package tagteam

import (
	"github.com/arjunmenon/tagteam/nlp"
	"github.com/arjunmenon/tagteam/ontology"
	"github.com/arjunmenon/tagteam/selectional"
)

// Models holds the external collaborator models build's pipeline
// consumes (spec §1's out-of-scope list): a Unicode normalizer, a
// tokenizer, a POS tagger, a dependency parser, a lemmatizer, a
// gazetteer, and the selectional-preference table. The core treats all
// of these as frozen inputs — it never trains or fits them.
type Models struct {
	Normalizer       nlp.Normalizer
	Tokenizer        nlp.Tokenizer
	Tagger           nlp.POSTagger
	Parser           nlp.DependencyParser
	Lemmatizer       nlp.Lemmatizer
	Gazetteer        nlp.Gazetteer
	SelectionalTable selectional.Table
}

// DefaultModels returns the reference rule-based collaborators (spec
// §9's reimplementations note: a real deployment would substitute a
// trained tagger/parser behind the same interfaces).
func DefaultModels() Models {
	return Models{
		Normalizer:       nlp.DefaultNormalizer(),
		Tokenizer:        nlp.RuleTokenizer(),
		Tagger:           nlp.RuleTagger(),
		Parser:           nlp.RuleParser(),
		Lemmatizer:       nlp.DefaultLemmatizer(),
		Gazetteer:        nlp.NewGazetteer(),
		SelectionalTable: selectional.Default(),
	}
}

// complete reports whether every required collaborator is present
// (spec §7 ModelError: "missing required model... pipeline cannot run;
// fail fast").
func (m Models) complete() bool {
	return m.Normalizer != nil && m.Tokenizer != nil && m.Tagger != nil &&
		m.Parser != nil && m.Lemmatizer != nil && m.Gazetteer != nil
}

// Config is the engine-level configuration, analogous to the teacher's
// Config in config.go: it holds the collaborator models, the IRI
// hashing policy, the reported ArtificialAgent identity, and the
// default option set applied to every Build call unless overridden.
type Config struct {
	Models       Models
	Hash         ontology.HashFunc
	AgentVersion string
	Defaults     []Option
}

// DefaultConfig returns a Config wired with DefaultModels, SHA-256
// hashing, and the spec-mandated option defaults.
func DefaultConfig() Config {
	return Config{
		Models:       DefaultModels(),
		AgentVersion: "dev",
	}
}

// options is the resolved set of per-Build knobs (spec §6's Options
// table).
type options struct {
	detectAmbiguity        bool
	preserveAmbiguity      bool
	preserveThreshold      float64
	maxReadingsPerNode     int
	maxTotalAlternatives   int
	useSelectionalEvidence bool
	domainContext          string
	scoredValues           map[string]float64
	contextIntensity       float64
	pretty                 bool
	verbose                bool
	profile                ontology.Profile
}

func defaultOptions() options {
	return options{
		preserveThreshold:      0.7,
		maxReadingsPerNode:     3,
		maxTotalAlternatives:   10,
		useSelectionalEvidence: true,
		profile:                ontology.ProfileCCO,
	}
}

// Option configures one Build call. Unknown/zero options are ignored
// rather than rejected (spec §6: "unknown keys ignored").
type Option func(*options)

// WithDetectAmbiguity attaches _ambiguityReport to the output.
func WithDetectAmbiguity() Option {
	return func(o *options) { o.detectAmbiguity = true }
}

// WithPreserveAmbiguity runs the resolver/lattice pipeline and attaches
// _interpretationLattice. It implies detection (spec §6).
func WithPreserveAmbiguity() Option {
	return func(o *options) {
		o.preserveAmbiguity = true
		o.detectAmbiguity = true
	}
}

// WithPreserveThreshold overrides the resolver's preserve threshold.
func WithPreserveThreshold(v float64) Option {
	return func(o *options) { o.preserveThreshold = v }
}

// WithMaxReadingsPerNode caps readings per ambiguity.
func WithMaxReadingsPerNode(n int) Option {
	return func(o *options) { o.maxReadingsPerNode = n }
}

// WithMaxTotalAlternatives caps total alternatives in the lattice.
func WithMaxTotalAlternatives(n int) Option {
	return func(o *options) { o.maxTotalAlternatives = n }
}

// WithSelectionalEvidence toggles the selectional branch of
// noun_category resolution.
func WithSelectionalEvidence(enabled bool) Option {
	return func(o *options) { o.useSelectionalEvidence = enabled }
}

// WithContext sets a domain tag (e.g. "MedicalEthics") passed to value
// annotators.
func WithContext(domain string) Option {
	return func(o *options) { o.domainContext = domain }
}

// WithScoredValues merges pre-computed value annotations into the
// graph (spec §6: "Pre-computed annotations", never computed by a
// model call inside build itself).
func WithScoredValues(scored map[string]float64) Option {
	return func(o *options) { o.scoredValues = scored }
}

// WithContextIntensity sets the pre-computed context-intensity score.
func WithContextIntensity(v float64) Option {
	return func(o *options) { o.contextIntensity = v }
}

// WithPretty pretty-prints the JSON output.
func WithPretty() Option {
	return func(o *options) { o.pretty = true }
}

// WithVerbose attaches _debug.tokens to the output.
func WithVerbose() Option {
	return func(o *options) { o.verbose = true }
}

// WithProfile selects how many type assertions the serializer emits
// per node (ontology.ProfileCCO/ProfileBFO/ProfileMinimal).
func WithProfile(p ontology.Profile) Option {
	return func(o *options) { o.profile = p }
}
