// Package ambiguity implements the detector/resolver/lattice pipeline
// of spec §4.6-4.8: it reads the assembled extract output for one
// sentence, flags genuine linguistic ambiguities, decides which are
// preserved/resolved/flagged per a configurable hierarchy of evidence,
// and builds the alternative-reading clones the interpretation lattice
// serializes.
package ambiguity

// Ambiguity is one detected ambiguity (spec §4.6). Extra carries
// rule-specific annotations the resolver/builder stages need
// (formalizations for scope, ontologyConstraint for
// selectional_violation, metonymicSource for potential_metonymy) that
// don't warrant a dedicated field on every rule type.
type Ambiguity struct {
	Type           string // modal_force | noun_category | scope | selectional_violation | potential_metonymy
	NodeIRI        string
	Readings       []string
	DefaultReading string
	Signals        []string
	Intensifiers   []string // adverbs scanned under the act, for modal_force's hierarchy of evidence
	Confidence     float64
	Extra          map[string]string
}

// Report is the detector's output for one sentence (spec §6's
// _ambiguityReport, pre-statistics).
type Report struct {
	Ambiguities []Ambiguity
}

// Decision carries a resolver verdict for one Ambiguity (spec §4.7).
type Decision struct {
	Ambiguity            Ambiguity
	Category             string // preserved | resolved | flaggedOnly
	Reason               string
	Confidence           float64
	PreserveAlternatives bool
	Explanation          string
	ResolvedReading      string // set only when Category == "resolved"
}

// Resolution is the resolver's {preserved, resolved, flaggedOnly}
// partition (spec §4.7/§6).
type Resolution struct {
	Preserved   []Decision
	Resolved    []Decision
	FlaggedOnly []Decision
}

// Alternative is one alternative-reading clone the lattice builder
// produces for a preserved ambiguity (spec §3 "Alternative reading").
type Alternative struct {
	IRI            string
	ParentIRI      string
	Reading        string
	Plausibility   float64
	DerivedFrom    string
	Annotations    map[string]string // modality/actualityStatus, nominalizationReading, scopeReading/formalization, metonymicSource/literalType/metonymyType
	AppendTypes    []string          // extra @type entries (e.g. bfo:Process, cco:Organization)
}

// Lattice is the full interpretation lattice (spec §6's
// _interpretationLattice).
type Lattice struct {
	DefaultReading      string
	Alternatives        []Alternative
	Resolutions         Resolution
	AmbiguitiesPreserved int
}
