// Package annotate attaches pre-computed value and context-intensity
// scores to a built graph's T2 entities (spec §6's "ethical-value
// scoring, context analyzers"). ValueAnnotator's shape is adapted from
// the teacher's llm.Provider: one synchronous call taking a request and
// returning scored results, but never making a network or model call
// itself — every score it returns was already computed by the caller
// before build runs, preserving spec §5's "pure function of (text,
// options, pre-loaded models)".
package annotate

// Entity is the minimal subject a ValueAnnotator can score: a T2 node's
// IRI and its human-readable label, mirroring graph.RealWorldEntity
// without importing package graph (avoiding an import cycle back into
// jsonld, which annotate output feeds).
type Entity struct {
	IRI   string
	Label string
}

// Request bundles one build's pre-computed annotation inputs (spec §6's
// context/scoredValues/contextIntensity options) with the entities to
// score.
type Request struct {
	DomainContext    string
	ScoredValues     map[string]float64
	ContextIntensity float64
	Entities         []Entity
}

// Assessment is one scored entity, ready for jsonld to mint an IRI for
// and attach as a tagteam:ValueAssessment node.
type Assessment struct {
	SubjectIRI    string
	Label         string
	Value         float64
	DomainContext string
}

// ValueAnnotator scores entities using pre-computed values. Implementations
// never block on I/O; a caller wanting model-derived scores computes them
// before calling tagteam.Build and passes them in via WithScoredValues.
type ValueAnnotator interface {
	Annotate(req Request) []Assessment
}

// DefaultAnnotator looks up each entity's label in Request.ScoredValues
// and scales any hit by ContextIntensity (treated as 1.0 when unset).
// It is the reference ValueAnnotator; a caller with a richer scoring
// model — e.g. one keyed by entity type or IRI rather than label —
// implements ValueAnnotator directly instead of using this one.
type DefaultAnnotator struct{}

// NewDefaultAnnotator returns the reference ValueAnnotator.
func NewDefaultAnnotator() DefaultAnnotator { return DefaultAnnotator{} }

func (DefaultAnnotator) Annotate(req Request) []Assessment {
	if len(req.ScoredValues) == 0 {
		return nil
	}
	intensity := req.ContextIntensity
	if intensity == 0 {
		intensity = 1.0
	}

	var out []Assessment
	for _, e := range req.Entities {
		score, ok := req.ScoredValues[e.Label]
		if !ok {
			continue
		}
		out = append(out, Assessment{
			SubjectIRI:    e.IRI,
			Label:         e.Label,
			Value:         score * intensity,
			DomainContext: req.DomainContext,
		})
	}
	return out
}
