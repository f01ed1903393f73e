// Package jsonld turns an assembled graph.Graph, its ambiguity.Report/
// Resolution/Lattice, and its provenance.Triad into the single JSON-LD
// document spec §4.10/§6 defines as tagteam's external output contract.
// It is the only package that converts an ontology.TypeTag/Relation
// into the wire CURIE or full IRI a consumer sees (spec §9).
package jsonld

import (
	"encoding/json"

	"github.com/arjunmenon/tagteam/ambiguity"
	"github.com/arjunmenon/tagteam/extract"
	"github.com/arjunmenon/tagteam/graph"
	"github.com/arjunmenon/tagteam/ontology"
	"github.com/arjunmenon/tagteam/provenance"
)

// Options configures one Serialize call (spec §6's Options table,
// serializer-facing subset).
type Options struct {
	Profile ontology.Profile
	Pretty  bool
	// Verbose attaches _debug.tokens to the document when Tokens is set.
	Verbose bool
	Tokens  []DebugToken
	// Warnings collects the non-fatal ParseShapeWarning/ExtractionWarning
	// notes spec §7 says must reduce information without failing the
	// build; they surface in _metadata.warnings.
	Warnings []string
	// Assessments carries pre-computed value/context annotations (spec
	// §6's scoredValues/contextIntensity options) to attach as extra
	// graph nodes. Never computed inside Serialize itself.
	Assessments []Assessment
}

// Assessment is one pre-computed value annotation to attach to an
// existing T2 node (spec §6: "context: domain tag passed to value
// annotators" plus "scoredValues, contextIntensity: pre-computed
// annotations to merge into the graph").
type Assessment struct {
	IRI           string // minted by the caller; jsonld never mints IRIs itself
	SubjectIRI    string
	Label         string
	Value         float64
	DomainContext string
}

// DebugToken is one entry of the optional _debug.tokens array (spec
// §6: emitted only when Options.verbose is true).
type DebugToken struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Tag   string `json:"tag"`
	Head  int    `json:"head"`
	Label string `json:"label"`
}

// Document is the marshaled shape of spec §6's Graph output contract.
// Map-valued fields use encoding/json's stable alphabetical key
// ordering for map[string]interface{}, which satisfies the "round-trip
// up to key ordering" guarantee of property P9 without a dependency on
// iteration order anywhere in this package.
type Document struct {
	Context               map[string]interface{} `json:"@context"`
	Graph                 []map[string]interface{} `json:"@graph"`
	Metadata              map[string]interface{} `json:"_metadata"`
	AmbiguityReport       map[string]interface{} `json:"_ambiguityReport,omitempty"`
	InterpretationLattice map[string]interface{} `json:"_interpretationLattice,omitempty"`
	Debug                 map[string]interface{} `json:"_debug,omitempty"`
}

// Serializer is the spec §9 interface boundary for §4.10's
// JSONLDSerializer.
type Serializer interface {
	Serialize(g graph.Graph, triad provenance.Triad, report *ambiguity.Report, res *ambiguity.Resolution, lattice *ambiguity.Lattice, opts Options) ([]byte, error)
}

type defaultSerializer struct{}

// NewSerializer returns the reference JSONLDSerializer.
func NewSerializer() Serializer {
	return defaultSerializer{}
}

func (defaultSerializer) Serialize(g graph.Graph, triad provenance.Triad, report *ambiguity.Report, res *ambiguity.Resolution, lattice *ambiguity.Lattice, opts Options) ([]byte, error) {
	doc := Document{
		Context:  buildContext(),
		Metadata: buildMetadata(g, triad, opts.Warnings),
	}
	doc.Graph = buildGraphNodes(g, triad, opts.Profile)
	if len(opts.Assessments) > 0 {
		doc.Graph = append(doc.Graph, buildAssessmentNodes(opts.Assessments)...)
	}

	if report != nil {
		doc.AmbiguityReport = buildAmbiguityReport(*report)
	}
	if lattice != nil {
		doc.InterpretationLattice = buildLattice(*lattice)
	}
	if opts.Verbose && len(opts.Tokens) > 0 {
		doc.Debug = map[string]interface{}{"tokens": opts.Tokens}
	}

	if opts.Pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

func buildMetadata(g graph.Graph, triad provenance.Triad, warnings []string) map[string]interface{} {
	m := map[string]interface{}{
		"mentionCount":   len(g.DiscourseReferents) + len(g.VerbPhrases),
		"entityCount":    len(g.Entities),
		"actCount":       len(g.Acts),
		"assertionCount": len(g.Assertions),
		"ibe":            triad.IBE.IRI,
		"agent":          triad.Agent.IRI,
	}
	if len(warnings) > 0 {
		m["warnings"] = warnings
	}
	return m
}

// bearerOf inverts every Role.InheresIn into an entity-IRI -> []role-IRI
// map, materializing invariant I4's "is_bearer_of derivable from
// inheres_in" at serialization time rather than storing the inverse
// edge on graph.DiscourseReferent itself.
func bearerOf(roles []extract.Role) map[string][]string {
	out := make(map[string][]string)
	for _, r := range roles {
		out[r.InheresIn] = append(out[r.InheresIn], r.IRI)
	}
	return out
}

func buildGraphNodes(g graph.Graph, triad provenance.Triad, profile ontology.Profile) []map[string]interface{} {
	bearers := bearerOf(g.Roles)
	var nodes []map[string]interface{}

	for _, d := range g.DiscourseReferents {
		node := map[string]interface{}{
			"@id":                 d.IRI,
			"@type":               ontology.TypesFor(ontology.TypeDiscourseReferent, profile),
			"tagteam:text":        d.Text,
			"tagteam:spanOffset":  d.SpanOffset,
			"tagteam:headPOS":     d.HeadPOS,
			"tagteam:udRole":      d.Role,
			"tagteam:denotesType": primaryCURIE(d.DenotesType, profile),
			"tagteam:definiteness": d.Definiteness,
			"cco:is_about":        d.IsAbout,
			"bfo:is_concretized_by": d.IsConcretizedBy,
		}
		if d.Quantity != nil {
			node["tagteam:quantity"] = *d.Quantity
		}
		if d.QuantityIndicator != "" {
			node["tagteam:quantityIndicator"] = d.QuantityIndicator
		}
		if d.IsScarce {
			node["tagteam:isScarce"] = true
		}
		if len(d.Aliases) > 0 {
			node["tagteam:aliases"] = d.Aliases
		}
		if d.ResolvedVia != "" {
			node["tagteam:resolvedVia"] = d.ResolvedVia
			node["tagteam:canonicalForm"] = d.CanonicalForm
		}
		if bearerIRIs, ok := bearers[d.IRI]; ok {
			node["bfo:is_bearer_of"] = bearerIRIs
		}
		nodes = append(nodes, node)
	}

	for _, v := range g.VerbPhrases {
		node := map[string]interface{}{
			"@id":                   v.IRI,
			"@type":                 ontology.TypesFor(ontology.TypeVerbPhrase, profile),
			"tagteam:surface":       v.Surface,
			"tagteam:lemma":         v.Lemma,
			"tagteam:tense":         v.Tense,
			"tagteam:isPassive":     v.IsPassive,
			"tagteam:isPerfect":     v.IsPerfect,
			"tagteam:isNegated":     v.IsNegated,
			"cco:is_about":          v.IsAbout,
			"bfo:is_concretized_by": v.IsConcretizedBy,
		}
		if v.Modal != "" {
			node["tagteam:modal"] = v.Modal
		}
		if len(v.Auxiliaries) > 0 {
			node["tagteam:auxiliaries"] = v.Auxiliaries
		}
		if bearerIRIs, ok := bearers[v.IRI]; ok {
			node["bfo:is_bearer_of"] = bearerIRIs
		}
		nodes = append(nodes, node)
	}

	for _, e := range g.Entities {
		nodes = append(nodes, map[string]interface{}{
			"@id":               e.IRI,
			"@type":             append([]string{"owl:NamedIndividual"}, ontology.TypesFor(e.Type, profile)...),
			"rdfs:label":        e.Label,
			"tagteam:denotedBy": e.MentionIRI,
		})
	}

	for _, a := range g.Acts {
		nodes = append(nodes, map[string]interface{}{
			"@id":               a.IRI,
			"@type":             append([]string{"owl:NamedIndividual"}, ontology.TypesFor(ontology.TypeIntentionalAct, profile)...),
			"rdfs:label":        a.Label,
			"tagteam:denotedBy": a.MentionIRI,
		})
	}

	for _, a := range g.Assertions {
		node := map[string]interface{}{
			"@id":                 a.IRI,
			"@type":               ontology.TypesFor(ontology.TypeStructuralAssertion, profile),
			"tagteam:assertionType": a.Type,
			"tagteam:subject":     a.SubjectIRI,
			string(a.Relation):    a.ObjectIRI,
			"tagteam:negated":     a.Negated,
		}
		if a.CopulaToken != "" {
			node["tagteam:copula"] = a.CopulaToken
		}
		nodes = append(nodes, node)
	}

	for _, r := range g.Roles {
		nodes = append(nodes, map[string]interface{}{
			"@id":              r.IRI,
			"@type":            ontology.TypesFor(r.Type, profile),
			"bfo:inheres_in":   r.InheresIn,
			"bfo:realized_in":  r.RealizedIn,
		})
	}

	nodes = append(nodes, buildProvenanceNodes(triad, profile)...)
	return nodes
}

func buildProvenanceNodes(triad provenance.Triad, profile ontology.Profile) []map[string]interface{} {
	ibeNode := map[string]interface{}{
		"@id":               triad.IBE.IRI,
		"@type":             ontology.TypesFor(ontology.TypeIBE, profile),
		"tagteam:text":      triad.IBE.Text,
		"tagteam:charCount": triad.IBE.CharCount,
		"tagteam:wordCount": triad.IBE.WordCount,
	}
	if triad.IBE.ReceivedAt != "" {
		ibeNode["tagteam:receivedAt"] = triad.IBE.ReceivedAt
	}
	agentNode := map[string]interface{}{
		"@id":             triad.Agent.IRI,
		"@type":           ontology.TypesFor(ontology.TypeArtificialAgent, profile),
		"tagteam:name":    triad.Agent.Name,
		"tagteam:version": triad.Agent.Version,
	}
	actNode := map[string]interface{}{
		"@id":            triad.Act.IRI,
		"@type":          ontology.TypesFor(ontology.TypeParsingAct, profile),
		"cco:has_input":  triad.Act.UsedIRI,
		"cco:has_agent":  triad.Act.AgentIRI,
		"cco:has_output": triad.Act.HasOutput,
	}
	if triad.Act.StartedAt != "" {
		actNode["tagteam:startedAt"] = triad.Act.StartedAt
	}
	if triad.Act.EndedAt != "" {
		actNode["tagteam:endedAt"] = triad.Act.EndedAt
	}
	return []map[string]interface{}{ibeNode, agentNode, actNode}
}

func buildAssessmentNodes(assessments []Assessment) []map[string]interface{} {
	nodes := make([]map[string]interface{}, 0, len(assessments))
	for _, a := range assessments {
		node := map[string]interface{}{
			"@id":               a.IRI,
			"@type":             "tagteam:ValueAssessment",
			"tagteam:assesses":  a.SubjectIRI,
			"tagteam:label":     a.Label,
			"tagteam:value":     a.Value,
		}
		if a.DomainContext != "" {
			node["tagteam:domainContext"] = a.DomainContext
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func primaryCURIE(tag ontology.TypeTag, profile ontology.Profile) string {
	types := ontology.TypesFor(tag, profile)
	if len(types) == 0 {
		return ""
	}
	return types[0]
}

func buildAmbiguityReport(report ambiguity.Report) map[string]interface{} {
	byType := make(map[string]int)
	var totalReadings int
	items := make([]map[string]interface{}, 0, len(report.Ambiguities))
	for _, a := range report.Ambiguities {
		byType[a.Type]++
		totalReadings += len(a.Readings)
		items = append(items, map[string]interface{}{
			"type":           a.Type,
			"nodeId":         a.NodeIRI,
			"readings":       a.Readings,
			"defaultReading": a.DefaultReading,
			"signals":        a.Signals,
			"confidence":     a.Confidence,
		})
	}
	avg := 0.0
	if len(report.Ambiguities) > 0 {
		avg = float64(totalReadings) / float64(len(report.Ambiguities))
	}
	return map[string]interface{}{
		"@type": "tagteam:AmbiguityReport",
		"tagteam:ambiguityCount": len(report.Ambiguities),
		"tagteam:statistics": map[string]interface{}{
			"total":           len(report.Ambiguities),
			"byType":          byType,
			"averageReadings": avg,
		},
		"tagteam:ambiguities": items,
	}
}

func buildLattice(lattice ambiguity.Lattice) map[string]interface{} {
	alts := make([]map[string]interface{}, 0, len(lattice.Alternatives))
	for _, alt := range lattice.Alternatives {
		item := map[string]interface{}{
			"@id":          alt.IRI,
			"derivedFrom":  alt.DerivedFrom,
			"reading":      alt.Reading,
			"plausibility": alt.Plausibility,
		}
		if len(alt.AppendTypes) > 0 {
			item["appendTypes"] = alt.AppendTypes
		}
		if len(alt.Annotations) > 0 {
			item["annotations"] = alt.Annotations
		}
		alts = append(alts, item)
	}

	return map[string]interface{}{
		"@type":                "tagteam:InterpretationLattice",
		"defaultReading":       lattice.DefaultReading,
		"alternatives":         alts,
		"resolutions":          buildResolutionSummary(lattice.Resolutions),
		"ambiguitiesPreserved": lattice.AmbiguitiesPreserved,
	}
}

func buildResolutionSummary(res ambiguity.Resolution) map[string]interface{} {
	return map[string]interface{}{
		"preserved":   decisionSummaries(res.Preserved),
		"resolved":    decisionSummaries(res.Resolved),
		"flaggedOnly": decisionSummaries(res.FlaggedOnly),
	}
}

func decisionSummaries(decisions []ambiguity.Decision) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(decisions))
	for _, d := range decisions {
		item := map[string]interface{}{
			"nodeId":     d.Ambiguity.NodeIRI,
			"type":       d.Ambiguity.Type,
			"reason":     d.Reason,
			"confidence": d.Confidence,
		}
		if d.ResolvedReading != "" {
			item["resolvedReading"] = d.ResolvedReading
		}
		if d.Explanation != "" {
			item["explanation"] = d.Explanation
		}
		out = append(out, item)
	}
	return out
}
