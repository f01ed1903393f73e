// Package provenance builds the T3 triad spec §3 requires on every
// build: one InformationBearingEntity (the input sentence), one
// ArtificialAgent (this software), and one ParsingAct connecting them
// to every T1 node the Graph Assembly stage produced. Grounded on the
// PROV-O/CCO dual-identity pattern in ontology.ProvAnalogue, which is
// itself grounded on github.com/c360studio/semstreams/vocabulary.
package provenance

import (
	"strings"

	"github.com/arjunmenon/tagteam/ontology"
)

// IBE is the InformationBearingEntity denoting the raw input text
// (spec §3's Provenance triad, first member; spec §6 additionally
// requires char/word counts and a received-at timestamp).
type IBE struct {
	IRI        string
	Text       string
	CharCount  int
	WordCount  int
	ReceivedAt string // RFC3339, empty if the caller didn't supply one
}

// ArtificialAgent identifies the software that performed the parse
// (spec §3's Provenance triad, second member). Version is a free-form
// build identifier (e.g. a module version or commit), not parsed.
type ArtificialAgent struct {
	IRI     string
	Name    string
	Version string
}

// ParsingAct is the T3 activity linking the ArtificialAgent's use of
// the IBE to the T1 nodes it generated (spec §3's Provenance triad,
// third member; HasOutput must enumerate every T1 IRI per spec §6).
type ParsingAct struct {
	IRI       string
	UsedIRI   string   // -> IBE.IRI
	AgentIRI  string   // -> ArtificialAgent.IRI
	HasOutput []string // every T1 node IRI (graph.Graph.T1IRIs())
	StartedAt string   // RFC3339, empty if the caller didn't supply one
	EndedAt   string
}

// Edge is a resolved provenance relation, carrying both the CCO
// predicate and its PROV-O analogue when one exists (spec F.3's "dual
// PROV-O/CCO identity").
type Edge struct {
	Subject  string
	Relation ontology.Relation
	ProvIRI  string // "" if ontology.ProvAnalogue found none
	Object   string
}

// Triad is the fully assembled T3 record for one build call.
type Triad struct {
	IBE   IBE
	Agent ArtificialAgent
	Act   ParsingAct
	Edges []Edge
}

// AgentIdentity is the fixed identity this build of tagteam reports as
// its ArtificialAgent. version is supplied by the caller (tagteam.Build
// threads its own module version through); it is not inferred here.
type AgentIdentity struct {
	Name    string
	Version string
}

// DefaultAgentIdentity is used when callers don't override it via
// Options (spec §6's Options table has no agent-identity knob, so this
// is the fixed default referenced by every ParsingAct).
var DefaultAgentIdentity = AgentIdentity{Name: "tagteam", Version: "dev"}

// Builder assembles a Triad for one sentence build. It holds no
// mutable state beyond its mint options and agent identity, both
// frozen and shared-safe per spec §5.
type Builder struct {
	Mint   ontology.MintOptions
	Agent  AgentIdentity
}

// NewBuilder returns a Builder using opts for IRI minting and identity
// for the ArtificialAgent it stamps onto every Triad.
func NewBuilder(opts ontology.MintOptions, identity AgentIdentity) Builder {
	if identity.Name == "" {
		identity = DefaultAgentIdentity
	}
	return Builder{Mint: opts, Agent: identity}
}

// Build constructs the T3 triad for one input sentence: an IBE
// denoting text, an ArtificialAgent identifying this software, and a
// ParsingAct whose HasOutput is t1IRIs (spec §6: "has_output must
// enumerate every T1 node").
func (b Builder) Build(text string, t1IRIs []string, receivedAt, startedAt, endedAt string) Triad {
	ibe := IBE{
		IRI:        ontology.Mint(b.Mint, text, 0, ontology.TypeIBE, ""),
		Text:       ontology.Sanitize(text),
		CharCount:  len([]rune(text)),
		WordCount:  len(strings.Fields(text)),
		ReceivedAt: receivedAt,
	}
	agent := ArtificialAgent{
		IRI:     ontology.Mint(b.Mint, b.Agent.Name+"@"+b.Agent.Version, 0, ontology.TypeArtificialAgent, ""),
		Name:    b.Agent.Name,
		Version: b.Agent.Version,
	}
	act := ParsingAct{
		IRI:       ontology.Mint(b.Mint, "parse:"+ibe.IRI, 0, ontology.TypeParsingAct, ""),
		UsedIRI:   ibe.IRI,
		AgentIRI:  agent.IRI,
		HasOutput: t1IRIs,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}

	edges := []Edge{
		edge(act.IRI, ontology.RelHasAgent, agent.IRI),
		edge(act.IRI, ontology.RelHasInput, ibe.IRI),
	}
	for _, out := range t1IRIs {
		edges = append(edges, edge(act.IRI, ontology.RelHasOutput, out))
	}

	return Triad{IBE: ibe, Agent: agent, Act: act, Edges: edges}
}

func edge(subject string, rel ontology.Relation, object string) Edge {
	provIRI, _ := ontology.ProvAnalogue(rel)
	return Edge{Subject: subject, Relation: rel, ProvIRI: provIRI, Object: object}
}
