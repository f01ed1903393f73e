// Package ontology resolves the closed set of domain type tags and
// relation names the extractors and graph builder use internally into
// the CURIEs and full IRIs that cross the JSON-LD boundary, mints the
// deterministic per-node identifiers described in spec §4.9, and
// sanitizes surface text before it is written into the graph.
//
// Internal packages (extract, graph, ambiguity, provenance) never write
// a CCO/BFO string literal themselves; they ask this package for the
// IRI of a TypeTag or Relation so every call site agrees on the
// contract in spec §4.10, including the opaque-vs-readable alias policy
// spec §9 flags as a real inconsistency in the source material.
package ontology

// Namespace prefixes declared in the fixed JSON-LD context (spec §4.10).
// jsonld.Context embeds these verbatim; nothing else should redeclare them.
const (
	NSBFO      = "http://purl.obolibrary.org/obo/bfo.owl#"
	NSCCO      = "https://www.commoncoreontologies.org/"
	NSTagteam  = "https://tagteam.dev/ontology#"
	NSInst     = "https://tagteam.dev/instances/"
	NSRDF      = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS     = "http://www.w3.org/2000/01/rdf-schema#"
	NSOWL      = "http://www.w3.org/2002/07/owl#"
	NSXSD      = "http://www.w3.org/2001/XMLSchema#"
	NSProv     = "http://www.w3.org/ns/prov#"
)

// Namespaces is the prefix -> IRI table for the JSON-LD @context.
var Namespaces = map[string]string{
	"bfo":     NSBFO,
	"cco":     NSCCO,
	"tagteam": NSTagteam,
	"inst":    NSInst,
	"rdf":     NSRDF,
	"rdfs":    NSRDFS,
	"owl":     NSOWL,
	"xsd":     NSXSD,
	"prov":    NSProv,
}

// Profile selects how many type assertions jsonld.Serializer emits per
// node, following export/profiles.go's ProfileMinimal/BFO/CCO escalation
// (F.6): the spec-mandated primary CURIE is always present; wider
// profiles append the BFO/CCO/PROV-O classes sourced from
// github.com/c360studio/semstreams/vocabulary.
type Profile int

const (
	// ProfileCCO is the default: primary CURIE + readable alias + BFO +
	// CCO + PROV-O classes, matching spec §4.10's contract exactly.
	ProfileCCO Profile = iota
	// ProfileBFO omits the CCO-specific classes, keeping BFO + PROV-O.
	ProfileBFO
	// ProfileMinimal emits only the spec-mandated primary CURIE.
	ProfileMinimal
)
