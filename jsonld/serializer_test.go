package jsonld

import (
	"encoding/json"
	"testing"

	"github.com/arjunmenon/tagteam/ambiguity"
	"github.com/arjunmenon/tagteam/extract"
	"github.com/arjunmenon/tagteam/graph"
	"github.com/arjunmenon/tagteam/nlp"
	"github.com/arjunmenon/tagteam/ontology"
	"github.com/arjunmenon/tagteam/provenance"
	"github.com/arjunmenon/tagteam/selectional"
)

func buildDoc(t *testing.T, text string) (Document, []byte) {
	t.Helper()
	mint := ontology.MintOptions{}
	gaz := nlp.NewGazetteer()
	lemma := nlp.DefaultLemmatizer()
	table := selectional.Default()

	tok := nlp.RuleTokenizer().Tokenize(nlp.DefaultNormalizer().Normalize(text))
	tagged := nlp.RuleTagger().Tag(tok)
	tree, err := nlp.RuleParser().Parse(tagged)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}

	entities, aliasMap := extract.NewEntityExtractor(gaz, mint).Extract(tree)
	acts, assertions := extract.NewActExtractor(lemma, mint).Extract(tree, entities)
	roles := extract.NewRoleMapper(mint).Extract(tree, entities, acts)

	provBuilder := provenance.NewBuilder(mint, provenance.AgentIdentity{})
	ibeIRI := ontology.Mint(mint, text, 0, ontology.TypeIBE, "")

	g, _ := graph.NewBuilder(mint).Assemble(entities, acts, assertions, roles, aliasMap, ibeIRI)
	triad := provBuilder.Build(text, g.T1IRIs(), "", "", "")

	report := ambiguity.NewDetector().Detect(tree, entities, acts, roles, table)
	cfg := ambiguity.DefaultConfig()
	res := ambiguity.NewResolver().Resolve(report, cfg)
	lattice := ambiguity.NewLatticeBuilder().Build(res, mint, cfg)

	out, err := NewSerializer().Serialize(g, triad, &report, &res, &lattice, Options{Profile: ontology.ProfileCCO})
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("Unmarshal serialized document: %v", err)
	}
	return doc, out
}

func TestSerializeProducesFixedContext(t *testing.T) {
	doc, _ := buildDoc(t, "The doctor treated the patient")
	for _, prefix := range []string{"bfo", "cco", "tagteam", "inst", "rdf", "rdfs", "owl", "xsd", "prov"} {
		if _, ok := doc.Context[prefix]; !ok {
			t.Fatalf("@context missing prefix %q", prefix)
		}
	}
}

func TestSerializeEmitsEveryT1AndT2Node(t *testing.T) {
	doc, _ := buildDoc(t, "The doctor treated the patient")
	var discourseReferents, entities, provenanceNodes int
	for _, n := range doc.Graph {
		types, _ := n["@type"].([]interface{})
		for _, ty := range types {
			switch ty {
			case "tagteam:DiscourseReferent":
				discourseReferents++
			case "cco:ont00001688":
				provenanceNodes++
			}
		}
		if _, ok := n["tagteam:denotedBy"]; ok {
			entities++
		}
	}
	if discourseReferents != 2 {
		t.Fatalf("discourseReferents = %d, want 2", discourseReferents)
	}
	if entities < 2 {
		t.Fatalf("entities (denotedBy nodes) = %d, want >= 2", entities)
	}
	if provenanceNodes != 1 {
		t.Fatalf("IBE nodes = %d, want 1", provenanceNodes)
	}
}

func TestSerializeRoundTripsKeys(t *testing.T) {
	_, out := buildDoc(t, "The doctor treated the patient")
	var first, second map[string]interface{}
	if err := json.Unmarshal(out, &first); err != nil {
		t.Fatalf("first unmarshal: %v", err)
	}
	reencoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if err := json.Unmarshal(reencoded, &second); err != nil {
		t.Fatalf("second unmarshal: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("round trip changed top-level key count: %d vs %d", len(first), len(second))
	}
}

func TestSerializeAmbiguityReportShape(t *testing.T) {
	doc, _ := buildDoc(t, "The doctor should allocate the ventilator")
	if doc.AmbiguityReport == nil {
		t.Fatalf("expected an _ambiguityReport for a modal sentence")
	}
	if doc.AmbiguityReport["@type"] != "tagteam:AmbiguityReport" {
		t.Fatalf("_ambiguityReport @type = %v, want tagteam:AmbiguityReport", doc.AmbiguityReport["@type"])
	}
	if _, ok := doc.AmbiguityReport["tagteam:statistics"]; !ok {
		t.Fatalf("_ambiguityReport missing tagteam:statistics")
	}
}

func TestSerializeInterpretationLatticeShape(t *testing.T) {
	doc, _ := buildDoc(t, "The doctor should allocate the ventilator")
	if doc.InterpretationLattice == nil {
		t.Fatalf("expected an _interpretationLattice for a preserved modal ambiguity")
	}
	if _, ok := doc.InterpretationLattice["resolutions"]; !ok {
		t.Fatalf("_interpretationLattice missing resolutions")
	}
}
