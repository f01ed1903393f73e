package ambiguity

import (
	"testing"

	"github.com/arjunmenon/tagteam/deptree"
	"github.com/arjunmenon/tagteam/extract"
	"github.com/arjunmenon/tagteam/nlp"
	"github.com/arjunmenon/tagteam/ontology"
	"github.com/arjunmenon/tagteam/selectional"
)

func parse(t *testing.T, text string) *deptree.DepTree {
	t.Helper()
	tok := nlp.RuleTokenizer().Tokenize(nlp.DefaultNormalizer().Normalize(text))
	tagged := nlp.RuleTagger().Tag(tok)
	tree, err := nlp.RuleParser().Parse(tagged)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", text, err)
	}
	return tree
}

func detect(t *testing.T, text string) Report {
	t.Helper()
	tree := parse(t, text)
	mint := ontology.MintOptions{}
	gaz := nlp.NewGazetteer()
	lemma := nlp.DefaultLemmatizer()
	table := selectional.Default()

	entities, _ := extract.NewEntityExtractor(gaz, mint).Extract(tree)
	acts, _ := extract.NewActExtractor(lemma, mint).Extract(tree, entities)
	roles := extract.NewRoleMapper(mint).Extract(tree, entities, acts)

	return NewDetector().Detect(tree, entities, acts, roles, table)
}

func TestDetectModalForceOnShould(t *testing.T) {
	report := detect(t, "The doctor should allocate the ventilator")

	var found *Ambiguity
	for i := range report.Ambiguities {
		if report.Ambiguities[i].Type == "modal_force" {
			found = &report.Ambiguities[i]
		}
	}
	if found == nil {
		t.Fatalf("ambiguities = %+v, want a modal_force ambiguity", report.Ambiguities)
	}

	decision := resolveModalForce(*found, DefaultConfig())
	if decision.Category != "preserved" {
		t.Fatalf("decision = %+v, want preserved (balanced evidence)", decision)
	}

	lattice := NewLatticeBuilder().Build(Resolution{Preserved: []Decision{decision}}, ontology.MintOptions{}, DefaultConfig())
	var sawNonDefault bool
	for _, alt := range lattice.Alternatives {
		if alt.Reading != found.DefaultReading && alt.Plausibility > 0.05 && alt.Plausibility < 0.95 {
			sawNonDefault = true
		}
	}
	if !sawNonDefault {
		t.Fatalf("alternatives = %+v, want at least one non-default reading in (0.05,0.95)", lattice.Alternatives)
	}
}

func TestDetectSelectionalViolationOnRock(t *testing.T) {
	report := detect(t, "The rock decided to move")

	var found bool
	for _, a := range report.Ambiguities {
		if a.Type == "selectional_violation" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ambiguities = %+v, want a selectional_violation", report.Ambiguities)
	}

	res := NewResolver().Resolve(report, DefaultConfig())
	for _, d := range res.FlaggedOnly {
		if d.Ambiguity.Type == "selectional_violation" && d.Reason != "anomalous_input" {
			t.Fatalf("decision = %+v, want reason anomalous_input", d)
		}
	}
	for _, d := range res.Preserved {
		if d.Ambiguity.Type == "selectional_violation" {
			t.Fatalf("selectional_violation must never be preserved (invariant P8)")
		}
	}
}

func TestSelectionalViolationNeverInAlternatives(t *testing.T) {
	report := detect(t, "The rock decided to move")
	res := NewResolver().Resolve(report, DefaultConfig())
	lattice := NewLatticeBuilder().Build(res, ontology.MintOptions{}, DefaultConfig())

	// selectional_violation never builds an Alternative (invariant P8):
	// confirm no alternative derives from a selectional_violation node.
	violationIRIs := map[string]bool{}
	for _, a := range report.Ambiguities {
		if a.Type == "selectional_violation" {
			violationIRIs[a.NodeIRI] = true
		}
	}
	for _, alt := range lattice.Alternatives {
		if violationIRIs[alt.ParentIRI] {
			t.Fatalf("alternative %+v derived from a selectional_violation node", alt)
		}
	}
}

func TestResolveNounCategoryDefaultHeuristic(t *testing.T) {
	amb := Ambiguity{Type: "noun_category", Confidence: 0.5, DefaultReading: "continuant", Readings: []string{"process", "continuant"}}
	d := resolveNounCategory(amb, DefaultConfig())
	if d.Category != "resolved" || d.ResolvedReading != "continuant" || d.Reason != "default_heuristic" {
		t.Fatalf("decision = %+v, want resolved/continuant/default_heuristic", d)
	}
}

func TestCapReadingsRespectsMax(t *testing.T) {
	amb := Ambiguity{Readings: []string{"a", "b", "c", "d"}}
	capped := capReadings(amb, 2)
	if len(capped.Readings) != 2 {
		t.Fatalf("capped.Readings = %v, want len 2", capped.Readings)
	}
}
