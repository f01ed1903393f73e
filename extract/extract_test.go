package extract

import (
	"testing"

	"github.com/arjunmenon/tagteam/deptree"
	"github.com/arjunmenon/tagteam/nlp"
	"github.com/arjunmenon/tagteam/ontology"
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

func pipeline(t *testing.T, text string) ([]Entity, []Act, []StructuralAssertion, []Role) {
	t.Helper()
	tree := parse(t, text)
	gaz := nlp.NewGazetteer()
	lemma := nlp.DefaultLemmatizer()
	mint := ontology.MintOptions{}

	entityX := NewEntityExtractor(gaz, mint)
	entities, _ := entityX.Extract(tree)

	actX := NewActExtractor(lemma, mint)
	acts, assertions := actX.Extract(tree, entities)

	roleX := NewRoleMapper(mint)
	roles := roleX.Extract(tree, entities, acts)

	return entities, acts, assertions, roles
}

func TestActiveTransitiveExtraction(t *testing.T) {
	entities, acts, _, roles := pipeline(t, "The doctor treated the patient")

	if len(entities) != 2 {
		t.Fatalf("len(entities) = %d, want 2: %+v", len(entities), entities)
	}
	if len(acts) != 1 {
		t.Fatalf("len(acts) = %d, want 1: %+v", len(acts), acts)
	}
	if acts[0].Lemma != "treat" || acts[0].IsPassive || acts[0].IsNegated {
		t.Fatalf("act = %+v, want lemma=treat active not-negated", acts[0])
	}

	var sawAgent, sawPatient bool
	for _, r := range roles {
		if r.Type == ontology.TypeAgentRole {
			sawAgent = true
		}
		if r.Type == ontology.TypePatientRole {
			sawPatient = true
		}
	}
	if !sawAgent || !sawPatient {
		t.Fatalf("roles = %+v, want an AgentRole and a PatientRole", roles)
	}

	for _, e := range entities {
		if e.DenotesType != ontology.TypePerson {
			t.Fatalf("entity %q has type %q, want Person", e.Text, e.DenotesType)
		}
	}
}

func TestPassiveObliqueAgentExtraction(t *testing.T) {
	_, acts, _, roles := pipeline(t, "The patient was treated by the doctor")

	if len(acts) != 1 || !acts[0].IsPassive {
		t.Fatalf("acts = %+v, want single passive act", acts)
	}

	var agentFromObl, patientFromSubjPass bool
	for _, r := range roles {
		if r.Type == ontology.TypeAgentRole {
			agentFromObl = true
		}
		if r.Type == ontology.TypePatientRole {
			patientFromSubjPass = true
		}
	}
	if !agentFromObl || !patientFromSubjPass {
		t.Fatalf("roles = %+v, want AgentRole (obl:agent) and PatientRole (nsubj:pass)", roles)
	}
}

func TestCopularPartWholeExtraction(t *testing.T) {
	_, _, assertions, _ := pipeline(t, "CBP is a component of DHS")

	if len(assertions) != 1 {
		t.Fatalf("assertions = %+v, want exactly one", assertions)
	}
	a := assertions[0]
	if a.Relation != ontology.RelHasPart {
		t.Fatalf("relation = %q, want cco:has_part", a.Relation)
	}
	if a.Negated {
		t.Fatalf("assertion should not be negated")
	}
	if a.SubjectIRI == "" || a.ObjectIRI == "" {
		t.Fatalf("assertion = %+v, want both subject and object IRIs set", a)
	}
}

func TestModalDeonticExtraction(t *testing.T) {
	_, acts, _, _ := pipeline(t, "The doctor should allocate the ventilator")

	if len(acts) != 1 || acts[0].Modal != "should" {
		t.Fatalf("acts = %+v, want single act with modal=should", acts)
	}
}

func TestScarcityDeonticExtraction(t *testing.T) {
	entities, acts, _, _ := pipeline(t, "The doctor must allocate the last ventilator between two patients")

	if len(acts) != 1 || acts[0].Modal != "must" {
		t.Fatalf("acts = %+v, want single act with modal=must", acts)
	}

	var ventilator, patients *Entity
	for i := range entities {
		switch entities[i].Text {
		case "the last ventilator":
			ventilator = &entities[i]
		case "two patients":
			patients = &entities[i]
		}
	}
	if ventilator == nil || !ventilator.IsScarce || ventilator.Quantity == nil || *ventilator.Quantity != 1 {
		t.Fatalf("ventilator entity = %+v, want scarce quantity=1", ventilator)
	}
	if patients == nil || patients.Quantity == nil || *patients.Quantity != 2 {
		t.Fatalf("patients entity = %+v, want quantity=2", patients)
	}
}

func TestSelectionalViolationStructureExtraction(t *testing.T) {
	entities, acts, _, roles := pipeline(t, "The rock decided to move")

	if len(acts) == 0 || acts[0].Lemma != "decide" {
		t.Fatalf("acts = %+v, want a decide act", acts)
	}
	var rock *Entity
	for i := range entities {
		if entities[i].Text == "The rock" {
			rock = &entities[i]
		}
	}
	if rock == nil {
		t.Fatalf("entities = %+v, want an entity for 'The rock'", entities)
	}

	var agentRoleOnRock bool
	for _, r := range roles {
		if r.Type == ontology.TypeAgentRole && r.InheresIn == rock.IRI {
			agentRoleOnRock = true
		}
	}
	if !agentRoleOnRock {
		t.Fatalf("roles = %+v, want an AgentRole inhering in the rock", roles)
	}
}

func TestMintedIRIsAreDeterministic(t *testing.T) {
	e1, _, _, _ := pipeline(t, "The doctor treated the patient")
	e2, _, _, _ := pipeline(t, "The doctor treated the patient")
	if len(e1) != len(e2) {
		t.Fatalf("entity counts differ across identical runs")
	}
	for i := range e1 {
		if e1[i].IRI != e2[i].IRI {
			t.Fatalf("IRI %q != %q for identical input (invariant I6)", e1[i].IRI, e2[i].IRI)
		}
	}
}
