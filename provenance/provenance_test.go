package provenance

import (
	"testing"

	"github.com/arjunmenon/tagteam/ontology"
)

func TestBuildProducesDistinctTriadMembers(t *testing.T) {
	b := NewBuilder(ontology.MintOptions{}, AgentIdentity{Name: "tagteam", Version: "test"})
	triad := b.Build("The doctor treated the patient", []string{"inst:doctor_aaaa1111", "inst:treated_bbbb2222"}, "", "", "")

	if triad.IBE.IRI == "" || triad.Agent.IRI == "" || triad.Act.IRI == "" {
		t.Fatalf("triad = %+v, want all three IRIs set", triad)
	}
	if triad.IBE.IRI == triad.Agent.IRI || triad.Agent.IRI == triad.Act.IRI || triad.IBE.IRI == triad.Act.IRI {
		t.Fatalf("triad IRIs must be pairwise distinct: %+v", triad)
	}
	if triad.Act.UsedIRI != triad.IBE.IRI {
		t.Fatalf("Act.UsedIRI = %q, want %q", triad.Act.UsedIRI, triad.IBE.IRI)
	}
	if triad.Act.AgentIRI != triad.Agent.IRI {
		t.Fatalf("Act.AgentIRI = %q, want %q", triad.Act.AgentIRI, triad.Agent.IRI)
	}
	if len(triad.Act.HasOutput) != 2 {
		t.Fatalf("HasOutput = %v, want 2 entries", triad.Act.HasOutput)
	}
}

func TestBuildEnumeratesHasOutputEdgesForEveryT1Node(t *testing.T) {
	b := NewBuilder(ontology.MintOptions{}, AgentIdentity{})
	t1 := []string{"inst:a_1", "inst:b_2", "inst:c_3"}
	triad := b.Build("text", t1, "", "", "")

	var outputEdges int
	for _, e := range triad.Edges {
		if e.Relation == ontology.RelHasOutput {
			outputEdges++
			if e.ProvIRI == "" {
				t.Fatalf("has_output edge %+v missing PROV-O analogue", e)
			}
		}
	}
	if outputEdges != len(t1) {
		t.Fatalf("has_output edges = %d, want %d", outputEdges, len(t1))
	}
}

func TestBuildDefaultsAgentIdentityWhenUnset(t *testing.T) {
	b := NewBuilder(ontology.MintOptions{}, AgentIdentity{})
	if b.Agent.Name != DefaultAgentIdentity.Name {
		t.Fatalf("Agent = %+v, want default identity applied", b.Agent)
	}
}

func TestBuildDeterministicAcrossIdenticalInputs(t *testing.T) {
	b := NewBuilder(ontology.MintOptions{}, AgentIdentity{Name: "tagteam", Version: "1"})
	t1a := b.Build("same text", []string{"inst:x_1"}, "", "", "")
	t1b := b.Build("same text", []string{"inst:x_1"}, "", "", "")
	if t1a.IBE.IRI != t1b.IBE.IRI || t1a.Agent.IRI != t1b.Agent.IRI || t1a.Act.IRI != t1b.Act.IRI {
		t.Fatalf("triad IRIs not deterministic across identical inputs (invariant I6)")
	}
}
