// Package graph assembles the Two-Tier + provenance graph of spec §3:
// T1 linguistic mentions (DiscourseReferent, VerbPhrase), their paired
// T2 real-world denotata (RealWorldEntity, RealAct), and the
// StructuralAssertion/Role edges extract produces. It owns no
// extraction logic itself (spec §9: "the Graph Builder is their
// coordinator and owns no business logic") — Assemble wires together
// whatever an extract.EntityExtractor/ActExtractor/RoleMapper already
// produced for one DepTree.
package graph

import (
	"github.com/arjunmenon/tagteam/extract"
	"github.com/arjunmenon/tagteam/ontology"
)

// DiscourseReferent is a T1 linguistic mention of an entity (spec §3).
type DiscourseReferent struct {
	IRI               string
	Text              string
	SpanOffset        int
	HeadPOS           string
	Role              string
	DenotesType       ontology.TypeTag
	Definiteness      string
	Quantity          *int
	QuantityIndicator string
	IsScarce          bool
	Aliases           []string
	ResolvedVia       string
	CanonicalForm     string
	IsAbout           string // -> T2 RealWorldEntity IRI
	IsConcretizedBy   string // -> IBE IRI
}

// VerbPhrase is a T1 linguistic mention of an act (spec §3).
type VerbPhrase struct {
	IRI             string
	Surface         string
	Lemma           string
	Modal           string
	Auxiliaries     []string
	Tense           string
	IsPassive       bool
	IsPerfect       bool
	IsNegated       bool
	IsAbout         string // -> T2 RealAct IRI
	IsConcretizedBy string // -> IBE IRI
}

// RealWorldEntity is the T2 denotatum of a DiscourseReferent.
type RealWorldEntity struct {
	IRI        string
	Type       ontology.TypeTag
	Label      string
	MentionIRI string // back-reference to the T1 DiscourseReferent
}

// RealAct is the T2 denotatum of a VerbPhrase.
type RealAct struct {
	IRI        string
	Label      string
	MentionIRI string
}

// Graph is the assembled Two-Tier graph for one sentence, before
// ambiguity detection, provenance attachment, or serialization.
type Graph struct {
	DiscourseReferents []DiscourseReferent
	VerbPhrases        []VerbPhrase
	Entities           []RealWorldEntity
	Acts               []RealAct
	Assertions         []extract.StructuralAssertion
	Roles              []extract.Role
	AliasMap           map[string]string
}

// Builder assembles a Graph from extractor output. It holds no mutable
// state beyond its mint options (frozen, shared-safe per §5).
type Builder struct {
	Mint ontology.MintOptions
}

// NewBuilder returns a Builder using opts for IRI minting.
func NewBuilder(opts ontology.MintOptions) Builder {
	return Builder{Mint: opts}
}

// Assemble wires extractor output into a Two-Tier Graph. ibeIRI is the
// sentence's single IBE IRI (spec §3 invariant I3); warnings accumulate
// non-fatal ExtractionWarning conditions (spec §7) rather than failing
// the build.
func (b Builder) Assemble(entities []extract.Entity, acts []extract.Act, assertions []extract.StructuralAssertion, roles []extract.Role, aliasMap map[string]string, ibeIRI string) (Graph, []string) {
	var warnings []string
	g := Graph{
		Assertions: assertions,
		AliasMap:   aliasMap,
	}

	for _, e := range entities {
		if e.DenotesType == "" {
			warnings = append(warnings, "extraction: entity "+e.Text+" has no classifiable type, defaulting to generic entity")
			e.DenotesType = ontology.TypeGenericEntity
		}

		t2IRI := ontology.Mint(b.Mint, e.Text, e.SpanOffset, e.DenotesType, "")

		g.DiscourseReferents = append(g.DiscourseReferents, DiscourseReferent{
			IRI:               e.IRI,
			Text:              e.Text,
			SpanOffset:        e.SpanOffset,
			HeadPOS:           e.HeadTag,
			Role:              e.Role,
			DenotesType:       e.DenotesType,
			Definiteness:      e.Definiteness,
			Quantity:          e.Quantity,
			QuantityIndicator: e.QuantityIndicator,
			IsScarce:          e.IsScarce,
			Aliases:           e.Aliases,
			ResolvedVia:       e.ResolvedVia,
			CanonicalForm:     e.CanonicalForm,
			IsAbout:           t2IRI,
			IsConcretizedBy:   ibeIRI,
		})
		g.Entities = append(g.Entities, RealWorldEntity{
			IRI:        t2IRI,
			Type:       e.DenotesType,
			Label:      e.Text,
			MentionIRI: e.IRI,
		})
	}

	for _, a := range acts {
		t2IRI := ontology.Mint(b.Mint, a.Surface, a.SpanOffset, ontology.TypeIntentionalAct, "")

		g.VerbPhrases = append(g.VerbPhrases, VerbPhrase{
			IRI:             a.IRI,
			Surface:         a.Surface,
			Lemma:           a.Lemma,
			Modal:           a.Modal,
			Auxiliaries:     a.Auxiliaries,
			Tense:           a.Tense,
			IsPassive:       a.IsPassive,
			IsPerfect:       a.IsPerfect,
			IsNegated:       a.IsNegated,
			IsAbout:         t2IRI,
			IsConcretizedBy: ibeIRI,
		})
		g.Acts = append(g.Acts, RealAct{
			IRI:        t2IRI,
			Label:      a.Surface,
			MentionIRI: a.IRI,
		})
	}

	for _, r := range roles {
		if r.InheresIn == "" {
			// Spec invariant I1: never emit a Role with a missing
			// bearer. extract.RoleMapper only builds a Role once it has
			// resolved an entity, so this should be unreachable; the
			// check stays as the ExtractionWarning §7 describes for
			// "a role without a bearer."
			warnings = append(warnings, "extraction: dropped role "+string(r.Type)+" with no bearer")
			continue
		}
		g.Roles = append(g.Roles, r)
	}

	return g, warnings
}

// T1IRIs returns the IRI of every T1 node (DiscourseReferent +
// VerbPhrase) in insertion order, as required by the ParsingAct's
// has_output (spec §6).
func (g Graph) T1IRIs() []string {
	out := make([]string, 0, len(g.DiscourseReferents)+len(g.VerbPhrases))
	for _, d := range g.DiscourseReferents {
		out = append(out, d.IRI)
	}
	for _, v := range g.VerbPhrases {
		out = append(out, v.IRI)
	}
	return out
}
