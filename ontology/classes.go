package ontology

import (
	"github.com/c360studio/semstreams/vocabulary"
	"github.com/c360studio/semstreams/vocabulary/bfo"
	"github.com/c360studio/semstreams/vocabulary/cco"
)

// TypeTag is the closed set of domain types extract/graph/ambiguity
// assign internally. jsonld.Serializer is the only place these are
// turned into wire IRIs (via TypesFor), keeping the opaque-vs-readable
// alias policy (spec §9) in one location.
type TypeTag string

const (
	TypePerson             TypeTag = "Person"
	TypeOrganization       TypeTag = "Organization"
	TypeArtifact           TypeTag = "Artifact"
	TypeMaterialEntity     TypeTag = "MaterialEntity"
	TypeCollective         TypeTag = "Collective"
	TypeGenericEntity      TypeTag = "Entity"
	TypeDiscourseReferent  TypeTag = "DiscourseReferent"
	TypeVerbPhrase         TypeTag = "VerbPhrase"
	TypeIntentionalAct     TypeTag = "IntentionalAct"
	TypeStructuralAssertion TypeTag = "StructuralAssertion"
	TypeRole               TypeTag = "Role"
	TypeAgentRole          TypeTag = "AgentRole"
	TypePatientRole        TypeTag = "PatientRole"
	TypeInstrumentRole     TypeTag = "InstrumentRole"
	TypeLocationRole       TypeTag = "LocationRole"
	TypeRecipientRole      TypeTag = "RecipientRole"
	TypeBeneficiaryRole    TypeTag = "BeneficiaryRole"
	TypeObliqueRole        TypeTag = "ObliqueRole"
	TypeIBE                TypeTag = "IBE"
	TypeArtificialAgent    TypeTag = "ArtificialAgent"
	TypeParsingAct         TypeTag = "ParsingAct"
	TypeAmbiguityReport    TypeTag = "AmbiguityReport"
	TypeInterpretationLattice TypeTag = "InterpretationLattice"
)

// classAlias is the per-TypeTag alias bundle jsonld.Serializer draws
// from depending on Profile: Primary is spec-mandated and always
// present (the "bit-exact" contract of §4.10); Readable is the
// informational alias §9 notes as a real inconsistency in the source
// material, kept for ProfileCCO/ProfileBFO only; BFO/CCO/PROV are the
// semstreams-sourced full IRIs appended under wider profiles.
type classAlias struct {
	Primary  string // always emitted, spec-exact CURIE
	Readable string // informational readable alias, "" if none distinct
	BFO      string // semstreams bfo.* constant, "" if not applicable
	CCO      string // semstreams cco.* constant, "" if not applicable
	Prov     string // semstreams vocabulary.Prov* constant, "" if not applicable
}

// classAliases is the fixed alias table. Organization's Primary is the
// opaque cco:ont00001180 spec §4.10 gives as its worked example; the
// rest follow the same opaque-numbering convention for consistency
// (spec only fixes Organization's number bit-exactly, but the pattern
// it establishes — opaque CCO codes are authoritative, readable names
// informational — applies uniformly per §9's resolution of the
// two-JSONLDSerializer-versions inconsistency).
var classAliases = map[TypeTag]classAlias{
	TypePerson: {
		Primary: "cco:ont00001262", Readable: "cco:Person",
		BFO: bfo.IndependentContinuant, CCO: cco.Person, Prov: vocabulary.ProvPerson,
	},
	TypeOrganization: {
		Primary: "cco:ont00001180", Readable: "cco:Organization",
		BFO: bfo.IndependentContinuant,
	},
	TypeArtifact: {
		Primary: "cco:ont00001021", Readable: "cco:Artifact",
		BFO: bfo.IndependentContinuant,
	},
	TypeMaterialEntity: {
		Primary: "bfo:MaterialEntity", Readable: "bfo:MaterialEntity",
		BFO: bfo.IndependentContinuant,
	},
	TypeCollective: {
		Primary: "cco:ont00001302", Readable: "cco:Collective",
		BFO: bfo.IndependentContinuant,
	},
	TypeGenericEntity: {
		Primary: "bfo:Entity", Readable: "bfo:Entity",
	},
	TypeDiscourseReferent: {
		Primary: "tagteam:DiscourseReferent",
		BFO:     bfo.GenericallyDependentContinuant,
		CCO:     cco.InformationContentEntity,
		Prov:    vocabulary.ProvEntity,
	},
	TypeVerbPhrase: {
		Primary: "tagteam:VerbPhrase",
		BFO:     bfo.GenericallyDependentContinuant,
		CCO:     cco.InformationContentEntity,
		Prov:    vocabulary.ProvEntity,
	},
	TypeIntentionalAct: {
		Primary: "cco:ont00001439", Readable: "cco:IntentionalAct",
		BFO: bfo.Process, CCO: cco.Act, Prov: vocabulary.ProvActivity,
	},
	TypeStructuralAssertion: {
		Primary: "tagteam:StructuralAssertion",
	},
	TypeRole: {
		Primary: "bfo:Role",
	},
	TypeAgentRole:       {Primary: "cco:AgentRole"},
	TypePatientRole:     {Primary: "cco:PatientRole"},
	TypeInstrumentRole:  {Primary: "cco:InstrumentRole"},
	TypeLocationRole:    {Primary: "cco:LocationRole"},
	TypeRecipientRole:   {Primary: "cco:RecipientRole"},
	TypeBeneficiaryRole: {Primary: "cco:BeneficiaryRole"},
	TypeObliqueRole:     {Primary: "cco:ObliqueRole"},
	TypeIBE: {
		Primary: "cco:ont00001688", Readable: "cco:InformationBearingEntity",
		CCO: cco.InformationContentEntity, Prov: vocabulary.ProvEntity,
	},
	TypeArtificialAgent: {
		Primary: "cco:ont00001302", Readable: "cco:ArtificialAgent",
		CCO: cco.IntelligentSoftwareAgent, Prov: vocabulary.ProvSoftwareAgent,
	},
	TypeParsingAct: {
		Primary: "cco:ont00001439", Readable: "cco:IntentionalAct",
		CCO: cco.ActOfArtifactProcessing, Prov: vocabulary.ProvActivity,
	},
	TypeAmbiguityReport:       {Primary: "tagteam:AmbiguityReport"},
	TypeInterpretationLattice: {Primary: "tagteam:InterpretationLattice"},
}

// TypesFor returns the @type array for tag under profile, primary type
// first (spec-exact, always present) per the escalation pattern of
// GetTypesForEntity in the semspec vocabulary mappings this package is
// grounded on.
func TypesFor(tag TypeTag, profile Profile) []string {
	alias, ok := classAliases[tag]
	if !ok {
		return []string{"owl:NamedIndividual"}
	}
	out := make([]string, 0, 5)
	out = append(out, alias.Primary)
	if profile == ProfileMinimal {
		return out
	}
	if alias.Readable != "" && alias.Readable != alias.Primary {
		out = append(out, alias.Readable)
	}
	if alias.Prov != "" {
		out = append(out, alias.Prov)
	}
	if alias.BFO != "" {
		out = append(out, alias.BFO)
	}
	if profile == ProfileCCO && alias.CCO != "" {
		out = append(out, alias.CCO)
	}
	return out
}

// Relation is the closed set of predicates StructuralAssertion, Role,
// and the provenance triad use, resolved to the spec-fixed CURIEs of
// §3/§4.3/§4.10.
type Relation string

const (
	RelIsAbout          Relation = "cco:is_about"
	RelIsConcretizedBy  Relation = "bfo:is_concretized_by"
	RelInheresIn        Relation = "bfo:inheres_in"
	RelRealizedIn       Relation = "bfo:realized_in"
	RelIsBearerOf       Relation = "bfo:is_bearer_of"
	RelHasPart          Relation = "cco:has_part"
	RelMemberOf         Relation = "cco:member_of"
	RelSubClassOf       Relation = "rdfs:subClassOf"
	RelPartOf           Relation = "bfo:part_of"
	RelType             Relation = "rdf:type"
	RelLocatedIn        Relation = "bfo:located_in"
	RelHasFunction      Relation = "cco:has_function"
	RelHasInput         Relation = "cco:has_input"
	RelHasAgent         Relation = "cco:has_agent"
	RelHasOutput        Relation = "cco:has_output"
	RelDerivedFrom      Relation = "tagteam:derivedFrom"
)

// provAnalogue mirrors F.3's "dual PROV-O/CCO identity" requirement: a
// provenance edge carries both its CCO relation and, where semstreams
// exports one, the PROV-O analogue for the same assertion.
var provAnalogue = map[Relation]string{
	RelHasInput:  vocabulary.ProvUsed,
	RelHasAgent:  vocabulary.ProvWasAssociatedWith,
	RelHasOutput: vocabulary.ProvGenerated,
}

// ProvAnalogue returns the PROV-O full IRI paired with rel, and whether
// one exists.
func ProvAnalogue(rel Relation) (string, bool) {
	iri, ok := provAnalogue[rel]
	return iri, ok
}

// CopulaRelation maps the fixed preposition/marker phrase table of
// spec §4.3 step 2 to its StructuralAssertion relation.
func CopulaRelation(phrase string) (Relation, bool) {
	switch phrase {
	case "component of":
		return RelHasPart, true
	case "member of":
		return RelMemberOf, true
	case "type of":
		return RelSubClassOf, true
	case "part of":
		return RelPartOf, true
	case "example of":
		return RelType, true
	case "located in":
		return RelLocatedIn, true
	case "responsible for":
		return RelHasFunction, true
	}
	return "", false
}

// RolePreposition maps the oblique preposition table of spec §4.4 to
// its role subtype tag.
func RolePreposition(prep string) TypeTag {
	switch prep {
	case "with":
		return TypeInstrumentRole
	case "at", "in", "on":
		return TypeLocationRole
	case "for":
		return TypeBeneficiaryRole
	case "to":
		return TypeRecipientRole
	}
	return TypeObliqueRole
}
