// Package selectional implements the frozen verb-class / entity-category
// lookup table of spec §4.5: selectional preference validation for a
// verb's subject and object arguments.
package selectional

import (
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/arjunmenon/tagteam/ontology"
)

// VerbClass is one of the ten semantic classes spec §4.5 names.
type VerbClass string

const (
	ClassIntentionalMental   VerbClass = "intentional-mental"
	ClassIntentionalPhysical VerbClass = "intentional-physical"
	ClassCommunication       VerbClass = "communication"
	ClassTransfer            VerbClass = "transfer"
	ClassEmployment          VerbClass = "employment"
	ClassGovernance          VerbClass = "governance"
	ClassCreation            VerbClass = "creation"
	ClassPerception          VerbClass = "perception"
	ClassCausation           VerbClass = "causation"
	ClassStative             VerbClass = "stative"
	ClassUnknown             VerbClass = ""
)

// Category is one of the seven entity categories spec §4.5 names.
type Category string

const (
	CategoryAnimate        Category = "animate"
	CategoryOrganization   Category = "organization"
	CategoryCollective     Category = "collective"
	CategoryMaterialEntity Category = "material-entity"
	CategoryInanimate      Category = "inanimate"
	CategoryAbstract       Category = "abstract"
	CategoryProposition    Category = "proposition"
)

// ClassRule is the frozen requirement/forbidden/ontology-type bundle
// for one verb class.
type ClassRule struct {
	SubjectRequirement []Category
	SubjectForbidden   []Category
	ObjectRequirement  []Category
	ObjectForbidden    []Category
	OntologyType       ontology.TypeTag
}

// Entity is the minimal shape checkSubject/checkObject/getViolation need
// from an extracted entity: its surface label (for the suffix/label
// heuristics) and the ontology type tags already assigned to it (for
// the type-based check).
type Entity struct {
	Label string
	Types []ontology.TypeTag
}

// Violation is the structured result of getViolation (spec §4.5).
type Violation struct {
	Type         string // always "selectional_violation"
	Signal       string // inanimate_agent | abstract_agent | abstract_physical_actor | invalid_agent | invalid_patient
	VerbClass    VerbClass
	Requirement  []Category
	OntologyConstraint string
}

// CheckResult is the result of checkSubject/checkObject.
type CheckResult struct {
	Valid      bool
	Confidence float64
	Reason     string
}

// Table is a frozen, per-instance selectional preference table. The
// zero value is not usable; construct via NewTable or Default.
type Table struct {
	classes          map[VerbClass]ClassRule
	categoryLabels   map[Category]map[string]bool
	metonymicPlaces  map[string]bool
}

// classRules is the frozen rule set. Requirements/forbidden lists are
// deliberately permissive where spec leaves them unconstrained (empty
// slice == "no requirement"/"nothing forbidden").
var classRules = map[VerbClass]ClassRule{
	ClassIntentionalMental: {
		SubjectRequirement: []Category{CategoryAnimate},
		SubjectForbidden:   []Category{CategoryInanimate, CategoryAbstract},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassIntentionalPhysical: {
		SubjectRequirement: []Category{CategoryAnimate},
		SubjectForbidden:   []Category{CategoryInanimate, CategoryAbstract},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassCommunication: {
		SubjectRequirement: []Category{CategoryAnimate, CategoryOrganization},
		SubjectForbidden:   []Category{CategoryInanimate},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassTransfer: {
		SubjectRequirement: []Category{CategoryAnimate, CategoryOrganization},
		ObjectForbidden:    []Category{CategoryProposition},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassEmployment: {
		SubjectRequirement: []Category{CategoryAnimate, CategoryOrganization},
		ObjectRequirement:  []Category{CategoryAnimate},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassGovernance: {
		SubjectRequirement: []Category{CategoryOrganization, CategoryAnimate},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassCreation: {
		SubjectRequirement: []Category{CategoryAnimate, CategoryOrganization},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassPerception: {
		SubjectRequirement: []Category{CategoryAnimate},
		SubjectForbidden:   []Category{CategoryInanimate, CategoryAbstract},
		OntologyType:       ontology.TypeIntentionalAct,
	},
	ClassCausation: {
		OntologyType: ontology.TypeIntentionalAct,
	},
	ClassStative: {
		OntologyType: ontology.TypeIntentionalAct,
	},
}

// verbClassLexicon maps lemmas to their verb class; unlisted verbs are
// ClassUnknown (getVerbClass still tolerates inflected forms via a
// minimal morphological stripper rather than failing).
var verbClassLexicon = map[string]VerbClass{
	"decide": ClassIntentionalMental, "think": ClassIntentionalMental, "believe": ClassIntentionalMental,
	"want": ClassIntentionalMental, "intend": ClassIntentionalMental, "know": ClassIntentionalMental,
	"consider": ClassIntentionalMental, "assume": ClassIntentionalMental,

	"treat": ClassIntentionalPhysical, "allocate": ClassIntentionalPhysical, "move": ClassIntentionalPhysical,
	"build": ClassIntentionalPhysical, "carry": ClassIntentionalPhysical, "push": ClassIntentionalPhysical,
	"administer": ClassIntentionalPhysical, "perform": ClassIntentionalPhysical,

	"say": ClassCommunication, "tell": ClassCommunication, "announce": ClassCommunication,
	"ask": ClassCommunication, "report": ClassCommunication, "state": ClassCommunication,
	"communicate": ClassCommunication, "notify": ClassCommunication,

	"give": ClassTransfer, "send": ClassTransfer, "deliver": ClassTransfer,
	"transfer": ClassTransfer, "provide": ClassTransfer, "distribute": ClassTransfer,

	"hire": ClassEmployment, "employ": ClassEmployment, "appoint": ClassEmployment,
	"fire": ClassEmployment, "promote": ClassEmployment,

	"govern": ClassGovernance, "regulate": ClassGovernance, "rule": ClassGovernance,
	"administer_policy": ClassGovernance, "enforce": ClassGovernance, "legislate": ClassGovernance,

	"create": ClassCreation, "make": ClassCreation, "build_structure": ClassCreation,
	"design": ClassCreation, "draft": ClassCreation, "write": ClassCreation,

	"see": ClassPerception, "observe": ClassPerception, "notice": ClassPerception,
	"watch": ClassPerception, "hear": ClassPerception,

	"cause": ClassCausation, "trigger": ClassCausation, "produce": ClassCausation,

	"be": ClassStative, "exist": ClassStative, "remain": ClassStative, "seem": ClassStative,
}

// categoryLabelMembership is the label-based category lookup: a label
// may appear in more than one category (spec's "family" example).
var categoryLabelMembership = map[Category]map[string]bool{
	CategoryAnimate: {
		"doctor": true, "patient": true, "nurse": true, "officer": true, "agent": true,
		"person": true, "man": true, "woman": true, "child": true, "children": true,
		"people": true, "family": true, "team": true, "committee": true, "soldier": true,
	},
	CategoryOrganization: {
		"cbp": true, "dhs": true, "fbi": true, "who": true, "nato": true,
		"agency": true, "department": true, "corporation": true, "company": true, "ministry": true,
	},
	CategoryCollective: {
		"family": true, "team": true, "committee": true, "group": true, "crowd": true, "jury": true,
	},
	CategoryMaterialEntity: {
		"ventilator": true, "rock": true, "table": true, "building": true, "device": true, "vehicle": true,
	},
	CategoryInanimate: {
		"rock": true, "table": true, "ventilator": true, "stone": true, "machine": true, "device": true,
	},
	CategoryAbstract: {
		"idea": true, "policy": true, "decision": true, "plan": true, "concept": true, "theory": true,
	},
	CategoryProposition: {
		"claim": true, "statement": true, "assertion": true, "belief": true, "hypothesis": true,
	},
}

var defaultMetonymicPlaces = map[string]bool{
	"white house": true, "the white house": true,
	"kremlin": true, "the kremlin": true,
	"pentagon": true, "the pentagon": true,
	"capitol hill": true, "downing street": true, "brussels": true, "beijing": true, "washington": true,
}

// Default returns the reference Table seeded with the fixed rule set
// above.
func Default() Table {
	return Table{
		classes:         classRules,
		categoryLabels:  categoryLabelMembership,
		metonymicPlaces: defaultMetonymicPlaces,
	}
}

// GetVerbClass tolerates inflected forms via a minimal morphological
// stripper (spec §4.5): it tries the word as given first, then strips
// common inflectional suffixes before giving up and returning
// ClassUnknown.
func (t Table) GetVerbClass(verb string) VerbClass {
	lower := strings.ToLower(verb)
	if class, ok := verbClassLexicon[lower]; ok {
		return class
	}
	for _, stem := range stripInflections(lower) {
		if class, ok := verbClassLexicon[stem]; ok {
			return class
		}
	}
	return ClassUnknown
}

func stripInflections(word string) []string {
	var stems []string
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		stems = append(stems, word[:len(word)-3]+"y")
	case strings.HasSuffix(word, "ing") && len(word) > 4:
		stem := strings.TrimSuffix(word, "ing")
		stems = append(stems, stem, stem+"e")
	case strings.HasSuffix(word, "ed") && len(word) > 3:
		stem := strings.TrimSuffix(word, "ed")
		stems = append(stems, stem, stem+"e")
	case strings.HasSuffix(word, "es") && len(word) > 2:
		stems = append(stems, strings.TrimSuffix(word, "es"))
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word) > 1:
		stems = append(stems, strings.TrimSuffix(word, "s"))
	}
	return stems
}

// Categorize implements the cascade of spec §4.5: type-based check
// first (a CCO class already present in the entity's Types), then
// label membership across all categories (possibly several), then
// suffix heuristics, then fallback inanimate. Metonymic locations are
// forced to CategoryOrganization.
func (t Table) Categorize(e Entity) []Category {
	if t.IsMetonymicPlace(e.Label) {
		return []Category{CategoryOrganization}
	}
	if cats := t.categorizeByType(e.Types); len(cats) > 0 {
		return cats
	}
	label := strings.ToLower(strings.TrimSpace(e.Label))
	headWord := lastWord(label)
	var out []Category
	for cat, set := range t.categoryLabels {
		if set[label] || set[headWord] {
			out = append(out, cat)
		}
	}
	if len(out) > 0 {
		return out
	}
	if cat, ok := suffixCategory(headWord); ok {
		return []Category{cat}
	}
	return []Category{CategoryInanimate}
}

func (t Table) categorizeByType(types []ontology.TypeTag) []Category {
	var out []Category
	for _, ty := range types {
		switch ty {
		case ontology.TypePerson:
			out = append(out, CategoryAnimate)
		case ontology.TypeOrganization:
			out = append(out, CategoryOrganization)
		case ontology.TypeCollective:
			out = append(out, CategoryCollective, CategoryAnimate)
		case ontology.TypeArtifact, ontology.TypeMaterialEntity:
			out = append(out, CategoryMaterialEntity, CategoryInanimate)
		}
	}
	return out
}

func suffixCategory(word string) (Category, bool) {
	switch {
	case strings.HasSuffix(word, "er") || strings.HasSuffix(word, "or"):
		if categoryLabelMembership[CategoryMaterialEntity][word] {
			return CategoryMaterialEntity, true
		}
		return CategoryAnimate, true
	case strings.HasSuffix(word, "tion"), strings.HasSuffix(word, "ment"),
		strings.HasSuffix(word, "ness"), strings.HasSuffix(word, "ity"):
		return CategoryAbstract, true
	}
	return "", false
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[len(fields)-1]
}

// IsMetonymicPlace reports whether label is one of the fixed
// place-for-institution metonymy candidates.
func (t Table) IsMetonymicPlace(label string) bool {
	return t.metonymicPlaces[strings.ToLower(strings.TrimSpace(label))]
}

// CheckSubject implements spec §4.5's checkSubject contract.
func (t Table) CheckSubject(verb string, e Entity) CheckResult {
	class := t.GetVerbClass(verb)
	if class == ClassUnknown {
		return CheckResult{Valid: true, Confidence: 0.5, Reason: "unknown_verb"}
	}
	rule := t.classes[class]
	cats := t.Categorize(e)
	if hasAny(cats, rule.SubjectForbidden) {
		return CheckResult{Valid: false, Confidence: 0.9, Reason: "forbidden_subject_category"}
	}
	if hasAny(cats, rule.SubjectRequirement) {
		return CheckResult{Valid: true, Confidence: 0.92, Reason: "required_subject_category"}
	}
	if len(rule.SubjectRequirement) == 0 {
		return CheckResult{Valid: true, Confidence: 0.6, Reason: "no_subject_requirement"}
	}
	return CheckResult{Valid: false, Confidence: 0.75, Reason: "unmet_subject_requirement"}
}

// CheckObject is the permissive analog of CheckSubject for objects.
func (t Table) CheckObject(verb string, e Entity) CheckResult {
	class := t.GetVerbClass(verb)
	if class == ClassUnknown {
		return CheckResult{Valid: true, Confidence: 0.5, Reason: "unknown_verb"}
	}
	rule := t.classes[class]
	cats := t.Categorize(e)
	if hasAny(cats, rule.ObjectForbidden) {
		return CheckResult{Valid: false, Confidence: 0.85, Reason: "forbidden_object_category"}
	}
	if hasAny(cats, rule.ObjectRequirement) {
		return CheckResult{Valid: true, Confidence: 0.95, Reason: "required_object_category"}
	}
	return CheckResult{Valid: true, Confidence: 0.7, Reason: "permissive_default"}
}

// GetViolation implements spec §4.5's getViolation contract, returning
// nil when no violation applies.
func (t Table) GetViolation(verb string, agent Entity, patient *Entity) *Violation {
	class := t.GetVerbClass(verb)
	if class == ClassUnknown {
		return nil
	}
	rule := t.classes[class]
	agentCats := t.Categorize(agent)

	if hasAny(agentCats, []Category{CategoryInanimate}) && hasAny(rule.SubjectRequirement, []Category{CategoryAnimate}) {
		return &Violation{
			Type: "selectional_violation", Signal: "inanimate_agent",
			VerbClass: class, Requirement: rule.SubjectRequirement,
			OntologyConstraint: string(rule.OntologyType),
		}
	}
	if hasAny(agentCats, []Category{CategoryAbstract}) {
		if class == ClassIntentionalMental {
			return &Violation{
				Type: "selectional_violation", Signal: "abstract_agent",
				VerbClass: class, Requirement: rule.SubjectRequirement,
				OntologyConstraint: string(rule.OntologyType),
			}
		}
		return &Violation{
			Type: "selectional_violation", Signal: "abstract_physical_actor",
			VerbClass: class, Requirement: rule.SubjectRequirement,
			OntologyConstraint: string(rule.OntologyType),
		}
	}
	if hasAny(agentCats, rule.SubjectForbidden) {
		return &Violation{
			Type: "selectional_violation", Signal: "invalid_agent",
			VerbClass: class, Requirement: rule.SubjectRequirement,
			OntologyConstraint: string(rule.OntologyType),
		}
	}
	if patient != nil {
		patientCats := t.Categorize(*patient)
		if hasAny(patientCats, rule.ObjectForbidden) {
			return &Violation{
				Type: "selectional_violation", Signal: "invalid_patient",
				VerbClass: class, Requirement: rule.ObjectRequirement,
				OntologyConstraint: string(rule.OntologyType),
			}
		}
	}
	return nil
}

func hasAny(have, want []Category) bool {
	if len(want) == 0 {
		return false
	}
	set := make(map[Category]bool, len(want))
	for _, c := range want {
		set[c] = true
	}
	for _, c := range have {
		if set[c] {
			return true
		}
	}
	return false
}

// Extend returns a copy of t with additional label->category entries
// and metonymic places merged in, leaving the receiver untouched
// (copy-on-write, per §5's shared-resource policy).
func (t Table) Extend(labels map[Category][]string, metonymicPlaces []string) Table {
	nextLabels := make(map[Category]map[string]bool, len(t.categoryLabels))
	if err := deepcopy.Copy(&nextLabels, &t.categoryLabels); err != nil {
		for cat, set := range t.categoryLabels {
			clone := make(map[string]bool, len(set))
			for k, v := range set {
				clone[k] = v
			}
			nextLabels[cat] = clone
		}
	}
	for cat, words := range labels {
		set, ok := nextLabels[cat]
		if !ok {
			set = make(map[string]bool)
			nextLabels[cat] = set
		}
		for _, w := range words {
			set[strings.ToLower(w)] = true
		}
	}

	nextPlaces := make(map[string]bool, len(t.metonymicPlaces)+len(metonymicPlaces))
	for k, v := range t.metonymicPlaces {
		nextPlaces[k] = v
	}
	for _, p := range metonymicPlaces {
		nextPlaces[strings.ToLower(p)] = true
	}

	return Table{classes: t.classes, categoryLabels: nextLabels, metonymicPlaces: nextPlaces}
}
