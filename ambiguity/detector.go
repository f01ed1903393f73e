package ambiguity

import (
	"strings"

	"github.com/arjunmenon/tagteam/deptree"
	"github.com/arjunmenon/tagteam/extract"
	"github.com/arjunmenon/tagteam/ontology"
	"github.com/arjunmenon/tagteam/selectional"
)

// ambiguousModals is the fixed modal set spec §4.6 names for modal_force.
var ambiguousModals = map[string]bool{"must": true, "should": true, "may": true, "can": true}

// modalReadings gives the deontic/epistemic reading candidates per
// modal (spec doesn't enumerate these verbatim; grounded in the
// actuality-status table of §4.8, which names obligation,
// recommendation, expectation, permission, ability, habitual,
// possibility, inference, conditional as the full reading vocabulary).
// The first deontic entry is each modal's default reading.
var modalReadings = map[string]struct {
	Deontic  []string
	Epistemic []string
}{
	"must":   {Deontic: []string{"obligation"}, Epistemic: []string{"inference"}},
	"should": {Deontic: []string{"recommendation", "obligation"}, Epistemic: []string{"expectation"}},
	"may":    {Deontic: []string{"permission"}, Epistemic: []string{"possibility"}},
	"can":    {Deontic: []string{"ability", "permission"}, Epistemic: []string{"possibility"}},
}

var deonticIntensifiers = map[string]bool{
	"strongly": true, "definitely": true, "absolutely": true, "certainly": true,
	"necessarily": true, "unquestionably": true, "imperatively": true,
}
var epistemicIntensifiers = map[string]bool{
	"possibly": true, "perhaps": true, "maybe": true, "probably": true,
	"likely": true, "presumably": true, "apparently": true, "conceivably": true,
}

var nominalizationSuffixes = []string{"tion", "ment", "ness", "ity", "ing"}

var universalQuantifiers = map[string]bool{"every": true, "all": true, "each": true}
var otherQuantifiers = map[string]bool{"some": true, "any": true, "no": true}

// Detector is the spec §9 interface boundary for §4.6's AmbiguityDetector.
type Detector interface {
	Detect(tree *deptree.DepTree, entities []extract.Entity, acts []extract.Act, roles []extract.Role, table selectional.Table) Report
}

type treeDetector struct{}

// NewDetector returns the reference TreeAmbiguityDetector.
func NewDetector() Detector {
	return treeDetector{}
}

func (treeDetector) Detect(tree *deptree.DepTree, entities []extract.Entity, acts []extract.Act, roles []extract.Role, table selectional.Table) Report {
	var report Report

	entityByIRI := make(map[string]extract.Entity, len(entities))
	for _, e := range entities {
		entityByIRI[e.IRI] = e
	}
	actByIRI := make(map[string]extract.Act, len(acts))
	for _, a := range acts {
		actByIRI[a.IRI] = a
	}
	agentOf := make(map[string]extract.Entity) // act IRI -> agent entity
	patientOf := make(map[string]extract.Entity)
	for _, r := range roles {
		ent, ok := entityByIRI[r.InheresIn]
		if !ok {
			continue
		}
		switch r.Type {
		case ontology.TypeAgentRole:
			agentOf[r.RealizedIn] = ent
		case ontology.TypePatientRole:
			patientOf[r.RealizedIn] = ent
		}
	}

	for _, a := range acts {
		detectModalForce(tree, a, agentOf, table, &report)
		detectSelectionalViolation(a, agentOf, patientOf, table, &report)
	}
	for _, e := range entities {
		detectNounCategory(tree, e, roles, actByIRI, table, &report)
		detectPotentialMetonymy(e, roles, actByIRI, table, &report)
	}
	detectScope(entities, acts, &report)

	return report
}

// detectModalForce implements spec §4.6's modal_force rule.
func detectModalForce(tree *deptree.DepTree, a extract.Act, agentOf map[string]extract.Entity, table selectional.Table, report *Report) {
	if !ambiguousModals[a.Modal] {
		return
	}
	candidates, ok := modalReadings[a.Modal]
	if !ok {
		return
	}

	var signals []string
	agent, hasAgent := agentOf[a.IRI]
	if hasAgent {
		signals = append(signals, "agent_subject")
		if strings.EqualFold(agent.Text, "you") {
			signals = append(signals, "second_person_subject")
		}
	}
	class := table.GetVerbClass(a.Lemma)
	if class == selectional.ClassIntentionalMental || class == selectional.ClassIntentionalPhysical {
		signals = append(signals, "intentional_act")
	}
	if a.IsPerfect {
		signals = append(signals, "perfect_aspect")
	}
	if class == selectional.ClassStative {
		signals = append(signals, "stative_verb")
	}

	var intensifiers []string
	for _, e := range tree.Children(a.HeadIndex) {
		if e.Label != "advmod" {
			continue
		}
		tok, _ := tree.Token(e.Index)
		word := strings.ToLower(tok.Text)
		if deonticIntensifiers[word] || epistemicIntensifiers[word] {
			intensifiers = append(intensifiers, word)
		}
	}

	readings := append(append([]string{}, candidates.Deontic...), candidates.Epistemic...)
	report.Ambiguities = append(report.Ambiguities, Ambiguity{
		Type:           "modal_force",
		NodeIRI:        a.IRI,
		Readings:       readings,
		DefaultReading: candidates.Deontic[0],
		Signals:        signals,
		Intensifiers:   intensifiers,
		// Base confidence is deliberately modest: spec scenario S4
		// ("The doctor should allocate the ventilator", agent_subject +
		// intentional_act only) must land below preserveThreshold even
		// after its +0.2 net boost, landing the resolver on "preserved"
		// rather than "resolved" for balanced evidence.
		Confidence: 0.4,
		Extra:      map[string]string{"modal": a.Modal},
	})
}

// detectNounCategory implements spec §4.6's noun_category rule.
func detectNounCategory(tree *deptree.DepTree, e extract.Entity, roles []extract.Role, actByIRI map[string]extract.Act, table selectional.Table, report *Report) {
	headTok, ok := tree.Token(e.HeadIndex)
	if !ok {
		return
	}
	word := strings.ToLower(headTok.Text)
	var isNominalization bool
	for _, suf := range nominalizationSuffixes {
		if strings.HasSuffix(word, suf) {
			isNominalization = true
			break
		}
	}
	if !isNominalization {
		return
	}

	var signals []string
	if hasOfComplement(tree, e.HeadIndex) {
		signals = append(signals, "of_complement")
	}
	if e.Role == "nsubj" {
		for _, r := range roles {
			if r.InheresIn != e.IRI || r.Type != ontology.TypeAgentRole {
				continue
			}
			if act, ok := actByIRI[r.RealizedIn]; ok {
				class := table.GetVerbClass(act.Lemma)
				if class == selectional.ClassIntentionalMental || class == selectional.ClassIntentionalPhysical {
					signals = append(signals, "subject_of_intentional_act")
				}
			}
		}
	}
	if hasDurationModifier(tree, e.HeadIndex) {
		signals = append(signals, "duration_predicate")
	}
	if e.Role == "nsubj" && hasAdjectivalModifier(tree, e.HeadIndex) {
		// Approximates the copular "X was <adjective>" construction by
		// an attributive adjective on the nominalization's own head;
		// distinguishing attributive from true predicative position
		// would need the copular predicate's POS tag, which
		// StructuralAssertion doesn't retain.
		signals = append(signals, "predicate_adjective")
	}
	if len(signals) == 0 {
		return
	}

	report.Ambiguities = append(report.Ambiguities, Ambiguity{
		Type:           "noun_category",
		NodeIRI:        e.IRI,
		Readings:       []string{"process", "continuant"},
		DefaultReading: "continuant",
		Signals:        signals,
		Confidence:     0.5,
	})
}

func hasOfComplement(tree *deptree.DepTree, head int) bool {
	for _, e := range tree.Children(head) {
		if e.Label != "nmod" {
			continue
		}
		for _, c := range tree.Children(e.Index) {
			if c.Label != "case" {
				continue
			}
			tok, _ := tree.Token(c.Index)
			if strings.EqualFold(tok.Text, "of") {
				return true
			}
		}
	}
	return false
}

var durationWords = map[string]bool{
	"hour": true, "hours": true, "minute": true, "minutes": true,
	"day": true, "days": true, "week": true, "weeks": true,
	"year": true, "years": true, "period": true, "duration": true,
}

func hasDurationModifier(tree *deptree.DepTree, head int) bool {
	for _, e := range tree.Children(head) {
		if e.Label != "nmod" && e.Label != "nmod:tmod" {
			continue
		}
		tok, _ := tree.Token(e.Index)
		if durationWords[strings.ToLower(tok.Text)] {
			return true
		}
	}
	return false
}

func hasAdjectivalModifier(tree *deptree.DepTree, head int) bool {
	for _, e := range tree.Children(head) {
		if e.Label != "amod" {
			continue
		}
		tok, _ := tree.Token(e.Index)
		if strings.HasPrefix(tok.Tag, "JJ") {
			return true
		}
	}
	return false
}

// detectScope implements spec §4.6's scope rule: a universal
// quantifier co-occurring with a negation or another quantifier.
func detectScope(entities []extract.Entity, acts []extract.Act, report *Report) {
	var universal []extract.Entity
	var others []extract.Entity
	anyNegated := false
	for _, a := range acts {
		if a.IsNegated {
			anyNegated = true
		}
	}
	for _, e := range entities {
		if universalQuantifiers[e.QuantityIndicator] {
			universal = append(universal, e)
		} else if otherQuantifiers[e.QuantityIndicator] {
			others = append(others, e)
		}
	}
	if len(universal) == 0 {
		return
	}
	if !anyNegated && len(others) == 0 && len(universal) < 2 {
		return
	}

	nodeIRI := universal[0].IRI
	if len(acts) > 0 {
		nodeIRI = acts[0].IRI
	}
	report.Ambiguities = append(report.Ambiguities, Ambiguity{
		Type:           "scope",
		NodeIRI:        nodeIRI,
		Readings:       []string{"wide", "narrow"},
		DefaultReading: "wide",
		Signals:        []string{"universal_quantifier_cooccurrence"},
		Confidence:     0.6,
		Extra: map[string]string{
			"formalization_wide":   "¬∀x P(x)",
			"formalization_narrow": "∀x ¬P(x)",
		},
	})
}

// detectSelectionalViolation implements spec §4.6's selectional_violation rule.
func detectSelectionalViolation(a extract.Act, agentOf, patientOf map[string]extract.Entity, table selectional.Table, report *Report) {
	agentEnt, hasAgent := agentOf[a.IRI]
	if !hasAgent {
		return
	}
	agent := selectional.Entity{Label: agentEnt.Text, Types: []ontology.TypeTag{agentEnt.DenotesType}}
	var patientPtr *selectional.Entity
	if patientEnt, ok := patientOf[a.IRI]; ok {
		patient := selectional.Entity{Label: patientEnt.Text, Types: []ontology.TypeTag{patientEnt.DenotesType}}
		patientPtr = &patient
	}

	violation := table.GetViolation(a.Lemma, agent, patientPtr)
	if violation == nil {
		return
	}

	report.Ambiguities = append(report.Ambiguities, Ambiguity{
		Type:       "selectional_violation",
		NodeIRI:    a.IRI,
		Signals:    []string{violation.Signal},
		Confidence: 0.9,
		Extra: map[string]string{
			"ontologyConstraint": violation.OntologyConstraint,
			"verbClass":          string(violation.VerbClass),
		},
	})
}

// detectPotentialMetonymy implements spec §4.6's potential_metonymy rule.
func detectPotentialMetonymy(e extract.Entity, roles []extract.Role, actByIRI map[string]extract.Act, table selectional.Table, report *Report) {
	if !table.IsMetonymicPlace(e.Text) {
		return
	}
	for _, r := range roles {
		if r.InheresIn != e.IRI || r.Type != ontology.TypeAgentRole {
			continue
		}
		act, ok := actByIRI[r.RealizedIn]
		if !ok {
			continue
		}
		class := table.GetVerbClass(act.Lemma)
		rule := classRequiresOrganizationNotLocation(table, class)
		if !rule {
			continue
		}
		report.Ambiguities = append(report.Ambiguities, Ambiguity{
			Type:       "potential_metonymy",
			NodeIRI:    e.IRI,
			Signals:    []string{"metonymic_location_as_agent"},
			Confidence: 0.6,
			Extra: map[string]string{
				"metonymicSource": e.Text,
				"suggestedType":   "cco:Organization",
			},
		})
	}
}

func classRequiresOrganizationNotLocation(table selectional.Table, class selectional.VerbClass) bool {
	switch class {
	case selectional.ClassCommunication, selectional.ClassTransfer, selectional.ClassEmployment,
		selectional.ClassGovernance, selectional.ClassCreation:
		return true
	}
	return false
}
