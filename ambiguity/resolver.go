package ambiguity

// Config is the resolver's configuration (spec §4.7/§6's Options table).
type Config struct {
	PreserveThreshold      float64
	MaxReadingsPerNode     int
	MaxTotalAlternatives   int
	AlwaysPreserveScope    bool
	UseSelectionalEvidence bool
	DefaultPlausibility    float64
}

// DefaultConfig returns the spec-mandated defaults.
func DefaultConfig() Config {
	return Config{
		PreserveThreshold:      0.7,
		MaxReadingsPerNode:     3,
		MaxTotalAlternatives:   10,
		AlwaysPreserveScope:    true,
		UseSelectionalEvidence: true,
		DefaultPlausibility:    0.7,
	}
}

// Resolver is the spec §9 interface boundary for §4.7's AmbiguityResolver.
type Resolver interface {
	Resolve(report Report, cfg Config) Resolution
}

type fixedPolicyResolver struct{}

// NewResolver returns the reference resolver implementing the fixed
// decision-policy table of spec §4.7.
func NewResolver() Resolver {
	return fixedPolicyResolver{}
}

func (fixedPolicyResolver) Resolve(report Report, cfg Config) Resolution {
	var res Resolution
	for _, amb := range report.Ambiguities {
		amb = capReadings(amb, cfg.MaxReadingsPerNode)
		decision := resolveOne(amb, cfg)
		switch decision.Category {
		case "resolved":
			res.Resolved = append(res.Resolved, decision)
		case "flaggedOnly":
			res.FlaggedOnly = append(res.FlaggedOnly, decision)
		default:
			res.Preserved = append(res.Preserved, decision)
		}
	}
	return res
}

func capReadings(amb Ambiguity, max int) Ambiguity {
	if max <= 0 || len(amb.Readings) <= max {
		return amb
	}
	amb.Readings = append([]string{}, amb.Readings[:max]...)
	return amb
}

func resolveOne(amb Ambiguity, cfg Config) Decision {
	switch amb.Type {
	case "selectional_violation":
		return Decision{
			Ambiguity: amb, Category: "flaggedOnly", Reason: "anomalous_input",
			Confidence: amb.Confidence, PreserveAlternatives: false,
		}
	case "potential_metonymy":
		return Decision{
			Ambiguity: amb, Category: "flaggedOnly", Reason: "location_for_institution_metonymy",
			Confidence: amb.Confidence, PreserveAlternatives: false,
			Explanation: "suggest retyping as cco:Organization",
		}
	case "scope":
		return resolveScope(amb, cfg)
	case "modal_force":
		return resolveModalForce(amb, cfg)
	case "noun_category":
		return resolveNounCategory(amb, cfg)
	default:
		return Decision{
			Ambiguity: amb, Category: "preserved", Reason: "unknown_ambiguity_type",
			Confidence: amb.Confidence, PreserveAlternatives: true,
		}
	}
}

func resolveScope(amb Ambiguity, cfg Config) Decision {
	if cfg.AlwaysPreserveScope || amb.Confidence < cfg.PreserveThreshold {
		return Decision{
			Ambiguity: amb, Category: "preserved", Reason: "scope_always_preserved",
			Confidence: amb.Confidence, PreserveAlternatives: true,
		}
	}
	return Decision{
		Ambiguity: amb, Category: "resolved", Reason: "scope_confidence_above_threshold",
		Confidence: amb.Confidence, ResolvedReading: amb.DefaultReading,
	}
}

// resolveModalForce implements spec §4.7's hierarchy of evidence.
func resolveModalForce(amb Ambiguity, cfg Config) Decision {
	var deontic, epistemic float64
	hasSignal := func(s string) bool {
		for _, x := range amb.Signals {
			if x == s {
				return true
			}
		}
		return false
	}
	if hasSignal("agent_subject") {
		deontic += 0.1
	}
	if hasSignal("intentional_act") {
		deontic += 0.1
	}
	if hasSignal("second_person_subject") {
		deontic += 0.15
	}
	if hasSignal("perfect_aspect") {
		epistemic += 0.2
	}
	if hasSignal("stative_verb") {
		epistemic += 0.1
	}
	for _, w := range amb.Intensifiers {
		if deonticIntensifiers[w] {
			deontic += 0.15
		}
		if epistemicIntensifiers[w] {
			epistemic += 0.15
		}
	}

	net := deontic - epistemic
	abs := net
	if abs < 0 {
		abs = -abs
	}
	if abs < 0.2 {
		return Decision{
			Ambiguity: amb, Category: "preserved", Reason: "insufficient_net_evidence_boost",
			Confidence: amb.Confidence, PreserveAlternatives: true,
		}
	}

	var favored string
	if net > 0 {
		favored = firstOr(modalReadings[amb.Extra["modal"]].Deontic, amb.DefaultReading)
	} else {
		favored = firstOr(modalReadings[amb.Extra["modal"]].Epistemic, amb.DefaultReading)
	}

	adjusted := clamp01(amb.Confidence + abs)
	if adjusted >= cfg.PreserveThreshold {
		return Decision{
			Ambiguity: amb, Category: "resolved", Reason: "modal_force_hierarchy_of_evidence",
			Confidence: adjusted, ResolvedReading: favored,
		}
	}
	return Decision{
		Ambiguity: amb, Category: "preserved", Reason: "adjusted_confidence_below_threshold",
		Confidence: adjusted, PreserveAlternatives: true,
	}
}

func firstOr(xs []string, fallback string) string {
	if len(xs) == 0 {
		return fallback
	}
	return xs[0]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// resolveNounCategory implements spec §4.7's noun_category structural
// signals branch.
func resolveNounCategory(amb Ambiguity, cfg Config) Decision {
	hasSignal := func(s string) bool {
		for _, x := range amb.Signals {
			if x == s {
				return true
			}
		}
		return false
	}

	if cfg.UseSelectionalEvidence && hasSignal("subject_of_intentional_act") {
		return Decision{
			Ambiguity: amb, Category: "resolved", Reason: "selectional_match",
			Confidence: 0.99, ResolvedReading: "continuant",
		}
	}
	if hasSignal("of_complement") && amb.Confidence < 0.9 {
		return Decision{
			Ambiguity: amb, Category: "preserved", Reason: "of_complement_low_confidence",
			Confidence: amb.Confidence, PreserveAlternatives: true,
			Explanation: "default reading process",
		}
	}
	if hasSignal("duration_predicate") || hasSignal("predicate_adjective") {
		return Decision{
			Ambiguity: amb, Category: "resolved", Reason: "duration_or_predicate_adjective",
			Confidence: 0.8, ResolvedReading: "process",
		}
	}
	return Decision{
		Ambiguity: amb, Category: "resolved", Reason: "default_heuristic",
		Confidence: 0.6, ResolvedReading: "continuant",
	}
}
