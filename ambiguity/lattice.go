package ambiguity

import (
	"github.com/arjunmenon/tagteam/ontology"
)

// actualityStatus implements spec §4.8's fixed modal_force table.
var actualityStatus = map[string]string{
	"obligation": "tagteam:Prescribed", "recommendation": "tagteam:Prescribed",
	"expectation": "tagteam:Hypothetical", "possibility": "tagteam:Hypothetical",
	"inference": "tagteam:Hypothetical", "conditional": "tagteam:Hypothetical",
	"permission": "tagteam:Permitted",
	"ability":    "tagteam:Potential",
	"habitual":   "tagteam:Actual",
}

// LatticeBuilder is the spec §9 interface boundary for §4.8's
// AlternativeGraphBuilder.
type LatticeBuilder interface {
	Build(res Resolution, mint ontology.MintOptions, cfg Config) Lattice
}

type defaultLatticeBuilder struct{}

// NewLatticeBuilder returns the reference AlternativeGraphBuilder.
func NewLatticeBuilder() LatticeBuilder {
	return defaultLatticeBuilder{}
}

func (defaultLatticeBuilder) Build(res Resolution, mint ontology.MintOptions, cfg Config) Lattice {
	var alternatives []Alternative

	for _, d := range res.Preserved {
		alternatives = append(alternatives, buildAlternativesFor(d, cfg)...)
	}
	// potential_metonymy always resolves to flaggedOnly (spec §4.7), but
	// §4.8 still names a clone-construction rule for it; the clone
	// supplements the lattice without counting toward
	// AmbiguitiesPreserved.
	for _, d := range res.FlaggedOnly {
		if d.Ambiguity.Type == "potential_metonymy" {
			alternatives = append(alternatives, buildMetonymyAlternative(d))
		}
	}

	if cfg.MaxTotalAlternatives > 0 && len(alternatives) > cfg.MaxTotalAlternatives {
		alternatives = alternatives[:cfg.MaxTotalAlternatives]
	}

	return Lattice{
		DefaultReading:       "default",
		Alternatives:         alternatives,
		Resolutions:          res,
		AmbiguitiesPreserved: len(res.Preserved),
	}
}

func buildAlternativesFor(d Decision, cfg Config) []Alternative {
	switch d.Ambiguity.Type {
	case "modal_force":
		return buildModalForceAlternatives(d, cfg)
	case "noun_category":
		return buildNounCategoryAlternatives(d, cfg)
	case "scope":
		return buildScopeAlternatives(d)
	default:
		return nil
	}
}

func buildModalForceAlternatives(d Decision, cfg Config) []Alternative {
	amb := d.Ambiguity
	var intensifierBoost float64
	for _, w := range amb.Intensifiers {
		if deonticIntensifiers[w] || epistemicIntensifiers[w] {
			intensifierBoost = 0.15
		}
	}

	var out []Alternative
	for _, reading := range amb.Readings {
		if reading == amb.DefaultReading {
			continue
		}
		plausibility := clampPlausibility((1-cfg.DefaultPlausibility)/float64(maxInt(len(amb.Readings)-1, 1)) + intensifierBoost)
		out = append(out, Alternative{
			IRI:          ontology.AlternativeIRI(amb.NodeIRI, reading),
			ParentIRI:    amb.NodeIRI,
			Reading:      reading,
			Plausibility: plausibility,
			DerivedFrom:  amb.NodeIRI,
			Annotations: map[string]string{
				"modality":       reading,
				"actualityStatus": actualityStatus[reading],
			},
		})
	}
	return out
}

func buildNounCategoryAlternatives(d Decision, cfg Config) []Alternative {
	amb := d.Ambiguity
	var out []Alternative
	for _, reading := range amb.Readings {
		if reading == amb.DefaultReading {
			continue
		}
		appendType := "bfo:Continuant"
		if reading == "process" {
			appendType = "bfo:Process"
		}
		out = append(out, Alternative{
			IRI:          ontology.AlternativeIRI(amb.NodeIRI, reading),
			ParentIRI:    amb.NodeIRI,
			Reading:      reading,
			Plausibility: clampPlausibility(1 - cfg.DefaultPlausibility),
			DerivedFrom:  amb.NodeIRI,
			Annotations:  map[string]string{"nominalizationReading": reading},
			AppendTypes:  []string{appendType},
		})
	}
	return out
}

func buildScopeAlternatives(d Decision) []Alternative {
	amb := d.Ambiguity
	plausibilities := map[string]float64{"wide": 0.4, "narrow": 0.35}
	var out []Alternative
	for _, reading := range amb.Readings {
		out = append(out, Alternative{
			IRI:          ontology.AlternativeIRI(amb.NodeIRI, reading),
			ParentIRI:    amb.NodeIRI,
			Reading:      reading,
			Plausibility: plausibilities[reading],
			DerivedFrom:  amb.NodeIRI,
			Annotations: map[string]string{
				"scopeReading":  reading,
				"formalization": amb.Extra["formalization_"+reading],
			},
		})
	}
	return out
}

func buildMetonymyAlternative(d Decision) Alternative {
	amb := d.Ambiguity
	return Alternative{
		IRI:          ontology.AlternativeIRI(amb.NodeIRI, "location_for_institution"),
		ParentIRI:    amb.NodeIRI,
		Reading:      "location_for_institution",
		Plausibility: 0.6,
		DerivedFrom:  amb.NodeIRI,
		Annotations: map[string]string{
			"metonymicSource": amb.Extra["metonymicSource"],
			"literalType":     "cco:Artifact",
			"metonymyType":    "location_for_institution",
		},
		AppendTypes: []string{"cco:Organization", "bfo:Object"},
	}
}

func clampPlausibility(p float64) float64 {
	if p < 0.05 {
		return 0.05
	}
	if p > 0.95 {
		return 0.95
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
