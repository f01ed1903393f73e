package nlp

import (
	"strings"

	"github.com/tiendc/go-deepcopy"

	"github.com/arjunmenon/tagteam/ontology"
)

// mapGazetteer is the reference Gazetteer: a case-insensitive exact-match
// lookup table plus a fixed set of metonymic-location names.
type mapGazetteer struct {
	entries            map[string]string
	metonymicLocations map[string]bool
}

// defaultEntries seeds the kinds of institutions, agencies, and roles the
// scenario sentences reference; callers extend it with domain vocabulary
// via Extend rather than mutating it.
var defaultEntries = map[string]string{
	"cbp":  string(ontology.TypeOrganization),
	"dhs":  string(ontology.TypeOrganization),
	"fbi":  string(ontology.TypeOrganization),
	"who":  string(ontology.TypeOrganization),
	"nato": string(ontology.TypeOrganization),

	"doctor": string(ontology.TypePerson),
	"patient": string(ontology.TypePerson),
	"patients": string(ontology.TypePerson),
	"nurse": string(ontology.TypePerson),
	"officer": string(ontology.TypePerson),

	"ventilator": string(ontology.TypeArtifact),
	"rock":       string(ontology.TypeMaterialEntity),
}

var defaultMetonymicLocations = map[string]bool{
	"white house": true,
	"the white house": true,
	"kremlin":     true,
	"the kremlin": true,
	"pentagon":    true,
	"the pentagon": true,
	"capitol hill": true,
	"downing street": true,
	"brussels": true,
	"beijing": true,
	"washington": true,
}

// NewGazetteer returns the reference Gazetteer seeded with a small set of
// well-known agencies and metonymic place names.
func NewGazetteer() Gazetteer {
	return mapGazetteer{
		entries:            defaultEntries,
		metonymicLocations: defaultMetonymicLocations,
	}
}

func (g mapGazetteer) Classify(text string) (string, bool) {
	key := normalizeKey(text)
	t, ok := g.entries[key]
	return t, ok
}

func (g mapGazetteer) IsMetonymicLocation(text string) bool {
	return g.metonymicLocations[normalizeKey(text)]
}

func (g mapGazetteer) Extend(entries map[string]string, metonymicLocations []string) Gazetteer {
	nextEntries := make(map[string]string, len(g.entries)+len(entries))
	if err := deepcopy.Copy(&nextEntries, &g.entries); err != nil {
		nextEntries = cloneStringMap(g.entries)
	}
	for k, v := range entries {
		nextEntries[normalizeKey(k)] = v
	}

	nextLocations := make(map[string]bool, len(g.metonymicLocations)+len(metonymicLocations))
	if err := deepcopy.Copy(&nextLocations, &g.metonymicLocations); err != nil {
		nextLocations = cloneBoolMap(g.metonymicLocations)
	}
	for _, loc := range metonymicLocations {
		nextLocations[normalizeKey(loc)] = true
	}

	return mapGazetteer{entries: nextEntries, metonymicLocations: nextLocations}
}

func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func cloneStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
