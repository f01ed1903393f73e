package jsonld

import "github.com/arjunmenon/tagteam/ontology"

// objectProperties is every relation the serializer can emit as a
// graph edge; each is declared "@type": "@id" in the fixed context so
// JSON-LD consumers resolve it to a node reference (spec §4.10).
var objectProperties = []string{
	"cco:is_about", "bfo:is_concretized_by", "bfo:inheres_in", "bfo:realized_in", "bfo:is_bearer_of",
	"cco:has_part", "cco:member_of", "rdfs:subClassOf", "bfo:part_of", "rdf:type", "bfo:located_in",
	"cco:has_function", "cco:has_input", "cco:has_agent", "cco:has_output", "tagteam:derivedFrom",
	"tagteam:denotesType", "tagteam:denotedBy", "tagteam:subject",
	"prov:wasDerivedFrom", "prov:wasGeneratedBy", "prov:used", "prov:wasAssociatedWith", "prov:wasAttributedTo",
}

// buildContext assembles the fixed @context of spec §4.10: namespace
// declarations for every prefix in ontology.Namespaces, "@type":"@id"
// coercion for every object property, and xsd coercions for the
// numeric/timestamp-valued properties the graph emits.
func buildContext() map[string]interface{} {
	ctx := make(map[string]interface{}, len(ontology.Namespaces)+len(objectProperties)+8)
	for prefix, ns := range ontology.Namespaces {
		ctx[prefix] = ns
	}
	for _, p := range objectProperties {
		ctx[p] = map[string]interface{}{"@type": "@id"}
	}
	ctx["tagteam:quantity"] = map[string]interface{}{"@type": "xsd:integer"}
	ctx["tagteam:plausibility"] = map[string]interface{}{"@type": "xsd:decimal"}
	ctx["tagteam:confidence"] = map[string]interface{}{"@type": "xsd:decimal"}
	ctx["tagteam:receivedAt"] = map[string]interface{}{"@type": "xsd:dateTime"}
	ctx["tagteam:startedAt"] = map[string]interface{}{"@type": "xsd:dateTime"}
	ctx["tagteam:endedAt"] = map[string]interface{}{"@type": "xsd:dateTime"}
	ctx["tagteam:timestamp"] = map[string]interface{}{"@type": "xsd:dateTime"}
	return ctx
}
