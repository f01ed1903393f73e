package extract

import (
	"github.com/arjunmenon/tagteam/deptree"
	"github.com/arjunmenon/tagteam/ontology"
)

// Role is a BFO realizable dependent (spec §3): its bearer is the
// entity it inheres in, and it is realized in an act.
type Role struct {
	IRI        string
	Type       ontology.TypeTag
	InheresIn  string // bearer entity IRI
	RealizedIn string // act IRI
}

// RoleMapper is the spec §9 interface boundary for §4.4's TreeRoleMapper.
type RoleMapper interface {
	Extract(tree *deptree.DepTree, entities []Entity, acts []Act) []Role
}

type treeRoleMapper struct {
	Mint ontology.MintOptions
}

// NewRoleMapper returns the reference TreeRoleMapper.
func NewRoleMapper(mint ontology.MintOptions) RoleMapper {
	return treeRoleMapper{Mint: mint}
}

func (x treeRoleMapper) Extract(tree *deptree.DepTree, entities []Entity, acts []Act) []Role {
	entityByHead := make(map[int]Entity, len(entities))
	for _, e := range entities {
		entityByHead[e.HeadIndex] = e
	}
	actByHead := make(map[int]Act, len(acts))
	for _, a := range acts {
		actByHead[a.HeadIndex] = a
	}

	var roles []Role
	for _, arc := range tree.Arcs {
		act, isAct := actByHead[arc.Head]
		if !isAct {
			continue
		}
		ent, hasEntity := entityByHead[arc.Dep]
		if !hasEntity {
			continue
		}

		tag, ok := roleTagFor(tree, arc, act)
		if !ok {
			continue
		}

		r := Role{
			Type:       tag,
			InheresIn:  ent.IRI,
			RealizedIn: act.IRI,
		}
		r.IRI = ontology.Mint(x.Mint, string(tag)+"@"+act.Surface, arc.Dep, ontology.TypeRole, "")
		roles = append(roles, r)
	}
	return roles
}

// roleTagFor implements the mapping table of spec §4.4.
func roleTagFor(tree *deptree.DepTree, arc deptree.Arc, act Act) (ontology.TypeTag, bool) {
	switch arc.Label {
	case "nsubj":
		if act.IsPassive {
			return "", false
		}
		return ontology.TypeAgentRole, true
	case "nsubj:pass":
		return ontology.TypePatientRole, true
	case "obj":
		return ontology.TypePatientRole, true
	case "iobj":
		return ontology.TypeRecipientRole, true
	case "obl:agent":
		if !act.IsPassive {
			return "", false
		}
		return ontology.TypeAgentRole, true
	case "obl":
		prep := findCasePreposition(tree, arc.Dep)
		return ontology.RolePreposition(prep), true
	}
	return "", false
}
