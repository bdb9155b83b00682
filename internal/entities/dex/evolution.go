package dex

import "encoding/json"

// EvolutionChain is the full evolution tree for a family of species, keyed
// by the chain's own ID (not a Pokémon ID). Read-only after creation;
// traversal is the only access pattern.
type EvolutionChain struct {
	ID   int
	Root *EvolutionNode
}

// EvolutionNode is one species in the tree. The same node type recurs at
// every depth; there are no per-level types.
type EvolutionNode struct {
	SpeciesID   int
	SpeciesName string
	Baby        bool
	Conditions  []EvolutionCondition
	EvolvesTo   []*EvolutionNode
}

// SpeciesRef is a species reference collected from a chain traversal.
type SpeciesRef struct {
	ID   int
	Name string
}

// Flatten collects every species in the chain in breadth-first order using
// an explicit worklist, so arbitrarily deep chains never recurse.
func (c *EvolutionChain) Flatten() []SpeciesRef {
	if c == nil || c.Root == nil {
		return []SpeciesRef{}
	}

	refs := []SpeciesRef{}
	queue := []*EvolutionNode{c.Root}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if node == nil {
			continue
		}
		refs = append(refs, SpeciesRef{ID: node.SpeciesID, Name: node.SpeciesName})
		queue = append(queue, node.EvolvesTo...)
	}
	return refs
}

// ConditionKind tags the known evolution trigger shapes.
type ConditionKind string

// Known evolution trigger kinds. Anything the API sends that does not match
// a known shape becomes ConditionUnknown with the raw payload preserved.
const (
	ConditionLevelUp   ConditionKind = "level-up"
	ConditionUseItem   ConditionKind = "use-item"
	ConditionTrade     ConditionKind = "trade"
	ConditionShed      ConditionKind = "shed"
	ConditionHappiness ConditionKind = "happiness"
	ConditionUnknown   ConditionKind = "unknown"
)

// EvolutionCondition is one requirement for an evolution step. Only the
// fields relevant to Kind are populated; Raw carries the original wire
// payload for the Unknown variant.
type EvolutionCondition struct {
	Kind         ConditionKind
	MinLevel     int
	Item         string
	MinHappiness int
	TimeOfDay    string
	Raw          json.RawMessage
}
