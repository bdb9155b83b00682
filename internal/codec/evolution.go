package codec

import (
	"encoding/json"
	"time"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
)

// wireEvolutionDetail is the finite set of fields we understand out of the
// loosely-typed evolution_details entries.
type wireEvolutionDetail struct {
	Trigger      *pokeapi.NamedResource `json:"trigger"`
	MinLevel     *int                   `json:"min_level"`
	Item         *pokeapi.NamedResource `json:"item"`
	MinHappiness *int                   `json:"min_happiness"`
	TimeOfDay    string                 `json:"time_of_day"`
}

// EvolutionChainFromWire converts the self-referential chain payload into
// the uniform node tree. Conversion walks an explicit worklist so chain
// depth never becomes stack depth.
func EvolutionChainFromWire(w *pokeapi.EvolutionChainResponse) dex.EvolutionChain {
	if w == nil {
		return dex.EvolutionChain{}
	}

	chain := dex.EvolutionChain{ID: w.ID}

	type workItem struct {
		wire   *pokeapi.ChainLinkResponse
		attach func(*dex.EvolutionNode)
	}

	root := w.Chain
	queue := []workItem{{wire: &root, attach: func(n *dex.EvolutionNode) { chain.Root = n }}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		node := &dex.EvolutionNode{
			SpeciesID:   ExtractID(item.wire.Species.URL),
			SpeciesName: item.wire.Species.Name,
			Baby:        item.wire.IsBaby,
			Conditions:  decodeConditions(item.wire.EvolutionDetails),
			EvolvesTo:   []*dex.EvolutionNode{},
		}
		item.attach(node)

		for i := range item.wire.EvolvesTo {
			child := &item.wire.EvolvesTo[i]
			queue = append(queue, workItem{
				wire: child,
				attach: func(n *dex.EvolutionNode) {
					node.EvolvesTo = append(node.EvolvesTo, n)
				},
			})
		}
	}

	return chain
}

// decodeConditions maps raw evolution_details entries onto the known
// condition variants. Anything unrecognized becomes the Unknown variant
// with the raw payload preserved, so unseen API shapes survive a
// round-trip instead of being dropped.
func decodeConditions(raw []json.RawMessage) []dex.EvolutionCondition {
	conditions := make([]dex.EvolutionCondition, 0, len(raw))
	for _, entry := range raw {
		conditions = append(conditions, decodeCondition(entry))
	}
	return conditions
}

func decodeCondition(raw json.RawMessage) dex.EvolutionCondition {
	var detail wireEvolutionDetail
	if err := json.Unmarshal(raw, &detail); err != nil || detail.Trigger == nil {
		return dex.EvolutionCondition{Kind: dex.ConditionUnknown, Raw: cloneRaw(raw)}
	}

	cond := dex.EvolutionCondition{TimeOfDay: detail.TimeOfDay}
	if detail.MinLevel != nil {
		cond.MinLevel = *detail.MinLevel
	}
	if detail.MinHappiness != nil {
		cond.MinHappiness = *detail.MinHappiness
	}
	if detail.Item != nil {
		cond.Item = detail.Item.Name
	}

	switch detail.Trigger.Name {
	case "level-up":
		if cond.MinHappiness > 0 {
			cond.Kind = dex.ConditionHappiness
		} else {
			cond.Kind = dex.ConditionLevelUp
		}
	case "use-item":
		cond.Kind = dex.ConditionUseItem
	case "trade":
		cond.Kind = dex.ConditionTrade
	case "shed":
		cond.Kind = dex.ConditionShed
	default:
		cond.Kind = dex.ConditionUnknown
		cond.Raw = cloneRaw(raw)
	}
	return cond
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	clone := make(json.RawMessage, len(raw))
	copy(clone, raw)
	return clone
}

// EncodeEvolutionChain converts a domain chain to its storage row. The
// whole node tree serializes into one blob.
func EncodeEvolutionChain(d dex.EvolutionChain, fetchedAt time.Time) EvolutionChainRow {
	row := EvolutionChainRow{
		ID:        d.ID,
		FetchedAt: fetchedAt,
	}
	if d.Root != nil {
		row.ChainBlob = marshalBlob(d.Root)
	}
	return row
}

// DecodeEvolutionChain restores a domain chain from its storage row. A
// corrupt blob yields a chain with no root rather than an error.
func DecodeEvolutionChain(row EvolutionChainRow) dex.EvolutionChain {
	chain := dex.EvolutionChain{ID: row.ID}
	if row.ChainBlob != "" {
		var root dex.EvolutionNode
		if err := jsonUnmarshal(row.ChainBlob, &root); err == nil {
			chain.Root = &root
		}
	}
	return chain
}
