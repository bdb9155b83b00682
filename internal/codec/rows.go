package codec

import (
	"encoding/json"
	"time"
)

// Storage rows. Each row is the value persisted for one key; nested object
// graphs are flattened into self-contained JSON text blobs the store treats
// as opaque. FetchedAt is bookkeeping stamped at write time and never flows
// back into the domain value.

// PokemonSummaryRow is the storage shape of a list entry.
type PokemonSummaryRow struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	ImageURL  string    `json:"image_url"`
	Favorite  bool      `json:"favorite"`
	FetchedAt time.Time `json:"fetched_at"`
}

// PokemonDetailsRow is the storage shape of a detail record.
type PokemonDetailsRow struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Height         int       `json:"height"`
	Weight         int       `json:"weight"`
	BaseExperience int       `json:"base_experience"`
	AbilitiesBlob  string    `json:"abilities_blob"`
	MovesBlob      string    `json:"moves_blob"`
	StatsBlob      string    `json:"stats_blob"`
	TypesBlob      string    `json:"types_blob"`
	SpritesBlob    string    `json:"sprites_blob"`
	SpeciesName    string    `json:"species_name"`
	SpeciesID      int       `json:"species_id"`
	FetchedAt      time.Time `json:"fetched_at"`
}

// SpeciesRow is the storage shape of a species record.
type SpeciesRow struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Genus            string    `json:"genus"`
	FlavorText       string    `json:"flavor_text"`
	CaptureRate      int       `json:"capture_rate"`
	GenderRate       int       `json:"gender_rate"`
	Legendary        bool      `json:"legendary"`
	Mythical         bool      `json:"mythical"`
	EvolutionChainID int       `json:"evolution_chain_id"`
	FetchedAt        time.Time `json:"fetched_at"`
}

// AbilityRow is the storage shape of an ability record.
type AbilityRow struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Effect      string    `json:"effect"`
	ShortEffect string    `json:"short_effect"`
	HoldersBlob string    `json:"holders_blob"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// MoveRow is the storage shape of a move record.
type MoveRow struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Accuracy    *int      `json:"accuracy"`
	Power       *int      `json:"power"`
	PP          *int      `json:"pp"`
	Priority    int       `json:"priority"`
	Type        string    `json:"type"`
	DamageClass string    `json:"damage_class"`
	Effect      string    `json:"effect"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// TypeRow is the storage shape of a type record.
type TypeRow struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	RelationsBlob string    `json:"relations_blob"`
	PokemonBlob   string    `json:"pokemon_blob"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// EvolutionChainRow is the storage shape of an evolution chain. The whole
// tree is one blob; it has no meaningful flat columns beyond its ID.
type EvolutionChainRow struct {
	ID        int       `json:"id"`
	ChainBlob string    `json:"chain_blob"`
	FetchedAt time.Time `json:"fetched_at"`
}

// EncounterSetRow is the storage shape of a Pokémon's encounter list,
// keyed by the Pokémon's ID.
type EncounterSetRow struct {
	PokemonID int       `json:"pokemon_id"`
	AreasBlob string    `json:"areas_blob"`
	FetchedAt time.Time `json:"fetched_at"`
}

// marshalBlob serializes a nested structure into its storage blob. The
// inputs are plain data structs; marshaling cannot fail for them, so a
// failure degrades to an empty blob rather than aborting the encode.
func marshalBlob(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

// unmarshalBlob restores a nested structure from its storage blob. A
// malformed blob fails only this field's decode: the destination is left
// at its zero value and the rest of the entity decodes normally.
func unmarshalBlob(blob string, dest interface{}) {
	if blob == "" {
		return
	}
	_ = json.Unmarshal([]byte(blob), dest)
}

// jsonUnmarshal is unmarshalBlob with the error exposed, for the few call
// sites that need to distinguish "absent" from "corrupt".
func jsonUnmarshal(blob string, dest interface{}) error {
	return json.Unmarshal([]byte(blob), dest)
}
