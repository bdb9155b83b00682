package pokeapi

import "encoding/json"

// Wire DTOs, matching the JSON shapes the API returns. These never leak
// past the codec; the rest of the codebase consumes the domain entities.

// NamedResource is the ubiquitous {name, url} reference pair. List entries
// carry no numeric ID; it is derived from the URL's trailing path segment.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// APIResource is a bare {url} reference.
type APIResource struct {
	URL string `json:"url"`
}

// PageResponse is one page of the paginated Pokémon list.
type PageResponse struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// PokemonResponse is the full detail payload for one Pokémon.
type PokemonResponse struct {
	ID             int                   `json:"id"`
	Name           string                `json:"name"`
	Height         int                   `json:"height"`
	Weight         int                   `json:"weight"`
	BaseExperience int                   `json:"base_experience"`
	Abilities      []AbilitySlotResponse `json:"abilities"`
	Moves          []MoveSlotResponse    `json:"moves"`
	Stats          []StatResponse        `json:"stats"`
	Types          []TypeSlotResponse    `json:"types"`
	Sprites        *SpritesResponse      `json:"sprites"`
	Species        NamedResource         `json:"species"`
}

// AbilitySlotResponse is one ability slot on a Pokémon.
type AbilitySlotResponse struct {
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
	Ability  NamedResource `json:"ability"`
}

// MoveSlotResponse is one learnable move reference on a Pokémon.
type MoveSlotResponse struct {
	Move NamedResource `json:"move"`
}

// StatResponse is one base stat entry on a Pokémon.
type StatResponse struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// TypeSlotResponse is one type slot on a Pokémon.
type TypeSlotResponse struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// SpritesResponse holds the sprite URL branches. Every leaf is optional.
type SpritesResponse struct {
	FrontDefault *string               `json:"front_default"`
	BackDefault  *string               `json:"back_default"`
	FrontShiny   *string               `json:"front_shiny"`
	BackShiny    *string               `json:"back_shiny"`
	Other        *OtherSpritesResponse `json:"other"`
}

// OtherSpritesResponse holds the alternate artwork branches.
type OtherSpritesResponse struct {
	OfficialArtwork *ArtworkResponse `json:"official-artwork"`
}

// ArtworkResponse is the official artwork branch.
type ArtworkResponse struct {
	FrontDefault *string `json:"front_default"`
}

// SpeciesResponse is the species payload for one Pokémon.
type SpeciesResponse struct {
	ID                int                  `json:"id"`
	Name              string               `json:"name"`
	CaptureRate       int                  `json:"capture_rate"`
	GenderRate        int                  `json:"gender_rate"`
	IsLegendary       bool                 `json:"is_legendary"`
	IsMythical        bool                 `json:"is_mythical"`
	FlavorTextEntries []FlavorTextResponse `json:"flavor_text_entries"`
	Genera            []GenusResponse      `json:"genera"`
	EvolutionChain    *APIResource         `json:"evolution_chain"`
}

// FlavorTextResponse is one localized flavor text entry.
type FlavorTextResponse struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

// GenusResponse is one localized genus entry.
type GenusResponse struct {
	Genus    string        `json:"genus"`
	Language NamedResource `json:"language"`
}

// AbilityResponse is the payload for one ability.
type AbilityResponse struct {
	ID            int                      `json:"id"`
	Name          string                   `json:"name"`
	EffectEntries []EffectResponse         `json:"effect_entries"`
	Pokemon       []AbilityPokemonResponse `json:"pokemon"`
}

// EffectResponse is one localized effect entry.
type EffectResponse struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

// AbilityPokemonResponse is one Pokémon that can carry an ability.
type AbilityPokemonResponse struct {
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
	Pokemon  NamedResource `json:"pokemon"`
}

// MoveResponse is the payload for one move.
type MoveResponse struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Accuracy      *int             `json:"accuracy"`
	Power         *int             `json:"power"`
	PP            *int             `json:"pp"`
	Priority      int              `json:"priority"`
	DamageClass   *NamedResource   `json:"damage_class"`
	Type          *NamedResource   `json:"type"`
	EffectEntries []EffectResponse `json:"effect_entries"`
}

// TypeResponse is the payload for one elemental type.
type TypeResponse struct {
	ID              int                     `json:"id"`
	Name            string                  `json:"name"`
	DamageRelations DamageRelationsResponse `json:"damage_relations"`
	Pokemon         []TypePokemonResponse   `json:"pokemon"`
}

// DamageRelationsResponse groups type references by damage multiplier.
type DamageRelationsResponse struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
}

// TypePokemonResponse is one Pokémon belonging to a type.
type TypePokemonResponse struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// EvolutionChainResponse is the payload for one evolution chain.
type EvolutionChainResponse struct {
	ID    int               `json:"id"`
	Chain ChainLinkResponse `json:"chain"`
}

// ChainLinkResponse is one node of the evolution tree. The structure is
// self-referential to unbounded depth. Evolution details are kept raw here;
// the codec decodes them into the finite set of known condition variants.
type ChainLinkResponse struct {
	IsBaby           bool                `json:"is_baby"`
	Species          NamedResource       `json:"species"`
	EvolutionDetails []json.RawMessage   `json:"evolution_details"`
	EvolvesTo        []ChainLinkResponse `json:"evolves_to"`
}

// EncounterResponse is one location-area encounter entry for a Pokémon.
type EncounterResponse struct {
	LocationArea   NamedResource              `json:"location_area"`
	VersionDetails []EncounterVersionResponse `json:"version_details"`
}

// EncounterVersionResponse is one game version's encounter data.
type EncounterVersionResponse struct {
	MaxChance int           `json:"max_chance"`
	Version   NamedResource `json:"version"`
}
