package dex

// EncounterSet lists where one Pokémon can be found, keyed by the Pokémon's
// ID rather than an ID of its own.
type EncounterSet struct {
	PokemonID int
	Areas     []EncounterArea
}

// EncounterArea is one location area with its best encounter chance and the
// game versions it applies to. DisplayName is a read-time transform and is
// excluded from the storage blob.
type EncounterArea struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"-"`
	MaxChance   int      `json:"max_chance"`
	Versions    []string `json:"versions"`
}
