// Package dex implements the Pokédex domain entities
package dex

// PokemonSummary is one row of the browsable Pokémon list.
// NOTE: This is a data-only struct; display normalization happens in the
// codec at the wire/storage boundary, not here. Favorite is the only field
// that changes after the row is first cached.
type PokemonSummary struct {
	ID          int
	Name        string
	DisplayName string
	URL         string
	ImageURL    string
	Favorite    bool
}

// PokemonDetails is the full detail record for one Pokémon, keyed by ID.
// A re-fetch replaces the whole value; there is no partial-update path.
type PokemonDetails struct {
	ID             int
	Name           string
	DisplayName    string
	Height         int
	Weight         int
	BaseExperience int
	Abilities      []AbilitySlot
	Moves          []MoveRef
	Stats          []StatLine
	Types          []TypeSlot
	Sprites        *Sprites
	SpeciesName    string
	SpeciesID      int
}

// AbilitySlot is one ability attached to a Pokémon.
type AbilitySlot struct {
	Name   string
	Slot   int
	Hidden bool
}

// MoveRef references a move a Pokémon can learn.
type MoveRef struct {
	ID   int
	Name string
}

// StatLine is one base stat entry.
type StatLine struct {
	Name   string
	Base   int
	Effort int
}

// TypeSlot is one type attached to a Pokémon.
type TypeSlot struct {
	Slot int
	Name string
}

// Sprites holds the artwork URLs for a Pokémon. Missing branches in the
// wire data yield empty strings, never an error.
type Sprites struct {
	FrontDefault    string
	BackDefault     string
	FrontShiny      string
	BackShiny       string
	OfficialArtwork string
}

// PokemonPage is one merged page of the browsable list along with its
// paging cursor.
type PokemonPage struct {
	Items []PokemonSummary
	Total int
	// NextOffset is nil when there are no further pages.
	NextOffset *int
}
