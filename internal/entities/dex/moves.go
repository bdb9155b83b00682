package dex

// Move is a battle move, keyed by its own ID and cached independently of
// any Pokémon that learns it.
type Move struct {
	ID          int
	Name        string
	DisplayName string
	// Accuracy, Power and PP are nil when the move has no such attribute
	// (status moves, moves that never miss).
	Accuracy    *int
	Power       *int
	PP          *int
	Priority    int
	Type        string
	DamageClass string
	Effect      string
}

// Ability is a passive ability, keyed by its own ID.
type Ability struct {
	ID          int
	Name        string
	DisplayName string
	Effect      string
	ShortEffect string
	Holders     []AbilityHolder
}

// AbilityHolder is a Pokémon that can carry an ability.
type AbilityHolder struct {
	PokemonID   int
	PokemonName string
	Hidden      bool
}

// TypeInfo is an elemental type and its damage relations, keyed by type ID.
type TypeInfo struct {
	ID          int
	Name        string
	DisplayName string
	Relations   DamageRelations
	Pokemon     []string
}

// DamageRelations lists type names by damage multiplier bucket. Slices are
// empty, not nil, when a bucket has no entries.
type DamageRelations struct {
	DoubleFrom []string
	DoubleTo   []string
	HalfFrom   []string
	HalfTo     []string
	NoneFrom   []string
	NoneTo     []string
}
