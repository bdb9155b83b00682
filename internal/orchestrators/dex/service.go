// Package dex implements the Pokédex orchestrator: cache-first resource
// loading over the local store with write-through fetches from the remote
// API on miss.
package dex

//go:generate mockgen -destination=mock/mock_service.go -package=dexmock github.com/mobiledex/pokedex-api/internal/orchestrators/dex Service

import (
	"context"

	"github.com/mobiledex/pokedex-api/internal/entities/dex"
	"github.com/mobiledex/pokedex-api/internal/resource"
)

// Service defines the operations observers consume. Every operation returns
// a receive-only envelope channel: zero or one Loading, exactly one terminal
// Success or Error, then the channel closes. Cancel the context to abandon a
// call; emissions stop and no store write happens after cancellation.
type Service interface {
	// GetPokemonPage returns one window of the summary list, serving it
	// from the store when the whole window is cached.
	GetPokemonPage(ctx context.Context, input *GetPokemonPageInput) <-chan resource.Resource[dex.PokemonPage]

	// GetPokemon returns full details by ID or by name (exactly one set).
	GetPokemon(ctx context.Context, input *GetPokemonInput) <-chan resource.Resource[dex.PokemonDetails]

	// GetSpecies returns species metadata by species ID.
	GetSpecies(ctx context.Context, input *GetSpeciesInput) <-chan resource.Resource[dex.Species]

	// GetAbility returns one ability by ID.
	GetAbility(ctx context.Context, input *GetAbilityInput) <-chan resource.Resource[dex.Ability]

	// GetMove returns one move by ID.
	GetMove(ctx context.Context, input *GetMoveInput) <-chan resource.Resource[dex.Move]

	// GetType returns one elemental type by ID.
	GetType(ctx context.Context, input *GetTypeInput) <-chan resource.Resource[dex.TypeInfo]

	// GetEvolutionChain returns one evolution chain by chain ID.
	GetEvolutionChain(ctx context.Context, input *GetEvolutionChainInput) <-chan resource.Resource[dex.EvolutionChain]

	// GetEncounters returns the encounter areas for a Pokémon.
	GetEncounters(ctx context.Context, input *GetEncountersInput) <-chan resource.Resource[dex.EncounterSet]

	// SetFavorite flips the favorite flag on a cached summary. Purely
	// local; never touches the remote API, so there is no Loading state.
	SetFavorite(ctx context.Context, input *SetFavoriteInput) <-chan resource.Resource[dex.PokemonSummary]

	// RefreshPokemon re-fetches details from the remote API regardless of
	// cache state and replaces the cached row. Cached encounters for the
	// same Pokémon are dropped so the next read re-fetches them too.
	RefreshPokemon(ctx context.Context, input *RefreshPokemonInput) <-chan resource.Resource[dex.PokemonDetails]
}

// GetPokemonPageInput defines the list window to load
type GetPokemonPageInput struct {
	// Limit defaults to DefaultPageLimit when zero
	Limit  int
	Offset int
}

// GetPokemonInput identifies one Pokémon by ID or by name
type GetPokemonInput struct {
	ID   int
	Name string
}

// GetSpeciesInput identifies one species
type GetSpeciesInput struct {
	ID int
}

// GetAbilityInput identifies one ability
type GetAbilityInput struct {
	ID int
}

// GetMoveInput identifies one move
type GetMoveInput struct {
	ID int
}

// GetTypeInput identifies one elemental type
type GetTypeInput struct {
	ID int
}

// GetEvolutionChainInput identifies one evolution chain
type GetEvolutionChainInput struct {
	ID int
}

// GetEncountersInput identifies the Pokémon whose encounters to load
type GetEncountersInput struct {
	PokemonID int
}

// SetFavoriteInput defines the favorite flag mutation
type SetFavoriteInput struct {
	ID       int
	Favorite bool
}

// RefreshPokemonInput identifies the Pokémon to re-fetch
type RefreshPokemonInput struct {
	ID int
}
