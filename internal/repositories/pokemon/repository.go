// Package pokemon provides the interface for Pokémon summary and detail
// persistence, including the favorite flag, which lives only here.
package pokemon

//go:generate mockgen -destination=mock/mock_repository.go -package=pokemonmock github.com/mobiledex/pokedex-api/internal/repositories/pokemon Repository

import (
	"context"

	"github.com/mobiledex/pokedex-api/internal/codec"
)

// Repository defines the interface for Pokémon persistence. Rows are the
// storage shapes produced by the codec; upserts are insert-or-replace by
// primary key with last write winning.
type Repository interface {
	// UpsertSummaries writes a batch of list rows. Favorite flags already
	// persisted for a row's ID survive the replace.
	// Returns errors.InvalidArgument for empty batches
	// Returns errors.Internal for storage failures
	UpsertSummaries(ctx context.Context, input UpsertSummariesInput) (*UpsertSummariesOutput, error)

	// ListSummaries returns the cached rows whose IDs fall in the window
	// [offset+1, offset+limit], ordered ascending. The window addresses
	// the global ID order, not the rank among cached members, so a full
	// window means exactly the requested Pokémon are cached. Total is the
	// remote list size recorded by the last batch write, falling back to
	// the cached row count when none was recorded.
	ListSummaries(ctx context.Context, input ListSummariesInput) (*ListSummariesOutput, error)

	// GetSummary retrieves one list row by ID.
	// Returns errors.NotFound if the row is absent
	GetSummary(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error)

	// SetFavorite flips the favorite flag on one cached summary row.
	// Returns errors.NotFound if the row is absent
	SetFavorite(ctx context.Context, input SetFavoriteInput) (*SetFavoriteOutput, error)

	// UpsertDetails writes one detail row and its name index entry.
	UpsertDetails(ctx context.Context, input UpsertDetailsInput) (*UpsertDetailsOutput, error)

	// GetDetails retrieves one detail row by ID.
	// Returns errors.NotFound if the row is absent
	GetDetails(ctx context.Context, input GetDetailsInput) (*GetDetailsOutput, error)

	// GetDetailsByName retrieves one detail row through the name index.
	// Returns errors.NotFound if the name is not indexed
	GetDetailsByName(ctx context.Context, input GetDetailsByNameInput) (*GetDetailsByNameOutput, error)
}

// UpsertSummariesInput defines the input for writing a batch of list rows
type UpsertSummariesInput struct {
	Rows []codec.PokemonSummaryRow
	// Total is the remote list size reported alongside the batch. Zero
	// leaves the recorded total untouched.
	Total int
}

// UpsertSummariesOutput defines the output for writing a batch of list rows
type UpsertSummariesOutput struct {
	// Rows as written, with preserved favorite flags applied
	Rows []codec.PokemonSummaryRow
}

// ListSummariesInput defines the window for listing cached rows
type ListSummariesInput struct {
	Offset int
	Limit  int
}

// ListSummariesOutput defines the output for listing cached rows
type ListSummariesOutput struct {
	Rows  []codec.PokemonSummaryRow
	Total int
}

// GetSummaryInput defines the input for getting one list row
type GetSummaryInput struct {
	ID int
}

// GetSummaryOutput defines the output for getting one list row
type GetSummaryOutput struct {
	Row codec.PokemonSummaryRow
}

// SetFavoriteInput defines the input for flipping the favorite flag
type SetFavoriteInput struct {
	ID       int
	Favorite bool
}

// SetFavoriteOutput defines the output for flipping the favorite flag
type SetFavoriteOutput struct {
	Row codec.PokemonSummaryRow
}

// UpsertDetailsInput defines the input for writing one detail row
type UpsertDetailsInput struct {
	Row codec.PokemonDetailsRow
}

// UpsertDetailsOutput defines the output for writing one detail row
type UpsertDetailsOutput struct{}

// GetDetailsInput defines the input for getting one detail row
type GetDetailsInput struct {
	ID int
}

// GetDetailsOutput defines the output for getting one detail row
type GetDetailsOutput struct {
	Row codec.PokemonDetailsRow
}

// GetDetailsByNameInput defines the input for the name index lookup
type GetDetailsByNameInput struct {
	Name string
}

// GetDetailsByNameOutput defines the output for the name index lookup
type GetDetailsByNameOutput struct {
	Row codec.PokemonDetailsRow
}
