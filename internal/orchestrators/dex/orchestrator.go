package dex

import (
	"context"
	"log/slog"
	"time"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/codec"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
	"github.com/mobiledex/pokedex-api/internal/errors"
	"github.com/mobiledex/pokedex-api/internal/pkg/clock"
	"github.com/mobiledex/pokedex-api/internal/pkg/idgen"
	"github.com/mobiledex/pokedex-api/internal/repositories/keyed"
	"github.com/mobiledex/pokedex-api/internal/repositories/pokemon"
	"github.com/mobiledex/pokedex-api/internal/resource"
)

const (
	// DefaultPageLimit is the list window size when the caller passes zero
	DefaultPageLimit = 20

	// envelopeBuffer holds Loading plus one terminal so an abandoned
	// observer never wedges the producer goroutine.
	envelopeBuffer = 2
)

// Config holds the dependencies for the dex orchestrator
type Config struct {
	Client        pokeapi.Client
	PokemonRepo   pokemon.Repository
	SpeciesRepo   keyed.Repository[codec.SpeciesRow]
	AbilityRepo   keyed.Repository[codec.AbilityRow]
	MoveRepo      keyed.Repository[codec.MoveRow]
	TypeRepo      keyed.Repository[codec.TypeRow]
	EvolutionRepo keyed.Repository[codec.EvolutionChainRow]
	EncounterRepo keyed.Repository[codec.EncounterSetRow]
	Clock         clock.Clock
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.PokemonRepo == nil {
		vb.RequiredField("PokemonRepo")
	}
	if c.SpeciesRepo == nil {
		vb.RequiredField("SpeciesRepo")
	}
	if c.AbilityRepo == nil {
		vb.RequiredField("AbilityRepo")
	}
	if c.MoveRepo == nil {
		vb.RequiredField("MoveRepo")
	}
	if c.TypeRepo == nil {
		vb.RequiredField("TypeRepo")
	}
	if c.EvolutionRepo == nil {
		vb.RequiredField("EvolutionRepo")
	}
	if c.EncounterRepo == nil {
		vb.RequiredField("EncounterRepo")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	client        pokeapi.Client
	pokemonRepo   pokemon.Repository
	speciesRepo   keyed.Repository[codec.SpeciesRow]
	abilityRepo   keyed.Repository[codec.AbilityRow]
	moveRepo      keyed.Repository[codec.MoveRow]
	typeRepo      keyed.Repository[codec.TypeRow]
	evolutionRepo keyed.Repository[codec.EvolutionChainRow]
	encounterRepo keyed.Repository[codec.EncounterSetRow]
	clock         clock.Clock
	idGen         idgen.Generator
}

// NewOrchestrator creates a new dex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:        cfg.Client,
		pokemonRepo:   cfg.PokemonRepo,
		speciesRepo:   cfg.SpeciesRepo,
		abilityRepo:   cfg.AbilityRepo,
		moveRepo:      cfg.MoveRepo,
		typeRepo:      cfg.TypeRepo,
		evolutionRepo: cfg.EvolutionRepo,
		encounterRepo: cfg.EncounterRepo,
		clock:         cfg.Clock,
		idGen:         cfg.IDGenerator,
	}, nil
}

// send delivers one envelope unless the context was cancelled first. The
// buffered channel makes the send itself non-blocking; the select exists so
// a cancelled call stops emitting immediately.
func send[T any](ctx context.Context, out chan<- resource.Resource[T], r resource.Resource[T]) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case out <- r:
		return true
	}
}

// stream runs work on its own goroutine, emitting Loading followed by the
// terminal envelope work produces, then closes the channel.
func stream[T any](ctx context.Context, work func(ctx context.Context) resource.Resource[T]) <-chan resource.Resource[T] {
	out := make(chan resource.Resource[T], envelopeBuffer)
	go func() {
		defer close(out)
		if !send(ctx, out, resource.Loading[T]()) {
			return
		}
		send(ctx, out, work(ctx))
	}()
	return out
}

// resolve is stream without the Loading emission, for purely local
// operations that complete in one step.
func resolve[T any](ctx context.Context, work func(ctx context.Context) resource.Resource[T]) <-chan resource.Resource[T] {
	out := make(chan resource.Resource[T], envelopeBuffer)
	go func() {
		defer close(out)
		send(ctx, out, work(ctx))
	}()
	return out
}

// cacheOrFetch is the core read path for the keyed entity tables: serve the
// decoded cached row when present, otherwise fetch from the remote API,
// write through, and serve the fetched value. A fetch that completes after
// cancellation is discarded without a store write.
func cacheOrFetch[R, D any](
	ctx context.Context,
	o *orchestrator,
	op string,
	id int,
	repo keyed.Repository[R],
	decode func(R) D,
	fetch func(ctx context.Context) (D, error),
	encode func(D, time.Time) R,
	fallback D,
) resource.Resource[D] {
	opID := o.idGen.Generate()

	got, err := repo.Get(ctx, keyed.GetInput{ID: id})
	if err == nil {
		slog.DebugContext(ctx, "cache hit", "op", op, "op_id", opID, "id", id)
		return resource.Success(decode(got.Row))
	}
	if !errors.IsNotFound(err) {
		slog.WarnContext(ctx, "cache read failed, falling through to fetch",
			"op", op, "op_id", opID, "id", id, "error", err)
	}

	d, err := fetch(ctx)
	if err != nil {
		slog.WarnContext(ctx, "fetch failed", "op", op, "op_id", opID, "id", id, "error", err)
		return resource.Error(errors.GetMessage(err), fallback)
	}

	if ctx.Err() != nil {
		return resource.Error(errors.GetMessage(errors.Canceled("operation cancelled")), fallback)
	}

	if _, err := repo.Upsert(ctx, keyed.UpsertInput[R]{ID: id, Row: encode(d, o.clock.Now())}); err != nil {
		// The fetched value is still good; a failed write-through only
		// costs the next call a re-fetch.
		slog.ErrorContext(ctx, "write-through failed", "op", op, "op_id", opID, "id", id, "error", err)
	}

	slog.DebugContext(ctx, "cache miss served from remote", "op", op, "op_id", opID, "id", id)
	return resource.Success(d)
}

func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) <-chan resource.Resource[dex.PokemonDetails] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.PokemonDetails] {
		var zero dex.PokemonDetails
		if input == nil || (input.ID <= 0 && input.Name == "") {
			return resource.Error("either id or name is required", zero)
		}
		if input.ID > 0 && input.Name != "" {
			return resource.Error("id and name are mutually exclusive", zero)
		}

		opID := o.idGen.Generate()

		row, err := o.lookupDetails(ctx, input)
		if err == nil {
			slog.DebugContext(ctx, "cache hit", "op", "get_pokemon", "op_id", opID,
				"id", input.ID, "name", input.Name)
			return resource.Success(codec.DecodePokemonDetails(row))
		}
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "cache read failed, falling through to fetch",
				"op", "get_pokemon", "op_id", opID, "error", err)
		}

		wire, err := o.fetchDetails(ctx, input)
		if err != nil {
			slog.WarnContext(ctx, "fetch failed", "op", "get_pokemon", "op_id", opID,
				"id", input.ID, "name", input.Name, "error", err)
			return resource.Error(errors.GetMessage(err), zero)
		}

		details := codec.PokemonDetailsFromWire(wire)

		if ctx.Err() != nil {
			return resource.Error(errors.GetMessage(errors.Canceled("operation cancelled")), zero)
		}

		encoded := codec.EncodePokemonDetails(details, o.clock.Now())
		if _, err := o.pokemonRepo.UpsertDetails(ctx, pokemon.UpsertDetailsInput{Row: encoded}); err != nil {
			slog.ErrorContext(ctx, "write-through failed", "op", "get_pokemon",
				"op_id", opID, "id", details.ID, "error", err)
		}

		return resource.Success(details)
	})
}

func (o *orchestrator) lookupDetails(ctx context.Context, input *GetPokemonInput) (codec.PokemonDetailsRow, error) {
	if input.ID > 0 {
		out, err := o.pokemonRepo.GetDetails(ctx, pokemon.GetDetailsInput{ID: input.ID})
		if err != nil {
			return codec.PokemonDetailsRow{}, err
		}
		return out.Row, nil
	}
	out, err := o.pokemonRepo.GetDetailsByName(ctx, pokemon.GetDetailsByNameInput{Name: input.Name})
	if err != nil {
		return codec.PokemonDetailsRow{}, err
	}
	return out.Row, nil
}

func (o *orchestrator) fetchDetails(ctx context.Context, input *GetPokemonInput) (*pokeapi.PokemonResponse, error) {
	if input.ID > 0 {
		return o.client.FetchPokemon(ctx, input.ID)
	}
	return o.client.FetchPokemonByName(ctx, input.Name)
}

func (o *orchestrator) GetSpecies(ctx context.Context, input *GetSpeciesInput) <-chan resource.Resource[dex.Species] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.Species] {
		if input == nil || input.ID <= 0 {
			return resource.Error("species id is required", dex.Species{})
		}
		return cacheOrFetch(ctx, o, "get_species", input.ID, o.speciesRepo,
			codec.DecodeSpecies,
			func(ctx context.Context) (dex.Species, error) {
				wire, err := o.client.FetchSpecies(ctx, input.ID)
				if err != nil {
					return dex.Species{}, err
				}
				return codec.SpeciesFromWire(wire), nil
			},
			codec.EncodeSpecies,
			dex.Species{})
	})
}

func (o *orchestrator) GetAbility(ctx context.Context, input *GetAbilityInput) <-chan resource.Resource[dex.Ability] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.Ability] {
		if input == nil || input.ID <= 0 {
			return resource.Error("ability id is required", dex.Ability{})
		}
		return cacheOrFetch(ctx, o, "get_ability", input.ID, o.abilityRepo,
			codec.DecodeAbility,
			func(ctx context.Context) (dex.Ability, error) {
				wire, err := o.client.FetchAbility(ctx, input.ID)
				if err != nil {
					return dex.Ability{}, err
				}
				return codec.AbilityFromWire(wire), nil
			},
			codec.EncodeAbility,
			dex.Ability{})
	})
}

func (o *orchestrator) GetMove(ctx context.Context, input *GetMoveInput) <-chan resource.Resource[dex.Move] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.Move] {
		if input == nil || input.ID <= 0 {
			return resource.Error("move id is required", dex.Move{})
		}
		return cacheOrFetch(ctx, o, "get_move", input.ID, o.moveRepo,
			codec.DecodeMove,
			func(ctx context.Context) (dex.Move, error) {
				wire, err := o.client.FetchMove(ctx, input.ID)
				if err != nil {
					return dex.Move{}, err
				}
				return codec.MoveFromWire(wire), nil
			},
			codec.EncodeMove,
			dex.Move{})
	})
}

func (o *orchestrator) GetType(ctx context.Context, input *GetTypeInput) <-chan resource.Resource[dex.TypeInfo] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.TypeInfo] {
		if input == nil || input.ID <= 0 {
			return resource.Error("type id is required", dex.TypeInfo{})
		}
		return cacheOrFetch(ctx, o, "get_type", input.ID, o.typeRepo,
			codec.DecodeType,
			func(ctx context.Context) (dex.TypeInfo, error) {
				wire, err := o.client.FetchType(ctx, input.ID)
				if err != nil {
					return dex.TypeInfo{}, err
				}
				return codec.TypeFromWire(wire), nil
			},
			codec.EncodeType,
			dex.TypeInfo{})
	})
}

func (o *orchestrator) GetEvolutionChain(ctx context.Context, input *GetEvolutionChainInput) <-chan resource.Resource[dex.EvolutionChain] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.EvolutionChain] {
		if input == nil || input.ID <= 0 {
			return resource.Error("evolution chain id is required", dex.EvolutionChain{})
		}
		return cacheOrFetch(ctx, o, "get_evolution_chain", input.ID, o.evolutionRepo,
			codec.DecodeEvolutionChain,
			func(ctx context.Context) (dex.EvolutionChain, error) {
				wire, err := o.client.FetchEvolutionChain(ctx, input.ID)
				if err != nil {
					return dex.EvolutionChain{}, err
				}
				return codec.EvolutionChainFromWire(wire), nil
			},
			codec.EncodeEvolutionChain,
			dex.EvolutionChain{})
	})
}

func (o *orchestrator) GetEncounters(ctx context.Context, input *GetEncountersInput) <-chan resource.Resource[dex.EncounterSet] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.EncounterSet] {
		if input == nil || input.PokemonID <= 0 {
			return resource.Error("pokemon id is required", emptyEncounterSet(0))
		}
		return cacheOrFetch(ctx, o, "get_encounters", input.PokemonID, o.encounterRepo,
			codec.DecodeEncounterSet,
			func(ctx context.Context) (dex.EncounterSet, error) {
				wire, err := o.client.FetchEncounters(ctx, input.PokemonID)
				if err != nil {
					return dex.EncounterSet{}, err
				}
				return codec.EncounterSetFromWire(input.PokemonID, wire), nil
			},
			codec.EncodeEncounterSet,
			emptyEncounterSet(input.PokemonID))
	})
}

// emptyEncounterSet is the list-shaped fallback: well formed, never nil.
func emptyEncounterSet(pokemonID int) dex.EncounterSet {
	return dex.EncounterSet{PokemonID: pokemonID, Areas: []dex.EncounterArea{}}
}

func (o *orchestrator) SetFavorite(ctx context.Context, input *SetFavoriteInput) <-chan resource.Resource[dex.PokemonSummary] {
	return resolve(ctx, func(ctx context.Context) resource.Resource[dex.PokemonSummary] {
		if input == nil || input.ID <= 0 {
			return resource.Error("pokemon id is required", dex.PokemonSummary{})
		}

		out, err := o.pokemonRepo.SetFavorite(ctx, pokemon.SetFavoriteInput{
			ID:       input.ID,
			Favorite: input.Favorite,
		})
		if err != nil {
			return resource.Error(errors.GetMessage(err), dex.PokemonSummary{})
		}

		return resource.Success(codec.DecodePokemonSummary(out.Row))
	})
}

func (o *orchestrator) RefreshPokemon(ctx context.Context, input *RefreshPokemonInput) <-chan resource.Resource[dex.PokemonDetails] {
	return stream(ctx, func(ctx context.Context) resource.Resource[dex.PokemonDetails] {
		var zero dex.PokemonDetails
		if input == nil || input.ID <= 0 {
			return resource.Error("pokemon id is required", zero)
		}

		opID := o.idGen.Generate()

		wire, err := o.client.FetchPokemon(ctx, input.ID)
		if err != nil {
			slog.WarnContext(ctx, "refresh fetch failed", "op", "refresh_pokemon",
				"op_id", opID, "id", input.ID, "error", err)
			// Last-known-good cached details are the fallback.
			if cached, cerr := o.pokemonRepo.GetDetails(ctx, pokemon.GetDetailsInput{ID: input.ID}); cerr == nil {
				return resource.Error(errors.GetMessage(err), codec.DecodePokemonDetails(cached.Row))
			}
			return resource.Error(errors.GetMessage(err), zero)
		}

		details := codec.PokemonDetailsFromWire(wire)

		if ctx.Err() != nil {
			return resource.Error(errors.GetMessage(errors.Canceled("operation cancelled")), zero)
		}

		encoded := codec.EncodePokemonDetails(details, o.clock.Now())
		if _, err := o.pokemonRepo.UpsertDetails(ctx, pokemon.UpsertDetailsInput{Row: encoded}); err != nil {
			slog.ErrorContext(ctx, "write-through failed", "op", "refresh_pokemon",
				"op_id", opID, "id", input.ID, "error", err)
		}

		// Encounters cached against the old row may be stale now.
		if _, err := o.encounterRepo.Delete(ctx, keyed.DeleteInput{ID: input.ID}); err != nil {
			slog.WarnContext(ctx, "encounter invalidation failed", "op", "refresh_pokemon",
				"op_id", opID, "id", input.ID, "error", err)
		}

		return resource.Success(details)
	})
}
