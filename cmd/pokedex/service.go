package main

import (
	"fmt"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/codec"
	"github.com/mobiledex/pokedex-api/internal/orchestrators/dex"
	"github.com/mobiledex/pokedex-api/internal/pkg/clock"
	"github.com/mobiledex/pokedex-api/internal/pkg/idgen"
	redisclient "github.com/mobiledex/pokedex-api/internal/redis"
	"github.com/mobiledex/pokedex-api/internal/repositories/keyed"
	"github.com/mobiledex/pokedex-api/internal/repositories/pokemon"
	"github.com/mobiledex/pokedex-api/internal/resource"
)

// newService wires the full stack from the CLI flags.
func newService() (dex.Service, error) {
	client, err := redisclient.NewClient(redisAddr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	gateway, err := pokeapi.New(&pokeapi.Config{BaseURL: apiBaseURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	pokemonRepo, err := pokemon.NewRedis(&pokemon.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create pokemon repository: %w", err)
	}

	speciesRepo, err := keyed.NewRedis[codec.SpeciesRow](&keyed.RedisConfig{Client: client, KeyPrefix: "species"})
	if err != nil {
		return nil, err
	}
	abilityRepo, err := keyed.NewRedis[codec.AbilityRow](&keyed.RedisConfig{Client: client, KeyPrefix: "ability"})
	if err != nil {
		return nil, err
	}
	moveRepo, err := keyed.NewRedis[codec.MoveRow](&keyed.RedisConfig{Client: client, KeyPrefix: "move"})
	if err != nil {
		return nil, err
	}
	typeRepo, err := keyed.NewRedis[codec.TypeRow](&keyed.RedisConfig{Client: client, KeyPrefix: "type"})
	if err != nil {
		return nil, err
	}
	evolutionRepo, err := keyed.NewRedis[codec.EvolutionChainRow](&keyed.RedisConfig{Client: client, KeyPrefix: "evolution"})
	if err != nil {
		return nil, err
	}
	encounterRepo, err := keyed.NewRedis[codec.EncounterSetRow](&keyed.RedisConfig{Client: client, KeyPrefix: "encounters"})
	if err != nil {
		return nil, err
	}

	return dex.NewOrchestrator(&dex.Config{
		Client:        gateway,
		PokemonRepo:   pokemonRepo,
		SpeciesRepo:   speciesRepo,
		AbilityRepo:   abilityRepo,
		MoveRepo:      moveRepo,
		TypeRepo:      typeRepo,
		EvolutionRepo: evolutionRepo,
		EncounterRepo: encounterRepo,
		Clock:         clock.New(),
		IDGenerator:   idgen.NewPrefixed("op"),
	})
}

// consume drains one envelope stream, printing states as they arrive, and
// hands the terminal data to show. It returns an error when the stream ends
// on the Error state so the command exits non-zero.
func consume[T any](ch <-chan resource.Resource[T], show func(T)) error {
	for r := range ch {
		switch r.State {
		case resource.StateLoading:
			fmt.Println("loading...")
		case resource.StateSuccess:
			show(r.Data)
		case resource.StateError:
			fmt.Printf("error: %s\n", r.Message)
			show(r.Data)
			return fmt.Errorf("operation failed: %s", r.Message)
		}
	}
	return nil
}
