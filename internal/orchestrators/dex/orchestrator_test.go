package dex_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	pokeapimock "github.com/mobiledex/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/mobiledex/pokedex-api/internal/codec"
	entities "github.com/mobiledex/pokedex-api/internal/entities/dex"
	"github.com/mobiledex/pokedex-api/internal/errors"
	"github.com/mobiledex/pokedex-api/internal/orchestrators/dex"
	"github.com/mobiledex/pokedex-api/internal/pkg/clock"
	"github.com/mobiledex/pokedex-api/internal/pkg/idgen"
	redisclient "github.com/mobiledex/pokedex-api/internal/redis"
	"github.com/mobiledex/pokedex-api/internal/repositories/keyed"
	"github.com/mobiledex/pokedex-api/internal/repositories/pokemon"
	"github.com/mobiledex/pokedex-api/internal/resource"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func errorsNotFound() error {
	return errors.NotFound("pokemon not found")
}

func errorsUnavailable() error {
	return errors.Unavailable("connection error: connection refused")
}

func newKeyedRepo[T any](s *OrchestratorTestSuite, prefix string) keyed.Repository[T] {
	repo, err := keyed.NewRedis[T](&keyed.RedisConfig{Client: s.client, KeyPrefix: prefix})
	s.Require().NoError(err)
	return repo
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockClient    *pokeapimock.MockClient
	miniRedis     *miniredis.Miniredis
	client        redisclient.Client
	pokemonRepo   pokemon.Repository
	encounterRepo keyed.Repository[codec.EncounterSetRow]
	service       dex.Service
	ctx           context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.miniRedis = mr
	s.client = goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	s.pokemonRepo, err = pokemon.NewRedis(&pokemon.RedisConfig{Client: s.client})
	s.Require().NoError(err)

	s.encounterRepo = newKeyedRepo[codec.EncounterSetRow](s, "encounters")

	service, err := dex.NewOrchestrator(&dex.Config{
		Client:        s.mockClient,
		PokemonRepo:   s.pokemonRepo,
		SpeciesRepo:   newKeyedRepo[codec.SpeciesRow](s, "species"),
		AbilityRepo:   newKeyedRepo[codec.AbilityRow](s, "ability"),
		MoveRepo:      newKeyedRepo[codec.MoveRow](s, "move"),
		TypeRepo:      newKeyedRepo[codec.TypeRow](s, "type"),
		EvolutionRepo: newKeyedRepo[codec.EvolutionChainRow](s, "evolution"),
		EncounterRepo: s.encounterRepo,
		Clock:         &clock.Fixed{T: fixedNow},
		IDGenerator:   idgen.NewSequential("op"),
	})
	s.Require().NoError(err)
	s.service = service

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.miniRedis.Close()
	s.ctrl.Finish()
}

// drain collects every envelope until the channel closes.
func drain[T any](ch <-chan resource.Resource[T]) []resource.Resource[T] {
	var out []resource.Resource[T]
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func pikachuWire() *pokeapi.PokemonResponse {
	return &pokeapi.PokemonResponse{
		ID:             25,
		Name:           "pikachu",
		Height:         4,
		Weight:         60,
		BaseExperience: 112,
		Abilities: []pokeapi.AbilitySlotResponse{
			{Ability: pokeapi.NamedResource{Name: "static", URL: "https://pokeapi.co/api/v2/ability/9/"}, Slot: 1},
		},
		Species: pokeapi.NamedResource{Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon-species/25/"},
	}
}

func (s *OrchestratorTestSuite) TestGetPokemonCacheMissThenHit() {
	// Exactly one remote fetch; the second call is served locally.
	s.mockClient.EXPECT().
		FetchPokemon(gomock.Any(), 25).
		Return(pikachuWire(), nil).
		Times(1)

	first := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{ID: 25}))
	s.Require().Len(first, 2)
	s.Equal(resource.StateLoading, first[0].State)
	s.Require().Equal(resource.StateSuccess, first[1].State)
	s.Equal("Pikachu", first[1].Data.DisplayName)
	s.Equal(25, first[1].Data.SpeciesID)

	s.True(s.miniRedis.Exists("pokemon:details:25"))

	second := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{ID: 25}))
	s.Require().Len(second, 2)
	s.Require().Equal(resource.StateSuccess, second[1].State)
	s.Equal(first[1].Data, second[1].Data)
}

func (s *OrchestratorTestSuite) TestGetPokemonCacheHitSkipsNetwork() {
	// No expectations registered; a client call would fail the test.
	row := codec.EncodePokemonDetails(entities.PokemonDetails{
		ID: 1, Name: "bulbasaur", DisplayName: "Bulbasaur",
	}, fixedNow)
	_, err := s.pokemonRepo.UpsertDetails(s.ctx, pokemon.UpsertDetailsInput{Row: row})
	s.Require().NoError(err)

	got := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{ID: 1}))
	s.Require().Len(got, 2)
	s.Require().Equal(resource.StateSuccess, got[1].State)
	s.Equal("Bulbasaur", got[1].Data.DisplayName)
}

func (s *OrchestratorTestSuite) TestGetPokemonByName() {
	s.mockClient.EXPECT().
		FetchPokemonByName(gomock.Any(), "pikachu").
		Return(pikachuWire(), nil).
		Times(1)

	first := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{Name: "pikachu"}))
	s.Require().Equal(resource.StateSuccess, first[1].State)

	// Cached by both ID and name; neither path refetches.
	byName := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{Name: "pikachu"}))
	s.Require().Equal(resource.StateSuccess, byName[1].State)

	byID := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{ID: 25}))
	s.Require().Equal(resource.StateSuccess, byID[1].State)
}

func (s *OrchestratorTestSuite) TestGetPokemonFetchError() {
	s.mockClient.EXPECT().
		FetchPokemon(gomock.Any(), 99).
		Return(nil, errorsNotFound())

	got := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{ID: 99}))
	s.Require().Len(got, 2)
	s.Require().Equal(resource.StateError, got[1].State)
	s.NotEmpty(got[1].Message)
	s.Zero(got[1].Data.ID)
}

func (s *OrchestratorTestSuite) TestGetPokemonInputValidation() {
	got := drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{}))
	s.Require().Equal(resource.StateError, got[len(got)-1].State)

	got = drain(s.service.GetPokemon(s.ctx, &dex.GetPokemonInput{ID: 25, Name: "pikachu"}))
	s.Require().Equal(resource.StateError, got[len(got)-1].State)
}

func (s *OrchestratorTestSuite) TestGetSpeciesCacheMissThenHit() {
	s.mockClient.EXPECT().
		FetchSpecies(gomock.Any(), 25).
		Return(&pokeapi.SpeciesResponse{
			ID:          25,
			Name:        "pikachu",
			CaptureRate: 190,
			GenderRate:  4,
			FlavorTextEntries: []pokeapi.FlavorTextResponse{
				{FlavorText: "It keeps its tail raised.", Language: pokeapi.NamedResource{Name: "en"}},
			},
			Genera: []pokeapi.GenusResponse{
				{Genus: "Mouse Pokémon", Language: pokeapi.NamedResource{Name: "en"}},
			},
			EvolutionChain: &pokeapi.APIResource{URL: "https://pokeapi.co/api/v2/evolution-chain/10/"},
		}, nil).
		Times(1)

	first := drain(s.service.GetSpecies(s.ctx, &dex.GetSpeciesInput{ID: 25}))
	s.Require().Len(first, 2)
	s.Require().Equal(resource.StateSuccess, first[1].State)
	s.Equal("Mouse Pokémon", first[1].Data.Genus)
	s.Equal(10, first[1].Data.EvolutionChainID)

	second := drain(s.service.GetSpecies(s.ctx, &dex.GetSpeciesInput{ID: 25}))
	s.Require().Equal(resource.StateSuccess, second[1].State)
	s.Equal(first[1].Data, second[1].Data)
}

func (s *OrchestratorTestSuite) TestGetPokemonPageFetchAndCache() {
	next := "https://pokeapi.co/api/v2/pokemon?offset=3&limit=3"
	s.mockClient.EXPECT().
		FetchPokemonPage(gomock.Any(), 3, 0).
		Return(&pokeapi.PageResponse{
			Count: 1302,
			Next:  &next,
			Results: []pokeapi.NamedResource{
				{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
				{Name: "ivysaur", URL: "https://pokeapi.co/api/v2/pokemon/2/"},
				{Name: "venusaur", URL: "https://pokeapi.co/api/v2/pokemon/3/"},
			},
		}, nil).
		Times(1)

	first := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{Limit: 3, Offset: 0}))
	s.Require().Len(first, 2)
	s.Require().Equal(resource.StateSuccess, first[1].State)
	page := first[1].Data
	s.Require().Len(page.Items, 3)
	s.Equal("Bulbasaur", page.Items[0].DisplayName)
	s.Equal(1302, page.Total)
	s.Require().NotNil(page.NextOffset)
	s.Equal(3, *page.NextOffset)

	// The whole window is now cached; the second call stays local and
	// still reports the remote total.
	second := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{Limit: 3, Offset: 0}))
	s.Require().Equal(resource.StateSuccess, second[1].State)
	s.Equal(page.Items, second[1].Data.Items)
	s.Equal(1302, second[1].Data.Total)
	s.Require().NotNil(second[1].Data.NextOffset)
	s.Equal(3, *second[1].Data.NextOffset)
}

func (s *OrchestratorTestSuite) TestGetPokemonPageOutOfOrderCaching() {
	// Caching a later page first must not let it satisfy the offset-0
	// window; each offset addresses fixed positions in the remote list.
	next := "https://pokeapi.co/api/v2/pokemon?offset=6&limit=3"
	s.mockClient.EXPECT().
		FetchPokemonPage(gomock.Any(), 3, 3).
		Return(&pokeapi.PageResponse{
			Count: 1302,
			Next:  &next,
			Results: []pokeapi.NamedResource{
				{Name: "charmander", URL: "https://pokeapi.co/api/v2/pokemon/4/"},
				{Name: "charmeleon", URL: "https://pokeapi.co/api/v2/pokemon/5/"},
				{Name: "charizard", URL: "https://pokeapi.co/api/v2/pokemon/6/"},
			},
		}, nil).
		Times(1)
	s.mockClient.EXPECT().
		FetchPokemonPage(gomock.Any(), 3, 0).
		Return(&pokeapi.PageResponse{
			Count: 1302,
			Next:  &next,
			Results: []pokeapi.NamedResource{
				{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
				{Name: "ivysaur", URL: "https://pokeapi.co/api/v2/pokemon/2/"},
				{Name: "venusaur", URL: "https://pokeapi.co/api/v2/pokemon/3/"},
			},
		}, nil).
		Times(1)

	later := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{Limit: 3, Offset: 3}))
	s.Require().Equal(resource.StateSuccess, later[1].State)
	s.Equal(4, later[1].Data.Items[0].ID)

	first := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{Limit: 3, Offset: 0}))
	s.Require().Equal(resource.StateSuccess, first[1].State)
	s.Require().Len(first[1].Data.Items, 3)
	s.Equal(1, first[1].Data.Items[0].ID)
	s.Equal(2, first[1].Data.Items[1].ID)
	s.Equal(3, first[1].Data.Items[2].ID)

	// Both windows are now cached; repeat reads stay local.
	cachedLater := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{Limit: 3, Offset: 3}))
	s.Require().Equal(resource.StateSuccess, cachedLater[1].State)
	s.Equal(later[1].Data.Items, cachedLater[1].Data.Items)
}

func (s *OrchestratorTestSuite) TestGetPokemonPageErrorFallbackNeverNil() {
	s.mockClient.EXPECT().
		FetchPokemonPage(gomock.Any(), 20, 0).
		Return(nil, errorsUnavailable())

	got := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{}))
	s.Require().Len(got, 2)
	s.Require().Equal(resource.StateError, got[1].State)
	s.NotNil(got[1].Data.Items)
	s.Empty(got[1].Data.Items)
}

func (s *OrchestratorTestSuite) TestGetPokemonPagePreservesFavorites() {
	results := []pokeapi.NamedResource{
		{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon/1/"},
		{Name: "ivysaur", URL: "https://pokeapi.co/api/v2/pokemon/2/"},
	}
	s.mockClient.EXPECT().
		FetchPokemonPage(gomock.Any(), 2, 0).
		Return(&pokeapi.PageResponse{Count: 2, Results: results}, nil).
		Times(2)

	first := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{Limit: 2}))
	s.Require().Equal(resource.StateSuccess, first[1].State)

	fav := drain(s.service.SetFavorite(s.ctx, &dex.SetFavoriteInput{ID: 1, Favorite: true}))
	s.Require().Equal(resource.StateSuccess, fav[len(fav)-1].State)

	// Force a re-fetch of the same window; the favorite survives.
	s.miniRedis.Del("pokemon:summary:2")
	second := drain(s.service.GetPokemonPage(s.ctx, &dex.GetPokemonPageInput{Limit: 2}))
	s.Require().Equal(resource.StateSuccess, second[1].State)
	s.Require().Len(second[1].Data.Items, 2)
	s.True(second[1].Data.Items[0].Favorite)
}

func (s *OrchestratorTestSuite) TestSetFavoriteLocalOnly() {
	// No client expectations: the mutation must not touch the network.
	row := codec.EncodePokemonSummary(entities.PokemonSummary{
		ID: 25, Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25/",
	}, fixedNow)
	_, err := s.pokemonRepo.UpsertSummaries(s.ctx, pokemon.UpsertSummariesInput{
		Rows: []codec.PokemonSummaryRow{row},
	})
	s.Require().NoError(err)

	got := drain(s.service.SetFavorite(s.ctx, &dex.SetFavoriteInput{ID: 25, Favorite: true}))
	s.Require().Len(got, 1)
	s.Require().Equal(resource.StateSuccess, got[0].State)
	s.True(got[0].Data.Favorite)
	s.Equal("Pikachu", got[0].Data.DisplayName)

	stored, err := s.pokemonRepo.GetSummary(s.ctx, pokemon.GetSummaryInput{ID: 25})
	s.Require().NoError(err)
	s.True(stored.Row.Favorite)
}

func (s *OrchestratorTestSuite) TestSetFavoriteUncached() {
	got := drain(s.service.SetFavorite(s.ctx, &dex.SetFavoriteInput{ID: 999, Favorite: true}))
	s.Require().Len(got, 1)
	s.Equal(resource.StateError, got[0].State)
}

func (s *OrchestratorTestSuite) TestGetEncountersEmptyFallback() {
	s.mockClient.EXPECT().
		FetchEncounters(gomock.Any(), 25).
		Return(nil, errorsUnavailable())

	got := drain(s.service.GetEncounters(s.ctx, &dex.GetEncountersInput{PokemonID: 25}))
	s.Require().Len(got, 2)
	s.Require().Equal(resource.StateError, got[1].State)
	s.NotNil(got[1].Data.Areas)
	s.Empty(got[1].Data.Areas)
	s.Equal(25, got[1].Data.PokemonID)
}

func (s *OrchestratorTestSuite) TestRefreshPokemonBypassesCache() {
	// Seed a stale cached row.
	stale := codec.EncodePokemonDetails(entities.PokemonDetails{
		ID: 25, Name: "pikachu", DisplayName: "Pikachu", Weight: 1,
	}, fixedNow)
	_, err := s.pokemonRepo.UpsertDetails(s.ctx, pokemon.UpsertDetailsInput{Row: stale})
	s.Require().NoError(err)

	// Seed cached encounters that must be invalidated.
	encRow := codec.EncodeEncounterSet(entities.EncounterSet{
		PokemonID: 25,
		Areas:     []entities.EncounterArea{{Name: "viridian-forest", MaxChance: 10}},
	}, fixedNow)
	_, err = s.encounterRepo.Upsert(s.ctx, keyed.UpsertInput[codec.EncounterSetRow]{ID: 25, Row: encRow})
	s.Require().NoError(err)

	s.mockClient.EXPECT().
		FetchPokemon(gomock.Any(), 25).
		Return(pikachuWire(), nil).
		Times(1)

	got := drain(s.service.RefreshPokemon(s.ctx, &dex.RefreshPokemonInput{ID: 25}))
	s.Require().Len(got, 2)
	s.Require().Equal(resource.StateSuccess, got[1].State)
	s.Equal(60, got[1].Data.Weight)

	stored, err := s.pokemonRepo.GetDetails(s.ctx, pokemon.GetDetailsInput{ID: 25})
	s.Require().NoError(err)
	s.Equal(60, stored.Row.Weight)

	// Encounters were dropped along with the stale row.
	s.False(s.miniRedis.Exists("encounters:25"))
}

func (s *OrchestratorTestSuite) TestRefreshPokemonErrorKeepsCachedFallback() {
	cached := codec.EncodePokemonDetails(entities.PokemonDetails{
		ID: 25, Name: "pikachu", DisplayName: "Pikachu", Weight: 60,
	}, fixedNow)
	_, err := s.pokemonRepo.UpsertDetails(s.ctx, pokemon.UpsertDetailsInput{Row: cached})
	s.Require().NoError(err)

	s.mockClient.EXPECT().
		FetchPokemon(gomock.Any(), 25).
		Return(nil, errorsUnavailable())

	got := drain(s.service.RefreshPokemon(s.ctx, &dex.RefreshPokemonInput{ID: 25}))
	s.Require().Len(got, 2)
	s.Require().Equal(resource.StateError, got[1].State)
	s.Equal("Pikachu", got[1].Data.DisplayName)
	s.Equal(60, got[1].Data.Weight)
}

func (s *OrchestratorTestSuite) TestCancellationDiscardsOrphanedWrite() {
	ctx, cancel := context.WithCancel(s.ctx)

	fetchEntered := make(chan struct{})
	s.mockClient.EXPECT().
		FetchPokemon(gomock.Any(), 25).
		DoAndReturn(func(ctx context.Context, id int) (*pokeapi.PokemonResponse, error) {
			close(fetchEntered)
			<-ctx.Done()
			// Simulate a response racing the cancellation.
			return pikachuWire(), nil
		})

	ch := s.service.GetPokemon(ctx, &dex.GetPokemonInput{ID: 25})

	loading := <-ch
	s.Equal(resource.StateLoading, loading.State)

	<-fetchEntered
	cancel()

	// The stream ends without a terminal Success and nothing was written.
	for r := range ch {
		s.NotEqual(resource.StateSuccess, r.State)
	}
	_, err := s.pokemonRepo.GetDetails(s.ctx, pokemon.GetDetailsInput{ID: 25})
	s.Error(err)
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func TestNewOrchestratorValidation(t *testing.T) {
	_, err := dex.NewOrchestrator(&dex.Config{})
	if err == nil {
		t.Fatal("expected validation error for empty config")
	}
}
