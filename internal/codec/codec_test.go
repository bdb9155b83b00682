package codec_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobiledex/pokedex-api/internal/clients/pokeapi"
	"github.com/mobiledex/pokedex-api/internal/codec"
	"github.com/mobiledex/pokedex-api/internal/entities/dex"
)

var fetchedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestExtractID(t *testing.T) {
	cases := []struct {
		url  string
		want int
	}{
		{"https://pokeapi.co/api/v2/pokemon/25/", 25},
		{"https://pokeapi.co/api/v2/pokemon/25", 25},
		{"https://pokeapi.co/api/v2/evolution-chain/67/", 67},
		{"https://pokeapi.co/api/v2/pokemon/pikachu/", 0},
		{"not-a-url", 0},
		{"", 0},
		{"/", 0},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, codec.ExtractID(tc.url), "url %q", tc.url)
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Pikachu", codec.DisplayName("pikachu"))
	assert.Equal(t, "Mr-mime", codec.DisplayName("mr-mime"))
	assert.Equal(t, "", codec.DisplayName(""))
	assert.Equal(t, "X", codec.DisplayName("x"))
}

func TestArtworkURL(t *testing.T) {
	assert.Contains(t, codec.ArtworkURL(25), "/25.png")
	assert.Equal(t, "", codec.ArtworkURL(0))
}

func TestPokemonSummaryFromWire(t *testing.T) {
	got := codec.PokemonSummaryFromWire(pokeapi.NamedResource{
		Name: "bulbasaur",
		URL:  "https://pokeapi.co/api/v2/pokemon/1/",
	})

	assert.Equal(t, 1, got.ID)
	assert.Equal(t, "bulbasaur", got.Name)
	assert.Equal(t, "Bulbasaur", got.DisplayName)
	assert.Contains(t, got.ImageURL, "/1.png")
	assert.False(t, got.Favorite)
}

func TestPokemonSummaryRoundTrip(t *testing.T) {
	domain := codec.PokemonSummaryFromWire(pokeapi.NamedResource{
		Name: "charmander",
		URL:  "https://pokeapi.co/api/v2/pokemon/4/",
	})
	domain.Favorite = true

	row := codec.EncodePokemonSummary(domain, fetchedAt)
	restored := codec.DecodePokemonSummary(row)

	assert.Equal(t, domain, restored)
}

func samplePokemonWire() *pokeapi.PokemonResponse {
	front := "https://img/front/25.png"
	art := "https://img/art/25.png"
	return &pokeapi.PokemonResponse{
		ID:             25,
		Name:           "pikachu",
		Height:         4,
		Weight:         60,
		BaseExperience: 112,
		Abilities: []pokeapi.AbilitySlotResponse{
			{Slot: 1, Ability: pokeapi.NamedResource{Name: "static", URL: "https://pokeapi.co/api/v2/ability/9/"}},
			{Slot: 3, IsHidden: true, Ability: pokeapi.NamedResource{Name: "lightning-rod", URL: "https://pokeapi.co/api/v2/ability/31/"}},
		},
		Moves: []pokeapi.MoveSlotResponse{
			{Move: pokeapi.NamedResource{Name: "thunder-shock", URL: "https://pokeapi.co/api/v2/move/84/"}},
		},
		Stats: []pokeapi.StatResponse{
			{BaseStat: 35, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 90, Effort: 2, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
		Types: []pokeapi.TypeSlotResponse{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "electric"}},
		},
		Sprites: &pokeapi.SpritesResponse{
			FrontDefault: &front,
			Other: &pokeapi.OtherSpritesResponse{
				OfficialArtwork: &pokeapi.ArtworkResponse{FrontDefault: &art},
			},
		},
		Species: pokeapi.NamedResource{Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon-species/25/"},
	}
}

func TestPokemonDetailsFromWire(t *testing.T) {
	got := codec.PokemonDetailsFromWire(samplePokemonWire())

	assert.Equal(t, 25, got.ID)
	assert.Equal(t, "Pikachu", got.DisplayName)
	require.Len(t, got.Abilities, 2)
	assert.True(t, got.Abilities[1].Hidden)
	require.Len(t, got.Moves, 1)
	assert.Equal(t, 84, got.Moves[0].ID)
	require.NotNil(t, got.Sprites)
	assert.Equal(t, "https://img/front/25.png", got.Sprites.FrontDefault)
	assert.Equal(t, "https://img/art/25.png", got.Sprites.OfficialArtwork)
	assert.Equal(t, "", got.Sprites.BackShiny)
	assert.Equal(t, 25, got.SpeciesID)
}

func TestPokemonDetailsMissingBranchesAreNilLeaves(t *testing.T) {
	got := codec.PokemonDetailsFromWire(&pokeapi.PokemonResponse{ID: 132, Name: "ditto"})

	assert.Nil(t, got.Sprites)
	assert.Empty(t, got.Abilities)
	assert.Empty(t, got.Moves)
}

func TestPokemonDetailsRoundTrip(t *testing.T) {
	domain := codec.PokemonDetailsFromWire(samplePokemonWire())

	row := codec.EncodePokemonDetails(domain, fetchedAt)
	restored := codec.DecodePokemonDetails(row)

	assert.Equal(t, domain, restored)
}

func TestPokemonDetailsCorruptBlobFailsOnlyThatField(t *testing.T) {
	row := codec.EncodePokemonDetails(codec.PokemonDetailsFromWire(samplePokemonWire()), fetchedAt)
	row.SpritesBlob = `{"FrontDefault": `
	row.MovesBlob = `not json`

	restored := codec.DecodePokemonDetails(row)

	assert.Nil(t, restored.Sprites)
	assert.Empty(t, restored.Moves)
	// untouched fields still decode
	assert.Equal(t, 25, restored.ID)
	assert.Len(t, restored.Abilities, 2)
	assert.Len(t, restored.Stats, 2)
}

func TestSpeciesFromWire(t *testing.T) {
	wire := &pokeapi.SpeciesResponse{
		ID:          25,
		Name:        "pikachu",
		CaptureRate: 190,
		GenderRate:  4,
		FlavorTextEntries: []pokeapi.FlavorTextResponse{
			{FlavorText: "Texte en français", Language: pokeapi.NamedResource{Name: "fr"}},
			{FlavorText: "When several of\nthese POKeMON\fgather", Language: pokeapi.NamedResource{Name: "en"}},
		},
		Genera: []pokeapi.GenusResponse{
			{Genus: "Souris", Language: pokeapi.NamedResource{Name: "fr"}},
			{Genus: "Mouse Pokémon", Language: pokeapi.NamedResource{Name: "en"}},
		},
		EvolutionChain: &pokeapi.APIResource{URL: "https://pokeapi.co/api/v2/evolution-chain/10/"},
	}

	got := codec.SpeciesFromWire(wire)

	assert.Equal(t, "When several of these POKeMON gather", got.FlavorText)
	assert.Equal(t, "Mouse Pokémon", got.Genus)
	assert.Equal(t, 10, got.EvolutionChainID)
	assert.Equal(t, dex.CaptureTierEasy, got.CaptureTierOf())
}

func TestSpeciesRoundTrip(t *testing.T) {
	domain := dex.Species{
		ID: 25, Name: "pikachu", DisplayName: "Pikachu",
		Genus: "Mouse Pokémon", FlavorText: "text",
		CaptureRate: 190, GenderRate: 4, EvolutionChainID: 10,
	}

	restored := codec.DecodeSpecies(codec.EncodeSpecies(domain, fetchedAt))
	assert.Equal(t, domain, restored)
}

func TestMoveRoundTrip(t *testing.T) {
	acc, power, pp := 100, 40, 30
	wire := &pokeapi.MoveResponse{
		ID: 84, Name: "thunder-shock",
		Accuracy: &acc, Power: &power, PP: &pp,
		Type:        &pokeapi.NamedResource{Name: "electric"},
		DamageClass: &pokeapi.NamedResource{Name: "special"},
		EffectEntries: []pokeapi.EffectResponse{
			{ShortEffect: "Has a 10% chance to paralyze the target.", Language: pokeapi.NamedResource{Name: "en"}},
		},
	}
	domain := codec.MoveFromWire(wire)
	assert.Equal(t, "Thunder-shock", domain.DisplayName)
	assert.Equal(t, "Has a 10% chance to paralyze the target.", domain.Effect)

	restored := codec.DecodeMove(codec.EncodeMove(domain, fetchedAt))
	assert.Equal(t, domain, restored)
}

func TestMoveNilAttributesSurvive(t *testing.T) {
	domain := codec.MoveFromWire(&pokeapi.MoveResponse{ID: 14, Name: "swords-dance"})
	assert.Nil(t, domain.Accuracy)
	assert.Nil(t, domain.Power)

	restored := codec.DecodeMove(codec.EncodeMove(domain, fetchedAt))
	assert.Equal(t, domain, restored)
}

func TestAbilityRoundTrip(t *testing.T) {
	wire := &pokeapi.AbilityResponse{
		ID: 9, Name: "static",
		EffectEntries: []pokeapi.EffectResponse{
			{Effect: "Long text.", ShortEffect: "Paralyzes on contact.", Language: pokeapi.NamedResource{Name: "en"}},
		},
		Pokemon: []pokeapi.AbilityPokemonResponse{
			{Pokemon: pokeapi.NamedResource{Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25/"}},
		},
	}
	domain := codec.AbilityFromWire(wire)
	assert.Equal(t, "Paralyzes on contact.", domain.ShortEffect)
	assert.Equal(t, 25, domain.Holders[0].PokemonID)

	restored := codec.DecodeAbility(codec.EncodeAbility(domain, fetchedAt))
	assert.Equal(t, domain, restored)
}

func TestTypeRoundTrip(t *testing.T) {
	wire := &pokeapi.TypeResponse{
		ID: 13, Name: "electric",
		DamageRelations: pokeapi.DamageRelationsResponse{
			DoubleDamageTo: []pokeapi.NamedResource{{Name: "water"}, {Name: "flying"}},
			NoDamageTo:     []pokeapi.NamedResource{{Name: "ground"}},
		},
		Pokemon: []pokeapi.TypePokemonResponse{
			{Pokemon: pokeapi.NamedResource{Name: "pikachu"}},
		},
	}
	domain := codec.TypeFromWire(wire)
	assert.Equal(t, []string{"water", "flying"}, domain.Relations.DoubleTo)
	assert.NotNil(t, domain.Relations.HalfFrom)
	assert.Empty(t, domain.Relations.HalfFrom)

	restored := codec.DecodeType(codec.EncodeType(domain, fetchedAt))
	assert.Equal(t, domain, restored)
}

func TestEncounterSetRoundTrip(t *testing.T) {
	wire := []pokeapi.EncounterResponse{
		{
			LocationArea: pokeapi.NamedResource{Name: "viridian-forest-area"},
			VersionDetails: []pokeapi.EncounterVersionResponse{
				{MaxChance: 10, Version: pokeapi.NamedResource{Name: "red"}},
				{MaxChance: 25, Version: pokeapi.NamedResource{Name: "yellow"}},
			},
		},
	}
	domain := codec.EncounterSetFromWire(25, wire)
	assert.Equal(t, "Viridian-forest-area", domain.Areas[0].DisplayName)
	assert.Equal(t, 25, domain.Areas[0].MaxChance)

	restored := codec.DecodeEncounterSet(codec.EncodeEncounterSet(domain, fetchedAt))
	assert.Equal(t, domain, restored)

	// The cased name is a read-time transform and never reaches storage.
	row := codec.EncodeEncounterSet(domain, fetchedAt)
	assert.NotContains(t, row.AreasBlob, "DisplayName")
	assert.NotContains(t, row.AreasBlob, "Viridian-forest-area")
}

func TestEvolutionChainFromWire(t *testing.T) {
	levelUp := json.RawMessage(`{"trigger":{"name":"level-up","url":""},"min_level":16}`)
	wire := &pokeapi.EvolutionChainResponse{
		ID: 1,
		Chain: pokeapi.ChainLinkResponse{
			Species: pokeapi.NamedResource{Name: "bulbasaur", URL: "https://pokeapi.co/api/v2/pokemon-species/1/"},
			EvolvesTo: []pokeapi.ChainLinkResponse{
				{
					Species:          pokeapi.NamedResource{Name: "ivysaur", URL: "https://pokeapi.co/api/v2/pokemon-species/2/"},
					EvolutionDetails: []json.RawMessage{levelUp},
					EvolvesTo: []pokeapi.ChainLinkResponse{
						{Species: pokeapi.NamedResource{Name: "venusaur", URL: "https://pokeapi.co/api/v2/pokemon-species/3/"}},
					},
				},
			},
		},
	}

	chain := codec.EvolutionChainFromWire(wire)

	require.NotNil(t, chain.Root)
	assert.Equal(t, 1, chain.Root.SpeciesID)
	require.Len(t, chain.Root.EvolvesTo, 1)
	ivysaur := chain.Root.EvolvesTo[0]
	require.Len(t, ivysaur.Conditions, 1)
	assert.Equal(t, dex.ConditionLevelUp, ivysaur.Conditions[0].Kind)
	assert.Equal(t, 16, ivysaur.Conditions[0].MinLevel)

	refs := chain.Flatten()
	assert.Equal(t, []dex.SpeciesRef{
		{ID: 1, Name: "bulbasaur"},
		{ID: 2, Name: "ivysaur"},
		{ID: 3, Name: "venusaur"},
	}, refs)
}

func TestEvolutionConditionVariants(t *testing.T) {
	wire := &pokeapi.EvolutionChainResponse{
		ID: 2,
		Chain: pokeapi.ChainLinkResponse{
			Species: pokeapi.NamedResource{Name: "root", URL: ".../1/"},
			EvolvesTo: []pokeapi.ChainLinkResponse{
				{
					Species: pokeapi.NamedResource{Name: "item-child", URL: ".../2/"},
					EvolutionDetails: []json.RawMessage{
						json.RawMessage(`{"trigger":{"name":"use-item","url":""},"item":{"name":"thunder-stone","url":""}}`),
					},
				},
				{
					Species: pokeapi.NamedResource{Name: "happy-child", URL: ".../3/"},
					EvolutionDetails: []json.RawMessage{
						json.RawMessage(`{"trigger":{"name":"level-up","url":""},"min_happiness":220,"time_of_day":"day"}`),
					},
				},
				{
					Species: pokeapi.NamedResource{Name: "odd-child", URL: ".../4/"},
					EvolutionDetails: []json.RawMessage{
						json.RawMessage(`{"trigger":{"name":"tower-of-darkness","url":""}}`),
					},
				},
			},
		},
	}

	chain := codec.EvolutionChainFromWire(wire)
	require.Len(t, chain.Root.EvolvesTo, 3)

	item := chain.Root.EvolvesTo[0].Conditions[0]
	assert.Equal(t, dex.ConditionUseItem, item.Kind)
	assert.Equal(t, "thunder-stone", item.Item)

	happy := chain.Root.EvolvesTo[1].Conditions[0]
	assert.Equal(t, dex.ConditionHappiness, happy.Kind)
	assert.Equal(t, 220, happy.MinHappiness)
	assert.Equal(t, "day", happy.TimeOfDay)

	unknown := chain.Root.EvolvesTo[2].Conditions[0]
	assert.Equal(t, dex.ConditionUnknown, unknown.Kind)
	assert.NotEmpty(t, unknown.Raw)
}

func TestEvolutionChainRoundTrip(t *testing.T) {
	wire := &pokeapi.EvolutionChainResponse{
		ID: 67,
		Chain: pokeapi.ChainLinkResponse{
			Species: pokeapi.NamedResource{Name: "eevee", URL: ".../133/"},
			EvolvesTo: []pokeapi.ChainLinkResponse{
				{Species: pokeapi.NamedResource{Name: "vaporeon", URL: ".../134/"},
					EvolutionDetails: []json.RawMessage{
						json.RawMessage(`{"trigger":{"name":"use-item","url":""},"item":{"name":"water-stone","url":""}}`),
					}},
			},
		},
	}
	domain := codec.EvolutionChainFromWire(wire)

	restored := codec.DecodeEvolutionChain(codec.EncodeEvolutionChain(domain, fetchedAt))
	assert.Equal(t, domain, restored)
}

func TestDecodeEvolutionChainCorruptBlob(t *testing.T) {
	chain := codec.DecodeEvolutionChain(codec.EvolutionChainRow{ID: 5, ChainBlob: `{"bad`})
	assert.Equal(t, 5, chain.ID)
	assert.Nil(t, chain.Root)
	assert.Empty(t, chain.Flatten())
}
