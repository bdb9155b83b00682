// Package pokeapi is the remote gateway to the PokéAPI REST service.
//
// The gateway performs one network round-trip per call, with no caching and
// no retry logic, and never touches the local store. Transport, protocol
// and decode failures each map to a distinct error code and message prefix
// so the orchestrator can report them uniformly.
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/mobiledex/pokedex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/mobiledex/pokedex-api/internal/errors"
)

// Client defines the interface for remote Pokémon data fetches.
type Client interface {
	// FetchPokemonPage fetches one page of {name, url} list entries.
	// On failure the returned page is nil; callers substitute an empty,
	// well-formed page so list consumers never branch on nil.
	FetchPokemonPage(ctx context.Context, limit, offset int) (*PageResponse, error)

	// FetchPokemon fetches the full detail payload by numeric ID.
	FetchPokemon(ctx context.Context, id int) (*PokemonResponse, error)

	// FetchPokemonByName fetches the full detail payload by name.
	FetchPokemonByName(ctx context.Context, name string) (*PokemonResponse, error)

	// FetchSpecies fetches the species payload by ID.
	FetchSpecies(ctx context.Context, id int) (*SpeciesResponse, error)

	// FetchAbility fetches one ability by ID.
	FetchAbility(ctx context.Context, id int) (*AbilityResponse, error)

	// FetchMove fetches one move by ID.
	FetchMove(ctx context.Context, id int) (*MoveResponse, error)

	// FetchType fetches one elemental type by ID.
	FetchType(ctx context.Context, id int) (*TypeResponse, error)

	// FetchEvolutionChain fetches one evolution chain by chain ID.
	FetchEvolutionChain(ctx context.Context, id int) (*EvolutionChainResponse, error)

	// FetchEncounters fetches the location-area encounters for a Pokémon.
	// On failure the slice is nil; callers substitute an empty slice.
	FetchEncounters(ctx context.Context, pokemonID int) ([]EncounterResponse, error)
}

// Config contains configuration options for the gateway.
type Config struct {
	// BaseURL for the PokéAPI (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 15 seconds).
	// Expiry surfaces as the connectivity error branch.
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport, mainly for tests. When set,
	// HTTPTimeout is ignored in favor of the client's own.
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://pokeapi.co/api/v2/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 15 * time.Second
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q: %v", cfg.BaseURL, err)
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new gateway with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

func (c *client) FetchPokemonPage(ctx context.Context, limit, offset int) (*PageResponse, error) {
	if limit <= 0 {
		return nil, errors.InvalidArgumentf("limit must be positive, got %d", limit)
	}
	if offset < 0 {
		return nil, errors.InvalidArgumentf("offset must not be negative, got %d", offset)
	}

	path := fmt.Sprintf("pokemon?limit=%d&offset=%d", limit, offset)
	page, err := getJSON[PageResponse](ctx, c, path)
	if err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []NamedResource{}
	}
	return page, nil
}

func (c *client) FetchPokemon(ctx context.Context, id int) (*PokemonResponse, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("pokemon ID must be positive, got %d", id)
	}
	return getJSON[PokemonResponse](ctx, c, fmt.Sprintf("pokemon/%d", id))
}

func (c *client) FetchPokemonByName(ctx context.Context, name string) (*PokemonResponse, error) {
	if name == "" {
		return nil, errors.InvalidArgument("pokemon name cannot be empty")
	}
	return getJSON[PokemonResponse](ctx, c, "pokemon/"+url.PathEscape(name))
}

func (c *client) FetchSpecies(ctx context.Context, id int) (*SpeciesResponse, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("species ID must be positive, got %d", id)
	}
	return getJSON[SpeciesResponse](ctx, c, fmt.Sprintf("pokemon-species/%d", id))
}

func (c *client) FetchAbility(ctx context.Context, id int) (*AbilityResponse, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("ability ID must be positive, got %d", id)
	}
	return getJSON[AbilityResponse](ctx, c, fmt.Sprintf("ability/%d", id))
}

func (c *client) FetchMove(ctx context.Context, id int) (*MoveResponse, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("move ID must be positive, got %d", id)
	}
	return getJSON[MoveResponse](ctx, c, fmt.Sprintf("move/%d", id))
}

func (c *client) FetchType(ctx context.Context, id int) (*TypeResponse, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("type ID must be positive, got %d", id)
	}
	return getJSON[TypeResponse](ctx, c, fmt.Sprintf("type/%d", id))
}

func (c *client) FetchEvolutionChain(ctx context.Context, id int) (*EvolutionChainResponse, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("evolution chain ID must be positive, got %d", id)
	}
	return getJSON[EvolutionChainResponse](ctx, c, fmt.Sprintf("evolution-chain/%d", id))
}

func (c *client) FetchEncounters(ctx context.Context, pokemonID int) ([]EncounterResponse, error) {
	if pokemonID <= 0 {
		return nil, errors.InvalidArgumentf("pokemon ID must be positive, got %d", pokemonID)
	}

	encounters, err := getJSON[[]EncounterResponse](ctx, c, fmt.Sprintf("pokemon/%d/encounters", pokemonID))
	if err != nil {
		return nil, err
	}
	if *encounters == nil {
		return []EncounterResponse{}, nil
	}
	return *encounters, nil
}

// getJSON performs one GET round-trip and decodes the body into T.
func getJSON[T any](ctx context.Context, c *client, path string) (*T, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Internalf("unexpected error: building request for %s: %v", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.DebugContext(ctx, "gateway request failed",
			"path", path,
			"status", resp.StatusCode)
		return nil, statusError(resp.StatusCode, path)
	}

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal,
			"unexpected error: decoding %s response: %v", path, err)
	}
	return &out, nil
}

// transportError maps a round-trip failure onto the connectivity branch.
func transportError(ctx context.Context, err error) *errors.Error {
	if ctx.Err() == context.Canceled {
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded,
			"connection error: request timed out")
	}
	if netErr, ok := err.(interface{ Timeout() bool }); ok && netErr.Timeout() {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded,
			"connection error: request timed out")
	}
	return errors.WrapWithCodef(err, errors.CodeUnavailable, "connection error: %v", err)
}

// statusError maps a non-2xx status onto the protocol branch. The message
// always carries the status code.
func statusError(status int, path string) *errors.Error {
	msg := fmt.Sprintf("HTTP error: status %d fetching %s", status, path)
	switch {
	case status == http.StatusNotFound:
		return errors.New(errors.CodeNotFound, msg)
	case status == http.StatusTooManyRequests:
		return errors.New(errors.CodeUnavailable, msg)
	case status >= 500:
		return errors.New(errors.CodeUnavailable, msg)
	default:
		return errors.New(errors.CodeInternal, msg)
	}
}
