// Package pokeapi is the client for PokeAPI and its sprite repository
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

const (
	// DefaultAPIBaseURL is the public PokeAPI v2 endpoint
	DefaultAPIBaseURL = "https://pokeapi.co/api/v2"
	// DefaultImageBaseURL is the root of the PokeAPI sprite repository
	DefaultImageBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites"
	// DefaultHTTPTimeout bounds every single request
	DefaultHTTPTimeout = 30 * time.Second

	// sprites are a few KB, documents a few hundred KB
	maxBodyBytes = 8 << 20
	userAgent    = "pokedex/1.0 (+https://github.com/KirkDiggler/pokedex)"
)

// Operation names one of the four requests a fetch is made of. It is attached
// to FetchFailed errors under the "operation" meta key.
type Operation string

// Operations
const (
	OperationPortrait      Operation = "portrait"
	OperationShinyPortrait Operation = "shiny_portrait"
	OperationPokemon       Operation = "pokemon"
	OperationSpecies       Operation = "species"
)

// SpriteVariant selects which sprite to download
type SpriteVariant int

// Sprite variants
const (
	SpriteNormal SpriteVariant = iota
	SpriteShiny
)

func (v SpriteVariant) operation() Operation {
	if v == SpriteShiny {
		return OperationShinyPortrait
	}
	return OperationPortrait
}

// Client defines the requests the pokedex makes against PokeAPI.
// Every method returns errors.CodeFetchFailed on transport, status or decode failure.
type Client interface {
	// GetPokemon fetches GET <api-base>/pokemon/{id}
	GetPokemon(ctx context.Context, id uint16) (*PokemonResponse, error)

	// GetSpecies fetches GET <api-base>/pokemon-species/{id}
	GetSpecies(ctx context.Context, id uint16) (*SpeciesResponse, error)

	// GetSprite downloads GET <image-base>/pokemon[/shiny]/{id}.png
	GetSprite(ctx context.Context, id uint16, variant SpriteVariant) ([]byte, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// APIBaseURL for PokeAPI (optional, defaults to DefaultAPIBaseURL)
	APIBaseURL string
	// ImageBaseURL for sprites (optional, defaults to DefaultImageBaseURL)
	ImageBaseURL string
	// HTTPTimeout for each request (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateBaseURL("APIBaseURL", cfg.APIBaseURL, vb)
	errors.ValidateBaseURL("ImageBaseURL", cfg.ImageBaseURL, vb)
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	httpClient   *http.Client
	apiBaseURL   string
	imageBaseURL string
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		httpClient:   httpClient,
		apiBaseURL:   strings.TrimRight(cfg.APIBaseURL, "/"),
		imageBaseURL: strings.TrimRight(cfg.ImageBaseURL, "/"),
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, id uint16) (*PokemonResponse, error) {
	url := fmt.Sprintf("%s/pokemon/%d", c.apiBaseURL, id)

	var resp PokemonResponse
	if err := c.getJSON(ctx, OperationPokemon, id, url, &resp); err != nil {
		return nil, err
	}

	slog.Debug("Decoded pokemon response",
		"id", id,
		"name", resp.Name,
		"response", resp,
	)
	return &resp, nil
}

func (c *client) GetSpecies(ctx context.Context, id uint16) (*SpeciesResponse, error) {
	url := fmt.Sprintf("%s/pokemon-species/%d", c.apiBaseURL, id)

	var resp SpeciesResponse
	if err := c.getJSON(ctx, OperationSpecies, id, url, &resp); err != nil {
		return nil, err
	}

	slog.Debug("Decoded pokemon-species response",
		"id", id,
		"flavor_text_entries", len(resp.FlavorTextEntries),
		"response", resp,
	)
	return &resp, nil
}

func (c *client) GetSprite(ctx context.Context, id uint16, variant SpriteVariant) ([]byte, error) {
	segment := "pokemon"
	if variant == SpriteShiny {
		segment = "pokemon/shiny"
	}
	url := fmt.Sprintf("%s/%s/%d.png", c.imageBaseURL, segment, id)

	body, err := c.get(ctx, variant.operation(), id, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes+1))
	if err != nil {
		return nil, fetchFailed(err, variant.operation(), id, url, "failed to read sprite")
	}
	if len(data) > maxBodyBytes {
		return nil, fetchFailed(
			fmt.Errorf("body larger than %d bytes", maxBodyBytes), variant.operation(), id, url, "sprite exceeds size limit",
		)
	}
	return data, nil
}

func (c *client) getJSON(ctx context.Context, op Operation, id uint16, url string, out interface{}) error {
	body, err := c.get(ctx, op, id, url)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(out); err != nil {
		return fetchFailed(err, op, id, url, "failed to decode "+string(op)+" response")
	}
	return nil
}

// get issues the request and returns the body of a 2xx response. The caller
// closes the body.
func (c *client) get(ctx context.Context, op Operation, id uint16, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fetchFailed(err, op, id, url, "failed to build request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fetchFailed(err, op, id, url, "request failed")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
		return nil, fetchFailed(
			fmt.Errorf("unexpected status %s", resp.Status), op, id, url, "request failed",
		).WithMeta("status", resp.StatusCode)
	}

	return resp.Body, nil
}

func fetchFailed(cause error, op Operation, id uint16, url, message string) *errors.Error {
	return errors.FetchFailedf(cause, "%s %d: %s", op, id, message).
		WithMetaMap(map[string]interface{}{
			"operation": string(op),
			"id":        id,
			"url":       url,
		})
}
