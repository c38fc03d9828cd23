// Package config loads pokedex settings from the environment
package config

import (
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex/internal/services/assembly"
)

// Environment variables read by Load
const (
	EnvAPIBaseURL   = "POKEDEX_API_BASE_URL"
	EnvImageBaseURL = "POKEDEX_IMAGE_BASE_URL"
	EnvTotal        = "POKEDEX_TOTAL"
	EnvLanguage     = "POKEDEX_LANGUAGE"
	EnvHTTPTimeout  = "POKEDEX_HTTP_TIMEOUT"
	EnvRedisAddr    = "POKEDEX_REDIS_ADDR"
)

// MinTotal is the smallest catalog a random pick can draw from
const MinTotal = 2

// Config holds every setting the CLI needs to build the pipeline
type Config struct {
	APIBaseURL   string
	ImageBaseURL string
	Total        uint16
	Language     string
	HTTPTimeout  time.Duration
	// RedisAddr enables the sighting history when set
	RedisAddr string
}

// Load reads the configuration from the process environment
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through get, falling back to defaults for
// unset or blank variables
func LoadFrom(get func(string) string) (*Config, error) {
	value := func(key string) string { return strings.TrimSpace(get(key)) }

	cfg := &Config{
		APIBaseURL:   value(EnvAPIBaseURL),
		ImageBaseURL: value(EnvImageBaseURL),
		Language:     value(EnvLanguage),
		RedisAddr:    value(EnvRedisAddr),
	}

	vb := errors.NewValidationBuilder()

	// an explicit total is checked here; only an unset one falls back to the default
	if raw := value(EnvTotal); raw != "" {
		total, err := strconv.Atoi(raw)
		if err != nil {
			vb.Fieldf(EnvTotal, "must be an integer in [%d, %d], got %q", MinTotal, math.MaxUint16, raw)
		} else {
			errors.ValidateRange(EnvTotal, total, MinTotal, math.MaxUint16, vb)
			cfg.Total = uint16(total)
		}
	}

	if raw := value(EnvHTTPTimeout); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			vb.Fieldf(EnvHTTPTimeout, "must be a duration such as 30s, got %q", raw)
		}
		cfg.HTTPTimeout = timeout
	}

	if err := vb.Build(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fills defaults and checks the values
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	if c.APIBaseURL == "" {
		c.APIBaseURL = pokeapi.DefaultAPIBaseURL
	}
	if c.ImageBaseURL == "" {
		c.ImageBaseURL = pokeapi.DefaultImageBaseURL
	}
	if c.Total == 0 {
		c.Total = pokedex.DefaultTotal
	}
	if c.Language == "" {
		c.Language = assembly.DefaultLanguage
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = pokeapi.DefaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateBaseURL("APIBaseURL", c.APIBaseURL, vb)
	errors.ValidateBaseURL("ImageBaseURL", c.ImageBaseURL, vb)
	errors.ValidateRange("Total", int(c.Total), MinTotal, math.MaxUint16, vb)
	if c.HTTPTimeout < 0 {
		vb.InvalidField("HTTPTimeout", "must not be negative")
	}

	return vb.Build()
}
