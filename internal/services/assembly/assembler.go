// Package assembly merges the documents and sprites of one fetch into a
// single CreatureRecord.
package assembly

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
)

// DefaultLanguage is the flavor text language used when none is configured
const DefaultLanguage = "en"

// AssemblerConfig holds the configuration for creating an assembler
type AssemblerConfig struct {
	// Language is the PokeAPI language name flavor text is selected by (optional, defaults to "en")
	Language string
}

// Validate ensures the configuration is valid
func (c *AssemblerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}

	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(c.Language) != c.Language {
		vb.InvalidField("Language", "must not contain surrounding whitespace")
	}
	return vb.Build()
}

type assembler struct {
	language string
}

// NewAssembler creates a new assembler instance
func NewAssembler(cfg *AssemblerConfig) (Assembler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &assembler{
		language: cfg.Language,
	}, nil
}

func (a *assembler) Assemble(payloads *pokeapi.RawPayloads) (*entities.CreatureRecord, error) {
	if payloads == nil || payloads.Pokemon == nil || payloads.Species == nil {
		return nil, errors.MalformedPayloadf("payloads are incomplete")
	}
	pokemon := payloads.Pokemon

	description, err := selectDescription(payloads.Species.FlavorTextEntries, a.language)
	if err != nil {
		return nil, errors.Wrapf(err, "creature %d", pokemon.ID).WithMeta("id", pokemon.ID)
	}

	types := make([]string, 0, len(pokemon.Types))
	for _, t := range pokemon.Types {
		types = append(types, t.Type.Name)
	}

	return entities.NewCreatureRecord(entities.CreatureRecordParams{
		ID:            pokemon.ID,
		Name:          pokemon.Name,
		Types:         types,
		Description:   description,
		HeightMeters:  decimetersToMeters(pokemon.Height),
		WeightGrams:   hectogramsToGrams(pokemon.Weight),
		Stats:         mapStats(pokemon.Stats),
		Portrait:      payloads.Portrait,
		ShinyPortrait: payloads.ShinyPortrait,
	})
}

// selectDescription returns the sanitized text of the first entry in language
func selectDescription(entries []pokeapi.FlavorText, language string) (string, error) {
	for _, entry := range entries {
		if entry.Language.Name != language {
			continue
		}
		return Sanitize(entry.FlavorText), nil
	}

	return "", errors.DescriptionUnavailablef("no flavor text for language %q", language).
		WithMeta("language", language).
		WithMeta("entries", len(entries))
}

// Sanitize replaces every control character with a space and leaves all
// other characters as they are, so the rune count never changes.
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, text)
}

// mapStats picks the six recognized stats out of the API's list; unknown
// names are ignored and missing stats stay zero.
func mapStats(stats []pokeapi.PokemonStat) entities.Stats {
	var out entities.Stats
	for _, st := range stats {
		stat, ok := entities.ParseStat(st.Stat.Name)
		if !ok {
			continue
		}
		out = out.With(stat, float64(st.BaseStat))
	}
	return out
}

func decimetersToMeters(dm uint8) float64 {
	return float64(dm) / 10
}

func hectogramsToGrams(hg uint16) float64 {
	return float64(hg) * 100
}
