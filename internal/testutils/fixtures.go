package testutils

import (
	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
)

// Fixture values for bulbasaur (#1), trimmed to the fields the pokedex reads
const (
	TestCreatureID   uint16 = 1
	TestCreatureName        = "bulbasaur"

	// BulbasaurPokemonJSON is a trimmed GET /pokemon/1 body
	BulbasaurPokemonJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "height": 7,
  "weight": 69,
  "base_experience": 64,
  "types": [
    {"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}},
    {"slot": 2, "type": {"name": "poison", "url": "https://pokeapi.co/api/v2/type/4/"}}
  ],
  "stats": [
    {"base_stat": 45, "effort": 0, "stat": {"name": "hp"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "attack"}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "defense"}},
    {"base_stat": 65, "effort": 1, "stat": {"name": "special-attack"}},
    {"base_stat": 65, "effort": 0, "stat": {"name": "special-defense"}},
    {"base_stat": 45, "effort": 0, "stat": {"name": "speed"}}
  ]
}`

	// BulbasaurSpeciesJSON is a trimmed GET /pokemon-species/1 body. The
	// english entry contains the form feed and newline the API really returns.
	BulbasaurSpeciesJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "flavor_text_entries": [
    {"flavor_text": "Bulbasaur peut survivre\ndes jours entiers.", "language": {"name": "fr"}},
    {"flavor_text": "A strange seed was\nplanted on its\fback at birth.", "language": {"name": "en"}},
    {"flavor_text": "Bulbasaur can be seen napping in bright sunlight.", "language": {"name": "en"}}
  ]
}`

	// BulbasaurDescription is the english flavor text after sanitization
	BulbasaurDescription = "A strange seed was planted on its back at birth."
)

// TestPortrait and TestShinyPortrait stand in for sprite bytes
var (
	TestPortrait      = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x01}
	TestShinyPortrait = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0x02}
)

// CreateTestPokemonResponse returns bulbasaur's decoded pokemon document
func CreateTestPokemonResponse() *pokeapi.PokemonResponse {
	return &pokeapi.PokemonResponse{
		ID:   TestCreatureID,
		Name: TestCreatureName,
		Types: []pokeapi.PokemonType{
			{Type: pokeapi.NamedResource{Name: "grass"}},
			{Type: pokeapi.NamedResource{Name: "poison"}},
		},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 45, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 49, Stat: pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: 49, Stat: pokeapi.NamedResource{Name: "defense"}},
			{BaseStat: 65, Stat: pokeapi.NamedResource{Name: "special-attack"}},
			{BaseStat: 65, Stat: pokeapi.NamedResource{Name: "special-defense"}},
			{BaseStat: 45, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
		Height: 7,
		Weight: 69,
	}
}

// CreateTestSpeciesResponse returns bulbasaur's decoded species document
func CreateTestSpeciesResponse() *pokeapi.SpeciesResponse {
	return &pokeapi.SpeciesResponse{
		FlavorTextEntries: []pokeapi.FlavorText{
			{FlavorText: "Bulbasaur peut survivre\ndes jours entiers.", Language: pokeapi.NamedResource{Name: "fr"}},
			{FlavorText: "A strange seed was\nplanted on its\fback at birth.", Language: pokeapi.NamedResource{Name: "en"}},
			{FlavorText: "Bulbasaur can be seen napping in bright sunlight.", Language: pokeapi.NamedResource{Name: "en"}},
		},
	}
}

// CreateTestPayloads returns a complete fetch result for bulbasaur
func CreateTestPayloads() *pokeapi.RawPayloads {
	return &pokeapi.RawPayloads{
		Pokemon:       CreateTestPokemonResponse(),
		Species:       CreateTestSpeciesResponse(),
		Portrait:      append([]byte(nil), TestPortrait...),
		ShinyPortrait: append([]byte(nil), TestShinyPortrait...),
	}
}

// CreateTestRecord returns the record bulbasaur's payloads assemble into
func CreateTestRecord() *entities.CreatureRecord {
	record, err := entities.NewCreatureRecord(entities.CreatureRecordParams{
		ID:           TestCreatureID,
		Name:         TestCreatureName,
		Types:        []string{"grass", "poison"},
		Description:  BulbasaurDescription,
		HeightMeters: 0.7,
		WeightGrams:  6900,
		Stats: entities.Stats{
			HP:             45,
			Attack:         49,
			Defense:        49,
			SpecialAttack:  65,
			SpecialDefense: 65,
			Speed:          45,
		},
		Portrait:      TestPortrait,
		ShinyPortrait: TestShinyPortrait,
	})
	if err != nil {
		panic(err)
	}
	return record
}
