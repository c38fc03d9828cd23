package pokeapi

// NamedResource is the {"name": ...} reference object the API nests everywhere
type NamedResource struct {
	Name string `json:"name"`
}

// PokemonType is one entry of the pokemon "types" list
type PokemonType struct {
	Type NamedResource `json:"type"`
}

// PokemonStat is one entry of the pokemon "stats" list
type PokemonStat struct {
	BaseStat uint8         `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// PokemonResponse is the subset of GET /pokemon/{id} the pokedex reads
type PokemonResponse struct {
	ID     uint16        `json:"id"`
	Name   string        `json:"name"`
	Types  []PokemonType `json:"types"`
	Stats  []PokemonStat `json:"stats"`
	Height uint8         `json:"height"` // decimeters
	Weight uint16        `json:"weight"` // hectograms
}

// FlavorText is one localized description of a species
type FlavorText struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
}

// SpeciesResponse is the subset of GET /pokemon-species/{id} the pokedex reads
type SpeciesResponse struct {
	FlavorTextEntries []FlavorText `json:"flavor_text_entries"`
}

// RawPayloads bundles the four results of one fetch. It only lives until the
// assembler has turned it into a record.
type RawPayloads struct {
	Pokemon       *PokemonResponse
	Species       *SpeciesResponse
	Portrait      []byte
	ShinyPortrait []byte
}
