package assembly

import (
	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
)

// Assembler turns the raw results of one fetch into a CreatureRecord.
// Assembly is all-or-nothing and has no hidden state: the same payloads
// always produce an identical record.
//
//go:generate mockgen -destination=mock/mock_assembler.go -package=assemblymock github.com/KirkDiggler/pokedex/internal/services/assembly Assembler
type Assembler interface {
	// Assemble builds the record.
	// Returns errors.DescriptionUnavailable when no flavor text matches the configured language.
	// Returns errors.MalformedPayload when the payloads cannot satisfy the record invariants.
	Assemble(payloads *pokeapi.RawPayloads) (*entities.CreatureRecord, error)
}
