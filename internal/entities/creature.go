// Package entities provides the core data structures for the pokedex.
package entities

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// EntityTypeCreature is the rpg-toolkit entity type of a CreatureRecord
const EntityTypeCreature = "creature"

// CreatureRecord is the unified result of one fetch. It is built once by
// NewCreatureRecord and cannot be modified afterwards: slices handed in are
// copied and accessors return copies.
type CreatureRecord struct {
	id            uint16
	name          string
	types         []string
	description   string
	heightMeters  float64
	weightGrams   float64
	stats         Stats
	portrait      []byte
	shinyPortrait []byte
}

// CreatureRecordParams carries the already converted values for a record
type CreatureRecordParams struct {
	ID            uint16
	Name          string
	Types         []string
	Description   string
	HeightMeters  float64
	WeightGrams   float64
	Stats         Stats
	Portrait      []byte
	ShinyPortrait []byte
}

// NewCreatureRecord validates params and returns an immutable record.
// Returns errors.MalformedPayload when the values break a record invariant.
func NewCreatureRecord(p CreatureRecordParams) (*CreatureRecord, error) {
	if p.ID == 0 {
		return nil, errors.MalformedPayloadf("creature id must be positive")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, errors.MalformedPayloadf("creature %d has no name", p.ID)
	}
	if len(p.Types) == 0 || len(p.Types) > 2 {
		return nil, errors.MalformedPayloadf("creature %d has %d types, want 1 or 2", p.ID, len(p.Types)).
			WithMeta("types", p.Types)
	}
	if p.Description == "" {
		return nil, errors.MalformedPayloadf("creature %d has an empty description", p.ID)
	}
	for _, s := range AllStats {
		v := p.Stats.Get(s)
		if v < 0 || math.IsNaN(v) {
			return nil, errors.MalformedPayloadf("creature %d has invalid %s stat %v", p.ID, s, v)
		}
	}

	return &CreatureRecord{
		id:            p.ID,
		name:          p.Name,
		types:         append([]string(nil), p.Types...),
		description:   p.Description,
		heightMeters:  p.HeightMeters,
		weightGrams:   p.WeightGrams,
		stats:         p.Stats,
		portrait:      append([]byte(nil), p.Portrait...),
		shinyPortrait: append([]byte(nil), p.ShinyPortrait...),
	}, nil
}

// ID returns the catalog number of the creature
func (r *CreatureRecord) ID() uint16 { return r.id }

// Name returns the creature's API name, e.g. "mr-mime"
func (r *CreatureRecord) Name() string { return r.name }

// Types returns a copy of the creature's types in API order
func (r *CreatureRecord) Types() []string { return append([]string(nil), r.types...) }

// Description returns the sanitized flavor text
func (r *CreatureRecord) Description() string { return r.description }

// HeightMeters returns the height in meters
func (r *CreatureRecord) HeightMeters() float64 { return r.heightMeters }

// WeightGrams returns the weight in grams
func (r *CreatureRecord) WeightGrams() float64 { return r.weightGrams }

// Stats returns the six base stats
func (r *CreatureRecord) Stats() Stats { return r.stats }

// Stat returns a single base stat
func (r *CreatureRecord) Stat(s Stat) float64 { return r.stats.Get(s) }

// Portrait returns a copy of the normal sprite bytes
func (r *CreatureRecord) Portrait() []byte { return append([]byte(nil), r.portrait...) }

// ShinyPortrait returns a copy of the shiny sprite bytes
func (r *CreatureRecord) ShinyPortrait() []byte { return append([]byte(nil), r.shinyPortrait...) }

// GetID implements core.Entity
func (r *CreatureRecord) GetID() string {
	return strconv.FormatUint(uint64(r.id), 10)
}

// GetType implements core.Entity
func (r *CreatureRecord) GetType() string {
	return EntityTypeCreature
}

// creatureJSON is the wire shape used by MarshalJSON. Images are reported
// by size only; callers that need the bytes use the accessors.
type creatureJSON struct {
	ID                 uint16   `json:"id"`
	Name               string   `json:"name"`
	Types              []string `json:"types"`
	Description        string   `json:"description"`
	HeightMeters       float64  `json:"height_meters"`
	WeightGrams        float64  `json:"weight_grams"`
	Stats              Stats    `json:"stats"`
	PortraitBytes      int      `json:"portrait_bytes"`
	ShinyPortraitBytes int      `json:"shiny_portrait_bytes"`
}

// MarshalJSON implements json.Marshaler
func (r *CreatureRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(creatureJSON{
		ID:                 r.id,
		Name:               r.name,
		Types:              r.types,
		Description:        r.description,
		HeightMeters:       r.heightMeters,
		WeightGrams:        r.weightGrams,
		Stats:              r.stats,
		PortraitBytes:      len(r.portrait),
		ShinyPortraitBytes: len(r.shinyPortrait),
	})
}

// Compile-time check that records can be handed to rpg-toolkit
var _ core.Entity = (*CreatureRecord)(nil)
