// Package pokedex implements the fetch-and-assemble unit of work behind the
// pokedex shell
package pokedex

//go:generate mockgen -destination=mock/mock_service.go -package=pokedexmock github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex/internal/pkg/picker"
	"github.com/KirkDiggler/pokedex/internal/repositories/sighting"
	"github.com/KirkDiggler/pokedex/internal/services/assembly"
)

// DefaultTotal is the size of the national catalog the default API serves
const DefaultTotal uint16 = 893

// Service defines the pokedex operations
type Service interface {
	FetchRecord(ctx context.Context, input *FetchRecordInput) (*FetchRecordOutput, error)
	ListSightings(ctx context.Context, input *ListSightingsInput) (*ListSightingsOutput, error)
}

// Config holds the dependencies for the pokedex orchestrator
type Config struct {
	Client      pokeapi.Client
	Assembler   assembly.Assembler
	Picker      picker.Picker
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// SightingRepo is optional. Without it sightings are not recorded.
	SightingRepo sighting.Repository

	// Total is the catalog size. Explicit ids are accepted in [1, Total].
	Total uint16
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Assembler == nil {
		vb.RequiredField("Assembler")
	}
	if c.Picker == nil {
		vb.RequiredField("Picker")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Total == 0 {
		c.Total = DefaultTotal
	}
	if c.Total < 2 {
		vb.InvalidField("Total", "must be at least 2")
	}

	return vb.Build()
}

type orchestrator struct {
	client       pokeapi.Client
	assembler    assembly.Assembler
	picker       picker.Picker
	idGen        idgen.Generator
	clock        clock.Clock
	sightingRepo sighting.Repository
	total        uint16
}

// NewOrchestrator creates a new pokedex orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:       cfg.Client,
		assembler:    cfg.Assembler,
		picker:       cfg.Picker,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		sightingRepo: cfg.SightingRepo,
		total:        cfg.Total,
	}, nil
}

// FetchRecord picks an identifier when none is given, fetches the four
// payloads and assembles them into one record
func (o *orchestrator) FetchRecord(ctx context.Context, input *FetchRecordInput) (*FetchRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	id := input.ID
	if id == 0 {
		picked, err := o.picker.Pick(o.total)
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick creature")
		}
		id = picked
	}
	if id > o.total {
		return nil, errors.InvalidArgumentf("id %d outside [1, %d]", id, o.total).
			WithMeta("id", id)
	}

	fetchID := o.idGen.Generate()
	log := slog.With("fetch_id", fetchID, "id", id)
	log.DebugContext(ctx, "fetching creature")

	payloads, err := pokeapi.Fetch(ctx, o.client, id)
	if err != nil {
		log.WarnContext(ctx, "fetch failed", "error", err)
		return nil, errors.Wrap(err, "failed to fetch creature").
			WithMeta("fetch_id", fetchID)
	}

	record, err := o.assembler.Assemble(payloads)
	if err != nil {
		log.WarnContext(ctx, "assembly failed", "error", err)
		return nil, errors.Wrap(err, "failed to assemble creature").
			WithMeta("fetch_id", fetchID)
	}

	// id is already within [1, Total], so a matching record is too
	if record.ID() != id {
		log.WarnContext(ctx, "payload describes another creature", "record_id", record.ID())
		return nil, errors.MalformedPayloadf("requested creature %d, payload describes %d", id, record.ID()).
			WithMetaMap(map[string]interface{}{
				"fetch_id":  fetchID,
				"id":        id,
				"record_id": record.ID(),
			})
	}

	log.InfoContext(ctx, "creature fetched", "name", record.Name())
	o.recordSighting(ctx, log, fetchID, record)

	return &FetchRecordOutput{
		Record:  record,
		FetchID: fetchID,
	}, nil
}

func (o *orchestrator) recordSighting(ctx context.Context, log *slog.Logger, fetchID string, record *entities.CreatureRecord) {
	if o.sightingRepo == nil {
		return
	}

	_, err := o.sightingRepo.Record(ctx, sighting.RecordInput{
		Entity:  record,
		Name:    record.Name(),
		FetchID: fetchID,
		SeenAt:  o.clock.Now(),
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to record sighting",
			"entity_type", record.GetType(),
			"entity_id", record.GetID(),
			"error", err,
		)
	}
}

// ListSightings returns the most recent sightings, newest first
func (o *orchestrator) ListSightings(ctx context.Context, input *ListSightingsInput) (*ListSightingsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if o.sightingRepo == nil {
		return nil, errors.FailedPrecondition("sighting history is not configured")
	}

	out, err := o.sightingRepo.List(ctx, sighting.ListInput{Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sightings")
	}

	return &ListSightingsOutput{Sightings: out.Sightings}, nil
}
