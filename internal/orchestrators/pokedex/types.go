package pokedex

import (
	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/repositories/sighting"
)

// FetchRecordInput defines the request for fetching one creature
type FetchRecordInput struct {
	// ID selects the creature. Zero picks one at random.
	ID uint16
}

// FetchRecordOutput defines the response for fetching one creature
type FetchRecordOutput struct {
	Record *entities.CreatureRecord
	// FetchID correlates the log lines of one run
	FetchID string
}

// ListSightingsInput defines the request for reading the history
type ListSightingsInput struct {
	Limit int
}

// ListSightingsOutput defines the response for reading the history
type ListSightingsOutput struct {
	Sightings []sighting.Sighting
}
