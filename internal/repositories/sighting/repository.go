// Package sighting keeps a short history of the creatures the pokedex has shown
package sighting

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sightingmock github.com/KirkDiggler/pokedex/internal/repositories/sighting Repository

// Sighting is one successfully displayed entity. Only identifying data is
// kept; records are always fetched fresh.
type Sighting struct {
	Type    string    `json:"type"`
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	FetchID string    `json:"fetch_id"`
	SeenAt  time.Time `json:"seen_at"`
}

// RecordInput describes the entity that was shown. Its identity comes from
// core.Entity.
type RecordInput struct {
	Entity  core.Entity
	Name    string
	FetchID string
	SeenAt  time.Time
}

// RecordOutput reports the history length after the write
type RecordOutput struct {
	Length int64
}

// ListInput selects the most recent sightings
type ListInput struct {
	// Limit of 0 returns every stored sighting
	Limit int
}

// ListOutput holds sightings newest first
type ListOutput struct {
	Sightings []Sighting
}

// Repository stores sightings
type Repository interface {
	Record(ctx context.Context, input RecordInput) (*RecordOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}
