package sighting

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/pokedex/internal/errors"
	redisclient "github.com/KirkDiggler/pokedex/internal/redis"
)

const (
	// DefaultKey is the redis list holding the history
	DefaultKey = "pokedex:sightings"
	// DefaultMaxEntries bounds the list length
	DefaultMaxEntries = 100
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client     redisclient.Client
	Key        string
	MaxEntries int64
}

// Validate ensures all required dependencies are provided and fills defaults
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if c.Key == "" {
		c.Key = DefaultKey
	}
	if c.MaxEntries == 0 {
		c.MaxEntries = DefaultMaxEntries
	}
	if c.MaxEntries < 0 {
		return errors.InvalidArgumentf("max entries must be positive, got %d", c.MaxEntries)
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	key        string
	maxEntries int64
}

// NewRedis creates a sighting repository backed by a capped redis list
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client:     cfg.Client,
		key:        cfg.Key,
		maxEntries: cfg.MaxEntries,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Record pushes the sighting to the head of the list and trims the tail
func (r *redisRepository) Record(ctx context.Context, input RecordInput) (*RecordOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.Entity == nil {
		vb.RequiredField("Entity")
	} else {
		errors.ValidateRequired("Entity.ID", input.Entity.GetID(), vb)
		errors.ValidateRequired("Entity.Type", input.Entity.GetType(), vb)
	}
	errors.ValidateRequired("Name", input.Name, vb)
	errors.ValidateRequired("FetchID", input.FetchID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	seen := Sighting{
		Type:    input.Entity.GetType(),
		ID:      input.Entity.GetID(),
		Name:    input.Name,
		FetchID: input.FetchID,
		SeenAt:  input.SeenAt,
	}
	data, err := json.Marshal(seen)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sighting")
	}

	pipe := r.client.TxPipeline()
	push := pipe.LPush(ctx, r.key, data)
	pipe.LTrim(ctx, r.key, 0, r.maxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to record sighting %s %s", seen.Type, seen.ID)
	}

	length := push.Val()
	if length > r.maxEntries {
		length = r.maxEntries
	}
	return &RecordOutput{Length: length}, nil
}

// List returns up to Limit sightings, newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgumentf("limit must not be negative, got %d", input.Limit)
	}

	stop := int64(-1)
	if input.Limit > 0 {
		stop = int64(input.Limit) - 1
	}

	values, err := r.client.LRange(ctx, r.key, 0, stop).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sightings")
	}

	sightings := make([]Sighting, 0, len(values))
	for i, v := range values {
		var s Sighting
		if err := json.Unmarshal([]byte(v), &s); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal sighting at index %d", i)
		}
		sightings = append(sightings, s)
	}

	return &ListOutput{Sightings: sightings}, nil
}
