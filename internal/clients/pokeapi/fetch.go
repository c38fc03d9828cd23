package pokeapi

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex/internal/errors"
)

// Fetch issues the four requests for one creature concurrently and waits for
// all of them. The first failure cancels the others and is returned as is;
// no partial payloads are returned.
func Fetch(ctx context.Context, c Client, id uint16) (*RawPayloads, error) {
	if c == nil {
		return nil, errors.InvalidArgument("client is required")
	}
	if id == 0 {
		return nil, errors.InvalidArgument("id must be positive")
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)

	// each goroutine owns exactly one field
	var out RawPayloads
	g.Go(func() error {
		b, err := c.GetSprite(gctx, id, SpriteNormal)
		out.Portrait = b
		return err
	})
	g.Go(func() error {
		b, err := c.GetSprite(gctx, id, SpriteShiny)
		out.ShinyPortrait = b
		return err
	})
	g.Go(func() error {
		p, err := c.GetPokemon(gctx, id)
		out.Pokemon = p
		return err
	})
	g.Go(func() error {
		s, err := c.GetSpecies(gctx, id)
		out.Species = s
		return err
	})

	if err := g.Wait(); err != nil {
		slog.Warn("Fetch failed",
			"id", id,
			"operation", errors.GetMeta(err)["operation"],
			"elapsed", time.Since(start),
			"error", err,
		)
		if errors.GetCode(err) != errors.CodeFetchFailed {
			return nil, errors.WrapWithCodef(err, errors.CodeFetchFailed, "failed to fetch creature %d", id)
		}
		return nil, err
	}

	if out.Pokemon == nil || out.Species == nil {
		return nil, errors.FetchFailedf(nil, "creature %d: empty response", id)
	}

	slog.Debug("Fetch complete",
		"id", id,
		"portrait_bytes", len(out.Portrait),
		"shiny_portrait_bytes", len(out.ShinyPortrait),
		"elapsed", time.Since(start),
	)
	return &out, nil
}
