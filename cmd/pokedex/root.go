package main

import (
	"log/slog"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex/internal/config"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex/internal/pkg/picker"
	"github.com/KirkDiggler/pokedex/internal/redis"
	"github.com/KirkDiggler/pokedex/internal/repositories/sighting"
	"github.com/KirkDiggler/pokedex/internal/services/assembly"
)

// rootOptions holds the persistent flags. Flags left unset fall back to the
// POKEDEX_* environment and then to defaults.
type rootOptions struct {
	apiBase   string
	imageBase string
	total     uint16
	language  string
	timeout   time.Duration
	redisAddr string
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse random Pokémon from PokeAPI",
		Long: `pokedex fetches a random Pokémon from PokeAPI, downloads its sprites and
prints it as a card with its types, size, description and base stats.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiBase, "api-base", "", "PokeAPI base URL (env "+config.EnvAPIBaseURL+")")
	flags.StringVar(&opts.imageBase, "image-base", "", "Sprite base URL (env "+config.EnvImageBaseURL+")")
	flags.Uint16Var(&opts.total, "total", 0, "Catalog size to pick from (env "+config.EnvTotal+")")
	flags.StringVar(&opts.language, "language", "", "Description language tag (env "+config.EnvLanguage+")")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Per-request HTTP timeout (env "+config.EnvHTTPTimeout+")")
	flags.StringVar(&opts.redisAddr, "redis-addr", "", "Redis address for the sighting history (env "+config.EnvRedisAddr+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level, including decoded API documents")

	cmd.AddCommand(newFetchCmd(opts))
	cmd.AddCommand(newBrowseCmd(opts))
	cmd.AddCommand(newHistoryCmd(opts))

	return cmd
}

// loadConfig merges flags over the environment
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("api-base") {
		cfg.APIBaseURL = o.apiBase
	}
	if flags.Changed("image-base") {
		cfg.ImageBaseURL = o.imageBase
	}
	if flags.Changed("total") {
		vb := errors.NewValidationBuilder()
		errors.ValidateRange("--total", int(o.total), config.MinTotal, math.MaxUint16, vb)
		if err := vb.Build(); err != nil {
			return nil, err
		}
		cfg.Total = o.total
	}
	if flags.Changed("language") {
		cfg.Language = o.language
	}
	if flags.Changed("timeout") {
		cfg.HTTPTimeout = o.timeout
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = o.redisAddr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService wires the pipeline. cleanup releases the redis connection.
func (o *rootOptions) newService(cmd *cobra.Command) (pokedex.Service, func(), error) {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	client, err := pokeapi.New(&pokeapi.Config{
		APIBaseURL:   cfg.APIBaseURL,
		ImageBaseURL: cfg.ImageBaseURL,
		HTTPTimeout:  cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, nil, err
	}

	assembler, err := assembly.NewAssembler(&assembly.AssemblerConfig{Language: cfg.Language})
	if err != nil {
		return nil, nil, err
	}

	svcCfg := &pokedex.Config{
		Client:      client,
		Assembler:   assembler,
		Picker:      picker.NewDice(nil),
		IDGenerator: idgen.NewUUID("fetch"),
		Clock:       clock.New(),
		Total:       cfg.Total,
	}

	cleanup := func() {}
	if cfg.RedisAddr != "" {
		redisClient, err := redis.NewClient(cfg.RedisAddr, &redis.Options{
			DialTimeout: 2 * time.Second,
			MaxRetries:  1,
		})
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}
		cleanup = func() {
			_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
		}

		repo, err := sighting.NewRedis(&sighting.RedisConfig{Client: redisClient})
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		svcCfg.SightingRepo = repo
	}

	svc, err := pokedex.NewOrchestrator(svcCfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}
