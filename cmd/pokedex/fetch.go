package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/entities"
	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex/internal/shell"
)

type fetchOptions struct {
	id         uint16
	jsonOutput bool
	imagesDir  string
}

func newFetchCmd(root *rootOptions) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one Pokémon and print its card",
		Long:  `Fetch a random Pokémon, or the one given by --id, and print it as a card.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetch(cmd, root, opts)
		},
	}

	cmd.Flags().Uint16Var(&opts.id, "id", 0, "Pokémon id to fetch instead of a random one")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&opts.imagesDir, "save-images", "", "Directory to write the two sprites to")

	return cmd
}

func runFetch(cmd *cobra.Command, root *rootOptions, opts *fetchOptions) error {
	svc, cleanup, err := root.newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.FetchRecord(cmd.Context(), &pokedex.FetchRecordInput{ID: opts.id})
	if err != nil {
		return err
	}

	if opts.imagesDir != "" {
		if err := saveImages(opts.imagesDir, out.Record); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if opts.jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out.Record); err != nil {
			return errors.Wrap(err, "failed to marshal record to JSON")
		}
		return nil
	}

	return shell.RenderCard(w, out.Record)
}

// saveImages writes <id>.png and <id>-shiny.png into dir
func saveImages(dir string, record *entities.CreatureRecord) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create %s", dir)
	}

	files := map[string][]byte{
		fmt.Sprintf("%d.png", record.ID()):       record.Portrait(),
		fmt.Sprintf("%d-shiny.png", record.ID()): record.ShinyPortrait(),
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return nil
}
