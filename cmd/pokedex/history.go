package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/orchestrators/pokedex"
	"github.com/KirkDiggler/pokedex/internal/shell"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently seen Pokémon",
		Long:  `List the most recent sightings recorded in redis. Requires --redis-addr.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, cleanup, err := root.newService(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := svc.ListSightings(cmd.Context(), &pokedex.ListSightingsInput{Limit: limit})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Sightings) == 0 {
				fmt.Fprintln(w, "No sightings yet")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SEEN\tID\tNAME\tFETCH")
			for _, s := range out.Sightings {
				fmt.Fprintf(tw, "%s\t#%s\t%s\t%s\n", s.SeenAt.Format(time.RFC3339), s.ID, shell.DisplayName(s.Name), s.FetchID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Number of sightings to show, 0 for all")

	return cmd
}
