package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex/internal/shell"
)

func newBrowseCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse random Pokémon interactively",
		Long:  `Show a random Pokémon, then another one each time Enter is pressed. Type q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, root)
		},
	}
}

func runBrowse(cmd *cobra.Command, root *rootOptions) error {
	svc, cleanup, err := root.newService(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	sh, err := shell.New(&shell.Config{Service: svc})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	input := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprintln(w, shell.Title(shell.View{State: shell.StateLoading}))
		view, _ := sh.Search(ctx)

		fmt.Fprintf(w, "== %s ==\n", shell.Title(view))
		if err := shell.RenderView(w, view); err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if view.State == shell.StateFailed {
			fmt.Fprint(w, "\n[Enter] Try again  [q] Quit: ")
		} else {
			fmt.Fprint(w, "\n[Enter] Keep searching!  [q] Quit: ")
		}

		if !input.Scan() {
			fmt.Fprintln(w)
			return input.Err()
		}
		if strings.EqualFold(strings.TrimSpace(input.Text()), "q") {
			return nil
		}
	}
}
