package cmd

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/corkboard/internal/fzf"
	"github.com/Paintersrp/corkboard/internal/state"
)

var pinCmd = &cobra.Command{
	Use:     "pin [query]",
	Aliases: []string{"p"},
	Short:   "Toggle a note's pin from the command line.",
	Long: `This command toggles the pinned flag on a note, the same flag the board
  surfaces with p. Notes are selected with a fuzzy finder; an optional
  query argument pre-fills it.`,
	Example: "corkboard pin standup",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.NewState()
		if err != nil {
			return err
		}
		defer s.Close()

		var query string
		if len(args) > 0 {
			query = args[0]
		}

		finder := fzf.NewFuzzyFinder(s.Vault, s.Store, "Toggle a pin")
		rel, err := finder.Run(query)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Println("No note selected")
			return nil
		}
		if err != nil {
			return err
		}

		if s.Store.TogglePin(rel) {
			fmt.Println("Pinned", rel)
		} else {
			fmt.Println("Unpinned", rel)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
