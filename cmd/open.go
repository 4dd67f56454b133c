package cmd

import (
	"errors"
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/corkboard/internal/editor"
	"github.com/Paintersrp/corkboard/internal/fzf"
	"github.com/Paintersrp/corkboard/internal/state"
)

var openCmd = &cobra.Command{
	Use:     "open [query]",
	Aliases: []string{"o"},
	Short:   "Open a note in the configured editor.",
	Long: `This command opens a note without going through the board. Notes are
  presented with a fuzzy finder and a rendered preview; the selection pipes
  into the configured editor. An optional query argument pre-fills the
  finder.`,
	Example: "corkboard open or corkboard open groceries",
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

		finder := fzf.NewFuzzyFinder(s.Vault, s.Store, "Open a note")
		rel, err := finder.Run(query)
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Println("No note selected")
			return nil
		}
		if err != nil {
			return err
		}

		return editor.OpenFromPath(s.Vault.Abs(rel))
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
