package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/corkboard/internal/state"
	"github.com/Paintersrp/corkboard/internal/tui/board"
)

var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"b"},
	Short:   "Open the note board.",
	Long: `This command opens the interactive card board: your notes laid out as
  draggable, pinnable, colorable cards in a masonry grid. It is the same
  surface corkboard opens with no subcommand.`,
	Example: "corkboard board",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.NewState()
		if err != nil {
			return err
		}
		return board.Run(s)
	},
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
