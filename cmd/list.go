package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/corkboard/internal/state"
	"github.com/Paintersrp/corkboard/internal/tui/sidebar"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"l", "ls"},
	Short:   "Open the compact list view of the board.",
	Long: `This command opens the board as a compact scrolling list instead of a
  card grid. Pinned notes sort first, and the same pin and tag filters
  apply. Useful in narrow terminals or over slow connections.`,
	Example: "corkboard list",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.NewState()
		if err != nil {
			return err
		}
		return sidebar.Run(s)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
