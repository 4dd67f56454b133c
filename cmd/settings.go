package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/corkboard/internal/state"
	"github.com/Paintersrp/corkboard/internal/tui/settings"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"cfg", "config"},
	Short:   "Edit board and host settings interactively.",
	Long: `This command opens the settings editor: board display settings (title,
  source folder, note cap, excluded folders, extensions) and host settings
  (vault location, editor, theme, capture behavior). Changes save as you
  make them.`,
	Example: "corkboard settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.NewState()
		if err != nil {
			return err
		}
		return settings.Run(s)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}
