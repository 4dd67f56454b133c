// Package cmd is the cobra command surface for corkboard.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/corkboard/internal/config"
	"github.com/Paintersrp/corkboard/internal/constants"
	"github.com/Paintersrp/corkboard/internal/state"
	"github.com/Paintersrp/corkboard/internal/tui/board"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:     "corkboard",
	Aliases: []string{"cork", "cb"},
	Short:   "Pin, color, and arrange your notes on a terminal corkboard.",
	Long: heredoc.Doc(`
		Corkboard turns a folder of markdown notes into an interactive board of
		cards. Pin the notes you care about, drag cards into your own order,
		color-code them, and filter by tag, all without leaving the terminal.

		Running corkboard with no subcommand opens the board.
	`),
	Example: "corkboard · corkboard list · corkboard capture 'standup notes'",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.NewState()
		if err != nil {
			return err
		}
		return board.Run(s)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(ensureConfigExists, initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.corkboard/cfg.yaml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := state.GetHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, constants.ConfigDir))
		viper.SetConfigName(constants.ConfigFile)
		viper.SetConfigType(constants.ConfigFileType)
	}

	viper.ReadInConfig()
}

func ensureConfigExists() {
	home, err := state.GetHomeDir()
	cobra.CheckErr(err)

	if err := config.EnsureConfigExists(home); err != nil {
		var initErr *config.ConfigInitError
		if errors.As(err, &initErr) {
			fmt.Println("Error:", initErr.Error())
			fmt.Println("hint: set vaultdir and editor in", config.GetConfigPath(home))
			os.Exit(1)
		}
		cobra.CheckErr(err)
	}
}
