package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/corkboard/internal/editor"
	"github.com/Paintersrp/corkboard/internal/state"
)

var (
	captureFolder string
	captureOpen   bool
)

var captureCmd = &cobra.Command{
	Use:     "capture [title]",
	Aliases: []string{"c", "new"},
	Short:   "Capture a new note into the vault.",
	Long: `This command creates a new note without opening the board. The title
  becomes the filename; content can be piped in on stdin.

    corkboard capture "meeting notes"
    git log --oneline -5 | corkboard capture "release summary"`,
	Example: "corkboard capture 'grocery list'",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := state.NewState()
		if err != nil {
			return err
		}
		defer s.Close()

		var title string
		if len(args) > 0 {
			title = args[0]
		}

		var content string
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			content = strings.TrimRight(string(data), "\n")
		}

		folder := captureFolder
		if !cmd.Flags().Changed("folder") {
			folder = s.Config.CaptureFolder
		}

		rel, err := s.Vault.Create(folder, title, content)
		if err != nil {
			return err
		}
		fmt.Println("Captured", rel)

		if captureOpen || (s.Config.OpenAfterCapture && !cmd.Flags().Changed("open")) {
			return editor.OpenFromPath(s.Vault.Abs(rel))
		}
		return nil
	},
}

func init() {
	captureCmd.Flags().
		StringVarP(&captureFolder, "folder", "f", "", "vault subfolder for the new note (default is the configured capture folder)")
	captureCmd.Flags().
		BoolVarP(&captureOpen, "open", "o", false, "open the new note in the configured editor")
	rootCmd.AddCommand(captureCmd)
}
