// Package editor builds and runs the command that opens a note in the
// user's configured editor. Terminal editors are launched in the
// foreground; GUI targets are fire-and-forget.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/Paintersrp/corkboard/internal/pathutil"
)

// Launch represents the command necessary to start an editor along with
// whether the caller should wait for the process to finish before
// resuming the UI.
type Launch struct {
	Cmd  *exec.Cmd
	Wait bool
}

type editorCommand struct {
	command string
	args    []string
	wait    bool
	silence bool
}

func (cmd editorCommand) launch() *Launch {
	c := exec.Command(cmd.command, cmd.args...)
	if cmd.silence {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	}
	return &Launch{Cmd: c, Wait: cmd.wait}
}

// LaunchForPath prepares an editor command for the provided absolute path
// without starting it. Callers decide whether to run it synchronously
// based on the returned Wait flag.
func LaunchForPath(path string) (*Launch, error) {
	editor := strings.TrimSpace(viper.GetString("editor"))
	cmd, err := buildEditorCommand(path, editor)
	if err != nil {
		return nil, err
	}
	return cmd.launch(), nil
}

// OpenFromPath opens the note and, for foreground editors, blocks until
// the editor exits.
func OpenFromPath(path string) error {
	launch, err := LaunchForPath(path)
	if err != nil {
		return err
	}

	if launch.Wait {
		launch.Cmd.Stdin = os.Stdin
		launch.Cmd.Stdout = os.Stdout
		launch.Cmd.Stderr = os.Stderr
	}

	if err := launch.Cmd.Start(); err != nil {
		return fmt.Errorf("failed to start editor: %w", err)
	}

	if !launch.Wait {
		return nil
	}

	if err := launch.Cmd.Wait(); err != nil {
		return fmt.Errorf("editor exited with error: %w", err)
	}

	return nil
}

func buildEditorCommand(path string, editor string) (*editorCommand, error) {
	switch editor {
	case "nvim":
		return buildNvimCommand(path), nil
	case "vim":
		return &editorCommand{command: "vim", args: []string{path}, wait: true}, nil
	case "nano":
		return &editorCommand{command: "nano", args: []string{path}, wait: true}, nil
	case "vscode", "code":
		return buildVSCodeCommand(path)
	case "obsidian":
		return buildObsidianCommand(path)
	case "custom":
		return buildCustomCommand(path)
	case "":
		return nil, fmt.Errorf("editor not configured")
	default:
		return nil, fmt.Errorf("unsupported editor: %s", editor)
	}
}

func buildNvimCommand(path string) *editorCommand {
	args := []string{}
	if extra := strings.TrimSpace(viper.GetString("editorargs")); extra != "" {
		args = append(args, strings.Fields(extra)...)
	}
	args = append(args, path)
	return &editorCommand{command: "nvim", args: args, wait: true}
}

// buildCustomCommand treats editorargs as the full command line, with the
// note path appended.
func buildCustomCommand(path string) (*editorCommand, error) {
	fields := strings.Fields(strings.TrimSpace(viper.GetString("editorargs")))
	if len(fields) == 0 {
		return nil, fmt.Errorf("custom editor requires editorargs to hold the command")
	}
	return &editorCommand{command: fields[0], args: append(fields[1:], path), wait: true}, nil
}

func buildVSCodeCommand(path string) (*editorCommand, error) {
	switch runtime.GOOS {
	case "darwin":
		return &editorCommand{command: "open", args: []string{"-n", "-b", "com.microsoft.VSCode", "--args", path}, wait: false, silence: true}, nil
	case "linux":
		return &editorCommand{command: "code", args: []string{path}, wait: false, silence: true}, nil
	case "windows":
		return &editorCommand{command: "cmd", args: []string{"/c", "code", path}, wait: false, silence: true}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

func buildObsidianCommand(path string) (*editorCommand, error) {
	fullVaultDir := viper.GetString("vaultdir")
	normalizedVaultDir := pathutil.NormalizePath(fullVaultDir)
	vaultName := filepath.Base(normalizedVaultDir)

	relativePath, err := pathutil.VaultRelative(fullVaultDir, path)
	if err != nil {
		return nil, fmt.Errorf("unable to determine relative path for obsidian: %w", err)
	}

	obsidianURI := fmt.Sprintf("obsidian://open?vault=%s&file=%s", vaultName, relativePath)

	switch runtime.GOOS {
	case "darwin":
		return &editorCommand{command: "open", args: []string{obsidianURI}, wait: false, silence: true}, nil
	case "linux":
		return &editorCommand{command: "xdg-open", args: []string{obsidianURI}, wait: false, silence: true}, nil
	case "windows":
		return &editorCommand{command: "cmd", args: []string{"/c", "start", obsidianURI}, wait: false, silence: true}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
