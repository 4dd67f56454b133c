package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/corkboard/internal/constants"
)

// Config is the host-level configuration: where the vault lives, how
// notes open, and how the board is themed. Board display settings live
// with the collection state instead, so this file stays small and
// hand-editable.
type Config struct {
	VaultDir         string `yaml:"vaultdir"           json:"vault_dir"`
	Editor           string `yaml:"editor"             json:"editor"`
	EditorArgs       string `yaml:"editorargs"         json:"editor_args"`
	Theme            string `yaml:"theme"              json:"theme"`
	ThemeColor       string `yaml:"theme_color"        json:"theme_color"`
	CaptureFolder    string `yaml:"capture_folder"     json:"capture_folder"`
	OpenAfterCapture bool   `yaml:"open_after_capture" json:"open_after_capture"`

	home string `yaml:"-" json:"-"`
}

var validEditorNames = []string{"nvim", "obsidian", "vscode", "code", "vim", "nano", "custom"}

var ValidEditors = func() map[string]bool {
	editors := make(map[string]bool, len(validEditorNames))
	for _, editor := range validEditorNames {
		editors[editor] = true
	}

	return editors
}()

func ValidateEditor(editor string) error {
	if _, valid := ValidEditors[editor]; valid {
		return nil
	}

	return fmt.Errorf(
		"invalid editor: %q. Please choose from %s.",
		editor,
		validEditorList(),
	)
}

func validEditorList() string {
	quoted := make([]string, len(validEditorNames))
	for i, name := range validEditorNames {
		quoted[i] = fmt.Sprintf("'%s'", name)
	}

	if len(quoted) == 1 {
		return quoted[0]
	}

	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}

// EditorNames lists the accepted editor option values.
func EditorNames() []string {
	return append([]string(nil), validEditorNames...)
}

var validThemeNames = []string{"auto", "dark", "custom"}

// ThemeNames lists the accepted theme option values.
func ThemeNames() []string {
	return append([]string(nil), validThemeNames...)
}

func ValidateTheme(theme string) error {
	for _, name := range validThemeNames {
		if theme == name {
			return nil
		}
	}
	return fmt.Errorf("invalid theme: %q. Please choose from 'auto', 'dark', or 'custom'.", theme)
}

func (cfg *Config) ensureDefaults() {
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = "auto"
	}
}

// Load reads the config file under home and validates it.
func Load(home string) (*Config, error) {
	path := GetConfigPath(home)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{home: home}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.ensureDefaults()

	if cfg.Editor != "" {
		if err := ValidateEditor(cfg.Editor); err != nil {
			return nil, err
		}
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return nil, err
	}

	cfg.syncViper()

	return cfg, nil
}

func (cfg *Config) syncViper() {
	viper.Set("vaultdir", cfg.VaultDir)
	viper.Set("editor", cfg.Editor)
	viper.Set("editorargs", cfg.EditorArgs)
	viper.Set("theme", cfg.Theme)
	viper.Set("theme_color", cfg.ThemeColor)
	viper.Set("capture_folder", cfg.CaptureFolder)
	viper.Set("open_after_capture", cfg.OpenAfterCapture)
}

func (cfg *Config) Save() error {
	if cfg.Editor != "" {
		if err := ValidateEditor(cfg.Editor); err != nil {
			return err
		}
	}

	cfg.syncViper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	path := GetConfigPath(cfg.home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Home is the directory the config was loaded from.
func (cfg *Config) Home() string {
	return cfg.home
}

// StatePath is where the collection state blob lives, alongside the
// config file.
func (cfg *Config) StatePath() string {
	return filepath.Join(cfg.home, constants.ConfigDir, constants.StateFile)
}

func GetConfigPath(homeDir string) string {
	return filepath.Join(
		homeDir,
		constants.ConfigDir,
		constants.ConfigFile+"."+constants.ConfigFileType,
	)
}
