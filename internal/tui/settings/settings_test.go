package settings

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Paintersrp/corkboard/internal/collection"
	"github.com/Paintersrp/corkboard/internal/config"
)

func newFixture(t *testing.T) (*config.Config, *collection.Store) {
	t.Helper()
	home := t.TempDir()

	path := config.GetConfigPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("vaultdir: /tmp/vault\neditor: nvim\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := config.Load(home)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	store := collection.NewStore(collection.NewFileRepository(filepath.Join(home, "board.yaml")), nil)
	return cfg, store
}

func TestBuildItemsUsesPlaceholdersForEmptyValues(t *testing.T) {
	cfg, store := newFixture(t)

	items := buildItems(cfg, store)
	byTitle := make(map[string]string, len(items))
	for _, item := range items {
		li := item.(ListItem)
		byTitle[li.Title()] = li.Description()
	}

	if byTitle[settingFolder] != "all folders" {
		t.Fatalf("expected folder placeholder, got %q", byTitle[settingFolder])
	}
	if byTitle[settingExcludedFolders] != "none" {
		t.Fatalf("expected excluded placeholder, got %q", byTitle[settingExcludedFolders])
	}
	if byTitle[settingOpenAfterCapture] != "no" {
		t.Fatalf("expected open-after-capture off, got %q", byTitle[settingOpenAfterCapture])
	}
	if byTitle[settingMaxNotes] != "100" {
		t.Fatalf("expected default max notes, got %q", byTitle[settingMaxNotes])
	}
}

func TestApplyInputRoutesBoardSettingsToStore(t *testing.T) {
	cfg, store := newFixture(t)
	m := NewListModel(cfg, store)

	m.applyInput(settingTitle, "Scratchpad")
	m.applyInput(settingFolder, "/inbox/")
	m.applyInput(settingExtensions, "md, TXT")

	got := store.Settings()
	if got.Title != "Scratchpad" {
		t.Fatalf("expected title update, got %q", got.Title)
	}
	if got.Folder != "inbox" {
		t.Fatalf("expected trimmed folder, got %q", got.Folder)
	}
	if !reflect.DeepEqual(got.Extensions, []string{"md", "txt"}) {
		t.Fatalf("expected normalized extensions, got %v", got.Extensions)
	}
}

func TestApplyInputRejectsBadMaxNotes(t *testing.T) {
	cfg, store := newFixture(t)
	m := NewListModel(cfg, store)

	m.applyInput(settingMaxNotes, "not-a-number")
	if got := store.Settings().MaxNotes; got != 100 {
		t.Fatalf("expected rejected input to keep prior value, got %d", got)
	}

	m.applyInput(settingMaxNotes, "25")
	if got := store.Settings().MaxNotes; got != 25 {
		t.Fatalf("expected accepted input to apply, got %d", got)
	}
}

func TestApplyInputPersistsHostSettings(t *testing.T) {
	cfg, store := newFixture(t)
	m := NewListModel(cfg, store)

	m.applyInput(settingCaptureFolder, " inbox/ ")
	if cfg.CaptureFolder != "inbox" {
		t.Fatalf("expected trimmed capture folder, got %q", cfg.CaptureFolder)
	}

	reloaded, err := config.Load(cfg.Home())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.CaptureFolder != "inbox" {
		t.Fatalf("expected capture folder saved to disk, got %q", reloaded.CaptureFolder)
	}
}

func TestSplitListDropsEmptyEntries(t *testing.T) {
	got := splitList(" a, ,b ,, c ")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected split result %v", got)
	}
}
