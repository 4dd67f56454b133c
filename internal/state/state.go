// Package state wires the application together: config, vault, collection
// store, pipeline, and the file-system watcher, plus the debounced refresh
// scheduler the TUIs share.
package state

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Paintersrp/corkboard/internal/collection"
	"github.com/Paintersrp/corkboard/internal/config"
	"github.com/Paintersrp/corkboard/internal/pathutil"
	"github.com/Paintersrp/corkboard/internal/pipeline"
	"github.com/Paintersrp/corkboard/internal/vault"
)

type State struct {
	Config   *config.Config
	Store    *collection.Store
	Vault    *vault.Vault
	Pipeline *pipeline.Builder
	Watcher  *VaultWatcher
	Logger   *slog.Logger
	Home     string
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(home)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()

	store := collection.NewStore(collection.NewFileRepository(cfg.StatePath()), logger)
	v := vault.New(cfg.VaultDir, logger)

	watcher, err := NewVaultWatcher(cfg.VaultDir, func(rel string) bool {
		return store.Settings().AllowsExtension(pathutil.Ext(rel))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to watch vault: %w", err)
	}

	return &State{
		Config:   cfg,
		Store:    store,
		Vault:    v,
		Pipeline: pipeline.New(v, store, logger),
		Watcher:  watcher,
		Logger:   logger,
		Home:     home,
	}, nil
}

// HandleWatcherMsg applies the store reconciliation a watcher message
// implies. The caller still schedules the debounced refresh.
func (s *State) HandleWatcherMsg(msg any) {
	switch m := msg.(type) {
	case NoteRenamedMsg:
		s.Store.ReconcileRename(m.Old, m.New)
	case NoteRemovedMsg:
		s.Store.ReconcileDelete(m.Path)
	}
}

func (s *State) Close() error {
	return s.Watcher.Close()
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return home, nil
}
