package collection

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// persistedState is the on-disk shape of the collection state.
type persistedState struct {
	Pinned   []string          `yaml:"pinned"`
	Order    []string          `yaml:"order"`
	Colors   map[string]string `yaml:"colors"`
	Settings Settings          `yaml:"settings"`
}

// Repository loads and durably saves the collection state blob. The file
// format is opaque to the store.
type Repository interface {
	Load() (*persistedState, error)
	Save(*persistedState) error
}

// FileRepository persists the collection state as a YAML file.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load returns the last saved state, or nil on first run.
func (r *FileRepository) Load() (*persistedState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read board state: %w", err)
	}

	var state persistedState
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse board state: %w", err)
	}

	return &state, nil
}

func (r *FileRepository) Save(state *persistedState) error {
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode board state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write board state: %w", err)
	}

	return nil
}
