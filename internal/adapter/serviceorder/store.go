package serviceorder

import (
	"fmt"
	"os"
	"path/filepath"

	"darwin-nic/internal/port"
	"darwin-nic/internal/types"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the restore slot as a YAML document.
type FileStore struct {
	path  string
	files port.FileManager
}

var _ port.SnapshotStore = (*FileStore)(nil)

// NewFileStore creates a store writing to path through files.
func NewFileStore(path string, files port.FileManager) *FileStore {
	return &FileStore{path: path, files: files}
}

// Path returns the slot location.
func (s *FileStore) Path() string {
	return s.path
}

// Save overwrites the slot.
func (s *FileStore) Save(snapshot types.Snapshot) error {
	data, err := yaml.Marshal(&snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.files.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	if err := s.files.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}

// Load returns the slot, or nil when it has never been written.
func (s *FileStore) Load() (*types.Snapshot, error) {
	if !s.files.FileExists(s.path) {
		return nil, nil
	}
	data, err := s.files.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	var snapshot types.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", s.path, err)
	}
	if len(snapshot.Order) == 0 {
		return nil, nil
	}
	return &snapshot, nil
}

// MemoryStore is a process-local slot used for dry runs and tests.
type MemoryStore struct {
	snapshot *types.Snapshot
}

var _ port.SnapshotStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Save(snapshot types.Snapshot) error {
	snapshot.Order = snapshot.Order.Clone()
	s.snapshot = &snapshot
	return nil
}

func (s *MemoryStore) Load() (*types.Snapshot, error) {
	if s.snapshot == nil {
		return nil, nil
	}
	out := *s.snapshot
	out.Order = out.Order.Clone()
	return &out, nil
}

// DefaultSnapshotPath returns $XDG_CONFIG_HOME/darwin-nic/service-order.yaml,
// falling back to ~/.config.
func DefaultSnapshotPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "darwin-nic", "service-order.yaml")
}
