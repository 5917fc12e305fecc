package cart

import (
	"encoding/json"
	"fmt"
	"os"
)

// Storage persists cart snapshots between sessions.
type Storage interface {
	Save(snapshot []byte) error
	// Load returns the last saved snapshot, or (nil, nil) if none exists.
	Load() ([]byte, error)
}

// snapshot is the persisted cart state. The totals are written for
// inspection only; they are recomputed on load and never trusted, so a
// corrupted or hand-edited snapshot cannot skew the derived values.
type snapshot struct {
	Items      []Item  `json:"items"`
	TotalItems int     `json:"totalItems"`
	TotalPrice float64 `json:"totalPrice"`
}

func saveSnapshot(storage Storage, items []Item, totalItems int, totalPrice float64) error {
	data, err := json.Marshal(snapshot{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal cart snapshot: %w", err)
	}
	return storage.Save(data)
}

func loadSnapshot(storage Storage) ([]Item, error) {
	data, err := storage.Load()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart snapshot: %w", err)
	}
	return snap.Items, nil
}

// FileStorage persists cart snapshots to a file on disk.
type FileStorage struct {
	path string
}

// NewFileStorage creates a file-backed Storage at the given path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Save writes the snapshot to the file.
func (f *FileStorage) Save(snapshot []byte) error {
	if err := os.WriteFile(f.path, snapshot, 0o644); err != nil {
		return fmt.Errorf("failed to write cart snapshot: %w", err)
	}
	return nil
}

// Load reads the last snapshot from the file, or (nil, nil) if none exists.
func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}
	return data, nil
}
