package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// SnapshotStore persists a single spec as one JSON blob. Writes are
// last-write-wins full overwrites; there is no history.
type SnapshotStore[T ValidatingSpec] struct {
	path string

	mu sync.Mutex
}

func NewSnapshotStore[T ValidatingSpec](path string) *SnapshotStore[T] {
	return &SnapshotStore[T]{path: path}
}

// Load reads the snapshot if one exists. The second return value reports
// whether a snapshot was found; a missing file is not an error.
func (s *SnapshotStore[T]) Load() (T, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("reading snapshot: %w", err)
	}

	var val T
	if err := json.Unmarshal(data, &val); err != nil {
		return zero, false, fmt.Errorf("unmarshalling snapshot: %w", err)
	}

	if err := val.Validate(); err != nil {
		return zero, false, fmt.Errorf("validating snapshot: %w", err)
	}

	return val, true, nil
}

func (s *SnapshotStore[T]) Save(val T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshalling snapshot: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating snapshot directory: %w", err)
	}

	return atomicWrite(s.path, data, 0644)
}

// Clear removes the snapshot. Clearing a snapshot that does not exist is
// not an error.
func (s *SnapshotStore[T]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing snapshot: %w", err)
	}
	return nil
}
