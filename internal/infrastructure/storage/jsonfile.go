// Package storage persists the country-keyed snapshot, either as the
// historical JSON data file or in Postgres.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wikiweird/internal/domain"
	"wikiweird/internal/ports"
)

// JSONFileStore keeps the snapshot in a single JSON file laid out exactly
// like the historical data.json (country → article list).
type JSONFileStore struct {
	path string
}

var _ ports.SnapshotStore = (*JSONFileStore)(nil)

// NewJSONFileStore wires a store around the given file path.
func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: path}
}

// Save writes the snapshot atomically (temp file + rename).
func (s *JSONFileStore) Save(_ context.Context, snapshot domain.Snapshot) error {
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load reads the snapshot; a missing file is an empty snapshot, not an error.
func (s *JSONFileStore) Load(_ context.Context) (domain.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return domain.Snapshot{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return snapshot, nil
}

// LastUpdated reports the data file's modification time; zero when the file
// does not exist yet.
func (s *JSONFileStore) LastUpdated(_ context.Context) (time.Time, error) {
	info, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("stat snapshot: %w", err)
	}
	return info.ModTime(), nil
}

// Describe names the backing file for health reporting.
func (s *JSONFileStore) Describe() string {
	return s.path
}
