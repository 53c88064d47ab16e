// Package jsonfile persists the bot's documents as flat JSON files under a
// single data directory. Every document is read and rewritten wholesale;
// writes go through a temp file and rename so a crash mid-write never leaves
// a truncated document behind.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/exile7/ExileBot_Go/internal/domain"
	"github.com/exile7/ExileBot_Go/internal/metrics"
)

// Document file names within the data directory
const (
	UserLevelsFile = "user_levels.json"
	LevelCostsFile = "levelCosts.json"
	GiveawaysFile  = "giveaway.json"
	AwakenPoolFile = "awaPool.json"
)

// Store is the flat-file implementation of the repository contracts.
// One mutex per store serializes whole-document read-modify-write cycles.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", domain.ErrStorage, err)
	}
	return &Store{dir: dir}, nil
}

// Ping reports whether the data directory is still reachable. Used by the
// readiness endpoint.
func (s *Store) Ping(ctx context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("%w: stat data dir: %v", domain.ErrStorage, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrStorage, s.dir)
	}
	return nil
}

// readDocument decodes the JSON file at name into v.
// A missing file leaves v untouched and returns false.
func (s *Store) readDocument(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		metrics.StorageErrors.Inc()
		return false, fmt.Errorf("%w: read %s: %v", domain.ErrStorage, name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		metrics.StorageErrors.Inc()
		return false, fmt.Errorf("%w: decode %s: %v", domain.ErrStorage, name, err)
	}
	return true, nil
}

// writeDocument encodes v and atomically replaces the file at name.
func (s *Store) writeDocument(name string, v any) (err error) {
	defer func() {
		if err != nil {
			metrics.StorageErrors.Inc()
		}
	}()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp for %s: %v", domain.ErrStorage, name, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: close %s: %v", domain.ErrStorage, name, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: rename %s: %v", domain.ErrStorage, name, err)
	}
	return nil
}
