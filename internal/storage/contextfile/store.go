// Package contextfile persists the recent conversation log as a JSON file.
package contextfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/pkg/log"
)

var _ core.ContextStore = (*FileStorage)(nil)

type FileStorage struct {
	path  string
	limit int
	mu    sync.RWMutex
}

// NewFileStorage keeps at most limit entries on Load.
func NewFileStorage(path string, limit int) *FileStorage {
	return &FileStorage{
		path:  path,
		limit: limit,
	}
}

// Load returns the last limit saved entries in chronological order.
// A missing file is an empty log.
func (s *FileStorage) Load(ctx context.Context) ([]core.ContextEntry, error) {
	s.mu.RLock()
	data, err := os.ReadFile(s.path)
	s.mu.RUnlock()

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read context file: %w", err)
	}

	var entries []core.ContextEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse context file: %w", err)
	}

	if s.limit > 0 && len(entries) > s.limit {
		entries = entries[len(entries)-s.limit:]
	}

	log.FromCtx(ctx).Info().Int("count", len(entries)).Msg("context loaded")
	return entries, nil
}

// Save overwrites the snapshot. The file is replaced atomically.
func (s *FileStorage) Save(ctx context.Context, entries []core.ContextEntry) error {
	if entries == nil {
		entries = []core.ContextEntry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create context directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write context: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace context file: %w", err)
	}

	return nil
}

func (s *FileStorage) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove context file: %w", err)
	}
	return nil
}
