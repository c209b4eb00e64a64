package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	planio "github.com/matzehuels/rackroom/pkg/io"
)

// FileStore is a file-based plan store for CLI usage.
// Plans are stored as JSON files named {room_id}.json in a data
// directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based plan store.
// If baseDir is empty, defaults to ~/.local/share/rackroom/plans/
// (honoring XDG_DATA_HOME).
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := defaultDataDir()
		if err != nil {
			return nil, err
		}
		baseDir = filepath.Join(dir, "plans")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create plan dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// defaultDataDir returns the data directory using the XDG standard.
func defaultDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "rackroom"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "rackroom"), nil
}

func (s *FileStore) planPath(roomID string) string {
	return filepath.Join(s.baseDir, roomID+".json")
}

// Load retrieves the plan for a room.
func (s *FileStore) Load(ctx context.Context, roomID string) (planio.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.planPath(roomID))
	if err != nil {
		if os.IsNotExist(err) {
			return planio.Document{}, fmt.Errorf("%w: %s", ErrNotFound, roomID)
		}
		return planio.Document{}, fmt.Errorf("read plan file: %w", err)
	}

	var doc planio.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return planio.Document{}, fmt.Errorf("parse plan %s: %w", roomID, err)
	}
	return doc, nil
}

// Save stores a plan, overwriting any previous plan for the room.
func (s *FileStore) Save(ctx context.Context, doc planio.Document) error {
	if doc.Room.RoomID == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}
	if err := os.WriteFile(s.planPath(doc.Room.RoomID), data, 0600); err != nil {
		return fmt.Errorf("write plan file: %w", err)
	}
	return nil
}

// Delete removes the plan for a room.
func (s *FileStore) Delete(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.planPath(roomID))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, roomID)
	}
	if err != nil {
		return fmt.Errorf("remove plan file: %w", err)
	}
	return nil
}

// List returns the room ids of all stored plans.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("read plan dir: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}
	return ids, nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Path returns the base directory for plan files.
func (s *FileStore) Path() string { return s.baseDir }

var _ Store = (*FileStore)(nil)
