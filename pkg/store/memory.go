package store

import (
	"context"
	"fmt"
	"sync"

	planio "github.com/matzehuels/rackroom/pkg/io"
)

// MemoryStore is an in-memory plan store for development and testing.
type MemoryStore struct {
	mu    sync.RWMutex
	plans map[string]planio.Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{plans: make(map[string]planio.Document)}
}

// Load retrieves the plan for a room.
func (s *MemoryStore) Load(ctx context.Context, roomID string) (planio.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.plans[roomID]
	if !ok {
		return planio.Document{}, fmt.Errorf("%w: %s", ErrNotFound, roomID)
	}
	return doc, nil
}

// Save stores a plan, overwriting any previous plan for the room.
func (s *MemoryStore) Save(ctx context.Context, doc planio.Document) error {
	if doc.Room.RoomID == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[doc.Room.RoomID] = doc
	return nil
}

// Delete removes the plan for a room.
func (s *MemoryStore) Delete(ctx context.Context, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.plans[roomID]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, roomID)
	}
	delete(s.plans, roomID)
	return nil
}

// List returns all stored room ids.
func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.plans))
	for id := range s.plans {
		ids = append(ids, id)
	}
	return ids, nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
