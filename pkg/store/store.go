// Package store provides persistence backends for plan documents.
//
// This package defines the [Store] interface with implementations for
// different deployments:
//   - memory: In-memory storage for development/testing
//   - file: File-based storage for CLI usage
//   - redis: Redis-backed storage for server deployments
//   - mongo: MongoDB-backed storage for server deployments
//
// All backends persist the same payload: the JSON plan document from
// pkg/io, keyed by room id. No backend invents its own wire format.
//
// # Usage
//
//	// CLI
//	st, err := store.NewFileStore("")  // Uses ~/.local/share/rackroom/plans/
//
//	// Server
//	st := store.NewRedisStoreWithClient(redisClient)
//
//	doc := io.Snapshot(room, ladders)
//	if err := st.Save(ctx, doc); err != nil {
//	    return err
//	}
package store

import (
	"context"
	"errors"

	planio "github.com/matzehuels/rackroom/pkg/io"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when no plan exists for the room id.
	ErrNotFound = errors.New("plan not found")

	// ErrInvalidKey is returned for empty room ids.
	ErrInvalidKey = errors.New("invalid room id")
)

// Store is the interface for plan persistence backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load retrieves the plan document for a room.
	// Returns ErrNotFound if no plan is stored under that id.
	Load(ctx context.Context, roomID string) (planio.Document, error)

	// Save stores a plan document, overwriting any previous plan for
	// the same room id.
	Save(ctx context.Context, doc planio.Document) error

	// Delete removes the plan for a room.
	// Returns ErrNotFound if no plan is stored under that id.
	Delete(ctx context.Context, roomID string) error

	// List returns the room ids of all stored plans in unspecified
	// order.
	List(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// planKey builds the backend key for a room id. All backends share the
// same namespace shape so plans are portable between them.
func planKey(roomID string) string {
	return "plan:" + roomID
}
