package plan

import (
	"fmt"
	"slices"
)

// Tile is a single cell of the room floor grid, addressed by 0-indexed
// integer coordinates. X grows to the right, Y grows downward, matching
// the top-left origin used by renderers.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the tile in "(x,y)" form for logs and error messages.
func (t Tile) String() string {
	return fmt.Sprintf("(%d,%d)", t.X, t.Y)
}

// TileSet is a set of tiles. It backs the room occupancy index so that
// membership checks, unions and differences run in O(1) per tile.
// The zero value is not usable - use NewTileSet.
type TileSet map[Tile]struct{}

// NewTileSet creates a set containing the given tiles.
func NewTileSet(tiles ...Tile) TileSet {
	s := make(TileSet, len(tiles))
	for _, t := range tiles {
		s[t] = struct{}{}
	}
	return s
}

// Contains reports whether t is in the set.
func (s TileSet) Contains(t Tile) bool {
	_, ok := s[t]
	return ok
}

// Add inserts the given tiles into the set.
func (s TileSet) Add(tiles ...Tile) {
	for _, t := range tiles {
		s[t] = struct{}{}
	}
}

// Remove deletes the given tiles from the set. Tiles not present are
// ignored, giving set-difference semantics.
func (s TileSet) Remove(tiles ...Tile) {
	for _, t := range tiles {
		delete(s, t)
	}
}

// Len returns the number of tiles in the set.
func (s TileSet) Len() int { return len(s) }

// Tiles returns the set contents sorted by Y then X. Sorting makes
// snapshots deterministic for tests and serialization.
func (s TileSet) Tiles() []Tile {
	out := make([]Tile, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	slices.SortFunc(out, CompareTiles)
	return out
}

// CompareTiles orders tiles row-major: by Y first, then X.
func CompareTiles(a, b Tile) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
