// Package plan provides the tile-based placement engine for data-center
// floor planning.
//
// # Overview
//
// A [Room] models a rectangular equipment room as a discrete grid of
// floor tiles (0.6 m square by default). Objects that occupy floor
// space — equipment racks ([DataRack]) and fixed barriers ([Obstacle]) —
// implement the [Footprint] interface and are placed onto the grid
// through the Room, which is the single authority for collision
// detection and occupancy bookkeeping.
//
// # Basic Usage
//
// Create a room with [NewRoom], construct footprints with [NewDataRack]
// or [NewObstacle], and place them with [Room.AddFootprint]:
//
//	room, _ := plan.NewRoom("DC-MAIN", 10, 10, 3.0)
//	rack, _ := plan.NewDataRack("RACK-01", plan.Tile{X: 2, Y: 3}, 2, 2, 42)
//	if err := room.AddFootprint(rack); err != nil {
//	    // out of bounds or overlapping - room state is unchanged
//	}
//
// Placement operations are atomic: they either commit fully or leave
// the room untouched. Rejections (out of bounds, overlap, unknown id)
// are reported through sentinel errors, never panics — a user clicking
// an occupied tile is an expected outcome, not a fault.
//
// # Occupancy Model
//
// The room keeps an occupancy index as a set of tiles rather than a
// full grid scan, so placement and removal cost is proportional to the
// footprint area, not the room size. At every point in time the index
// equals the union of all registered footprints' tiles, the footprints
// are pairwise disjoint, and every tile lies inside the grid.
//
// # Concurrency
//
// Room instances are not safe for concurrent use. Embeddings that serve
// multiple actors (for example the HTTP server in internal/server) must
// serialize mutating calls per room; the engine itself is single-actor
// by design.
//
// Cable ladders live in continuous coordinate space and never interact
// with the tile grid; see the ladder package.
//
// [ladder]: github.com/matzehuels/rackroom/pkg/ladder
package plan
