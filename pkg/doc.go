// Package pkg provides the core libraries for Rackroom floor planning.
//
// # Overview
//
// Rackroom models a data-center floor as a grid of square tiles and
// places equipment on it with full occupancy checking. The pkg
// directory is organized into five main areas:
//
//  1. [plan] - Domain logic (rooms, racks, obstacles, tile occupancy)
//  2. [ladder] - Cable ladder runs assembled from sections
//  3. [io] / [store] - Serialization and persistence backends
//  4. [render] - SVG floor-plan rendering
//  5. [errors] / [observability] - Error taxonomy and hooks
//
// # Architecture
//
// The typical data flow through Rackroom:
//
//	Plan file / HTTP request
//	         ↓
//	    [plan] package (placement with bounds and overlap checks)
//	         ↓
//	    [io] package (document snapshot / restore)
//	         ↓
//	    [store] package (memory, file, Redis, MongoDB)
//	         ↓
//	    [render] package (SVG output)
//
// # Quick Start
//
// Build a room, place a rack, and render it:
//
//	import (
//	    "github.com/matzehuels/rackroom/pkg/plan"
//	    "github.com/matzehuels/rackroom/pkg/render"
//	)
//
//	// 1. Create a 25x20 tile room, 3m high
//	room, _ := plan.NewRoom("dc-1", 25, 20, 3.0)
//
//	// 2. Place a 42U rack covering a 2x2 tile footprint
//	rack, _ := plan.NewDataRack("rack-01", plan.Tile{X: 2, Y: 2}, 2, 2, 42)
//	_ = room.AddFootprint(rack)
//
//	// 3. Render to SVG
//	svg := render.RenderSVG(room)
//
// # Main Packages
//
// [plan] - The placement engine. A Room tracks occupied tiles in a set
// index, validates every placement against bounds and overlaps before
// committing, and exposes repositioning that excludes a footprint's own
// tiles. DataRack derives physical height and weight from rack units.
//
// [ladder] - Cable ladder aggregation. A Ladder is an ordered list of
// Sections; TotalLength is recomputed from the live sections.
//
// [io] - JSON plan documents. Snapshot captures a room and its ladders;
// Restore rebuilds them through the constructors, re-validating every
// placement.
//
// [store] - Plan persistence behind a single Store interface with
// memory, file, Redis, and MongoDB implementations.
//
// [render] - SVG rendering of the tile grid, racks, obstacles, and
// ladder runs.
//
// [errors] - Coded errors mapping engine sentinels to stable error
// codes for the HTTP API and CLI.
//
// [observability] - Hook interfaces for placement, store, and HTTP
// instrumentation, with no-op defaults.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/plan/...      # Specific package
//	go test -run Example        # Examples only
//
// [plan]: https://pkg.go.dev/github.com/matzehuels/rackroom/pkg/plan
// [ladder]: https://pkg.go.dev/github.com/matzehuels/rackroom/pkg/ladder
// [io]: https://pkg.go.dev/github.com/matzehuels/rackroom/pkg/io
// [store]: https://pkg.go.dev/github.com/matzehuels/rackroom/pkg/store
// [render]: https://pkg.go.dev/github.com/matzehuels/rackroom/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/rackroom/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/rackroom/pkg/observability
package pkg
