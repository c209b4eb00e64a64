// Package render draws floor plans as SVG documents.
//
// # Overview
//
// This package turns a [plan.Room] into a self-contained SVG: a tile
// grid with every rack and obstacle drawn as a labeled block, and an
// optional overlay of cable ladder runs. The output has no external
// resources and renders in any browser.
//
// # Usage
//
// [RenderSVG] takes the room plus options and returns the finished
// document:
//
//	svg := render.RenderSVG(room,
//	    render.WithTilePixels(32),
//	    render.WithLadders(ladders),
//	)
//	os.WriteFile("floor.svg", svg, 0o644)
//
// Racks are drawn with their id and U-count, obstacles with their id.
// [WithoutLabels] suppresses all text for thumbnail-sized output.
//
// # Coordinate Mapping
//
// Tiles map to squares of a fixed pixel size (48 by default). Ladder
// sections carry positions in meters, so they are scaled through the
// room's tile size to land on the same pixel grid as the tiles they
// run above.
//
// [plan.Room]: github.com/matzehuels/rackroom/pkg/plan
package render
