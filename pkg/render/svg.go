// Package render produces SVG floor plans from a room and its ladders.
//
// The output is assembled by hand: floor plans are rectilinear tile
// grids, so there is no layout problem to solve - every element's
// position follows directly from its tile or meter coordinates. Racks
// render as filled blocks with id and U-count labels, obstacles as
// hatched gray blocks, and ladder sections as wide strokes in
// continuous coordinate space on top of the grid.
package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

// Default rendering parameters.
const (
	defaultTilePx = 48.0
	marginPx      = 24.0
)

// Palette mirrors the interactive planner: racks blue, obstacles gray,
// ladders orange.
const (
	colorFloor    = "#f7f7f5"
	colorGridLine = "#d9d9d4"
	colorRackFill = "#3b82c4"
	colorRackEdge = "#1f4e79"
	colorObstacle = "#9a9a94"
	colorLadder   = "#e08a2e"
	colorLabel    = "#ffffff"
	colorCaption  = "#41403c"
)

// SVGOption configures the renderer.
type SVGOption func(*svgRenderer)

// WithTilePixels overrides the default 48 px tile edge.
func WithTilePixels(px float64) SVGOption {
	return func(r *svgRenderer) { r.tilePx = px }
}

// WithLadders adds cable ladders to the rendering.
func WithLadders(ladders []*ladder.Ladder) SVGOption {
	return func(r *svgRenderer) { r.ladders = ladders }
}

// WithoutLabels suppresses rack id and U-count labels, useful for
// thumbnail-sized output.
func WithoutLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = false }
}

type svgRenderer struct {
	tilePx  float64
	labels  bool
	ladders []*ladder.Ladder
}

// RenderSVG renders the room as a standalone SVG document.
func RenderSVG(room *plan.Room, opts ...SVGOption) []byte {
	r := svgRenderer{tilePx: defaultTilePx, labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	width := float64(room.NumTilesX())*r.tilePx + 2*marginPx
	height := float64(room.NumTilesY())*r.tilePx + 2*marginPx

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)

	r.renderFloor(&buf, room)
	r.renderGrid(&buf, room)
	r.renderFootprints(&buf, room)
	r.renderLadders(&buf, room)
	r.renderCaption(&buf, room, height)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// tileOrigin converts a tile coordinate to pixel space.
func (r *svgRenderer) tileOrigin(t plan.Tile) (float64, float64) {
	return marginPx + float64(t.X)*r.tilePx, marginPx + float64(t.Y)*r.tilePx
}

// meterOrigin converts a continuous-space coordinate (meters) to pixel
// space using the room tile size as the scale anchor.
func (r *svgRenderer) meterOrigin(room *plan.Room, x, y float64) (float64, float64) {
	scale := r.tilePx / room.TileSize()
	return marginPx + x*scale, marginPx + y*scale
}

func (r *svgRenderer) renderFloor(buf *bytes.Buffer, room *plan.Room) {
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
		marginPx, marginPx,
		float64(room.NumTilesX())*r.tilePx, float64(room.NumTilesY())*r.tilePx,
		colorFloor, colorGridLine)
}

func (r *svgRenderer) renderGrid(buf *bytes.Buffer, room *plan.Room) {
	bottom := marginPx + float64(room.NumTilesY())*r.tilePx
	right := marginPx + float64(room.NumTilesX())*r.tilePx

	for x := 1; x < room.NumTilesX(); x++ {
		px := marginPx + float64(x)*r.tilePx
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			px, marginPx, px, bottom, colorGridLine)
	}
	for y := 1; y < room.NumTilesY(); y++ {
		py := marginPx + float64(y)*r.tilePx
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="0.5"/>`+"\n",
			marginPx, py, right, py, colorGridLine)
	}
}

func (r *svgRenderer) renderFootprints(buf *bytes.Buffer, room *plan.Room) {
	for _, f := range room.Footprints() {
		x, y := r.tileOrigin(f.Origin())
		w := float64(f.WidthTiles()) * r.tilePx
		h := float64(f.DepthTiles()) * r.tilePx

		switch v := f.(type) {
		case *plan.DataRack:
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1.5" rx="2"/>`+"\n",
				x+1, y+1, w-2, h-2, colorRackFill, colorRackEdge)
			if r.labels {
				fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
					x+w/2, y+h/2-2, r.tilePx*0.22, colorLabel, escapeText(v.ID()))
				fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%dU</text>`+"\n",
					x+w/2, y+h/2+r.tilePx*0.26, r.tilePx*0.20, colorLabel, v.RackUnits())
			}
		case *plan.Obstacle:
			fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
				x+1, y+1, w-2, h-2, colorObstacle, colorCaption)
			if r.labels {
				fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
					x+w/2, y+h/2+r.tilePx*0.08, r.tilePx*0.20, colorLabel, escapeText(v.ID()))
			}
		}
	}
}

func (r *svgRenderer) renderLadders(buf *bytes.Buffer, room *plan.Room) {
	scale := r.tilePx / room.TileSize()

	for _, l := range r.ladders {
		for _, s := range l.Sections() {
			x1, y1 := r.meterOrigin(room, s.X(), s.Y())
			x2, y2 := x1, y1
			if s.Orientation() == ladder.Horizontal {
				x2 += s.Length() * scale
			} else {
				y2 += s.Length() * scale
			}

			// Tray width in cm scaled to pixels, clamped so thin trays stay visible.
			strokeWidth := s.WidthCm() / 100 * scale
			if strokeWidth < 3 {
				strokeWidth = 3
			}

			fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-linecap="round" opacity="0.85"/>`+"\n",
				x1, y1, x2, y2, colorLadder, strokeWidth)
		}
	}
}

func (r *svgRenderer) renderCaption(buf *bytes.Buffer, room *plan.Room, height float64) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="%s">%s - %dx%d tiles, %.1fm x %.1fm, %.1fm ceiling</text>`+"\n",
		marginPx, height-8, colorCaption,
		escapeText(room.RoomID()), room.NumTilesX(), room.NumTilesY(),
		room.Length(), room.Width(), room.Height())
}

// escapeText escapes the XML special characters that can appear in ids.
func escapeText(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
