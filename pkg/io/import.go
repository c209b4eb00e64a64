package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

// ReadJSON decodes a plan document from r. It validates the JSON shape
// only; use [Restore] to rebuild live objects with full invariant
// checking. ReadJSON does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	return doc, nil
}

// ImportJSON reads a JSON file at path and returns the decoded document.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Restore rebuilds a live room and its ladders from a document.
//
// Every rack, obstacle and section goes back through its constructor,
// and every placement back through [plan.Room.AddFootprint], so Restore
// returns the same sentinel errors as interactive placement would:
// [plan.ErrInvalidConfig] for corrupt dimensions, [plan.ErrOutOfBounds]
// or [plan.ErrOverlap] for a document whose placements no longer fit,
// [plan.ErrDuplicateID] for repeated ids. Errors are wrapped with the
// id of the offending record.
//
// A tile size of zero in the document means "default" (0.6 m), so
// documents written by older exports restore cleanly.
func Restore(doc Document) (*plan.Room, []*ladder.Ladder, error) {
	opts := []plan.RoomOption{}
	if doc.Room.TileSize > 0 {
		opts = append(opts, plan.WithTileSize(doc.Room.TileSize))
	}
	room, err := plan.NewRoom(doc.Room.RoomID, doc.Room.NumTilesX, doc.Room.NumTilesY, doc.Room.HeightMeters, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("room %s: %w", doc.Room.RoomID, err)
	}

	for _, rec := range doc.Racks {
		rack, err := plan.NewDataRack(rec.ID, plan.Tile{X: rec.X, Y: rec.Y}, rec.WidthTiles, rec.DepthTiles, rec.RackUnits)
		if err != nil {
			return nil, nil, fmt.Errorf("rack %s: %w", rec.ID, err)
		}
		if err := room.AddFootprint(rack); err != nil {
			return nil, nil, fmt.Errorf("rack %s: %w", rec.ID, err)
		}
	}

	for _, rec := range doc.Obstacles {
		obstacle, err := plan.NewObstacle(rec.ID, plan.Tile{X: rec.X, Y: rec.Y}, rec.WidthTiles, rec.DepthTiles, rec.HeightMeters)
		if err != nil {
			return nil, nil, fmt.Errorf("obstacle %s: %w", rec.ID, err)
		}
		if err := room.AddFootprint(obstacle); err != nil {
			return nil, nil, fmt.Errorf("obstacle %s: %w", rec.ID, err)
		}
	}

	ladders := make([]*ladder.Ladder, 0, len(doc.Ladders))
	for _, rec := range doc.Ladders {
		l, err := ladder.NewLadder(rec.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("ladder %s: %w", rec.ID, err)
		}
		for _, sec := range rec.Sections {
			opts := []ladder.SectionOption{}
			if sec.BendDegree != 0 {
				opts = append(opts, ladder.WithBend(sec.BendDegree))
			}
			if sec.WidthCm > 0 {
				opts = append(opts, ladder.WithWidth(sec.WidthCm))
			}
			if sec.Material != "" {
				opts = append(opts, ladder.WithMaterial(sec.Material))
			}
			s, err := ladder.NewSection(sec.ID, sec.X, sec.Y, sec.Length, ladder.Orientation(sec.Orientation), opts...)
			if err != nil {
				return nil, nil, fmt.Errorf("ladder %s section %s: %w", rec.ID, sec.ID, err)
			}
			if err := l.AddSection(s); err != nil {
				return nil, nil, fmt.Errorf("ladder %s section %s: %w", rec.ID, sec.ID, err)
			}
		}
		ladders = append(ladders, l)
	}

	return room, ladders, nil
}
