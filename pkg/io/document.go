package io

import (
	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

// Document is the serializable form of a full floor plan.
type Document struct {
	Room      RoomRecord       `json:"room"`
	Racks     []RackRecord     `json:"racks"`
	Obstacles []ObstacleRecord `json:"obstacles"`
	Ladders   []LadderRecord   `json:"ladders"`
}

// RoomRecord carries the room dimensions and identity.
type RoomRecord struct {
	RoomID       string  `json:"room_id"`
	NumTilesX    int     `json:"num_tiles_x"`
	NumTilesY    int     `json:"num_tiles_y"`
	TileSize     float64 `json:"tile_size_m"`
	HeightMeters float64 `json:"height_m"`
}

// RackRecord carries one data rack. The derived attributes are echoed
// for consumers reading the JSON directly; Restore recomputes them from
// RackUnits and ignores the stored values.
type RackRecord struct {
	ID         string `json:"id"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	WidthTiles int    `json:"width_tiles"`
	DepthTiles int    `json:"depth_tiles"`
	RackUnits  int    `json:"rack_units"`

	HeightMeters      float64 `json:"height_m,omitempty"`
	HeightInches      float64 `json:"height_in,omitempty"`
	EstimatedWeightKg float64 `json:"weight_kg_estimated,omitempty"`
}

// ObstacleRecord carries one obstacle.
type ObstacleRecord struct {
	ID           string  `json:"id"`
	X            int     `json:"x"`
	Y            int     `json:"y"`
	WidthTiles   int     `json:"width_tiles"`
	DepthTiles   int     `json:"depth_tiles"`
	HeightMeters float64 `json:"height_m"`
}

// LadderRecord carries one cable ladder with its sections in build order.
type LadderRecord struct {
	ID          string          `json:"id"`
	Sections    []SectionRecord `json:"sections"`
	TotalLength float64         `json:"total_length_m,omitempty"`
}

// SectionRecord carries one ladder section.
type SectionRecord struct {
	ID          string  `json:"id"`
	X           float64 `json:"x_m"`
	Y           float64 `json:"y_m"`
	Length      float64 `json:"length_m"`
	Orientation string  `json:"orientation"`
	BendDegree  float64 `json:"bend_degree,omitempty"`
	WidthCm     float64 `json:"width_cm"`
	Material    string  `json:"material"`
}

// Snapshot captures the current state of a room and its ladders as a
// document. The snapshot is independent of the inputs and safe to hold
// after further mutations.
func Snapshot(room *plan.Room, ladders []*ladder.Ladder) Document {
	doc := Document{
		Room: RoomRecord{
			RoomID:       room.RoomID(),
			NumTilesX:    room.NumTilesX(),
			NumTilesY:    room.NumTilesY(),
			TileSize:     room.TileSize(),
			HeightMeters: room.Height(),
		},
		Racks:     []RackRecord{},
		Obstacles: []ObstacleRecord{},
		Ladders:   []LadderRecord{},
	}

	for _, f := range room.Footprints() {
		switch v := f.(type) {
		case *plan.DataRack:
			doc.Racks = append(doc.Racks, RackRecord{
				ID:                v.ID(),
				X:                 v.Origin().X,
				Y:                 v.Origin().Y,
				WidthTiles:        v.WidthTiles(),
				DepthTiles:        v.DepthTiles(),
				RackUnits:         v.RackUnits(),
				HeightMeters:      v.HeightMeters(),
				HeightInches:      v.HeightInches(),
				EstimatedWeightKg: v.EstimatedWeightKg(),
			})
		case *plan.Obstacle:
			doc.Obstacles = append(doc.Obstacles, ObstacleRecord{
				ID:           v.ID(),
				X:            v.Origin().X,
				Y:            v.Origin().Y,
				WidthTiles:   v.WidthTiles(),
				DepthTiles:   v.DepthTiles(),
				HeightMeters: v.HeightMeters(),
			})
		}
	}

	for _, l := range ladders {
		rec := LadderRecord{
			ID:          l.ID(),
			Sections:    []SectionRecord{},
			TotalLength: l.TotalLength(),
		}
		for _, s := range l.Sections() {
			rec.Sections = append(rec.Sections, SectionRecord{
				ID:          s.ID(),
				X:           s.X(),
				Y:           s.Y(),
				Length:      s.Length(),
				Orientation: string(s.Orientation()),
				BendDegree:  s.BendDegree(),
				WidthCm:     s.WidthCm(),
				Material:    s.Material(),
			})
		}
		doc.Ladders = append(doc.Ladders, rec)
	}

	return doc
}
