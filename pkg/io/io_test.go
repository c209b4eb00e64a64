package io

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

func buildPlan(t *testing.T) (*plan.Room, []*ladder.Ladder) {
	t.Helper()

	room, err := plan.NewRoom("dc-1", 10, 8, 3.0)
	if err != nil {
		t.Fatalf("NewRoom() error = %v", err)
	}
	rack, err := plan.NewDataRack("rack-1", plan.Tile{X: 2, Y: 2}, 2, 2, 42)
	if err != nil {
		t.Fatalf("NewDataRack() error = %v", err)
	}
	if err := room.AddFootprint(rack); err != nil {
		t.Fatalf("AddFootprint(rack) error = %v", err)
	}
	pillar, err := plan.NewObstacle("pillar-1", plan.Tile{X: 7, Y: 6}, 1, 1, 3.0)
	if err != nil {
		t.Fatalf("NewObstacle() error = %v", err)
	}
	if err := room.AddFootprint(pillar); err != nil {
		t.Fatalf("AddFootprint(obstacle) error = %v", err)
	}

	run, err := ladder.NewLadder("main-run")
	if err != nil {
		t.Fatalf("NewLadder() error = %v", err)
	}
	sec, err := ladder.NewSection("s1", 0, 0.3, 2.5, ladder.Horizontal, ladder.WithBend(90), ladder.WithMaterial("steel"))
	if err != nil {
		t.Fatalf("NewSection() error = %v", err)
	}
	if err := run.AddSection(sec); err != nil {
		t.Fatalf("AddSection() error = %v", err)
	}

	return room, []*ladder.Ladder{run}
}

func TestSnapshot(t *testing.T) {
	room, ladders := buildPlan(t)

	doc := Snapshot(room, ladders)

	if doc.Room.RoomID != "dc-1" || doc.Room.NumTilesX != 10 || doc.Room.NumTilesY != 8 {
		t.Errorf("room record = %+v", doc.Room)
	}
	if len(doc.Racks) != 1 || len(doc.Obstacles) != 1 || len(doc.Ladders) != 1 {
		t.Fatalf("record counts = %d racks, %d obstacles, %d ladders",
			len(doc.Racks), len(doc.Obstacles), len(doc.Ladders))
	}

	rack := doc.Racks[0]
	if rack.RackUnits != 42 {
		t.Errorf("rack units = %d, want 42", rack.RackUnits)
	}
	if math.Abs(rack.HeightMeters-1.8669) > 1e-9 {
		t.Errorf("echoed height = %v, want 1.8669", rack.HeightMeters)
	}
	if math.Abs(doc.Ladders[0].TotalLength-2.5) > 1e-9 {
		t.Errorf("echoed total length = %v, want 2.5", doc.Ladders[0].TotalLength)
	}
}

func TestSnapshot_IndependentOfMutations(t *testing.T) {
	room, ladders := buildPlan(t)
	doc := Snapshot(room, ladders)

	if err := room.RemoveFootprint("rack-1"); err != nil {
		t.Fatalf("RemoveFootprint() error = %v", err)
	}
	if len(doc.Racks) != 1 {
		t.Error("snapshot changed by later room mutation")
	}
}

func TestRoundTrip(t *testing.T) {
	room, ladders := buildPlan(t)
	doc := Snapshot(room, ladders)

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	decoded, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	room2, ladders2, err := Restore(decoded)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}

	if room2.RoomID() != room.RoomID() {
		t.Errorf("restored room id = %q, want %q", room2.RoomID(), room.RoomID())
	}
	if got, want := len(room2.OccupiedTiles()), len(room.OccupiedTiles()); got != want {
		t.Errorf("restored occupancy = %d tiles, want %d", got, want)
	}
	rack, ok := room2.Footprint("rack-1")
	if !ok {
		t.Fatal("restored room missing rack-1")
	}
	if rack.Origin() != (plan.Tile{X: 2, Y: 2}) {
		t.Errorf("restored rack origin = %v, want (2,2)", rack.Origin())
	}
	if len(ladders2) != 1 || math.Abs(ladders2[0].TotalLength()-2.5) > 1e-9 {
		t.Errorf("restored ladders = %v", ladders2)
	}
	sec, ok := ladders2[0].Section("s1")
	if !ok {
		t.Fatal("restored ladder missing section s1")
	}
	if sec.Material() != "steel" || sec.BendDegree() != 90 {
		t.Errorf("restored section = %v %v", sec.Material(), sec.BendDegree())
	}
}

func TestRestore_ZeroTileSizeDefaults(t *testing.T) {
	doc := Document{
		Room: RoomRecord{RoomID: "dc-1", NumTilesX: 5, NumTilesY: 5, HeightMeters: 3.0},
	}

	room, _, err := Restore(doc)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if got := room.TileSize(); got != plan.DefaultTileSize {
		t.Errorf("TileSize() = %v, want %v", got, plan.DefaultTileSize)
	}
}

func TestRestore_RevalidatesPlacements(t *testing.T) {
	// A hand-edited document with overlapping racks must be rejected.
	doc := Document{
		Room: RoomRecord{RoomID: "dc-1", NumTilesX: 5, NumTilesY: 5, HeightMeters: 3.0},
		Racks: []RackRecord{
			{ID: "a", X: 0, Y: 0, WidthTiles: 2, DepthTiles: 2, RackUnits: 42},
			{ID: "b", X: 1, Y: 1, WidthTiles: 2, DepthTiles: 2, RackUnits: 42},
		},
	}

	_, _, err := Restore(doc)
	if !errors.Is(err, plan.ErrOverlap) {
		t.Errorf("Restore() error = %v, want ErrOverlap", err)
	}
}

func TestRestore_InvalidRoom(t *testing.T) {
	doc := Document{Room: RoomRecord{RoomID: "", NumTilesX: 5, NumTilesY: 5, HeightMeters: 3.0}}
	if _, _, err := Restore(doc); !errors.Is(err, plan.ErrInvalidConfig) {
		t.Errorf("Restore() error = %v, want ErrInvalidConfig", err)
	}
}

func TestExportImportJSON(t *testing.T) {
	room, ladders := buildPlan(t)
	path := filepath.Join(t.TempDir(), "plan.json")

	if err := ExportJSON(Snapshot(room, ladders), path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	doc, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if doc.Room.RoomID != "dc-1" {
		t.Errorf("imported room id = %q, want dc-1", doc.Room.RoomID)
	}
}

func TestImportJSON_Missing(t *testing.T) {
	if _, err := ImportJSON(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("ImportJSON() of missing file succeeded, want error")
	}
}
