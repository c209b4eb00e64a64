package plan

import (
	"errors"
	"math"
	"testing"
)

func TestNewDataRack_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		w, d  int
		units int
	}{
		{"empty id", "", 1, 1, 42},
		{"zero width", "r", 0, 1, 42},
		{"zero depth", "r", 1, 0, 42},
		{"zero units", "r", 1, 1, 0},
		{"negative units", "r", 1, 1, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataRack(tt.id, Tile{}, tt.w, tt.d, tt.units)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewDataRack() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestDataRack_DerivedAttributes(t *testing.T) {
	rack, err := NewDataRack("rack-1", Tile{}, 1, 1, 42)
	if err != nil {
		t.Fatalf("NewDataRack() error = %v", err)
	}

	const eps = 1e-9
	if got := rack.HeightMeters(); math.Abs(got-1.8669) > eps {
		t.Errorf("HeightMeters() = %v, want 1.8669", got)
	}
	if got := rack.HeightInches(); math.Abs(got-73.5) > eps {
		t.Errorf("HeightInches() = %v, want 73.5", got)
	}
	if got := rack.EstimatedWeightKg(); math.Abs(got-189.0) > eps {
		t.Errorf("EstimatedWeightKg() = %v, want 189.0", got)
	}
}

func TestDataRack_SetRackUnits(t *testing.T) {
	rack, err := NewDataRack("rack-1", Tile{}, 1, 1, 42)
	if err != nil {
		t.Fatalf("NewDataRack() error = %v", err)
	}

	if err := rack.SetRackUnits(24); err != nil {
		t.Fatalf("SetRackUnits(24) error = %v", err)
	}
	if got := rack.HeightMeters(); math.Abs(got-24*MetersPerRackUnit) > 1e-9 {
		t.Errorf("HeightMeters() = %v after resize, want %v", got, 24*MetersPerRackUnit)
	}

	if err := rack.SetRackUnits(0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("SetRackUnits(0) error = %v, want ErrInvalidConfig", err)
	}
	if got := rack.RackUnits(); got != 24 {
		t.Errorf("RackUnits() = %d after rejected resize, want 24", got)
	}
}

func TestDataRack_Tiles(t *testing.T) {
	rack, err := NewDataRack("rack-1", Tile{X: 1, Y: 2}, 2, 3, 42)
	if err != nil {
		t.Fatalf("NewDataRack() error = %v", err)
	}

	tiles := rack.Tiles()
	if got := len(tiles); got != 6 {
		t.Fatalf("Tiles() has %d tiles, want 6", got)
	}
	if tiles[0] != (Tile{X: 1, Y: 2}) {
		t.Errorf("Tiles()[0] = %v, want (1,2)", tiles[0])
	}
	if tiles[len(tiles)-1] != (Tile{X: 2, Y: 4}) {
		t.Errorf("last tile = %v, want (2,4)", tiles[len(tiles)-1])
	}
}

func TestNewObstacle_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		w, d   int
		height float64
	}{
		{"empty id", "", 1, 1, 1.0},
		{"zero width", "o", 0, 1, 1.0},
		{"negative height", "o", 1, 1, -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewObstacle(tt.id, Tile{}, tt.w, tt.d, tt.height)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("NewObstacle() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestNewObstacle_ZeroHeightAllowed(t *testing.T) {
	// Floor-level obstructions like cutouts have no height.
	if _, err := NewObstacle("cutout", Tile{}, 1, 1, 0); err != nil {
		t.Errorf("NewObstacle() error = %v, want nil", err)
	}
}
