package plan

import "fmt"

// Physical constants for rack-unit conversions. One rack unit (U) is
// the standard 44.45 mm / 1.75 in; the weight factor is the planning
// estimate used for floor-load budgeting.
const (
	MetersPerRackUnit = 0.04445
	InchesPerRackUnit = 1.75
	KgPerRackUnit     = 4.5
)

// DataRack is an equipment rack occupying a rectangle of floor tiles.
// Its physical attributes (height, estimated weight) are pure functions
// of the rack-unit count.
//
// Construct with [NewDataRack]; the zero value is not usable.
type DataRack struct {
	id        string
	origin    Tile
	width     int
	depth     int
	rackUnits int
}

// NewDataRack creates a rack with the given footprint and U count.
// Returns [ErrInvalidConfig] if id is empty, width or depth is less
// than one tile, or rackUnits is less than one - invalid racks never
// reach a room.
func NewDataRack(id string, origin Tile, widthTiles, depthTiles, rackUnits int) (*DataRack, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: rack id must not be empty", ErrInvalidConfig)
	}
	if widthTiles < 1 || depthTiles < 1 {
		return nil, fmt.Errorf("%w: rack %s footprint %dx%d tiles", ErrInvalidConfig, id, widthTiles, depthTiles)
	}
	if rackUnits < 1 {
		return nil, fmt.Errorf("%w: rack %s has %d rack units", ErrInvalidConfig, id, rackUnits)
	}
	return &DataRack{
		id:        id,
		origin:    origin,
		width:     widthTiles,
		depth:     depthTiles,
		rackUnits: rackUnits,
	}, nil
}

// ID returns the rack identifier.
func (r *DataRack) ID() string { return r.id }

// Origin returns the top-left tile of the rack.
func (r *DataRack) Origin() Tile { return r.origin }

// WidthTiles returns the rack extent along X.
func (r *DataRack) WidthTiles() int { return r.width }

// DepthTiles returns the rack extent along Y.
func (r *DataRack) DepthTiles() int { return r.depth }

// Tiles enumerates the tiles covered by the rack.
func (r *DataRack) Tiles() []Tile {
	return footprintTiles(r.origin, r.width, r.depth)
}

func (r *DataRack) setOrigin(t Tile) { r.origin = t }

// RackUnits returns the U count.
func (r *DataRack) RackUnits() int { return r.rackUnits }

// SetRackUnits changes the U count, recomputing all derived attributes.
// Returns [ErrInvalidConfig] for counts below one; the rack is left
// unchanged on error.
func (r *DataRack) SetRackUnits(units int) error {
	if units < 1 {
		return fmt.Errorf("%w: rack %s has %d rack units", ErrInvalidConfig, r.id, units)
	}
	r.rackUnits = units
	return nil
}

// HeightMeters returns the rack height in meters (U x 0.04445).
func (r *DataRack) HeightMeters() float64 {
	return float64(r.rackUnits) * MetersPerRackUnit
}

// HeightInches returns the rack height in inches (U x 1.75).
func (r *DataRack) HeightInches() float64 {
	return float64(r.rackUnits) * InchesPerRackUnit
}

// EstimatedWeightKg returns the planning weight estimate (U x 4.5 kg).
func (r *DataRack) EstimatedWeightKg() float64 {
	return float64(r.rackUnits) * KgPerRackUnit
}

// String returns a compact description for logs.
func (r *DataRack) String() string {
	return fmt.Sprintf("DataRack(%s %s %dx%d %dU)", r.id, r.origin, r.width, r.depth, r.rackUnits)
}

var _ Footprint = (*DataRack)(nil)
