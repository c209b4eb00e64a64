package plan

import "fmt"

// Obstacle is an immovable barrier on the floor: a support column,
// ventilation duct, or similar structure. It blocks the tiles it covers
// exactly like a rack does; its height is descriptive only and plays no
// part in occupancy (the grid is strictly 2D).
//
// Construct with [NewObstacle]; the zero value is not usable.
type Obstacle struct {
	id           string
	origin       Tile
	width        int
	depth        int
	heightMeters float64
}

// NewObstacle creates an obstacle with the given footprint.
// Returns [ErrInvalidConfig] if id is empty, width or depth is less
// than one tile, or heightMeters is negative.
func NewObstacle(id string, origin Tile, widthTiles, depthTiles int, heightMeters float64) (*Obstacle, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: obstacle id must not be empty", ErrInvalidConfig)
	}
	if widthTiles < 1 || depthTiles < 1 {
		return nil, fmt.Errorf("%w: obstacle %s footprint %dx%d tiles", ErrInvalidConfig, id, widthTiles, depthTiles)
	}
	if heightMeters < 0 {
		return nil, fmt.Errorf("%w: obstacle %s height %.2fm", ErrInvalidConfig, id, heightMeters)
	}
	return &Obstacle{
		id:           id,
		origin:       origin,
		width:        widthTiles,
		depth:        depthTiles,
		heightMeters: heightMeters,
	}, nil
}

// ID returns the obstacle identifier.
func (o *Obstacle) ID() string { return o.id }

// Origin returns the top-left tile of the obstacle.
func (o *Obstacle) Origin() Tile { return o.origin }

// WidthTiles returns the obstacle extent along X.
func (o *Obstacle) WidthTiles() int { return o.width }

// DepthTiles returns the obstacle extent along Y.
func (o *Obstacle) DepthTiles() int { return o.depth }

// HeightMeters returns the descriptive height in meters.
func (o *Obstacle) HeightMeters() float64 { return o.heightMeters }

// Tiles enumerates the tiles covered by the obstacle.
func (o *Obstacle) Tiles() []Tile {
	return footprintTiles(o.origin, o.width, o.depth)
}

func (o *Obstacle) setOrigin(t Tile) { o.origin = t }

// String returns a compact description for logs.
func (o *Obstacle) String() string {
	return fmt.Sprintf("Obstacle(%s %s %dx%d)", o.id, o.origin, o.width, o.depth)
}

var _ Footprint = (*Obstacle)(nil)
