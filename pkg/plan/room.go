package plan

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidConfig is returned by constructors when dimensions,
	// rack units or other configuration values are out of range.
	// Objects are rejected at construction so an invalid configuration
	// can never reach a room.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrOutOfBounds is returned by [Room.AddFootprint] and
	// [Room.RepositionFootprint] when any tile of the candidate
	// footprint lies outside the room grid.
	ErrOutOfBounds = errors.New("footprint out of bounds")

	// ErrOverlap is returned by [Room.AddFootprint] and
	// [Room.RepositionFootprint] when any tile of the candidate
	// footprint is already occupied by another footprint.
	ErrOverlap = errors.New("footprint overlaps occupied tiles")

	// ErrDuplicateID is returned by [Room.AddFootprint] when a
	// footprint with the same id is already registered.
	ErrDuplicateID = errors.New("duplicate footprint ID")

	// ErrNotFound is returned by [Room.RemoveFootprint] and
	// [Room.RepositionFootprint] when no footprint with the given id
	// is registered.
	ErrNotFound = errors.New("footprint not found")
)

// DefaultTileSize is the standard raised-floor tile edge in meters.
const DefaultTileSize = 0.6

// Room models a rectangular equipment room as a grid of floor tiles and
// owns every footprint placed on it. All placement mutations pass
// through the room, which validates bounds and collisions before
// committing; a failed operation leaves the room exactly as it was.
//
// Room is not safe for concurrent use. Construct with [NewRoom].
type Room struct {
	roomID    string
	numTilesX int
	numTilesY int
	tileSize  float64
	height    float64

	occupied   TileSet
	footprints []Footprint // insertion order, for deterministic listings
	byID       map[string]Footprint
}

// RoomOption configures optional room parameters.
type RoomOption func(*Room)

// WithTileSize overrides the default 0.6 m tile edge.
func WithTileSize(meters float64) RoomOption {
	return func(r *Room) { r.tileSize = meters }
}

// NewRoom creates an empty room of numTilesX by numTilesY tiles with
// the given ceiling height in meters. Returns [ErrInvalidConfig] if the
// id is empty or any dimension is not positive.
func NewRoom(roomID string, numTilesX, numTilesY int, heightMeters float64, opts ...RoomOption) (*Room, error) {
	if roomID == "" {
		return nil, fmt.Errorf("%w: room id must not be empty", ErrInvalidConfig)
	}
	if numTilesX < 1 || numTilesY < 1 {
		return nil, fmt.Errorf("%w: room %s grid %dx%d tiles", ErrInvalidConfig, roomID, numTilesX, numTilesY)
	}
	if heightMeters <= 0 {
		return nil, fmt.Errorf("%w: room %s height %.2fm", ErrInvalidConfig, roomID, heightMeters)
	}

	r := &Room{
		roomID:    roomID,
		numTilesX: numTilesX,
		numTilesY: numTilesY,
		tileSize:  DefaultTileSize,
		height:    heightMeters,
		occupied:  NewTileSet(),
		byID:      make(map[string]Footprint),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.tileSize <= 0 {
		return nil, fmt.Errorf("%w: room %s tile size %.2fm", ErrInvalidConfig, roomID, r.tileSize)
	}
	return r, nil
}

// RoomID returns the room identifier.
func (r *Room) RoomID() string { return r.roomID }

// NumTilesX returns the grid extent along X.
func (r *Room) NumTilesX() int { return r.numTilesX }

// NumTilesY returns the grid extent along Y.
func (r *Room) NumTilesY() int { return r.numTilesY }

// TileSize returns the tile edge in meters.
func (r *Room) TileSize() float64 { return r.tileSize }

// Height returns the ceiling height in meters.
func (r *Room) Height() float64 { return r.height }

// Length returns the physical X extent in meters.
func (r *Room) Length() float64 { return float64(r.numTilesX) * r.tileSize }

// Width returns the physical Y extent in meters.
func (r *Room) Width() float64 { return float64(r.numTilesY) * r.tileSize }

// FloorArea returns the floor area in square meters.
func (r *Room) FloorArea() float64 { return r.Length() * r.Width() }

// Volume returns the room volume in cubic meters.
func (r *Room) Volume() float64 { return r.FloorArea() * r.height }

// inBounds reports whether t lies inside the grid.
func (r *Room) inBounds(t Tile) bool {
	return t.X >= 0 && t.X < r.numTilesX && t.Y >= 0 && t.Y < r.numTilesY
}

// validate checks every candidate tile for bounds and collisions.
// Tiles in exclude are treated as free; RepositionFootprint passes the
// footprint's own current tiles there so a move may overlap itself.
// The check mutates nothing, which is what makes commit-or-reject
// atomic for callers.
func (r *Room) validate(tiles []Tile, exclude TileSet) error {
	for _, t := range tiles {
		if !r.inBounds(t) {
			return fmt.Errorf("%w: tile %s outside %dx%d grid", ErrOutOfBounds, t, r.numTilesX, r.numTilesY)
		}
		if r.occupied.Contains(t) && !exclude.Contains(t) {
			return fmt.Errorf("%w: tile %s", ErrOverlap, t)
		}
	}
	return nil
}

// AddFootprint registers f and marks its tiles as occupied.
//
// The candidate is validated fully before anything is committed: every
// tile must lie inside the grid and none may already be occupied, and
// the id must be unused. On any rejection ([ErrOutOfBounds],
// [ErrOverlap], [ErrDuplicateID], [ErrInvalidConfig] for degenerate
// dimensions) the registry and occupancy index are left untouched.
func (r *Room) AddFootprint(f Footprint) error {
	if f == nil {
		return fmt.Errorf("%w: nil footprint", ErrInvalidConfig)
	}
	if f.WidthTiles() < 1 || f.DepthTiles() < 1 {
		return fmt.Errorf("%w: footprint %s is %dx%d tiles", ErrInvalidConfig, f.ID(), f.WidthTiles(), f.DepthTiles())
	}
	if _, exists := r.byID[f.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, f.ID())
	}

	tiles := f.Tiles()
	if err := r.validate(tiles, nil); err != nil {
		return err
	}

	r.occupied.Add(tiles...)
	r.footprints = append(r.footprints, f)
	r.byID[f.ID()] = f
	return nil
}

// RemoveFootprint unregisters the footprint with the given id and
// clears its tiles from the occupancy index using set-difference
// semantics. Returns [ErrNotFound] if the id is not registered; the
// room is unchanged in that case.
func (r *Room) RemoveFootprint(id string) error {
	f, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r.occupied.Remove(f.Tiles()...)
	delete(r.byID, id)
	r.footprints = slices.DeleteFunc(r.footprints, func(p Footprint) bool {
		return p.ID() == id
	})
	return nil
}

// RepositionFootprint moves a registered footprint to a new origin.
//
// The candidate tiles are validated as if the footprint were being
// re-added, except that its own current tiles are excluded from the
// overlap check: a footprint may slide across space it already holds,
// but never onto tiles held by another footprint. On success the
// occupancy index and the footprint's position update together; on
// failure ([ErrNotFound], [ErrOutOfBounds], [ErrOverlap]) nothing
// changes.
func (r *Room) RepositionFootprint(id string, to Tile) error {
	f, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	current := f.Tiles()
	candidate := footprintTiles(to, f.WidthTiles(), f.DepthTiles())
	if err := r.validate(candidate, NewTileSet(current...)); err != nil {
		return err
	}

	r.occupied.Remove(current...)
	r.occupied.Add(candidate...)
	f.setOrigin(to)
	return nil
}

// IsTileFree reports whether t is inside the grid and unoccupied.
// Out-of-bounds tiles are not free; this is never an error so callers
// can probe hover positions without branching.
func (r *Room) IsTileFree(t Tile) bool {
	return r.inBounds(t) && !r.occupied.Contains(t)
}

// OccupiedTiles returns a sorted snapshot of every occupied tile.
func (r *Room) OccupiedTiles() []Tile {
	return r.occupied.Tiles()
}

// FreeTiles returns a sorted snapshot of every unoccupied tile: the
// full grid minus the occupancy index.
func (r *Room) FreeTiles() []Tile {
	free := make([]Tile, 0, r.numTilesX*r.numTilesY-r.occupied.Len())
	for y := 0; y < r.numTilesY; y++ {
		for x := 0; x < r.numTilesX; x++ {
			t := Tile{X: x, Y: y}
			if !r.occupied.Contains(t) {
				free = append(free, t)
			}
		}
	}
	return free
}

// Footprints returns all registered footprints in insertion order.
// The slice is a copy; the footprints themselves are shared.
func (r *Room) Footprints() []Footprint {
	return slices.Clone(r.footprints)
}

// Footprint returns the registered footprint with the given id, or
// false if none exists.
func (r *Room) Footprint(id string) (Footprint, bool) {
	f, ok := r.byID[id]
	return f, ok
}

// Racks returns the registered data racks in insertion order.
func (r *Room) Racks() []*DataRack {
	var racks []*DataRack
	for _, f := range r.footprints {
		if rack, ok := f.(*DataRack); ok {
			racks = append(racks, rack)
		}
	}
	return racks
}

// Obstacles returns the registered obstacles in insertion order.
func (r *Room) Obstacles() []*Obstacle {
	var obstacles []*Obstacle
	for _, f := range r.footprints {
		if o, ok := f.(*Obstacle); ok {
			obstacles = append(obstacles, o)
		}
	}
	return obstacles
}
