package plan

// Footprint is any object that occupies a rectangular set of floor
// tiles. DataRack and Obstacle are the two implementations; they share
// placement behavior but carry their own derived physical attributes.
//
// A footprint has no relationship to a room until the room registers it
// via [Room.AddFootprint], and none again after removal. Positions are
// only mutated through the owning room so that occupancy bookkeeping
// can never drift from the registered tiles.
type Footprint interface {
	// ID returns the identifier, unique within the owning room.
	ID() string

	// Origin returns the top-left tile of the footprint.
	Origin() Tile

	// WidthTiles returns the extent along X, always >= 1.
	WidthTiles() int

	// DepthTiles returns the extent along Y, always >= 1.
	DepthTiles() int

	// Tiles enumerates every tile covered by the footprint in
	// row-major order.
	Tiles() []Tile

	// setOrigin moves the footprint. Unexported so that only the
	// owning room can reposition a registered footprint.
	setOrigin(Tile)
}

// footprintTiles enumerates the width x depth rectangle anchored at
// origin. Shared by both implementations.
func footprintTiles(origin Tile, width, depth int) []Tile {
	tiles := make([]Tile, 0, width*depth)
	for dy := 0; dy < depth; dy++ {
		for dx := 0; dx < width; dx++ {
			tiles = append(tiles, Tile{X: origin.X + dx, Y: origin.Y + dy})
		}
	}
	return tiles
}
