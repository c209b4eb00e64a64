package plan_test

import (
	"fmt"

	"github.com/matzehuels/rackroom/pkg/plan"
)

func ExampleRoom_basic() {
	// Create a 10x8 tile room, 3m high, with the default 0.6m tiles.
	room, _ := plan.NewRoom("dc-1", 10, 8, 3.0)

	fmt.Printf("Floor: %.1fm x %.1fm\n", room.Length(), room.Width())
	fmt.Printf("Area: %.1f m2\n", room.FloorArea())
	// Output:
	// Floor: 6.0m x 4.8m
	// Area: 28.8 m2
}

func ExampleRoom_AddFootprint() {
	room, _ := plan.NewRoom("dc-1", 10, 8, 3.0)

	// A 42U rack on a 2x2 tile footprint.
	rack, _ := plan.NewDataRack("rack-01", plan.Tile{X: 2, Y: 2}, 2, 2, 42)
	_ = room.AddFootprint(rack)

	fmt.Println("Occupied:", len(room.OccupiedTiles()))
	fmt.Println("Free at (0,0):", room.IsTileFree(plan.Tile{X: 0, Y: 0}))
	fmt.Println("Free at (2,2):", room.IsTileFree(plan.Tile{X: 2, Y: 2}))
	// Output:
	// Occupied: 4
	// Free at (0,0): true
	// Free at (2,2): false
}

func ExampleDataRack_derived() {
	// Physical attributes follow from the rack-unit count.
	rack, _ := plan.NewDataRack("rack-01", plan.Tile{}, 1, 1, 42)

	fmt.Printf("Height: %.4fm (%.1f in)\n", rack.HeightMeters(), rack.HeightInches())
	fmt.Printf("Weight estimate: %.1f kg\n", rack.EstimatedWeightKg())
	// Output:
	// Height: 1.8669m (73.5 in)
	// Weight estimate: 189.0 kg
}
