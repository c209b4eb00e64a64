package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rackroom/pkg/plan"
)

// rackOpts holds the command-line flags for rack placement.
type rackOpts struct {
	id     string // rack identifier (generated if empty)
	x, y   int    // origin tile
	width  int    // footprint width in tiles
	depth  int    // footprint depth in tiles
	units  int    // rack height in rack units
}

// newRackCmd creates the rack command group for placing and configuring
// data racks on a plan.
func newRackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rack",
		Short: "Place and configure data racks",
	}
	cmd.AddCommand(newRackAddCmd())
	cmd.AddCommand(newRackUnitsCmd())
	return cmd
}

func newRackAddCmd() *cobra.Command {
	opts := rackOpts{}

	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Place a data rack on the grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRackAdd(args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "rack id (generated if empty)")
	cmd.Flags().IntVar(&opts.x, "x", 0, "origin tile x")
	cmd.Flags().IntVar(&opts.y, "y", 0, "origin tile y")
	cmd.Flags().IntVar(&opts.width, "width", 1, "footprint width in tiles")
	cmd.Flags().IntVar(&opts.depth, "depth", 1, "footprint depth in tiles")
	cmd.Flags().IntVar(&opts.units, "units", 42, "rack height in rack units")

	return cmd
}

func runRackAdd(path string, opts *rackOpts) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	if opts.id == "" {
		opts.id = uuid.NewString()
	}
	rack, err := plan.NewDataRack(opts.id, plan.Tile{X: opts.x, Y: opts.y}, opts.width, opts.depth, opts.units)
	if err != nil {
		return err
	}
	if err := room.AddFootprint(rack); err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Placed rack %s at (%d,%d): %dU, %.2fm, ~%.0fkg",
		StyleHighlight.Render(rack.ID()), opts.x, opts.y, rack.RackUnits(), rack.HeightMeters(), rack.EstimatedWeightKg())
	return nil
}

func newRackUnitsCmd() *cobra.Command {
	var units int

	cmd := &cobra.Command{
		Use:   "units [file] [rack-id]",
		Short: "Change the height of a placed rack",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRackUnits(args[0], args[1], units)
		},
	}

	cmd.Flags().IntVar(&units, "units", 42, "new rack height in rack units")
	return cmd
}

func runRackUnits(path, rackID string, units int) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	f, ok := room.Footprint(rackID)
	if !ok {
		return fmt.Errorf("rack %s: %w", rackID, plan.ErrNotFound)
	}
	rack, ok := f.(*plan.DataRack)
	if !ok {
		return fmt.Errorf("footprint %s is not a rack", rackID)
	}
	if err := rack.SetRackUnits(units); err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Rack %s is now %dU (%.2fm, ~%.0fkg)",
		StyleHighlight.Render(rackID), rack.RackUnits(), rack.HeightMeters(), rack.EstimatedWeightKg())
	return nil
}

// obstacleOpts holds the command-line flags for obstacle placement.
type obstacleOpts struct {
	id     string
	x, y   int
	width  int
	depth  int
	height float64 // obstacle height in meters
}

// newObstacleCmd creates the obstacle command group for blocking tiles
// with pillars, AC units and other immovable equipment.
func newObstacleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "obstacle",
		Short: "Place obstacles that block tiles",
	}
	cmd.AddCommand(newObstacleAddCmd())
	return cmd
}

func newObstacleAddCmd() *cobra.Command {
	opts := obstacleOpts{}

	cmd := &cobra.Command{
		Use:   "add [file]",
		Short: "Place an obstacle on the grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObstacleAdd(args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "obstacle id (generated if empty)")
	cmd.Flags().IntVar(&opts.x, "x", 0, "origin tile x")
	cmd.Flags().IntVar(&opts.y, "y", 0, "origin tile y")
	cmd.Flags().IntVar(&opts.width, "width", 1, "footprint width in tiles")
	cmd.Flags().IntVar(&opts.depth, "depth", 1, "footprint depth in tiles")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "obstacle height in meters")

	return cmd
}

func runObstacleAdd(path string, opts *obstacleOpts) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	if opts.id == "" {
		opts.id = uuid.NewString()
	}
	obstacle, err := plan.NewObstacle(opts.id, plan.Tile{X: opts.x, Y: opts.y}, opts.width, opts.depth, opts.height)
	if err != nil {
		return err
	}
	if err := room.AddFootprint(obstacle); err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Placed obstacle %s at (%d,%d), %dx%d tiles",
		StyleHighlight.Render(obstacle.ID()), opts.x, opts.y, opts.width, opts.depth)
	return nil
}

// newMoveCmd creates the move command for repositioning a footprint.
// The move is atomic: if the target tiles are blocked the plan file is
// left untouched.
func newMoveCmd() *cobra.Command {
	var x, y int

	cmd := &cobra.Command{
		Use:   "move [file] [footprint-id]",
		Short: "Move a rack or obstacle to a new origin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMove(args[0], args[1], x, y)
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "new origin tile x")
	cmd.Flags().IntVar(&y, "y", 0, "new origin tile y")
	return cmd
}

func runMove(path, footprintID string, x, y int) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	if err := room.RepositionFootprint(footprintID, plan.Tile{X: x, Y: y}); err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Moved %s to (%d,%d)", StyleHighlight.Render(footprintID), x, y)
	return nil
}

// newRemoveCmd creates the remove command for deleting a footprint.
func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove [file] [footprint-id]",
		Short: "Remove a rack or obstacle from the plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0], args[1])
		},
	}
	return cmd
}

func runRemove(path, footprintID string) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	if err := room.RemoveFootprint(footprintID); err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Removed %s", StyleHighlight.Render(footprintID))
	return nil
}
