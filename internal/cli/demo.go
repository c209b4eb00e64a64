package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

// newDemoCmd creates the demo command, which seeds a populated example
// plan: three rows of 42U racks, a support pillar, and a cable ladder
// run along the back wall.
func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [file]",
		Short: "Write a populated example plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, args[0])
		},
	}
	return cmd
}

func runDemo(cmd *cobra.Command, path string) error {
	logger := loggerFromContext(cmd.Context())
	p := newProgress(logger)

	room, ladders, err := buildDemoPlan()
	if err != nil {
		return err
	}
	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	p.done(fmt.Sprintf("Seeded %d racks", len(room.Racks())))
	printSuccess("Wrote demo plan %s", StyleHighlight.Render(room.RoomID()))
	printFile(path)
	printNextStep("Inspect it", "rackroom show "+path+" --interactive")
	return nil
}

// buildDemoPlan creates a 25x20 room with rack rows at y=2, 7 and 12,
// each rack a 2x2 footprint of 42 units, spaced one aisle tile apart.
func buildDemoPlan() (*plan.Room, []*ladder.Ladder, error) {
	room, err := plan.NewRoom("demo-floor", 25, 20, 3.0)
	if err != nil {
		return nil, nil, err
	}

	n := 0
	for _, y := range []int{2, 7, 12} {
		for x := 0; x+2 <= room.NumTilesX(); x += 3 {
			n++
			rack, err := plan.NewDataRack(fmt.Sprintf("rack-%02d", n), plan.Tile{X: x, Y: y}, 2, 2, 42)
			if err != nil {
				return nil, nil, err
			}
			if err := room.AddFootprint(rack); err != nil {
				return nil, nil, err
			}
		}
	}

	pillar, err := plan.NewObstacle("pillar-1", plan.Tile{X: 12, Y: 17}, 1, 1, 3.0)
	if err != nil {
		return nil, nil, err
	}
	if err := room.AddFootprint(pillar); err != nil {
		return nil, nil, err
	}

	run, err := ladder.NewLadder("main-run")
	if err != nil {
		return nil, nil, err
	}
	sections := []struct {
		id          string
		x, y        float64
		length      float64
		orientation ladder.Orientation
		opts        []ladder.SectionOption
	}{
		{"run-1", 0, 0.3, 6.0, ladder.Horizontal, nil},
		{"run-2", 6.0, 0.3, 3.0, ladder.Vertical, []ladder.SectionOption{ladder.WithBend(90)}},
		{"run-3", 6.0, 3.3, 6.0, ladder.Horizontal, []ladder.SectionOption{ladder.WithBend(90)}},
	}
	for _, s := range sections {
		sec, err := ladder.NewSection(s.id, s.x, s.y, s.length, s.orientation, s.opts...)
		if err != nil {
			return nil, nil, err
		}
		if err := run.AddSection(sec); err != nil {
			return nil, nil, err
		}
	}

	return room, []*ladder.Ladder{run}, nil
}
