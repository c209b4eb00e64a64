package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rackroom/pkg/ladder"
)

// newLadderCmd creates the ladder command group for managing cable
// ladder runs above the floor plan.
func newLadderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ladder",
		Short: "Manage cable ladder runs",
	}
	cmd.AddCommand(newLadderNewCmd())
	cmd.AddCommand(newLadderAddCmd())
	cmd.AddCommand(newLadderPopCmd())
	cmd.AddCommand(newLadderRmCmd())
	return cmd
}

func newLadderNewCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Start an empty ladder run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLadderNew(args[0], id)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "ladder id (generated if empty)")
	return cmd
}

func runLadderNew(path, id string) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	if id == "" {
		id = uuid.NewString()
	}
	if findLadder(ladders, id) != nil {
		return fmt.Errorf("ladder %s already exists", id)
	}
	l, err := ladder.NewLadder(id)
	if err != nil {
		return err
	}
	ladders = append(ladders, l)

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Created ladder %s", StyleHighlight.Render(id))
	printNextStep("Add a section", "rackroom ladder add "+path+" "+id+" --length 2.0")
	return nil
}

// sectionOpts holds the command-line flags for adding a ladder section.
type sectionOpts struct {
	id          string
	x, y        float64 // start position in meters
	length      float64 // section length in meters
	orientation string  // "horizontal" or "vertical"
	bend        float64 // bend angle in degrees (0 for straight)
	width       float64 // ladder width in cm (0 means default)
	material    string  // material name (empty means default)
}

func newLadderAddCmd() *cobra.Command {
	opts := sectionOpts{orientation: string(ladder.Horizontal)}

	cmd := &cobra.Command{
		Use:   "add [file] [ladder-id]",
		Short: "Append a section to a ladder run",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLadderAdd(args[0], args[1], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "section id (generated if empty)")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "start x in meters")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "start y in meters")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "section length in meters")
	cmd.Flags().StringVar(&opts.orientation, "orientation", opts.orientation, "orientation: horizontal or vertical")
	cmd.Flags().Float64Var(&opts.bend, "bend", 0, "bend angle in degrees")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "ladder width in cm (default 30)")
	cmd.Flags().StringVar(&opts.material, "material", "", "material (default aluminum)")

	return cmd
}

func runLadderAdd(path, ladderID string, opts *sectionOpts) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	l := findLadder(ladders, ladderID)
	if l == nil {
		return fmt.Errorf("ladder %s: %w", ladderID, ladder.ErrNotFound)
	}

	if opts.id == "" {
		opts.id = uuid.NewString()
	}
	secOpts := []ladder.SectionOption{}
	if opts.bend != 0 {
		secOpts = append(secOpts, ladder.WithBend(opts.bend))
	}
	if opts.width > 0 {
		secOpts = append(secOpts, ladder.WithWidth(opts.width))
	}
	if opts.material != "" {
		secOpts = append(secOpts, ladder.WithMaterial(opts.material))
	}
	sec, err := ladder.NewSection(opts.id, opts.x, opts.y, opts.length, ladder.Orientation(opts.orientation), secOpts...)
	if err != nil {
		return err
	}
	if err := l.AddSection(sec); err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Added section %s to %s (total %.2fm over %d sections)",
		StyleHighlight.Render(sec.ID()), ladderID, l.TotalLength(), l.Len())
	return nil
}

func newLadderPopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pop [file] [ladder-id]",
		Short: "Remove the most recently added section",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLadderPop(args[0], args[1])
		},
	}
	return cmd
}

func runLadderPop(path, ladderID string) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	l := findLadder(ladders, ladderID)
	if l == nil {
		return fmt.Errorf("ladder %s: %w", ladderID, ladder.ErrNotFound)
	}
	sec, err := l.RemoveLastSection()
	if err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Removed section %s from %s (total %.2fm)",
		StyleHighlight.Render(sec.ID()), ladderID, l.TotalLength())
	return nil
}

func newLadderRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [file] [ladder-id] [section-id]",
		Short: "Remove a section by id",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLadderRm(args[0], args[1], args[2])
		},
	}
	return cmd
}

func runLadderRm(path, ladderID, sectionID string) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	l := findLadder(ladders, ladderID)
	if l == nil {
		return fmt.Errorf("ladder %s: %w", ladderID, ladder.ErrNotFound)
	}
	if err := l.RemoveSection(sectionID); err != nil {
		return err
	}

	if err := savePlan(path, room, ladders); err != nil {
		return err
	}

	printSuccess("Removed section %s from %s (total %.2fm)",
		StyleHighlight.Render(sectionID), ladderID, l.TotalLength())
	return nil
}

// findLadder returns the ladder with the given id, or nil.
func findLadder(ladders []*ladder.Ladder, id string) *ladder.Ladder {
	for _, l := range ladders {
		if l.ID() == id {
			return l
		}
	}
	return nil
}
