package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rackroom/pkg/plan"
)

// tileKind classifies a tile for terminal rendering.
type tileKind int

const (
	tileFree tileKind = iota
	tileRack
	tileObstacle
)

// newShowCmd creates the show command for rendering a plan as a
// terminal grid. With --interactive the grid becomes a navigable
// inspector.
func newShowCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Render a plan as a terminal grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0], interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "inspect tiles interactively")
	return cmd
}

func runShow(path string, interactive bool) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	if interactive {
		model := newInspectorModel(room)
		_, err := tea.NewProgram(model).Run()
		return err
	}

	fmt.Println(StyleTitle.Render("Plan " + room.RoomID()))
	fmt.Println(renderGrid(room, plan.Tile{X: -1, Y: -1}))
	printDetail("%d racks, %d obstacles, %d ladders, %d/%d tiles occupied",
		len(room.Racks()), len(room.Obstacles()), len(ladders),
		len(room.OccupiedTiles()), room.NumTilesX()*room.NumTilesY())
	return nil
}

// classifyTiles builds the tile kind index used by the grid renderer.
func classifyTiles(room *plan.Room) map[plan.Tile]tileKind {
	kinds := make(map[plan.Tile]tileKind)
	for _, r := range room.Racks() {
		for _, t := range r.Tiles() {
			kinds[t] = tileRack
		}
	}
	for _, o := range room.Obstacles() {
		for _, t := range o.Tiles() {
			kinds[t] = tileObstacle
		}
	}
	return kinds
}

// renderGrid draws the tile grid with racks, obstacles and free tiles.
// Row 0 is drawn at the top. cursor marks one tile with a highlight;
// pass an out-of-range tile to disable it.
func renderGrid(room *plan.Room, cursor plan.Tile) string {
	kinds := classifyTiles(room)

	var b strings.Builder
	for y := 0; y < room.NumTilesY(); y++ {
		b.WriteString("  ")
		for x := 0; x < room.NumTilesX(); x++ {
			t := plan.Tile{X: x, Y: y}
			cell := "· "
			style := styleFreeCell
			switch kinds[t] {
			case tileRack:
				cell = "█ "
				style = styleRackCell
			case tileObstacle:
				cell = "▒ "
				style = styleObstacleCell
			}
			if t == cursor {
				style = StyleWarning
				if kinds[t] == tileFree {
					cell = "□ "
				}
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}
	return b.String()
}
