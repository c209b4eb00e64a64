package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// newInfoCmd creates the info command for printing room geometry and
// the rack inventory with derived physical attributes.
func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Show room geometry and rack inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
	return cmd
}

func runInfo(path string) error {
	room, ladders, err := loadPlan(path)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render("Plan " + room.RoomID()))
	printKeyValue("Grid", fmt.Sprintf("%d x %d tiles (%.2fm per tile)", room.NumTilesX(), room.NumTilesY(), room.TileSize()))
	printKeyValue("Floor", fmt.Sprintf("%.2fm x %.2fm (%.2f m²)", room.Length(), room.Width(), room.FloorArea()))
	printKeyValue("Height", fmt.Sprintf("%.2fm (%.2f m³)", room.Height(), room.Volume()))
	printKeyValue("Occupancy", fmt.Sprintf("%d of %d tiles", len(room.OccupiedTiles()), room.NumTilesX()*room.NumTilesY()))

	racks := room.Racks()
	if len(racks) > 0 {
		headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
		rows := [][]string{}
		for _, r := range racks {
			rows = append(rows, []string{
				r.ID(),
				fmt.Sprintf("(%d,%d)", r.Origin().X, r.Origin().Y),
				fmt.Sprintf("%dx%d", r.WidthTiles(), r.DepthTiles()),
				fmt.Sprintf("%dU", r.RackUnits()),
				fmt.Sprintf("%.2fm", r.HeightMeters()),
				fmt.Sprintf("%.1f\"", r.HeightInches()),
				fmt.Sprintf("%.0fkg", r.EstimatedWeightKg()),
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("Rack", "Origin", "Tiles", "Units", "Height", "Height (in)", "Est. weight").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				return lipgloss.NewStyle().Foreground(colorWhite)
			})
		fmt.Println(t.Render())
	}

	for _, o := range room.Obstacles() {
		printDetail("obstacle %s at (%d,%d), %dx%d tiles", o.ID(), o.Origin().X, o.Origin().Y, o.WidthTiles(), o.DepthTiles())
	}
	for _, l := range ladders {
		printDetail("ladder %s: %d sections, %.2fm total", l.ID(), l.Len(), l.TotalLength())
	}
	return nil
}
