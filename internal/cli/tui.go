package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/rackroom/pkg/plan"
)

// =============================================================================
// inspectorModel - Interactive tile inspection
// =============================================================================

// inspectorModel is the bubbletea model for walking the tile grid and
// inspecting whatever sits on the tile under the cursor.
type inspectorModel struct {
	room   *plan.Room
	cursor plan.Tile
}

func newInspectorModel(room *plan.Room) inspectorModel {
	return inspectorModel{room: room}
}

func (m inspectorModel) Init() tea.Cmd {
	return nil
}

func (m inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor.Y > 0 {
				m.cursor.Y--
			}
		case "down", "j":
			if m.cursor.Y < m.room.NumTilesY()-1 {
				m.cursor.Y++
			}
		case "left", "h":
			if m.cursor.X > 0 {
				m.cursor.X--
			}
		case "right", "l":
			if m.cursor.X < m.room.NumTilesX()-1 {
				m.cursor.X++
			}
		}
	}
	return m, nil
}

func (m inspectorModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Plan " + m.room.RoomID()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ navigate  q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderGrid(m.room, m.cursor))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	return b.String()
}

// statusLine describes the tile under the cursor: free, or the
// footprint occupying it with its derived attributes.
func (m inspectorModel) statusLine() string {
	pos := fmt.Sprintf("(%d,%d)", m.cursor.X, m.cursor.Y)

	occupant := m.footprintAt(m.cursor)
	if occupant == nil {
		return "  " + StyleValue.Render(pos) + " " + StyleSuccess.Render("free")
	}

	switch f := occupant.(type) {
	case *plan.DataRack:
		return "  " + StyleValue.Render(pos) + " " + styleRackCell.Render("rack") + " " +
			StyleHighlight.Render(f.ID()) +
			StyleDim.Render(fmt.Sprintf("  %dU  %.2fm  ~%.0fkg", f.RackUnits(), f.HeightMeters(), f.EstimatedWeightKg()))
	case *plan.Obstacle:
		return "  " + StyleValue.Render(pos) + " " + styleObstacleCell.Render("obstacle") + " " +
			StyleHighlight.Render(f.ID()) +
			StyleDim.Render(fmt.Sprintf("  %dx%d tiles  %.2fm", f.WidthTiles(), f.DepthTiles(), f.HeightMeters()))
	default:
		return "  " + StyleValue.Render(pos) + " " + StyleHighlight.Render(occupant.ID())
	}
}

// footprintAt returns the footprint covering t, or nil when the tile
// is free.
func (m inspectorModel) footprintAt(t plan.Tile) plan.Footprint {
	for _, f := range m.room.Footprints() {
		for _, ft := range f.Tiles() {
			if ft == t {
				return f
			}
		}
	}
	return nil
}
