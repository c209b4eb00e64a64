package cli

import (
	planio "github.com/matzehuels/rackroom/pkg/io"
	"github.com/matzehuels/rackroom/pkg/ladder"
	"github.com/matzehuels/rackroom/pkg/plan"
)

// loadPlan reads a plan file and rebuilds the live room and ladders.
// Every placement is re-validated on load, so a hand-edited file with
// overlapping racks fails here rather than corrupting later commands.
func loadPlan(path string) (*plan.Room, []*ladder.Ladder, error) {
	doc, err := planio.ImportJSON(path)
	if err != nil {
		return nil, nil, err
	}
	return planio.Restore(doc)
}

// savePlan writes the room and ladders back to the plan file.
func savePlan(path string, room *plan.Room, ladders []*ladder.Ladder) error {
	return planio.ExportJSON(planio.Snapshot(room, ladders), path)
}
