package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/rackroom/pkg/plan"
)

// newOpts holds the command-line flags for the new command.
type newOpts struct {
	roomID   string  // room identifier (generated if empty)
	tilesX   int     // grid width in tiles
	tilesY   int     // grid depth in tiles
	height   float64 // ceiling height in meters
	tileSize float64 // tile edge length in meters (0 means default)
}

// newNewCmd creates the new command for starting an empty floor plan.
func newNewCmd() *cobra.Command {
	opts := newOpts{}

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Create an empty floor plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.roomID, "id", "", "room id (generated if empty)")
	cmd.Flags().IntVar(&opts.tilesX, "tiles-x", 25, "grid width in tiles")
	cmd.Flags().IntVar(&opts.tilesY, "tiles-y", 20, "grid depth in tiles")
	cmd.Flags().Float64Var(&opts.height, "height", 3.0, "room height in meters")
	cmd.Flags().Float64Var(&opts.tileSize, "tile-size", 0, "tile edge length in meters (default 0.6)")

	return cmd
}

func runNew(path string, opts *newOpts) error {
	if opts.roomID == "" {
		opts.roomID = uuid.NewString()
	}

	roomOpts := []plan.RoomOption{}
	if opts.tileSize > 0 {
		roomOpts = append(roomOpts, plan.WithTileSize(opts.tileSize))
	}
	room, err := plan.NewRoom(opts.roomID, opts.tilesX, opts.tilesY, opts.height, roomOpts...)
	if err != nil {
		return err
	}

	if err := savePlan(path, room, nil); err != nil {
		return err
	}

	printSuccess("Created plan %s (%dx%d tiles, %.2fm x %.2fm)",
		StyleHighlight.Render(room.RoomID()), room.NumTilesX(), room.NumTilesY(), room.Length(), room.Width())
	printFile(path)
	printNextStep("Place a rack", "rackroom rack add "+path+" --x 0 --y 0 --units 42")
	return nil
}
