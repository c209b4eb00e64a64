package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the rackroom CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree. The
// provided context is cancelled on SIGINT/SIGTERM by the main package, which
// lets long-running commands like serve shut down gracefully.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "rackroom",
		Short:        "Rackroom plans data-center floors on a tile grid",
		Long:         `Rackroom is a CLI tool for planning data-center floors: place racks and obstacles on a tile grid with overlap and bounds checking, route cable ladders, and render the result as SVG or a terminal grid.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("rackroom %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newNewCmd())
	root.AddCommand(newRackCmd())
	root.AddCommand(newObstacleCmd())
	root.AddCommand(newMoveCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newInfoCmd())
	root.AddCommand(newLadderCmd())
	root.AddCommand(newSVGCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newDemoCmd())

	return root.ExecuteContext(ctx)
}
