package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mazely/pkg/buildinfo"
)

// appName is the application name used for display and completion scripts.
const appName = "mazely"

// Execute runs the mazely CLI and returns an error if any command fails.
//
// The root command registers the generate, explore and completion
// subcommands, configures logging from the --verbose flag, and attaches the
// logger to the command context for all subcommands to share.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Mazely generates, solves and renders rectangular mazes",
		Long: `Mazely carves rectangular mazes with pluggable algorithms (binary tree,
sidewinder), computes shortest-hop distances from any start cell, and renders
the result as ASCII art, a PNG image, or a Graphviz node-link diagram.`,
		Version:      buildinfo.Version,
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

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newExploreCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
