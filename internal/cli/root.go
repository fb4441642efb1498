package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gavel-build/gavel/pkg/buildinfo"
)

// Execute runs the gavel CLI and returns an error if any command fails.
//
// The root command wires up all subcommands (resolve, graph, cache),
// configures logging based on the --verbose flag, and executes the
// command tree. The logger is attached to the context and accessible to
// all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "gavel",
		Short:        "Gavel resolves Maven artifacts and their dependencies",
		Long:         `Gavel downloads Maven artifacts with their transitive compile-scope dependencies, assembling effective POMs across parents and BOM imports and extracting jar classes into a local directory.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "gavel.toml", "path to config file")

	root.AddCommand(newResolveCmd(&configPath))
	root.AddCommand(newGraphCmd(&configPath))
	root.AddCommand(newCacheCmd(&configPath))

	return root.ExecuteContext(ctx)
}
