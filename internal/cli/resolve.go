package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gavel-build/gavel/pkg/config"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	target    string   // extraction directory, overrides config
	repos     []string // repository URLs, override config when set
	classpath bool     // print a single classpath line instead of a summary
}

// newResolveCmd creates the resolve command. It downloads the given
// artifacts and every transitive compile-scope dependency into the
// target directory, extracting classes from aar archives along the way.
func newResolveCmd(configPath *string) *cobra.Command {
	var opts resolveOpts

	cmd := &cobra.Command{
		Use:   "resolve <groupId:artifactId:version> [...]",
		Short: "Download artifacts and their compile-scope dependencies",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if opts.target != "" {
				cfg.Target = opts.target
			}
			if len(opts.repos) > 0 {
				cfg.Repositories = cfg.Repositories[:0]
				for _, url := range opts.repos {
					cfg.Repositories = append(cfg.Repositories, config.Repository{URL: url})
				}
			}
			return runResolve(cmd, args, cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "o", "", "extraction directory (default from config)")
	cmd.Flags().StringSliceVar(&opts.repos, "repo", nil, "repository URL(s), overriding the configured list")
	cmd.Flags().BoolVar(&opts.classpath, "classpath", false, "print the resulting classpath on one line")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string, cfg *config.Config, opts *resolveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	coords, err := parseCoordinates(args)
	if err != nil {
		return err
	}

	resolver, c, err := newResolver(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	prog := newProgress(logger)
	done, err := resolver.DownloadAll(ctx, coords, cfg.Target)
	if err != nil {
		if len(done) > 0 {
			printError("Resolution failed after %d artifact(s): %v", len(done), err)
		}
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d artifact(s)", len(done)))

	if opts.classpath {
		paths := make([]string, 0, len(done))
		for _, coord := range done {
			paths = append(paths, filepath.Join(cfg.Target, coord.Filename()))
		}
		fmt.Println(strings.Join(paths, string(filepath.ListSeparator)))
		return nil
	}

	printSuccess("Resolved %s artifact(s) into %s",
		StyleNumber.Render(fmt.Sprintf("%d", len(done))), StyleValue.Render(cfg.Target))
	for _, coord := range done {
		printFile(filepath.Join(cfg.Target, coord.Filename()))
	}
	return nil
}
