package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavel-build/gavel/pkg/config"
	"github.com/gavel-build/gavel/pkg/depgraph"
	"github.com/gavel-build/gavel/pkg/errors"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// graphOpts holds the command-line flags for the graph command.
type graphOpts struct {
	output   string // output file; empty means stdout (dot only)
	format   string // "dot" or "svg"
	detailed bool   // full coordinates in node labels
}

// newGraphCmd creates the graph command. It walks the dependency graph
// without downloading archives and exports it as DOT or SVG.
func newGraphCmd(configPath *string) *cobra.Command {
	opts := graphOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "graph <groupId:artifactId:version> [...]",
		Short: "Export the dependency graph as DOT or SVG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return errors.New(errors.ErrCodeInvalidInput,
					"unknown format %q (want dot or svg)", opts.format)
			}
			if opts.format == formatSVG && opts.output == "" {
				return errors.New(errors.ErrCodeInvalidInput, "svg output requires --output")
			}
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runGraph(cmd, args, cfg, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for dot)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show full coordinates in node labels")

	return cmd
}

func runGraph(cmd *cobra.Command, args []string, cfg *config.Config, opts *graphOpts) error {
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
	g, err := resolver.DependencyGraph(ctx, coords)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Walked %d node(s)", len(g.Nodes)))

	dot := depgraph.ToDOT(g, depgraph.Options{Detailed: opts.detailed})

	var data []byte
	switch opts.format {
	case formatSVG:
		data, err = depgraph.RenderSVG(dot)
		if err != nil {
			return err
		}
	default:
		data = []byte(dot)
	}

	if opts.output == "" {
		fmt.Print(string(data))
		return nil
	}
	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}

	printSuccess("Graph with %s node(s) and %s edge(s)",
		StyleNumber.Render(fmt.Sprintf("%d", len(g.Nodes))),
		StyleNumber.Render(fmt.Sprintf("%d", len(g.Edges))))
	printFile(opts.output)
	return nil
}
