// Package depgraph renders resolved dependency graphs as Graphviz DOT
// and SVG for inspection.
package depgraph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/gavel-build/gavel/pkg/errors"
	"github.com/gavel-build/gavel/pkg/maven"
)

// Options configures graph rendering.
type Options struct {
	// Detailed includes the full coordinate (group, version, packaging)
	// in node labels. When false, only artifactId:version is shown.
	Detailed bool
}

// ToDOT converts a dependency graph to Graphviz DOT format. The output
// can be rendered with [RenderSVG] or fed to the dot tool directly.
func ToDOT(g *maven.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(n), nodeLabel(n, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.From), nodeID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c maven.Coordinate) string {
	return c.GroupID + ":" + c.ArtifactID + ":" + c.Version
}

func nodeLabel(c maven.Coordinate, detailed bool) string {
	if detailed {
		return c.GroupID + "\n" + c.ArtifactID + ":" + c.Version + "\n" + c.Packaging
	}
	return c.ArtifactID + ":" + c.Version
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return buf.Bytes(), nil
}
