package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/mazely/pkg/maze"
)

// DOT converts the carved link graph to Graphviz DOT format. Every unmasked
// cell becomes a node pinned to its grid position (rows grow downward), and
// every carved passage becomes exactly one undirected edge, taken from the
// East/South side so the symmetric counterpart is not emitted twice.
func DOT(g *maze.Grid) string {
	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fixedsize=true, width=0.4];\n")
	buf.WriteString("\n")

	for _, cell := range g.Cells() {
		label := cellLabel(g, cell)
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%d,%d!\"];\n", cell.String(), label, cell.Column, -cell.Row)
	}

	buf.WriteString("\n")
	for _, cell := range g.Cells() {
		for _, dir := range [...]maze.Compass{maze.East, maze.South} {
			if g.Linked(cell, dir) {
				if next, ok := g.Neighbour(cell, dir); ok {
					fmt.Fprintf(&buf, "  %q -- %q;\n", cell.String(), next.String())
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// cellLabel shows the applied distance when present, otherwise nothing.
func cellLabel(g *maze.Grid, cell maze.Cell) string {
	if d, ok := g.Distance(cell); ok {
		return fmt.Sprintf("%d", d)
	}
	return ""
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
