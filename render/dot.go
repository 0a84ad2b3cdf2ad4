package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/milden6/wordgraph"
)

// Options configures DOT output.
type Options struct {
	// LeftToRight lays the graph out horizontally instead of top to bottom.
	LeftToRight bool

	// Prefixes adds the shortest prefix leading to each node to its label.
	Prefixes bool
}

// ToDOT converts g to Graphviz DOT. Node names are display labels, so call
// Renumber on g first for compact names.
func ToDOT(g *wordgraph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontsize=12];\n")
	buf.WriteString("\n")

	for prefix, id := range g.Reachable() {
		fmt.Fprintf(&buf, "  n%d [%s];\n", g.Label(id), strings.Join(fmtAttrs(g, id, prefix, opts), ", "))
	}

	buf.WriteString("\n")
	for id := range g.Nodes() {
		for ch, next := range g.Transitions(id) {
			fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", g.Label(id), g.Label(next), string(ch))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(g *wordgraph.Graph, id wordgraph.NodeID, prefix string, opts Options) []string {
	label := fmt.Sprint(g.Label(id))
	if opts.Prefixes && prefix != "" {
		label += "\n" + prefix
	}
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if g.IsAccepting(id) {
		attrs = append(attrs, "shape=doublecircle")
	}
	if id == g.Root() {
		attrs = append(attrs, "style=bold")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
