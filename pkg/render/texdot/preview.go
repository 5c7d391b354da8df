package texdot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
	"github.com/matzehuels/workflowdot/pkg/workflow"
)

// PreviewDOT renders tasks as plain Graphviz DOT with the task types as
// ordinary labels. Node names match [ToDOT].
func PreviewDOT(tasks []workflow.Task) []byte {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for _, t := range tasks {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", NodeToken(t.Hash), t.TaskType)
	}

	buf.WriteString("\n")
	for _, t := range tasks {
		node := NodeToken(t.Hash)
		for _, dep := range t.Dependencies {
			fmt.Fprintf(&buf, "  %s -> %s;\n", NodeToken(dep), node)
		}
	}

	buf.WriteString("}\n")
	return buf.Bytes()
}

// Check parses dot with Graphviz and reports whether it is well-formed.
func Check(ctx context.Context, dot []byte) error {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return wferrors.Wrap(wferrors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return wferrors.Wrap(wferrors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()
	return nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, wferrors.Wrap(wferrors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, wferrors.Wrap(wferrors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, wferrors.Wrap(wferrors.ErrCodeRenderFailed, err, "render")
	}
	return buf.Bytes(), nil
}
