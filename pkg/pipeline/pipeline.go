// Package pipeline runs the workflow → DOT conversion end to end.
//
// The pipeline has four stages:
//
//  1. Load: read task records from the input YAML stream
//  2. Validate: check identifiers map onto distinct node names (optional)
//  3. Emit: render dot2tex DOT and write it next to the input
//  4. Preview: render a Graphviz SVG of the same graph (optional)
//
// # Usage
//
//	res, err := pipeline.Convert(ctx, pipeline.Options{
//	    Input:    "workflow.yaml",
//	    Prologue: texdot.DefaultPrologue(),
//	    Validate: true,
//	    Logger:   logger,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Output) // workflow.dot
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
	"github.com/matzehuels/workflowdot/pkg/render/texdot"
	"github.com/matzehuels/workflowdot/pkg/workflow"
)

// PreviewExtension is the file extension of the SVG preview.
const PreviewExtension = ".svg"

// Options configures a conversion.
type Options struct {
	// Input is the workflow file to read.
	Input string
	// Output is the DOT file to write. Empty derives it from Input
	// with [texdot.OutputPath].
	Output string
	// Prologue holds the graph directives. Zero-valued fields take defaults.
	Prologue texdot.Prologue
	// Validate rejects identifiers that cannot become distinct node names.
	Validate bool
	// Preview also writes an SVG rendering next to Output.
	Preview bool
	// Logger receives stage progress at debug level. Nil uses log.Default().
	Logger *log.Logger
}

// Result describes a completed conversion.
type Result struct {
	Output  string // path of the DOT file written
	Preview string // path of the SVG preview, empty when not requested
	Tasks   int    // number of task records converted
	Edges   int    // number of dependency edges emitted
}

// Convert loads opts.Input, renders it and writes the DOT file.
//
// Nothing is written when loading or validation fails. The DOT file is
// replaced atomically, so a failed write leaves any earlier output intact.
// The context is checked between stages.
func Convert(ctx context.Context, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if opts.Input == "" {
		return Result{}, wferrors.New(wferrors.ErrCodeInvalidInput, "input path cannot be empty")
	}
	output := opts.Output
	if output == "" {
		output = texdot.OutputPath(opts.Input)
	}

	start := time.Now()
	tasks, err := workflow.ImportTasks(opts.Input)
	if err != nil {
		return Result{}, err
	}
	res := Result{Output: output, Tasks: len(tasks), Edges: workflow.EdgeCount(tasks)}
	logger.Debug("loaded workflow", "input", opts.Input, "tasks", res.Tasks, "edges", res.Edges, "elapsed", since(start))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if opts.Validate {
		if err := workflow.Validate(tasks); err != nil {
			return Result{}, fmt.Errorf("validate %s: %w", opts.Input, err)
		}
		logger.Debug("validated identifiers")
	}

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start = time.Now()
	dot := texdot.ToDOT(tasks, texdot.Options{Prologue: opts.Prologue})
	if err := texdot.ExportDOT(output, dot); err != nil {
		return Result{}, err
	}
	logger.Debug("wrote dot", "output", output, "bytes", len(dot), "elapsed", since(start))

	if !opts.Preview {
		return res, nil
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start = time.Now()
	if err := texdot.Check(ctx, dot); err != nil {
		return Result{}, fmt.Errorf("check %s: %w", output, err)
	}
	svg, err := texdot.RenderSVG(ctx, texdot.PreviewDOT(tasks))
	if err != nil {
		return Result{}, fmt.Errorf("preview: %w", err)
	}
	res.Preview = texdot.ReplaceExt(output, PreviewExtension)
	if err := texdot.WriteFileAtomic(res.Preview, svg); err != nil {
		return Result{}, err
	}
	logger.Debug("wrote preview", "output", res.Preview, "elapsed", since(start))

	return res, nil
}

func since(t time.Time) time.Duration {
	return time.Since(t).Round(time.Millisecond)
}
