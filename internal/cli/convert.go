package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/workflowdot/pkg/config"
	"github.com/matzehuels/workflowdot/pkg/pipeline"
)

// convertOpts holds the command-line flags for the conversion.
type convertOpts struct {
	output     string // explicit output path; empty derives it from the input
	configPath string // optional TOML settings file
	preview    bool   // also render an SVG preview
	noValidate bool   // skip identifier checks
}

// runConvert loads settings, converts input and logs the outcome.
func (c *CLI) runConvert(ctx context.Context, input string, opts convertOpts) error {
	logger := loggerFromContext(ctx)

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", opts.configPath)
	}

	prog := newProgress(logger)
	res, err := pipeline.Convert(ctx, pipeline.Options{
		Input:    input,
		Output:   opts.output,
		Prologue: cfg.Graph,
		Validate: !opts.noValidate,
		Preview:  opts.preview,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Converted %d tasks and %d edges to %s", res.Tasks, res.Edges, res.Output))
	if res.Preview != "" {
		logger.Info("Wrote preview", "path", res.Preview)
	}
	return nil
}
