// Package cli implements the workflowdot command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/workflowdot/pkg/buildinfo"
	wferrors "github.com/matzehuels/workflowdot/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "workflowdot"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger

	// Program is the name shown in the usage line, normally os.Args[0].
	Program string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level, program string) *CLI {
	if program == "" {
		program = appName
	}
	return &CLI{
		Logger:  newLogger(w, level),
		Program: program,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command, which performs the conversion.
func (c *CLI) RootCommand() *cobra.Command {
	var opts convertOpts

	root := &cobra.Command{
		Use:   appName + " <filename>",
		Short: "Convert a workflow description into a dot2tex dependency graph",
		Long: `workflowdot reads a YAML stream of task records (hash, taskType,
dependencies) and writes a Graphviz DOT file for dot2tex next to it,
replacing the input's extension with .dot.`,
		Version:       buildinfo.Version,
		Args:          c.exactlyOneFile,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.Context(), args[0], opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input with its extension replaced by .dot)")
	root.Flags().StringVar(&opts.configPath, "config", "", "TOML file with graph settings")
	root.Flags().BoolVar(&opts.preview, "svg", false, "also write an SVG preview rendered with Graphviz")
	root.Flags().BoolVar(&opts.noValidate, "no-validate", false, "skip identifier checks on task hashes")

	return root
}

// exactlyOneFile prints the usage line to stdout unless exactly one
// positional argument was given.
func (c *CLI) exactlyOneFile(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s <filename>\n", c.Program)
	return wferrors.New(wferrors.ErrCodeUsage, "expected 1 argument, got %d", len(args))
}

// IsUsageError reports whether err came from a wrong argument count. The
// usage line has already been printed in that case.
func IsUsageError(err error) bool {
	return wferrors.Is(err, wferrors.ErrCodeUsage)
}
