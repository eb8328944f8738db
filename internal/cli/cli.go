// Package cli implements the asperity command-line interface.
//
// The CLI builds one synthesizer, either from a TOML run file or from flags,
// discretises it on a grid and reports the shape and height statistics of the
// profile. With --dump the profile rows are written to the output as
// whitespace-separated numbers.
//
// # Commands
//
//   - run: synthesize from a run file (see package config)
//   - discrete: explicit tones
//   - statistical: one random realization of a power-law spectrum
//   - fractal: a fixed Hurst fractal realization
//   - config: print the default run file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	out    io.Writer
}

// New creates a CLI writing results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(logw, level), out: out}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "asperity",
		Short:        "Synthesize rough surface height fields from spectra",
		Long:         `asperity discretises discrete-frequency, statistical power-law and Hurst fractal surfaces on regular 1D and 2D grids.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.discreteCommand())
	root.AddCommand(c.statisticalCommand())
	root.AddCommand(c.fractalCommand())
	root.AddCommand(c.configCommand())

	return root
}
