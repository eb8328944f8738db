package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/asperity/config"
)

// runCommand creates the run command: synthesize from a TOML run file.
func (c *CLI) runCommand() *cobra.Command {
	var (
		path string
		dump bool
	)

	cmd := &cobra.Command{
		Use:   "run --config run.toml",
		Short: "Synthesize a surface described by a run file",
		Long: `Synthesize a surface described by a TOML run file.

The file selects the synthesizer kind (discrete, statistical or hurst), its
parameters, the grid and an optional seed. Print a starting point with
'asperity config'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfig(cmd.Context(), path, dump)
		},
	}

	cmd.Flags().StringVarP(&path, "config", "c", "", "run file (TOML)")
	cmd.Flags().BoolVar(&dump, "dump", false, "write the profile rows instead of a summary")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func (c *CLI) runConfig(ctx context.Context, path string, dump bool) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded run file", "path", path, "kind", cfg.Synthesizer.Kind, "seed", cfg.Seed)

	return c.buildAndSynthesize(ctx, cfg, dump)
}

// buildAndSynthesize constructs the synthesizer of cfg and discretises it on
// the grid of cfg.
func (c *CLI) buildAndSynthesize(ctx context.Context, cfg config.Config, dump bool) error {
	s, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build synthesizer: %w", err)
	}
	g, err := cfg.GridValue()
	if err != nil {
		return err
	}

	return c.synthesize(ctx, s, g, dump)
}

// configCommand prints the default run file.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default run file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Encode(c.out, config.Default())
		},
	}
}
