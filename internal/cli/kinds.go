package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/asperity/config"
)

// kindCommand builds a flag-driven command for one synthesizer kind. Flags
// fill a config.Config, so validation matches the run command exactly.
func (c *CLI) kindCommand(kind, use, short, long string, bind func(*pflag.FlagSet, *config.Synthesizer)) *cobra.Command {
	cfg := config.Default()
	cfg.Synthesizer.Kind = kind
	var dump bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.buildAndSynthesize(cmd.Context(), cfg, dump)
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&cfg.Grid.Extent, "extent", cfg.Grid.Extent, "domain extent per axis")
	flags.Float64Var(&cfg.Grid.Spacing, "spacing", cfg.Grid.Spacing, "grid spacing")
	flags.Int64Var(&cfg.Seed, "seed", 0, "seed for random draws (0: unseeded)")
	flags.BoolVar(&dump, "dump", false, "write the profile rows instead of a summary")
	bind(flags, &cfg.Synthesizer)

	return cmd
}

func (c *CLI) discreteCommand() *cobra.Command {
	return c.kindCommand("discrete", "discrete --freq 10 [--amp 0.1] [--phase 0]",
		"Synthesize a surface from explicit tones",
		`Synthesize a surface from explicit tones.

Each tone contributes amplitude·cos(phase − 2π·freq·x) along every axis. A 2D
surface is the sum of the x and y wave fields. --amp and --phase need one value
per tone. Omitting --amp means a single amplitude of 1 and omitting --phase a
single phase of 0, so these defaults only fit a single tone. With
--random-phases every tone gets a uniform phase instead.`,
		func(f *pflag.FlagSet, s *config.Synthesizer) {
			f.Float64SliceVar(&s.Frequencies, "freq", nil, "tone frequencies (cycles per unit length)")
			f.Float64SliceVar(&s.Amplitudes, "amp", nil, "tone amplitudes")
			f.Float64SliceVar(&s.Phases, "phase", nil, "tone phases in radians")
			f.IntVar(&s.Dimensions, "dims", s.Dimensions, "number of axes: 1 or 2")
			f.BoolVar(&s.RandomPhases, "random-phases", false, "draw phases uniformly in [0, 2π)")
		})
}

func (c *CLI) statisticalCommand() *cobra.Command {
	return c.kindCommand("statistical", "statistical [--hurst 2] [--qr 0.05] [--qs 10]",
		"Draw one random realization of a power-law spectrum",
		`Draw one random realization of a power-law spectrum on a square grid.

Every invocation without --seed produces a different surface.`,
		func(f *pflag.FlagSet, s *config.Synthesizer) {
			f.Float64Var(&s.Hurst, "hurst", s.Hurst, "Hurst exponent H")
			f.Float64Var(&s.RollOff, "qr", s.RollOff, "roll-off wavenumber")
			f.Float64Var(&s.Cutoff, "qs", s.Cutoff, "cut-off wavenumber")
		})
}

func (c *CLI) fractalCommand() *cobra.Command {
	return c.kindCommand("hurst", "fractal [--q0 1] [--q0-amp 0.1] [--cutoff 5] [--hurst 2]",
		"Synthesize a Hurst fractal surface",
		`Synthesize a Hurst fractal surface from an explicit harmonic lattice.

The lattice has (2N+1)² harmonics with N = round(cutoff/q0); the cost grows
with the lattice size times the number of grid points.`,
		func(f *pflag.FlagSet, s *config.Synthesizer) {
			f.Float64Var(&s.Q0, "q0", s.Q0, "fundamental wavenumber")
			f.Float64Var(&s.Q0Amp, "q0-amp", s.Q0Amp, "amplitude at the fundamental")
			f.Float64Var(&s.QCutOff, "cutoff", s.QCutOff, "cut-off wavenumber")
			f.Float64Var(&s.Hurst, "hurst", s.Hurst, "Hurst exponent")
			f.BoolVar(&s.Mirrored, "mirrored", false, "conjugate-mirrored phases")
		})
}
