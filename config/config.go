// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/asperity/grid"
	"github.com/katalvlaran/asperity/spectral"
)

// Config is one synthesis run.
type Config struct {
	// Seed locks every random draw when non-zero. Zero uses the process-wide
	// generator.
	Seed        int64       `toml:"seed"`
	Grid        Grid        `toml:"grid"`
	Synthesizer Synthesizer `toml:"synthesizer"`
}

// Grid is the sampling domain of a run.
type Grid struct {
	Extent  []float64 `toml:"extent"`
	Spacing float64   `toml:"spacing"`
}

// Synthesizer holds the parameters of all three kinds; only those of Kind
// are read.
type Synthesizer struct {
	Kind string `toml:"kind"`

	// discrete
	Frequencies  []float64 `toml:"frequencies,omitempty"`
	Amplitudes   []float64 `toml:"amplitudes,omitempty"`
	Phases       []float64 `toml:"phases,omitempty"`
	Dimensions   int       `toml:"dimensions"`
	RandomPhases bool      `toml:"random_phases"`

	// statistical and hurst
	Hurst float64 `toml:"hurst"`

	// statistical
	RollOff float64 `toml:"roll_off"`
	Cutoff  float64 `toml:"cutoff"`

	// hurst
	Q0       float64 `toml:"q0"`
	Q0Amp    float64 `toml:"q0_amp"`
	QCutOff  float64 `toml:"q_cut_off"`
	Mirrored bool    `toml:"mirrored"`
}

// Default returns a Hurst fractal run on a 1×1 domain sampled at 0.01.
func Default() Config {
	return Config{
		Grid: Grid{Extent: []float64{1, 1}, Spacing: 0.01},
		Synthesizer: Synthesizer{
			Kind:       "hurst",
			Dimensions: 2,
			Hurst:      spectral.DefaultStatisticalHurst,
			RollOff:    spectral.DefaultStatisticalRollOff,
			Cutoff:     spectral.DefaultStatisticalCutoff,
			Q0:         1,
			Q0Amp:      0.1,
			QCutOff:    5,
		},
	}
}

// Load reads and validates the run file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return finish(cfg, meta)
}

// Decode reads and validates a run file from r.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	meta, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return finish(cfg, meta)
}

func finish(cfg Config, meta toml.MetaData) (Config, error) {
	if keys := meta.Undecoded(); len(keys) > 0 {
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		return Config{}, fmt.Errorf("config: %s: %w", strings.Join(names, ", "), ErrUnknownKey)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Encode writes c as TOML.
func Encode(w io.Writer, c Config) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks the grid and the fields the selected kind requires.
// Parameter ranges are left to the spectral constructors.
func (c Config) Validate() error {
	kind, err := ParseKind(c.Synthesizer.Kind)
	if err != nil {
		return err
	}
	if _, err := c.GridValue(); err != nil {
		return err
	}
	if kind == spectral.KindDiscrete {
		if len(c.Synthesizer.Frequencies) == 0 {
			return fmt.Errorf("config: synthesizer.frequencies: %w", ErrMissingField)
		}
		if d := c.Synthesizer.Dimensions; d != 1 && d != 2 {
			return fmt.Errorf("config: synthesizer.dimensions = %d: %w", d, ErrDimensions)
		}
	}

	return nil
}

// GridValue returns the validated grid of the run.
func (c Config) GridValue() (grid.Grid, error) {
	g, err := grid.New(c.Grid.Extent, c.Grid.Spacing)
	if err != nil {
		return grid.Grid{}, fmt.Errorf("config: grid: %w: %w", spectral.ErrGridValidation, err)
	}

	return g, nil
}

// Build validates c and constructs its synthesizer.
func (c Config) Build() (spectral.Synthesizer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	kind, _ := ParseKind(c.Synthesizer.Kind)
	s := c.Synthesizer

	var opts []spectral.Option
	if c.Seed != 0 {
		opts = append(opts, spectral.WithSeed(c.Seed))
	}

	switch kind {
	case spectral.KindDiscrete:
		opts = append(opts, spectral.WithDimensions(s.Dimensions))
		if s.RandomPhases {
			opts = append(opts, spectral.WithRandomPhases())
		}
		return spectral.NewDiscretePolar(s.Frequencies, s.Amplitudes, s.Phases, opts...)
	case spectral.KindStatistical:
		return spectral.NewStatistical(s.Hurst, s.RollOff, s.Cutoff, opts...)
	default:
		if s.Mirrored {
			opts = append(opts, spectral.WithMirroredPhases())
		}
		return spectral.NewHurstFractal(s.Q0, s.Q0Amp, s.QCutOff, s.Hurst, opts...)
	}
}

// ParseKind maps a kind name to a spectral.Kind. It accepts the short names
// "discrete", "statistical" and "hurst" as well as the labels returned by
// spectral.Kind.String.
func ParseKind(name string) (spectral.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "discrete", "discretefreq":
		return spectral.KindDiscrete, nil
	case "statistical", "continuousfreq":
		return spectral.KindStatistical, nil
	case "hurst", "fractal", "hurstfractal":
		return spectral.KindHurstFractal, nil
	default:
		return 0, fmt.Errorf("config: kind %q: %w", name, ErrUnknownKind)
	}
}
