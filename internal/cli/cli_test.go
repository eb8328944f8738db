package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/asperity/config"
	"github.com/katalvlaran/asperity/spectral"
)

// execute runs the CLI at debug level and returns stdout and the log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	return executeAt(t, LogDebug, args...)
}

func executeAt(t *testing.T, level log.Level, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&out, &logs, level)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())

	return out.String(), logs.String(), err
}

func parseRows(t *testing.T, dump string) [][]float64 {
	t.Helper()
	var rows [][]float64
	for _, line := range strings.Split(strings.TrimSpace(dump), "\n") {
		var row []float64
		for _, s := range strings.Fields(line) {
			v, err := strconv.ParseFloat(s, 64)
			require.NoError(t, err)
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows
}

func TestDiscrete_Dump1D(t *testing.T) {
	out, _, err := execute(t, "discrete", "--freq", "1", "--dims", "1", "--extent", "1", "--spacing", "0.25", "--dump")
	require.NoError(t, err)
	rows := parseRows(t, out)
	require.Len(t, rows, 1)
	want := []float64{-1, 0, 1, 0, -1}
	require.Len(t, rows[0], len(want))
	for i, v := range rows[0] {
		assert.InDelta(t, want[i], v, 1e-12)
	}
}

func TestFractal_SummaryAndLogs(t *testing.T) {
	out, logs, err := execute(t, "fractal", "--cutoff", "3", "--extent", "1,1", "--spacing", "0.1", "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "hurstFractal surface")
	assert.Contains(t, out, "[11 11]")
	assert.Contains(t, out, "rms")
	assert.Contains(t, logs, "surface ready")
	assert.Contains(t, logs, "discretising")
}

func TestFractal_SeededDumpIsStable(t *testing.T) {
	args := []string{"fractal", "--cutoff", "2", "--spacing", "0.25", "--seed", "9", "--dump"}
	a, _, err := execute(t, args...)
	require.NoError(t, err)
	b, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, parseRows(t, a), 5)
}

func TestStatistical_NonSquareFails(t *testing.T) {
	_, _, err := execute(t, "statistical", "--extent", "1,2", "--spacing", "0.1")
	assert.ErrorIs(t, err, spectral.ErrGridValidation)
}

func TestDiscrete_Errors(t *testing.T) {
	_, _, err := execute(t, "discrete", "--dims", "1", "--extent", "1", "--spacing", "0.1")
	assert.ErrorIs(t, err, config.ErrMissingField)

	_, _, err = execute(t, "discrete", "--freq", "1,2", "--amp", "1")
	assert.ErrorIs(t, err, spectral.ErrLengthMismatch)

	// The implicit amplitude and phase defaults describe a single tone.
	_, _, err = execute(t, "discrete", "--freq", "1,2")
	assert.ErrorIs(t, err, spectral.ErrLengthMismatch)
	_, _, err = execute(t, "discrete", "--freq", "1,2", "--amp", "1,0.5", "--phase", "0,0")
	assert.NoError(t, err)

	_, _, err = execute(t, "discrete", "--freq", "1", "--dims", "3")
	assert.ErrorIs(t, err, config.ErrDimensions)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.toml")
	doc := `
seed = 1
[grid]
extent = [1.0, 1.0]
spacing = 0.125
[synthesizer]
kind = "statistical"
hurst = 0.8
roll_off = 1.0
cutoff = 20.0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, _, err := execute(t, "run", "--config", path, "--dump")
	require.NoError(t, err)
	rows := parseRows(t, out)
	require.Len(t, rows, 9)
	for _, row := range rows {
		assert.Len(t, row, 9)
	}

	_, _, err = execute(t, "run")
	assert.Error(t, err, "--config is required")
}

func TestConfigCommand_PrintsDecodableDefault(t *testing.T) {
	out, _, err := execute(t, "config")
	require.NoError(t, err)
	cfg, err := config.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestVerboseFlagEnablesDebug(t *testing.T) {
	args := []string{"fractal", "--cutoff", "2", "--spacing", "0.25", "--seed", "1"}

	_, logs, err := executeAt(t, LogInfo, args...)
	require.NoError(t, err)
	assert.NotContains(t, logs, "discretising")
	assert.Contains(t, logs, "surface ready")

	_, logs, err = executeAt(t, LogInfo, append([]string{"-v"}, args...)...)
	require.NoError(t, err)
	assert.Contains(t, logs, "discretising")
}
