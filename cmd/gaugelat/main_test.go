package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yangmills/internal/config"
)

// execute runs the CLI with args and returns its standard output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gaugelat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version", "--config", filepath.Join(t.TempDir(), "unused.yaml"))
	require.NoError(t, err)
	require.Contains(t, out, "gaugelat dev")
}

func TestObserve_Cold(t *testing.T) {
	for _, g := range []string{"su2", "su3"} {
		t.Run(g, func(t *testing.T) {
			path := writeConfig(t, `
lattice: {nx: 2, ny: 2, nz: 2, nt: 2, group: `+g+`, start: cold}
logging: {level: error}
`)
			out, err := execute(t, "observe", "--config", path)
			require.NoError(t, err)
			require.Contains(t, out, g+" 2x2x2x2 (16 sites, cold start)")
			require.Contains(t, out, "wilson action:     0 ")
			require.Contains(t, out, "average plaquette: 1\n")
		})
	}
}

func TestObserve_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "lattice: {nx: 0}\n")
	_, err := execute(t, "observe", "--config", path)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_WritesReportAndMetrics(t *testing.T) {
	path := writeConfig(t, `
lattice: {nx: 2, ny: 2, nz: 2, nt: 2, group: su2, start: hot, seed: 3, workers: 2}
update: {beta: 2.3, thermalization: 2, sweeps: 6, hits: 2, epsilon: 0.3, reunitarize_every: 3}
measure: {start: 0, sample_rate: 1, max_lag: 2}
logging: {level: error}
`)
	metrics := filepath.Join(t.TempDir(), "run.prom")

	out, err := execute(t, "run", "--config", path, "--metrics-file", metrics)
	require.NoError(t, err)
	require.Contains(t, out, "su2 2x2x2x2, beta=2.3, hot start")
	require.Contains(t, out, "2 thermalization + 6 measured")
	require.Contains(t, out, "plaquette = ")
	require.Contains(t, out, "action = ")
	require.Contains(t, out, "tau_int = ")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, "yangmills_average_plaquette")
	require.Contains(t, text, "yangmills_acceptance_ratio")
	require.Regexp(t, `yangmills_sweeps_total\{group="su2",phase="measure",run_id="[0-9a-f-]{36}"\} 6`, text)
	require.Regexp(t, `yangmills_sweeps_total\{group="su2",phase="thermalize",run_id="[0-9a-f-]{36}"\} 2`, text)
}

func TestRun_TooFewSamples(t *testing.T) {
	path := writeConfig(t, `
lattice: {nx: 2, ny: 2, nz: 2, nt: 2, group: su3, start: cold}
update: {thermalization: 0, sweeps: 1, hits: 1}
logging: {level: error}
`)
	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "plaquette: not enough samples")
}

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "absent.yaml")
	target := filepath.Join(dir, "out", "gaugelat.yaml")

	out, err := execute(t, "init-config", target, "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, target)

	got, err := config.Load(target)
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), got)

	_, err = execute(t, "init-config", target, "--config", cfgPath)
	require.Error(t, err)

	_, err = execute(t, "init-config", target, "--config", cfgPath, "--force")
	require.NoError(t, err)
}
