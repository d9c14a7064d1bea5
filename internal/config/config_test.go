package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/internal/config"
	"github.com/katalvlaran/yangmills/lattice"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
	require.Equal(t, lattice.Dims{NX: 4, NY: 4, NZ: 4, NT: 4}, cfg.Dims())
	require.False(t, cfg.Cold())

	v, err := cfg.Variant()
	require.NoError(t, err)
	require.Equal(t, group.VariantSU2, v)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := `
lattice:
  nx: 8
  group: su3
  start: cold
update:
  beta: 5.7
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Lattice.NX)
	require.Equal(t, 4, cfg.Lattice.NY)
	require.Equal(t, "su3", cfg.Lattice.Group)
	require.True(t, cfg.Cold())
	require.Equal(t, 5.7, cfg.Update.Beta)
	require.Equal(t, 200, cfg.Update.Sweeps)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("lattice: [1, 2"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvSeed, "77")
	t.Setenv(config.EnvBeta, "6.0")
	t.Setenv(config.EnvGroup, "SU(3)")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, int64(77), cfg.Lattice.Seed)
	require.Equal(t, 6.0, cfg.Update.Beta)

	v, err := cfg.Variant()
	require.NoError(t, err)
	require.Equal(t, group.VariantSU3, v)
}

func TestLoad_EnvOverrideUnparsable(t *testing.T) {
	t.Setenv(config.EnvBeta, "hot")

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "run.yaml")
	cfg := config.DefaultConfig()
	cfg.Lattice.NT = 16
	cfg.Update.Hits = 3
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		mut   func(*config.Config)
		field string
	}{
		{"ZeroExtent", func(c *config.Config) { c.Lattice.NZ = 0 }, "lattice.nz"},
		{"UnknownGroup", func(c *config.Config) { c.Lattice.Group = "u1" }, "lattice.group"},
		{"BadStart", func(c *config.Config) { c.Lattice.Start = "warm" }, "lattice.start"},
		{"NegativeWorkers", func(c *config.Config) { c.Lattice.Workers = -1 }, "lattice.workers"},
		{"NegativeBeta", func(c *config.Config) { c.Update.Beta = -1 }, "update.beta"},
		{"NegativeThermalization", func(c *config.Config) { c.Update.Thermalization = -5 }, "update.thermalization"},
		{"NoSweeps", func(c *config.Config) { c.Update.Sweeps = 0 }, "update.sweeps"},
		{"NoHits", func(c *config.Config) { c.Update.Hits = 0 }, "update.hits"},
		{"ZeroEpsilon", func(c *config.Config) { c.Update.Epsilon = 0 }, "update.epsilon"},
		{"NegativeReunitarize", func(c *config.Config) { c.Update.ReunitarizeEvery = -1 }, "update.reunitarize_every"},
		{"NegativeMeasureStart", func(c *config.Config) { c.Measure.Start = -1 }, "measure.start"},
		{"ZeroSampleRate", func(c *config.Config) { c.Measure.SampleRate = 0 }, "measure.sample_rate"},
		{"NegativeMaxLag", func(c *config.Config) { c.Measure.MaxLag = -1 }, "measure.max_lag"},
		{"BadLevel", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mut(cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			require.Contains(t, err.Error(), tc.field)
		})
	}
}
