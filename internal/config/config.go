// SPDX-License-Identifier: MIT

// Package config loads and validates the YAML run configuration of gaugelat.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/yangmills/group"
	"github.com/katalvlaran/yangmills/lattice"
)

// Environment variables that override file values.
const (
	EnvSeed  = "YANGMILLS_SEED"
	EnvBeta  = "YANGMILLS_BETA"
	EnvGroup = "YANGMILLS_GROUP"
)

// Start modes.
const (
	StartHot  = "hot"
	StartCold = "cold"
)

// ErrInvalidConfig indicates a field with an unusable value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete run configuration.
type Config struct {
	Lattice LatticeConfig `yaml:"lattice"`
	Update  UpdateConfig  `yaml:"update"`
	Measure MeasureConfig `yaml:"measure"`
	Logging LoggingConfig `yaml:"logging"`
}

// LatticeConfig describes the gauge field.
type LatticeConfig struct {
	NX    int    `yaml:"nx"`
	NY    int    `yaml:"ny"`
	NZ    int    `yaml:"nz"`
	NT    int    `yaml:"nt"`
	Group string `yaml:"group"` // su2 or su3
	Start string `yaml:"start"` // hot or cold
	Seed  int64  `yaml:"seed"`
	// Workers bounds hot-start goroutines; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// UpdateConfig drives the Metropolis chain.
type UpdateConfig struct {
	Beta             float64 `yaml:"beta"`
	Thermalization   int     `yaml:"thermalization"`
	Sweeps           int     `yaml:"sweeps"`
	Hits             int     `yaml:"hits"`
	Epsilon          float64 `yaml:"epsilon"`
	ReunitarizeEvery int     `yaml:"reunitarize_every"`
}

// MeasureConfig controls sampling of observables during the measured sweeps.
type MeasureConfig struct {
	Start      int `yaml:"start"`
	SampleRate int `yaml:"sample_rate"`
	MaxLag     int `yaml:"max_lag"`
}

// LoggingConfig selects the log level.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Lattice: LatticeConfig{
			NX: 4, NY: 4, NZ: 4, NT: 4,
			Group: "su2",
			Start: StartHot,
			Seed:  1,
		},
		Update: UpdateConfig{
			Beta:             2.3,
			Thermalization:   50,
			Sweeps:           200,
			Hits:             10,
			Epsilon:          0.25,
			ReunitarizeEvery: 10,
		},
		Measure: MeasureConfig{
			SampleRate: 1,
			MaxLag:     20,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path on top of DefaultConfig and applies environment overrides.
// A missing file yields the defaults. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err = cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies YANGMILLS_* variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return invalid(EnvSeed, err.Error())
		}
		c.Lattice.Seed = seed
	}
	if v := os.Getenv(EnvBeta); v != "" {
		beta, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return invalid(EnvBeta, err.Error())
		}
		c.Update.Beta = beta
	}
	if v := os.Getenv(EnvGroup); v != "" {
		c.Lattice.Group = v
	}

	return nil
}

// Validate reports the first unusable field as ErrInvalidConfig.
func (c *Config) Validate() error {
	l := c.Lattice
	for _, e := range []struct {
		name string
		n    int
	}{{"lattice.nx", l.NX}, {"lattice.ny", l.NY}, {"lattice.nz", l.NZ}, {"lattice.nt", l.NT}} {
		if e.n <= 0 {
			return invalid(e.name, fmt.Sprintf("%d must be > 0", e.n))
		}
	}
	if _, err := c.Variant(); err != nil {
		return invalid("lattice.group", err.Error())
	}
	if s := strings.ToLower(l.Start); s != StartHot && s != StartCold {
		return invalid("lattice.start", fmt.Sprintf("%q is neither %q nor %q", l.Start, StartHot, StartCold))
	}
	if l.Workers < 0 {
		return invalid("lattice.workers", fmt.Sprintf("%d must be >= 0", l.Workers))
	}

	u := c.Update
	if math.IsNaN(u.Beta) || math.IsInf(u.Beta, 0) || u.Beta < 0 {
		return invalid("update.beta", fmt.Sprintf("%v must be finite and >= 0", u.Beta))
	}
	if u.Thermalization < 0 {
		return invalid("update.thermalization", fmt.Sprintf("%d must be >= 0", u.Thermalization))
	}
	if u.Sweeps < 1 {
		return invalid("update.sweeps", fmt.Sprintf("%d must be >= 1", u.Sweeps))
	}
	if u.Hits < 1 {
		return invalid("update.hits", fmt.Sprintf("%d must be >= 1", u.Hits))
	}
	if !(u.Epsilon > 0) || math.IsInf(u.Epsilon, 1) {
		return invalid("update.epsilon", fmt.Sprintf("%v must be finite and > 0", u.Epsilon))
	}
	if u.ReunitarizeEvery < 0 {
		return invalid("update.reunitarize_every", fmt.Sprintf("%d must be >= 0", u.ReunitarizeEvery))
	}

	m := c.Measure
	if m.Start < 0 {
		return invalid("measure.start", fmt.Sprintf("%d must be >= 0", m.Start))
	}
	if m.SampleRate < 1 {
		return invalid("measure.sample_rate", fmt.Sprintf("%d must be >= 1", m.SampleRate))
	}
	if m.MaxLag < 0 {
		return invalid("measure.max_lag", fmt.Sprintf("%d must be >= 0", m.MaxLag))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return invalid("logging.level", fmt.Sprintf("%q is not one of debug, info, warn, error", c.Logging.Level))
	}

	return nil
}

// Dims returns the lattice extents.
func (c *Config) Dims() lattice.Dims {
	return lattice.Dims{NX: c.Lattice.NX, NY: c.Lattice.NY, NZ: c.Lattice.NZ, NT: c.Lattice.NT}
}

// Variant parses the configured gauge group.
func (c *Config) Variant() (group.Variant, error) {
	return group.ParseVariant(c.Lattice.Group)
}

// Cold reports whether the lattice starts from unit links.
func (c *Config) Cold() bool {
	return strings.EqualFold(c.Lattice.Start, StartCold)
}

func invalid(field, msg string) error {
	return fmt.Errorf("%s: %s: %w", field, msg, ErrInvalidConfig)
}
