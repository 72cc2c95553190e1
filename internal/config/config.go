// SPDX-License-Identifier: MIT

// Package config loads the affinity run configuration.
//
// Precedence, lowest first: DefaultConfig, the optional TOML file, the
// environment (a .env file in the working directory is loaded first, if
// present), and finally command-line flags applied by the caller.
package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/affinity/score"
)

// Environment variables read by Load.
const (
	EnvSeed     = "AFFINITY_SEED"
	EnvWorkers  = "AFFINITY_WORKERS"
	EnvChoices  = "AFFINITY_CHOICES"
	EnvGroup    = "AFFINITY_GROUP_SIZE"
	EnvLogLevel = "AFFINITY_LOG_LEVEL"
	EnvDebug    = "AFFINITY_DEBUG"
	EnvXLSX     = "AFFINITY_XLSX"
)

// AppConfig is the full run configuration.
type AppConfig struct {
	Grouping GroupingConfig `toml:"grouping"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// GroupingConfig controls the partitioning run.
type GroupingConfig struct {
	// GroupSize overrides the size in the input file when > 0.
	GroupSize int `toml:"group_size"`
	// Choices fixes the preference list length; 0 uses the longest list.
	Choices int `toml:"choices"`
	// Seed seeds tie-breaking; 0 seeds from the clock once at startup.
	Seed int64 `toml:"seed"`
	// Workers is the number of scoring goroutines.
	Workers int `toml:"workers"`
	// Weights are the per-pair reciprocity points.
	Weights score.Weights `toml:"weights"`
}

// OutputConfig controls optional result exports.
type OutputConfig struct {
	XLSXPath string `toml:"xlsx_path"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Grouping: GroupingConfig{
			Workers: 1,
			Weights: score.DefaultWeights(),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the TOML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config %s", path)
		}
	}

	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *AppConfig) applyEnv() error {
	if err := envInt(EnvWorkers, &c.Grouping.Workers); err != nil {
		return err
	}
	if err := envInt(EnvChoices, &c.Grouping.Choices); err != nil {
		return err
	}
	if err := envInt(EnvGroup, &c.Grouping.GroupSize); err != nil {
		return err
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvSeed)
		}
		c.Grouping.Seed = seed
	}
	if v := os.Getenv(EnvDebug); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", EnvDebug)
		}
		c.Log.Debug = debug
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvXLSX); v != "" {
		c.Output.XLSXPath = v
	}

	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "parse %s", key)
	}
	*dst = n

	return nil
}

// Validate rejects values no run can use.
func (c *AppConfig) Validate() error {
	switch {
	case c.Grouping.GroupSize < 0:
		return errors.Errorf("grouping.group_size must be >= 0, got %d", c.Grouping.GroupSize)
	case c.Grouping.Choices < 0:
		return errors.Errorf("grouping.choices must be >= 0, got %d", c.Grouping.Choices)
	case c.Grouping.Workers < 1:
		return errors.Errorf("grouping.workers must be >= 1, got %d", c.Grouping.Workers)
	}
	if _, err := score.NewScorer(c.Grouping.Weights); err != nil {
		return errors.Wrap(err, "grouping.weights")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel resolves the effective log level; Debug forces log.DebugLevel.
func (c *AppConfig) LogLevel() (log.Level, error) {
	if c.Log.Debug {
		return log.DebugLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return 0, errors.Wrapf(err, "log.level %q", c.Log.Level)
	}

	return lvl, nil
}
