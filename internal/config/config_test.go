package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/affinity/internal/config"
	"github.com/katalvlaran/affinity/score"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "affinity.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, lvl)
}

func TestLoad_File(t *testing.T) {
	path := writeTOML(t, `
[grouping]
group_size = 3
choices = 2
seed = 77
workers = 4

[grouping.weights]
mutual = 5
one_way = 2

[output]
xlsx_path = "out.xlsx"

[log]
level = "warn"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Grouping.GroupSize)
	assert.Equal(t, 2, cfg.Grouping.Choices)
	assert.Equal(t, int64(77), cfg.Grouping.Seed)
	assert.Equal(t, 4, cfg.Grouping.Workers)
	assert.Equal(t, score.Weights{Mutual: 5, OneWay: 2}, cfg.Grouping.Weights)
	assert.Equal(t, "out.xlsx", cfg.Output.XLSXPath)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, lvl)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeTOML(t, "[grouping]\nseed = 1\nworkers = 2\n")
	t.Setenv(config.EnvSeed, "123")
	t.Setenv(config.EnvWorkers, "6")
	t.Setenv(config.EnvDebug, "true")
	t.Setenv(config.EnvXLSX, "env.xlsx")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.Grouping.Seed)
	assert.Equal(t, 6, cfg.Grouping.Workers)
	assert.Equal(t, "env.xlsx", cfg.Output.XLSXPath)

	lvl, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl, "debug forces the debug level")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeTOML(t, "[grouping\n"))
	assert.Error(t, err)

	_, err = config.Load(writeTOML(t, "[grouping]\nworkers = 0\n"))
	assert.ErrorContains(t, err, "workers")

	_, err = config.Load(writeTOML(t, "[log]\nlevel = \"loud\"\n"))
	assert.ErrorContains(t, err, "log.level")

	_, err = config.Load(writeTOML(t, "[grouping.weights]\nmutual = -1\n"))
	assert.ErrorIs(t, err, score.ErrNegativeWeight)

	t.Setenv(config.EnvWorkers, "many")
	_, err = config.Load("")
	assert.ErrorContains(t, err, config.EnvWorkers)
}
