package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, tetris.Width, cfg.Board.Width)
	assert.Equal(t, tetris.Height, cfg.Board.Height)
	assert.Equal(t, tetris.DefaultCadence, cfg.TickCadence())
	assert.Equal(t, RandomizerUniform, cfg.Randomizer)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 12
  height: 24
cadence:
  base: 800ms
  min: 50ms
  step: 75ms
randomizer: bag
seed: 1234
frame_rate: 120
log_level: debug
debug_ui: true
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, BoardConfig{Width: 12, Height: 24}, cfg.Board)
	assert.Equal(t, tetris.Cadence{Base: 800 * time.Millisecond, Min: 50 * time.Millisecond, Step: 75 * time.Millisecond}, cfg.TickCadence())
	assert.Equal(t, RandomizerBag, cfg.Randomizer)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, 120, cfg.FrameRate)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.True(t, cfg.DebugUI)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "randomizer: bag\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, RandomizerBag, cfg.Randomizer)
	assert.Equal(t, tetris.Width, cfg.Board.Width)
	assert.Equal(t, tetris.DefaultCadence, cfg.TickCadence())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BLOCKFALL_BOARD_WIDTH", "8")
	t.Setenv("BLOCKFALL_CADENCE_BASE", "2s")
	t.Setenv("BLOCKFALL_SEED", "99")
	path := writeConfig(t, "board:\n  width: 12\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Board.Width, "environment wins over the file")
	assert.Equal(t, 2*time.Second, cfg.Cadence.Base)
	assert.Equal(t, uint64(99), cfg.Seed)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"board too small", func(c *Config) { c.Board.Width = 3 }, "at least 4x4"},
		{"non-positive min", func(c *Config) { c.Cadence.Min = 0 }, "cadence.min must be positive"},
		{"min above base", func(c *Config) { c.Cadence.Min = 2 * time.Second }, "exceeds cadence.base"},
		{"negative step", func(c *Config) { c.Cadence.Step = -time.Millisecond }, "cadence.step"},
		{"unknown randomizer", func(c *Config) { c.Randomizer = "lucky" }, `unknown randomizer "lucky"`},
		{"frame rate", func(c *Config) { c.FrameRate = 0 }, "frame_rate"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := writeConfig(t, "randomizer: lucky\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestGenerator(t *testing.T) {
	t.Run("seeded generators repeat", func(t *testing.T) {
		cfg := Default()
		cfg.Seed = 42

		a, b := cfg.Generator(), cfg.Generator()
		for range 50 {
			assert.Equal(t, a.Next(), b.Next())
		}
	})

	t.Run("randomizer selects the implementation", func(t *testing.T) {
		cfg := Default()
		assert.IsType(t, &tetris.RandomGenerator{}, cfg.Generator())

		cfg.Randomizer = RandomizerBag
		assert.IsType(t, &tetris.BagGenerator{}, cfg.Generator())
	})
}

func TestEngineOptions(t *testing.T) {
	cfg := Default()
	cfg.Board = BoardConfig{Width: 6, Height: 12}

	engine := tetris.NewEngine(cfg.EngineOptions()...)

	assert.Equal(t, 6, engine.Width())
	assert.Equal(t, 12, engine.Height())
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BLOCKFALL_FRAME_RATE=30\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("BLOCKFALL_FRAME_RATE") })

	require.NoError(t, LoadDotEnv(path))
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FrameRate)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
