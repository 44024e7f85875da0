// Package config loads driver settings from defaults, an optional YAML file
// and BLOCKFALL_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "BLOCKFALL"

// Randomizer names accepted by Config.Randomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Config holds everything the commands need to build and run a game.
type Config struct {
	Board      BoardConfig   `mapstructure:"board"`
	Cadence    CadenceConfig `mapstructure:"cadence"`
	Randomizer string        `mapstructure:"randomizer"`
	Seed       uint64        `mapstructure:"seed"`
	FrameRate  int           `mapstructure:"frame_rate"`
	LogLevel   string        `mapstructure:"log_level"`
	DebugUI    bool          `mapstructure:"debug_ui"`
}

// BoardConfig sets the board dimensions in cells.
type BoardConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// CadenceConfig mirrors tetris.Cadence.
type CadenceConfig struct {
	Base time.Duration `mapstructure:"base"`
	Min  time.Duration `mapstructure:"min"`
	Step time.Duration `mapstructure:"step"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  tetris.Width,
			Height: tetris.Height,
		},
		Cadence: CadenceConfig{
			Base: tetris.DefaultCadence.Base,
			Min:  tetris.DefaultCadence.Min,
			Step: tetris.DefaultCadence.Step,
		},
		Randomizer: RandomizerUniform,
		FrameRate:  60,
		LogLevel:   zerolog.LevelInfoValue,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("board.width", d.Board.Width)
	v.SetDefault("board.height", d.Board.Height)
	v.SetDefault("cadence.base", d.Cadence.Base)
	v.SetDefault("cadence.min", d.Cadence.Min)
	v.SetDefault("cadence.step", d.Cadence.Step)
	v.SetDefault("randomizer", d.Randomizer)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("frame_rate", d.FrameRate)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("debug_ui", d.DebugUI)
}

// Load reads the configuration. An empty path skips the file and uses
// defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration can build a playable game.
func (c *Config) Validate() error {
	var errs []error

	if c.Board.Width < 4 || c.Board.Height < 4 {
		errs = append(errs, fmt.Errorf("board must be at least 4x4, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Cadence.Min <= 0 {
		errs = append(errs, fmt.Errorf("cadence.min must be positive, got %s", c.Cadence.Min))
	}
	if c.Cadence.Min > c.Cadence.Base {
		errs = append(errs, fmt.Errorf("cadence.min %s exceeds cadence.base %s", c.Cadence.Min, c.Cadence.Base))
	}
	if c.Cadence.Step < 0 {
		errs = append(errs, fmt.Errorf("cadence.step must not be negative, got %s", c.Cadence.Step))
	}
	if c.Randomizer != RandomizerUniform && c.Randomizer != RandomizerBag {
		errs = append(errs, fmt.Errorf("unknown randomizer %q", c.Randomizer))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}

	return errors.Join(errs...)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// TickCadence converts the cadence section for the engine driver.
func (c *Config) TickCadence() tetris.Cadence {
	return tetris.Cadence{
		Base: c.Cadence.Base,
		Min:  c.Cadence.Min,
		Step: c.Cadence.Step,
	}
}

// Generator builds the configured piece generator. A zero seed draws a
// random one.
func (c *Config) Generator() tetris.Generator {
	rng := c.rand()
	if c.Randomizer == RandomizerBag {
		return tetris.NewBagGenerator(rng)
	}
	return tetris.NewRandomGenerator(rng)
}

func (c *Config) rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// EngineOptions returns the engine options derived from the configuration.
func (c *Config) EngineOptions() []tetris.Option {
	return []tetris.Option{
		tetris.WithSize(c.Board.Width, c.Board.Height),
		tetris.WithGenerator(c.Generator()),
	}
}
