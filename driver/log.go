package driver

import (
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// EventLogger returns an engine listener that writes events to logger.
// Game over is logged at info level, everything else at debug.
func EventLogger(logger zerolog.Logger) func(tetris.Event) {
	return func(ev tetris.Event) {
		level := zerolog.DebugLevel
		if ev.Type == tetris.EventGameOver {
			level = zerolog.InfoLevel
		}

		entry := logger.WithLevel(level).
			Str("event", ev.Type.String()).
			Str("kind", ev.Kind.String()).
			Int("score", ev.Score).
			Int("game_level", ev.Level).
			Int("lines", ev.Lines)
		if ev.Cleared > 0 {
			entry = entry.Int("cleared", ev.Cleared)
		}
		entry.Msg("engine event")
	}
}
