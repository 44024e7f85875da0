package main

import (
	"context"
	"runtime"
	"time"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// maxFramesPerGame stops a game that refuses to top out.
const maxFramesPerGame = 1_000_000

// Options controls a simulation run.
type Options struct {
	Games        int
	Seed         uint64
	FrameTime    time.Duration
	ActionChance float64
}

// Simulate plays opts.Games games one after another at simulated time until
// they all end or ctx is done.
func Simulate(ctx context.Context, cfg *config.Config, opts Options, logger zerolog.Logger) *Report {
	report := &Report{
		Games:       opts.Games,
		Seed:        opts.Seed,
		Randomizer:  cfg.Randomizer,
		BoardWidth:  cfg.Board.Width,
		BoardHeight: cfg.Board.Height,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}
	if deadline, ok := ctx.Deadline(); ok {
		report.Duration = time.Until(deadline)
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := 0; i < opts.Games; i++ {
		if ctx.Err() != nil {
			break
		}
		result := playGame(ctx, cfg, opts, i, report, logger.With().Int("game", i).Logger())
		report.Results = append(report.Results, result)
	}

	report.TotalTime = time.Since(startTime)
	report.FrameTime.Finalize()
	report.summarize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report
}

func playGame(ctx context.Context, cfg *config.Config, opts Options, index int, report *Report, logger zerolog.Logger) GameResult {
	gameCfg := *cfg
	gameCfg.Seed = opts.Seed + uint64(index)

	engine := tetris.NewEngine(append(gameCfg.EngineOptions(),
		tetris.WithListener(driver.EventLogger(logger)),
	)...)
	d := driver.New(engine, gameCfg.TickCadence(), driver.WithLogger(logger))
	bot := NewBot(gameCfg.Seed, opts.ActionChance)
	dt := opts.FrameTime.Seconds()

	d.Queue(driver.IntentStart)

	var frames int64
	for frames < maxFramesPerGame {
		if frames%1024 == 0 && ctx.Err() != nil {
			break
		}

		bot.Act(d)
		frameStart := time.Now()
		d.Once(dt)
		report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
		frames++

		if engine.Phase() == tetris.PhaseGameOver {
			break
		}
	}

	stats := engine.Stats()
	result := GameResult{
		Index:     index,
		Seed:      gameCfg.Seed,
		Finished:  engine.Phase() == tetris.PhaseGameOver,
		Score:     engine.Score(),
		Lines:     engine.Lines(),
		Level:     engine.Level(),
		Pieces:    stats.PiecesLocked(),
		HardDrops: stats.HardDrops(),
		Frames:    frames,
		Ticks:     d.GetStats().Ticks,
		Simulated: time.Duration(frames) * opts.FrameTime,
	}
	for k := range result.Spawned {
		result.Spawned[k] = stats.Spawned(tetris.Kind(k))
	}
	for n := range result.Clears {
		result.Clears[n] = stats.Clears(n + 1)
	}

	logger.Info().
		Bool("finished", result.Finished).
		Int("score", result.Score).
		Int("lines", result.Lines).
		Int("pieces", result.Pieces).
		Int64("frames", result.Frames).
		Msg("game complete")

	return result
}
