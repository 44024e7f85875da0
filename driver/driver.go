// Package driver runs a tetris.Engine against wall-clock time. It buffers
// input intents between frames and issues gravity ticks at the cadence of the
// current level.
package driver

import (
	"context"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
)

// Stats provides statistics about driver execution.
type Stats struct {
	OperationCount  int
	TotalExecutions int64
	Ticks           int64
	Operations      []OperationStats
}

// OperationStats provides execution statistics for a single frame stage.
type OperationStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type operationStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func (s *operationStatsInternal) record(duration time.Duration) {
	s.executionCount++
	s.lastDuration = duration
	s.totalDuration += duration

	if duration < s.minDuration {
		s.minDuration = duration
	}
	if duration > s.maxDuration {
		s.maxDuration = duration
	}
}

const (
	opFlush = iota
	opGravity
	opCount
)

var operationNames = [opCount]string{
	opFlush:   "flush",
	opGravity: "gravity",
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger used for phase transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// Driver owns the frame loop around a single engine. It is not safe for
// concurrent use; Run executes every frame on the calling goroutine.
type Driver struct {
	engine      *tetris.Engine
	cadence     tetris.Cadence
	intents     *Intents
	accumulator time.Duration
	ticks       int64
	lastPhase   tetris.Phase
	logger      zerolog.Logger
	stats       [opCount]*operationStatsInternal
}

// New creates a driver for engine using cadence to space gravity ticks.
func New(engine *tetris.Engine, cadence tetris.Cadence, opts ...Option) *Driver {
	d := &Driver{
		engine:    engine,
		cadence:   cadence,
		intents:   newIntents(),
		lastPhase: engine.Phase(),
		logger:    zerolog.Nop(),
	}
	for i := range d.stats {
		d.stats[i] = &operationStatsInternal{
			name:        operationNames[i],
			minDuration: time.Duration(1<<63 - 1),
		}
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Engine returns the driven engine.
func (d *Driver) Engine() *tetris.Engine { return d.engine }

// Cadence returns the gravity cadence.
func (d *Driver) Cadence() tetris.Cadence { return d.cadence }

// Interval returns the current gravity interval.
func (d *Driver) Interval() time.Duration {
	return d.cadence.Interval(d.engine.Level())
}

// Queue buffers an intent until the next frame.
func (d *Driver) Queue(intent Intent) {
	d.intents.Push(intent)
}

// Pending returns the number of buffered intents.
func (d *Driver) Pending() int {
	return d.intents.Len()
}

// Once runs a single frame: buffered intents are applied in order, then dt
// seconds of gravity are simulated.
func (d *Driver) Once(dt float64) {
	restart := d.intents.Contains(IntentStart, IntentReset)

	d.measure(opFlush, func() {
		d.intents.Flush(d.engine)
	})
	if restart {
		d.accumulator = 0
	}

	d.measure(opGravity, func() {
		d.advance(time.Duration(dt * float64(time.Second)))
	})

	d.observePhase()
}

func (d *Driver) measure(op int, fn func()) {
	start := time.Now()
	fn()
	d.stats[op].record(time.Since(start))
}

// advance accumulates elapsed time while running and ticks once per full
// interval. Paused games keep their partial interval; stopped games drop it.
func (d *Driver) advance(elapsed time.Duration) {
	phase := d.engine.Phase()
	if phase == tetris.PhasePaused {
		return
	}
	if phase != tetris.PhaseRunning {
		d.accumulator = 0
		return
	}

	d.accumulator += elapsed
	for d.engine.Phase() == tetris.PhaseRunning {
		interval := d.Interval()
		if d.accumulator < interval {
			return
		}
		d.accumulator -= interval
		d.engine.Tick()
		d.ticks++
	}
	d.accumulator = 0
}

// observePhase logs the phase at the end of a frame when it differs from the
// previous frame's. Transitions are sampled once per frame: a pause and resume
// flushed together log nothing, and a Start that tops out immediately logs a
// single NotStarted to GameOver change. Attach EventLogger to the engine for
// per-event detail.
func (d *Driver) observePhase() {
	phase := d.engine.Phase()
	if phase == d.lastPhase {
		return
	}

	d.logger.Info().
		Str("from", d.lastPhase.String()).
		Str("to", phase.String()).
		Int("score", d.engine.Score()).
		Int("game_level", d.engine.Level()).
		Int("lines", d.engine.Lines()).
		Msg("phase changed")
	d.lastPhase = phase
}

// Run executes frames at the given interval until the context is cancelled.
func (d *Driver) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			d.Once(dt)
		}
	}
}

// GetStats returns statistics about frame execution.
func (d *Driver) GetStats() *Stats {
	stats := &Stats{
		OperationCount: len(d.stats),
		Ticks:          d.ticks,
		Operations:     make([]OperationStats, len(d.stats)),
	}

	var totalExecs int64
	for i, internal := range d.stats {
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Operations[i] = OperationStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
