package driver

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeY(t *testing.T, engine *tetris.Engine) int {
	t.Helper()
	piece, ok := engine.Active()
	require.True(t, ok)
	return piece.Position.Y
}

func TestDriverGravity(t *testing.T) {
	t.Run("partial interval does not tick", func(t *testing.T) {
		d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)
		d.Queue(IntentStart)

		d.Once(0.5)

		assert.Equal(t, 0, activeY(t, d.Engine()))
	})

	t.Run("intervals accumulate across frames", func(t *testing.T) {
		d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)
		d.Queue(IntentStart)

		d.Once(0.5)
		d.Once(0.5)

		assert.Equal(t, 1, activeY(t, d.Engine()))
	})

	t.Run("one tick per full interval", func(t *testing.T) {
		d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)
		d.Queue(IntentStart)

		d.Once(2.5)

		assert.Equal(t, 2, activeY(t, d.Engine()))
		assert.Equal(t, int64(2), d.GetStats().Ticks)
	})

	t.Run("not started", func(t *testing.T) {
		d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)

		d.Once(10)

		assert.Equal(t, tetris.PhaseNotStarted, d.Engine().Phase())
		assert.Equal(t, int64(0), d.GetStats().Ticks)
	})

	t.Run("custom cadence", func(t *testing.T) {
		cadence := tetris.Cadence{Base: 100 * time.Millisecond, Min: 10 * time.Millisecond, Step: 10 * time.Millisecond}
		d := New(newTestEngine(tetris.KindO), cadence)
		d.Queue(IntentStart)

		d.Once(0.5)

		assert.Equal(t, 5, activeY(t, d.Engine()))
		assert.Equal(t, 100*time.Millisecond, d.Interval())
	})
}

func TestDriverPauseKeepsPartialInterval(t *testing.T) {
	d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)
	d.Queue(IntentStart)
	d.Once(0.75)

	d.Queue(IntentTogglePause)
	d.Once(5)
	assert.Equal(t, tetris.PhasePaused, d.Engine().Phase())
	assert.Equal(t, 0, activeY(t, d.Engine()))

	d.Queue(IntentTogglePause)
	d.Once(0.25)
	assert.Equal(t, 1, activeY(t, d.Engine()))
}

func TestDriverRestartClearsAccumulator(t *testing.T) {
	d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)
	d.Queue(IntentStart)
	d.Once(0.9)

	d.Queue(IntentStart)
	d.Once(0.2)

	assert.Equal(t, 0, activeY(t, d.Engine()))
}

func TestDriverGameOverStopsGravity(t *testing.T) {
	d := New(newTestEngine(tetris.KindO), tetris.DefaultCadence)
	d.Queue(IntentStart)
	d.Once(0)

	for d.Engine().Phase() == tetris.PhaseRunning {
		d.Queue(IntentHardDrop)
		d.Once(0)
	}
	ticks := d.GetStats().Ticks

	d.Once(100)

	assert.Equal(t, tetris.PhaseGameOver, d.Engine().Phase())
	assert.Equal(t, ticks, d.GetStats().Ticks)
}

func TestDriverStats(t *testing.T) {
	d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)
	d.Queue(IntentStart)

	for range 3 {
		d.Once(1.0)
	}

	stats := d.GetStats()
	assert.Equal(t, 2, stats.OperationCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)
	assert.Equal(t, int64(3), stats.Ticks)
	require.Len(t, stats.Operations, 2)
	assert.Equal(t, "flush", stats.Operations[0].Name)
	assert.Equal(t, "gravity", stats.Operations[1].Name)
	for _, op := range stats.Operations {
		assert.Equal(t, int64(3), op.ExecutionCount)
		assert.LessOrEqual(t, op.MinDuration, op.MaxDuration)
		assert.Equal(t, op.TotalDuration/3, op.AvgDuration)
	}
}

func TestDriverRun(t *testing.T) {
	d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence)
	d.Queue(IntentStart)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		d.Run(ctx, time.Millisecond)
		done <- true
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	assert.Equal(t, tetris.PhaseRunning, d.Engine().Phase())
	assert.Equal(t, 0, d.Pending())
}

func TestDriverLogsPhaseChanges(t *testing.T) {
	var buf bytes.Buffer
	d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence, WithLogger(zerolog.New(&buf)))

	d.Queue(IntentStart)
	d.Once(0)
	d.Once(0)
	d.Queue(IntentTogglePause)
	d.Once(0)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "phase changed", entry["message"])
	assert.Equal(t, "NotStarted", entry["from"])
	assert.Equal(t, "Running", entry["to"])

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "Paused", entry["to"])
}

func TestEventLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.InfoLevel)
	engine := tetris.NewEngine(
		tetris.WithGenerator(tetris.NewSequenceGenerator(tetris.KindO)),
		tetris.WithListener(EventLogger(logger)),
	)
	engine.Start()

	for engine.Phase() == tetris.PhaseRunning {
		engine.HardDrop()
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug events are filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "game_over", entry["event"])
	assert.Equal(t, "O", entry["kind"])
}

func TestDriverLogsPhaseOncePerFrame(t *testing.T) {
	var buf bytes.Buffer
	d := New(newTestEngine(tetris.KindT), tetris.DefaultCadence, WithLogger(zerolog.New(&buf)))

	d.Queue(IntentStart)
	d.Once(0)
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))

	d.Queue(IntentTogglePause)
	d.Queue(IntentTogglePause)
	d.Once(0)

	assert.Equal(t, tetris.PhaseRunning, d.Engine().Phase())
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"), "a pause and resume in one frame is not a phase change")
}
