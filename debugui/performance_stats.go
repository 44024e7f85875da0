package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/driver"
)

// PerformanceStats plots recent frame times next to the driver's
// per-operation timings.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewPerformanceStats keeps the last historyFrames frame times. It panics if
// historyFrames is not positive.
func NewPerformanceStats(historyFrames int) PerformanceStats {
	if historyFrames <= 0 {
		panic(fmt.Sprintf("debugui: invalid frame history size %d", historyFrames))
	}
	return PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
	}
}

// Record stores a frame duration given in seconds.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the history in milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	return avgFrameTime / float32(ps.historyFrames)
}

// Render records deltaTime and draws the window for d.
func (ps *PerformanceStats) Render(d *driver.Driver, deltaTime float32) {
	ps.Record(deltaTime)

	imgui.SetNextWindowPosV(imgui.NewVec2(320, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := d.GetStats()

	imgui.Text(fmt.Sprintf("Frame Stages: %d", stats.OperationCount))
	imgui.Text(fmt.Sprintf("Stage Executions: %d", stats.TotalExecutions))
	imgui.Text(fmt.Sprintf("Gravity Ticks: %d", stats.Ticks))

	avgFrameTime := ps.AverageFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Stage Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("StageStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Stage")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, op := range stats.Operations {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(op.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", op.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(op.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(op.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(op.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures the wall time between successive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

// NewFrameTimer starts timing from now.
func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// GetDeltaTime returns the seconds since the previous call.
func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
