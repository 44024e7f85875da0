// Package debugui renders Dear ImGui windows that inspect a running game.
// Callers own the ImGui frame: Render must be called between the backend's
// BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/driver"
)

// InputState tracks Dear ImGui's input capture state for the current frame.
// Use this to decide whether the game should ignore the keyboard.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay groups the debug windows drawn every frame.
type Overlay struct {
	panel *EnginePanel
	perf  PerformanceStats
	timer *FrameTimer
	input InputState
}

// NewOverlay creates an overlay keeping historyFrames frame-time samples.
func NewOverlay(historyFrames int) *Overlay {
	return &Overlay{
		panel: NewEnginePanel(),
		perf:  NewPerformanceStats(historyFrames),
		timer: NewFrameTimer(),
	}
}

// Render draws every window for d and refreshes the input capture state.
func (o *Overlay) Render(d *driver.Driver) {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	o.panel.Render(d)
	o.perf.Render(d, o.timer.GetDeltaTime())
}

// Input returns the capture state observed during the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}
