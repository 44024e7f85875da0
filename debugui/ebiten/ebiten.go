// Package ebiten hosts the debug overlay inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/driver"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend together with the
// overlay it draws.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
	overlay *debugui.Overlay
}

// NewImguiBackend creates the backend and its window. The imgui.ini file is
// disabled so window layout never leaks between runs.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &ImguiBackend{
		EbitenBackend: backend,
		overlay:       debugui.NewOverlay(120),
	}
}

// Update renders the overlay windows for d inside a complete ImGui frame.
func (b *ImguiBackend) Update(d *driver.Driver) {
	b.BeginFrame()
	b.overlay.Render(d)
	b.EndFrame()
}

// WantCaptureKeyboard reports whether an overlay window had keyboard focus
// during the last frame.
func (b *ImguiBackend) WantCaptureKeyboard() bool {
	return b.overlay.Input().WantCaptureKeyboard
}
