package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/driver"
)

const (
	debugWindowWidth  = 1280
	debugWindowHeight = 720
)

// Game implements ebiten.Game on top of a driver.
type Game struct {
	driver  *driver.Driver
	layout  layout
	keys    *keyboard
	overlay *debugui_ebiten.ImguiBackend
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.overlay == nil || !g.overlay.WantCaptureKeyboard() {
		for _, intent := range g.keys.Poll(inpututil.KeyPressDuration) {
			g.driver.Queue(intent)
		}
	}

	g.driver.Once(1.0 / float64(ebiten.TPS()))

	if g.overlay != nil {
		g.overlay.Update(g.driver)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.layout.draw(screen, g.driver.Engine())

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.layout.screenWidth, g.layout.screenHeight
}
