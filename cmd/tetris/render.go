package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

const (
	cellSize     = 28
	boardMargin  = 20
	sidebarWidth = 160
	ghostAlpha   = 70
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{32, 32, 40, 255}
	gridLineColor   = color.RGBA{44, 44, 54, 255}
	borderColor     = color.RGBA{128, 128, 128, 255}
)

// layout positions the well and the sidebar for a board size.
type layout struct {
	boardWidth   int
	boardHeight  int
	screenWidth  int
	screenHeight int
}

func newLayout(boardWidth, boardHeight int) layout {
	return layout{
		boardWidth:   boardWidth,
		boardHeight:  boardHeight,
		screenWidth:  boardMargin*2 + boardWidth*cellSize + sidebarWidth,
		screenHeight: boardMargin*2 + boardHeight*cellSize,
	}
}

func (l layout) cellOrigin(x, y int) (float32, float32) {
	return float32(boardMargin + x*cellSize), float32(boardMargin + y*cellSize)
}

func pieceColor(c tetris.Color, alpha uint8) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, alpha}
}

func (l layout) draw(screen *ebiten.Image, engine *tetris.Engine) {
	screen.Fill(backgroundColor)

	wellX, wellY := l.cellOrigin(0, 0)
	wellW, wellH := float32(l.boardWidth*cellSize), float32(l.boardHeight*cellSize)
	vector.DrawFilledRect(screen, wellX, wellY, wellW, wellH, wellColor, false)
	vector.StrokeRect(screen, wellX-2, wellY-2, wellW+4, wellH+4, 2, borderColor, false)

	l.drawGhost(screen, engine)

	for y, row := range engine.Snapshot() {
		for x, cell := range row {
			sx, sy := l.cellOrigin(x, y)
			if !cell.IsFilled() {
				vector.StrokeRect(screen, sx, sy, cellSize, cellSize, 1, gridLineColor, false)
				continue
			}
			vector.DrawFilledRect(screen, sx, sy, cellSize, cellSize, pieceColor(cell.Color(), 255), false)
			vector.StrokeRect(screen, sx, sy, cellSize, cellSize, 1, color.Black, false)
		}
	}

	l.drawSidebar(screen, engine)
}

func (l layout) drawGhost(screen *ebiten.Image, engine *tetris.Engine) {
	piece, ok := engine.Active()
	if !ok {
		return
	}
	ghost, _ := engine.Ghost()
	if ghost == piece.Position {
		return
	}

	c := pieceColor(piece.Color, ghostAlpha)
	for x, y := range piece.Shape.Cells() {
		by := ghost.Y + y
		if by < 0 {
			continue
		}
		sx, sy := l.cellOrigin(ghost.X+x, by)
		vector.DrawFilledRect(screen, sx, sy, cellSize, cellSize, c, false)
	}
}

func (l layout) drawSidebar(screen *ebiten.Image, engine *tetris.Engine) {
	textX := boardMargin*2 + l.boardWidth*cellSize
	textY := boardMargin

	lines := []string{
		fmt.Sprintf("Score: %d", engine.Score()),
		fmt.Sprintf("Level: %d", engine.Level()),
		fmt.Sprintf("Lines: %d", engine.Lines()),
		"",
		"Next:",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, textX, textY+i*16)
	}

	previewY := textY + len(lines)*16 + 4
	if engine.Phase() != tetris.PhaseNotStarted {
		next := engine.Next()
		c := pieceColor(next.Color(), 255)
		for x, y := range next.Shape().Cells() {
			px := float32(textX + x*cellSize/2)
			py := float32(previewY + y*cellSize/2)
			vector.DrawFilledRect(screen, px, py, cellSize/2, cellSize/2, c, false)
		}
	}

	if msg := phaseMessage(engine.Phase()); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, textX, previewY+3*cellSize)
	}
}

func phaseMessage(phase tetris.Phase) string {
	switch phase {
	case tetris.PhaseNotStarted:
		return "Press Enter to start"
	case tetris.PhasePaused:
		return "PAUSED\nP to resume"
	case tetris.PhaseGameOver:
		return "GAME OVER\nEnter to play again"
	default:
		return ""
	}
}
