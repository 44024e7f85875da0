package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/driver"
	"github.com/plus3/blockfall/tetris"
)

// maxTrackedClear is the largest clear a compact piece can produce.
const maxTrackedClear = 4

// EnginePanel shows the game counters and per-game statistics.
type EnginePanel struct{}

// PanelRow is one label/value line of the summary section.
type PanelRow struct {
	Label string
	Value string
}

// NewEnginePanel creates the engine window.
func NewEnginePanel() *EnginePanel {
	return &EnginePanel{}
}

// Summarize collects the summary lines for engine running under cadence.
func Summarize(engine *tetris.Engine, cadence tetris.Cadence) []PanelRow {
	next := "-"
	if engine.Phase() != tetris.PhaseNotStarted {
		next = engine.Next().String()
	}

	active := "-"
	if piece, ok := engine.Active(); ok {
		active = fmt.Sprintf("%s at (%d, %d)", piece.Kind, piece.Position.X, piece.Position.Y)
	}

	return []PanelRow{
		{"Phase", engine.Phase().String()},
		{"Score", fmt.Sprintf("%d", engine.Score())},
		{"Level", fmt.Sprintf("%d", engine.Level())},
		{"Lines", fmt.Sprintf("%d", engine.Lines())},
		{"Active", active},
		{"Next", next},
		{"Drop Interval", cadence.Interval(engine.Level()).String()},
		{"Board", fmt.Sprintf("%dx%d", engine.Width(), engine.Height())},
	}
}

// Render draws the window for the engine owned by d.
func (p *EnginePanel) Render(d *driver.Driver) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 380), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	engine := d.Engine()
	for _, row := range Summarize(engine, d.Cadence()) {
		imgui.Text(fmt.Sprintf("%s: %s", row.Label, row.Value))
	}

	stats := engine.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Pieces Locked: %d", stats.PiecesLocked()))
	imgui.Text(fmt.Sprintf("Hard Drops: %d", stats.HardDrops()))
	imgui.Text(fmt.Sprintf("Pending Intents: %d", d.Pending()))

	if imgui.TreeNodeStr("Piece Counts") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PieceCountTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Spawned")
			imgui.TableHeadersRow()

			for _, kind := range tetris.Kinds() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(kind.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.Spawned(kind)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Line Clears") {
		for n := 1; n <= maxTrackedClear; n++ {
			imgui.BulletText(fmt.Sprintf("%d line(s): %d", n, stats.Clears(n)))
		}
		imgui.TreePop()
	}

	imgui.End()
}
