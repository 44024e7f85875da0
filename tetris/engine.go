package tetris

import "fmt"

// Phase is the lifecycle state of a game.
type Phase uint8

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// EventType classifies engine notifications.
type EventType uint8

const (
	EventLocked EventType = iota + 1
	EventLinesCleared
	EventLevelUp
	EventGameOver
)

func (t EventType) String() string {
	switch t {
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("EventType(%d)", uint8(t))
	}
}

// Event describes a state change that drivers may want to react to. Score,
// Level and Lines hold the counters after the change.
type Event struct {
	Type    EventType
	Kind    Kind
	Cleared int
	Score   int
	Level   int
	Lines   int
}

// pointsTable is indexed by the number of lines cleared by one lock.
var pointsTable = [...]int{0, 100, 300, 500, 800}

const linesPerLevel = 10

type options struct {
	width     int
	height    int
	generator Generator
	listener  func(Event)
}

// Option configures an Engine.
type Option func(*options)

// WithSize sets the board dimensions.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithGenerator sets the source of piece kinds.
func WithGenerator(g Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithListener registers a callback invoked synchronously for every Event.
func WithListener(fn func(Event)) Option {
	return func(o *options) {
		o.listener = fn
	}
}

// Engine enforces the game rules over a Board and the active piece.
//
// The engine is synchronous and not safe for concurrent use: a driver calls
// Tick on its own cadence and forwards input through the movement methods.
// Every mutating method except Start and Reset is a no-op unless the game is
// running. Rejected moves leave the state untouched and report false.
type Engine struct {
	board     *Board
	generator Generator
	listener  func(Event)

	active *ActivePiece
	next   Kind

	score int
	level int
	lines int
	phase Phase

	stats *Stats
}

// NewEngine creates an engine in the NotStarted phase.
func NewEngine(opts ...Option) *Engine {
	o := options{width: Width, height: Height}
	for _, opt := range opts {
		opt(&o)
	}
	if o.generator == nil {
		o.generator = NewRandomGenerator(nil)
	}

	return &Engine{
		board:     NewBoard(o.width, o.height),
		generator: o.generator,
		listener:  o.listener,
		level:     1,
		stats:     newStats(),
	}
}

// Start begins a fresh game from any phase and spawns the first piece.
func (e *Engine) Start() {
	e.resetState()
	e.phase = PhaseRunning
	e.next = e.draw()
	e.Spawn()
}

// Reset clears the board and counters and returns to NotStarted.
func (e *Engine) Reset() {
	e.resetState()
	e.phase = PhaseNotStarted
}

func (e *Engine) resetState() {
	e.board.Reset()
	e.active = nil
	e.score = 0
	e.level = 1
	e.lines = 0
	e.stats.reset()
}

// Spawn installs the queued kind as the active piece, horizontally centered
// on the top row, and queues a new kind. If the piece does not fit the game
// ends and no piece is installed.
func (e *Engine) Spawn() bool {
	if e.phase != PhaseRunning {
		return false
	}

	kind := e.next
	e.next = e.draw()

	shape := kind.Shape()
	pos := Position{X: e.board.width/2 - shape.Width()/2, Y: 0}

	if !e.IsValidPlacement(shape, pos.X, pos.Y) {
		e.active = nil
		e.phase = PhaseGameOver
		e.emit(EventGameOver, kind, 0)
		return false
	}

	e.active = &ActivePiece{
		Kind:     kind,
		Shape:    shape,
		Color:    kind.Color(),
		Position: pos,
	}
	e.stats.recordSpawn(kind)
	return true
}

func (e *Engine) draw() Kind {
	kind := e.generator.Next()
	if !kind.Valid() {
		panic(fmt.Sprintf("tetris: generator produced %v", kind))
	}
	return kind
}

// IsValidPlacement reports whether shape fits with its origin at (x, y).
// Cells above the board are allowed; cells outside the side walls, below the
// floor, or on a locked cell are not.
func (e *Engine) IsValidPlacement(shape Shape, x, y int) bool {
	for mx, my := range shape.Cells() {
		bx, by := x+mx, y+my
		if !e.board.WithinHorizontalBounds(bx) || by >= e.board.height {
			return false
		}
		if by >= 0 && e.board.IsOccupied(bx, by) {
			return false
		}
	}
	return true
}

// MoveBy shifts the active piece by (dx, dy) if the target is free.
func (e *Engine) MoveBy(dx, dy int) bool {
	if e.phase != PhaseRunning || e.active == nil {
		return false
	}
	pos := Position{X: e.active.Position.X + dx, Y: e.active.Position.Y + dy}
	return e.place(e.active.Shape, pos)
}

// MoveLeft shifts the active piece one column left.
func (e *Engine) MoveLeft() bool { return e.MoveBy(-1, 0) }

// MoveRight shifts the active piece one column right.
func (e *Engine) MoveRight() bool { return e.MoveBy(1, 0) }

// SoftDrop moves the piece one row down without locking it.
func (e *Engine) SoftDrop() bool { return e.MoveBy(0, 1) }

// Rotate turns the active piece clockwise in place. There are no wall kicks:
// a rotation that collides is rejected.
func (e *Engine) Rotate() bool {
	if e.phase != PhaseRunning || e.active == nil {
		return false
	}
	return e.place(e.active.Shape.Rotate(), e.active.Position)
}

// RotateCounterClockwise turns the active piece counter-clockwise in place.
func (e *Engine) RotateCounterClockwise() bool {
	if e.phase != PhaseRunning || e.active == nil {
		return false
	}
	return e.place(e.active.Shape.RotateCounterClockwise(), e.active.Position)
}

func (e *Engine) place(shape Shape, pos Position) bool {
	if !e.IsValidPlacement(shape, pos.X, pos.Y) {
		return false
	}
	moved := *e.active
	moved.Shape = shape
	moved.Position = pos
	e.active = &moved
	return true
}

// Tick applies one step of gravity. When the piece cannot fall it locks,
// completed lines are cleared and scored, and the next piece spawns. Tick
// returns true only if the piece moved down.
func (e *Engine) Tick() bool {
	if e.phase != PhaseRunning || e.active == nil {
		return false
	}
	if e.MoveBy(0, 1) {
		return true
	}
	e.lock()
	return false
}

// HardDrop drops the active piece to the lowest free row and locks it
// immediately.
func (e *Engine) HardDrop() bool {
	if e.phase != PhaseRunning || e.active == nil {
		return false
	}
	for e.MoveBy(0, 1) {
	}
	e.stats.hardDrops++
	e.lock()
	return true
}

func (e *Engine) lock() {
	piece := e.active
	e.active = nil

	for x, y := range piece.Cells() {
		e.board.LockCell(x, y, piece.Color)
	}
	e.stats.piecesLocked++
	e.emit(EventLocked, piece.Kind, 0)

	if cleared := e.board.ClearCompletedLines(); cleared > 0 {
		e.award(piece.Kind, cleared)
	}

	e.Spawn()
}

func (e *Engine) award(kind Kind, cleared int) {
	e.score += pointsTable[min(cleared, len(pointsTable)-1)] * e.level
	e.lines += cleared
	e.stats.recordClear(cleared)

	previous := e.level
	e.level = e.lines/linesPerLevel + 1

	e.emit(EventLinesCleared, kind, cleared)
	if e.level != previous {
		e.emit(EventLevelUp, kind, cleared)
	}
}

func (e *Engine) emit(t EventType, kind Kind, cleared int) {
	if e.listener == nil {
		return
	}
	e.listener(Event{
		Type:    t,
		Kind:    kind,
		Cleared: cleared,
		Score:   e.score,
		Level:   e.level,
		Lines:   e.lines,
	})
}

// Pause suspends a running game.
func (e *Engine) Pause() bool {
	if e.phase != PhaseRunning {
		return false
	}
	e.phase = PhasePaused
	return true
}

// Resume continues a paused game.
func (e *Engine) Resume() bool {
	if e.phase != PhasePaused {
		return false
	}
	e.phase = PhaseRunning
	return true
}

// TogglePause pauses a running game or resumes a paused one.
func (e *Engine) TogglePause() bool {
	if e.phase == PhasePaused {
		return e.Resume()
	}
	return e.Pause()
}

// Score returns the points earned in the current game.
func (e *Engine) Score() int { return e.score }

// Level returns the current level, starting at 1.
func (e *Engine) Level() int { return e.level }

// Lines returns the number of lines cleared in the current game.
func (e *Engine) Lines() int { return e.lines }

// Phase returns the lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Width returns the board width.
func (e *Engine) Width() int { return e.board.width }

// Height returns the board height.
func (e *Engine) Height() int { return e.board.height }

// Stats returns the counters of the current game. The value is live and is
// cleared by Start and Reset.
func (e *Engine) Stats() *Stats { return e.stats }

// Next returns the kind that will spawn after the active piece locks. It is
// only meaningful once the game has started.
func (e *Engine) Next() Kind { return e.next }

// Active returns a copy of the falling piece, if any.
func (e *Engine) Active() (ActivePiece, bool) {
	if e.active == nil {
		return ActivePiece{}, false
	}
	piece := *e.active
	piece.Shape = piece.Shape.clone()
	return piece, true
}

// Ghost returns where the active piece would land if hard dropped.
func (e *Engine) Ghost() (Position, bool) {
	if e.active == nil {
		return Position{}, false
	}
	pos := e.active.Position
	for e.IsValidPlacement(e.active.Shape, pos.X, pos.Y+1) {
		pos.Y++
	}
	return pos, true
}

// Snapshot returns the locked cells overlaid with the active piece. Piece
// cells above the board are omitted.
func (e *Engine) Snapshot() Grid {
	grid := e.board.Rows()
	if e.active != nil {
		for x, y := range e.active.Cells() {
			if y >= 0 {
				grid[y][x] = Filled(e.active.Color)
			}
		}
	}
	return grid
}
