package driver

import (
	"fmt"

	"github.com/plus3/blockfall/tetris"
)

// Intent is an abstract player action, decoupled from any input device.
type Intent uint8

const (
	IntentMoveLeft Intent = iota
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentRotateCCW
	IntentHardDrop
	IntentTogglePause
	IntentStart
	IntentReset
)

var intentNames = [...]string{
	IntentMoveLeft:    "move_left",
	IntentMoveRight:   "move_right",
	IntentSoftDrop:    "soft_drop",
	IntentRotate:      "rotate",
	IntentRotateCCW:   "rotate_ccw",
	IntentHardDrop:    "hard_drop",
	IntentTogglePause: "toggle_pause",
	IntentStart:       "start",
	IntentReset:       "reset",
}

func (i Intent) String() string {
	if int(i) >= len(intentNames) {
		return fmt.Sprintf("Intent(%d)", uint8(i))
	}
	return intentNames[i]
}

// Apply performs the intent against engine and reports whether it changed state.
func (i Intent) Apply(engine *tetris.Engine) bool {
	switch i {
	case IntentMoveLeft:
		return engine.MoveLeft()
	case IntentMoveRight:
		return engine.MoveRight()
	case IntentSoftDrop:
		return engine.SoftDrop()
	case IntentRotate:
		return engine.Rotate()
	case IntentRotateCCW:
		return engine.RotateCounterClockwise()
	case IntentHardDrop:
		return engine.HardDrop()
	case IntentTogglePause:
		return engine.TogglePause()
	case IntentStart:
		engine.Start()
		return true
	case IntentReset:
		engine.Reset()
		return true
	default:
		panic("driver: unknown intent " + i.String())
	}
}
