package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/driver"
)

// Key repeat timings in frames.
const (
	repeatDelay  = 10
	repeatRate   = 3
	softDropRate = 2
)

type binding struct {
	key    ebiten.Key
	intent driver.Intent
	delay  int
	rate   int
}

// keyboard maps held keys to intents. A rate of zero fires only on the
// first frame of a press.
type keyboard struct {
	bindings []binding
}

func newKeyboard() *keyboard {
	return &keyboard{
		bindings: []binding{
			{key: ebiten.KeyArrowLeft, intent: driver.IntentMoveLeft, delay: repeatDelay, rate: repeatRate},
			{key: ebiten.KeyArrowRight, intent: driver.IntentMoveRight, delay: repeatDelay, rate: repeatRate},
			{key: ebiten.KeyArrowDown, intent: driver.IntentSoftDrop, delay: softDropRate, rate: softDropRate},
			{key: ebiten.KeyArrowUp, intent: driver.IntentRotate},
			{key: ebiten.KeyX, intent: driver.IntentRotate},
			{key: ebiten.KeyZ, intent: driver.IntentRotateCCW},
			{key: ebiten.KeySpace, intent: driver.IntentHardDrop},
			{key: ebiten.KeyP, intent: driver.IntentTogglePause},
			{key: ebiten.KeyEnter, intent: driver.IntentStart},
			{key: ebiten.KeyR, intent: driver.IntentReset},
		},
	}
}

// Poll returns the intents triggered this frame. pressDuration reports how
// many frames a key has been held, zero when it is up.
func (k *keyboard) Poll(pressDuration func(ebiten.Key) int) []driver.Intent {
	var intents []driver.Intent
	for _, b := range k.bindings {
		if fires(pressDuration(b.key), b.delay, b.rate) {
			intents = append(intents, b.intent)
		}
	}
	return intents
}

func fires(duration, delay, rate int) bool {
	if duration == 1 {
		return true
	}
	if rate <= 0 || duration <= delay {
		return false
	}
	return (duration-delay)%rate == 0
}
