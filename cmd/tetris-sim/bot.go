package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/driver"
)

var botIntents = []driver.Intent{
	driver.IntentMoveLeft,
	driver.IntentMoveRight,
	driver.IntentRotate,
	driver.IntentRotateCCW,
	driver.IntentSoftDrop,
	driver.IntentHardDrop,
}

// Bot presses random keys. It has no strategy and exists to push the engine
// through many locks, clears and top-outs.
type Bot struct {
	rng          *rand.Rand
	actionChance float64
}

// NewBot creates a bot that acts on a frame with probability actionChance.
func NewBot(seed uint64, actionChance float64) *Bot {
	return &Bot{
		rng:          rand.New(rand.NewPCG(seed, ^seed)),
		actionChance: actionChance,
	}
}

// Act queues at most one intent on d.
func (b *Bot) Act(d *driver.Driver) bool {
	if b.rng.Float64() >= b.actionChance {
		return false
	}
	d.Queue(botIntents[b.rng.IntN(len(botIntents))])
	return true
}
