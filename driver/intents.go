package driver

import (
	"slices"

	"github.com/plus3/blockfall/tetris"
)

// Intents buffers player input between frames so that the engine is only
// mutated at a single point in the frame.
type Intents struct {
	queue []Intent
}

func newIntents() *Intents {
	return &Intents{}
}

// Push queues an intent.
func (c *Intents) Push(intent Intent) {
	c.queue = append(c.queue, intent)
}

// Len returns the number of queued intents.
func (c *Intents) Len() int {
	return len(c.queue)
}

// Contains reports whether any of the given intents is queued.
func (c *Intents) Contains(intents ...Intent) bool {
	for _, intent := range intents {
		if slices.Contains(c.queue, intent) {
			return true
		}
	}
	return false
}

// Flush applies all queued intents to engine in order, resetting the buffer.
// It returns the number of intents that changed state.
func (c *Intents) Flush(engine *tetris.Engine) int {
	applied := 0
	for _, intent := range c.queue {
		if intent.Apply(engine) {
			applied++
		}
	}

	c.queue = c.queue[:0]
	return applied
}
