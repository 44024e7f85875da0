package tetris

import "time"

// Cadence describes how the gravity interval shrinks as the level rises.
type Cadence struct {
	Base time.Duration
	Min  time.Duration
	Step time.Duration
}

// DefaultCadence starts at one drop per second and speeds up by 100ms per
// level down to 100ms.
var DefaultCadence = Cadence{
	Base: time.Second,
	Min:  100 * time.Millisecond,
	Step: 100 * time.Millisecond,
}

// Interval returns the time between gravity ticks at the given level.
func (c Cadence) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	return max(c.Min, c.Base-time.Duration(level-1)*c.Step)
}

// DropInterval is DefaultCadence.Interval.
func DropInterval(level int) time.Duration {
	return DefaultCadence.Interval(level)
}
