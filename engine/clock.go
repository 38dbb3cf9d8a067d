package engine

import (
	"time"
)

// PausableClock is the simulation time source
// Time advances only through Advance calls from the tick loop, which keeps
// every timer deterministic under test and freezes all progression while
// paused without touching any counter
type PausableClock struct {
	now         time.Duration
	paused      bool
	totalPaused time.Duration
}

func NewPausableClock() *PausableClock {
	return &PausableClock{}
}

// Now returns elapsed sim time since session start
func (c *PausableClock) Now() time.Duration {
	return c.now
}

// Advance moves sim time forward by dt
// While paused the delta accumulates as pause duration instead
func (c *PausableClock) Advance(dt time.Duration) {
	if c.paused {
		c.totalPaused += dt
		return
	}
	c.now += dt
}

// Pause freezes sim time; progression resumes exactly where it left off
func (c *PausableClock) Pause() {
	c.paused = true
}

// Resume continues sim time advancement
func (c *PausableClock) Resume() {
	c.paused = false
}

// IsPaused returns the current pause state
func (c *PausableClock) IsPaused() bool {
	return c.paused
}

// TotalPaused returns cumulative pause duration
func (c *PausableClock) TotalPaused() time.Duration {
	return c.totalPaused
}

// Reset returns the clock to session start
func (c *PausableClock) Reset() {
	c.now = 0
	c.paused = false
	c.totalPaused = 0
}
