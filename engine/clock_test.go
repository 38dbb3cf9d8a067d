package engine

import (
	"testing"
	"time"
)

// TestClockAdvance verifies sim time accumulates only through Advance
func TestClockAdvance(t *testing.T) {
	c := NewPausableClock()
	if c.Now() != 0 {
		t.Errorf("Expected zero start time, got %v", c.Now())
	}
	c.Advance(16 * time.Millisecond)
	c.Advance(16 * time.Millisecond)
	if c.Now() != 32*time.Millisecond {
		t.Errorf("Expected 32ms, got %v", c.Now())
	}
}

// TestClockPauseFreezesTime verifies paused deltas accumulate as pause
// duration instead of sim time
func TestClockPauseFreezesTime(t *testing.T) {
	c := NewPausableClock()
	c.Advance(100 * time.Millisecond)

	c.Pause()
	if !c.IsPaused() {
		t.Fatal("Expected paused state")
	}
	c.Advance(500 * time.Millisecond)
	if c.Now() != 100*time.Millisecond {
		t.Errorf("Sim time advanced during pause: %v", c.Now())
	}
	if c.TotalPaused() != 500*time.Millisecond {
		t.Errorf("Expected 500ms pause accumulation, got %v", c.TotalPaused())
	}

	c.Resume()
	c.Advance(50 * time.Millisecond)
	if c.Now() != 150*time.Millisecond {
		t.Errorf("Expected 150ms after resume, got %v", c.Now())
	}
}

// TestClockReset verifies a full return to session start
func TestClockReset(t *testing.T) {
	c := NewPausableClock()
	c.Advance(time.Second)
	c.Pause()
	c.Advance(time.Second)
	c.Reset()

	if c.Now() != 0 || c.IsPaused() || c.TotalPaused() != 0 {
		t.Errorf("Reset incomplete: now=%v paused=%v totalPaused=%v",
			c.Now(), c.IsPaused(), c.TotalPaused())
	}
}
