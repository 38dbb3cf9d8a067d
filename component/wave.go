package component

import (
	"time"

	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/vmath"
)

// WaveState is the scheduler's mutable lifecycle record
// Number is monotonic within a session; only an explicit restart resets it
type WaveState struct {
	Number int
	Phase  core.WavePhase

	// ToSpawn is the planned enemy count for this wave
	ToSpawn int

	// Issued counts spawn slots consumed, including skipped slots
	Issued int

	// Boss marks a boss-wave override: one boss, zero standard spawns
	Boss bool

	// Pattern is this wave's placement algorithm
	Pattern core.SpawnPattern

	// Center is the placement origin captured at wave start
	Center vmath.Vec2

	// NextSpawnAt is the sim time of the next spawn issue
	NextSpawnAt time.Duration

	// BreakEndsAt is when the inter-wave break elapses
	BreakEndsAt time.Duration
}
