package parameter

import (
	"time"
)

// Wave Scheduling
const (
	// WaveBaseCount is the enemy count of wave 1 before scaling
	WaveBaseCount = 5.0

	// WaveCountIncrement is added to the base count per wave
	WaveCountIncrement = 2.0

	// WaveScaling is the exponential growth factor; the effective
	// exponent advances by 0.1 per wave
	WaveScaling = 1.2

	// WaveBossInterval selects boss waves: every Nth wave spawns a single
	// boss instead of the standard batch
	WaveBossInterval = 5

	// MaxEnemiesAlive is the concurrent alive cap; spawning suspends
	// (not fails) while the arena is at capacity
	MaxEnemiesAlive = 40

	// WaveSpawnDelay is the pause between consecutive spawn issues
	WaveSpawnDelay = 400 * time.Millisecond

	// WaveBreakDuration is the rest interval between cleared waves
	WaveBreakDuration = 3 * time.Second
)

// Spawn Placement
const (
	// SpawnRadius is the placement ring radius around the spawn center
	SpawnRadius = 18.0

	// SpawnMinDistance is the closest a spawn may land to the target
	SpawnMinDistance = 6.0

	// SpawnRetryLimit bounds validation retries before the unconditional
	// fallback position is used
	SpawnRetryLimit = 10
)
