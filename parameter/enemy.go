package parameter

import (
	"time"
)

// Shared Enemy Behavior
// Per-archetype tunables live in the archetype catalog; constants here
// apply to every variant
const (
	// EnemyFlashDuration is how long the damage flash stays visible
	EnemyFlashDuration = 120 * time.Millisecond

	// EnemyContactRadius is the melee contact range to the target
	EnemyContactRadius = 1.2

	// EnemyContactInterval is the minimum spacing between contact hits
	// from the same enemy
	EnemyContactInterval = 500 * time.Millisecond

	// SummonPlacementRadius is the scatter radius for summoned minions
	// around their summoner
	SummonPlacementRadius = 3.0
)
