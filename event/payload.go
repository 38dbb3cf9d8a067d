package event

import (
	"time"

	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/vmath"
)

// WaveStartedPayload announces wave number, planned count and boss flag
type WaveStartedPayload struct {
	Number int
	Count  int
	Boss   bool
}

// WaveClearedPayload marks the end of a wave's combat phase
type WaveClearedPayload struct {
	Number int
}

// EnemySpawnedPayload carries the new instance and its archetype id
type EnemySpawnedPayload struct {
	Entity    core.Entity
	Archetype string
	Variant   core.BehaviorVariant
	Pos       vmath.Vec2
	Wave      int
}

// EnemyKilledPayload carries the award values, already wave-scaled
type EnemyKilledPayload struct {
	Entity  core.Entity
	Variant core.BehaviorVariant
	Pos     vmath.Vec2
	Score   int
	XP      int
}

// EnemyShotPayload describes a projectile the front-end must fly
type EnemyShotPayload struct {
	From   core.Entity
	Origin vmath.Vec2
	Dir    vmath.Vec2
	Speed  float64
	Damage float64
}

// ExplosionPayload is an instantaneous area effect at a point
// Enemy-side damage is already applied by the core; the payload lets the
// collaborator resolve target damage and visuals
type ExplosionPayload struct {
	Source core.Entity
	Pos    vmath.Vec2
	Radius float64
	Damage float64
}

// PlayerHitPayload is direct damage to the target
type PlayerHitPayload struct {
	Source core.Entity
	Damage float64
}

// CurseAppliedPayload slows the target for a fixed duration
type CurseAppliedPayload struct {
	Source     core.Entity
	SlowFactor float64
	Duration   time.Duration
}

// LevelUpPayload carries the choice set for the UI collaborator
type LevelUpPayload struct {
	Level   int
	Choices []string
}

// UpgradeAppliedPayload confirms an acquisition and its new stack count
type UpgradeAppliedPayload struct {
	ID     string
	Stacks int
}

// SynergyActivatedPayload fires when both halves of a synergy are owned
type SynergyActivatedPayload struct {
	Key string
}
