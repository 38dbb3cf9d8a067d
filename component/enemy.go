package component

import (
	"time"

	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/vmath"
)

// Enemy is the runtime instance of one spawned archetype
// Created by the wave scheduler, mutated only by its behavior step inside
// the single-threaded tick, removed after death effects run
type Enemy struct {
	ID  core.Entity
	Def *config.Archetype // Shared, read-only

	Pos vmath.Vec2
	Vel vmath.Vec2

	Health    float64
	MaxHealth float64
	Alive     bool

	// ScoreValue/XPValue are the kill awards, wave-scaled at spawn
	ScoreValue int
	XPValue    int

	State core.BehaviorState
	Wave  int // Wave the instance spawned on

	// Cooldowns maps ability name to next-eligible sim time
	Cooldowns map[string]time.Duration

	// StateUntil bounds timed states (charge, recover, dive)
	StateUntil time.Duration

	// ChargeDir is the locked direction of a running charge or dive
	ChargeDir vmath.Vec2

	// FlashUntil is the damage flash deadline, render-side only
	FlashUntil time.Duration

	// LastDamageAt gates berserker regeneration
	LastDamageAt time.Duration

	// SpeedScale accumulates permanent multipliers (boss phase ups)
	SpeedScale float64

	// BoostScale/BoostUntil is a temporary multiplier (swarm rally)
	BoostScale float64
	BoostUntil time.Duration

	// DamageScale is the tick-transient contact damage multiplier,
	// recomputed by the behavior step (rage tiers, swarm ally bonus)
	DamageScale float64

	// RageTier is the berserker tier: 0 normal, 1 enraged, 2 berserk
	RageTier int

	// Phase is the boss phase index, 0 through 2
	Phase int

	// SpiralAngle advances the boss rotating spiral attack
	SpiralAngle float64

	// Exploded guards one-shot death explosions against double application
	Exploded bool

	// Minions tracks live summons for the summon cap
	Minions []core.Entity
}

// CooldownReady reports whether the named ability may fire at sim time now
// Unset abilities are immediately ready
func (e *Enemy) CooldownReady(name string, now time.Duration) bool {
	next, ok := e.Cooldowns[name]
	if !ok {
		return true
	}
	return now >= next
}

// SetCooldown records the next-eligible time for an ability
func (e *Enemy) SetCooldown(name string, next time.Duration) {
	if e.Cooldowns == nil {
		e.Cooldowns = make(map[string]time.Duration)
	}
	e.Cooldowns[name] = next
}

// HealthFrac returns health as a fraction of max in [0, 1]
func (e *Enemy) HealthFrac() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	f := e.Health / e.MaxHealth
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// SpeedMultiplier combines permanent and unexpired temporary boosts
func (e *Enemy) SpeedMultiplier(now time.Duration) float64 {
	mult := e.SpeedScale
	if mult == 0 {
		mult = 1
	}
	if e.BoostScale > 0 && now < e.BoostUntil {
		mult *= e.BoostScale
	}
	return mult
}

// EnemySnap is the previous-tick committed view of an enemy
// Behavior steps read neighbors through snapshots so all entities update
// from the same committed state within one tick
type EnemySnap struct {
	ID      core.Entity
	Variant core.BehaviorVariant
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Alive   bool
}
