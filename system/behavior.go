package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/engine"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/spawn"
	"github.com/lixenwraith/nova-strike/vmath"
)

// BehaviorSystem runs every enemy's per-archetype decision logic each tick
// Dispatch is a switch over the archetype's behavior variant; each variant
// reads neighbors through the previous tick's snapshot and commits only its
// own position and velocity
type BehaviorSystem struct {
	world   *engine.World
	catalog *config.ArchetypeCatalog
	planner *spawn.Planner

	// Telemetry
	statShots      *atomic.Int64
	statExplosions *atomic.Int64
	statSummons    *atomic.Int64

	enabled bool
}

func NewBehaviorSystem(world *engine.World, catalog *config.ArchetypeCatalog) *BehaviorSystem {
	res := world.Resources
	s := &BehaviorSystem{
		world:   world,
		catalog: catalog,
		planner: spawn.NewPlanner(res.Rand, res.Obstacles),

		statShots:      res.Status.Ints.Get("behavior.shots"),
		statExplosions: res.Status.Ints.Get("behavior.explosions"),
		statSummons:    res.Status.Ints.Get("behavior.summons"),
	}
	s.Init()
	world.SetDeathHook(s.handleDeath)
	return s
}

// Init resets session state for a new game
func (s *BehaviorSystem) Init() {
	s.enabled = true
}

// Name returns system's name
func (s *BehaviorSystem) Name() string {
	return "behavior"
}

// Priority runs behavior after wave spawning within the tick
func (s *BehaviorSystem) Priority() int {
	return parameter.PriorityBehavior
}

// EventTypes returns the event types BehaviorSystem handles
func (s *BehaviorSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes behavior events
func (s *BehaviorSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// Update steps every alive enemy and integrates its velocity
func (s *BehaviorSystem) Update(dt time.Duration) {
	if !s.enabled {
		return
	}
	now := s.world.Resources.Clock.Now()
	snap := s.world.Snapshot()

	for _, e := range s.world.Enemies() {
		if !e.Alive {
			continue
		}
		e.DamageScale = 1

		switch e.Def.VariantTag {
		case core.VariantChaser:
			s.stepChaser(e, now)
		case core.VariantTank:
			s.stepTank(e, now)
		case core.VariantSniper:
			s.stepSniper(e, now)
		case core.VariantKamikaze:
			s.stepKamikaze(e, now)
		case core.VariantSwarm:
			s.stepSwarm(e, snap, now)
		case core.VariantBerserker:
			s.stepBerserker(e, now, dt)
		case core.VariantNecromancer:
			s.stepNecromancer(e, now)
		case core.VariantBoss:
			s.stepBoss(e, now)
		}

		s.contact(e, now)
		e.Pos = e.Pos.Add(e.Vel.Scale(dt.Seconds()))
	}
}

// targetDistance returns the distance from e to the target
func (s *BehaviorSystem) targetDistance(e *component.Enemy) float64 {
	return e.Pos.Distance(s.world.Target.Pos)
}

// seek returns a velocity toward dest at speed
func seek(from, dest vmath.Vec2, speed float64) vmath.Vec2 {
	return dest.Sub(from).Normalize().Scale(speed)
}

// flee returns a velocity directly away from dest at speed
func flee(from, dest vmath.Vec2, speed float64) vmath.Vec2 {
	return from.Sub(dest).Normalize().Scale(speed)
}

// moveSpeed returns the effective base speed with boosts applied
func (s *BehaviorSystem) moveSpeed(e *component.Enemy, now time.Duration) float64 {
	return e.Def.MoveSpeed * e.SpeedMultiplier(now)
}

// shoot emits a ranged attack; flight resolves in the front-end
func (s *BehaviorSystem) shoot(e *component.Enemy, dir vmath.Vec2, speed, damage float64) {
	s.world.PushEvent(event.EventEnemyShot, &event.EnemyShotPayload{
		From:   e.ID,
		Origin: e.Pos,
		Dir:    dir.Normalize(),
		Speed:  speed,
		Damage: damage,
	})
	s.statShots.Add(1)
}

// contact applies melee damage on target proximity, rate-limited per enemy
// Kamikaze resolves contact through its explosion instead
func (s *BehaviorSystem) contact(e *component.Enemy, now time.Duration) {
	if e.Def.ContactDamage <= 0 || e.Def.VariantTag == core.VariantKamikaze {
		return
	}
	if !s.world.Target.Alive {
		return
	}
	if s.targetDistance(e) > parameter.EnemyContactRadius {
		return
	}
	if !e.CooldownReady("contact", now) {
		return
	}
	e.SetCooldown("contact", now+parameter.EnemyContactInterval)
	s.world.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
		Source: e.ID,
		Damage: e.Def.ContactDamage * e.DamageScale,
	})
	s.world.PlayCue("player-hit", s.world.Target.Pos)
}

// handleDeath runs death-time effects before the corpse is removed
func (s *BehaviorSystem) handleDeath(e *component.Enemy) {
	switch e.Def.VariantTag {
	case core.VariantKamikaze:
		s.explode(e)
	case core.VariantSwarm:
		s.rallyAllies(e)
	}
}

// explode applies the one-shot death explosion
// The Exploded guard and the alive check inside ApplyDamage keep overlapping
// explosions from double-applying damage to anything already dead
func (s *BehaviorSystem) explode(e *component.Enemy) {
	if e.Exploded {
		return
	}
	e.Exploded = true

	radius := e.Def.Params.ExplosionRadius
	damage := e.Def.Params.ExplosionDamage
	if radius <= 0 || damage <= 0 {
		return
	}

	s.world.PushEvent(event.EventExplosion, &event.ExplosionPayload{
		Source: e.ID,
		Pos:    e.Pos,
		Radius: radius,
		Damage: damage,
	})
	s.statExplosions.Add(1)
	s.world.PlayCue("explosion", e.Pos)

	if s.world.Target.Alive && e.Pos.Distance(s.world.Target.Pos) <= radius {
		s.world.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
			Source: e.ID,
			Damage: damage,
		})
	}
	for _, other := range s.world.Enemies() {
		if other.ID == e.ID || !other.Alive {
			continue
		}
		if other.Pos.Distance(e.Pos) <= radius {
			s.world.ApplyDamage(other.ID, damage)
		}
	}
}

// rallyAllies grants nearby same-variant allies a temporary speed boost
func (s *BehaviorSystem) rallyAllies(e *component.Enemy) {
	p := e.Def.Params
	if p.RallyBoost <= 1 || p.RallyDuration <= 0 {
		return
	}
	now := s.world.Resources.Clock.Now()
	for _, other := range s.world.Enemies() {
		if other.ID == e.ID || !other.Alive {
			continue
		}
		if other.Def.VariantTag != core.VariantSwarm {
			continue
		}
		if other.Pos.Distance(e.Pos) > p.GroupRadius {
			continue
		}
		other.BoostScale = p.RallyBoost
		other.BoostUntil = now + config.Seconds(p.RallyDuration)
	}
}
