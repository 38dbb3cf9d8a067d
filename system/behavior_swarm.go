package system

import (
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/vmath"
)

// stepSwarm is flocking pursuit: separation from packed neighbors, cohesion
// toward the local centroid, alignment with the flock velocity, and a bias
// toward the target. Nearby allies raise speed and contact damage up to a
// cap; two or more allies enable a coordinated dive burst
func (s *BehaviorSystem) stepSwarm(e *component.Enemy, snap []component.EnemySnap, now time.Duration) {
	p := e.Def.Params
	target := s.world.Target.Pos

	// Neighbor census from the previous tick's committed state
	var (
		allies   int
		centroid vmath.Vec2
		avgVel   vmath.Vec2
		sep      vmath.Vec2
	)
	for _, other := range snap {
		if other.ID == e.ID || !other.Alive || other.Variant != core.VariantSwarm {
			continue
		}
		d := e.Pos.Distance(other.Pos)
		if d > p.GroupRadius {
			continue
		}
		allies++
		centroid = centroid.Add(other.Pos)
		avgVel = avgVel.Add(other.Vel)
		if d > 0 {
			// Inverse-distance repulsion
			sep = sep.Add(e.Pos.Sub(other.Pos).Scale(1 / (d * d)))
		}
	}

	bonus := 1.0
	if allies > 0 {
		extra := p.AllyBonusPerAlly * float64(allies)
		if extra > p.AllyBonusCap {
			extra = p.AllyBonusCap
		}
		bonus += extra
	}
	e.DamageScale = bonus

	// Dive burst overrides flocking until it expires
	if e.State == core.StateCharging {
		e.Vel = e.ChargeDir.Scale(p.DiveSpeed * e.SpeedMultiplier(now))
		if now >= e.StateUntil {
			e.State = core.StateApproach
		}
		return
	}

	if allies >= 2 && e.CooldownReady("dive", now) {
		e.State = core.StateCharging
		e.ChargeDir = target.Sub(e.Pos).Normalize()
		e.StateUntil = now + config.Seconds(p.DiveDuration)
		e.SetCooldown("dive", now+config.Seconds(p.DiveCooldown))
		s.world.PlayCue("swarm-dive", e.Pos)
		return
	}

	steer := seek(e.Pos, target, 1).Scale(p.TargetBias)
	if allies > 0 {
		inv := 1 / float64(allies)
		steer = steer.Add(centroid.Scale(inv).Sub(e.Pos).Normalize().Scale(p.CohesionWeight))
		steer = steer.Add(avgVel.Scale(inv).Sub(e.Vel).Normalize().Scale(p.AlignmentWeight))
		steer = steer.Add(sep.Normalize().Scale(p.SeparationWeight))
	}

	e.State = core.StateApproach
	e.Vel = steer.Normalize().Scale(s.moveSpeed(e, now) * bonus)
}
