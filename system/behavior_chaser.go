package system

import (
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/vmath"
)

// stepChaser is the base ranged pursuer
// State is chosen purely by distance thresholds; it shoots on a cooldown
// while holding range inside shootRange
func (s *BehaviorSystem) stepChaser(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	dist := s.targetDistance(e)
	target := s.world.Target.Pos
	speed := s.moveSpeed(e, now)

	switch {
	case dist > p.StopDistance:
		e.State = core.StateApproach
		e.Vel = seek(e.Pos, target, speed)
	case dist < p.RetreatDistance:
		e.State = core.StateRetreat
		e.Vel = flee(e.Pos, target, speed)
	default:
		e.State = core.StateHoldRange
		e.Vel = vmath.Vec2{}
		if dist <= p.ShootRange && e.CooldownReady("shoot", now) {
			e.SetCooldown("shoot", now+config.Seconds(p.ShootCooldown))
			s.shoot(e, target.Sub(e.Pos), p.ShotSpeed, p.ShotDamage)
		}
	}
}
