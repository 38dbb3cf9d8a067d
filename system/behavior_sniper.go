package system

import (
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/vmath"
)

// stepSniper keeps its standoff distance and fires on an independent long
// cooldown whenever the target is inside shootRange
func (s *BehaviorSystem) stepSniper(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	dist := s.targetDistance(e)
	target := s.world.Target.Pos

	if dist < p.KeepDistance {
		e.State = core.StateRetreat
		e.Vel = flee(e.Pos, target, s.moveSpeed(e, now))
	} else {
		e.State = core.StateHoldRange
		e.Vel = vmath.Vec2{}
	}

	if dist <= p.ShootRange && e.CooldownReady("shoot", now) {
		e.SetCooldown("shoot", now+config.Seconds(p.ShootCooldown))
		s.shoot(e, target.Sub(e.Pos), p.ShotSpeed, p.ShotDamage)
	}
}
