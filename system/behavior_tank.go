package system

import (
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
)

// recoverDecel is the per-tick velocity retention while recovering
const recoverDecel = 0.85

// stepTank approaches, charges at elevated speed once in range and off
// cooldown, then decelerates through a recovery window
func (s *BehaviorSystem) stepTank(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	target := s.world.Target.Pos

	switch e.State {
	case core.StateCharging:
		e.Vel = e.ChargeDir.Scale(p.ChargeSpeed)
		if now >= e.StateUntil {
			e.State = core.StateRecovering
			e.StateUntil = now + config.Seconds(p.RecoverTime)
			e.SetCooldown("charge", now+config.Seconds(p.ChargeCooldown))
		}

	case core.StateRecovering:
		e.Vel = e.Vel.Scale(recoverDecel)
		if now >= e.StateUntil {
			e.State = core.StateApproach
		}

	default:
		e.State = core.StateApproach
		e.Vel = seek(e.Pos, target, s.moveSpeed(e, now))
		if s.targetDistance(e) <= p.ChargeDistance && e.CooldownReady("charge", now) {
			e.State = core.StateCharging
			e.ChargeDir = target.Sub(e.Pos).Normalize()
			e.Vel = e.ChargeDir.Scale(p.ChargeSpeed)
			e.StateUntil = now + config.Seconds(p.ChargeDuration)
			s.world.PlayCue("charge", e.Pos)
		}
	}
}
