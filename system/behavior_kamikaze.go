package system

import (
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/parameter"
)

// stepKamikaze drifts until the target enters activationRange, then rushes
// and detonates on contact; the explosion also fires on death from damage
func (s *BehaviorSystem) stepKamikaze(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	dist := s.targetDistance(e)
	target := s.world.Target.Pos

	switch e.State {
	case core.StatePatrol:
		e.Vel = seek(e.Pos, target, s.moveSpeed(e, now))
		if dist <= p.ActivationRange {
			e.State = core.StateActivated
			s.world.PlayCue("kamikaze-arm", e.Pos)
		}

	case core.StateActivated:
		e.Vel = seek(e.Pos, target, p.RushSpeed*e.SpeedMultiplier(now))
		if dist <= parameter.EnemyContactRadius {
			e.State = core.StateExploding
			// Kill routes through the death hook, which detonates once
			s.world.Kill(e.ID)
		}
	}
}
