package system

import (
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/event"
)

// Berserker rage tiers
const (
	rageNormal = iota
	rageEnraged
	rageBerserk
)

// berserkerTier maps a health fraction to the rage tier
func berserkerTier(frac float64, p config.Params) int {
	switch {
	case frac <= p.BerserkThreshold:
		return rageBerserk
	case frac <= p.EnrageThreshold:
		return rageEnraged
	default:
		return rageNormal
	}
}

// berserkerMults returns the tier's speed and damage multipliers
func berserkerMults(tier int, p config.Params) (speed, damage float64) {
	switch tier {
	case rageBerserk:
		return p.BerserkSpeedMult, p.BerserkDamageMult
	case rageEnraged:
		return p.EnrageSpeedMult, p.EnrageDamageMult
	default:
		return 1, 1
	}
}

// stepBerserker escalates through health-gated rage tiers that multiply
// speed and contact damage; charge is always available, ground-pound needs
// enraged or above; health regenerates after an uninterrupted grace period
func (s *BehaviorSystem) stepBerserker(e *component.Enemy, now time.Duration, dt time.Duration) {
	p := e.Def.Params
	target := s.world.Target.Pos
	dist := s.targetDistance(e)

	tier := berserkerTier(e.HealthFrac(), p)
	if tier > e.RageTier {
		s.world.PlayCue("berserker-rage", e.Pos)
	}
	e.RageTier = tier
	speedMult, damageMult := berserkerMults(tier, p)
	e.DamageScale = damageMult

	// Regeneration: interrupted by any new damage resetting LastDamageAt
	if e.Health < e.MaxHealth && now-e.LastDamageAt >= config.Seconds(p.RegenDelay) {
		s.world.Heal(e.ID, p.RegenPerSecond*dt.Seconds())
	}

	switch e.State {
	case core.StateCharging:
		e.Vel = e.ChargeDir.Scale(p.ChargeSpeed * speedMult)
		if now >= e.StateUntil {
			e.State = core.StateRecovering
			e.StateUntil = now + config.Seconds(p.RecoverTime)
			e.SetCooldown("charge", now+config.Seconds(p.ChargeCooldown))
		}
		return

	case core.StateRecovering:
		e.Vel = e.Vel.Scale(recoverDecel)
		if now >= e.StateUntil {
			e.State = core.StateApproach
		}
		return
	}

	e.State = core.StateApproach
	e.Vel = seek(e.Pos, target, s.moveSpeed(e, now)*speedMult)

	if dist <= p.ChargeDistance && e.CooldownReady("charge", now) {
		e.State = core.StateCharging
		e.ChargeDir = target.Sub(e.Pos).Normalize()
		e.Vel = e.ChargeDir.Scale(p.ChargeSpeed * speedMult)
		e.StateUntil = now + config.Seconds(p.ChargeDuration)
		s.world.PlayCue("charge", e.Pos)
		return
	}

	// Ground-pound is gated to enraged and above
	if tier >= rageEnraged && dist <= p.GroundPoundRadius && e.CooldownReady("pound", now) {
		e.SetCooldown("pound", now+config.Seconds(p.GroundPoundCooldown))
		damage := p.GroundPoundDamage * damageMult
		s.world.PushEvent(event.EventExplosion, &event.ExplosionPayload{
			Source: e.ID,
			Pos:    e.Pos,
			Radius: p.GroundPoundRadius,
			Damage: damage,
		})
		if s.world.Target.Alive {
			s.world.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
				Source: e.ID,
				Damage: damage,
			})
		}
		s.world.PlayCue("ground-pound", e.Pos)
	}
}
