package system

import (
	"math"
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/vmath"
)

// Boss phase health gates
const (
	bossPhaseTwoFrac   = 2.0 / 3.0
	bossPhaseThreeFrac = 1.0 / 3.0
)

// bossPhase maps a health fraction to the phase index
func bossPhase(frac float64) int {
	switch {
	case frac <= bossPhaseThreeFrac:
		return 2
	case frac <= bossPhaseTwoFrac:
		return 1
	default:
		return 0
	}
}

// stepBoss escalates through three health-gated phases. Crossing a gate
// summons a minion ring and stacks a permanent speed bonus. Phase one fires
// a radial spread, phase two a rotating spiral, phase three an aimed barrage
func (s *BehaviorSystem) stepBoss(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	target := s.world.Target.Pos
	dist := s.targetDistance(e)

	phase := bossPhase(e.HealthFrac())
	for e.Phase < phase {
		e.Phase++
		s.bossPhaseShift(e, now)
	}

	if dist > p.StopDistance {
		e.State = core.StateApproach
		e.Vel = seek(e.Pos, target, s.moveSpeed(e, now))
	} else {
		e.State = core.StateHoldRange
		e.Vel = vmath.Vec2{}
	}

	switch e.Phase {
	case 0:
		if e.CooldownReady("attack", now) {
			e.SetCooldown("attack", now+config.Seconds(p.AttackCooldown))
			s.spreadShot(e)
		}
	case 1:
		if e.CooldownReady("attack", now) {
			e.SetCooldown("attack", now+config.Seconds(p.AttackCooldown))
			s.spiralShot(e)
		}
	default:
		if e.CooldownReady("attack", now) {
			e.SetCooldown("attack", now+config.Seconds(p.BarrageCooldown))
			s.shoot(e, target.Sub(e.Pos), p.ShotSpeed, p.ShotDamage)
		}
	}
}

// bossPhaseShift applies the one-time effects of entering a new phase
func (s *BehaviorSystem) bossPhaseShift(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	e.SpeedScale *= 1 + p.PhaseSpeedBonus
	e.SetCooldown("attack", now+config.Seconds(p.AttackCooldown))
	s.world.PlayCue("boss-phase", e.Pos)

	if p.PhaseMinionArchetype == "" || p.PhaseMinionCount <= 0 {
		return
	}
	def, ok := s.catalogLookup(p.PhaseMinionArchetype)
	if !ok {
		return
	}
	inherit := 1.0
	if e.Def.MaxHealth > 0 {
		inherit = e.MaxHealth / e.Def.MaxHealth
	}
	for i := 0; i < p.PhaseMinionCount; i++ {
		pos := s.planner.Plan(
			core.PatternRing, e.Pos,
			i, p.PhaseMinionCount,
			parameter.SummonPlacementRadius,
			s.world.Target.Pos, 0,
		)
		minion := s.world.SpawnEnemy(def, pos, e.Wave, inherit)
		e.Minions = append(e.Minions, minion.ID)
	}
	s.statSummons.Add(int64(p.PhaseMinionCount))
}

// spreadShot fires spreadCount projectiles evenly around the full circle
func (s *BehaviorSystem) spreadShot(e *component.Enemy) {
	p := e.Def.Params
	if p.SpreadCount <= 0 {
		return
	}
	step := 2 * math.Pi / float64(p.SpreadCount)
	for i := 0; i < p.SpreadCount; i++ {
		s.shoot(e, vmath.FromAngle(float64(i)*step), p.ShotSpeed, p.ShotDamage)
	}
	s.world.PlayCue("boss-spread", e.Pos)
}

// spiralShot fires one projectile and rotates the aim by spiralStep, so
// successive volleys sweep the arena
func (s *BehaviorSystem) spiralShot(e *component.Enemy) {
	p := e.Def.Params
	s.shoot(e, vmath.FromAngle(e.SpiralAngle), p.ShotSpeed, p.ShotDamage)
	e.SpiralAngle += p.SpiralStep
	if e.SpiralAngle >= 2*math.Pi {
		e.SpiralAngle -= 2 * math.Pi
	}
}
