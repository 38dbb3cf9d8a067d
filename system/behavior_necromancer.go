package system

import (
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/vmath"
)

// stepNecromancer is the long-range support unit: it blinks away from a
// close target, keeps minions up to its cap, heals wounded allies in a
// radius, and curses the target with a ranged slow
func (s *BehaviorSystem) stepNecromancer(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	target := s.world.Target.Pos
	dist := s.targetDistance(e)

	// Blink away, cooldown-gated
	if dist <= p.TeleportRange && e.CooldownReady("teleport", now) {
		e.SetCooldown("teleport", now+config.Seconds(p.TeleportCooldown))
		away := e.Pos.Sub(target).Normalize()
		if away.MagSq() == 0 {
			away = s.world.Resources.Rand.UnitVec2()
		}
		e.Pos = e.Pos.Add(away.Scale(p.TeleportDistance))
		e.Vel = vmath.Vec2{}
		s.world.PlayCue("teleport", e.Pos)
	}

	if e.CooldownReady("summon", now) {
		s.trySummon(e, now)
	}

	if e.CooldownReady("heal", now) {
		s.tryHeal(e, now)
	}

	if dist <= p.CurseRange && e.CooldownReady("curse", now) {
		e.SetCooldown("curse", now+config.Seconds(p.CurseCooldown))
		s.world.PushEvent(event.EventCurseApplied, &event.CurseAppliedPayload{
			Source:     e.ID,
			SlowFactor: p.CurseSlowFactor,
			Duration:   config.Seconds(p.CurseDuration),
		})
		s.world.PlayCue("curse", target)
	}

	// Hold the standoff range; teleport covers the too-close case
	if dist > p.KeepDistance {
		e.State = core.StateApproach
		e.Vel = seek(e.Pos, target, s.moveSpeed(e, now))
	} else {
		e.State = core.StateHoldRange
		e.Vel = vmath.Vec2{}
	}
}

// trySummon raises a minion if the live count is under the cap
// Minion stats inherit the summoner's wave scaling
func (s *BehaviorSystem) trySummon(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	if p.SummonArchetype == "" || p.SummonCap <= 0 {
		return
	}

	// Prune dead minions before checking the cap
	live := e.Minions[:0]
	for _, id := range e.Minions {
		if m, ok := s.world.Enemy(id); ok && m.Alive {
			live = append(live, id)
		}
	}
	e.Minions = live
	if len(e.Minions) >= p.SummonCap {
		return
	}

	def, ok := s.catalogLookup(p.SummonArchetype)
	if !ok {
		return
	}
	e.SetCooldown("summon", now+config.Seconds(p.SummonInterval))

	pos := s.planner.Plan(
		core.PatternCircle, e.Pos,
		len(e.Minions), p.SummonCap,
		parameter.SummonPlacementRadius,
		s.world.Target.Pos, 0,
	)
	inherit := 1.0
	if e.Def.MaxHealth > 0 {
		inherit = e.MaxHealth / e.Def.MaxHealth
	}
	minion := s.world.SpawnEnemy(def, pos, e.Wave, inherit)
	e.Minions = append(e.Minions, minion.ID)
	s.statSummons.Add(1)
	s.world.PlayCue("summon", pos)
}

// tryHeal restores wounded allies inside the heal radius
func (s *BehaviorSystem) tryHeal(e *component.Enemy, now time.Duration) {
	p := e.Def.Params
	if p.HealRadius <= 0 || p.HealAmount <= 0 {
		return
	}

	healed := false
	for _, other := range s.world.Enemies() {
		if other.ID == e.ID || !other.Alive || other.Health >= other.MaxHealth {
			continue
		}
		if other.Pos.Distance(e.Pos) > p.HealRadius {
			continue
		}
		s.world.Heal(other.ID, p.HealAmount)
		healed = true
	}
	if healed {
		e.SetCooldown("heal", now+config.Seconds(p.HealInterval))
		s.world.PlayCue("heal", e.Pos)
	}
}

// catalogLookup resolves a summon archetype id
// Catalog validation guarantees the id exists at load time
func (s *BehaviorSystem) catalogLookup(id string) (*config.Archetype, bool) {
	if s.catalog == nil {
		return nil, false
	}
	return s.catalog.Get(id)
}
