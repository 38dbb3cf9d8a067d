package engine

import (
	"math"
	"sort"
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/vmath"
)

// Target is the player-side aim point the behavior systems track
// The front-end commits it before each tick
type Target struct {
	Pos   vmath.Vec2
	Alive bool
}

// World owns all live enemies and runs systems in priority order
// Single-threaded: all mutation happens inside Update on the tick loop;
// entities read neighbors through the previous tick's snapshot
type World struct {
	Resources *Resources

	nextEntityID core.Entity
	enemies      map[core.Entity]*component.Enemy
	order        []core.Entity

	systems  []System
	handlers map[event.EventType][]System
	sink     func(ev event.GameEvent)

	snapshot []component.EnemySnap
	deathFn  func(e *component.Enemy)

	Target Target

	tick int64
}

func NewWorld(res *Resources) *World {
	return &World{
		Resources:    res,
		nextEntityID: 1,
		enemies:      make(map[core.Entity]*component.Enemy),
		handlers:     make(map[event.EventType][]System),
	}
}

// AddSystem registers a system and keeps the list sorted by priority
// Event handler routing is wired from the system's EventTypes
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	for _, t := range s.EventTypes() {
		w.handlers[t] = append(w.handlers[t], s)
	}
}

// SetEventSink registers the external collaborator event handler
// The sink sees every event after system routing
func (w *World) SetEventSink(fn func(ev event.GameEvent)) {
	w.sink = fn
}

// SetDeathHook registers the death-effect callback
// Runs after an enemy is marked dead, before the kill event is emitted
func (w *World) SetDeathHook(fn func(e *component.Enemy)) {
	w.deathFn = fn
}

// PushEvent emits a game event stamped with the current tick
func (w *World) PushEvent(t event.EventType, payload any) {
	w.Resources.Events.Push(event.GameEvent{Type: t, Payload: payload, Tick: w.tick})
}

// PlayCue forwards a fire-and-forget cue to the collaborator
func (w *World) PlayCue(name string, pos vmath.Vec2) {
	w.Resources.Cues.PlayCue(name, pos)
}

// Update advances the simulation by one fixed tick
// While paused nothing progresses; events still flow so the pause UI works
func (w *World) Update(dt time.Duration) {
	w.tick++
	clock := w.Resources.Clock
	clock.Advance(dt)

	if !clock.IsPaused() {
		w.sweepDead()
		w.snapshot = w.buildSnapshot()
		for _, s := range w.systems {
			s.Update(dt)
		}
	}

	w.dispatchEvents()
}

func (w *World) dispatchEvents() {
	for _, ev := range w.Resources.Events.Consume() {
		for _, s := range w.handlers[ev.Type] {
			s.HandleEvent(ev)
		}
		if w.sink != nil {
			w.sink(ev)
		}
	}
}

// SpawnEnemy creates an instance of def at pos with wave stat scaling
func (w *World) SpawnEnemy(def *config.Archetype, pos vmath.Vec2, wave int, statMult float64) *component.Enemy {
	if statMult <= 0 {
		statMult = 1
	}
	id := w.nextEntityID
	w.nextEntityID++

	e := &component.Enemy{
		ID:         id,
		Def:        def,
		Pos:        pos,
		Health:     def.MaxHealth * statMult,
		MaxHealth:  def.MaxHealth * statMult,
		ScoreValue: int(math.Round(float64(def.ScoreValue) * statMult)),
		XPValue:    int(math.Round(float64(def.XPValue) * statMult)),
		Alive:      true,
		State:      initialState(def.VariantTag),
		Wave:       wave,
		SpeedScale: 1,
		Cooldowns:  make(map[string]time.Duration),
	}
	w.enemies[id] = e
	w.order = append(w.order, id)

	w.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{
		Entity:    id,
		Archetype: def.ID,
		Variant:   def.VariantTag,
		Pos:       pos,
		Wave:      wave,
	})
	return e
}

func initialState(v core.BehaviorVariant) core.BehaviorState {
	switch v {
	case core.VariantKamikaze:
		return core.StatePatrol
	case core.VariantSniper, core.VariantNecromancer:
		return core.StateHoldRange
	default:
		return core.StateApproach
	}
}

// Enemy returns the live instance for id
func (w *World) Enemy(id core.Entity) (*component.Enemy, bool) {
	e, ok := w.enemies[id]
	return e, ok
}

// Enemies returns live instances in spawn order, dead ones included until
// the next sweep
func (w *World) Enemies() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(w.order))
	for _, id := range w.order {
		if e, ok := w.enemies[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// AliveCount returns the number of alive enemies, the shared resource the
// spawn cap suspends on
func (w *World) AliveCount() int {
	n := 0
	for _, e := range w.enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// Snapshot returns the previous tick's committed enemy states
func (w *World) Snapshot() []component.EnemySnap {
	return w.snapshot
}

func (w *World) buildSnapshot() []component.EnemySnap {
	snap := make([]component.EnemySnap, 0, len(w.order))
	for _, id := range w.order {
		e, ok := w.enemies[id]
		if !ok {
			continue
		}
		snap = append(snap, component.EnemySnap{
			ID:      e.ID,
			Variant: e.Def.VariantTag,
			Pos:     e.Pos,
			Vel:     e.Vel,
			Alive:   e.Alive,
		})
	}
	return snap
}

// ApplyDamage reduces health, clamped at zero, and kills on depletion
// No-op for dead enemies: double-death and late timers are cancelled by
// the alive check, no per-timer bookkeeping needed
func (w *World) ApplyDamage(id core.Entity, amount float64) {
	e, ok := w.enemies[id]
	if !ok || !e.Alive {
		return
	}
	now := w.Resources.Clock.Now()

	e.Health -= amount
	e.LastDamageAt = now
	e.FlashUntil = now + parameter.EnemyFlashDuration

	if e.Health <= 0 {
		e.Health = 0
		w.kill(e)
	}
}

// Heal restores health up to the instance max
func (w *World) Heal(id core.Entity, amount float64) {
	e, ok := w.enemies[id]
	if !ok || !e.Alive {
		return
	}
	e.Health += amount
	if e.Health > e.MaxHealth {
		e.Health = e.MaxHealth
	}
}

// Kill destroys an enemy regardless of remaining health
func (w *World) Kill(id core.Entity) {
	e, ok := w.enemies[id]
	if !ok || !e.Alive {
		return
	}
	e.Health = 0
	w.kill(e)
}

func (w *World) kill(e *component.Enemy) {
	e.Alive = false

	// Death effects run before removal so area effects see the death spot
	if w.deathFn != nil {
		w.deathFn(e)
	}

	w.Resources.Score.OnEnemyKilled(e.ScoreValue, e.XPValue)
	w.PushEvent(event.EventEnemyKilled, &event.EnemyKilledPayload{
		Entity:  e.ID,
		Variant: e.Def.VariantTag,
		Pos:     e.Pos,
		Score:   e.ScoreValue,
		XP:      e.XPValue,
	})
	w.PlayCue("enemy-death", e.Pos)
}

// sweepDead removes corpses left from the previous tick
func (w *World) sweepDead() {
	kept := w.order[:0]
	for _, id := range w.order {
		e, ok := w.enemies[id]
		if !ok {
			continue
		}
		if !e.Alive {
			delete(w.enemies, id)
			continue
		}
		kept = append(kept, id)
	}
	w.order = kept
}

// Clear removes all enemies, for game restart
func (w *World) Clear() {
	w.enemies = make(map[core.Entity]*component.Enemy)
	w.order = w.order[:0]
	w.snapshot = nil
}
