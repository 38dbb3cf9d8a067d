package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/engine"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/parameter"
	"github.com/lixenwraith/nova-strike/spawn"
	"github.com/lixenwraith/nova-strike/status"
	"github.com/lixenwraith/nova-strike/vmath"
)

// WaveScheduler orchestrates the wave lifecycle
// Idle -> SpawningWave -> WaitingForClear -> Breaking -> SpawningWave
// Spawning suspends while the alive cap is reached and re-checks every tick;
// a missing eligible archetype skips the slot instead of halting the loop
type WaveScheduler struct {
	world   *engine.World
	catalog *config.ArchetypeCatalog
	planner *spawn.Planner
	curve   DifficultyCurve

	state component.WaveState

	spawnDelay    time.Duration
	breakDuration time.Duration
	radius        float64
	minDistance   float64

	// Telemetry
	statWave    *atomic.Int64
	statPhase   *status.AtomicString
	statAlive   *atomic.Int64
	statSpawned *atomic.Int64
	statSkipped *atomic.Int64

	enabled bool
}

func NewWaveScheduler(world *engine.World, catalog *config.ArchetypeCatalog) *WaveScheduler {
	res := world.Resources
	s := &WaveScheduler{
		world:   world,
		catalog: catalog,
		planner: spawn.NewPlanner(res.Rand, res.Obstacles),
		curve:   DefaultCurve(),

		spawnDelay:    parameter.WaveSpawnDelay,
		breakDuration: parameter.WaveBreakDuration,
		radius:        parameter.SpawnRadius,
		minDistance:   parameter.SpawnMinDistance,

		statWave:    res.Status.Ints.Get("wave.number"),
		statPhase:   res.Status.Strings.Get("wave.phase"),
		statAlive:   res.Status.Ints.Get("enemies.alive"),
		statSpawned: res.Status.Ints.Get("enemies.spawned"),
		statSkipped: res.Status.Ints.Get("wave.skipped_slots"),
	}
	s.Init()
	return s
}

// Init resets session state for a new game
func (s *WaveScheduler) Init() {
	s.state = component.WaveState{Number: 1, Phase: core.WaveIdle}
	s.enabled = true
	s.statWave.Store(1)
	s.statPhase.Store(core.WaveIdle.String())
	s.statSpawned.Store(0)
	s.statSkipped.Store(0)
}

// Name returns system's name
func (s *WaveScheduler) Name() string {
	return "wave"
}

// Priority orders wave spawning before behavior updates
func (s *WaveScheduler) Priority() int {
	return parameter.PriorityWave
}

// EventTypes returns the event types WaveScheduler handles
func (s *WaveScheduler) EventTypes() []event.EventType {
	return []event.EventType{event.EventGameReset}
}

// HandleEvent processes scheduler events
func (s *WaveScheduler) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
	}
}

// State returns a copy of the wave lifecycle record
func (s *WaveScheduler) State() component.WaveState {
	return s.state
}

// SetCurve overrides the difficulty curve, for tuning and tests
func (s *WaveScheduler) SetCurve(c DifficultyCurve) {
	s.curve = c
}

// Update advances the wave lifecycle by one tick
func (s *WaveScheduler) Update(dt time.Duration) {
	if !s.enabled {
		return
	}
	now := s.world.Resources.Clock.Now()
	s.statAlive.Store(int64(s.world.AliveCount()))

	switch s.state.Phase {
	case core.WaveIdle:
		s.beginWave(now)

	case core.WaveSpawning:
		s.updateSpawning(now)

	case core.WaveWaitingForClear:
		if s.world.AliveCount() == 0 {
			s.state.Phase = core.WaveBreaking
			s.state.BreakEndsAt = now + s.breakDuration
			s.statPhase.Store(s.state.Phase.String())
			s.world.PushEvent(event.EventWaveCleared, &event.WaveClearedPayload{Number: s.state.Number})
			s.world.PlayCue("wave-clear", s.world.Target.Pos)
		}

	case core.WaveBreaking:
		if now >= s.state.BreakEndsAt {
			s.state.Number++
			s.statWave.Store(int64(s.state.Number))
			s.beginWave(now)
		}
	}
}

func (s *WaveScheduler) beginWave(now time.Duration) {
	boss := s.curve.IsBossWave(s.state.Number)
	count := 1
	if !boss {
		count = s.curve.EnemyCount(s.state.Number)
	}

	s.state.Phase = core.WaveSpawning
	s.state.ToSpawn = count
	s.state.Issued = 0
	s.state.Boss = boss
	s.state.Pattern = core.SpawnPattern(s.state.Number % core.PatternCount)
	s.state.Center = s.world.Target.Pos
	s.state.NextSpawnAt = now

	s.statPhase.Store(s.state.Phase.String())
	s.world.PushEvent(event.EventWaveStarted, &event.WaveStartedPayload{
		Number: s.state.Number,
		Count:  count,
		Boss:   boss,
	})
}

func (s *WaveScheduler) updateSpawning(now time.Duration) {
	if s.state.Issued >= s.state.ToSpawn {
		s.state.Phase = core.WaveWaitingForClear
		s.statPhase.Store(s.state.Phase.String())
		return
	}
	if now < s.state.NextSpawnAt {
		return
	}
	// Alive cap reached: suspend, re-check next tick, never fail
	if s.world.AliveCount() >= s.curve.MaxAlive {
		return
	}

	s.spawnSlot(now)
	s.state.Issued++
	s.state.NextSpawnAt = now + s.spawnDelay
}

func (s *WaveScheduler) spawnSlot(now time.Duration) {
	def := s.chooseArchetype()
	if def == nil {
		// Misconfiguration: no eligible archetype for this wave.
		// Skip the slot rather than crash the loop
		log.Printf("wave %d: no eligible archetype, skipping spawn slot %d",
			s.state.Number, s.state.Issued)
		s.statSkipped.Add(1)
		return
	}

	pos := s.planner.Plan(
		s.state.Pattern, s.state.Center,
		s.state.Issued, s.state.ToSpawn,
		s.radius, s.world.Target.Pos, s.minDistance,
	)
	s.world.SpawnEnemy(def, pos, s.state.Number, s.curve.StatMultiplier(s.state.Number))
	s.statSpawned.Add(1)

	if s.state.Boss {
		s.world.PlayCue("boss-spawn", pos)
	} else {
		s.world.PlayCue("enemy-spawn", pos)
	}
}

// chooseArchetype draws from the catalog filtered by minWave and wave kind
// Boss waves draw only boss variants; standard waves exclude them
func (s *WaveScheduler) chooseArchetype() *config.Archetype {
	var pool []vmath.Weighted[*config.Archetype]
	for _, a := range s.catalog.All() {
		if a.MinWave > s.state.Number {
			continue
		}
		isBoss := a.VariantTag == core.VariantBoss
		if isBoss != s.state.Boss {
			continue
		}
		pool = append(pool, vmath.Weighted[*config.Archetype]{Item: a, Weight: a.Weight})
	}

	def, err := vmath.PickWeighted(s.world.Resources.Rand, pool)
	if err != nil {
		return nil
	}
	return def
}
