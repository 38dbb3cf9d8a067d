package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/config"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/vmath"
)

func testDef(id string, variant core.BehaviorVariant, maxHealth float64) *config.Archetype {
	return &config.Archetype{
		ID:         id,
		Variant:    variant.String(),
		VariantTag: variant,
		MaxHealth:  maxHealth,
		MoveSpeed:  5,
		ScoreValue: 10,
		XPValue:    8,
	}
}

// recordingScore captures kill awards routed through the score sink
type recordingScore struct {
	score int
	xp    int
	kills int
}

func (r *recordingScore) OnEnemyKilled(score, xp int) {
	r.score += score
	r.xp += xp
	r.kills++
}

// countingSystem records Update calls for pause tests
type countingSystem struct {
	updates int
	events  int
}

func (c *countingSystem) Name() string                  { return "counting" }
func (c *countingSystem) Priority() int                 { return 1 }
func (c *countingSystem) Update(dt time.Duration)       { c.updates++ }
func (c *countingSystem) EventTypes() []event.EventType { return []event.EventType{event.EventEnemySpawned} }
func (c *countingSystem) HandleEvent(ev event.GameEvent) { c.events++ }

// TestSpawnEnemyScaling verifies health and awards scale with the stat
// multiplier at spawn time
func TestSpawnEnemyScaling(t *testing.T) {
	w := NewWorld(NewResources(1))
	def := testDef("grunt", core.VariantChaser, 20)

	e := w.SpawnEnemy(def, vmath.Vec2{X: 1}, 3, 1.5)
	if e.Health != 30 || e.MaxHealth != 30 {
		t.Errorf("Expected health 30, got %.1f/%.1f", e.Health, e.MaxHealth)
	}
	if e.ScoreValue != 15 {
		t.Errorf("Expected score value 15, got %d", e.ScoreValue)
	}
	if e.XPValue != 12 {
		t.Errorf("Expected xp value 12, got %d", e.XPValue)
	}
	if e.Wave != 3 {
		t.Errorf("Expected wave 3, got %d", e.Wave)
	}
}

// TestSpawnInitialState verifies per-variant starting states
func TestSpawnInitialState(t *testing.T) {
	w := NewWorld(NewResources(1))
	cases := []struct {
		variant core.BehaviorVariant
		want    core.BehaviorState
	}{
		{core.VariantChaser, core.StateApproach},
		{core.VariantKamikaze, core.StatePatrol},
		{core.VariantSniper, core.StateHoldRange},
		{core.VariantNecromancer, core.StateHoldRange},
		{core.VariantBoss, core.StateApproach},
	}
	for _, tc := range cases {
		e := w.SpawnEnemy(testDef(tc.variant.String(), tc.variant, 10), vmath.Vec2{}, 1, 1)
		if e.State != tc.want {
			t.Errorf("%s: expected initial state %v, got %v", tc.variant, tc.want, e.State)
		}
	}
}

// TestApplyDamageKillsAndAwards verifies depletion kills exactly once and
// routes scaled awards to the sink and the kill event
func TestApplyDamageKillsAndAwards(t *testing.T) {
	res := NewResources(1)
	sink := &recordingScore{}
	res.Score = sink
	w := NewWorld(res)

	e := w.SpawnEnemy(testDef("grunt", core.VariantChaser, 20), vmath.Vec2{}, 1, 2)
	res.Events.Consume() // Drop the spawn event

	w.ApplyDamage(e.ID, 15)
	if !e.Alive {
		t.Fatal("Enemy died too early")
	}
	w.ApplyDamage(e.ID, 100)
	if e.Alive {
		t.Fatal("Enemy should be dead")
	}
	if sink.kills != 1 || sink.score != 20 || sink.xp != 16 {
		t.Errorf("Expected 1 kill with score 20 xp 16, got kills=%d score=%d xp=%d",
			sink.kills, sink.score, sink.xp)
	}

	events := res.Events.Consume()
	if len(events) != 1 || events[0].Type != event.EventEnemyKilled {
		t.Fatalf("Expected one kill event, got %v", events)
	}
	p := events[0].Payload.(*event.EnemyKilledPayload)
	if p.Score != 20 || p.XP != 16 {
		t.Errorf("Kill payload awards: score=%d xp=%d", p.Score, p.XP)
	}

	// Further damage on the corpse is a no-op
	w.ApplyDamage(e.ID, 50)
	w.Kill(e.ID)
	if sink.kills != 1 {
		t.Errorf("Double death: %d kills", sink.kills)
	}
	if len(res.Events.Consume()) != 0 {
		t.Error("Dead enemy emitted events")
	}
}

// TestDeathHookSeesCorpsePosition verifies the hook runs before removal
func TestDeathHookSeesCorpsePosition(t *testing.T) {
	w := NewWorld(NewResources(1))
	var hookPos vmath.Vec2
	var hookCalls int
	w.SetDeathHook(func(e *component.Enemy) {
		hookPos = e.Pos
		hookCalls++
	})

	e := w.SpawnEnemy(testDef("kamikaze", core.VariantKamikaze, 10), vmath.Vec2{X: 4, Y: -2}, 1, 1)
	w.Kill(e.ID)

	if hookCalls != 1 {
		t.Fatalf("Expected 1 hook call, got %d", hookCalls)
	}
	if hookPos != (vmath.Vec2{X: 4, Y: -2}) {
		t.Errorf("Hook saw position %v", hookPos)
	}
}

// TestSweepRemovesCorpses verifies dead enemies disappear on the next tick
func TestSweepRemovesCorpses(t *testing.T) {
	w := NewWorld(NewResources(1))
	e := w.SpawnEnemy(testDef("grunt", core.VariantChaser, 10), vmath.Vec2{}, 1, 1)
	w.Kill(e.ID)

	// Corpse still visible until the sweep at the next update
	if len(w.Enemies()) != 1 {
		t.Fatalf("Expected corpse present before sweep, got %d", len(w.Enemies()))
	}
	if w.AliveCount() != 0 {
		t.Errorf("Expected 0 alive, got %d", w.AliveCount())
	}

	w.Update(16 * time.Millisecond)
	if len(w.Enemies()) != 0 {
		t.Errorf("Expected corpse swept, got %d enemies", len(w.Enemies()))
	}
	if _, ok := w.Enemy(e.ID); ok {
		t.Error("Swept enemy still resolvable by id")
	}
}

// TestUpdatePausedSkipsSystems verifies systems freeze during pause while
// events keep flowing
func TestUpdatePausedSkipsSystems(t *testing.T) {
	res := NewResources(1)
	w := NewWorld(res)
	sys := &countingSystem{}
	w.AddSystem(sys)

	w.Update(16 * time.Millisecond)
	if sys.updates != 1 {
		t.Fatalf("Expected 1 update, got %d", sys.updates)
	}

	res.Clock.Pause()
	w.SpawnEnemy(testDef("grunt", core.VariantChaser, 10), vmath.Vec2{}, 1, 1)
	w.Update(16 * time.Millisecond)

	if sys.updates != 1 {
		t.Errorf("System updated during pause: %d", sys.updates)
	}
	if sys.events != 1 {
		t.Errorf("Expected spawn event dispatched during pause, got %d", sys.events)
	}

	res.Clock.Resume()
	w.Update(16 * time.Millisecond)
	if sys.updates != 2 {
		t.Errorf("Expected update after resume, got %d", sys.updates)
	}
}

// TestSnapshotLagsOneTick verifies behavior reads committed previous state
func TestSnapshotLagsOneTick(t *testing.T) {
	w := NewWorld(NewResources(1))
	e := w.SpawnEnemy(testDef("grunt", core.VariantChaser, 10), vmath.Vec2{X: 1}, 1, 1)

	w.Update(16 * time.Millisecond)
	snap := w.Snapshot()
	if len(snap) != 1 || snap[0].Pos != (vmath.Vec2{X: 1}) {
		t.Fatalf("Unexpected snapshot %v", snap)
	}

	// Move the live entity; the snapshot holds until the next update
	e.Pos = vmath.Vec2{X: 9}
	if w.Snapshot()[0].Pos != (vmath.Vec2{X: 1}) {
		t.Error("Snapshot mutated mid-tick")
	}
	w.Update(16 * time.Millisecond)
	if w.Snapshot()[0].Pos != (vmath.Vec2{X: 9}) {
		t.Error("Snapshot not refreshed on update")
	}
}

// TestHealClampsAtMax verifies healing never exceeds instance max
func TestHealClampsAtMax(t *testing.T) {
	w := NewWorld(NewResources(1))
	e := w.SpawnEnemy(testDef("tank", core.VariantTank, 50), vmath.Vec2{}, 1, 1)
	w.ApplyDamage(e.ID, 30)
	w.Heal(e.ID, 1000)
	if e.Health != 50 {
		t.Errorf("Expected health clamped to 50, got %.1f", e.Health)
	}
}

// TestClearEmptiesWorld verifies restart cleanup
func TestClearEmptiesWorld(t *testing.T) {
	w := NewWorld(NewResources(1))
	w.SpawnEnemy(testDef("grunt", core.VariantChaser, 10), vmath.Vec2{}, 1, 1)
	w.SpawnEnemy(testDef("tank", core.VariantTank, 50), vmath.Vec2{}, 1, 1)
	w.Clear()
	if len(w.Enemies()) != 0 || w.AliveCount() != 0 {
		t.Errorf("Clear left %d enemies", len(w.Enemies()))
	}
}
