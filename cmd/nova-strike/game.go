package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-strike/component"
	"github.com/lixenwraith/nova-strike/core"
	"github.com/lixenwraith/nova-strike/engine"
	"github.com/lixenwraith/nova-strike/event"
	"github.com/lixenwraith/nova-strike/save"
	"github.com/lixenwraith/nova-strike/system"
	"github.com/lixenwraith/nova-strike/vmath"
)

const (
	playerHitRadius = 0.8
	enemyHitRadius  = 1.0
	projectileTTL   = 4 * time.Second
	bannerDuration  = 2 * time.Second
)

// projectile is a front-end flight record; the core only emits shot events
type projectile struct {
	pos        vmath.Vec2
	vel        vmath.Vec2
	damage     float64
	fromPlayer bool
	dieAt      time.Duration
}

// game owns the front-end: player state, projectiles, input and rendering
// The simulation core never sees any of it except through Target and events
type game struct {
	screen tcell.Screen
	world  *engine.World

	upgrades *system.UpgradeEngine
	store    *save.Store

	playerPos    vmath.Vec2
	playerVel    vmath.Vec2
	playerHealth float64
	score        int
	statScore    *atomic.Int64

	nextShotAt time.Duration
	slowFactor float64
	slowUntil  time.Duration

	projectiles []projectile

	// choices is the open upgrade panel; nil means gameplay input
	choices []string

	gameOver bool
	newBest  bool
	quit     bool

	banner      string
	bannerUntil time.Duration
}

func newGame(screen tcell.Screen, res *engine.Resources, store *save.Store) *game {
	g := &game{
		screen:    screen,
		world:     engine.NewWorld(res),
		store:     store,
		statScore: res.Status.Ints.Get("score.total"),
	}
	g.resetPlayer()
	return g
}

func (g *game) resetPlayer() {
	g.playerPos = vmath.Vec2{}
	g.playerVel = vmath.Vec2{}
	g.playerHealth = 0 // resolved from the build on first tick
	g.score = 0
	g.nextShotAt = 0
	g.slowFactor = 1
	g.slowUntil = 0
	g.projectiles = nil
	g.choices = nil
	g.gameOver = false
	g.newBest = false
}

// OnEnemyKilled implements engine.ScoreSink; XP flows through the kill event
func (g *game) OnEnemyKilled(score, xp int) {
	g.score += score
}

func (g *game) run() {
	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for !g.quit {
		select {
		case ev := <-events:
			g.handleInput(ev)
		case <-ticker.C:
			g.tick()
			g.render()
		}
	}
}

func (g *game) tick() {
	clock := g.world.Resources.Clock
	build := g.upgrades.Build()

	if g.playerHealth == 0 && !g.gameOver {
		g.playerHealth = build.Stat(component.StatMaxHealth)
	}

	if !g.gameOver && !clock.IsPaused() {
		g.updatePlayer(clock.Now(), build)
		g.updateProjectiles(clock.Now(), build)
	}

	g.world.Target = engine.Target{Pos: g.playerPos, Alive: !g.gameOver}
	g.world.Update(tickInterval)
	g.statScore.Store(int64(g.score))
}

func (g *game) updatePlayer(now time.Duration, build *component.Build) {
	speed := build.Stat(component.StatMoveSpeed)
	if now < g.slowUntil {
		speed *= g.slowFactor
	}
	g.playerPos = g.playerPos.Add(g.playerVel.Normalize().Scale(speed * tickInterval.Seconds()))
	g.playerVel = vmath.Vec2{}

	// Auto-fire at the nearest alive enemy
	if now < g.nextShotAt {
		return
	}
	target, ok := g.nearestEnemy()
	if !ok {
		return
	}
	rate := build.Stat(component.StatFireRate)
	if rate <= 0 {
		return
	}
	g.nextShotAt = now + time.Duration(float64(time.Second)/rate)
	g.projectiles = append(g.projectiles, projectile{
		pos:        g.playerPos,
		vel:        target.Sub(g.playerPos).Normalize().Scale(build.Stat(component.StatShotSpeed)),
		damage:     build.Stat(component.StatDamage),
		fromPlayer: true,
		dieAt:      now + projectileTTL,
	})
	g.world.PlayCue("player-shot", g.playerPos)
}

func (g *game) nearestEnemy() (vmath.Vec2, bool) {
	best := vmath.Vec2{}
	bestD := 0.0
	found := false
	for _, e := range g.world.Enemies() {
		if !e.Alive {
			continue
		}
		d := e.Pos.DistanceSq(g.playerPos)
		if !found || d < bestD {
			best, bestD, found = e.Pos, d, true
		}
	}
	return best, found
}

func (g *game) updateProjectiles(now time.Duration, build *component.Build) {
	kept := g.projectiles[:0]
	for _, p := range g.projectiles {
		p.pos = p.pos.Add(p.vel.Scale(tickInterval.Seconds()))
		if now >= p.dieAt {
			continue
		}
		if p.fromPlayer {
			if id, ok := g.hitEnemy(p.pos); ok {
				g.world.ApplyDamage(id, p.damage)
				if steal := build.Stat(component.StatLifeSteal); steal > 0 {
					g.healPlayer(p.damage*steal/100, build)
				}
				continue
			}
		} else if p.pos.Distance(g.playerPos) <= playerHitRadius {
			g.damagePlayer(p.damage)
			continue
		}
		kept = append(kept, p)
	}
	g.projectiles = kept
}

func (g *game) hitEnemy(pos vmath.Vec2) (core.Entity, bool) {
	for _, e := range g.world.Enemies() {
		if e.Alive && e.Pos.Distance(pos) <= enemyHitRadius {
			return e.ID, true
		}
	}
	return core.EntityNone, false
}

func (g *game) healPlayer(amount float64, build *component.Build) {
	g.playerHealth += amount
	if max := build.Stat(component.StatMaxHealth); g.playerHealth > max {
		g.playerHealth = max
	}
}

func (g *game) damagePlayer(amount float64) {
	if g.gameOver {
		return
	}
	g.playerHealth -= amount
	if g.playerHealth <= 0 {
		g.playerHealth = 0
		g.endGame()
	}
}

func (g *game) endGame() {
	g.gameOver = true
	wave := int(g.world.Resources.Status.Ints.Get("wave.number").Load())
	best, err := g.store.Submit(g.score, wave)
	if err != nil {
		g.setBanner("record save failed")
	}
	g.newBest = best
	g.world.PlayCue("game-over", g.playerPos)
}

func (g *game) restart() {
	g.world.Clear()
	g.world.Resources.Clock.Reset()
	g.world.Resources.Clock.Resume()
	g.resetPlayer()
	g.world.PushEvent(event.EventGameReset, nil)
}

// handleEvent is the world's event sink; it resolves everything the core
// delegates to the front-end
func (g *game) handleEvent(ev event.GameEvent) {
	now := g.world.Resources.Clock.Now()
	switch ev.Type {
	case event.EventEnemyShot:
		if p, ok := ev.Payload.(*event.EnemyShotPayload); ok {
			g.projectiles = append(g.projectiles, projectile{
				pos:    p.Origin,
				vel:    p.Dir.Scale(p.Speed),
				damage: p.Damage,
				dieAt:  now + projectileTTL,
			})
		}
	case event.EventPlayerHit:
		if p, ok := ev.Payload.(*event.PlayerHitPayload); ok {
			g.damagePlayer(p.Damage)
		}
	case event.EventCurseApplied:
		if p, ok := ev.Payload.(*event.CurseAppliedPayload); ok {
			g.slowFactor = p.SlowFactor
			g.slowUntil = now + p.Duration
			g.setBanner("cursed")
		}
	case event.EventLevelUp:
		if p, ok := ev.Payload.(*event.LevelUpPayload); ok {
			if len(p.Choices) == 0 {
				return
			}
			g.choices = p.Choices
			g.world.Resources.Clock.Pause()
		}
	case event.EventWaveStarted:
		if p, ok := ev.Payload.(*event.WaveStartedPayload); ok {
			if p.Boss {
				g.setBanner(fmt.Sprintf("wave %d: boss", p.Number))
			} else {
				g.setBanner(fmt.Sprintf("wave %d", p.Number))
			}
		}
	case event.EventWaveCleared:
		g.setBanner("wave clear")
	case event.EventSynergyActivated:
		if p, ok := ev.Payload.(*event.SynergyActivatedPayload); ok {
			g.setBanner("synergy: " + p.Key)
		}
	}
}

func (g *game) setBanner(text string) {
	g.banner = text
	g.bannerUntil = g.world.Resources.Clock.Now() + bannerDuration
}

func (g *game) handleInput(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		if _, isResize := ev.(*tcell.EventResize); isResize {
			g.screen.Sync()
		}
		return
	}

	if key.Key() == tcell.KeyCtrlC || key.Rune() == 'q' {
		g.quit = true
		return
	}

	if g.choices != nil {
		g.handleChoiceInput(key)
		return
	}
	if g.gameOver {
		if key.Rune() == 'n' {
			g.restart()
		}
		return
	}

	switch {
	case key.Rune() == 'h' || key.Key() == tcell.KeyLeft:
		g.playerVel.X = -1
	case key.Rune() == 'l' || key.Key() == tcell.KeyRight:
		g.playerVel.X = 1
	case key.Rune() == 'k' || key.Key() == tcell.KeyUp:
		g.playerVel.Y = -1
	case key.Rune() == 'j' || key.Key() == tcell.KeyDown:
		g.playerVel.Y = 1
	case key.Rune() == 'p':
		clock := g.world.Resources.Clock
		if clock.IsPaused() {
			clock.Resume()
		} else {
			clock.Pause()
		}
	}
}

func (g *game) handleChoiceInput(key *tcell.EventKey) {
	r := key.Rune()
	if r >= '1' && r <= '9' {
		idx := int(r - '1')
		if idx < len(g.choices) {
			g.upgrades.Apply(g.choices[idx])
			g.closeChoices()
		}
		return
	}
	if r == 'r' {
		choices, cost, ok := g.upgrades.Reroll(g.score)
		if !ok {
			g.setBanner("not enough score to reroll")
			return
		}
		g.score -= cost
		g.choices = choices
		if len(g.choices) == 0 {
			g.closeChoices()
		}
	}
}

func (g *game) closeChoices() {
	g.choices = nil
	g.upgrades.ResetRerolls()
	g.world.Resources.Clock.Resume()
}
