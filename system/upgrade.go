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
	"github.com/lixenwraith/nova-strike/vmath"
)

// UpgradeEngine accrues XP from kills, levels the player on a linear curve
// and runs the rarity-weighted choice draw. Acquisition mutates the build's
// stat table through ordered modifiers and re-checks synergies
type UpgradeEngine struct {
	world   *engine.World
	catalog *config.UpgradeCatalog
	build   *component.Build

	level   int
	xp      int
	rerolls int

	// pending is the open choice set; empty means no panel is up
	pending []string

	statLevel   *atomic.Int64
	statXP      *atomic.Int64
	statApplied *atomic.Int64
}

func NewUpgradeEngine(world *engine.World, catalog *config.UpgradeCatalog) *UpgradeEngine {
	res := world.Resources
	e := &UpgradeEngine{
		world:   world,
		catalog: catalog,

		statLevel:   res.Status.Ints.Get("player.level"),
		statXP:      res.Status.Ints.Get("player.xp"),
		statApplied: res.Status.Ints.Get("upgrades.applied"),
	}
	e.Init()
	return e
}

// Init resets session state for a new game
func (e *UpgradeEngine) Init() {
	e.build = component.NewBuild()
	e.level = 1
	e.xp = 0
	e.rerolls = 0
	e.pending = nil
	e.statLevel.Store(1)
	e.statXP.Store(0)
	e.statApplied.Store(0)
}

// Name returns system's name
func (e *UpgradeEngine) Name() string {
	return "upgrade"
}

// Priority runs the upgrade engine after combat systems within the tick
func (e *UpgradeEngine) Priority() int {
	return parameter.PriorityUpgrade
}

// EventTypes returns the event types UpgradeEngine handles
func (e *UpgradeEngine) EventTypes() []event.EventType {
	return []event.EventType{event.EventEnemyKilled, event.EventGameReset}
}

// HandleEvent processes upgrade events
func (e *UpgradeEngine) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventEnemyKilled:
		if p, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			e.GainXP(p.XP)
		}
	case event.EventGameReset:
		e.Init()
	}
}

// Update is event-driven; nothing to do per tick
func (e *UpgradeEngine) Update(dt time.Duration) {}

// Build returns the live player build
func (e *UpgradeEngine) Build() *component.Build {
	return e.build
}

// Catalog returns the upgrade catalog the engine draws from
func (e *UpgradeEngine) Catalog() *config.UpgradeCatalog {
	return e.catalog
}

// Level returns the current player level
func (e *UpgradeEngine) Level() int {
	return e.level
}

// XP returns progress into the current level
func (e *UpgradeEngine) XP() int {
	return e.xp
}

// XPToNext returns the threshold for the next level
func (e *UpgradeEngine) XPToNext() int {
	return parameter.XPBase * e.level
}

// Pending returns the open choice set, nil when no panel is up
func (e *UpgradeEngine) Pending() []string {
	return e.pending
}

// GainXP accrues XP and opens a choice panel per level gained
// Overflow carries into the next level
func (e *UpgradeEngine) GainXP(xp int) {
	if xp <= 0 {
		return
	}
	e.xp += xp
	e.statXP.Add(int64(xp))

	for e.xp >= e.XPToNext() {
		e.xp -= e.XPToNext()
		e.level++
		e.statLevel.Store(int64(e.level))
		e.openChoices()
	}
}

// openChoices draws a fresh choice set and announces the level-up
// An empty eligible pool produces a level-up with no choices; the
// front-end closes the panel immediately
func (e *UpgradeEngine) openChoices() {
	e.pending = e.ChooseN(parameter.UpgradeChoiceCount)
	e.world.PushEvent(event.EventLevelUp, &event.LevelUpPayload{
		Level:   e.level,
		Choices: e.pending,
	})
	e.world.PlayCue("level-up", e.world.Target.Pos)
}

// Eligible returns catalog entries the player can currently acquire:
// level gate met, stacks under cap, prerequisites owned, no exclusion owned
func (e *UpgradeEngine) Eligible() []*config.UpgradeDef {
	var out []*config.UpgradeDef
	for _, def := range e.catalog.All() {
		if def.MinLevel > e.level {
			continue
		}
		if e.build.StackCount(def.ID) >= def.MaxStacks {
			continue
		}
		if !e.hasAll(def.Requires) {
			continue
		}
		if e.hasAny(def.Excludes) {
			continue
		}
		out = append(out, def)
	}
	return out
}

func (e *UpgradeEngine) hasAll(ids []string) bool {
	for _, id := range ids {
		if !e.build.Has(id) {
			return false
		}
	}
	return true
}

func (e *UpgradeEngine) hasAny(ids []string) bool {
	for _, id := range ids {
		if e.build.Has(id) {
			return true
		}
	}
	return false
}

// ChooseN draws up to n distinct eligible upgrade ids
// Draw weight is rarity weight times the entry's own weight
func (e *UpgradeEngine) ChooseN(n int) []string {
	eligible := e.Eligible()
	if len(eligible) == 0 {
		return nil
	}
	items := make([]vmath.Weighted[string], 0, len(eligible))
	for _, def := range eligible {
		items = append(items, vmath.Weighted[string]{
			Item:   def.ID,
			Weight: rarityWeight(def.RarityTag) * def.Weight,
		})
	}
	return vmath.PickWeightedN(e.world.Resources.Rand, items, n)
}

// rarityWeight maps a rarity tier to its draw weight
func rarityWeight(r core.Rarity) float64 {
	switch r {
	case core.RarityUncommon:
		return parameter.RarityWeightUncommon
	case core.RarityRare:
		return parameter.RarityWeightRare
	case core.RarityEpic:
		return parameter.RarityWeightEpic
	case core.RarityLegendary:
		return parameter.RarityWeightLegendary
	default:
		return parameter.RarityWeightCommon
	}
}

// Apply acquires one stack of the upgrade and mutates the build
// Unknown ids and capped stacks are rejected without side effects
func (e *UpgradeEngine) Apply(id string) bool {
	def, ok := e.catalog.Get(id)
	if !ok {
		log.Printf("upgrade: unknown id %q, ignoring", id)
		return false
	}
	if e.build.StackCount(id) >= def.MaxStacks {
		log.Printf("upgrade: %s already at max stacks %d, ignoring", id, def.MaxStacks)
		return false
	}

	e.build.Stacks[id]++
	e.statApplied.Add(1)
	applyModifiers(e.build, def.Modifiers)
	e.checkSynergies()

	e.world.PushEvent(event.EventUpgradeApplied, &event.UpgradeAppliedPayload{
		ID:     id,
		Stacks: e.build.StackCount(id),
	})
	e.pending = nil
	e.ResetRerolls()
	return true
}

// applyModifiers mutates stats in list order; order matters because flat
// adds before a multiplier compound differently than after
func applyModifiers(b *component.Build, mods []config.Modifier) {
	for _, m := range mods {
		cur := b.Stats[m.Stat]
		switch m.OpTag {
		case core.OpFlat:
			cur += m.Value
		case core.OpPercent:
			cur *= 1 + m.Value/100
		case core.OpMult:
			cur *= m.Value
		}
		b.Stats[m.Stat] = cur
	}
}

// checkSynergies scans the whole acquired set so ordering never matters;
// each synergy key fires its bonus exactly once per session
func (e *UpgradeEngine) checkSynergies() {
	for id, stacks := range e.build.Stacks {
		if stacks <= 0 {
			continue
		}
		def, ok := e.catalog.Get(id)
		if !ok {
			continue
		}
		for i := range def.Synergies {
			syn := &def.Synergies[i]
			if !e.build.Has(syn.With) {
				continue
			}
			key := id + "+" + syn.With
			if e.build.Synergies[key] {
				continue
			}
			e.build.Synergies[key] = true
			applyModifiers(e.build, syn.Bonus)
			e.world.PushEvent(event.EventSynergyActivated, &event.SynergyActivatedPayload{Key: key})
			e.world.PlayCue("synergy", e.world.Target.Pos)
		}
	}
}

// RerollCost returns the score price of the next reroll on this panel
func (e *UpgradeEngine) RerollCost() int {
	return parameter.RerollBaseCost + parameter.RerollCostIncrement*e.rerolls
}

// Reroll redraws the open choice set if the balance covers the cost
// Returns the new choices and the cost charged; ok is false when refused
func (e *UpgradeEngine) Reroll(balance int) (choices []string, cost int, ok bool) {
	cost = e.RerollCost()
	if balance < cost {
		return e.pending, 0, false
	}
	e.rerolls++
	e.pending = e.ChooseN(parameter.UpgradeChoiceCount)
	return e.pending, cost, true
}

// ResetRerolls clears the escalating reroll counter when the panel closes
func (e *UpgradeEngine) ResetRerolls() {
	e.rerolls = 0
}
