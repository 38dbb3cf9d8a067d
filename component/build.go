package component

// Stat names the player build resolves
// Base values are the session-start table; upgrades mutate a copy
const (
	StatDamage    = "damage"
	StatFireRate  = "fireRate"
	StatMoveSpeed = "moveSpeed"
	StatMaxHealth = "maxHealth"
	StatShotSpeed = "shotSpeed"
	StatLifeSteal = "lifeSteal"
)

// baseStats is the unmodified player stat table
var baseStats = map[string]float64{
	StatDamage:    10,
	StatFireRate:  2.0,
	StatMoveSpeed: 10,
	StatMaxHealth: 100,
	StatShotSpeed: 30,
	StatLifeSteal: 0,
}

// Build is the player's mutable upgrade aggregate for one session
type Build struct {
	// Stacks maps acquired upgrade id to its stack count
	Stacks map[string]int

	// Stats is the resolved numeric table consumed by the front-end
	Stats map[string]float64

	// Synergies holds activated synergy keys, each fires once
	Synergies map[string]bool
}

// NewBuild returns an empty build with base stats
func NewBuild() *Build {
	stats := make(map[string]float64, len(baseStats))
	for k, v := range baseStats {
		stats[k] = v
	}
	return &Build{
		Stacks:    make(map[string]int),
		Stats:     stats,
		Synergies: make(map[string]bool),
	}
}

// Has reports whether the upgrade has been acquired at least once
func (b *Build) Has(id string) bool {
	return b.Stacks[id] > 0
}

// StackCount returns the acquired stack count for id
func (b *Build) StackCount(id string) int {
	return b.Stacks[id]
}

// Stat returns the resolved value for a stat name, zero when unknown
func (b *Build) Stat(name string) float64 {
	return b.Stats[name]
}
