package parameter

// System priorities, lower values run first within a tick
// Wave issues spawns before behavior moves them; upgrades consume
// kill events emitted earlier in the same tick
const (
	PriorityWave     = 10
	PriorityBehavior = 20
	PriorityUpgrade  = 30
)
