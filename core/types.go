package core

// Entity is a unique identifier for a live simulation entity
// IDs are never reused within a session
type Entity uint64

// EntityNone marks the absence of an entity reference
const EntityNone Entity = 0

// BehaviorVariant selects the decision logic an enemy runs each tick
// One archetype definition maps to exactly one variant
type BehaviorVariant int

const (
	VariantChaser BehaviorVariant = iota
	VariantTank
	VariantSniper
	VariantKamikaze
	VariantSwarm
	VariantBerserker
	VariantNecromancer
	VariantBoss
)

// String returns the lowercase variant name used in config files
func (v BehaviorVariant) String() string {
	switch v {
	case VariantChaser:
		return "chaser"
	case VariantTank:
		return "tank"
	case VariantSniper:
		return "sniper"
	case VariantKamikaze:
		return "kamikaze"
	case VariantSwarm:
		return "swarm"
	case VariantBerserker:
		return "berserker"
	case VariantNecromancer:
		return "necromancer"
	case VariantBoss:
		return "boss"
	}
	return "unknown"
}

// VariantFromString parses a config variant tag
// Returns false for unknown tags so loaders can reject them
func VariantFromString(s string) (BehaviorVariant, bool) {
	switch s {
	case "chaser":
		return VariantChaser, true
	case "tank":
		return VariantTank, true
	case "sniper":
		return VariantSniper, true
	case "kamikaze":
		return VariantKamikaze, true
	case "swarm":
		return VariantSwarm, true
	case "berserker":
		return VariantBerserker, true
	case "necromancer":
		return VariantNecromancer, true
	case "boss":
		return VariantBoss, true
	}
	return 0, false
}

// BehaviorState is the per-enemy state machine node
// Variants use the subset that applies to them
type BehaviorState int

const (
	StateApproach BehaviorState = iota
	StateHoldRange
	StateRetreat
	StateCharging
	StateRecovering
	StatePatrol
	StateActivated
	StateExploding
)

// String returns a short state name for diagnostics
func (s BehaviorState) String() string {
	switch s {
	case StateApproach:
		return "approach"
	case StateHoldRange:
		return "hold"
	case StateRetreat:
		return "retreat"
	case StateCharging:
		return "charging"
	case StateRecovering:
		return "recovering"
	case StatePatrol:
		return "patrol"
	case StateActivated:
		return "activated"
	case StateExploding:
		return "exploding"
	}
	return "unknown"
}

// WavePhase is the wave scheduler lifecycle state
type WavePhase int

const (
	WaveIdle WavePhase = iota
	WaveSpawning
	WaveWaitingForClear
	WaveBreaking
)

// String returns a short phase name for metrics and diagnostics
func (p WavePhase) String() string {
	switch p {
	case WaveIdle:
		return "idle"
	case WaveSpawning:
		return "spawning"
	case WaveWaitingForClear:
		return "waiting"
	case WaveBreaking:
		return "breaking"
	}
	return "unknown"
}

// SpawnPattern selects the placement algorithm for a wave
type SpawnPattern int

const (
	PatternCircle SpawnPattern = iota
	PatternGrid
	PatternRing
	PatternSpiral
	PatternRandom

	// PatternCount is the number of placement patterns; used for cycling
	PatternCount = 5
)

// String returns the lowercase pattern name
func (p SpawnPattern) String() string {
	switch p {
	case PatternCircle:
		return "circle"
	case PatternGrid:
		return "grid"
	case PatternRing:
		return "ring"
	case PatternSpiral:
		return "spiral"
	case PatternRandom:
		return "random"
	}
	return "unknown"
}

// Rarity tiers for upgrade definitions, common to legendary
type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityEpic
	RarityLegendary
)

// RarityFromString parses a config rarity tag
func RarityFromString(s string) (Rarity, bool) {
	switch s {
	case "common":
		return RarityCommon, true
	case "uncommon":
		return RarityUncommon, true
	case "rare":
		return RarityRare, true
	case "epic":
		return RarityEpic, true
	case "legendary":
		return RarityLegendary, true
	}
	return 0, false
}

// ModifierOp is the stat modifier application kind
// Modifiers are applied in list order, never re-sorted
type ModifierOp int

const (
	// OpFlat adds the value to the stat
	OpFlat ModifierOp = iota
	// OpPercent multiplies the stat by 1 + value/100
	OpPercent
	// OpMult multiplies the stat by the value
	OpMult
)

// ModifierOpFromString parses a config operation tag
func ModifierOpFromString(s string) (ModifierOp, bool) {
	switch s {
	case "flat":
		return OpFlat, true
	case "percent":
		return OpPercent, true
	case "mult":
		return OpMult, true
	}
	return 0, false
}
