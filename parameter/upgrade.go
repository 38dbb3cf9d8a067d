package parameter

// Upgrade Selection
const (
	// UpgradeChoiceCount is how many options a level-up presents
	UpgradeChoiceCount = 3

	// RerollBaseCost is the score cost of the first reroll per choice screen
	RerollBaseCost = 50

	// RerollCostIncrement is added to the cost per reroll this session;
	// the counter resets when the choice screen closes
	RerollCostIncrement = 25

	// XPBase scales the linear level curve: xpToNext = XPBase * level
	XPBase = 100
)

// Rarity weights for the rarity-weighted draw; per-item weight multiplies these
const (
	RarityWeightCommon    = 100.0
	RarityWeightUncommon  = 60.0
	RarityWeightRare      = 30.0
	RarityWeightEpic      = 10.0
	RarityWeightLegendary = 3.0
)
