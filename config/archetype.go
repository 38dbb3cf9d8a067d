package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nova-strike/core"
)

// Archetype is the static template for one enemy kind
// Immutable after load; every live instance references one archetype
type Archetype struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	Variant       string  `yaml:"variant"`
	MaxHealth     float64 `yaml:"maxHealth"`
	MoveSpeed     float64 `yaml:"moveSpeed"`
	ContactDamage float64 `yaml:"contactDamage"`
	ScoreValue    int     `yaml:"scoreValue"`
	XPValue       int     `yaml:"xpValue"`
	Weight        float64 `yaml:"weight"`
	MinWave       int     `yaml:"minWave"`
	Params        Params  `yaml:"params"`

	// VariantTag is the parsed Variant field, filled during validation
	VariantTag core.BehaviorVariant `yaml:"-"`
}

// Params is the union of per-variant tunables
// Each variant reads its own subset; unused fields stay zero.
// Durations are seconds, converted with Seconds at the use site
type Params struct {
	// Chaser
	StopDistance    float64 `yaml:"stopDistance"`
	RetreatDistance float64 `yaml:"retreatDistance"`
	ShootRange      float64 `yaml:"shootRange"`
	ShootCooldown   float64 `yaml:"shootCooldown"`
	ShotSpeed       float64 `yaml:"shotSpeed"`
	ShotDamage      float64 `yaml:"shotDamage"`

	// Tank / Berserker charge
	ChargeDistance float64 `yaml:"chargeDistance"`
	ChargeSpeed    float64 `yaml:"chargeSpeed"`
	ChargeDuration float64 `yaml:"chargeDuration"`
	ChargeCooldown float64 `yaml:"chargeCooldown"`
	RecoverTime    float64 `yaml:"recoverTime"`

	// Sniper
	KeepDistance float64 `yaml:"keepDistance"`

	// Kamikaze
	ActivationRange float64 `yaml:"activationRange"`
	RushSpeed       float64 `yaml:"rushSpeed"`
	ExplosionRadius float64 `yaml:"explosionRadius"`
	ExplosionDamage float64 `yaml:"explosionDamage"`

	// Swarm
	GroupRadius      float64 `yaml:"groupRadius"`
	SeparationWeight float64 `yaml:"separationWeight"`
	CohesionWeight   float64 `yaml:"cohesionWeight"`
	AlignmentWeight  float64 `yaml:"alignmentWeight"`
	TargetBias       float64 `yaml:"targetBias"`
	AllyBonusPerAlly float64 `yaml:"allyBonusPerAlly"`
	AllyBonusCap     float64 `yaml:"allyBonusCap"`
	DiveSpeed        float64 `yaml:"diveSpeed"`
	DiveDuration     float64 `yaml:"diveDuration"`
	DiveCooldown     float64 `yaml:"diveCooldown"`
	RallyBoost       float64 `yaml:"rallyBoost"`
	RallyDuration    float64 `yaml:"rallyDuration"`

	// Berserker
	EnrageThreshold     float64 `yaml:"enrageThreshold"`
	BerserkThreshold    float64 `yaml:"berserkThreshold"`
	EnrageSpeedMult     float64 `yaml:"enrageSpeedMult"`
	BerserkSpeedMult    float64 `yaml:"berserkSpeedMult"`
	EnrageDamageMult    float64 `yaml:"enrageDamageMult"`
	BerserkDamageMult   float64 `yaml:"berserkDamageMult"`
	GroundPoundRadius   float64 `yaml:"groundPoundRadius"`
	GroundPoundDamage   float64 `yaml:"groundPoundDamage"`
	GroundPoundCooldown float64 `yaml:"groundPoundCooldown"`
	RegenDelay          float64 `yaml:"regenDelay"`
	RegenPerSecond      float64 `yaml:"regenPerSecond"`

	// Necromancer
	TeleportRange    float64 `yaml:"teleportRange"`
	TeleportDistance float64 `yaml:"teleportDistance"`
	TeleportCooldown float64 `yaml:"teleportCooldown"`
	SummonInterval   float64 `yaml:"summonInterval"`
	SummonCap        int     `yaml:"summonCap"`
	SummonArchetype  string  `yaml:"summonArchetype"`
	HealRadius       float64 `yaml:"healRadius"`
	HealAmount       float64 `yaml:"healAmount"`
	HealInterval     float64 `yaml:"healInterval"`
	CurseRange       float64 `yaml:"curseRange"`
	CurseSlowFactor  float64 `yaml:"curseSlowFactor"`
	CurseDuration    float64 `yaml:"curseDuration"`
	CurseCooldown    float64 `yaml:"curseCooldown"`

	// Boss
	AttackCooldown       float64 `yaml:"attackCooldown"`
	BarrageCooldown      float64 `yaml:"barrageCooldown"`
	SpreadCount          int     `yaml:"spreadCount"`
	SpiralStep           float64 `yaml:"spiralStep"`
	PhaseSpeedBonus      float64 `yaml:"phaseSpeedBonus"`
	PhaseMinionCount     int     `yaml:"phaseMinionCount"`
	PhaseMinionArchetype string  `yaml:"phaseMinionArchetype"`
}

// Seconds converts a float tunable to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// ArchetypeCatalog is the loaded enemy library keyed by id
// Order preserves file order so weighted draws are reproducible
type ArchetypeCatalog struct {
	byID  map[string]*Archetype
	order []string
}

// Get returns the archetype for id
func (c *ArchetypeCatalog) Get(id string) (*Archetype, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// All returns archetypes in file order
func (c *ArchetypeCatalog) All() []*Archetype {
	out := make([]*Archetype, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Len returns the catalog size
func (c *ArchetypeCatalog) Len() int {
	return len(c.order)
}

type archetypeFile struct {
	Archetypes []*Archetype `yaml:"archetypes"`
}

// LoadArchetypes reads an archetype catalog from a YAML file
func LoadArchetypes(path string) (*ArchetypeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read archetype catalog %s: %w", path, err)
	}
	return parseArchetypes(data)
}

// DefaultArchetypes returns the embedded archetype catalog
func DefaultArchetypes() (*ArchetypeCatalog, error) {
	return parseArchetypes(defaultArchetypesYAML)
}

func parseArchetypes(data []byte) (*ArchetypeCatalog, error) {
	var file archetypeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse archetype YAML: %w", err)
	}
	return NewArchetypeCatalog(file.Archetypes...)
}

// NewArchetypeCatalog builds and validates a catalog from definitions,
// for programmatic construction and tests
func NewArchetypeCatalog(archetypes ...*Archetype) (*ArchetypeCatalog, error) {
	cat := &ArchetypeCatalog{byID: make(map[string]*Archetype)}
	for _, a := range archetypes {
		cat.byID[a.ID] = a
		cat.order = append(cat.order, a.ID)
	}

	if err := validateArchetypes(cat); err != nil {
		return nil, fmt.Errorf("invalid archetype catalog: %w", err)
	}
	return cat, nil
}

func validateArchetypes(cat *ArchetypeCatalog) error {
	if cat.Len() == 0 {
		return fmt.Errorf("at least one archetype is required")
	}

	for _, id := range cat.order {
		a := cat.byID[id]
		if a.ID == "" {
			return fmt.Errorf("archetype with empty id")
		}
		tag, ok := core.VariantFromString(a.Variant)
		if !ok {
			return fmt.Errorf("archetype %s: unknown variant %q", a.ID, a.Variant)
		}
		a.VariantTag = tag

		if a.MaxHealth <= 0 {
			return fmt.Errorf("archetype %s: maxHealth must be positive, got %v", a.ID, a.MaxHealth)
		}
		if a.MoveSpeed < 0 {
			return fmt.Errorf("archetype %s: moveSpeed cannot be negative, got %v", a.ID, a.MoveSpeed)
		}
		if a.Weight < 0 {
			return fmt.Errorf("archetype %s: weight cannot be negative, got %v", a.ID, a.Weight)
		}
		if a.MinWave < 0 {
			return fmt.Errorf("archetype %s: minWave cannot be negative, got %d", a.ID, a.MinWave)
		}

		if a.Params.SummonArchetype != "" {
			if _, ok := cat.byID[a.Params.SummonArchetype]; !ok {
				return fmt.Errorf("archetype %s: summonArchetype %q not in catalog", a.ID, a.Params.SummonArchetype)
			}
		}
		if a.Params.PhaseMinionArchetype != "" {
			if _, ok := cat.byID[a.Params.PhaseMinionArchetype]; !ok {
				return fmt.Errorf("archetype %s: phaseMinionArchetype %q not in catalog", a.ID, a.Params.PhaseMinionArchetype)
			}
		}
	}
	return nil
}
