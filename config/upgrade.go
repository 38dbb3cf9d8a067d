package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nova-strike/core"
)

// Modifier is one stat mutation carried by an upgrade
// Applied in list order: flat adds, percent multiplies by 1+value/100,
// mult multiplies by value
type Modifier struct {
	Stat  string  `yaml:"stat"`
	Op    string  `yaml:"op"`
	Value float64 `yaml:"value"`

	// OpTag is the parsed Op field, filled during validation
	OpTag core.ModifierOp `yaml:"-"`
}

// Synergy grants bonus modifiers once the named other upgrade is owned
type Synergy struct {
	With  string     `yaml:"with"`
	Bonus []Modifier `yaml:"bonus"`
}

// UpgradeDef is an immutable upgrade catalog entry
type UpgradeDef struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Category  string     `yaml:"category"`
	Rarity    string     `yaml:"rarity"`
	MinLevel  int        `yaml:"minLevel"`
	MaxStacks int        `yaml:"maxStacks"`
	Weight    float64    `yaml:"weight"`
	Modifiers []Modifier `yaml:"modifiers"`
	Requires  []string   `yaml:"requires"`
	Excludes  []string   `yaml:"excludes"`
	Synergies []Synergy  `yaml:"synergies"`

	// RarityTag is the parsed Rarity field, filled during validation
	RarityTag core.Rarity `yaml:"-"`
}

// UpgradeCatalog is the loaded upgrade library keyed by id
type UpgradeCatalog struct {
	byID  map[string]*UpgradeDef
	order []string
}

func (c *UpgradeCatalog) Get(id string) (*UpgradeDef, bool) {
	u, ok := c.byID[id]
	return u, ok
}

// All returns upgrade definitions in file order
func (c *UpgradeCatalog) All() []*UpgradeDef {
	out := make([]*UpgradeDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *UpgradeCatalog) Len() int {
	return len(c.order)
}

type upgradeFile struct {
	Upgrades []*UpgradeDef `yaml:"upgrades"`
}

// LoadUpgrades reads an upgrade catalog from a YAML file
func LoadUpgrades(path string) (*UpgradeCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read upgrade catalog %s: %w", path, err)
	}
	return parseUpgrades(data)
}

// DefaultUpgrades returns the embedded upgrade catalog
func DefaultUpgrades() (*UpgradeCatalog, error) {
	return parseUpgrades(defaultUpgradesYAML)
}

func parseUpgrades(data []byte) (*UpgradeCatalog, error) {
	var file upgradeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse upgrade YAML: %w", err)
	}
	return NewUpgradeCatalog(file.Upgrades...)
}

// NewUpgradeCatalog builds and validates a catalog from definitions,
// for programmatic construction and tests
func NewUpgradeCatalog(upgrades ...*UpgradeDef) (*UpgradeCatalog, error) {
	cat := &UpgradeCatalog{byID: make(map[string]*UpgradeDef)}
	for _, u := range upgrades {
		cat.byID[u.ID] = u
		cat.order = append(cat.order, u.ID)
	}

	if err := validateUpgrades(cat); err != nil {
		return nil, fmt.Errorf("invalid upgrade catalog: %w", err)
	}
	return cat, nil
}

func validateUpgrades(cat *UpgradeCatalog) error {
	if cat.Len() == 0 {
		return fmt.Errorf("at least one upgrade is required")
	}

	for _, id := range cat.order {
		u := cat.byID[id]
		if u.ID == "" {
			return fmt.Errorf("upgrade with empty id")
		}
		tag, ok := core.RarityFromString(u.Rarity)
		if !ok {
			return fmt.Errorf("upgrade %s: unknown rarity %q", u.ID, u.Rarity)
		}
		u.RarityTag = tag

		if u.MaxStacks < 1 {
			return fmt.Errorf("upgrade %s: maxStacks must be at least 1, got %d", u.ID, u.MaxStacks)
		}
		if u.Weight < 0 {
			return fmt.Errorf("upgrade %s: weight cannot be negative, got %v", u.ID, u.Weight)
		}
		if u.MinLevel < 0 {
			return fmt.Errorf("upgrade %s: minLevel cannot be negative, got %d", u.ID, u.MinLevel)
		}

		if err := validateModifiers(u.ID, u.Modifiers); err != nil {
			return err
		}
		for _, ref := range u.Requires {
			if _, ok := cat.byID[ref]; !ok {
				return fmt.Errorf("upgrade %s: requires unknown id %q", u.ID, ref)
			}
		}
		for _, ref := range u.Excludes {
			if _, ok := cat.byID[ref]; !ok {
				return fmt.Errorf("upgrade %s: excludes unknown id %q", u.ID, ref)
			}
		}
		for i := range u.Synergies {
			syn := &u.Synergies[i]
			if _, ok := cat.byID[syn.With]; !ok {
				return fmt.Errorf("upgrade %s: synergy with unknown id %q", u.ID, syn.With)
			}
			if err := validateModifiers(u.ID, syn.Bonus); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateModifiers(id string, mods []Modifier) error {
	for i := range mods {
		m := &mods[i]
		if m.Stat == "" {
			return fmt.Errorf("upgrade %s: modifier with empty stat", id)
		}
		tag, ok := core.ModifierOpFromString(m.Op)
		if !ok {
			return fmt.Errorf("upgrade %s: unknown modifier op %q", id, m.Op)
		}
		m.OpTag = tag
	}
	return nil
}
