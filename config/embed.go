package config

import (
	_ "embed"
)

// Default catalogs ship embedded so the game runs without external files;
// file overrides go through LoadArchetypes / LoadUpgrades

//go:embed defaults/archetypes.yaml
var defaultArchetypesYAML []byte

//go:embed defaults/upgrades.yaml
var defaultUpgradesYAML []byte
