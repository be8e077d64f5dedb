// Package catalog holds the equipment and gacha pool definitions seeded at startup.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/model"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Catalog is the full item and pool listing.
type Catalog struct {
	Equipment []model.Equipment `yaml:"equipment"`
	Pools     []model.GachaPool `yaml:"pools"`

	byID map[string]model.Equipment
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a YAML catalog. Pools with no items receive every
// equipment entry at its own rarity.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c.byID = make(map[string]model.Equipment, len(c.Equipment))
	for _, eq := range c.Equipment {
		if eq.ID == "" {
			return nil, fmt.Errorf("equipment %q has no id", eq.Name)
		}
		if _, dup := c.byID[eq.ID]; dup {
			return nil, fmt.Errorf("duplicate equipment id %q", eq.ID)
		}
		if !model.ValidSlot(eq.Slot) {
			return nil, fmt.Errorf("equipment %q has invalid slot %q", eq.ID, eq.Slot)
		}
		if !eq.Rarity.Valid() {
			return nil, fmt.Errorf("equipment %q has invalid rarity %q", eq.ID, eq.Rarity)
		}
		c.byID[eq.ID] = eq
	}

	for i := range c.Pools {
		p := &c.Pools[i]
		if p.ID == "" {
			return nil, fmt.Errorf("pool %q has no id", p.Name)
		}
		if p.Cost <= 0 {
			return nil, fmt.Errorf("pool %q must have a positive cost", p.ID)
		}
		if len(p.Items) == 0 {
			for _, eq := range c.Equipment {
				p.Items = append(p.Items, gacha.PoolItem{EquipmentID: eq.ID, Rarity: eq.Rarity})
			}
		}
		for _, it := range p.Items {
			if _, ok := c.byID[it.EquipmentID]; !ok {
				return nil, fmt.Errorf("pool %q references unknown equipment %q", p.ID, it.EquipmentID)
			}
		}
	}

	return &c, nil
}

// Item returns the catalog entry for id.
func (c *Catalog) Item(id string) (model.Equipment, bool) {
	eq, ok := c.byID[id]
	return eq, ok
}
