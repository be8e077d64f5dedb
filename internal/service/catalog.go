package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"pixel-arena/internal/catalog"
)

// SeedCatalog upserts the catalog's equipment and pools.
func SeedCatalog(ctx context.Context, c *catalog.Catalog, items InventoryStore, pools GachaStore) error {
	for _, eq := range c.Equipment {
		if err := items.UpsertEquipment(ctx, eq); err != nil {
			return fmt.Errorf("failed to seed equipment %s: %w", eq.ID, err)
		}
	}
	for _, p := range c.Pools {
		if err := pools.UpsertPool(ctx, p); err != nil {
			return fmt.Errorf("failed to seed pool %s: %w", p.ID, err)
		}
	}
	log.Info().Int("equipment", len(c.Equipment)).Int("pools", len(c.Pools)).Msg("Catalog seeded")
	return nil
}
