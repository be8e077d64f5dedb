package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/gacha"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Equipment, 15)
	require.Len(t, c.Pools, 1)

	pool := c.Pools[0]
	assert.Equal(t, "Equipment Gacha", pool.Name)
	assert.Equal(t, int64(10), pool.Cost)
	assert.True(t, pool.Active)
	assert.Len(t, pool.Items, 15)

	rarities := map[gacha.Rarity]int{}
	for _, it := range pool.Items {
		rarities[it.Rarity]++
	}
	assert.Equal(t, 6, rarities[gacha.Common])
	assert.Equal(t, 4, rarities[gacha.Uncommon])
	assert.Equal(t, 3, rarities[gacha.Rare])
	assert.Equal(t, 2, rarities[gacha.Legendary])

	eq, ok := c.Item("excalibur")
	require.True(t, ok)
	assert.Equal(t, battle.Stats{Atk: 15, Spd: 5, HP: 10}, eq.StatBonus)
	assert.Equal(t, "weapon", eq.Slot)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad slot", `equipment: [{id: x, name: X, slot: boots, rarity: common}]`},
		{"bad rarity", `equipment: [{id: x, name: X, slot: armor, rarity: mythic}]`},
		{"duplicate id", `equipment: [{id: x, slot: armor, rarity: common}, {id: x, slot: armor, rarity: rare}]`},
		{"unknown pool item", "equipment: [{id: x, slot: armor, rarity: common}]\npools: [{id: p, cost_gems: 5, items: [{equipment_id: y, rarity: rare}]}]"},
		{"free pool", "equipment: [{id: x, slot: armor, rarity: common}]\npools: [{id: p, cost_gems: 0}]"},
		{"not yaml", `equipment: {`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
