package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRNG float64

func (f fixedRNG) Float64() float64 { return float64(f) }

func TestRoll_Pity(t *testing.T) {
	r := NewRoller(fixedRNG(0.0)) // an unforced roll would be common

	assert.Equal(t, Rare, r.Roll(19, 30))
	assert.Equal(t, Legendary, r.Roll(10, 49))
	assert.Equal(t, Legendary, r.Roll(19, 49))
	assert.Equal(t, Common, r.Roll(18, 48))
}

func TestPick_Cumulative(t *testing.T) {
	tests := []struct {
		u        float64
		expected Rarity
	}{
		{0.0, Common},
		{0.59, Common},
		{0.60, Uncommon},
		{0.84, Uncommon},
		{0.86, Rare},
		{0.94, Rare},
		{0.96, Legendary},
		{0.999, Legendary},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Pick(DefaultRates, tt.u), "u=%v", tt.u)
	}

	// the table may not cover [0,1)
	assert.Equal(t, Common, Pick([]Rate{{Rare, 0.5}}, 0.7))
}

func TestRoll_Distribution(t *testing.T) {
	r := NewRoller(NewSeededRNG(42))
	counts := map[Rarity]int{}
	for i := 0; i < 10000; i++ {
		counts[r.Roll(0, 0)]++
	}

	assert.Greater(t, counts[Common], counts[Uncommon])
	assert.Greater(t, counts[Uncommon], counts[Rare])
	assert.Greater(t, counts[Rare], 0)
	assert.Greater(t, counts[Legendary], 0)
	assert.InDelta(t, 6000, counts[Common], 300)
}

func TestValidateRates(t *testing.T) {
	require.NoError(t, ValidateRates(DefaultRates))
	assert.Error(t, ValidateRates([]Rate{{Common, 0.7}, {Rare, 0.4}}))
	assert.Error(t, ValidateRates([]Rate{{Common, -0.1}}))
	assert.Error(t, ValidateRates([]Rate{{"mythic", 0.1}}))
}

func TestCountersFromHistory(t *testing.T) {
	tests := []struct {
		name     string
		history  []Rarity
		expected Counters
	}{
		{"empty", nil, Counters{0, 0}},
		{"latest rare", []Rarity{Rare, Common}, Counters{0, 2}},
		{"commons then legendary", []Rarity{Common, Uncommon, Legendary, Common}, Counters{2, 2}},
		{"rare before legendary", []Rarity{Common, Rare, Common, Legendary}, Counters{1, 3}},
		{"no qualifying", []Rarity{Common, Common, Uncommon}, Counters{3, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountersFromHistory(tt.history))
		})
	}
}

func TestPullCost(t *testing.T) {
	cost, err := PullCost(10, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(10), cost)

	cost, err = PullCost(10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(90), cost)

	_, err = PullCost(10, 5)
	assert.ErrorIs(t, err, ErrInvalidCount)
}

func TestPullBatch_PityAdvancesWithinBatch(t *testing.T) {
	items := []PoolItem{
		{"sword", Common},
		{"staff", Rare},
		{"crown", Legendary},
	}
	r := NewRoller(fixedRNG(0.0))

	results := r.PullBatch(Counters{SinceRare: 15, SinceLegendary: 45}, 10, items)
	require.Len(t, results, 10)

	// i=0..3 common, i=4 hits rare pity (15+4=19), legendary pity from i=4 as well (45+4=49)
	for i := 0; i < 4; i++ {
		assert.Equal(t, Common, results[i].Rarity, "pull %d", i)
	}
	for i := 4; i < 10; i++ {
		assert.Equal(t, Legendary, results[i].Rarity, "pull %d", i)
		assert.Equal(t, "crown", results[i].EquipmentID)
	}
}

func TestPullBatch_FallsBackToFirstItem(t *testing.T) {
	items := []PoolItem{{"sword", Common}}
	r := NewRoller(fixedRNG(0.0))

	results := r.PullBatch(Counters{SinceRare: 19}, 1, items)
	require.Len(t, results, 1)
	assert.Equal(t, Rare, results[0].Rarity)
	assert.Equal(t, "sword", results[0].EquipmentID)

	assert.Nil(t, r.PullBatch(Counters{}, 1, nil))
}
