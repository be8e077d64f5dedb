package gacha

import (
	"errors"
)

// ErrInvalidCount is returned for pull counts other than 1 or 10.
var ErrInvalidCount = errors.New("pull count must be 1 or 10")

// MultiPullCount is the size of a discounted batch.
const MultiPullCount = 10

// PoolItem is one entry of a pool's item list.
type PoolItem struct {
	EquipmentID string `json:"equipment_id" yaml:"equipment_id"`
	Rarity      Rarity `json:"rarity" yaml:"rarity"`
}

// Result is the outcome of a single pull.
type Result struct {
	Rarity      Rarity `json:"rarity"`
	EquipmentID string `json:"equipment_id"`
}

// PullCost returns the total gem cost; a 10-pull charges nine times the single price.
func PullCost(price int64, count int) (int64, error) {
	switch count {
	case 1:
		return price, nil
	case MultiPullCount:
		return price * 9, nil
	}
	return 0, ErrInvalidCount
}

// PullBatch rolls count pulls against items. Pull i of the batch sees both counters
// advanced by i. The item is picked uniformly among items of the rolled rarity,
// falling back to the first item when none match.
func (r *Roller) PullBatch(c Counters, count int, items []PoolItem) []Result {
	if len(items) == 0 || count <= 0 {
		return nil
	}
	results := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		rarity := r.Roll(c.SinceRare+i, c.SinceLegendary+i)

		var candidates []PoolItem
		for _, it := range items {
			if it.Rarity == rarity {
				candidates = append(candidates, it)
			}
		}
		picked := items[0]
		if len(candidates) > 0 {
			picked = candidates[intn(r.RNG, len(candidates))]
		}
		results = append(results, Result{Rarity: rarity, EquipmentID: picked.EquipmentID})
	}
	return results
}
