// Package gacha implements the rarity roll with rare and legendary pity.
package gacha

import "fmt"

// Rarity of a pulled item.
type Rarity string

const (
	Common    Rarity = "common"
	Uncommon  Rarity = "uncommon"
	Rare      Rarity = "rare"
	Legendary Rarity = "legendary"
)

// Valid reports whether r is a known rarity.
func (r Rarity) Valid() bool {
	switch r {
	case Common, Uncommon, Rare, Legendary:
		return true
	}
	return false
}

// Pity thresholds: a counter at or above the threshold forces the rarity.
const (
	LegendaryPity = 49
	RarePity      = 19
)

// Rate is the base probability of a rarity.
type Rate struct {
	Rarity Rarity
	P      float64
}

// DefaultRates are evaluated in order for cumulative selection.
var DefaultRates = []Rate{
	{Common, 0.60},
	{Uncommon, 0.25},
	{Rare, 0.10},
	{Legendary, 0.05},
}

// Roller rolls rarities from a rate table and random source.
type Roller struct {
	Rates []Rate
	RNG   RandomSource
}

// NewRoller creates a Roller with DefaultRates; a nil rng uses DefaultRNG.
func NewRoller(rng RandomSource) *Roller {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Roller{Rates: DefaultRates, RNG: rng}
}

// ValidateRates checks that every rate is within [0, 1] and the total does not exceed 1.
func ValidateRates(rates []Rate) error {
	sum := 0.0
	for _, r := range rates {
		if !r.Rarity.Valid() {
			return fmt.Errorf("unknown rarity %q", r.Rarity)
		}
		if r.P < 0 || r.P > 1 {
			return fmt.Errorf("rate for %s out of range: %v", r.Rarity, r.P)
		}
		sum += r.P
	}
	if sum > 1+1e-9 {
		return fmt.Errorf("rates sum to %v", sum)
	}
	return nil
}

// Roll returns the rarity for one pull given the two pity counters.
// Legendary pity is checked first and wins when both thresholds are met.
func (r *Roller) Roll(sinceRare, sinceLegendary int) Rarity {
	if sinceLegendary >= LegendaryPity {
		return Legendary
	}
	if sinceRare >= RarePity {
		return Rare
	}
	return Pick(r.Rates, r.RNG.Float64())
}

// Pick selects by cumulative probability for a uniform draw u in [0, 1).
// Draws past the end of the table land on Common.
func Pick(rates []Rate, u float64) Rarity {
	cumulative := 0.0
	for _, rate := range rates {
		cumulative += rate.P
		if u < cumulative {
			return rate.Rarity
		}
	}
	return Common
}
