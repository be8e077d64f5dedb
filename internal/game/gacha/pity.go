package gacha

// Counters are the two pity counters of a (player, pool) pair.
type Counters struct {
	SinceRare      int
	SinceLegendary int
}

// CountersFromHistory derives pity counters from past pull rarities, newest first.
// Each counter is the number of pulls before the most recent qualifying result;
// with no qualifying result it is the length of the window.
func CountersFromHistory(newestFirst []Rarity) Counters {
	var c Counters
	for _, r := range newestFirst {
		if r == Rare || r == Legendary {
			break
		}
		c.SinceRare++
	}
	for _, r := range newestFirst {
		if r == Legendary {
			break
		}
		c.SinceLegendary++
	}
	return c
}
