// Property-based tests for the rating engine.
package rating

import (
	"testing"

	"pgregory.net/rapid"
)

// TestChangeSymmetryProperty: deltas are zero-sum, bounded by K, and an upset pays more.
func TestChangeSymmetryProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		winner := rapid.IntRange(0, 3000).Draw(t, "winner")
		loser := rapid.IntRange(0, 3000).Draw(t, "loser")

		w, l := Change(winner, loser)
		if w+l != 0 {
			t.Fatalf("deltas not zero-sum: %d %d", w, l)
		}
		if w < 0 || w > K {
			t.Fatalf("winner delta %d out of [0,%d]", w, K)
		}
		if winner > loser {
			if up, _ := Change(loser, winner); up < w {
				t.Fatalf("upset delta %d below favored delta %d", up, w)
			}
		}
	})
}

// TestIsMatchProperty: the window is symmetric and inclusive.
func TestIsMatchProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 3000).Draw(t, "a")
		b := rapid.IntRange(0, 3000).Draw(t, "b")
		window := rapid.IntRange(0, 500).Draw(t, "window")

		if IsMatch(a, b, window) != IsMatch(b, a, window) {
			t.Fatalf("IsMatch not symmetric for %d %d", a, b)
		}
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		if IsMatch(a, b, window) != (diff <= window) {
			t.Fatalf("IsMatch(%d, %d, %d) wrong", a, b, window)
		}
	})
}

// TestSettleProperty: ratings never go negative and exactly one side gains a win.
func TestSettleProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := Record{Rating: rapid.IntRange(0, 3000).Draw(t, "ra"), Streak: rapid.IntRange(0, 10).Draw(t, "sa")}
		b := Record{Rating: rapid.IntRange(0, 3000).Draw(t, "rb"), Streak: rapid.IntRange(0, 10).Draw(t, "sb")}
		aWins := rapid.Bool().Draw(t, "aWins")

		na, nb := Settle(a, b, aWins, !aWins)
		if na.Rating < 0 || nb.Rating < 0 {
			t.Fatalf("negative rating: %d %d", na.Rating, nb.Rating)
		}
		if na.Wins+nb.Wins != 1 || na.Losses+nb.Losses != 1 {
			t.Fatalf("win/loss not recorded once: %+v %+v", na, nb)
		}
		winner := na
		if !aWins {
			winner = nb
		}
		if winner.Streak < 1 {
			t.Fatalf("winner streak %d", winner.Streak)
		}
	})
}
