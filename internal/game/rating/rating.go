// Package rating implements Elo rating deltas and the matchmaking rating window.
package rating

import "math"

const (
	// K is the Elo K-factor.
	K = 32
	// Default is the starting rating of a new player.
	Default = 1000
	// DefaultWindow is the maximum rating gap for a match.
	DefaultWindow = 100
)

// Change returns the winner's gain and the loser's (negative) delta.
func Change(winnerRating, loserRating int) (winnerDelta, loserDelta int) {
	expected := 1 / (1 + math.Pow(10, float64(loserRating-winnerRating)/400))
	winnerDelta = int(math.Round(K * (1 - expected)))
	return winnerDelta, -winnerDelta
}

// IsMatch reports whether two ratings are within window of each other.
func IsMatch(a, b, window int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= window
}

// Record is a player's competitive standing.
type Record struct {
	Rating int `json:"rating"`
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Streak int `json:"streak"`
}

// NewRecord returns the record of a player who has not played.
func NewRecord() Record {
	return Record{Rating: Default}
}

// Result of a battle from one participant's point of view.
type Result int

const (
	Loss Result = iota
	Win
	Draw
)

// Apply returns the record after a battle with the given rating delta.
// Rating is floored at 0. A draw counts as neither win nor loss and resets the streak.
func (r Record) Apply(result Result, delta int) Record {
	r.Rating = max(0, r.Rating+delta)
	switch result {
	case Win:
		r.Wins++
		r.Streak++
	case Loss:
		r.Losses++
		r.Streak = 0
	default:
		r.Streak = 0
	}
	return r
}

// Settle computes both records after a battle. winnerA/winnerB are mutually exclusive;
// both false is a draw, which leaves ratings unchanged.
func Settle(a, b Record, winnerA, winnerB bool) (Record, Record) {
	switch {
	case winnerA:
		wd, ld := Change(a.Rating, b.Rating)
		return a.Apply(Win, wd), b.Apply(Loss, ld)
	case winnerB:
		wd, ld := Change(b.Rating, a.Rating)
		return a.Apply(Loss, ld), b.Apply(Win, wd)
	}
	return a.Apply(Draw, 0), b.Apply(Draw, 0)
}

// Candidate is a waiting opponent considered by SelectOpponent.
type Candidate struct {
	PlayerID int64
	Rating   int
}

// SelectOpponent returns the index of the first candidate (oldest first) within window
// of rating, or -1. The joining player is skipped.
func SelectOpponent(self int64, rating int, candidates []Candidate, window int) int {
	for i, c := range candidates {
		if c.PlayerID == self {
			continue
		}
		if IsMatch(rating, c.Rating, window) {
			return i
		}
	}
	return -1
}
