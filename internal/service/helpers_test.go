package service

import (
	"time"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/model"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return t0 }

func unitFor(id, class string) battle.Unit {
	for _, c := range battle.DefaultClasses() {
		if c.Name == class {
			return battle.NewUnit(c, battle.Loadout{AvatarID: id, Name: id, Level: 1})
		}
	}
	panic("unknown class " + class)
}

// activeSession builds a session between players 1 (a, ranger) and 2 (b, knight).
// The ranger is faster, so player 1 owns the first turn.
func activeSession(id string) *model.BattleSession {
	engine := battle.NewEngine(30 * time.Second)
	state := engine.NewBattle(id, unitFor("av-1", battle.ClassRanger), unitFor("av-2", battle.ClassKnight), t0)
	b := int64(2)
	deadline := state.TurnDeadline
	return &model.BattleSession{
		ID:           id,
		PlayerA:      1,
		PlayerB:      &b,
		Status:       model.SessionActive,
		State:        state,
		TurnNumber:   state.TurnNumber,
		TurnDeadline: &deadline,
	}
}

// storedAfter mimics what the store returns after writing state.
func storedAfter(s *model.BattleSession, state *battle.State, winnerID *int64) *model.BattleSession {
	out := *s
	out.State = state
	out.TurnNumber = state.TurnNumber
	out.WinnerID = winnerID
	if state.Status == battle.StatusFinished {
		out.Status = model.SessionFinished
	}
	return &out
}
