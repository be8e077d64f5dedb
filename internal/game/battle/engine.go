package battle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultTurnTimeout is the time a player has to act before the turn is forfeited to defend.
const DefaultTurnTimeout = 30 * time.Second

// Errors returned by the state machine.
var (
	ErrBattleNotActive = errors.New("battle is not active")
	ErrUnknownAction   = errors.New("unknown action type")
)

// Engine resolves battle transitions. It holds no mutable state.
type Engine struct {
	TurnTimeout time.Duration
}

// NewEngine creates an Engine; a non-positive timeout falls back to DefaultTurnTimeout.
func NewEngine(turnTimeout time.Duration) *Engine {
	if turnTimeout <= 0 {
		turnTimeout = DefaultTurnTimeout
	}
	return &Engine{TurnTimeout: turnTimeout}
}

// NewBattle creates an active battle. The faster unit acts first; ties favor unit A.
func (e *Engine) NewBattle(id string, a, b Unit, now time.Time) *State {
	first := SideB
	if a.Stats.Spd >= b.Stats.Spd {
		first = SideA
	}
	return &State{
		ID:           id,
		UnitA:        a,
		UnitB:        b,
		Turn:         first,
		TurnNumber:   1,
		TurnDeadline: now.Add(e.TurnTimeout),
		Status:       StatusActive,
		Winner:       OutcomeNone,
		Log:          []TurnResult{},
	}
}

// ResolveTurn applies one action by the unit whose turn it is and returns the next snapshot.
// The input state is never modified.
func (e *Engine) ResolveTurn(state *State, action Action, now time.Time) (*State, TurnResult, error) {
	if state.Status != StatusActive {
		return nil, TurnResult{}, ErrBattleNotActive
	}
	if !action.Valid() {
		return nil, TurnResult{}, fmt.Errorf("%w: %q", ErrUnknownAction, action.Type)
	}

	actorSide := state.Turn
	actor := state.Unit(actorSide)
	target := state.Unit(actorSide.Other())

	damage, healing := 0, 0
	multiplier := 1.0
	effects := []string{}

	basicAttack := func() {
		multiplier = ElementMultiplier(actor.Element, target.Element)
		damage = CalcDamage(actor.Stats, target.Stats, 1.0, false, multiplier)
		target.CurrentHP = max(0, target.CurrentHP-damage)
	}

	switch action.Type {
	case ActionAttack:
		basicAttack()
	case ActionSkill:
		skill, ok := actor.Skill(action.SkillID)
		if !ok || actor.CurrentMP < skill.Cost {
			// unknown or unaffordable skills downgrade to a basic attack
			basicAttack()
			break
		}
		actor.CurrentMP -= skill.Cost
		multiplier = ElementMultiplier(skill.Element, target.Element)
		switch {
		case skill.Effect == EffectHeal:
			healing = CalcHealing(actor.Stats, skill.Power)
			actor.CurrentHP = min(actor.Stats.HP, actor.CurrentHP+healing)
			effects = append(effects, EffectHeal)
		case strings.HasPrefix(skill.Effect, "buff"):
			effects = append(effects, skill.Effect)
		default:
			magic := skill.Element != ElementPhysical
			damage = CalcDamage(actor.Stats, target.Stats, skill.Power, magic, multiplier)
			target.CurrentHP = max(0, target.CurrentHP-damage)
		}
	case ActionDefend, ActionItem:
		effects = append(effects, EffectDefending)
	}

	// Keyed on the immediately preceding log entry, whichever unit wrote it.
	if last, ok := state.LastResult(); ok && last.HasEffect(EffectDefending) && damage > 0 {
		reduced := max(1, damage/2)
		target.CurrentHP = min(target.Stats.HP, target.CurrentHP+(damage-reduced))
		damage = reduced
	}

	result := TurnResult{
		ActorID:           actor.AvatarID,
		Action:            action,
		TargetID:          target.AvatarID,
		Damage:            damage,
		Healing:           healing,
		ElementMultiplier: multiplier,
		Effects:           effects,
	}

	entries := make([]TurnResult, len(state.Log), len(state.Log)+1)
	copy(entries, state.Log)

	next := &State{
		ID:           state.ID,
		Turn:         actorSide.Other(),
		TurnNumber:   state.TurnNumber + 1,
		TurnDeadline: now.Add(e.TurnTimeout),
		Status:       StatusActive,
		Winner:       OutcomeNone,
		Log:          append(entries, result),
	}
	if actorSide == SideA {
		next.UnitA, next.UnitB = actor, target
	} else {
		next.UnitA, next.UnitB = target, actor
	}

	if winner := IsGameOver(next); winner != OutcomeNone {
		next.Status = StatusFinished
		next.Winner = winner
	}

	return next, result, nil
}

// IsGameOver reports the outcome, or OutcomeNone while both units stand.
func IsGameOver(state *State) Outcome {
	aDown := state.UnitA.CurrentHP <= 0
	bDown := state.UnitB.CurrentHP <= 0
	switch {
	case aDown && bDown:
		return OutcomeDraw
	case bDown:
		return OutcomeA
	case aDown:
		return OutcomeB
	}
	return OutcomeNone
}
