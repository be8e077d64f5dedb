// Package battle implements the turn-based PvP combat rules:
// the damage and element model, unit derivation, and the battle state machine.
package battle

import "time"

// Element is the elemental affinity of a unit or skill.
type Element string

const (
	ElementPhysical Element = "physical"
	ElementFire     Element = "fire"
	ElementWind     Element = "wind"
	ElementWater    Element = "water"
)

// Stats is the combat stat tuple of a unit.
type Stats struct {
	HP  int `json:"hp" yaml:"hp"`
	Atk int `json:"atk" yaml:"atk"`
	Mag int `json:"mag" yaml:"mag"`
	Def int `json:"def" yaml:"def"`
	Res int `json:"res" yaml:"res"`
	Spd int `json:"spd" yaml:"spd"`
}

// Add returns the component-wise sum of two stat tuples.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		HP:  s.HP + o.HP,
		Atk: s.Atk + o.Atk,
		Mag: s.Mag + o.Mag,
		Def: s.Def + o.Def,
		Res: s.Res + o.Res,
		Spd: s.Spd + o.Spd,
	}
}

// SkillTarget selects who a skill is aimed at.
type SkillTarget string

const (
	TargetEnemy SkillTarget = "enemy"
	TargetSelf  SkillTarget = "self"
	TargetAlly  SkillTarget = "ally"
)

// Effect tags recorded on turn results.
const (
	EffectHeal      = "heal"
	EffectBuffDef   = "buff_def"
	EffectBuffAtk   = "buff_atk"
	EffectDefending = "defending"
)

// Skill is an immutable class ability.
type Skill struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Element Element     `json:"element"`
	Power   float64     `json:"power"`
	Cost    int         `json:"cost"`
	Target  SkillTarget `json:"target"`
	Effect  string      `json:"effect,omitempty"`
}

// MaxMP is the fixed mana pool of every unit.
const MaxMP = 30

// Unit is a combat participant snapshot.
type Unit struct {
	AvatarID  string  `json:"avatar_id"`
	Name      string  `json:"name"`
	Class     string  `json:"class"`
	Level     int     `json:"level"`
	Stats     Stats   `json:"stats"`
	CurrentHP int     `json:"current_hp"`
	CurrentMP int     `json:"current_mp"`
	Skills    []Skill `json:"skills"`
	Element   Element `json:"element"`
}

// Skill looks up a skill by id.
func (u Unit) Skill(id string) (Skill, bool) {
	for _, s := range u.Skills {
		if s.ID == id {
			return s, true
		}
	}
	return Skill{}, false
}

// ActionType enumerates the actions a player may submit.
type ActionType string

const (
	ActionAttack ActionType = "attack"
	ActionSkill  ActionType = "skill"
	ActionDefend ActionType = "defend"
	ActionItem   ActionType = "item"
)

// Action is one player command.
type Action struct {
	Type    ActionType `json:"type"`
	SkillID string     `json:"skill_id,omitempty"`
	ItemID  string     `json:"item_id,omitempty"`
}

// Valid reports whether the action type is one of the known kinds.
func (a Action) Valid() bool {
	switch a.Type {
	case ActionAttack, ActionSkill, ActionDefend, ActionItem:
		return true
	}
	return false
}

// Side identifies one of the two participants.
type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Outcome is the winner marker of a battle.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeA    Outcome = "a"
	OutcomeB    Outcome = "b"
	OutcomeDraw Outcome = "draw"
)

// Status is the battle lifecycle stage. Transitions only go forward.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

// TurnResult records one resolved action. Immutable once appended to the log.
type TurnResult struct {
	ActorID           string   `json:"actor_id"`
	Action            Action   `json:"action"`
	TargetID          string   `json:"target_id"`
	Damage            int      `json:"damage"`
	Healing           int      `json:"healing"`
	ElementMultiplier float64  `json:"element_multiplier"`
	Effects           []string `json:"effects"`
}

// HasEffect reports whether the result carries the given tag.
func (r TurnResult) HasEffect(tag string) bool {
	for _, e := range r.Effects {
		if e == tag {
			return true
		}
	}
	return false
}

// State is an immutable battle snapshot. Transitions produce new values.
type State struct {
	ID           string       `json:"id"`
	UnitA        Unit         `json:"unit_a"`
	UnitB        Unit         `json:"unit_b"`
	Turn         Side         `json:"turn"`
	TurnNumber   int          `json:"turn_number"`
	TurnDeadline time.Time    `json:"turn_deadline"`
	Status       Status       `json:"status"`
	Winner       Outcome      `json:"winner"`
	Log          []TurnResult `json:"log"`
}

// Unit returns the unit on the given side.
func (s *State) Unit(side Side) Unit {
	if side == SideA {
		return s.UnitA
	}
	return s.UnitB
}

// LastResult returns the most recent log entry, if any.
func (s *State) LastResult() (TurnResult, bool) {
	if len(s.Log) == 0 {
		return TurnResult{}, false
	}
	return s.Log[len(s.Log)-1], true
}
