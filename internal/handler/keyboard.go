package handler

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/game/battle"
)

// Callback data prefixes. Battle callbacks always target the sender's current battle.
const (
	CallbackBattleAction  = "battle_act:"    // battle_act:attack, battle_act:skill:fireball
	CallbackBattleRefresh = "battle_refresh" // battle_refresh
)

// BuildActionKeyboard creates the action panel for a unit: one row of basic actions,
// then its skills two per row with the ones it cannot afford marked.
func BuildActionKeyboard(u battle.Unit) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}

	rows := []tele.Row{markup.Row(
		markup.Data("⚔️ 攻击", CallbackBattleAction+string(battle.ActionAttack)),
		markup.Data("🛡 防御", CallbackBattleAction+string(battle.ActionDefend)),
		markup.Data("🧪 道具", CallbackBattleAction+string(battle.ActionItem)),
	)}

	var currentRow []tele.Btn
	for i, sk := range u.Skills {
		label := fmt.Sprintf("✨ %s (%d)", sk.Name, sk.Cost)
		if u.CurrentMP < sk.Cost {
			label = fmt.Sprintf("🚫 %s (%d)", sk.Name, sk.Cost)
		}
		currentRow = append(currentRow, markup.Data(label, CallbackBattleAction+string(battle.ActionSkill)+":"+sk.ID))
		if len(currentRow) == 2 || i == len(u.Skills)-1 {
			rows = append(rows, markup.Row(currentRow...))
			currentRow = nil
		}
	}

	rows = append(rows, markup.Row(markup.Data("🔄 刷新", CallbackBattleRefresh)))
	markup.Inline(rows...)
	return markup
}

// BuildRefreshKeyboard creates a panel with only the refresh button.
func BuildRefreshKeyboard() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("🔄 刷新", CallbackBattleRefresh)))
	return markup
}

// ParseActionCallback decodes the data of an action button.
func ParseActionCallback(data string) (battle.Action, bool) {
	rest, ok := strings.CutPrefix(data, CallbackBattleAction)
	if !ok {
		return battle.Action{}, false
	}
	kind, skill, _ := strings.Cut(rest, ":")
	action := battle.Action{Type: battle.ActionType(kind)}
	if action.Type == battle.ActionSkill {
		action.SkillID = skill
	}
	return action, action.Valid()
}
