package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-arena/internal/game/battle"
)

func TestParseActionCallback(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected battle.Action
		ok       bool
	}{
		{"attack", "battle_act:attack", battle.Action{Type: battle.ActionAttack}, true},
		{"defend", "battle_act:defend", battle.Action{Type: battle.ActionDefend}, true},
		{"item", "battle_act:item", battle.Action{Type: battle.ActionItem}, true},
		{"skill", "battle_act:skill:fireball", battle.Action{Type: battle.ActionSkill, SkillID: "fireball"}, true},
		{"skill id ignored on attack", "battle_act:attack:x", battle.Action{Type: battle.ActionAttack}, true},
		{"unknown action", "battle_act:flee", battle.Action{Type: "flee"}, false},
		{"other prefix", "shop_buy:x", battle.Action{}, false},
		{"refresh", CallbackBattleRefresh, battle.Action{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := ParseActionCallback(tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, action)
		})
	}
}

func TestBuildActionKeyboard(t *testing.T) {
	u := battle.NewUnit(battle.DefaultClasses()[1], battle.Loadout{AvatarID: "m", Name: "Merlin", Level: 1})
	u.CurrentMP = 5

	markup := BuildActionKeyboard(u)
	rows := markup.InlineKeyboard
	// basics, two skill rows, refresh
	require.Len(t, rows, 4)
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 1)
	assert.Len(t, rows[3], 1)

	var skillData []string
	for _, row := range rows[1:3] {
		for _, btn := range row {
			skillData = append(skillData, btn.Unique)
			action, ok := ParseActionCallback(btn.Unique)
			assert.True(t, ok)
			assert.Equal(t, battle.ActionSkill, action.Type)
		}
	}
	assert.Equal(t, []string{
		"battle_act:skill:fireball",
		"battle_act:skill:flame_wave",
		"battle_act:skill:inferno",
	}, skillData)

	// fireball costs 6 and inferno 15; only flame wave is affordable at 5 mp
	assert.True(t, strings.HasPrefix(rows[1][0].Text, "🚫"))
	assert.True(t, strings.HasPrefix(rows[1][1].Text, "✨"))
	assert.True(t, strings.HasPrefix(rows[2][0].Text, "🚫"))

	for _, row := range rows {
		for _, btn := range row {
			assert.LessOrEqual(t, len("\f"+btn.Unique), 64, "callback data %q exceeds the telegram limit", btn.Unique)
		}
	}
}
