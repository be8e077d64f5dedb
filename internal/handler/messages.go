package handler

import (
	"errors"
	"fmt"
	"strings"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/model"
	"pixel-arena/internal/service"
)

// errorReplies maps service errors to user-facing replies. Order matters only for
// readability; every sentinel is distinct.
var errorReplies = []struct {
	err   error
	reply string
}{
	{service.ErrNotParticipant, "❌ 你不是这场对战的参与者"},
	{service.ErrNotYourTurn, "⏳ 还没轮到你行动"},
	{service.ErrBattleNotFound, "❌ 没有找到对战，使用 /pvp 开始匹配"},
	{service.ErrBattleNotActive, "❌ 对战未在进行中"},
	{service.ErrBattleNotFinished, "❌ 对战尚未结束"},
	{service.ErrPoolNotFound, "❌ 卡池不存在或已关闭"},
	{service.ErrAvatarNotFound, "❌ 你还没有角色，使用 /avatar <名字> <职业> 创建"},
	{service.ErrUserNotFound, "❌ 用户不存在"},
	{service.ErrInsufficientGems, "💎 宝石不足"},
	{service.ErrInvalidAction, "❌ 无效的行动"},
	{service.ErrInvalidPullCount, "❌ 抽卡次数只能是 1 或 10"},
	{service.ErrInvalidAvatarName, "❌ 角色名需要 2-16 个字符"},
	{service.ErrInvalidClass, "❌ 未知职业"},
	{service.ErrEquipmentNotOwned, "❌ 你没有这件装备"},
	{service.ErrInvalidAmount, "❌ 数量必须大于 0"},
	{service.ErrAlreadySettled, "✅ 这场对战已经结算过了"},
	{service.ErrAvatarExists, "❌ 你已经拥有一个角色"},
	{service.ErrTurnConflict, "⚠️ 行动冲突，请重试"},
}

// ErrorReply returns the reply for a service error, or fallback for anything unknown.
func ErrorReply(err error, fallback string) string {
	for _, r := range errorReplies {
		if errors.Is(err, r.err) {
			return r.reply
		}
	}
	return fallback
}

var classNames = map[string]string{
	battle.ClassKnight: "骑士",
	battle.ClassMage:   "法师",
	battle.ClassRanger: "游侠",
	battle.ClassHealer: "治疗师",
}

var elementIcons = map[battle.Element]string{
	battle.ElementPhysical: "⚔️",
	battle.ElementFire:     "🔥",
	battle.ElementWind:     "🌪",
	battle.ElementWater:    "💧",
}

var rarityIcons = map[gacha.Rarity]string{
	gacha.Common:    "⚪",
	gacha.Uncommon:  "🟢",
	gacha.Rare:      "🔵",
	gacha.Legendary: "🟡",
}

var slotNames = map[string]string{
	model.SlotWeapon:    "武器",
	model.SlotArmor:     "护甲",
	model.SlotAccessory: "饰品",
}

// ClassName returns the display name of a class.
func ClassName(class string) string {
	if n, ok := classNames[class]; ok {
		return n
	}
	return class
}

// FormatAvatar renders an avatar card.
func FormatAvatar(a *model.Avatar, u battle.Unit) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "🧙 %s  Lv.%d %s %s\n", a.Name, a.Level, ClassName(a.Class), elementIcons[u.Element])
	fmt.Fprintf(&sb, "经验: %d\n", a.Exp)
	s := u.Stats
	fmt.Fprintf(&sb, "❤️ %d  ⚔️ %d  ✨ %d  🛡 %d  🔰 %d  💨 %d\n", s.HP, s.Atk, s.Mag, s.Def, s.Res, s.Spd)
	sb.WriteString("技能:\n")
	for _, sk := range u.Skills {
		fmt.Fprintf(&sb, "• %s (%s) 消耗 %d MP\n", sk.Name, sk.ID, sk.Cost)
	}
	return sb.String()
}

// FormatBattle renders the battle status from viewer's side.
func FormatBattle(session *model.BattleSession, viewer battle.Side) string {
	st := session.State
	if st == nil {
		return "⏳ 正在等待对手..."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "⚔️ 对战 #%s  第 %d 回合\n\n", shortID(session.ID), st.TurnNumber)
	writeUnit(&sb, st.UnitA, viewer == battle.SideA)
	writeUnit(&sb, st.UnitB, viewer == battle.SideB)

	if last, ok := st.LastResult(); ok {
		sb.WriteString("\n")
		sb.WriteString(FormatTurn(st, last))
	}

	sb.WriteString("\n")
	switch {
	case st.Status == battle.StatusFinished:
		sb.WriteString(finishLine(st, viewer))
		sb.WriteString("\n使用 /settle 结算奖励")
	case st.Turn == viewer:
		fmt.Fprintf(&sb, "👉 轮到你行动 (截止 %s)", st.TurnDeadline.Format("15:04:05"))
	default:
		sb.WriteString("⏳ 等待对手行动")
	}
	return sb.String()
}

func writeUnit(sb *strings.Builder, u battle.Unit, self bool) {
	marker := "  "
	if self {
		marker = "▶"
	}
	fmt.Fprintf(sb, "%s %s Lv.%d %s\n", marker, u.Name, u.Level, ClassName(u.Class))
	fmt.Fprintf(sb, "   ❤️ %d/%d  🔷 %d/%d\n", u.CurrentHP, u.Stats.HP, u.CurrentMP, battle.MaxMP)
}

// FormatTurn describes one resolved turn.
func FormatTurn(st *battle.State, r battle.TurnResult) string {
	actor := unitName(st, r.ActorID)
	target := unitName(st, r.TargetID)

	var line string
	switch r.Action.Type {
	case battle.ActionDefend, battle.ActionItem:
		line = fmt.Sprintf("🛡 %s 进入防御姿态", actor)
	case battle.ActionSkill:
		name := r.Action.SkillID
		for _, u := range []battle.Unit{st.UnitA, st.UnitB} {
			if sk, ok := u.Skill(r.Action.SkillID); ok && u.AvatarID == r.ActorID {
				name = sk.Name
			}
		}
		line = fmt.Sprintf("✨ %s 使用 %s", actor, name)
	default:
		line = fmt.Sprintf("⚔️ %s 发动攻击", actor)
	}

	if r.Damage > 0 {
		line += fmt.Sprintf("，对 %s 造成 %d 点伤害", target, r.Damage)
		switch {
		case r.ElementMultiplier > 1:
			line += " (克制!)"
		case r.ElementMultiplier < 1:
			line += " (被抵抗)"
		}
	}
	if r.Healing > 0 {
		line += fmt.Sprintf("，恢复 %d 点生命", r.Healing)
	}
	return line
}

func finishLine(st *battle.State, viewer battle.Side) string {
	switch {
	case st.Winner == battle.OutcomeDraw:
		return "🤝 对战结束：平局"
	case viewer != "" && string(st.Winner) == string(viewer):
		return "🏆 对战结束：你赢了！"
	case viewer != "":
		return "💀 对战结束：你输了"
	}
	return fmt.Sprintf("🏁 对战结束：%s 获胜", st.Unit(battle.Side(st.Winner)).Name)
}

func unitName(st *battle.State, avatarID string) string {
	if st.UnitA.AvatarID == avatarID {
		return st.UnitA.Name
	}
	if st.UnitB.AvatarID == avatarID {
		return st.UnitB.Name
	}
	return avatarID
}

// FormatSettlement renders the caller's settlement.
func FormatSettlement(s *service.Settlement) string {
	var title string
	switch s.Result {
	case service.ResultVictory:
		title = "🏆 胜利！"
	case service.ResultDefeat:
		title = "💀 失败"
	default:
		title = "🤝 平局"
	}
	p := s.Player
	return fmt.Sprintf(
		"%s\n\n"+
			"积分: %d (%+d)\n"+
			"战绩: %d 胜 %d 负  连胜 %d\n"+
			"经验: +%d  (Lv.%d, %d)\n"+
			"金币: +%d",
		title, p.Rating.Rating, p.RatingDelta,
		p.Rating.Wins, p.Rating.Losses, p.Rating.Streak,
		p.ExpGained, p.Level, p.Exp, p.Gold,
	)
}

// FormatPull renders a gacha result.
func FormatPull(res *service.PullResult, names func(id string) string) string {
	var sb strings.Builder
	sb.WriteString("🎰 抽卡结果\n\n")
	for _, r := range res.Results {
		fmt.Fprintf(&sb, "%s %s\n", rarityIcons[r.Rarity], names(r.EquipmentID))
	}
	fmt.Fprintf(&sb, "\n💎 消耗 %d，剩余 %d", res.Spent, res.Remaining)
	return sb.String()
}

// FormatLeaderboard renders rating rows.
func FormatLeaderboard(entries []*model.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "🏆 排行榜\n\n暂无数据"
	}
	var sb strings.Builder
	sb.WriteString("🏆 排行榜\n\n")
	for _, e := range entries {
		medal := fmt.Sprintf("%d.", e.Rank)
		switch e.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}
		fmt.Fprintf(&sb, "%s %s (%s Lv.%d) %d 分  %d胜/%d负\n",
			medal, e.Name, ClassName(e.Class), e.Level, e.Rating, e.Wins, e.Losses)
	}
	return sb.String()
}

// FormatInventory renders owned equipment.
func FormatInventory(items []model.InventoryItem, avatar *model.Avatar) string {
	if len(items) == 0 {
		return "🎒 背包是空的，使用 /gacha 抽取装备"
	}
	equipped := map[string]bool{}
	if avatar != nil {
		for _, id := range avatar.EquippedIDs() {
			equipped[id] = true
		}
	}

	var sb strings.Builder
	sb.WriteString("🎒 背包\n\n")
	for _, it := range items {
		eq := it.Equipment
		mark := ""
		if equipped[eq.ID] {
			mark = " [已装备]"
		}
		fmt.Fprintf(&sb, "%s %s x%d  %s%s\n   /equip %s\n",
			rarityIcons[eq.Rarity], eq.Name, it.Quantity, slotNames[eq.Slot], mark, eq.ID)
	}
	return sb.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
