// Package handler provides Telegram bot command handlers.
package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/game"
	"pixel-arena/internal/service"
)

// AccountHandler handles account, avatar and equipment commands.
type AccountHandler struct {
	accountService *service.AccountService
	rankingService *service.RankingService
	classes        *game.Registry
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *service.AccountService, rankingService *service.RankingService, classes *game.Registry) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		rankingService: rankingService,
		classes:        classes,
	}
}

func displayName(sender *tele.User) string {
	if sender.Username != "" {
		return sender.Username
	}
	return sender.FirstName
}

// HandleStart handles the /start command.
// Creates the account with the starting gems if it doesn't exist.
func (h *AccountHandler) HandleStart(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	username := displayName(sender)
	user, created, err := h.accountService.EnsureUser(ctx, sender.ID, username)
	if err != nil {
		log.Error().Err(err).Int64("player_id", sender.ID).Msg("Failed to ensure user")
		return c.Reply("❌ 创建账户失败，请稍后重试")
	}

	if created {
		return c.Reply(fmt.Sprintf(
			"🎉 欢迎来到像素竞技场 @%s！\n\n"+
				"初始宝石: %d 💎\n\n"+
				"可用命令:\n"+
				"/avatar <名字> <职业> - 创建角色\n"+
				"/me - 查看角色与资产\n"+
				"/bag - 背包\n"+
				"/gacha [10] - 抽取装备\n"+
				"/pvp - 匹配对战\n"+
				"/battle - 当前对战\n"+
				"/top - 排行榜",
			username, user.Gems,
		))
	}

	return c.Reply(fmt.Sprintf(
		"👋 欢迎回来 @%s！\n\n"+
			"💎 %d  💰 %d",
		username, user.Gems, user.Gold,
	))
}

// HandleMe handles the /me command.
// Displays currencies, the avatar card and the rating record.
func (h *AccountHandler) HandleMe(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	user, err := h.accountService.Balance(ctx, sender.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Reply("❌ 您还没有账户，请先使用 /start 创建")
		}
		return c.Reply("❌ 查询失败，请稍后重试")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 @%s\n💎 宝石: %d\n💰 金币: %d\n\n", user.Username, user.Gems, user.Gold)

	avatar, err := h.accountService.GetAvatar(ctx, sender.ID)
	switch {
	case errors.Is(err, service.ErrAvatarNotFound):
		sb.WriteString("还没有角色，使用 /avatar <名字> <职业> 创建\n")
		sb.WriteString(h.classList())
		return c.Reply(sb.String())
	case err != nil:
		return c.Reply("❌ 查询失败，请稍后重试")
	}

	unit, err := h.accountService.BuildUnit(ctx, sender.ID)
	if err != nil {
		return c.Reply(ErrorReply(err, "❌ 查询失败，请稍后重试"))
	}
	sb.WriteString(FormatAvatar(avatar, unit))

	if rec, err := h.rankingService.Record(ctx, sender.ID); err == nil {
		fmt.Fprintf(&sb, "\n🏅 积分 %d  %d 胜 %d 负  连胜 %d", rec.Rating, rec.Wins, rec.Losses, rec.Streak)
	}
	return c.Reply(sb.String())
}

// HandleAvatar handles the /avatar command.
// Format: /avatar <name> <class>
func (h *AccountHandler) HandleAvatar(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) < 2 {
		return c.Reply("❌ 用法: /avatar <名字> <职业>\n\n" + h.classList())
	}
	class := args[len(args)-1]
	name := strings.Join(args[:len(args)-1], " ")

	if _, _, err := h.accountService.EnsureUser(ctx, sender.ID, displayName(sender)); err != nil {
		return c.Reply("❌ 创建账户失败，请稍后重试")
	}

	avatar, err := h.accountService.CreateAvatar(ctx, sender.ID, name, class)
	if err != nil {
		reply := ErrorReply(err, "❌ 创建角色失败，请稍后重试")
		if errors.Is(err, service.ErrInvalidClass) {
			reply += "\n\n" + h.classList()
		}
		return c.Reply(reply)
	}

	return c.Reply(fmt.Sprintf(
		"✅ 角色创建成功！\n\n"+
			"🧙 %s  Lv.%d %s\n\n"+
			"使用 /pvp 开始你的第一场对战",
		avatar.Name, avatar.Level, ClassName(avatar.Class),
	))
}

// HandleEquip handles the /equip command.
// Format: /equip <equipment_id>
func (h *AccountHandler) HandleEquip(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	args := c.Args()
	if len(args) != 1 {
		return c.Reply("❌ 用法: /equip <装备ID>\n使用 /bag 查看装备")
	}

	avatar, err := h.accountService.Equip(ctx, sender.ID, args[0])
	if err != nil {
		return c.Reply(ErrorReply(err, "❌ 装备失败，请稍后重试"))
	}

	unit, err := h.accountService.BuildUnit(ctx, sender.ID)
	if err != nil {
		return c.Reply("✅ 装备成功")
	}
	return c.Reply("✅ 装备成功\n\n" + FormatAvatar(avatar, unit))
}

// HandleBag handles the /bag command.
func (h *AccountHandler) HandleBag(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	items, err := h.accountService.Inventory(ctx, sender.ID)
	if err != nil {
		return c.Reply("❌ 查询背包失败，请稍后重试")
	}
	avatar, err := h.accountService.GetAvatar(ctx, sender.ID)
	if err != nil {
		avatar = nil
	}
	return c.Reply(FormatInventory(items, avatar))
}

func (h *AccountHandler) classList() string {
	var sb strings.Builder
	sb.WriteString("可选职业:")
	for _, name := range h.classes.Names() {
		fmt.Fprintf(&sb, "\n• %s (%s)", name, ClassName(name))
	}
	return sb.String()
}
