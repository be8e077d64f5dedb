package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/model"
	"pixel-arena/internal/service"
)

// BattleHandler handles matchmaking, turns and settlement.
type BattleHandler struct {
	battleService      *service.BattleService
	matchmakingService *service.MatchmakingService
}

// NewBattleHandler creates a new BattleHandler.
func NewBattleHandler(battleService *service.BattleService, matchmakingService *service.MatchmakingService) *BattleHandler {
	return &BattleHandler{
		battleService:      battleService,
		matchmakingService: matchmakingService,
	}
}

// HandlePvP handles the /pvp command.
func (h *BattleHandler) HandlePvP(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	res, err := h.matchmakingService.Join(ctx, sender.ID)
	if err != nil {
		return c.Reply(ErrorReply(err, "❌ 匹配失败，请稍后重试"))
	}

	if res.Status == service.JoinWaiting {
		return c.Reply("🔍 已加入匹配队列，正在寻找实力相近的对手...\n\n使用 /battle 查看状态", BuildRefreshKeyboard())
	}

	role := res.Session.Role(sender.ID)
	h.notifyOpponent(c, res.Session, role, "⚔️ 匹配成功！对手已就位")
	text, markup := battleView(res.Session, role)
	return c.Reply("⚔️ 匹配成功！\n\n"+text, markup)
}

// HandleBattle handles the /battle command.
func (h *BattleHandler) HandleBattle(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	session, err := h.battleService.Current(ctx, sender.ID)
	if err != nil {
		return c.Reply(ErrorReply(err, "❌ 查询对战失败，请稍后重试"))
	}
	text, markup := battleView(session, session.Role(sender.ID))
	return c.Reply(text, markup)
}

// HandleAttack handles the /attack command.
func (h *BattleHandler) HandleAttack(c tele.Context) error {
	return h.act(c, battle.Action{Type: battle.ActionAttack})
}

// HandleSkill handles the /skill command.
// Format: /skill <skill_id>
func (h *BattleHandler) HandleSkill(c tele.Context) error {
	args := c.Args()
	if len(args) != 1 {
		return c.Reply("❌ 用法: /skill <技能ID>\n使用 /me 查看技能")
	}
	return h.act(c, battle.Action{Type: battle.ActionSkill, SkillID: strings.ToLower(args[0])})
}

// HandleDefend handles the /defend command.
func (h *BattleHandler) HandleDefend(c tele.Context) error {
	return h.act(c, battle.Action{Type: battle.ActionDefend})
}

// HandleItem handles the /item command.
func (h *BattleHandler) HandleItem(c tele.Context) error {
	var itemID string
	if args := c.Args(); len(args) > 0 {
		itemID = args[0]
	}
	return h.act(c, battle.Action{Type: battle.ActionItem, ItemID: itemID})
}

func (h *BattleHandler) act(c tele.Context, action battle.Action) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	text, markup, err := h.submit(sender.ID, action, c)
	if err != nil {
		return c.Reply(ErrorReply(err, "❌ 行动失败，请稍后重试"))
	}
	return c.Reply(text, markup)
}

// submit resolves action in the sender's current battle and notifies the opponent.
func (h *BattleHandler) submit(playerID int64, action battle.Action, c tele.Context) (string, *tele.ReplyMarkup, error) {
	ctx := context.Background()

	current, err := h.battleService.Current(ctx, playerID)
	if err != nil {
		return "", nil, err
	}
	out, err := h.battleService.SubmitTurn(ctx, current.ID, playerID, action)
	if err != nil {
		return "", nil, err
	}

	role := out.Session.Role(playerID)
	h.notifyOpponent(c, out.Session, role, FormatTurn(out.Session.State, out.Result))
	text, markup := battleView(out.Session, role)
	return text, markup, nil
}

// HandleSettle handles the /settle command.
// Settles the sender's most recently finished battle.
func (h *BattleHandler) HandleSettle(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	res, err := h.battleService.SettleLatest(ctx, sender.ID)
	if err != nil {
		if errors.Is(err, service.ErrBattleNotFound) {
			return c.Reply("❌ 没有待结算的对战")
		}
		return c.Reply(ErrorReply(err, "❌ 结算失败，请稍后重试"))
	}
	return c.Reply(FormatSettlement(res))
}

// HandleCallback handles battle panel buttons. data has the telebot prefix removed.
func (h *BattleHandler) HandleCallback(c tele.Context, data string) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	if data == CallbackBattleRefresh {
		session, err := h.battleService.Current(ctx, sender.ID)
		if err != nil {
			return c.Respond(&tele.CallbackResponse{Text: ErrorReply(err, "❌ 查询对战失败"), ShowAlert: true})
		}
		text, markup := battleView(session, session.Role(sender.ID))
		c.Respond()
		return editIgnoringUnchanged(c, text, markup)
	}

	action, ok := ParseActionCallback(data)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "❌ 无效的行动"})
	}

	text, markup, err := h.submit(sender.ID, action, c)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: ErrorReply(err, "❌ 行动失败，请稍后重试"), ShowAlert: true})
	}
	c.Respond(&tele.CallbackResponse{Text: "✅ 行动成功"})
	return editIgnoringUnchanged(c, text, markup)
}

// notifyOpponent sends a private message to the other participant. Delivery fails when
// the opponent never opened a chat with the bot; that is logged and ignored.
func (h *BattleHandler) notifyOpponent(c tele.Context, session *model.BattleSession, role battle.Side, headline string) {
	if role == "" || session.PlayerB == nil || c.Bot() == nil {
		return
	}
	other := role.Other()
	opponentID := session.PlayerFor(other)
	text, markup := battleView(session, other)
	if _, err := c.Bot().Send(&tele.User{ID: opponentID}, headline+"\n\n"+text, markup); err != nil {
		log.Debug().Err(err).Int64("player_id", opponentID).Str("battle_id", session.ID).Msg("Failed to notify opponent")
	}
}

// battleView renders a session with the panel matching the viewer's situation.
func battleView(session *model.BattleSession, viewer battle.Side) (string, *tele.ReplyMarkup) {
	text := FormatBattle(session, viewer)
	st := session.State
	if st == nil {
		return text, BuildRefreshKeyboard()
	}
	if st.Status != battle.StatusActive {
		// clears the panel of a finished battle
		markup := &tele.ReplyMarkup{}
		markup.Inline()
		return text, markup
	}
	if st.Turn == viewer {
		return text, BuildActionKeyboard(st.Unit(viewer))
	}
	return text, BuildRefreshKeyboard()
}

func editIgnoringUnchanged(c tele.Context, text string, markup *tele.ReplyMarkup) error {
	err := c.Edit(text, markup)
	if errors.Is(err, tele.ErrSameMessageContent) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to edit battle panel: %w", err)
	}
	return nil
}
