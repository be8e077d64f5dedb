package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/service"
)

const historyLimit = 10

// AdminHandler handles admin-only commands.
type AdminHandler struct {
	accountService *service.AccountService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(accountService *service.AccountService) *AdminHandler {
	return &AdminHandler{accountService: accountService}
}

// HandleAdminGems handles the /admin_gems command.
// Format: /admin_gems <user_id> <amount>
func (h *AdminHandler) HandleAdminGems(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	targetID, amount, err := parseAdminArgs(c.Args())
	if err != nil {
		return c.Reply(err.Error())
	}

	user, err := h.accountService.GrantGems(ctx, sender.ID, targetID, amount)
	if err != nil {
		return c.Reply(ErrorReply(err, "❌ 操作失败，请稍后重试"))
	}

	name := user.Username
	if name == "" {
		name = strconv.FormatInt(targetID, 10)
	}
	return c.Reply(fmt.Sprintf(
		"✅ 操作成功\n\n"+
			"👤 用户: %s (ID: %d)\n"+
			"➕ 添加: %d 宝石\n"+
			"💎 当前宝石: %d",
		name, targetID, amount, user.Gems,
	))
}

// HandleAdminHistory handles the /admin_history command.
// Format: /admin_history <user_id>
func (h *AdminHandler) HandleAdminHistory(c tele.Context) error {
	ctx := context.Background()

	args := c.Args()
	if len(args) != 1 {
		return c.Reply("❌ 用法: /admin_history <用户ID>")
	}
	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return c.Reply("❌ 用户ID格式错误，请输入数字")
	}

	txs, err := h.accountService.History(ctx, targetID, historyLimit)
	if err != nil {
		return c.Reply("❌ 查询失败，请稍后重试")
	}
	if len(txs) == 0 {
		return c.Reply("📜 暂无流水记录")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📜 用户 %d 最近流水\n\n", targetID)
	for _, tx := range txs {
		fmt.Fprintf(&sb, "%s %+d %s  %s\n", tx.CreatedAt.Format("01-02 15:04"), tx.Amount, tx.Currency, tx.Type)
	}
	return c.Reply(sb.String())
}

// parseAdminArgs parses "<user_id> <amount>".
func parseAdminArgs(args []string) (int64, int64, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("❌ 用法: /admin_gems <用户ID> <数量>\n例如: /admin_gems 123456789 100")
	}

	targetID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("❌ 用户ID格式错误，请输入数字")
	}

	amount, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("❌ 数量格式错误，请输入整数")
	}
	if amount <= 0 {
		return 0, 0, fmt.Errorf("❌ 数量必须大于 0")
	}

	return targetID, amount, nil
}
