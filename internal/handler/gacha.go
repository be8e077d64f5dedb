package handler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/catalog"
	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/service"
)

// GachaHandler handles pool listing and pulls.
type GachaHandler struct {
	gachaService *service.GachaService
	catalog      *catalog.Catalog
}

// NewGachaHandler creates a new GachaHandler.
func NewGachaHandler(gachaService *service.GachaService, c *catalog.Catalog) *GachaHandler {
	return &GachaHandler{gachaService: gachaService, catalog: c}
}

// HandlePools handles the /pools command.
func (h *GachaHandler) HandlePools(c tele.Context) error {
	ctx := context.Background()

	pools, err := h.gachaService.Pools(ctx)
	if err != nil {
		return c.Reply("❌ 获取卡池失败，请稍后重试")
	}
	if len(pools) == 0 {
		return c.Reply("🎰 当前没有开放的卡池")
	}

	var sb strings.Builder
	sb.WriteString("🎰 开放卡池\n\n")
	for _, p := range pools {
		multi, _ := gacha.PullCost(p.Cost, gacha.MultiPullCount)
		fmt.Fprintf(&sb, "• %s (%s)\n   单抽 %d 💎  十连 %d 💎\n", p.Name, p.ID, p.Cost, multi)
	}
	sb.WriteString("\n使用 /gacha [10] [卡池ID] 抽取")
	return c.Reply(sb.String())
}

// HandleGacha handles the /gacha command.
// Format: /gacha [1|10] [pool_id]; the first open pool is used when none is given.
func (h *GachaHandler) HandleGacha(c tele.Context) error {
	ctx := context.Background()
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	count, poolID, err := parseGachaArgs(c.Args())
	if err != nil {
		return c.Reply(err.Error())
	}

	if poolID == "" {
		pools, err := h.gachaService.Pools(ctx)
		if err != nil {
			return c.Reply("❌ 获取卡池失败，请稍后重试")
		}
		if len(pools) == 0 {
			return c.Reply("🎰 当前没有开放的卡池")
		}
		poolID = pools[0].ID
	}

	res, err := h.gachaService.Pull(ctx, sender.ID, poolID, count)
	if err != nil {
		return c.Reply(ErrorReply(err, "❌ 抽卡失败，请稍后重试"))
	}
	return c.Reply(FormatPull(res, h.itemName))
}

func (h *GachaHandler) itemName(id string) string {
	if h.catalog != nil {
		if it, ok := h.catalog.Item(id); ok {
			return it.Name
		}
	}
	return id
}

// parseGachaArgs parses "[count] [pool_id]" in either order.
func parseGachaArgs(args []string) (int, string, error) {
	count := 1
	poolID := ""
	for _, arg := range args {
		if n, err := strconv.Atoi(arg); err == nil {
			if n != 1 && n != gacha.MultiPullCount {
				return 0, "", fmt.Errorf("❌ 抽卡次数只能是 1 或 %d", gacha.MultiPullCount)
			}
			count = n
			continue
		}
		poolID = arg
	}
	return count, poolID, nil
}
