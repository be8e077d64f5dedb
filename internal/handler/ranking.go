package handler

import (
	"context"

	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/service"
)

const chatLeaderboardSize = 10

// RankingHandler handles ranking-related commands.
type RankingHandler struct {
	rankingService *service.RankingService
}

// NewRankingHandler creates a new RankingHandler.
func NewRankingHandler(rankingService *service.RankingService) *RankingHandler {
	return &RankingHandler{
		rankingService: rankingService,
	}
}

// HandleTop handles the /top command.
func (h *RankingHandler) HandleTop(c tele.Context) error {
	ctx := context.Background()

	entries, err := h.rankingService.Leaderboard(ctx, chatLeaderboardSize)
	if err != nil {
		return c.Reply("❌ 获取排行榜失败，请稍后重试")
	}
	return c.Reply(FormatLeaderboard(entries))
}
