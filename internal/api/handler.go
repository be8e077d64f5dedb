package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/model"
	"pixel-arena/internal/service"
)

const healthTimeout = 2 * time.Second

// Handler serves the JSON API.
type Handler struct {
	deps *Dependencies
}

// NewHandler creates a new Handler.
func NewHandler(deps *Dependencies) *Handler {
	return &Handler{deps: deps}
}

// TurnRequest is the body of POST /api/battles/:id/turn.
type TurnRequest struct {
	Type    battle.ActionType `json:"type" binding:"required"`
	SkillID string            `json:"skill_id"`
	ItemID  string            `json:"item_id"`
}

// PullRequest is the body of POST /api/gacha/pull. Count defaults to 1.
type PullRequest struct {
	PoolID string `json:"pool_id" binding:"required"`
	Count  int    `json:"count"`
}

// CreateAvatarRequest is the body of POST /api/avatar.
type CreateAvatarRequest struct {
	Name  string `json:"name" binding:"required"`
	Class string `json:"class" binding:"required"`
}

// EquipRequest is the body of POST /api/avatar/equip.
type EquipRequest struct {
	EquipmentID string `json:"equipment_id" binding:"required"`
}

// AvatarResponse is an avatar together with its derived combat stats.
type AvatarResponse struct {
	Avatar *model.Avatar `json:"avatar"`
	Unit   battle.Unit   `json:"unit"`
}

// CurrencyResponse is the body of GET /api/currency.
type CurrencyResponse struct {
	Gems int64 `json:"gems"`
	Gold int64 `json:"gold"`
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	if h.deps.Health != nil {
		if err := h.deps.Health.HealthCheck(c.Request.Context(), healthTimeout); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetBattle handles GET /api/battles/:id.
func (h *Handler) GetBattle(c *gin.Context) {
	view, err := h.deps.Battles.Get(c.Request.Context(), c.Param("id"), playerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitTurn handles POST /api/battles/:id/turn.
func (h *Handler) SubmitTurn(c *gin.Context) {
	var req TurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	action := battle.Action{Type: req.Type, SkillID: req.SkillID, ItemID: req.ItemID}
	out, err := h.deps.Battles.SubmitTurn(c.Request.Context(), c.Param("id"), playerID(c), action)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// SettleBattle handles POST /api/battles/:id/settle.
func (h *Handler) SettleBattle(c *gin.Context) {
	res, err := h.deps.Battles.Settle(c.Request.Context(), c.Param("id"), playerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// JoinMatchmaking handles POST /api/matchmaking.
func (h *Handler) JoinMatchmaking(c *gin.Context) {
	res, err := h.deps.Matchmaking.Join(c.Request.Context(), playerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	status := http.StatusOK
	if res.Status == service.JoinWaiting {
		status = http.StatusAccepted
	}
	c.JSON(status, res)
}

// ListPools handles GET /api/gacha/pools.
func (h *Handler) ListPools(c *gin.Context) {
	pools, err := h.deps.Gacha.Pools(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if pools == nil {
		pools = []*model.GachaPool{}
	}
	c.JSON(http.StatusOK, gin.H{"pools": pools})
}

// Pull handles POST /api/gacha/pull.
func (h *Handler) Pull(c *gin.Context) {
	var req PullRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}

	res, err := h.deps.Gacha.Pull(c.Request.Context(), playerID(c), req.PoolID, req.Count)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAvatar handles GET /api/avatar.
func (h *Handler) GetAvatar(c *gin.Context) {
	ctx := c.Request.Context()
	avatar, err := h.deps.Accounts.GetAvatar(ctx, playerID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	h.writeAvatar(ctx, c, http.StatusOK, avatar)
}

// CreateAvatar handles POST /api/avatar.
func (h *Handler) CreateAvatar(c *gin.Context) {
	var req CreateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	avatar, err := h.deps.Accounts.CreateAvatar(ctx, playerID(c), req.Name, req.Class)
	if err != nil {
		writeError(c, err)
		return
	}
	h.writeAvatar(ctx, c, http.StatusCreated, avatar)
}

// Equip handles POST /api/avatar/equip.
func (h *Handler) Equip(c *gin.Context) {
	var req EquipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	ctx := c.Request.Context()
	avatar, err := h.deps.Accounts.Equip(ctx, playerID(c), req.EquipmentID)
	if err != nil {
		writeError(c, err)
		return
	}
	h.writeAvatar(ctx, c, http.StatusOK, avatar)
}

func (h *Handler) writeAvatar(ctx context.Context, c *gin.Context, status int, avatar *model.Avatar) {
	unit, err := h.deps.Accounts.BuildUnit(ctx, avatar.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(status, AvatarResponse{Avatar: avatar, Unit: unit})
}

// Currency handles GET /api/currency. A first visit creates the account.
func (h *Handler) Currency(c *gin.Context) {
	user, _, err := h.deps.Accounts.EnsureUser(c.Request.Context(), playerID(c), "")
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CurrencyResponse{Gems: user.Gems, Gold: user.Gold})
}

// Leaderboard handles GET /api/leaderboard?limit=N.
func (h *Handler) Leaderboard(c *gin.Context) {
	limit := service.LeaderboardSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := h.deps.Rankings.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	if entries == nil {
		entries = []*model.LeaderboardEntry{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
