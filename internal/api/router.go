package api

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pixel-arena/internal/config"
)

// Dependencies holds the services served over HTTP.
type Dependencies struct {
	Battles     BattleAPI
	Matchmaking MatchmakingAPI
	Gacha       GachaAPI
	Accounts    AccountAPI
	Rankings    RankingAPI
	Health      HealthChecker
}

// NewRouter builds the gin engine with middleware and all routes registered.
func NewRouter(cfg config.HTTPConfig, deps *Dependencies) *gin.Engine {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	SetupRoutes(r, NewHandler(deps))
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", PlayerHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// SetupRoutes registers all API routes.
func SetupRoutes(r *gin.Engine, h *Handler) {
	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		// public
		api.GET("/gacha/pools", h.ListPools)
		api.GET("/leaderboard", h.Leaderboard)

		player := api.Group("", PlayerMiddleware())
		{
			player.GET("/battles/:id", h.GetBattle)
			player.POST("/battles/:id/turn", h.SubmitTurn)
			player.POST("/battles/:id/settle", h.SettleBattle)

			player.POST("/matchmaking", h.JoinMatchmaking)

			player.POST("/gacha/pull", h.Pull)

			player.GET("/avatar", h.GetAvatar)
			player.POST("/avatar", h.CreateAvatar)
			player.POST("/avatar/equip", h.Equip)

			player.GET("/currency", h.Currency)
		}
	}
}
