// Package bot provides the Telegram bot initialization and handler registration.
package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	tele "gopkg.in/telebot.v3"

	"pixel-arena/internal/catalog"
	"pixel-arena/internal/config"
	"pixel-arena/internal/game"
	"pixel-arena/internal/handler"
	"pixel-arena/internal/service"
)

// Bot wraps the telebot instance with application dependencies.
type Bot struct {
	bot    *tele.Bot
	cfg    *config.Config
	access *ChatAccess

	// Handlers
	accountHandler *handler.AccountHandler
	battleHandler  *handler.BattleHandler
	gachaHandler   *handler.GachaHandler
	rankingHandler *handler.RankingHandler
	adminHandler   *handler.AdminHandler
}

// Dependencies holds all the dependencies needed by the bot handlers.
type Dependencies struct {
	Config             *config.Config
	AccountService     *service.AccountService
	BattleService      *service.BattleService
	MatchmakingService *service.MatchmakingService
	GachaService       *service.GachaService
	RankingService     *service.RankingService
	Classes            *game.Registry
	Catalog            *catalog.Catalog
}

// New creates a new Bot instance with the given dependencies.
func New(deps *Dependencies) (*Bot, error) {
	if deps.Config.Bot.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	pref := tele.Settings{
		Token:  deps.Config.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c tele.Context) {
			log.Error().Err(err).Msg("Handler error")
		},
	}

	teleBot, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	b := &Bot{
		bot:    teleBot,
		cfg:    deps.Config,
		access: NewChatAccess(deps.Config),
	}

	// Initialize handlers
	b.accountHandler = handler.NewAccountHandler(deps.AccountService, deps.RankingService, deps.Classes)
	b.battleHandler = handler.NewBattleHandler(deps.BattleService, deps.MatchmakingService)
	b.gachaHandler = handler.NewGachaHandler(deps.GachaService, deps.Catalog)
	b.rankingHandler = handler.NewRankingHandler(deps.RankingService)
	b.adminHandler = handler.NewAdminHandler(deps.AccountService)

	b.registerMiddleware()
	b.registerHandlers()

	return b, nil
}

// registerMiddleware registers all middleware.
func (b *Bot) registerMiddleware() {
	b.bot.Use(RecoveryMiddleware())
	b.bot.Use(WhitelistMiddleware(b.access))
	b.bot.Use(LoggingMiddleware())
}

// registerHandlers registers all command and callback handlers.
func (b *Bot) registerHandlers() {
	// Account handlers
	b.bot.Handle("/start", b.accountHandler.HandleStart)
	b.bot.Handle("/me", b.accountHandler.HandleMe)
	b.bot.Handle("/avatar", b.accountHandler.HandleAvatar)
	b.bot.Handle("/equip", b.accountHandler.HandleEquip)
	b.bot.Handle("/bag", b.accountHandler.HandleBag)

	// Battle handlers
	b.bot.Handle("/pvp", b.battleHandler.HandlePvP)
	b.bot.Handle("/battle", b.battleHandler.HandleBattle)
	b.bot.Handle("/attack", b.battleHandler.HandleAttack)
	b.bot.Handle("/skill", b.battleHandler.HandleSkill)
	b.bot.Handle("/defend", b.battleHandler.HandleDefend)
	b.bot.Handle("/item", b.battleHandler.HandleItem)
	b.bot.Handle("/settle", b.battleHandler.HandleSettle)

	// Gacha handlers
	b.bot.Handle("/pools", b.gachaHandler.HandlePools)
	b.bot.Handle("/gacha", b.gachaHandler.HandleGacha)

	// Ranking handler
	b.bot.Handle("/top", b.rankingHandler.HandleTop)

	// Admin handlers (with admin middleware)
	adminGroup := b.bot.Group()
	adminGroup.Use(AdminMiddleware(b.cfg))
	adminGroup.Handle("/admin_gems", b.adminHandler.HandleAdminGems)
	adminGroup.Handle("/admin_history", b.adminHandler.HandleAdminHistory)

	// Generic callback handler for the battle panel
	b.bot.Handle(tele.OnCallback, b.handleCallback)
}

// handleCallback routes callbacks to appropriate handlers.
func (b *Bot) handleCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	// Telebot v3 adds a \f prefix to callback data
	data := strings.TrimPrefix(callback.Data, "\f")

	if strings.HasPrefix(data, "battle_") {
		return b.battleHandler.HandleCallback(c, data)
	}

	log.Debug().Str("data", data).Msg("Unhandled callback")
	return c.Respond()
}

// Start starts the bot polling. It blocks until Stop is called.
func (b *Bot) Start() {
	log.Info().Msg("Starting bot...")
	b.bot.Start()
}

// Stop stops the bot gracefully.
func (b *Bot) Stop() {
	log.Info().Msg("Stopping bot...")
	b.bot.Stop()
}
