// Package main is the entry point for the Pixel Arena server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pixel-arena/internal/api"
	"pixel-arena/internal/bot"
	"pixel-arena/internal/catalog"
	"pixel-arena/internal/config"
	"pixel-arena/internal/game"
	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/pkg/cache"
	"pixel-arena/internal/pkg/db"
	"pixel-arena/internal/pkg/lock"
	"pixel-arena/internal/repository"
	"pixel-arena/internal/service"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	log.Info().Msg("Configuration loaded successfully")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	log.Info().Msg("Running database migrations...")
	if err := repository.Migrate(ctx, dbPool.Pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	snapshots, closeCache, err := cache.New(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to redis")
	}
	defer closeCache()

	// Initialize repositories
	userRepo := repository.NewUserRepository(dbPool.Pool)
	txRepo := repository.NewTransactionRepository(dbPool.Pool)
	avatarRepo := repository.NewAvatarRepository(dbPool.Pool)
	inventoryRepo := repository.NewInventoryRepository(dbPool.Pool)
	ratingRepo := repository.NewRatingRepository(dbPool.Pool)
	battleRepo := repository.NewBattleRepository(dbPool.Pool)
	gachaRepo := repository.NewGachaRepository(dbPool.Pool)

	cat, err := catalog.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}
	if err := service.SeedCatalog(ctx, cat, inventoryRepo, gachaRepo); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	classes := game.NewDefaultRegistry()
	log.Info().
		Int("class_count", classes.Count()).
		Strs("classes", classes.Names()).
		Msg("Classes registered")

	// Initialize services
	playerLock := lock.NewPlayerLock()
	engine := battle.NewEngine(cfg.Battle.TurnTimeout)

	accountService := service.NewAccountService(
		userRepo,
		txRepo,
		avatarRepo,
		inventoryRepo,
		ratingRepo,
		classes,
		cfg.Economy.StartingGems,
	)
	rankingService := service.NewRankingService(ratingRepo)
	matchmakingService := service.NewMatchmakingService(battleRepo, ratingRepo, accountService, engine, cfg.Matchmaking)
	battleService := service.NewBattleService(battleRepo, snapshots, engine, playerLock, cfg.Battle, cfg.Settlement)
	gachaService := service.NewGachaService(gachaRepo, userRepo, gacha.NewRoller(nil), playerLock, cfg.Gacha.HistoryWindow)

	var wg sync.WaitGroup
	runEvery(ctx, &wg, "timeout_sweep", cfg.Battle.SweepInterval, func(ctx context.Context) error {
		_, err := battleService.SweepTimeouts(ctx)
		return err
	})
	runEvery(ctx, &wg, "queue_cleanup", cfg.Matchmaking.CleanupInterval, func(ctx context.Context) error {
		_, err := matchmakingService.CleanupStale(ctx)
		return err
	})

	// HTTP API
	router := api.NewRouter(cfg.HTTP, &api.Dependencies{
		Battles:     battleService,
		Matchmaking: matchmakingService,
		Gacha:       gachaService,
		Accounts:    accountService,
		Rankings:    rankingService,
		Health:      dbPool,
	})
	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server failed")
			stop()
		}
	}()

	// Telegram bot, optional
	var telegramBot *bot.Bot
	if cfg.Bot.Token != "" {
		telegramBot, err = bot.New(&bot.Dependencies{
			Config:             cfg,
			AccountService:     accountService,
			BattleService:      battleService,
			MatchmakingService: matchmakingService,
			GachaService:       gachaService,
			RankingService:     rankingService,
			Classes:            classes,
			Catalog:            cat,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create bot")
		}
		go telegramBot.Start()
	} else {
		log.Info().Msg("Bot token not set, Telegram front-end disabled")
	}

	<-ctx.Done()
	log.Info().Msg("Received shutdown signal")

	if telegramBot != nil {
		telegramBot.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	wg.Wait()
	log.Info().Msg("Server stopped gracefully")
}

// runEvery runs fn on every tick of interval until ctx is done. A non-positive interval
// disables the job.
func runEvery(ctx context.Context, wg *sync.WaitGroup, name string, interval time.Duration, fn func(context.Context) error) {
	if interval <= 0 {
		log.Warn().Str("job", name).Msg("Background job disabled")
		return
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := fn(ctx); err != nil && ctx.Err() == nil {
					log.Error().Err(err).Str("job", name).Msg("Background job failed")
				}
			}
		}
	}()
}
