// Package api exposes the arena as a JSON HTTP API for polling clients.
package api

//go:generate go tool mockgen -destination=./mocks/services_mock.go -package=mocks . BattleAPI,MatchmakingAPI,GachaAPI,AccountAPI,RankingAPI,HealthChecker

import (
	"context"
	"time"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/model"
	"pixel-arena/internal/pkg/db"
	"pixel-arena/internal/service"
)

// BattleAPI reads, advances and settles battles.
type BattleAPI interface {
	Get(ctx context.Context, battleID string, playerID int64) (*service.BattleView, error)
	SubmitTurn(ctx context.Context, battleID string, playerID int64, action battle.Action) (*service.TurnOutcome, error)
	Settle(ctx context.Context, battleID string, playerID int64) (*service.Settlement, error)
}

// MatchmakingAPI queues players.
type MatchmakingAPI interface {
	Join(ctx context.Context, playerID int64) (*service.JoinResult, error)
}

// GachaAPI lists pools and runs pulls.
type GachaAPI interface {
	Pools(ctx context.Context) ([]*model.GachaPool, error)
	Pull(ctx context.Context, playerID int64, poolID string, count int) (*service.PullResult, error)
}

// AccountAPI manages accounts, avatars and equipment.
type AccountAPI interface {
	EnsureUser(ctx context.Context, telegramID int64, username string) (*model.User, bool, error)
	GetAvatar(ctx context.Context, telegramID int64) (*model.Avatar, error)
	CreateAvatar(ctx context.Context, telegramID int64, name, class string) (*model.Avatar, error)
	Equip(ctx context.Context, telegramID int64, equipmentID string) (*model.Avatar, error)
	BuildUnit(ctx context.Context, telegramID int64) (battle.Unit, error)
}

// RankingAPI serves the leaderboard.
type RankingAPI interface {
	Leaderboard(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error)
}

// HealthChecker probes a backing store.
type HealthChecker interface {
	HealthCheck(ctx context.Context, timeout time.Duration) error
}

var (
	_ BattleAPI      = (*service.BattleService)(nil)
	_ MatchmakingAPI = (*service.MatchmakingService)(nil)
	_ GachaAPI       = (*service.GachaService)(nil)
	_ AccountAPI     = (*service.AccountService)(nil)
	_ RankingAPI     = (*service.RankingService)(nil)
	_ HealthChecker  = (*db.Pool)(nil)
)
