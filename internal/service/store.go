package service

//go:generate go tool mockgen -destination=./mocks/store_mock.go -package=mocks . UserStore,LedgerStore,AvatarStore,InventoryStore,RatingStore,BattleStore,GachaStore,UnitBuilder

import (
	"context"
	"time"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
	"pixel-arena/internal/repository"
)

// UserStore persists accounts and balances.
type UserStore interface {
	GetOrCreate(ctx context.Context, telegramID int64, username string, gems int64) (*model.User, bool, error)
	GetByID(ctx context.Context, telegramID int64) (*model.User, error)
	UpdateUsername(ctx context.Context, telegramID int64, username string) error
	AddGems(ctx context.Context, telegramID int64, amount int64) (*model.User, error)
}

// LedgerStore records currency changes.
type LedgerStore interface {
	Create(ctx context.Context, userID int64, currency string, amount int64, txType string, description *string) (*model.Transaction, error)
	GetByUserID(ctx context.Context, userID int64, limit int) ([]*model.Transaction, error)
}

// AvatarStore persists avatars.
type AvatarStore interface {
	Create(ctx context.Context, id string, userID int64, name, class string, seed int64) (*model.Avatar, error)
	GetByUser(ctx context.Context, userID int64) (*model.Avatar, error)
	SetEquipment(ctx context.Context, userID int64, slot, equipmentID string) (*model.Avatar, error)
}

// InventoryStore persists the equipment catalog and owned items.
type InventoryStore interface {
	UpsertEquipment(ctx context.Context, eq model.Equipment) error
	GetEquipment(ctx context.Context, ids []string) ([]model.Equipment, error)
	GetQuantity(ctx context.Context, userID int64, equipmentID string) (int, error)
	GetAllItems(ctx context.Context, userID int64) ([]model.InventoryItem, error)
}

// RatingStore persists rating records.
type RatingStore interface {
	Init(ctx context.Context, userID int64) error
	Get(ctx context.Context, userID int64) (rating.Record, error)
	GetRatings(ctx context.Context, userIDs []int64) (map[int64]int, error)
	Top(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error)
}

// BattleStore persists matchmaking entries, battle sessions and battle history.
type BattleStore interface {
	CreateWaiting(ctx context.Context, id string, playerID int64) (*model.BattleSession, error)
	ListWaiting(ctx context.Context, exclude int64, limit int) ([]*model.BattleSession, error)
	Claim(ctx context.Context, id string, playerB int64, state *battle.State) (*model.BattleSession, error)
	ExpireStale(ctx context.Context, cutoff time.Time) (int64, error)
	GetByID(ctx context.Context, id string) (*model.BattleSession, error)
	FindCurrentByPlayer(ctx context.Context, playerID int64) (*model.BattleSession, error)
	FindLatestFinished(ctx context.Context, playerID int64) (*model.BattleSession, error)
	UpdateState(ctx context.Context, id string, expectedTurn int, state *battle.State, winnerID *int64) (*model.BattleSession, error)
	ListOverdue(ctx context.Context, now time.Time, limit int) ([]*model.BattleSession, error)
	Settle(ctx context.Context, s *model.BattleSession, compute repository.SettleFunc) (repository.PlayerUpdate, repository.PlayerUpdate, error)
}

// GachaStore persists pools and pull history.
type GachaStore interface {
	UpsertPool(ctx context.Context, p model.GachaPool) error
	ListActivePools(ctx context.Context) ([]*model.GachaPool, error)
	GetActivePool(ctx context.Context, id string) (*model.GachaPool, error)
	RecentRarities(ctx context.Context, userID int64, poolID string, limit int) ([]gacha.Rarity, error)
	CommitPulls(ctx context.Context, userID int64, poolID string, cost int64, results []gacha.Result) (int64, error)
}

// UnitBuilder derives a player's combat unit from their avatar and equipment.
type UnitBuilder interface {
	BuildUnit(ctx context.Context, playerID int64) (battle.Unit, error)
}

var (
	_ UserStore      = (*repository.UserRepository)(nil)
	_ LedgerStore    = (*repository.TransactionRepository)(nil)
	_ AvatarStore    = (*repository.AvatarRepository)(nil)
	_ InventoryStore = (*repository.InventoryRepository)(nil)
	_ RatingStore    = (*repository.RatingRepository)(nil)
	_ BattleStore    = (*repository.BattleRepository)(nil)
	_ GachaStore     = (*repository.GachaRepository)(nil)
	_ UnitBuilder    = (*AccountService)(nil)
)
