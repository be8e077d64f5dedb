package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/model"
	"pixel-arena/internal/pkg/lock"
	"pixel-arena/internal/repository"
)

// PullResult is the outcome of a paid pull request.
type PullResult struct {
	Results   []gacha.Result `json:"results"`
	Spent     int64          `json:"currency_spent"`
	Remaining int64          `json:"currency_remaining"`
}

// GachaService runs paid pulls with pity.
type GachaService struct {
	pools         GachaStore
	users         UserStore
	roller        *gacha.Roller
	locks         *lock.PlayerLock
	historyWindow int
}

// NewGachaService creates a new GachaService instance.
func NewGachaService(pools GachaStore, users UserStore, roller *gacha.Roller, locks *lock.PlayerLock, historyWindow int) *GachaService {
	if historyWindow <= 0 {
		historyWindow = gacha.LegendaryPity + 1
	}
	return &GachaService{
		pools:         pools,
		users:         users,
		roller:        roller,
		locks:         locks,
		historyWindow: historyWindow,
	}
}

// Pools lists the active pools.
func (s *GachaService) Pools(ctx context.Context) ([]*model.GachaPool, error) {
	pools, err := s.pools.ListActivePools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	return pools, nil
}

// Pull performs count pulls from the pool. The balance is checked before any roll and
// the charge, history and inventory are committed together. Pulls of one player are
// serialized so each request derives its pity counters from the previous one's history.
func (s *GachaService) Pull(ctx context.Context, playerID int64, poolID string, count int) (*PullResult, error) {
	if count != 1 && count != gacha.MultiPullCount {
		return nil, ErrInvalidPullCount
	}

	pool, err := s.pools.GetActivePool(ctx, poolID)
	if err != nil {
		if errors.Is(err, repository.ErrPoolNotFound) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}
	if len(pool.Items) == 0 {
		return nil, ErrPoolNotFound
	}
	cost, err := gacha.PullCost(pool.Cost, count)
	if err != nil {
		return nil, ErrInvalidPullCount
	}

	var out *PullResult
	err = s.locks.WithLock(ctx, lockTimeout, func() error {
		user, err := s.users.GetByID(ctx, playerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to get user: %w", err)
		}
		if user.Gems < cost {
			return ErrInsufficientGems
		}

		history, err := s.pools.RecentRarities(ctx, playerID, pool.ID, s.historyWindow)
		if err != nil {
			return fmt.Errorf("failed to get pull history: %w", err)
		}
		counters := gacha.CountersFromHistory(history)
		results := s.roller.PullBatch(counters, count, pool.Items)

		remaining, err := s.pools.CommitPulls(ctx, playerID, pool.ID, cost, results)
		if err != nil {
			if errors.Is(err, repository.ErrInsufficientFunds) {
				return ErrInsufficientGems
			}
			return fmt.Errorf("failed to commit pulls: %w", err)
		}

		out = &PullResult{Results: results, Spent: cost, Remaining: remaining}
		log.Info().
			Int64("player_id", playerID).
			Str("pool_id", pool.ID).
			Int("count", count).
			Int64("cost", cost).
			Int("since_rare", counters.SinceRare).
			Int("since_legendary", counters.SinceLegendary).
			Msg("Gacha pull")
		return nil
	}, playerID)
	if err != nil {
		return nil, err
	}
	return out, nil
}
