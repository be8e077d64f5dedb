package service

import (
	"context"
	"fmt"

	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
)

// LeaderboardSize is the number of entries shown on the leaderboard.
const LeaderboardSize = 100

// RankingService handles ranking and leaderboard operations.
type RankingService struct {
	ratings RatingStore
}

// NewRankingService creates a new RankingService instance.
func NewRankingService(ratings RatingStore) *RankingService {
	return &RankingService{ratings: ratings}
}

// Leaderboard returns the top players by rating. The limit is clamped to LeaderboardSize.
func (s *RankingService) Leaderboard(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	if limit <= 0 || limit > LeaderboardSize {
		limit = LeaderboardSize
	}
	entries, err := s.ratings.Top(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}

// Record returns a player's rating record.
func (s *RankingService) Record(ctx context.Context, telegramID int64) (rating.Record, error) {
	rec, err := s.ratings.Get(ctx, telegramID)
	if err != nil {
		return rec, fmt.Errorf("failed to get rating: %w", err)
	}
	return rec, nil
}
