package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
)

// RatingRepository handles the leaderboard table.
type RatingRepository struct {
	db DBTX
}

// NewRatingRepository creates a new RatingRepository instance.
func NewRatingRepository(db DBTX) *RatingRepository {
	return &RatingRepository{db: db}
}

// Init creates the default record for a user if it does not exist.
func (r *RatingRepository) Init(ctx context.Context, userID int64) error {
	const query = `
		INSERT INTO leaderboard (user_id, rating, wins, losses, streak, updated_at)
		VALUES ($1, $2, 0, 0, 0, NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID, rating.Default); err != nil {
		return fmt.Errorf("failed to init rating: %w", err)
	}
	return nil
}

// Get returns a user's record, or the default record when none exists.
func (r *RatingRepository) Get(ctx context.Context, userID int64) (rating.Record, error) {
	const query = `SELECT rating, wins, losses, streak FROM leaderboard WHERE user_id = $1`

	rec := rating.NewRecord()
	err := r.db.QueryRow(ctx, query, userID).Scan(&rec.Rating, &rec.Wins, &rec.Losses, &rec.Streak)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return rating.NewRecord(), nil
		}
		return rec, fmt.Errorf("failed to get rating: %w", err)
	}
	return rec, nil
}

// GetRatings returns ratings for the given users. Users without a record are absent.
func (r *RatingRepository) GetRatings(ctx context.Context, userIDs []int64) (map[int64]int, error) {
	ratings := make(map[int64]int, len(userIDs))
	if len(userIDs) == 0 {
		return ratings, nil
	}

	rows, err := r.db.Query(ctx, `SELECT user_id, rating FROM leaderboard WHERE user_id = ANY($1)`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var value int
		if err := rows.Scan(&id, &value); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings[id] = value
	}
	return ratings, rows.Err()
}

// Save writes a user's record.
func (r *RatingRepository) Save(ctx context.Context, userID int64, rec rating.Record) error {
	const query = `
		INSERT INTO leaderboard (user_id, rating, wins, losses, streak, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET rating = $2, wins = $3, losses = $4, streak = $5, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, rec.Rating, rec.Wins, rec.Losses, rec.Streak); err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}
	return nil
}

// Top returns the highest rated players with their avatar details.
func (r *RatingRepository) Top(ctx context.Context, limit int) ([]*model.LeaderboardEntry, error) {
	const query = `
		SELECT l.user_id, l.rating, l.wins, l.losses, l.streak,
		       COALESCE(a.name, 'Unknown'), COALESCE(a.class, 'knight'), COALESCE(a.level, 1)
		FROM leaderboard l
		LEFT JOIN avatars a ON a.user_id = l.user_id
		ORDER BY l.rating DESC, l.wins DESC, l.user_id
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*model.LeaderboardEntry
	for rows.Next() {
		e := &model.LeaderboardEntry{Rank: len(entries) + 1}
		if err := rows.Scan(&e.UserID, &e.Rating, &e.Wins, &e.Losses, &e.Streak, &e.Name, &e.Class, &e.Level); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating leaderboard: %w", err)
	}
	return entries, nil
}
