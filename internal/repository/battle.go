package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
)

// Battle session errors.
var (
	ErrBattleNotFound = errors.New("battle not found")
	// ErrStaleTurn means the stored turn number moved past the one the write was based on.
	ErrStaleTurn = errors.New("stale turn")
	// ErrSessionTaken means a waiting session was claimed or expired before this join.
	ErrSessionTaken   = errors.New("session no longer waiting")
	ErrAlreadySettled = errors.New("battle already settled")
)

const sessionColumns = `id, player_a, player_b, status, state, turn_number, turn_deadline, winner_id, created_at, updated_at`

// BattleRepository handles battle sessions, matchmaking entries and battle history.
type BattleRepository struct {
	db DBTX
}

// NewBattleRepository creates a new BattleRepository instance.
func NewBattleRepository(db DBTX) *BattleRepository {
	return &BattleRepository{db: db}
}

func scanSession(row pgx.Row) (*model.BattleSession, error) {
	var s model.BattleSession
	var raw []byte
	err := row.Scan(
		&s.ID,
		&s.PlayerA,
		&s.PlayerB,
		&s.Status,
		&raw,
		&s.TurnNumber,
		&s.TurnDeadline,
		&s.WinnerID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if raw != nil {
		s.State = &battle.State{}
		if err := scanJSON(raw, s.State); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

func (r *BattleRepository) one(ctx context.Context, notFound error, query string, args ...any) (*model.BattleSession, error) {
	s, err := scanSession(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to query battle session: %w", err)
	}
	return s, nil
}

func (r *BattleRepository) many(ctx context.Context, query string, args ...any) ([]*model.BattleSession, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query battle sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*model.BattleSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan battle session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating battle sessions: %w", err)
	}
	return sessions, nil
}

// ========== Matchmaking ==========

// CreateWaiting enqueues playerID as the first participant of a new session.
func (r *BattleRepository) CreateWaiting(ctx context.Context, id string, playerID int64) (*model.BattleSession, error) {
	query := `
		INSERT INTO battle_sessions (id, player_a, status, turn_number, created_at, updated_at)
		VALUES ($1, $2, 'waiting', 0, NOW(), NOW())
		RETURNING ` + sessionColumns
	s, err := scanSession(r.db.QueryRow(ctx, query, id, playerID))
	if err != nil {
		return nil, fmt.Errorf("failed to create waiting session: %w", err)
	}
	return s, nil
}

// FindWaiting returns the player's own waiting session.
func (r *BattleRepository) FindWaiting(ctx context.Context, playerID int64) (*model.BattleSession, error) {
	return r.one(ctx, ErrBattleNotFound, `
		SELECT `+sessionColumns+` FROM battle_sessions
		WHERE player_a = $1 AND status = 'waiting' AND player_b IS NULL
		ORDER BY created_at DESC LIMIT 1`, playerID)
}

// ListWaiting returns up to limit of the oldest waiting sessions not owned by exclude.
func (r *BattleRepository) ListWaiting(ctx context.Context, exclude int64, limit int) ([]*model.BattleSession, error) {
	return r.many(ctx, `
		SELECT `+sessionColumns+` FROM battle_sessions
		WHERE status = 'waiting' AND player_b IS NULL AND player_a <> $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2`, exclude, limit)
}

// Claim attaches playerB to a waiting session and stores the initial battle state.
// Returns ErrSessionTaken if the session is no longer waiting.
func (r *BattleRepository) Claim(ctx context.Context, id string, playerB int64, state *battle.State) (*model.BattleSession, error) {
	raw, err := jsonParam(state)
	if err != nil {
		return nil, err
	}
	return r.one(ctx, ErrSessionTaken, `
		UPDATE battle_sessions
		SET player_b = $2, status = 'active', state = $3, turn_number = $4, turn_deadline = $5, updated_at = NOW()
		WHERE id = $1 AND status = 'waiting' AND player_b IS NULL AND player_a <> $2
		RETURNING `+sessionColumns, id, playerB, raw, state.TurnNumber, state.TurnDeadline)
}

// ExpireStale marks waiting sessions created before cutoff as expired.
func (r *BattleRepository) ExpireStale(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(ctx, `
		UPDATE battle_sessions SET status = 'expired', updated_at = NOW()
		WHERE status = 'waiting' AND player_b IS NULL AND created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire waiting sessions: %w", err)
	}
	return result.RowsAffected(), nil
}

// ========== Battles ==========

// GetByID retrieves a session by id.
func (r *BattleRepository) GetByID(ctx context.Context, id string) (*model.BattleSession, error) {
	return r.one(ctx, ErrBattleNotFound, `SELECT `+sessionColumns+` FROM battle_sessions WHERE id = $1`, id)
}

// FindCurrentByPlayer returns the player's newest waiting or active session.
func (r *BattleRepository) FindCurrentByPlayer(ctx context.Context, playerID int64) (*model.BattleSession, error) {
	return r.one(ctx, ErrBattleNotFound, `
		SELECT `+sessionColumns+` FROM battle_sessions
		WHERE (player_a = $1 OR player_b = $1) AND status IN ('waiting', 'active')
		ORDER BY created_at DESC LIMIT 1`, playerID)
}

// FindLatestFinished returns the player's most recently finished session.
func (r *BattleRepository) FindLatestFinished(ctx context.Context, playerID int64) (*model.BattleSession, error) {
	return r.one(ctx, ErrBattleNotFound, `
		SELECT `+sessionColumns+` FROM battle_sessions
		WHERE (player_a = $1 OR player_b = $1) AND status = 'finished'
		ORDER BY updated_at DESC LIMIT 1`, playerID)
}

// UpdateState writes the next battle state only if the stored turn number still
// equals expectedTurn. Returns ErrStaleTurn otherwise.
func (r *BattleRepository) UpdateState(ctx context.Context, id string, expectedTurn int, state *battle.State, winnerID *int64) (*model.BattleSession, error) {
	raw, err := jsonParam(state)
	if err != nil {
		return nil, err
	}
	status := model.SessionActive
	if state.Status == battle.StatusFinished {
		status = model.SessionFinished
	}
	return r.one(ctx, ErrStaleTurn, `
		UPDATE battle_sessions
		SET state = $3, status = $4, turn_number = $5, turn_deadline = $6, winner_id = $7, updated_at = NOW()
		WHERE id = $1 AND turn_number = $2 AND status = 'active'
		RETURNING `+sessionColumns, id, expectedTurn, raw, status, state.TurnNumber, state.TurnDeadline, winnerID)
}

// ListOverdue returns active sessions whose turn deadline is before now.
func (r *BattleRepository) ListOverdue(ctx context.Context, now time.Time, limit int) ([]*model.BattleSession, error) {
	return r.many(ctx, `
		SELECT `+sessionColumns+` FROM battle_sessions
		WHERE status = 'active' AND turn_deadline < $1
		ORDER BY turn_deadline ASC
		LIMIT $2`, now, limit)
}

// ========== Settlement ==========

// Standing is a participant's state read inside the settlement transaction.
type Standing struct {
	UserID int64
	Rating rating.Record
	Avatar *model.Avatar // nil if the player has no avatar
}

// PlayerUpdate is what settlement writes for one participant.
type PlayerUpdate struct {
	UserID      int64         `json:"user_id"`
	Rating      rating.Record `json:"rating"`
	RatingDelta int           `json:"rating_change"`
	Level       int           `json:"level"`
	Exp         int           `json:"exp"`
	ExpGained   int           `json:"exp_gained"`
	Gold        int64         `json:"gold_gained"`
}

// SettleFunc computes both participants' updates from their current standing.
type SettleFunc func(a, b Standing) (PlayerUpdate, PlayerUpdate)

// Settle records the battle history entry and applies both participants' updates in
// one transaction. A second settlement of the same battle fails with ErrAlreadySettled.
func (r *BattleRepository) Settle(ctx context.Context, s *model.BattleSession, compute SettleFunc) (PlayerUpdate, PlayerUpdate, error) {
	var ua, ub PlayerUpdate
	if s.PlayerB == nil || s.State == nil {
		return ua, ub, fmt.Errorf("settle %s: session has no opponent", s.ID)
	}

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		turns, err := jsonParam(s.State.Log)
		if err != nil {
			return err
		}
		result, err := tx.Exec(ctx, `
			INSERT INTO battles (id, player_a, player_b, winner_id, turns, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			ON CONFLICT (id) DO NOTHING`, s.ID, s.PlayerA, *s.PlayerB, s.WinnerID, turns)
		if err != nil {
			return fmt.Errorf("failed to insert battle record: %w", err)
		}
		if result.RowsAffected() == 0 {
			return ErrAlreadySettled
		}

		ratings := NewRatingRepository(tx)
		avatars := NewAvatarRepository(tx)
		a, err := readStanding(ctx, tx, ratings, avatars, s.PlayerA)
		if err != nil {
			return err
		}
		b, err := readStanding(ctx, tx, ratings, avatars, *s.PlayerB)
		if err != nil {
			return err
		}

		ua, ub = compute(a, b)

		if _, err := tx.Exec(ctx, `UPDATE battles SET rating_change_a = $2, rating_change_b = $3 WHERE id = $1`,
			s.ID, ua.RatingDelta, ub.RatingDelta); err != nil {
			return fmt.Errorf("failed to update battle record: %w", err)
		}

		users := NewUserRepository(tx)
		ledger := NewTransactionRepository(tx)
		for _, u := range []PlayerUpdate{ua, ub} {
			if err := ratings.Save(ctx, u.UserID, u.Rating); err != nil {
				return err
			}
			if u.Level > 0 {
				if err := avatars.UpdateProgress(ctx, u.UserID, u.Level, u.Exp); err != nil {
					return err
				}
			}
			if u.Gold != 0 {
				if _, err := users.AddGold(ctx, u.UserID, u.Gold); err != nil {
					return err
				}
				desc := "battle " + s.ID
				if _, err := ledger.Create(ctx, u.UserID, model.CurrencyGold, u.Gold, model.TxTypeBattleReward, &desc); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return PlayerUpdate{}, PlayerUpdate{}, err
	}
	return ua, ub, nil
}

func readStanding(ctx context.Context, tx pgx.Tx, ratings *RatingRepository, avatars *AvatarRepository, userID int64) (Standing, error) {
	// lock the row so concurrent settlements of one player serialize
	if _, err := tx.Exec(ctx, `SELECT 1 FROM leaderboard WHERE user_id = $1 FOR UPDATE`, userID); err != nil {
		return Standing{}, fmt.Errorf("failed to lock rating: %w", err)
	}
	rec, err := ratings.Get(ctx, userID)
	if err != nil {
		return Standing{}, err
	}
	avatar, err := avatars.GetByUser(ctx, userID)
	if err != nil && !errors.Is(err, ErrAvatarNotFound) {
		return Standing{}, err
	}
	return Standing{UserID: userID, Rating: rec, Avatar: avatar}, nil
}

// GetRecord returns the history entry of a settled battle.
func (r *BattleRepository) GetRecord(ctx context.Context, id string) (*model.BattleRecord, error) {
	var rec model.BattleRecord
	var turns []byte
	err := r.db.QueryRow(ctx, `
		SELECT id, player_a, player_b, winner_id, turns, rating_change_a, rating_change_b, created_at
		FROM battles WHERE id = $1`, id).Scan(
		&rec.ID, &rec.PlayerA, &rec.PlayerB, &rec.WinnerID, &turns,
		&rec.RatingChangeA, &rec.RatingChangeB, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBattleNotFound
		}
		return nil, fmt.Errorf("failed to get battle record: %w", err)
	}
	if err := scanJSON(turns, &rec.Turns); err != nil {
		return nil, err
	}
	return &rec, nil
}
