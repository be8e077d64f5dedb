package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pixel-arena/internal/config"
	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
	"pixel-arena/internal/repository"
)

// Join statuses.
const (
	JoinWaiting = "waiting"
	JoinMatched = "matched"
)

// JoinResult is the outcome of a matchmaking join.
type JoinResult struct {
	BattleID string               `json:"battle_id"`
	Status   string               `json:"status"`
	Session  *model.BattleSession `json:"session"`
}

// MatchmakingService pairs players of similar rating.
type MatchmakingService struct {
	battles BattleStore
	ratings RatingStore
	units   UnitBuilder
	engine  *battle.Engine
	cfg     config.MatchmakingConfig
	now     func() time.Time
}

// NewMatchmakingService creates a new MatchmakingService instance.
func NewMatchmakingService(
	battles BattleStore,
	ratings RatingStore,
	units UnitBuilder,
	engine *battle.Engine,
	cfg config.MatchmakingConfig,
) *MatchmakingService {
	if cfg.RatingWindow <= 0 {
		cfg.RatingWindow = rating.DefaultWindow
	}
	if cfg.CandidateWindow <= 0 {
		cfg.CandidateWindow = 20
	}
	return &MatchmakingService{
		battles: battles,
		ratings: ratings,
		units:   units,
		engine:  engine,
		cfg:     cfg,
		now:     time.Now,
	}
}

// Join puts the player in the queue or pairs them with the oldest compatible waiting
// player. Joining again while waiting or fighting returns the existing session.
func (s *MatchmakingService) Join(ctx context.Context, playerID int64) (*JoinResult, error) {
	current, err := s.battles.FindCurrentByPlayer(ctx, playerID)
	switch {
	case err == nil:
		return joinResult(current), nil
	case !errors.Is(err, repository.ErrBattleNotFound):
		return nil, fmt.Errorf("failed to look up current session: %w", err)
	}

	self, err := s.units.BuildUnit(ctx, playerID)
	if err != nil {
		return nil, err
	}
	rec, err := s.ratings.Get(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	waiting, err := s.battles.ListWaiting(ctx, playerID, s.cfg.CandidateWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to list waiting players: %w", err)
	}
	candidates, err := s.candidates(ctx, waiting)
	if err != nil {
		return nil, err
	}

	for next := 0; next < len(candidates); {
		i := rating.SelectOpponent(playerID, rec.Rating, candidates[next:], s.cfg.RatingWindow)
		if i < 0 {
			break
		}
		entry := waiting[next+i]
		next += i + 1

		opponent, err := s.units.BuildUnit(ctx, entry.PlayerA)
		if err != nil {
			if errors.Is(err, ErrAvatarNotFound) {
				log.Warn().Int64("player_id", entry.PlayerA).Str("battle_id", entry.ID).Msg("Skipping waiting player without avatar")
				continue
			}
			return nil, err
		}

		state := s.engine.NewBattle(entry.ID, opponent, self, s.now())
		session, err := s.battles.Claim(ctx, entry.ID, playerID, state)
		if errors.Is(err, repository.ErrSessionTaken) {
			log.Debug().Int64("player_id", playerID).Str("battle_id", entry.ID).Msg("Waiting session taken, trying next candidate")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to claim session: %w", err)
		}

		log.Info().
			Str("battle_id", session.ID).
			Int64("player_a", session.PlayerA).
			Int64("player_b", playerID).
			Int("rating", rec.Rating).
			Msg("Match found")
		return joinResult(session), nil
	}

	session, err := s.battles.CreateWaiting(ctx, uuid.NewString(), playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue: %w", err)
	}
	log.Info().
		Str("battle_id", session.ID).
		Int64("player_id", playerID).
		Int("rating", rec.Rating).
		Msg("Player enqueued")
	return joinResult(session), nil
}

func (s *MatchmakingService) candidates(ctx context.Context, waiting []*model.BattleSession) ([]rating.Candidate, error) {
	ids := make([]int64, len(waiting))
	for i, w := range waiting {
		ids[i] = w.PlayerA
	}
	ratings, err := s.ratings.GetRatings(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate ratings: %w", err)
	}

	candidates := make([]rating.Candidate, len(waiting))
	for i, id := range ids {
		r, ok := ratings[id]
		if !ok {
			r = rating.Default
		}
		candidates[i] = rating.Candidate{PlayerID: id, Rating: r}
	}
	return candidates, nil
}

// CleanupStale expires waiting sessions older than the configured ttl.
func (s *MatchmakingService) CleanupStale(ctx context.Context) (int64, error) {
	if s.cfg.WaitingTTL <= 0 {
		return 0, nil
	}
	n, err := s.battles.ExpireStale(ctx, s.now().Add(-s.cfg.WaitingTTL))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Info().Int64("expired", n).Msg("Expired stale matchmaking entries")
	}
	return n, nil
}

func joinResult(s *model.BattleSession) *JoinResult {
	status := JoinMatched
	if s.Status == model.SessionWaiting {
		status = JoinWaiting
	}
	return &JoinResult{BattleID: s.ID, Status: status, Session: s}
}
