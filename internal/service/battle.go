package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"pixel-arena/internal/config"
	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
	"pixel-arena/internal/pkg/cache"
	"pixel-arena/internal/pkg/lock"
	"pixel-arena/internal/repository"
)

const (
	lockTimeout = 5 * time.Second
	sweepBatch  = 100
)

// Settlement results, from the requesting player's point of view.
const (
	ResultVictory = "victory"
	ResultDefeat  = "defeat"
	ResultDraw    = "draw"
)

// BattleView is a session together with the caller's role in it.
type BattleView struct {
	Session *model.BattleSession `json:"session"`
	Role    battle.Side          `json:"role"`
}

// TurnOutcome is the stored session after a resolved turn.
type TurnOutcome struct {
	Session *model.BattleSession `json:"session"`
	Result  battle.TurnResult    `json:"result"`
}

// Settlement is a settled battle from the requesting player's point of view.
type Settlement struct {
	BattleID string                  `json:"battle_id"`
	Result   string                  `json:"result"`
	Player   repository.PlayerUpdate `json:"player"`
	Opponent repository.PlayerUpdate `json:"opponent"`
}

// BattleService is the turn authority: it checks who may act, resolves turns through the
// engine and writes them back with an optimistic turn-number check.
type BattleService struct {
	battles BattleStore
	cache   cache.BattleCache
	engine  *battle.Engine
	locks   *lock.PlayerLock
	cfg     config.BattleConfig
	rewards config.SettlementConfig
	now     func() time.Time
}

// NewBattleService creates a new BattleService instance.
func NewBattleService(
	battles BattleStore,
	snapshots cache.BattleCache,
	engine *battle.Engine,
	locks *lock.PlayerLock,
	cfg config.BattleConfig,
	rewards config.SettlementConfig,
) *BattleService {
	if snapshots == nil {
		snapshots = cache.Nop{}
	}
	if cfg.MaxWriteRetries <= 0 {
		cfg.MaxWriteRetries = 3
	}
	return &BattleService{
		battles: battles,
		cache:   snapshots,
		engine:  engine,
		locks:   locks,
		cfg:     cfg,
		rewards: rewards,
		now:     time.Now,
	}
}

// Get returns a battle and the caller's role in it (empty for spectators).
func (s *BattleService) Get(ctx context.Context, battleID string, playerID int64) (*BattleView, error) {
	session, ok := s.cache.Get(ctx, battleID)
	if !ok {
		var err error
		session, err = s.load(ctx, battleID)
		if err != nil {
			return nil, err
		}
		if session.State != nil {
			s.cache.Set(ctx, session)
		}
	}
	return &BattleView{Session: session, Role: session.Role(playerID)}, nil
}

// Current returns the player's waiting or active session.
func (s *BattleService) Current(ctx context.Context, playerID int64) (*model.BattleSession, error) {
	session, err := s.battles.FindCurrentByPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrBattleNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, fmt.Errorf("failed to get current battle: %w", err)
	}
	return session, nil
}

func (s *BattleService) load(ctx context.Context, battleID string) (*model.BattleSession, error) {
	session, err := s.battles.GetByID(ctx, battleID)
	if err != nil {
		if errors.Is(err, repository.ErrBattleNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, fmt.Errorf("failed to get battle: %w", err)
	}
	return session, nil
}

// SubmitTurn resolves the player's action. The stored state is re-read on every
// attempt; a write that lost the race to another writer is retried up to the
// configured limit, after which ErrTurnConflict is returned.
func (s *BattleService) SubmitTurn(ctx context.Context, battleID string, playerID int64, action battle.Action) (*TurnOutcome, error) {
	if !action.Valid() {
		return nil, ErrInvalidAction
	}

	for attempt := 0; attempt < s.cfg.MaxWriteRetries; attempt++ {
		session, err := s.load(ctx, battleID)
		if err != nil {
			return nil, err
		}
		if session.Status != model.SessionActive || session.State == nil {
			return nil, ErrBattleNotActive
		}
		role := session.Role(playerID)
		if role == "" {
			return nil, ErrNotParticipant
		}
		if session.State.Turn != role {
			return nil, ErrNotYourTurn
		}

		outcome, err := s.apply(ctx, session, action)
		if errors.Is(err, repository.ErrStaleTurn) {
			log.Warn().
				Str("battle_id", battleID).
				Int64("player_id", playerID).
				Int("turn", session.TurnNumber).
				Int("attempt", attempt+1).
				Msg("Turn write conflict, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}

		log.Info().
			Str("battle_id", battleID).
			Int64("player_id", playerID).
			Int("turn", session.TurnNumber).
			Str("action", string(action.Type)).
			Int("damage", outcome.Result.Damage).
			Int("healing", outcome.Result.Healing).
			Msg("Turn resolved")
		return outcome, nil
	}
	return nil, ErrTurnConflict
}

// apply resolves one action against the session's current state and writes it,
// conditioned on the turn number that state was read at.
func (s *BattleService) apply(ctx context.Context, session *model.BattleSession, action battle.Action) (*TurnOutcome, error) {
	next, result, err := s.engine.ResolveTurn(session.State, action, s.now())
	if err != nil {
		switch {
		case errors.Is(err, battle.ErrBattleNotActive):
			return nil, ErrBattleNotActive
		case errors.Is(err, battle.ErrUnknownAction):
			return nil, ErrInvalidAction
		}
		return nil, err
	}

	var winnerID *int64
	switch next.Winner {
	case battle.OutcomeA, battle.OutcomeB:
		id := session.PlayerFor(battle.Side(next.Winner))
		winnerID = &id
	}

	updated, err := s.battles.UpdateState(ctx, session.ID, session.TurnNumber, next, winnerID)
	if err != nil {
		if errors.Is(err, repository.ErrStaleTurn) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to save turn: %w", err)
	}
	s.cache.Set(ctx, updated)

	if updated.Status == model.SessionFinished {
		log.Info().
			Str("battle_id", updated.ID).
			Str("winner", string(next.Winner)).
			Int("turns", len(next.Log)).
			Msg("Battle finished")
	}
	return &TurnOutcome{Session: updated, Result: result}, nil
}

// SweepTimeouts resolves a defend for the turn owner of every active battle whose turn
// deadline has passed. Returns the number of turns resolved.
func (s *BattleService) SweepTimeouts(ctx context.Context) (int, error) {
	overdue, err := s.battles.ListOverdue(ctx, s.now(), sweepBatch)
	if err != nil {
		return 0, fmt.Errorf("failed to list overdue battles: %w", err)
	}

	resolved := 0
	for _, session := range overdue {
		if session.State == nil {
			continue
		}
		owner := session.PlayerFor(session.State.Turn)
		_, err := s.apply(ctx, session, battle.Action{Type: battle.ActionDefend})
		if errors.Is(err, repository.ErrStaleTurn) {
			// the player acted after the listing
			continue
		}
		if err != nil {
			log.Error().Err(err).Str("battle_id", session.ID).Msg("Failed to auto-defend overdue turn")
			continue
		}
		resolved++
		log.Info().
			Str("battle_id", session.ID).
			Int64("player_id", owner).
			Int("turn", session.TurnNumber).
			Msg("Turn timed out, auto-defended")
	}
	return resolved, nil
}

// Settle applies ratings, experience and gold for a finished battle exactly once.
func (s *BattleService) Settle(ctx context.Context, battleID string, playerID int64) (*Settlement, error) {
	session, err := s.load(ctx, battleID)
	if err != nil {
		return nil, err
	}
	return s.settle(ctx, session, playerID)
}

// SettleLatest settles the player's most recently finished battle.
func (s *BattleService) SettleLatest(ctx context.Context, playerID int64) (*Settlement, error) {
	session, err := s.battles.FindLatestFinished(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrBattleNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, fmt.Errorf("failed to get finished battle: %w", err)
	}
	return s.settle(ctx, session, playerID)
}

func (s *BattleService) settle(ctx context.Context, session *model.BattleSession, playerID int64) (*Settlement, error) {
	role := session.Role(playerID)
	if role == "" {
		return nil, ErrNotParticipant
	}
	if session.Status != model.SessionFinished || session.State == nil || session.PlayerB == nil {
		return nil, ErrBattleNotFinished
	}

	var ua, ub repository.PlayerUpdate
	err := s.locks.WithLock(ctx, lockTimeout, func() error {
		var err error
		ua, ub, err = s.battles.Settle(ctx, session, s.compute(session.State))
		return err
	}, session.PlayerA, *session.PlayerB)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadySettled) {
			return nil, ErrAlreadySettled
		}
		return nil, fmt.Errorf("failed to settle battle: %w", err)
	}

	log.Info().
		Str("battle_id", session.ID).
		Int64("player_a", ua.UserID).
		Int("rating_change_a", ua.RatingDelta).
		Int64("player_b", ub.UserID).
		Int("rating_change_b", ub.RatingDelta).
		Msg("Battle settled")

	out := &Settlement{BattleID: session.ID, Player: ua, Opponent: ub}
	if role == battle.SideB {
		out.Player, out.Opponent = ub, ua
	}
	switch {
	case session.State.Winner == battle.OutcomeDraw:
		out.Result = ResultDraw
	case string(session.State.Winner) == string(role):
		out.Result = ResultVictory
	default:
		out.Result = ResultDefeat
	}
	return out, nil
}

// compute returns the settlement rule applied to both standings inside the
// settlement transaction.
func (s *BattleService) compute(state *battle.State) repository.SettleFunc {
	exp := s.rewards.BaseExp + s.rewards.ExpPerTurn*len(state.Log)
	return func(a, b repository.Standing) (repository.PlayerUpdate, repository.PlayerUpdate) {
		ra, rb := rating.Settle(a.Rating, b.Rating, state.Winner == battle.OutcomeA, state.Winner == battle.OutcomeB)
		return s.reward(a, ra, exp), s.reward(b, rb, exp)
	}
}

func (s *BattleService) reward(st repository.Standing, rec rating.Record, exp int) repository.PlayerUpdate {
	u := repository.PlayerUpdate{
		UserID:      st.UserID,
		Rating:      rec,
		RatingDelta: rec.Rating - st.Rating.Rating,
		ExpGained:   exp,
		Gold:        s.rewards.GoldReward,
	}
	if st.Avatar != nil {
		u.Level, u.Exp = LevelUp(st.Avatar.Level, st.Avatar.Exp+exp, s.rewards.ExpPerLevel, s.rewards.MaxLevel)
	}
	return u
}

// LevelUp converts experience into levels: while exp covers a level and the cap is
// not reached, perLevel is spent and the level rises.
func LevelUp(level, exp, perLevel, maxLevel int) (int, int) {
	if perLevel <= 0 {
		return level, exp
	}
	for exp >= perLevel && level < maxLevel {
		exp -= perLevel
		level++
	}
	return level, exp
}
