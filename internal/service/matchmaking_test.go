package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pixel-arena/internal/config"
	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
	"pixel-arena/internal/repository"
	"pixel-arena/internal/service/mocks"
)

type matchmakingMocks struct {
	battles *mocks.MockBattleStore
	ratings *mocks.MockRatingStore
	units   *mocks.MockUnitBuilder
}

func newMatchmaking(t *testing.T) (*MatchmakingService, matchmakingMocks) {
	ctrl := gomock.NewController(t)
	m := matchmakingMocks{
		battles: mocks.NewMockBattleStore(ctrl),
		ratings: mocks.NewMockRatingStore(ctrl),
		units:   mocks.NewMockUnitBuilder(ctrl),
	}
	svc := NewMatchmakingService(m.battles, m.ratings, m.units, battle.NewEngine(30*time.Second),
		config.MatchmakingConfig{RatingWindow: 100, CandidateWindow: 20, WaitingTTL: 10 * time.Minute})
	svc.now = fixedNow
	return svc, m
}

func waitingEntry(id string, playerID int64) *model.BattleSession {
	return &model.BattleSession{ID: id, PlayerA: playerID, Status: model.SessionWaiting}
}

func claimed(entry *model.BattleSession, playerB int64, state *battle.State) *model.BattleSession {
	out := *entry
	out.PlayerB = &playerB
	out.Status = model.SessionActive
	out.State = state
	out.TurnNumber = state.TurnNumber
	return &out
}

func TestJoin_EnqueuesWhenNoCandidate(t *testing.T) {
	svc, m := newMatchmaking(t)
	ctx := context.Background()

	m.battles.EXPECT().FindCurrentByPlayer(ctx, int64(1)).Return(nil, repository.ErrBattleNotFound)
	m.units.EXPECT().BuildUnit(ctx, int64(1)).Return(unitFor("av-1", battle.ClassMage), nil)
	m.ratings.EXPECT().Get(ctx, int64(1)).Return(rating.NewRecord(), nil)
	m.battles.EXPECT().ListWaiting(ctx, int64(1), 20).Return(nil, nil)
	m.ratings.EXPECT().GetRatings(ctx, []int64{}).Return(map[int64]int{}, nil)
	m.battles.EXPECT().CreateWaiting(ctx, gomock.Any(), int64(1)).
		DoAndReturn(func(_ context.Context, id string, p int64) (*model.BattleSession, error) {
			assert.NotEmpty(t, id)
			return waitingEntry(id, p), nil
		})

	res, err := svc.Join(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, JoinWaiting, res.Status)
	assert.NotEmpty(t, res.BattleID)
}

func TestJoin_RejoinReturnsExistingSession(t *testing.T) {
	svc, m := newMatchmaking(t)
	ctx := context.Background()

	m.battles.EXPECT().FindCurrentByPlayer(ctx, int64(1)).Return(waitingEntry("w1", 1), nil)
	res, err := svc.Join(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, JoinWaiting, res.Status)
	assert.Equal(t, "w1", res.BattleID)

	m.battles.EXPECT().FindCurrentByPlayer(ctx, int64(2)).Return(activeSession("b1"), nil)
	res, err = svc.Join(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, JoinMatched, res.Status)
}

func TestJoin_MatchesOldestWithinWindow(t *testing.T) {
	svc, m := newMatchmaking(t)
	ctx := context.Background()

	// 10 is too strong, 11 has no record (default 1000), 12 is in range but newer
	waiting := []*model.BattleSession{waitingEntry("w10", 10), waitingEntry("w11", 11), waitingEntry("w12", 12)}

	m.battles.EXPECT().FindCurrentByPlayer(ctx, int64(1)).Return(nil, repository.ErrBattleNotFound)
	m.units.EXPECT().BuildUnit(ctx, int64(1)).Return(unitFor("av-1", battle.ClassMage), nil)
	m.ratings.EXPECT().Get(ctx, int64(1)).Return(rating.Record{Rating: 1050}, nil)
	m.battles.EXPECT().ListWaiting(ctx, int64(1), 20).Return(waiting, nil)
	m.ratings.EXPECT().GetRatings(ctx, []int64{10, 11, 12}).Return(map[int64]int{10: 1300, 12: 1000}, nil)
	m.units.EXPECT().BuildUnit(ctx, int64(11)).Return(unitFor("av-11", battle.ClassKnight), nil)
	m.battles.EXPECT().Claim(ctx, "w11", int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, p int64, state *battle.State) (*model.BattleSession, error) {
			assert.Equal(t, "w11", state.ID)
			assert.Equal(t, "av-11", state.UnitA.AvatarID)
			assert.Equal(t, "av-1", state.UnitB.AvatarID)
			assert.Equal(t, battle.StatusActive, state.Status)
			return claimed(waiting[1], p, state), nil
		})

	res, err := svc.Join(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, JoinMatched, res.Status)
	assert.Equal(t, "w11", res.BattleID)
}

func TestJoin_TakenSessionFallsThroughToNext(t *testing.T) {
	svc, m := newMatchmaking(t)
	ctx := context.Background()

	waiting := []*model.BattleSession{waitingEntry("w10", 10), waitingEntry("w11", 11)}

	m.battles.EXPECT().FindCurrentByPlayer(ctx, int64(1)).Return(nil, repository.ErrBattleNotFound)
	m.units.EXPECT().BuildUnit(ctx, int64(1)).Return(unitFor("av-1", battle.ClassMage), nil)
	m.ratings.EXPECT().Get(ctx, int64(1)).Return(rating.NewRecord(), nil)
	m.battles.EXPECT().ListWaiting(ctx, int64(1), 20).Return(waiting, nil)
	m.ratings.EXPECT().GetRatings(ctx, []int64{10, 11}).Return(map[int64]int{}, nil)
	m.units.EXPECT().BuildUnit(ctx, int64(10)).Return(unitFor("av-10", battle.ClassKnight), nil)
	m.battles.EXPECT().Claim(ctx, "w10", int64(1), gomock.Any()).Return(nil, repository.ErrSessionTaken)
	m.units.EXPECT().BuildUnit(ctx, int64(11)).Return(unitFor("av-11", battle.ClassHealer), nil)
	m.battles.EXPECT().Claim(ctx, "w11", int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p int64, state *battle.State) (*model.BattleSession, error) {
			return claimed(waitingEntry("w11", 11), p, state), nil
		})

	res, err := svc.Join(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "w11", res.BattleID)
	assert.Equal(t, JoinMatched, res.Status)
}

func TestJoin_AllCandidatesTakenEnqueues(t *testing.T) {
	svc, m := newMatchmaking(t)
	ctx := context.Background()

	m.battles.EXPECT().FindCurrentByPlayer(ctx, int64(1)).Return(nil, repository.ErrBattleNotFound)
	m.units.EXPECT().BuildUnit(ctx, int64(1)).Return(unitFor("av-1", battle.ClassMage), nil)
	m.ratings.EXPECT().Get(ctx, int64(1)).Return(rating.NewRecord(), nil)
	m.battles.EXPECT().ListWaiting(ctx, int64(1), 20).Return([]*model.BattleSession{waitingEntry("w10", 10)}, nil)
	m.ratings.EXPECT().GetRatings(ctx, []int64{10}).Return(map[int64]int{}, nil)
	m.units.EXPECT().BuildUnit(ctx, int64(10)).Return(unitFor("av-10", battle.ClassKnight), nil)
	m.battles.EXPECT().Claim(ctx, "w10", int64(1), gomock.Any()).Return(nil, repository.ErrSessionTaken)
	m.battles.EXPECT().CreateWaiting(ctx, gomock.Any(), int64(1)).
		DoAndReturn(func(_ context.Context, id string, p int64) (*model.BattleSession, error) {
			return waitingEntry(id, p), nil
		})

	res, err := svc.Join(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, JoinWaiting, res.Status)
}

func TestJoin_RequiresAvatar(t *testing.T) {
	svc, m := newMatchmaking(t)
	ctx := context.Background()

	m.battles.EXPECT().FindCurrentByPlayer(ctx, int64(1)).Return(nil, repository.ErrBattleNotFound)
	m.units.EXPECT().BuildUnit(ctx, int64(1)).Return(battle.Unit{}, ErrAvatarNotFound)

	_, err := svc.Join(ctx, 1)
	assert.ErrorIs(t, err, ErrAvatarNotFound)
}

func TestCleanupStale(t *testing.T) {
	svc, m := newMatchmaking(t)
	ctx := context.Background()

	m.battles.EXPECT().ExpireStale(ctx, t0.Add(-10*time.Minute)).Return(int64(3), nil)
	n, err := svc.CleanupStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
