// Tests use testcontainers-go to spin up a PostgreSQL container.
package repository

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/game/rating"
	"pixel-arena/internal/model"
)

// checkDockerAvailable checks if Docker is available and running
func checkDockerAvailable() bool {
	cmd := exec.Command("docker", "info")
	err := cmd.Run()
	return err == nil
}

// setupTestDB creates a PostgreSQL container and returns a migrated connection pool.
// Skips the test if Docker is not available
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if !checkDockerAvailable() {
		t.Skip("Docker is not available, skipping integration test")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, pool))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

func seedEquipment(t *testing.T, ctx context.Context, pool *pgxpool.Pool, items ...model.Equipment) {
	repo := NewInventoryRepository(pool)
	for _, eq := range items {
		require.NoError(t, repo.UpsertEquipment(ctx, eq))
	}
}

var (
	ironSword = model.Equipment{ID: "iron_sword", Name: "Iron Sword", Slot: model.SlotWeapon, Rarity: gacha.Common, StatBonus: battle.Stats{Atk: 3}}
	chainMail = model.Equipment{ID: "chain_mail", Name: "Chain Mail", Slot: model.SlotArmor, Rarity: gacha.Uncommon, StatBonus: battle.Stats{Def: 5, HP: 10}}
)

func knight(id string) battle.Unit {
	return battle.NewUnit(battle.DefaultClasses()[0], battle.Loadout{AvatarID: id, Name: id, Level: 1})
}

// ============================================================================
// UserRepository Tests
// ============================================================================

func TestUserRepository_CreateAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(pool)
	ctx := context.Background()

	user, err := repo.Create(ctx, 12345, "testuser", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), user.TelegramID)
	assert.Equal(t, int64(100), user.Gems)
	assert.Equal(t, int64(0), user.Gold)

	got, err := repo.GetByID(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, "testuser", got.Username)

	_, err = repo.GetByID(ctx, 99999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_GetOrCreate(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(pool)
	ctx := context.Background()

	user, created, err := repo.GetOrCreate(ctx, 1, "a", 100)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(100), user.Gems)

	user, created, err = repo.GetOrCreate(ctx, 1, "a", 500)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(100), user.Gems)
}

func TestUserRepository_SpendGems(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewUserRepository(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, 1, "a", 25)
	require.NoError(t, err)

	user, err := repo.SpendGems(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(15), user.Gems)

	_, err = repo.SpendGems(ctx, 1, 16)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = repo.SpendGems(ctx, 2, 1)
	assert.ErrorIs(t, err, ErrUserNotFound)

	user, err = repo.AddGold(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(20), user.Gold)
	assert.Equal(t, int64(15), user.Gems)
}

// ============================================================================
// AvatarRepository / InventoryRepository Tests
// ============================================================================

func TestAvatarRepository(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	_, err := NewUserRepository(pool).Create(ctx, 1, "a", 0)
	require.NoError(t, err)
	seedEquipment(t, ctx, pool, ironSword)

	repo := NewAvatarRepository(pool)
	avatar, err := repo.Create(ctx, "av-1", 1, "Hero", battle.ClassKnight, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, avatar.Level)
	assert.Nil(t, avatar.WeaponID)

	_, err = repo.Create(ctx, "av-2", 1, "Again", battle.ClassMage, 1)
	assert.ErrorIs(t, err, ErrAvatarExists)

	avatar, err = repo.SetEquipment(ctx, 1, model.SlotWeapon, ironSword.ID)
	require.NoError(t, err)
	require.NotNil(t, avatar.WeaponID)
	assert.Equal(t, []string{"iron_sword"}, avatar.EquippedIDs())

	require.NoError(t, repo.UpdateProgress(ctx, 1, 3, 40))
	avatar, err = repo.GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, avatar.Level)
	assert.Equal(t, 40, avatar.Exp)

	_, err = repo.GetByUser(ctx, 2)
	assert.ErrorIs(t, err, ErrAvatarNotFound)
}

func TestInventoryRepository(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	_, err := NewUserRepository(pool).Create(ctx, 1, "a", 0)
	require.NoError(t, err)
	seedEquipment(t, ctx, pool, ironSword, chainMail)

	repo := NewInventoryRepository(pool)
	require.NoError(t, repo.AddItem(ctx, 1, ironSword.ID, 1))
	require.NoError(t, repo.AddItem(ctx, 1, ironSword.ID, 2))

	qty, err := repo.GetQuantity(ctx, 1, ironSword.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	has, err := repo.HasItem(ctx, 1, chainMail.ID)
	require.NoError(t, err)
	assert.False(t, has)

	items, err := repo.GetAllItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ironSword, items[0].Equipment)

	eqs, err := repo.GetEquipment(ctx, []string{chainMail.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, eqs, 1)
	assert.Equal(t, battle.Stats{Def: 5, HP: 10}, eqs[0].StatBonus)
}

// ============================================================================
// RatingRepository Tests
// ============================================================================

func TestRatingRepository(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	users := NewUserRepository(pool)
	for _, id := range []int64{1, 2, 3} {
		_, err := users.Create(ctx, id, "u", 0)
		require.NoError(t, err)
	}
	_, err := NewAvatarRepository(pool).Create(ctx, "av-1", 1, "Top", battle.ClassMage, 0)
	require.NoError(t, err)

	repo := NewRatingRepository(pool)
	rec, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, rating.NewRecord(), rec)

	require.NoError(t, repo.Init(ctx, 1))
	require.NoError(t, repo.Save(ctx, 1, rating.Record{Rating: 1100, Wins: 3, Streak: 2}))
	require.NoError(t, repo.Save(ctx, 2, rating.Record{Rating: 900, Losses: 1}))

	ratings, err := repo.GetRatings(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]int{1: 1100, 2: 900}, ratings)

	top, err := repo.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, "Top", top[0].Name)
	assert.Equal(t, battle.ClassMage, top[0].Class)
	assert.Equal(t, "Unknown", top[1].Name)
	assert.Equal(t, 2, top[1].Rank)
}

// ============================================================================
// BattleRepository Tests
// ============================================================================

func TestBattleRepository_MatchmakingLifecycle(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBattleRepository(pool)
	ctx := context.Background()

	s, err := repo.CreateWaiting(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, model.SessionWaiting, s.Status)
	assert.Nil(t, s.State)

	found, err := repo.FindWaiting(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "s1", found.ID)

	_, err = repo.CreateWaiting(ctx, "s2", 2)
	require.NoError(t, err)

	waiting, err := repo.ListWaiting(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, waiting, 1)
	assert.Equal(t, "s2", waiting[0].ID)

	state := battle.NewEngine(0).NewBattle("s1", knight("a"), knight("b"), time.Now())
	claimed, err := repo.Claim(ctx, "s1", 3, state)
	require.NoError(t, err)
	assert.Equal(t, model.SessionActive, claimed.Status)
	require.NotNil(t, claimed.PlayerB)
	assert.Equal(t, int64(3), *claimed.PlayerB)
	require.NotNil(t, claimed.State)
	assert.Equal(t, 1, claimed.TurnNumber)
	assert.Equal(t, battle.SideA, claimed.Role(1))
	assert.Equal(t, battle.SideB, claimed.Role(3))

	_, err = repo.Claim(ctx, "s1", 4, state)
	assert.ErrorIs(t, err, ErrSessionTaken)

	current, err := repo.FindCurrentByPlayer(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "s1", current.ID)

	n, err := repo.ExpireStale(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindWaiting(ctx, 2)
	assert.ErrorIs(t, err, ErrBattleNotFound)
	_, err = repo.Claim(ctx, "s2", 5, state)
	assert.ErrorIs(t, err, ErrSessionTaken)
}

func TestBattleRepository_UpdateStateOptimistic(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewBattleRepository(pool)
	ctx := context.Background()
	engine := battle.NewEngine(0)

	_, err := repo.CreateWaiting(ctx, "s1", 1)
	require.NoError(t, err)
	state := engine.NewBattle("s1", knight("a"), knight("b"), time.Now())
	_, err = repo.Claim(ctx, "s1", 2, state)
	require.NoError(t, err)

	next, _, err := engine.ResolveTurn(state, battle.Action{Type: battle.ActionAttack}, time.Now())
	require.NoError(t, err)

	// two writers race from the same base turn; exactly one wins
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.UpdateState(ctx, "s1", state.TurnNumber, next, nil)
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.True(t, errors.Is(err, ErrStaleTurn))
		}
	}
	assert.Equal(t, 1, wins)

	stored, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TurnNumber)
	assert.Equal(t, next.UnitB.CurrentHP, stored.State.UnitB.CurrentHP)
	assert.Len(t, stored.State.Log, 1)

	overdue, err := repo.ListOverdue(ctx, time.Now().Add(time.Hour), 10)
	require.NoError(t, err)
	assert.Len(t, overdue, 1)
	overdue, err = repo.ListOverdue(ctx, time.Now().Add(-time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, overdue)
}

func TestBattleRepository_SettleOnce(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	users := NewUserRepository(pool)
	for _, id := range []int64{1, 2} {
		_, err := users.Create(ctx, id, "u", 0)
		require.NoError(t, err)
	}
	_, err := NewAvatarRepository(pool).Create(ctx, "av-1", 1, "One", battle.ClassKnight, 0)
	require.NoError(t, err)

	repo := NewBattleRepository(pool)
	playerB := int64(2)
	winner := int64(1)
	session := &model.BattleSession{
		ID: "s1", PlayerA: 1, PlayerB: &playerB, WinnerID: &winner,
		State: &battle.State{ID: "s1", Status: battle.StatusFinished, Winner: battle.OutcomeA},
	}

	compute := func(a, b Standing) (PlayerUpdate, PlayerUpdate) {
		assert.NotNil(t, a.Avatar)
		assert.Nil(t, b.Avatar)
		ra, rb := rating.Settle(a.Rating, b.Rating, true, false)
		return PlayerUpdate{UserID: a.UserID, Rating: ra, RatingDelta: 16, Level: 2, Exp: 5, Gold: 20},
			PlayerUpdate{UserID: b.UserID, Rating: rb, RatingDelta: -16, Gold: 20}
	}

	ua, ub, err := repo.Settle(ctx, session, compute)
	require.NoError(t, err)
	assert.Equal(t, 1016, ua.Rating.Rating)
	assert.Equal(t, 984, ub.Rating.Rating)

	_, _, err = repo.Settle(ctx, session, compute)
	assert.ErrorIs(t, err, ErrAlreadySettled)

	rec, err := repo.GetRecord(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 16, rec.RatingChangeA)
	assert.Equal(t, -16, rec.RatingChangeB)

	u1, err := users.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(20), u1.Gold)

	avatar, err := NewAvatarRepository(pool).GetByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, avatar.Level)

	ledger, err := NewTransactionRepository(pool).GetByUserID(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, model.TxTypeBattleReward, ledger[0].Type)
}

// ============================================================================
// GachaRepository Tests
// ============================================================================

func TestGachaRepository_CommitPulls(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	_, err := NewUserRepository(pool).Create(ctx, 1, "a", 25)
	require.NoError(t, err)
	seedEquipment(t, ctx, pool, ironSword, chainMail)

	repo := NewGachaRepository(pool)
	require.NoError(t, repo.UpsertPool(ctx, model.GachaPool{
		ID: "equipment", Name: "Equipment Gacha", Cost: 10, Active: true,
		Items: []gacha.PoolItem{{EquipmentID: ironSword.ID, Rarity: gacha.Common}},
	}))
	require.NoError(t, repo.UpsertPool(ctx, model.GachaPool{ID: "old", Name: "Old", Cost: 5, Active: false}))

	pools, err := repo.ListActivePools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 1)
	_, err = repo.GetActivePool(ctx, "old")
	assert.ErrorIs(t, err, ErrPoolNotFound)

	remaining, err := repo.CommitPulls(ctx, 1, "equipment", 20, []gacha.Result{
		{Rarity: gacha.Common, EquipmentID: ironSword.ID},
		{Rarity: gacha.Rare, EquipmentID: chainMail.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), remaining)

	rarities, err := repo.RecentRarities(ctx, 1, "equipment", 50)
	require.NoError(t, err)
	assert.Equal(t, []gacha.Rarity{gacha.Rare, gacha.Common}, rarities)

	// an unaffordable batch writes nothing
	_, err = repo.CommitPulls(ctx, 1, "equipment", 10, []gacha.Result{{Rarity: gacha.Common, EquipmentID: ironSword.ID}})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	rarities, err = repo.RecentRarities(ctx, 1, "equipment", 50)
	require.NoError(t, err)
	assert.Len(t, rarities, 2)

	qty, err := NewInventoryRepository(pool).GetQuantity(ctx, 1, ironSword.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
}
