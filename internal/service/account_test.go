package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pixel-arena/internal/game"
	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/model"
	"pixel-arena/internal/repository"
	"pixel-arena/internal/service/mocks"
)

type accountMocks struct {
	users     *mocks.MockUserStore
	ledger    *mocks.MockLedgerStore
	avatars   *mocks.MockAvatarStore
	inventory *mocks.MockInventoryStore
	ratings   *mocks.MockRatingStore
}

func newAccount(t *testing.T) (*AccountService, accountMocks) {
	ctrl := gomock.NewController(t)
	m := accountMocks{
		users:     mocks.NewMockUserStore(ctrl),
		ledger:    mocks.NewMockLedgerStore(ctrl),
		avatars:   mocks.NewMockAvatarStore(ctrl),
		inventory: mocks.NewMockInventoryStore(ctrl),
		ratings:   mocks.NewMockRatingStore(ctrl),
	}
	svc := NewAccountService(m.users, m.ledger, m.avatars, m.inventory, m.ratings, game.NewDefaultRegistry(), 100)
	svc.seed = func() int64 { return 7 }
	return svc, m
}

func strPtr(s string) *string { return &s }

func TestEnsureUser_NewAccountRecordsStartingGems(t *testing.T) {
	svc, m := newAccount(t)
	ctx := context.Background()

	m.users.EXPECT().GetOrCreate(ctx, int64(1), "alice", int64(100)).Return(&model.User{TelegramID: 1, Username: "alice", Gems: 100}, true, nil)
	m.ledger.EXPECT().Create(ctx, int64(1), model.CurrencyGems, int64(100), model.TxTypeInitial, gomock.Any()).Return(&model.Transaction{}, nil)

	user, created, err := svc.EnsureUser(ctx, 1, "alice")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(100), user.Gems)
}

func TestEnsureUser_UpdatesChangedUsername(t *testing.T) {
	svc, m := newAccount(t)
	ctx := context.Background()

	m.users.EXPECT().GetOrCreate(ctx, int64(1), "bob", int64(100)).Return(&model.User{TelegramID: 1, Username: "alice"}, false, nil)
	m.users.EXPECT().UpdateUsername(ctx, int64(1), "bob").Return(nil)

	user, created, err := svc.EnsureUser(ctx, 1, "bob")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "bob", user.Username)
}

func TestCreateAvatar_Validation(t *testing.T) {
	tests := []struct {
		name     string
		avatar   string
		class    string
		expected error
	}{
		{"too short", "a", "knight", ErrInvalidAvatarName},
		{"blank after trim", "   ", "knight", ErrInvalidAvatarName},
		{"too long", "abcdefghijklmnopq", "knight", ErrInvalidAvatarName},
		{"unknown class", "Hero", "bard", ErrInvalidClass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAccount(t)
			_, err := svc.CreateAvatar(context.Background(), 1, tt.avatar, tt.class)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestCreateAvatar_CountsCharactersNotBytes(t *testing.T) {
	svc, m := newAccount(t)
	ctx := context.Background()

	m.users.EXPECT().GetOrCreate(ctx, int64(1), "", int64(100)).Return(&model.User{TelegramID: 1}, false, nil)
	m.avatars.EXPECT().Create(ctx, gomock.Any(), int64(1), "勇者", battle.ClassHealer, int64(7)).
		Return(&model.Avatar{ID: "av-1", UserID: 1, Name: "勇者", Class: battle.ClassHealer, Level: 1}, nil)
	m.ratings.EXPECT().Init(ctx, int64(1)).Return(nil)

	avatar, err := svc.CreateAvatar(ctx, 1, " 勇者 ", "Healer")
	require.NoError(t, err)
	assert.Equal(t, "勇者", avatar.Name)
}

func TestCreateAvatar_SecondAvatarConflicts(t *testing.T) {
	svc, m := newAccount(t)
	ctx := context.Background()

	m.users.EXPECT().GetOrCreate(ctx, int64(1), "", int64(100)).Return(&model.User{TelegramID: 1}, false, nil)
	m.avatars.EXPECT().Create(ctx, gomock.Any(), int64(1), "Hero", battle.ClassMage, int64(7)).Return(nil, repository.ErrAvatarExists)

	_, err := svc.CreateAvatar(ctx, 1, "Hero", "mage")
	assert.ErrorIs(t, err, ErrAvatarExists)
}

func TestEquip(t *testing.T) {
	ctx := context.Background()
	avatar := &model.Avatar{ID: "av-1", UserID: 1, Class: battle.ClassKnight, Level: 1}

	t.Run("not owned", func(t *testing.T) {
		svc, m := newAccount(t)
		m.avatars.EXPECT().GetByUser(ctx, int64(1)).Return(avatar, nil)
		m.inventory.EXPECT().GetQuantity(ctx, int64(1), "iron_sword").Return(0, nil)

		_, err := svc.Equip(ctx, 1, "iron_sword")
		assert.ErrorIs(t, err, ErrEquipmentNotOwned)
	})

	t.Run("no avatar", func(t *testing.T) {
		svc, m := newAccount(t)
		m.avatars.EXPECT().GetByUser(ctx, int64(1)).Return(nil, repository.ErrAvatarNotFound)

		_, err := svc.Equip(ctx, 1, "iron_sword")
		assert.ErrorIs(t, err, ErrAvatarNotFound)
	})

	t.Run("uses the item's slot", func(t *testing.T) {
		svc, m := newAccount(t)
		m.avatars.EXPECT().GetByUser(ctx, int64(1)).Return(avatar, nil)
		m.inventory.EXPECT().GetQuantity(ctx, int64(1), "chain_mail").Return(2, nil)
		m.inventory.EXPECT().GetEquipment(ctx, []string{"chain_mail"}).
			Return([]model.Equipment{{ID: "chain_mail", Slot: model.SlotArmor}}, nil)
		m.avatars.EXPECT().SetEquipment(ctx, int64(1), model.SlotArmor, "chain_mail").
			Return(&model.Avatar{ID: "av-1", ArmorID: strPtr("chain_mail")}, nil)

		got, err := svc.Equip(ctx, 1, "chain_mail")
		require.NoError(t, err)
		assert.Equal(t, []string{"chain_mail"}, got.EquippedIDs())
	})
}

func TestBuildUnit_AppliesEquipment(t *testing.T) {
	svc, m := newAccount(t)
	ctx := context.Background()

	m.avatars.EXPECT().GetByUser(ctx, int64(1)).Return(&model.Avatar{
		ID: "av-1", Name: "Hero", Class: battle.ClassKnight, Level: 1,
		WeaponID: strPtr("iron_sword"), ArmorID: strPtr("chain_mail"),
	}, nil)
	m.inventory.EXPECT().GetEquipment(ctx, []string{"iron_sword", "chain_mail"}).Return([]model.Equipment{
		{ID: "iron_sword", StatBonus: battle.Stats{Atk: 3}},
		{ID: "chain_mail", StatBonus: battle.Stats{Def: 5, HP: 10}},
	}, nil)

	unit, err := svc.BuildUnit(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, battle.Stats{HP: 130, Atk: 17, Mag: 4, Def: 17, Res: 8, Spd: 6}, unit.Stats)
	assert.Equal(t, 130, unit.CurrentHP)
	assert.Equal(t, battle.MaxMP, unit.CurrentMP)
	assert.Equal(t, battle.ElementPhysical, unit.Element)
}

func TestGrantGems(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects non-positive", func(t *testing.T) {
		svc, _ := newAccount(t)
		_, err := svc.GrantGems(ctx, 99, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, m := newAccount(t)
		m.users.EXPECT().AddGems(ctx, int64(1), int64(50)).Return(nil, repository.ErrUserNotFound)
		_, err := svc.GrantGems(ctx, 99, 1, 50)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("records ledger entry", func(t *testing.T) {
		svc, m := newAccount(t)
		m.users.EXPECT().AddGems(ctx, int64(1), int64(50)).Return(&model.User{TelegramID: 1, Gems: 150}, nil)
		m.ledger.EXPECT().Create(ctx, int64(1), model.CurrencyGems, int64(50), model.TxTypeAdminGems, gomock.Any()).Return(&model.Transaction{}, nil)

		user, err := svc.GrantGems(ctx, 99, 1, 50)
		require.NoError(t, err)
		assert.Equal(t, int64(150), user.Gems)
	})
}
