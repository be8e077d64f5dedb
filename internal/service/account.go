// Package service provides business logic implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pixel-arena/internal/game"
	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/model"
	"pixel-arena/internal/repository"
)

// Avatar name bounds, in characters.
const (
	MinAvatarName = 2
	MaxAvatarName = 16
)

// AccountService handles accounts, avatars, currency and equipment.
type AccountService struct {
	users        UserStore
	ledger       LedgerStore
	avatars      AvatarStore
	inventory    InventoryStore
	ratings      RatingStore
	classes      *game.Registry
	startingGems int64
	seed         func() int64
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(
	users UserStore,
	ledger LedgerStore,
	avatars AvatarStore,
	inventory InventoryStore,
	ratings RatingStore,
	classes *game.Registry,
	startingGems int64,
) *AccountService {
	return &AccountService{
		users:        users,
		ledger:       ledger,
		avatars:      avatars,
		inventory:    inventory,
		ratings:      ratings,
		classes:      classes,
		startingGems: startingGems,
		seed:         rand.Int64,
	}
}

// EnsureUser ensures a user exists, creating one with the starting gems if necessary.
// Returns the user and whether it was newly created.
func (s *AccountService) EnsureUser(ctx context.Context, telegramID int64, username string) (*model.User, bool, error) {
	user, created, err := s.users.GetOrCreate(ctx, telegramID, username, s.startingGems)
	if err != nil {
		return nil, false, fmt.Errorf("failed to ensure user: %w", err)
	}

	if created && s.startingGems > 0 {
		desc := "starting gems"
		if _, err := s.ledger.Create(ctx, telegramID, model.CurrencyGems, s.startingGems, model.TxTypeInitial, &desc); err != nil {
			log.Warn().Err(err).Int64("player_id", telegramID).Msg("Failed to record starting gems")
		}
	}

	if !created && username != "" && user.Username != username {
		if err := s.users.UpdateUsername(ctx, telegramID, username); err != nil {
			log.Warn().Err(err).Int64("player_id", telegramID).Msg("Failed to update username")
		}
		user.Username = username
	}

	return user, created, nil
}

// Balance returns the user with their gems and gold.
func (s *AccountService) Balance(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.users.GetByID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return user, nil
}

// GrantGems adds gems to a player's balance and records it in the ledger.
func (s *AccountService) GrantGems(ctx context.Context, adminID, telegramID, amount int64) (*model.User, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	user, err := s.users.AddGems(ctx, telegramID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to grant gems: %w", err)
	}

	desc := fmt.Sprintf("granted by admin %d", adminID)
	if _, err := s.ledger.Create(ctx, telegramID, model.CurrencyGems, amount, model.TxTypeAdminGems, &desc); err != nil {
		log.Warn().Err(err).Int64("player_id", telegramID).Msg("Failed to record admin grant")
	}

	log.Info().
		Int64("admin_id", adminID).
		Int64("player_id", telegramID).
		Int64("amount", amount).
		Msg("Admin granted gems")
	return user, nil
}

// History returns the most recent ledger entries of a player.
func (s *AccountService) History(ctx context.Context, telegramID int64, limit int) ([]*model.Transaction, error) {
	return s.ledger.GetByUserID(ctx, telegramID, limit)
}

// CreateAvatar creates the player's only avatar and their default rating record.
func (s *AccountService) CreateAvatar(ctx context.Context, telegramID int64, name, class string) (*model.Avatar, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < MinAvatarName || n > MaxAvatarName {
		return nil, ErrInvalidAvatarName
	}
	class = strings.ToLower(strings.TrimSpace(class))
	if _, ok := s.classes.Get(class); !ok {
		return nil, ErrInvalidClass
	}

	if _, _, err := s.EnsureUser(ctx, telegramID, ""); err != nil {
		return nil, err
	}

	avatar, err := s.avatars.Create(ctx, uuid.NewString(), telegramID, name, class, s.seed())
	if err != nil {
		if errors.Is(err, repository.ErrAvatarExists) {
			return nil, ErrAvatarExists
		}
		return nil, fmt.Errorf("failed to create avatar: %w", err)
	}

	if err := s.ratings.Init(ctx, telegramID); err != nil {
		return nil, fmt.Errorf("failed to init rating: %w", err)
	}

	log.Info().
		Int64("player_id", telegramID).
		Str("avatar_id", avatar.ID).
		Str("class", class).
		Msg("Avatar created")
	return avatar, nil
}

// GetAvatar returns the player's avatar.
func (s *AccountService) GetAvatar(ctx context.Context, telegramID int64) (*model.Avatar, error) {
	avatar, err := s.avatars.GetByUser(ctx, telegramID)
	if err != nil {
		if errors.Is(err, repository.ErrAvatarNotFound) {
			return nil, ErrAvatarNotFound
		}
		return nil, fmt.Errorf("failed to get avatar: %w", err)
	}
	return avatar, nil
}

// Inventory returns the player's owned equipment.
func (s *AccountService) Inventory(ctx context.Context, telegramID int64) ([]model.InventoryItem, error) {
	items, err := s.inventory.GetAllItems(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	return items, nil
}

// Equip puts an owned item into its slot, replacing whatever was there.
func (s *AccountService) Equip(ctx context.Context, telegramID int64, equipmentID string) (*model.Avatar, error) {
	if _, err := s.GetAvatar(ctx, telegramID); err != nil {
		return nil, err
	}

	qty, err := s.inventory.GetQuantity(ctx, telegramID, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check inventory: %w", err)
	}
	if qty <= 0 {
		return nil, ErrEquipmentNotOwned
	}

	items, err := s.inventory.GetEquipment(ctx, []string{equipmentID})
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEquipmentNotOwned
	}

	avatar, err := s.avatars.SetEquipment(ctx, telegramID, items[0].Slot, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrAvatarNotFound) {
			return nil, ErrAvatarNotFound
		}
		return nil, fmt.Errorf("failed to equip: %w", err)
	}
	return avatar, nil
}

// BuildUnit derives the player's full-health combat unit.
func (s *AccountService) BuildUnit(ctx context.Context, telegramID int64) (battle.Unit, error) {
	avatar, err := s.GetAvatar(ctx, telegramID)
	if err != nil {
		return battle.Unit{}, err
	}
	class, ok := s.classes.Get(avatar.Class)
	if !ok {
		return battle.Unit{}, fmt.Errorf("avatar %s: %w", avatar.ID, ErrInvalidClass)
	}

	var bonuses []battle.Stats
	if ids := avatar.EquippedIDs(); len(ids) > 0 {
		items, err := s.inventory.GetEquipment(ctx, ids)
		if err != nil {
			return battle.Unit{}, fmt.Errorf("failed to load equipment: %w", err)
		}
		for _, it := range items {
			bonuses = append(bonuses, it.StatBonus)
		}
	}

	return battle.NewUnit(class, battle.Loadout{
		AvatarID:  avatar.ID,
		Name:      avatar.Name,
		Level:     avatar.Level,
		Equipment: bonuses,
	}), nil
}
