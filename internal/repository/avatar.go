package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"pixel-arena/internal/model"
)

// Avatar errors.
var (
	ErrAvatarNotFound = errors.New("avatar not found")
	ErrAvatarExists   = errors.New("avatar already exists")
)

const avatarColumns = `id, user_id, name, class, level, exp, seed, weapon_id, armor_id, accessory_id, created_at`

// AvatarRepository handles avatar persistence. A user owns at most one avatar.
type AvatarRepository struct {
	db DBTX
}

// NewAvatarRepository creates a new AvatarRepository instance.
func NewAvatarRepository(db DBTX) *AvatarRepository {
	return &AvatarRepository{db: db}
}

func scanAvatar(row pgx.Row) (*model.Avatar, error) {
	var a model.Avatar
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Class,
		&a.Level,
		&a.Exp,
		&a.Seed,
		&a.WeaponID,
		&a.ArmorID,
		&a.AccessoryID,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a level 1 avatar. Returns ErrAvatarExists if the user already has one.
func (r *AvatarRepository) Create(ctx context.Context, id string, userID int64, name, class string, seed int64) (*model.Avatar, error) {
	query := `
		INSERT INTO avatars (id, user_id, name, class, level, exp, seed, created_at)
		VALUES ($1, $2, $3, $4, 1, 0, $5, NOW())
		RETURNING ` + avatarColumns

	a, err := scanAvatar(r.db.QueryRow(ctx, query, id, userID, name, class, seed))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAvatarExists
		}
		return nil, fmt.Errorf("failed to create avatar: %w", err)
	}
	return a, nil
}

// GetByUser retrieves the avatar owned by userID.
func (r *AvatarRepository) GetByUser(ctx context.Context, userID int64) (*model.Avatar, error) {
	query := `SELECT ` + avatarColumns + ` FROM avatars WHERE user_id = $1`

	a, err := scanAvatar(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAvatarNotFound
		}
		return nil, fmt.Errorf("failed to get avatar: %w", err)
	}
	return a, nil
}

// SetEquipment puts equipmentID in the given slot of the user's avatar.
func (r *AvatarRepository) SetEquipment(ctx context.Context, userID int64, slot, equipmentID string) (*model.Avatar, error) {
	var column string
	switch slot {
	case model.SlotWeapon:
		column = "weapon_id"
	case model.SlotArmor:
		column = "armor_id"
	case model.SlotAccessory:
		column = "accessory_id"
	default:
		return nil, fmt.Errorf("unknown equipment slot %q", slot)
	}

	query := `UPDATE avatars SET ` + column + ` = $2 WHERE user_id = $1 RETURNING ` + avatarColumns
	a, err := scanAvatar(r.db.QueryRow(ctx, query, userID, equipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAvatarNotFound
		}
		return nil, fmt.Errorf("failed to equip: %w", err)
	}
	return a, nil
}

// UpdateProgress stores level and exp after a battle.
func (r *AvatarRepository) UpdateProgress(ctx context.Context, userID int64, level, exp int) error {
	result, err := r.db.Exec(ctx, `UPDATE avatars SET level = $2, exp = $3 WHERE user_id = $1`, userID, level, exp)
	if err != nil {
		return fmt.Errorf("failed to update avatar progress: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrAvatarNotFound
	}
	return nil
}
