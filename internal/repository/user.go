package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pixel-arena/internal/model"
)

// Common errors for repository operations.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

const userColumns = `telegram_id, username, gems, gold, created_at, updated_at`

// UserRepository handles user data persistence.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository instance.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row pgx.Row) (*model.User, error) {
	var user model.User
	err := row.Scan(
		&user.TelegramID,
		&user.Username,
		&user.Gems,
		&user.Gold,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user with the given starting gems.
func (r *UserRepository) Create(ctx context.Context, telegramID int64, username string, gems int64) (*model.User, error) {
	query := `
		INSERT INTO users (telegram_id, username, gems, gold, created_at, updated_at)
		VALUES ($1, $2, $3, 0, NOW(), NOW())
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(ctx, query, telegramID, username, gems))
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GetByID retrieves a user by their Telegram ID.
// Returns ErrUserNotFound if the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, telegramID int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, telegramID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetOrCreate retrieves a user by Telegram ID, creating one if it doesn't exist.
// The second return value reports whether the user was created.
func (r *UserRepository) GetOrCreate(ctx context.Context, telegramID int64, username string, gems int64) (*model.User, bool, error) {
	user, err := r.GetByID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, false, err
	}

	user, err = r.Create(ctx, telegramID, username, gems)
	if err != nil {
		// Another request might have created the user
		user, err = r.GetByID(ctx, telegramID)
		if err != nil {
			return nil, false, err
		}
		return user, false, nil
	}

	return user, true, nil
}

// AddGems adds amount (possibly negative) to the user's gems.
func (r *UserRepository) AddGems(ctx context.Context, telegramID int64, amount int64) (*model.User, error) {
	return r.update(ctx, `UPDATE users SET gems = gems + $2, updated_at = NOW() WHERE telegram_id = $1 RETURNING `+userColumns, telegramID, amount)
}

// AddGold adds amount to the user's gold.
func (r *UserRepository) AddGold(ctx context.Context, telegramID int64, amount int64) (*model.User, error) {
	return r.update(ctx, `UPDATE users SET gold = gold + $2, updated_at = NOW() WHERE telegram_id = $1 RETURNING `+userColumns, telegramID, amount)
}

// SpendGems deducts cost only if the balance covers it.
// Returns ErrInsufficientFunds when it does not, ErrUserNotFound for an unknown user.
func (r *UserRepository) SpendGems(ctx context.Context, telegramID int64, cost int64) (*model.User, error) {
	user, err := r.update(ctx, `
		UPDATE users SET gems = gems - $2, updated_at = NOW()
		WHERE telegram_id = $1 AND gems >= $2
		RETURNING `+userColumns, telegramID, cost)
	if errors.Is(err, ErrUserNotFound) {
		exists, existsErr := r.Exists(ctx, telegramID)
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, ErrInsufficientFunds
		}
	}
	return user, err
}

func (r *UserRepository) update(ctx context.Context, query string, args ...any) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// UpdateUsername updates a user's username.
func (r *UserRepository) UpdateUsername(ctx context.Context, telegramID int64, username string) error {
	const query = `
		UPDATE users
		SET username = $2, updated_at = NOW()
		WHERE telegram_id = $1
	`

	result, err := r.db.Exec(ctx, query, telegramID, username)
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Exists checks if a user with the given Telegram ID exists.
func (r *UserRepository) Exists(ctx context.Context, telegramID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE telegram_id = $1)`

	var exists bool
	err := r.db.QueryRow(ctx, query, telegramID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
