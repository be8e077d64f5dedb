package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/model"
)

// ErrPoolNotFound is returned for missing or inactive pools.
var ErrPoolNotFound = errors.New("pool not found")

// GachaRepository handles pools and pull history.
type GachaRepository struct {
	db DBTX
}

// NewGachaRepository creates a new GachaRepository instance.
func NewGachaRepository(db DBTX) *GachaRepository {
	return &GachaRepository{db: db}
}

func scanPool(row pgx.Row) (*model.GachaPool, error) {
	var p model.GachaPool
	var items []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Cost, &p.Active, &items); err != nil {
		return nil, err
	}
	if err := scanJSON(items, &p.Items); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertPool inserts or refreshes a pool definition.
func (r *GachaRepository) UpsertPool(ctx context.Context, p model.GachaPool) error {
	items, err := jsonParam(p.Items)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO gacha_pools (id, name, cost_gems, active, items)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET name = $2, cost_gems = $3, active = $4, items = $5
	`
	if _, err := r.db.Exec(ctx, query, p.ID, p.Name, p.Cost, p.Active, items); err != nil {
		return fmt.Errorf("failed to upsert pool %s: %w", p.ID, err)
	}
	return nil
}

// ListActivePools returns active pools ordered by id.
func (r *GachaRepository) ListActivePools(ctx context.Context) ([]*model.GachaPool, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, cost_gems, active, items FROM gacha_pools WHERE active ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list pools: %w", err)
	}
	defer rows.Close()

	var pools []*model.GachaPool
	for rows.Next() {
		p, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pool: %w", err)
		}
		pools = append(pools, p)
	}
	return pools, rows.Err()
}

// GetActivePool returns an active pool. Inactive pools are reported as ErrPoolNotFound.
func (r *GachaRepository) GetActivePool(ctx context.Context, id string) (*model.GachaPool, error) {
	p, err := scanPool(r.db.QueryRow(ctx, `SELECT id, name, cost_gems, active, items FROM gacha_pools WHERE id = $1 AND active`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPoolNotFound
		}
		return nil, fmt.Errorf("failed to get pool: %w", err)
	}
	return p, nil
}

// RecentRarities returns up to limit pull rarities of (userID, poolID), newest first.
func (r *GachaRepository) RecentRarities(ctx context.Context, userID int64, poolID string, limit int) ([]gacha.Rarity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rarity FROM gacha_history
		WHERE user_id = $1 AND pool_id = $2
		ORDER BY id DESC
		LIMIT $3`, userID, poolID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull history: %w", err)
	}
	defer rows.Close()

	var rarities []gacha.Rarity
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan pull: %w", err)
		}
		rarities = append(rarities, gacha.Rarity(s))
	}
	return rarities, rows.Err()
}

// CommitPulls charges cost and records the pulls in one transaction: the gem deduction
// is conditional on the balance, each result is appended to the history in order and
// added to the inventory. Returns the remaining gems.
func (r *GachaRepository) CommitPulls(ctx context.Context, userID int64, poolID string, cost int64, results []gacha.Result) (int64, error) {
	var remaining int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		user, err := NewUserRepository(tx).SpendGems(ctx, userID, cost)
		if err != nil {
			return err
		}
		remaining = user.Gems

		desc := fmt.Sprintf("%d pulls from %s", len(results), poolID)
		if _, err := NewTransactionRepository(tx).Create(ctx, userID, model.CurrencyGems, -cost, model.TxTypeGachaPull, &desc); err != nil {
			return err
		}

		inventory := NewInventoryRepository(tx)
		for _, res := range results {
			if _, err := tx.Exec(ctx, `
				INSERT INTO gacha_history (user_id, pool_id, rarity, equipment_id)
				VALUES ($1, $2, $3, $4)`, userID, poolID, string(res.Rarity), res.EquipmentID); err != nil {
				return fmt.Errorf("failed to record pull: %w", err)
			}
			if err := inventory.AddItem(ctx, userID, res.EquipmentID, 1); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
