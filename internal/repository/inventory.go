package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pixel-arena/internal/game/gacha"
	"pixel-arena/internal/model"
)

// ErrEquipmentNotFound is returned for unknown equipment ids.
var ErrEquipmentNotFound = errors.New("equipment not found")

// InventoryRepository handles the equipment catalog and owned item stacks.
type InventoryRepository struct {
	db DBTX
}

// NewInventoryRepository creates a new InventoryRepository instance
func NewInventoryRepository(db DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

// ========== Catalog ==========

// UpsertEquipment inserts or refreshes a catalog item.
func (r *InventoryRepository) UpsertEquipment(ctx context.Context, eq model.Equipment) error {
	bonus, err := jsonParam(eq.StatBonus)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO equipment (id, name, slot, rarity, stat_bonus)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET name = $2, slot = $3, rarity = $4, stat_bonus = $5
	`
	if _, err := r.db.Exec(ctx, query, eq.ID, eq.Name, eq.Slot, string(eq.Rarity), bonus); err != nil {
		return fmt.Errorf("failed to upsert equipment %s: %w", eq.ID, err)
	}
	return nil
}

// GetEquipment returns catalog items by id. Unknown ids are skipped.
func (r *InventoryRepository) GetEquipment(ctx context.Context, ids []string) ([]model.Equipment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx, `SELECT id, name, slot, rarity, stat_bonus FROM equipment WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to get equipment: %w", err)
	}
	defer rows.Close()

	var items []model.Equipment
	for rows.Next() {
		eq, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, eq)
	}
	return items, rows.Err()
}

func scanEquipment(row pgx.Row, extra ...any) (model.Equipment, error) {
	var eq model.Equipment
	var rarity string
	var bonus []byte
	dest := append([]any{&eq.ID, &eq.Name, &eq.Slot, &rarity, &bonus}, extra...)
	if err := row.Scan(dest...); err != nil {
		return eq, fmt.Errorf("failed to scan equipment: %w", err)
	}
	eq.Rarity = gacha.Rarity(rarity)
	if err := scanJSON(bonus, &eq.StatBonus); err != nil {
		return eq, err
	}
	return eq, nil
}

// ========== Owned items ==========

// AddItem adds quantity of an equipment item to the user's inventory.
func (r *InventoryRepository) AddItem(ctx context.Context, userID int64, equipmentID string, quantity int) error {
	const query = `
		INSERT INTO user_inventory (user_id, equipment_id, quantity, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, equipment_id)
		DO UPDATE SET quantity = user_inventory.quantity + $3, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, userID, equipmentID, quantity); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}
	return nil
}

// GetQuantity returns how many of an item the user owns.
func (r *InventoryRepository) GetQuantity(ctx context.Context, userID int64, equipmentID string) (int, error) {
	const query = `
		SELECT quantity FROM user_inventory
		WHERE user_id = $1 AND equipment_id = $2
	`
	var quantity int
	err := r.db.QueryRow(ctx, query, userID, equipmentID).Scan(&quantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get item quantity: %w", err)
	}
	return quantity, nil
}

// HasItem checks if a user owns at least one of an item.
func (r *InventoryRepository) HasItem(ctx context.Context, userID int64, equipmentID string) (bool, error) {
	quantity, err := r.GetQuantity(ctx, userID, equipmentID)
	if err != nil {
		return false, err
	}
	return quantity > 0, nil
}

// GetAllItems returns the user's owned items with their catalog details.
func (r *InventoryRepository) GetAllItems(ctx context.Context, userID int64) ([]model.InventoryItem, error) {
	const query = `
		SELECT e.id, e.name, e.slot, e.rarity, e.stat_bonus, i.quantity
		FROM user_inventory i
		JOIN equipment e ON e.id = i.equipment_id
		WHERE i.user_id = $1 AND i.quantity > 0
		ORDER BY e.slot, e.id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	var items []model.InventoryItem
	for rows.Next() {
		item := model.InventoryItem{UserID: userID}
		eq, err := scanEquipment(rows, &item.Quantity)
		if err != nil {
			return nil, err
		}
		item.Equipment = eq
		items = append(items, item)
	}
	return items, rows.Err()
}
