// Package model defines the persisted data models of the arena.
package model

import (
	"time"

	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/game/gacha"
)

// User is a player account. Players are identified by their Telegram ID on both
// the chat and HTTP front-ends.
type User struct {
	TelegramID int64     `db:"telegram_id" json:"id"`
	Username   string    `db:"username" json:"username"`
	Gems       int64     `db:"gems" json:"gems"`
	Gold       int64     `db:"gold" json:"gold"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// Transaction is a currency ledger entry.
type Transaction struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	Currency    string    `db:"currency"`
	Amount      int64     `db:"amount"`
	Type        string    `db:"type"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

// Currencies.
const (
	CurrencyGems = "gems"
	CurrencyGold = "gold"
)

// Transaction types for categorizing currency changes.
const (
	TxTypeInitial      = "initial"       // Starting gems on account creation
	TxTypeGachaPull    = "gacha_pull"    // Gems spent on pulls
	TxTypeBattleReward = "battle_reward" // Gold awarded at settlement
	TxTypeAdminGems    = "admin_gems"    // Admin granted gems
)

// Equipment slots.
const (
	SlotWeapon    = "weapon"
	SlotArmor     = "armor"
	SlotAccessory = "accessory"
)

// ValidSlot reports whether s is an equipment slot.
func ValidSlot(s string) bool {
	return s == SlotWeapon || s == SlotArmor || s == SlotAccessory
}

// Avatar is a player's persisted character.
type Avatar struct {
	ID          string    `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Name        string    `db:"name" json:"name"`
	Class       string    `db:"class" json:"class"`
	Level       int       `db:"level" json:"level"`
	Exp         int       `db:"exp" json:"exp"`
	Seed        int64     `db:"seed" json:"seed"`
	WeaponID    *string   `db:"weapon_id" json:"weapon_id,omitempty"`
	ArmorID     *string   `db:"armor_id" json:"armor_id,omitempty"`
	AccessoryID *string   `db:"accessory_id" json:"accessory_id,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EquippedIDs returns the ids of equipped items.
func (a *Avatar) EquippedIDs() []string {
	var ids []string
	for _, id := range []*string{a.WeaponID, a.ArmorID, a.AccessoryID} {
		if id != nil {
			ids = append(ids, *id)
		}
	}
	return ids
}

// Equipment is a catalog item with a stat bonus.
type Equipment struct {
	ID        string       `db:"id" json:"id" yaml:"id"`
	Name      string       `db:"name" json:"name" yaml:"name"`
	Slot      string       `db:"slot" json:"slot" yaml:"slot"`
	Rarity    gacha.Rarity `db:"rarity" json:"rarity" yaml:"rarity"`
	StatBonus battle.Stats `db:"stat_bonus" json:"stat_bonus" yaml:"stat_bonus"`
}

// InventoryItem is an owned stack of one equipment item.
type InventoryItem struct {
	UserID    int64     `db:"user_id" json:"-"`
	Equipment Equipment `json:"equipment"`
	Quantity  int       `db:"quantity" json:"quantity"`
}

// LeaderboardEntry is a player's rating row joined with their avatar.
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID int64  `db:"user_id" json:"user_id"`
	Rating int    `db:"rating" json:"rating"`
	Wins   int    `db:"wins" json:"wins"`
	Losses int    `db:"losses" json:"losses"`
	Streak int    `db:"streak" json:"streak"`
	Name   string `db:"name" json:"name"`
	Class  string `db:"class" json:"class"`
	Level  int    `db:"level" json:"level"`
}

// Session statuses. Expired waiting sessions are never matched.
const (
	SessionWaiting  = "waiting"
	SessionActive   = "active"
	SessionFinished = "finished"
	SessionExpired  = "expired"
)

// BattleSession is a matchmaking entry that becomes a battle once matched.
type BattleSession struct {
	ID           string        `db:"id" json:"id"`
	PlayerA      int64         `db:"player_a" json:"player_a"`
	PlayerB      *int64        `db:"player_b" json:"player_b,omitempty"`
	Status       string        `db:"status" json:"status"`
	State        *battle.State `db:"state" json:"state,omitempty"`
	TurnNumber   int           `db:"turn_number" json:"turn_number"`
	TurnDeadline *time.Time    `db:"turn_deadline" json:"turn_deadline,omitempty"`
	WinnerID     *int64        `db:"winner_id" json:"winner_id,omitempty"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updated_at"`
}

// Role returns the side played by playerID, or "" for a spectator.
func (s *BattleSession) Role(playerID int64) battle.Side {
	if s.PlayerA == playerID {
		return battle.SideA
	}
	if s.PlayerB != nil && *s.PlayerB == playerID {
		return battle.SideB
	}
	return ""
}

// PlayerFor returns the player id seated on side.
func (s *BattleSession) PlayerFor(side battle.Side) int64 {
	if side == battle.SideB && s.PlayerB != nil {
		return *s.PlayerB
	}
	return s.PlayerA
}

// BattleRecord is the permanent history entry written at settlement.
type BattleRecord struct {
	ID            string              `db:"id" json:"id"`
	PlayerA       int64               `db:"player_a" json:"player_a"`
	PlayerB       int64               `db:"player_b" json:"player_b"`
	WinnerID      *int64              `db:"winner_id" json:"winner_id,omitempty"`
	Turns         []battle.TurnResult `db:"turns" json:"turns"`
	RatingChangeA int                 `db:"rating_change_a" json:"rating_change_a"`
	RatingChangeB int                 `db:"rating_change_b" json:"rating_change_b"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
}

// GachaPool is a pull pool with its item list.
type GachaPool struct {
	ID     string           `db:"id" json:"id" yaml:"id"`
	Name   string           `db:"name" json:"name" yaml:"name"`
	Cost   int64            `db:"cost_gems" json:"cost_gems" yaml:"cost_gems"`
	Active bool             `db:"active" json:"active" yaml:"active"`
	Items  []gacha.PoolItem `db:"items" json:"items,omitempty" yaml:"items"`
}

// GachaPull is one history row of a (player, pool) pair.
type GachaPull struct {
	ID          int64        `db:"id"`
	UserID      int64        `db:"user_id"`
	PoolID      string       `db:"pool_id"`
	Rarity      gacha.Rarity `db:"rarity"`
	EquipmentID string       `db:"equipment_id"`
	CreatedAt   time.Time    `db:"created_at"`
}
