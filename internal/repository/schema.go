package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

var migrations = []struct {
	name string
	sql  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			telegram_id BIGINT PRIMARY KEY,
			username VARCHAR(255) NOT NULL DEFAULT '',
			gems BIGINT NOT NULL DEFAULT 0 CHECK (gems >= 0),
			gold BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`},
	{"transactions", `
		CREATE TABLE IF NOT EXISTS transactions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(telegram_id) ON DELETE CASCADE,
			currency VARCHAR(16) NOT NULL,
			amount BIGINT NOT NULL,
			type VARCHAR(50) NOT NULL,
			description TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_transactions_user_time ON transactions(user_id, created_at DESC);
	`},
	{"equipment", `
		CREATE TABLE IF NOT EXISTS equipment (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(64) NOT NULL,
			slot VARCHAR(16) NOT NULL,
			rarity VARCHAR(16) NOT NULL,
			stat_bonus JSONB NOT NULL DEFAULT '{}'
		);
	`},
	{"avatars", `
		CREATE TABLE IF NOT EXISTS avatars (
			id TEXT PRIMARY KEY,
			user_id BIGINT NOT NULL UNIQUE REFERENCES users(telegram_id) ON DELETE CASCADE,
			name VARCHAR(32) NOT NULL,
			class VARCHAR(16) NOT NULL,
			level INT NOT NULL DEFAULT 1,
			exp INT NOT NULL DEFAULT 0,
			seed BIGINT NOT NULL DEFAULT 0,
			weapon_id VARCHAR(64) REFERENCES equipment(id),
			armor_id VARCHAR(64) REFERENCES equipment(id),
			accessory_id VARCHAR(64) REFERENCES equipment(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`},
	{"user_inventory", `
		CREATE TABLE IF NOT EXISTS user_inventory (
			user_id BIGINT NOT NULL REFERENCES users(telegram_id) ON DELETE CASCADE,
			equipment_id VARCHAR(64) NOT NULL REFERENCES equipment(id),
			quantity INT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, equipment_id)
		);
	`},
	{"leaderboard", `
		CREATE TABLE IF NOT EXISTS leaderboard (
			user_id BIGINT PRIMARY KEY REFERENCES users(telegram_id) ON DELETE CASCADE,
			rating INT NOT NULL DEFAULT 1000,
			wins INT NOT NULL DEFAULT 0,
			losses INT NOT NULL DEFAULT 0,
			streak INT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_rating ON leaderboard(rating DESC);
	`},
	{"battle_sessions", `
		CREATE TABLE IF NOT EXISTS battle_sessions (
			id TEXT PRIMARY KEY,
			player_a BIGINT NOT NULL,
			player_b BIGINT,
			status VARCHAR(16) NOT NULL,
			state JSONB,
			turn_number INT NOT NULL DEFAULT 0,
			turn_deadline TIMESTAMPTZ,
			winner_id BIGINT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_battle_sessions_waiting ON battle_sessions(created_at) WHERE status = 'waiting';
		CREATE INDEX IF NOT EXISTS idx_battle_sessions_deadline ON battle_sessions(turn_deadline) WHERE status = 'active';
		CREATE INDEX IF NOT EXISTS idx_battle_sessions_players ON battle_sessions(player_a, player_b);
	`},
	{"battles", `
		CREATE TABLE IF NOT EXISTS battles (
			id TEXT PRIMARY KEY,
			player_a BIGINT NOT NULL,
			player_b BIGINT NOT NULL,
			winner_id BIGINT,
			turns JSONB NOT NULL DEFAULT '[]',
			rating_change_a INT NOT NULL DEFAULT 0,
			rating_change_b INT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
	`},
	{"gacha_pools", `
		CREATE TABLE IF NOT EXISTS gacha_pools (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(64) NOT NULL,
			cost_gems BIGINT NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			items JSONB NOT NULL DEFAULT '[]'
		);
	`},
	{"gacha_history", `
		CREATE TABLE IF NOT EXISTS gacha_history (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(telegram_id) ON DELETE CASCADE,
			pool_id VARCHAR(64) NOT NULL,
			rarity VARCHAR(16) NOT NULL,
			equipment_id VARCHAR(64) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT clock_timestamp()
		);
		CREATE INDEX IF NOT EXISTS idx_gacha_history_user_pool ON gacha_history(user_id, pool_id, id DESC);
	`},
}

// Migrate creates the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db DBTX) error {
	log.Info().Msg("Running database migrations...")
	for i, m := range migrations {
		if _, err := db.Exec(ctx, m.sql); err != nil {
			return fmt.Errorf("migration %d (%s): %w", i+1, m.name, err)
		}
		log.Debug().Int("migration", i+1).Str("table", m.name).Msg("Migration applied")
	}
	log.Info().Int("count", len(migrations)).Msg("All migrations completed successfully")
	return nil
}
