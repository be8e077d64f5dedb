// Package cache keeps battle session snapshots in Redis so spectators and polling
// clients read the current state without a database round trip. PostgreSQL stays the
// source of truth: a miss or a Redis failure falls back to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"pixel-arena/internal/config"
	"pixel-arena/internal/model"
)

const keyPrefix = "arena:battle:"

// BattleCache stores session snapshots keyed by battle id.
type BattleCache interface {
	Get(ctx context.Context, id string) (*model.BattleSession, bool)
	Set(ctx context.Context, s *model.BattleSession)
	Delete(ctx context.Context, id string)
}

// RedisCache is a BattleCache backed by Redis.
type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New connects to Redis when cfg.Addr is set and returns a no-op cache otherwise.
func New(ctx context.Context, cfg config.RedisConfig) (BattleCache, func(), error) {
	if cfg.Addr == "" {
		log.Info().Msg("Redis address not configured, battle cache disabled")
		return Nop{}, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Info().Str("addr", cfg.Addr).Msg("Connected to Redis")

	return NewRedisCache(rdb, cfg.StateTTL), func() { _ = rdb.Close() }, nil
}

// NewRedisCache wraps an existing client. A non-positive ttl defaults to ten minutes.
func NewRedisCache(rdb *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func key(id string) string { return keyPrefix + id }

// Get returns the cached snapshot, if any.
func (c *RedisCache) Get(ctx context.Context, id string) (*model.BattleSession, bool) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Str("battle_id", id).Msg("Battle cache read failed")
		}
		return nil, false
	}
	var s model.BattleSession
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Warn().Err(err).Str("battle_id", id).Msg("Dropping undecodable battle snapshot")
		c.Delete(ctx, id)
		return nil, false
	}
	return &s, true
}

// Set writes the snapshot with the configured ttl. Snapshots never move backwards: a
// write carrying an older turn number than the cached one is ignored.
func (c *RedisCache) Set(ctx context.Context, s *model.BattleSession) {
	if cur, ok := c.Get(ctx, s.ID); ok && cur.TurnNumber > s.TurnNumber {
		return
	}
	raw, err := json.Marshal(s)
	if err != nil {
		log.Warn().Err(err).Str("battle_id", s.ID).Msg("Failed to encode battle snapshot")
		return
	}
	if err := c.rdb.Set(ctx, key(s.ID), raw, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("battle_id", s.ID).Msg("Battle cache write failed")
	}
}

// Delete evicts a snapshot.
func (c *RedisCache) Delete(ctx context.Context, id string) {
	if err := c.rdb.Del(ctx, key(id)).Err(); err != nil {
		log.Warn().Err(err).Str("battle_id", id).Msg("Battle cache delete failed")
	}
}

// Nop is a BattleCache that stores nothing.
type Nop struct{}

func (Nop) Get(context.Context, string) (*model.BattleSession, bool) { return nil, false }
func (Nop) Set(context.Context, *model.BattleSession)                {}
func (Nop) Delete(context.Context, string)                           {}
