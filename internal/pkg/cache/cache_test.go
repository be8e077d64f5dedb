package cache

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"pixel-arena/internal/config"
	"pixel-arena/internal/game/battle"
	"pixel-arena/internal/model"
)

func checkDockerAvailable() bool {
	return exec.Command("docker", "info").Run() == nil
}

func setupRedis(t *testing.T) (*redis.Client, func()) {
	if !checkDockerAvailable() {
		t.Skip("Docker is not available, skipping integration test")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: endpoint})
	require.NoError(t, rdb.Ping(ctx).Err())

	return rdb, func() {
		_ = rdb.Close()
		_ = container.Terminate(ctx)
	}
}

func session(id string, turn int) *model.BattleSession {
	b := int64(2)
	return &model.BattleSession{
		ID: id, PlayerA: 1, PlayerB: &b, Status: model.SessionActive, TurnNumber: turn,
		State: &battle.State{ID: id, Turn: battle.SideA, TurnNumber: turn, Status: battle.StatusActive},
	}
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	c := NewRedisCache(rdb, time.Minute)

	_, ok := c.Get(ctx, "b1")
	assert.False(t, ok)

	c.Set(ctx, session("b1", 3))
	got, ok := c.Get(ctx, "b1")
	require.True(t, ok)
	assert.Equal(t, 3, got.TurnNumber)
	require.NotNil(t, got.State)
	assert.Equal(t, battle.SideA, got.State.Turn)

	ttl, err := rdb.TTL(ctx, key("b1")).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	c.Delete(ctx, "b1")
	_, ok = c.Get(ctx, "b1")
	assert.False(t, ok)
}

func TestRedisCache_IgnoresOlderTurn(t *testing.T) {
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	c := NewRedisCache(rdb, time.Minute)

	c.Set(ctx, session("b1", 5))
	c.Set(ctx, session("b1", 4))
	got, ok := c.Get(ctx, "b1")
	require.True(t, ok)
	assert.Equal(t, 5, got.TurnNumber)
}

func TestRedisCache_CorruptEntryIsDropped(t *testing.T) {
	rdb, cleanup := setupRedis(t)
	defer cleanup()

	ctx := context.Background()
	c := NewRedisCache(rdb, time.Minute)
	require.NoError(t, rdb.Set(ctx, key("b1"), "{not json", time.Minute).Err())

	_, ok := c.Get(ctx, "b1")
	assert.False(t, ok)
	n, err := rdb.Exists(ctx, key("b1")).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestNew_DisabledWithoutAddr(t *testing.T) {
	c, closeFn, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	defer closeFn()

	_, isNop := c.(Nop)
	assert.True(t, isNop)
	c.Set(context.Background(), session("b1", 1))
	_, ok := c.Get(context.Background(), "b1")
	assert.False(t, ok)
}
