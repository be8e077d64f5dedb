package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Battle.TurnTimeout)
	assert.Equal(t, 3, cfg.Battle.MaxWriteRetries)
	assert.Equal(t, 100, cfg.Matchmaking.RatingWindow)
	assert.Equal(t, 20, cfg.Matchmaking.CandidateWindow)
	assert.Equal(t, 10*time.Minute, cfg.Matchmaking.WaitingTTL)
	assert.Equal(t, 50, cfg.Gacha.HistoryWindow)
	assert.Equal(t, int64(100), cfg.Economy.StartingGems)
	assert.Equal(t, 30, cfg.Settlement.BaseExp)
	assert.Equal(t, 2, cfg.Settlement.ExpPerTurn)
	assert.Equal(t, int64(20), cfg.Settlement.GoldReward)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	data := []byte(`
bot:
  token: "file-token"
database:
  host: db.internal
admin:
  ids: [42, 7]
battle:
  turn_timeout: 45s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o600))
	t.Setenv("DATABASE_HOST", "env-host")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-token", cfg.Bot.Token)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 45*time.Second, cfg.Battle.TurnTimeout)
	assert.True(t, cfg.IsAdmin(42))
	assert.False(t, cfg.IsAdmin(1))
}

func TestIsChatAllowed(t *testing.T) {
	open := &Config{}
	assert.True(t, open.IsChatAllowed(-100))

	closed := &Config{Whitelist: WhitelistConfig{Chats: []int64{-100}}}
	assert.True(t, closed.IsChatAllowed(-100))
	assert.False(t, closed.IsChatAllowed(-200))
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "h", Port: 5433, User: "u", Password: "p", Name: "n"}
	assert.Equal(t, "postgres://u:p@h:5433/n?sslmode=disable", d.DSN())
}
