// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Bot         BotConfig         `mapstructure:"bot"`
	HTTP        HTTPConfig        `mapstructure:"http"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Admin       AdminConfig       `mapstructure:"admin"`
	Whitelist   WhitelistConfig   `mapstructure:"whitelist"`
	Battle      BattleConfig      `mapstructure:"battle"`
	Matchmaking MatchmakingConfig `mapstructure:"matchmaking"`
	Gacha       GachaConfig       `mapstructure:"gacha"`
	Economy     EconomyConfig     `mapstructure:"economy"`
	Settlement  SettlementConfig  `mapstructure:"settlement"`
}

// BotConfig holds Telegram bot configuration. An empty token disables the bot.
type BotConfig struct {
	Token string `mapstructure:"token"`
}

// HTTPConfig holds the JSON API listener configuration.
type HTTPConfig struct {
	Addr        string   `mapstructure:"addr"`
	Mode        string   `mapstructure:"mode"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// DatabaseConfig holds PostgreSQL connection configuration.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// RedisConfig holds the battle snapshot cache configuration. An empty addr disables caching.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	StateTTL time.Duration `mapstructure:"state_ttl"`
}

// AdminConfig holds admin user configuration.
type AdminConfig struct {
	IDs []int64 `mapstructure:"ids"`
}

// WhitelistConfig holds chat whitelist configuration.
type WhitelistConfig struct {
	Chats []int64 `mapstructure:"chats"`
}

// BattleConfig holds turn timing and write-conflict settings.
type BattleConfig struct {
	TurnTimeout     time.Duration `mapstructure:"turn_timeout"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
	MaxWriteRetries int           `mapstructure:"max_write_retries"`
}

// MatchmakingConfig holds queue settings.
type MatchmakingConfig struct {
	RatingWindow    int           `mapstructure:"rating_window"`
	CandidateWindow int           `mapstructure:"candidate_window"`
	WaitingTTL      time.Duration `mapstructure:"waiting_ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// GachaConfig holds pull settings.
type GachaConfig struct {
	HistoryWindow int `mapstructure:"history_window"`
}

// EconomyConfig holds account defaults.
type EconomyConfig struct {
	StartingGems int64 `mapstructure:"starting_gems"`
}

// SettlementConfig holds post-battle reward settings.
type SettlementConfig struct {
	BaseExp     int   `mapstructure:"base_exp"`
	ExpPerTurn  int   `mapstructure:"exp_per_turn"`
	GoldReward  int64 `mapstructure:"gold_reward"`
	ExpPerLevel int   `mapstructure:"exp_per_level"`
	MaxLevel    int   `mapstructure:"max_level"`
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the config directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// e.g., BOT_TOKEN, DATABASE_HOST, REDIS_ADDR, BATTLE_TURN_TIMEOUT
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional - env vars can provide all config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.token", "")

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.mode", "release")
	v.SetDefault("http.cors_origins", []string{"*"})

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "arena")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "arena")
	v.SetDefault("database.pool_size", 20)
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "30m")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.state_ttl", "10m")

	v.SetDefault("battle.turn_timeout", "30s")
	v.SetDefault("battle.sweep_interval", "5s")
	v.SetDefault("battle.max_write_retries", 3)

	v.SetDefault("matchmaking.rating_window", 100)
	v.SetDefault("matchmaking.candidate_window", 20)
	v.SetDefault("matchmaking.waiting_ttl", "10m")
	v.SetDefault("matchmaking.cleanup_interval", "1m")

	v.SetDefault("gacha.history_window", 50)

	v.SetDefault("economy.starting_gems", 100)

	v.SetDefault("settlement.base_exp", 30)
	v.SetDefault("settlement.exp_per_turn", 2)
	v.SetDefault("settlement.gold_reward", 20)
	v.SetDefault("settlement.exp_per_level", 100)
	v.SetDefault("settlement.max_level", 50)
}

// IsAdmin checks if a user ID is in the admin list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.Admin.IDs {
		if id == userID {
			return true
		}
	}
	return false
}

// IsChatAllowed checks if a chat ID is in the whitelist.
func (c *Config) IsChatAllowed(chatID int64) bool {
	// Empty whitelist means all chats are allowed
	if len(c.Whitelist.Chats) == 0 {
		return true
	}
	for _, id := range c.Whitelist.Chats {
		if id == chatID {
			return true
		}
	}
	return false
}
