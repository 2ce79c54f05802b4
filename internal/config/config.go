package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries everything read from the environment at startup.
type Config struct {
	DatabaseURL string
	RedisAddr   string // empty disables the query cache
	Port        int
	CacheTTL    time.Duration
	RowLimit    int // hard cap on rows returned per fetch
}

// Load reads configuration once at startup. A .env file next to the binary
// is honored when present; real environment variables win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", 8080)
	v.SetDefault("CACHE_TTL_SECONDS", 600)
	v.SetDefault("ROW_LIMIT", 5000)

	cfg := Config{
		DatabaseURL: v.GetString("DATABASE_URL"),
		RedisAddr:   v.GetString("REDIS_ADDR"),
		Port:        v.GetInt("PORT"),
		CacheTTL:    time.Duration(v.GetInt("CACHE_TTL_SECONDS")) * time.Second,
		RowLimit:    v.GetInt("ROW_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	if cfg.RowLimit <= 0 {
		return Config{}, fmt.Errorf("ROW_LIMIT must be positive, got %d", cfg.RowLimit)
	}
	return cfg, nil
}
