package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/regtech-tools/y9c-dashboard/internal/config"
	"github.com/regtech-tools/y9c-dashboard/internal/db"
	router "github.com/regtech-tools/y9c-dashboard/internal/http"
	"github.com/regtech-tools/y9c-dashboard/internal/http/handlers"
	rl "github.com/regtech-tools/y9c-dashboard/internal/http/rate_limiter"
	"github.com/regtech-tools/y9c-dashboard/internal/redissvc"
	"github.com/regtech-tools/y9c-dashboard/internal/repo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	go rl.StartVisitorCleanupLoop()

	ctx := context.Background()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("⚠️ Redis unreachable, caching disabled: %v", err)
		} else {
			defer rdb.Close()
			handlers.SetCache(redissvc.NewCache(rdb, ctx, cfg.CacheTTL))
		}
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	handlers.SetFilingRepo(repo.NewPostgresFilingRepository(database))
	handlers.SetMDRMRepo(repo.NewPostgresMDRMRepository(database))
	handlers.SetRowLimit(cfg.RowLimit)

	r := router.NewRouter()
	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Printf("✅ Dashboard running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}
