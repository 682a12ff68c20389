package main

import (
	"context"
	"net/http"

	"budget-server/src/api"
	"budget-server/src/config"
	"budget-server/src/db"
	"budget-server/src/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info")
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}
	log := logger.New(cfg.LogLevel)

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("DB connection failed")
	}
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}
	if err := db.InitCache(); err != nil {
		log.Fatal().Err(err).Msg("cache init failed")
	}

	// Router
	router := api.NewRouter(pool, cfg, log)

	log.Info().Str("port", cfg.Port).Msg("API server running")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
