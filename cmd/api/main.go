package main

import (
	"os"

	"github.com/devhamz/shoprex-golang/internal/config"
	"github.com/devhamz/shoprex-golang/internal/database"
	"github.com/devhamz/shoprex-golang/internal/handlers"
	"github.com/devhamz/shoprex-golang/internal/routes"
	"github.com/devhamz/shoprex-golang/internal/uploads"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		logger.Warn().Msg("could not load .env file, relying on system environment variables")
	}

	// 1. --- Configuration (validated eagerly, fail fast) ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// 2. --- Database Connection Pool ---
	// A failed ping inside Open is logged, not fatal: the server starts
	// anyway and queries fail until the database is reachable.
	db, err := database.Open(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	// 3. --- Image Upload Strategy ---
	var store uploads.Store
	if cfg.UploadStrategy == config.StrategyInline {
		store = uploads.InlineStore{}
	} else {
		store, err = uploads.NewDiskStore(cfg.UploadDir, cfg.BaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to prepare upload directory")
		}
	}

	// --- Application Setup ---
	app := &handlers.Handlers{
		DB:      db,
		Uploads: store,
		Log:     logger,
	}

	router := routes.SetupRouter(app, cfg)

	// --- Start Server ---
	logger.Info().Str("port", cfg.Port).Str("upload_strategy", cfg.UploadStrategy).Msg("server running")
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
