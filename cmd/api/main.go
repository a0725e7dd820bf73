package main

import (
	"os"

	"bookstore-api/internal/config"
	"bookstore-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title        Bookstore Inventory API
// @version      1.0
// @description  CRUD API cho catalog sách, lưu trong PostgreSQL.
// @BasePath     /
func main() {
	// ========================================
	// LOAD ENVIRONMENT VARIABLES
	// ========================================
	// Load từ .env file (development/local)
	// Production sẽ dùng system environment variables
	envLoadErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(config.Environment(), "info")
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	logger.Init(cfg.App.Environment, cfg.Log.Level)
	if envLoadErr != nil {
		logger.Warn("No .env file found, using system environment variables", nil)
	}

	// ========================================
	// SET GIN MODE
	// ========================================
	switch cfg.App.Environment {
	case config.EnvProduction:
		gin.SetMode(gin.ReleaseMode)
	case config.EnvTest:
		gin.SetMode(gin.TestMode)
	}

	log.Info().Str("env", cfg.App.Environment).Msg("Environment")

	if err := Serve(cfg); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		os.Exit(1)
	}
}
