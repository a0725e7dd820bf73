package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"bookstore-api/internal/infrastructure/database"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config chứa toàn bộ application configuration.
// Struct này được populate từ environment variables (.env được load ở main).
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database *database.DBConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, test, production
	Port        string
	Version     string
}

type LogConfig struct {
	Level string
}

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Load đọc config từ environment variables
func Load() (*Config, error) {
	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore API"),
			Environment: Environment(),
			Port:        getEnv("APP_PORT", "3000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Database: dbConfig,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.App,
		validation.Field(&c.App.Environment,
			validation.Required,
			validation.In(EnvDevelopment, EnvTest, EnvProduction).Error("must be development, test or production"),
		),
		validation.Field(&c.App.Port, validation.Required),
	); err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if c.Database == nil {
		return fmt.Errorf("database config is missing")
	}

	db := c.Database
	if err := validation.ValidateStruct(db,
		validation.Field(&db.URL, validation.Required),
		validation.Field(&db.MaxConns, validation.Min(int32(1))),
		validation.Field(&db.MinConns, validation.Min(int32(0)), validation.Max(db.MaxConns).Error("must not exceed DB_MAX_CONNS")),
		validation.Field(&db.MaxRetries, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

// Environment trả về APP_ENV, mặc định development
func Environment() string {
	return getEnv("APP_ENV", EnvDevelopment)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
