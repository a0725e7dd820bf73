package config

import (
	"time"

	"bookstore-api/internal/infrastructure/database"
)

const (
	DefaultDatabaseURL     = "postgresql://localhost/books"
	DefaultTestDatabaseURL = "postgresql://localhost/books_test"
)

// ResolveDatabaseURL là policy duy nhất để chọn connection string:
//
//	APP_ENV=test -> TEST_DATABASE_URL, fallback DefaultTestDatabaseURL
//	còn lại      -> DATABASE_URL, fallback DefaultDatabaseURL
func ResolveDatabaseURL() string {
	if Environment() == EnvTest {
		return getEnv("TEST_DATABASE_URL", DefaultTestDatabaseURL)
	}
	return getEnv("DATABASE_URL", DefaultDatabaseURL)
}

// LoadDatabaseConfig đọc config từ environment variables và trả về DBConfig
func LoadDatabaseConfig() (*database.DBConfig, error) {
	maxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}

	minConns, err := getEnvInt("DB_MIN_CONNS", 0)
	if err != nil {
		return nil, err
	}

	maxRetries, err := getEnvInt("DB_MAX_RETRIES", 5)
	if err != nil {
		return nil, err
	}

	maxConnLifetime, err := getEnvDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute)
	if err != nil {
		return nil, err
	}

	maxConnIdleTime, err := getEnvDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute)
	if err != nil {
		return nil, err
	}

	healthCheckPeriod, err := getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute)
	if err != nil {
		return nil, err
	}

	retryDelay, err := getEnvDuration("DB_RETRY_DELAY", time.Second)
	if err != nil {
		return nil, err
	}

	connectTimeout, err := getEnvDuration("DB_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	return &database.DBConfig{
		URL:               ResolveDatabaseURL(),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   maxConnLifetime,
		MaxConnIdleTime:   maxConnIdleTime,
		HealthCheckPeriod: healthCheckPeriod,
		MaxRetries:        maxRetries,
		RetryDelay:        retryDelay,
		ConnectTimeout:    connectTimeout,
	}, nil
}
