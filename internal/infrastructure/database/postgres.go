package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog/log"
)

// DBConfig chứa connection string đã resolve và các thông số của pool.
// Connection string do config.LoadDatabaseConfig quyết định (test/env/default).
type DBConfig struct {
	URL string

	// Connection Pool Configuration
	MaxConns          int32         // Số connections tối đa trong pool
	MinConns          int32         // Số connections tối thiểu luôn sẵn sàng
	MaxConnLifetime   time.Duration // Thời gian tối đa một connection tồn tại
	MaxConnIdleTime   time.Duration // Thời gian idle tối đa trước khi đóng connection
	HealthCheckPeriod time.Duration // Tần suất pool kiểm tra idle connections

	// Startup Retry Configuration (chỉ dùng khi process khởi động)
	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration

	// LogLevel của pgx tracer, mặc định warn: chỉ log query lỗi và connection lỗi
	LogLevel tracelog.LogLevel
}

// PostgresDB quản lý connection pool và lifecycle của database.
// Được tạo một lần khi process start và inject vào repository qua container.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	Config *DBConfig
}

var ErrPoolNotInitialized = errors.New("database pool is not initialized")

// configurePool parse connection string và áp dụng pool settings
func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(db.Config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// === POOL SIZE ===
	if db.Config.MaxConns > 0 {
		config.MaxConns = db.Config.MaxConns
	}
	config.MinConns = db.Config.MinConns

	// === CONNECTION LIFECYCLE ===
	if db.Config.MaxConnLifetime > 0 {
		config.MaxConnLifetime = db.Config.MaxConnLifetime
	}
	if db.Config.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = db.Config.MaxConnIdleTime
	}
	if db.Config.HealthCheckPeriod > 0 {
		config.HealthCheckPeriod = db.Config.HealthCheckPeriod
	}

	// === TIMEOUTS ===
	if db.Config.ConnectTimeout > 0 {
		config.ConnConfig.ConnectTimeout = db.Config.ConnectTimeout
	}

	// === ERROR LISTENER ===
	// Query lỗi và connection lỗi (kể cả idle connection bị server đóng)
	// đi qua tracer và được log bằng zerolog, không làm crash process.
	level := db.Config.LogLevel
	if level == 0 {
		level = tracelog.LogLevelWarn
	}
	config.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   NewZerologAdapter(log.Logger),
		LogLevel: level,
	}

	return config, nil
}

// connectWithRetry retry với exponential backoff lúc khởi động.
// Request path không bao giờ retry.
func (db *PostgresDB) connectWithRetry(ctx context.Context, config *pgxpool.Config) (*pgxpool.Pool, error) {
	var lastErr error

	attempts := db.Config.MaxRetries
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		log.Info().Int("attempt", attempt).Int("max", attempts).Msg("[DATABASE] Connection attempt")

		connectCtx, cancel := context.WithTimeout(ctx, db.connectTimeout())
		pool, err := pgxpool.NewWithConfig(connectCtx, config)
		if err == nil {
			err = pool.Ping(connectCtx)
			if err != nil {
				pool.Close()
			}
		}
		cancel()

		if err == nil {
			log.Info().Int("attempt", attempt).Msg("[DATABASE] Successfully connected")
			return pool, nil
		}

		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Msg("[DATABASE] Attempt failed")

		if attempt < attempts {
			// delay = base_delay * 2^(attempt-1)
			delay := db.Config.RetryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().Dur("delay", delay).Msg("[DATABASE] Retrying")

			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, fmt.Errorf("connection cancelled: %w", ctx.Err())
			}
		}
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", attempts, lastErr)
}

func (db *PostgresDB) connectTimeout() time.Duration {
	if db.Config.ConnectTimeout > 0 {
		return db.Config.ConnectTimeout
	}
	return 10 * time.Second
}

// Connect: configure -> retry -> verify
func (db *PostgresDB) Connect(ctx context.Context) error {
	log.Info().Msg("[DATABASE] Initializing PostgreSQL connection...")

	config, err := db.configurePool()
	if err != nil {
		return fmt.Errorf("pool configuration failed: %w", err)
	}

	pool, err := db.connectWithRetry(ctx, config)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	db.Pool = pool

	log.Info().Msg("[DATABASE] PostgreSQL connection established successfully")
	return nil
}

// HealthCheck verify database connectivity, dùng cho GET /health
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if err := db.Ping(ctx); err != nil {
		return err
	}

	stats := db.Pool.Stat()
	log.Debug().
		Int32("total", stats.TotalConns()).
		Int32("idle", stats.IdleConns()).
		Int32("acquired", stats.AcquiredConns()).
		Msg("[DATABASE] Health check passed")

	return nil
}

// NewPostgresDB tạo instance mới, Pool được set khi Connect() thành công
func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{
		Config: config,
		Pool:   nil,
	}
}
