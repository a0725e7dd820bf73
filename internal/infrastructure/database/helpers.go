package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Ping kiểm tra database còn reachable không, timeout 5s
func (db *PostgresDB) Ping(ctx context.Context) error {
	if db.Pool == nil {
		return ErrPoolNotInitialized
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.Pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close đóng toàn bộ connections trong pool.
// Idempotent: gọi nhiều lần chỉ close một lần.
func (db *PostgresDB) Close() {
	if db.Pool == nil {
		log.Debug().Msg("[DATABASE] Pool is already closed or was never initialized")
		return
	}

	log.Info().Msg("[DATABASE] Closing database connection pool...")
	db.Pool.Close()
	db.Pool = nil
	log.Info().Msg("[DATABASE] Connection pool closed successfully")
}

// PoolStats là snapshot thống kê của pool, trả về trong GET /health
type PoolStats struct {
	TotalConns    int32 `json:"total_conns"`
	IdleConns     int32 `json:"idle_conns"`
	AcquiredConns int32 `json:"acquired_conns"`
	MaxConns      int32 `json:"max_conns"`
	AcquireCount  int64 `json:"acquire_count"`
}

// Stats trả về snapshot của connection pool statistics
func (db *PostgresDB) Stats() (*PoolStats, error) {
	if db.Pool == nil {
		return nil, ErrPoolNotInitialized
	}

	raw := db.Pool.Stat()
	return &PoolStats{
		TotalConns:    raw.TotalConns(),
		IdleConns:     raw.IdleConns(),
		AcquiredConns: raw.AcquiredConns(),
		MaxConns:      raw.MaxConns(),
		AcquireCount:  raw.AcquireCount(),
	}, nil
}
