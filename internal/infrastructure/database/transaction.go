package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

var _ Querier = (pgx.Tx)(nil)

// TxFunc nhận Querier gắn với transaction, repository dùng được trực tiếp
type TxFunc func(q Querier) error

// WithTransaction chạy fn trong một transaction.
// fn trả về error hoặc panic => rollback; thành công => commit.
func (db *PostgresDB) WithTransaction(ctx context.Context, fn TxFunc) (err error) {
	if db.Pool == nil {
		return ErrPoolNotInitialized
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				log.Warn().Err(rbErr).Msg("[DATABASE] Rollback failed")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
