// Package migrations embeds the goose SQL migrations for the books schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Dir là thư mục migrations bên trong FS
const Dir = "."

// Setup trỏ goose vào embedded FS với dialect postgres
func Setup() error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Up apply toàn bộ migrations chưa chạy
func Up(ctx context.Context, db *sql.DB) error {
	if err := Setup(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, Dir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
