package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookstore-api/db/migrations"
	"bookstore-api/internal/config"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/pkg/logger"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()
	logger.Init(config.Environment(), os.Getenv("LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Error("Migration failed", err)
		stop()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "migrate",
		Usage: "Quản lý schema của bảng books (goose, embedded SQL)",
		Commands: []*cli.Command{
			gooseCommand("up", "Apply toàn bộ migrations chưa chạy"),
			gooseCommand("down", "Rollback migration gần nhất"),
			gooseCommand("status", "In trạng thái từng migration"),
			gooseCommand("reset", "Rollback toàn bộ migrations"),
			gooseCommand("version", "In version hiện tại của schema"),
		},
	}
}

func gooseCommand(name, usage string) *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: usage,
		Action: func(c *cli.Context) error {
			return run(c.Context, name)
		},
	}
}

// run mở pool theo cùng config với API rồi chạy goose trên *sql.DB bọc pool đó
func run(ctx context.Context, command string) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	defer db.Close()

	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	if err := migrations.Setup(); err != nil {
		return err
	}

	log.Info().Str("command", command).Msg("Running migrations")
	if err := goose.RunContext(ctx, command, sqlDB, migrations.Dir); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	log.Info().Str("command", command).Msg("Migrations completed")
	return nil
}
