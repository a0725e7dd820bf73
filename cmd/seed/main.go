package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookstore-api/db/seed"
	"bookstore-api/internal/config"
	"bookstore-api/internal/domains/book/repository"
	"bookstore-api/internal/infrastructure/database"
	"bookstore-api/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()
	logger.Init(config.Environment(), os.Getenv("LOG_LEVEL"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:  "seed",
		Usage: "Insert 4 sample books vào bảng books",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "reset",
				Usage: "Xóa toàn bộ books trước khi seed",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c.Context, c.Bool("reset"))
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error("Seed failed", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, reset bool) error {
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return err
	}
	defer db.Close()

	var inserted int
	if reset {
		// DELETE + insert trong cùng transaction: lỗi giữa chừng thì bảng giữ nguyên
		err = db.WithTransaction(ctx, func(q database.Querier) error {
			tag, err := q.Exec(ctx, `DELETE FROM books`)
			if err != nil {
				return fmt.Errorf("failed to reset books: %w", err)
			}
			log.Info().Int64("deleted", tag.RowsAffected()).Msg("Books table cleared")

			inserted, err = seed.Run(ctx, repository.NewPostgresRepository(q))
			return err
		})
	} else {
		inserted, err = seed.Run(ctx, repository.NewPostgresRepository(db.Pool))
	}
	if err != nil {
		return err
	}

	logger.Info("Seed completed", map[string]interface{}{
		"inserted": inserted,
		"total":    len(seed.Books()),
	})
	return nil
}
