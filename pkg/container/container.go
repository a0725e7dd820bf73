package container

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bookstore-api/internal/config"
	"bookstore-api/internal/infrastructure/database"

	bookHandler "bookstore-api/internal/domains/book/handler"
	bookRepo "bookstore-api/internal/domains/book/repository"
	bookService "bookstore-api/internal/domains/book/service"

	"github.com/rs/zerolog/log"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application.
// Lifecycle: Singleton, tạo một lần khi process start.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	BookRepo bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	BookService bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	BookHandler *bookHandler.Handler

	cleanupOnce sync.Once
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer tạo và initialize toàn bộ dependency graph.
//
// Thứ tự initialization:
// 1. Infrastructure (DB) - phụ thuộc Config
// 2. Repositories - phụ thuộc DB
// 3. Services - phụ thuộc Repositories
// 4. Handlers - phụ thuộc Services
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	log.Info().Str("env", cfg.App.Environment).Msg("Initializing DI container")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: INITIALIZE DATABASE
	// ========================================
	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 2-4: DOMAIN LAYERS
	// ========================================
	c.wire()

	log.Info().Msg("DI container initialized successfully")
	return c, nil
}

// wire nối repository -> service -> handler trên pool hiện tại
func (c *Container) wire() {
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
	c.BookService = bookService.NewService(c.BookRepo)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
}

// Cleanup dọn dẹp resources khi shutdown.
// Pool chỉ bị close đúng một lần dù Cleanup được gọi nhiều lần.
func (c *Container) Cleanup() {
	c.cleanupOnce.Do(func() {
		log.Info().Msg("Cleaning up container resources...")

		if c.DB != nil {
			c.DB.Close()
		}

		log.Info().Msg("Container cleanup completed")
	})
}
