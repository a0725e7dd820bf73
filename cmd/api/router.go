package main

import (
	"context"
	"net/http"
	"time"

	_ "bookstore-api/docs"
	"bookstore-api/internal/config"
	"bookstore-api/internal/shared/middleware"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/container"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupBookRoutes(router, c)

	if c.Config.App.Environment != config.EnvProduction {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(router *gin.Engine, c *container.Container) {
	books := router.Group("/books")
	{
		books.GET("", c.BookHandler.ListBooks)
		books.POST("", c.BookHandler.CreateBook)
		books.GET("/:isbn", c.BookHandler.GetBook)
		books.PUT("/:isbn", c.BookHandler.UpdateBook)
		books.DELETE("/:isbn", c.BookHandler.DeleteBook)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		status := http.StatusOK

		if appCtx.DB == nil {
			dbStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				log.Warn().Err(err).Msg("Health check: database unreachable")
				dbStatus = "unreachable"
			} else if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		if dbStatus != "ok" {
			health["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}
		health["services"] = gin.H{"database": dbStatus}

		c.JSON(status, health)
	}
}
