package container

import (
	"testing"
	"time"

	"bookstore-api/internal/config"
	"bookstore-api/internal/infrastructure/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	assert.Error(t, err)
}

func TestNewContainer_UnreachableDatabase(t *testing.T) {
	cfg := &config.Config{
		App: config.AppConfig{Environment: config.EnvTest, Port: "3000"},
		Database: &database.DBConfig{
			URL:            "postgresql://nobody@127.0.0.1:1/books_test?sslmode=disable",
			MaxConns:       1,
			MaxRetries:     1,
			RetryDelay:     time.Millisecond,
			ConnectTimeout: 500 * time.Millisecond,
		},
	}

	c, err := NewContainer(cfg)
	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "failed to connect to database")
}

func TestCleanup_Idempotent(t *testing.T) {
	c := &Container{DB: database.NewPostgresDB(&database.DBConfig{})}

	assert.NotPanics(t, func() {
		c.Cleanup()
		c.Cleanup()
	})
	assert.Nil(t, c.DB.Pool)
}
