package migrations

import (
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMigrations(t *testing.T) {
	require.NoError(t, Setup())

	migrations, err := goose.CollectMigrations(Dir, 0, goose.MaxVersion)
	require.NoError(t, err)

	require.Len(t, migrations, 1)
	assert.Equal(t, int64(1), migrations[0].Version)
}

func TestBooksMigrationDefinesPrimaryKey(t *testing.T) {
	content, err := FS.ReadFile("00001_create_books.sql")
	require.NoError(t, err)

	sql := string(content)
	assert.Contains(t, sql, "-- +goose Up")
	assert.Contains(t, sql, "-- +goose Down")
	assert.Contains(t, sql, "isbn       TEXT PRIMARY KEY")
}
