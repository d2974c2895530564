package schema

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ribgsilva/notes-app/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateDrop(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Create(ctx, db, sys.DriverSQLite))

	ms, err := Status(ctx, db, sys.DriverSQLite)
	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, int64(1), ms[0].Version)
	assert.True(t, ms[0].Applied)

	_, err = db.ExecContext(ctx, "INSERT INTO notes (title, content, created_at, updated_at) VALUES ('a', 'b', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)")
	require.NoError(t, err)

	// applying again is a no-op
	require.NoError(t, Create(ctx, db, sys.DriverSQLite))

	require.NoError(t, Drop(ctx, db, sys.DriverSQLite))
	_, err = db.ExecContext(ctx, "SELECT id FROM notes")
	assert.Error(t, err)

	ms, err = Status(ctx, db, sys.DriverSQLite)
	require.NoError(t, err)
	assert.False(t, ms[0].Applied)
}

func TestUnknownDriver(t *testing.T) {
	err := Create(context.Background(), openSQLite(t), sys.DriverMongo)
	assert.ErrorContains(t, err, `no migrations for driver "mongo"`)
}
