package note

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-app/persistence/v1/schema"
	"github.com/ribgsilva/notes-app/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

var testCfg = Config{
	OperationTimeout:      5 * time.Second,
	CacheOperationTimeout: 5 * time.Second,
	CacheTTL:              time.Hour,
}

type storer interface {
	FindAll(ctx context.Context) ([]Note, error)
	FindByID(ctx context.Context, id uint64) (Note, bool, error)
	Save(ctx context.Context, n Note) (Note, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
	Ping(ctx context.Context) error
}

func newSQLiteStore(t *testing.T, cache *redis.Client) (*Store, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, schema.Create(context.Background(), db, sys.DriverSQLite))

	return NewStore(zap.NewNop().Sugar(), db, cache, testCfg), db
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return s, rdb
}

func TestStore(t *testing.T) {
	s, _ := newSQLiteStore(t, nil)
	testContract(t, s)
}

func TestStoreCached(t *testing.T) {
	_, rdb := newMiniredis(t)
	s, _ := newSQLiteStore(t, rdb)
	testContract(t, s)
}

func TestMongoStore(t *testing.T) {
	url := os.Getenv("NOTES_TEST_MONGO_URL")
	if url == "" {
		t.Skip("NOTES_TEST_MONGO_URL not set")
	}
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	db := client.Database(fmt.Sprintf("notes_test_%d", time.Now().UnixNano()))
	t.Cleanup(func() { _ = db.Drop(context.Background()) })

	testContract(t, NewMongoStore(zap.NewNop().Sugar(), db, testCfg))
}

func testContract(t *testing.T, s storer) {
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	first, err := s.Save(ctx, Note{Title: "Groceries", Content: "Milk, eggs"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := s.Save(ctx, Note{Title: "Todo", Content: "Laundry"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, ok, err := s.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first, got)

	// saving what was read changes nothing
	again, err := s.Save(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, got, again)
	got, _, err = s.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	first.Content = "Milk, eggs, bread"
	_, err = s.Save(ctx, first)
	require.NoError(t, err)
	got, _, err = s.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Milk, eggs, bread", got.Content)

	all, err = s.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Note{first, second}, all)

	exists, err := s.ExistsByID(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DeleteByID(ctx, second.ID))

	exists, err = s.ExistsByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	_, ok, err = s.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting a missing note is a no-op
	require.NoError(t, s.DeleteByID(ctx, second.ID))
	require.NoError(t, s.DeleteByID(ctx, 9999))
}

func TestStoreCache(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniredis(t)
	s, db := newSQLiteStore(t, rdb)

	n, err := s.Save(ctx, Note{Title: "cached", Content: "text"})
	require.NoError(t, err)
	key := fmt.Sprintf(noteKey, n.ID)
	assert.False(t, mr.Exists(key))

	_, ok, err := s.FindByID(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, mr.Exists(key))

	// a cached note is served without touching the database
	_, err = db.ExecContext(ctx, "UPDATE notes SET title = 'changed behind the cache' WHERE id = ?", n.ID)
	require.NoError(t, err)
	got, _, err := s.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "cached", got.Title)

	// save evicts
	n.Title = "updated"
	_, err = s.Save(ctx, n)
	require.NoError(t, err)
	assert.False(t, mr.Exists(key))
	got, _, err = s.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "updated", got.Title)

	// delete evicts
	require.True(t, mr.Exists(key))
	require.NoError(t, s.DeleteByID(ctx, n.ID))
	assert.False(t, mr.Exists(key))
}

func TestStoreCacheDown(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniredis(t)
	s, _ := newSQLiteStore(t, rdb)

	n, err := s.Save(ctx, Note{Title: "title", Content: "content"})
	require.NoError(t, err)

	mr.Close()

	got, ok, err := s.FindByID(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestStoreClosedDatabase(t *testing.T) {
	ctx := context.Background()
	s, db := newSQLiteStore(t, nil)
	require.NoError(t, db.Close())

	_, err := s.FindAll(ctx)
	assert.Error(t, err)
	_, _, err = s.FindByID(ctx, 1)
	assert.Error(t, err)
	_, err = s.Save(ctx, Note{Title: "t", Content: "c"})
	assert.Error(t, err)
	_, err = s.ExistsByID(ctx, 1)
	assert.Error(t, err)
	assert.Error(t, s.DeleteByID(ctx, 1))
	assert.Error(t, s.Ping(ctx))
}

func TestStoreCacheConcurrentWrite(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniredis(t)
	s, _ := newSQLiteStore(t, rdb)

	n, err := s.Save(ctx, Note{Title: "title", Content: "content"})
	require.NoError(t, err)
	key := fmt.Sprintf(noteKey, n.ID)

	// a read samples the version and the row, then a delete lands before it writes the cache
	version, ok := s.cacheVersion(ctx, n.ID)
	require.True(t, ok)
	require.NoError(t, s.DeleteByID(ctx, n.ID))
	s.toCache(ctx, n, version)

	assert.False(t, mr.Exists(key))
	_, found, err := s.FindByID(ctx, n.ID)
	require.NoError(t, err)
	assert.False(t, found)

	// same with an update landing in between
	n, err = s.Save(ctx, Note{Title: "before", Content: "content"})
	require.NoError(t, err)
	key = fmt.Sprintf(noteKey, n.ID)

	version, ok = s.cacheVersion(ctx, n.ID)
	require.True(t, ok)
	_, err = s.Save(ctx, Note{ID: n.ID, Title: "after", Content: "content"})
	require.NoError(t, err)
	s.toCache(ctx, n, version)

	assert.False(t, mr.Exists(key))
	got, found, err := s.FindByID(ctx, n.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "after", got.Title)

	// with no write in between the read is cached
	require.True(t, mr.Exists(key))
	assert.Equal(t, "1", mustGet(t, mr, fmt.Sprintf(versionKey, n.ID)))
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}
