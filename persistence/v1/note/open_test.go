package note

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ribgsilva/notes-app/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	sys.Configs.Database.Driver = sys.DriverSQLite
	sys.Configs.Database.ConnectionURL = ":memory:"
	sys.Configs.Database.PingTimeout = time.Second
	sys.Configs.Database.OperationTimeout = time.Second
	sys.Configs.Cache.Enabled = true
	sys.Configs.Cache.ConnectionURL = mr.Addr()
	sys.Configs.Cache.PingTimeout = time.Second
	sys.Configs.Cache.OperationTimeout = time.Second
	sys.Configs.Cache.CacheTTL = time.Minute

	b, closeFn, err := Open(context.Background(), zap.NewNop().Sugar())
	require.NoError(t, err)
	defer closeFn()

	s, ok := b.(*Store)
	require.True(t, ok)
	assert.NotNil(t, s.cache)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestOpenCacheDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	sys.Configs.Database.Driver = sys.DriverSQLite
	sys.Configs.Database.ConnectionURL = ":memory:"
	sys.Configs.Database.PingTimeout = time.Second
	sys.Configs.Cache.Enabled = true
	sys.Configs.Cache.ConnectionURL = addr
	sys.Configs.Cache.PingTimeout = time.Second

	_, _, err := Open(context.Background(), zap.NewNop().Sugar())
	assert.ErrorContains(t, err, "cache: could not connect to redis")
}
