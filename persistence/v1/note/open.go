package note

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notes-app/platform/cache"
	"github.com/ribgsilva/notes-app/platform/database"
	"github.com/ribgsilva/notes-app/sys"
	"go.uber.org/zap"
)

// Backend is the set of operations both stores provide
type Backend interface {
	FindAll(ctx context.Context) ([]Note, error)
	FindByID(ctx context.Context, id uint64) (Note, bool, error)
	Save(ctx context.Context, n Note) (Note, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
	Ping(ctx context.Context) error
}

var (
	_ Backend = (*Store)(nil)
	_ Backend = (*MongoStore)(nil)
)

// Open connects the store selected by sys.Configs.Database.Driver. The returned func
// releases every connection opened.
func Open(ctx context.Context, log *zap.SugaredLogger) (Backend, func(), error) {
	cfg := Config{
		OperationTimeout:      sys.Configs.Database.OperationTimeout,
		CacheOperationTimeout: sys.Configs.Cache.OperationTimeout,
		CacheTTL:              sys.Configs.Cache.CacheTTL,
	}

	if sys.Configs.Database.Driver == sys.DriverMongo {
		client, err := database.OpenMongo(ctx, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
		if err != nil {
			return nil, nil, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Errorf("could not close mongo conn gracefully: %s", err)
			}
		}
		return NewMongoStore(log, client.Database(sys.Configs.Database.Name), cfg), closeFn, nil
	}

	db, err := database.OpenSQL(ctx, sys.Configs.Database.Driver, sys.Configs.Database.ConnectionURL, sys.Configs.Database.PingTimeout)
	if err != nil {
		return nil, nil, err
	}

	var rdb *redis.Client
	if sys.Configs.Cache.Enabled {
		rdb, err = cache.Open(ctx, sys.Configs.Cache.ConnectionURL, sys.Configs.Cache.User, sys.Configs.Cache.Pass, sys.Configs.Cache.PingTimeout)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("cache: %w", err)
		}
	}

	closeFn := func() {
		if rdb != nil {
			if err := rdb.Close(); err != nil {
				log.Errorf("could not close redis conn gracefully: %s", err)
			}
		}
		if err := db.Close(); err != nil {
			log.Errorf("could not close db conn gracefully: %s", err)
		}
	}
	return NewStore(log, db, rdb, cfg), closeFn, nil
}
