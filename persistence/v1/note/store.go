// Package note persists notes. Store keeps them in a SQL database (MySQL or SQLite) with an
// optional redis read-through cache, MongoStore keeps them in a MongoDB collection.
package note

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Store is the SQL backed note store
type Store struct {
	log   *zap.SugaredLogger
	db    *sql.DB
	cache *redis.Client
	cfg   Config
}

// NewStore creates a Store. cache may be nil, in which case every read goes to the database.
func NewStore(log *zap.SugaredLogger, db *sql.DB, cache *redis.Client, cfg Config) *Store {
	return &Store{
		log:   log,
		db:    db,
		cache: cache,
		cfg:   cfg,
	}
}

// Ping checks the database connection
func (s *Store) Ping(ctx context.Context) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()
	if err := s.db.PingContext(dbCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
