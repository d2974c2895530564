// Package database opens and checks the database connections used by the note stores.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ribgsilva/notes-app/sys"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// OpenSQL opens a mysql or sqlite database and pings it
func OpenSQL(ctx context.Context, driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	var name string
	switch driver {
	case sys.DriverMySQL:
		name = "mysql"
	case sys.DriverSQLite:
		name = "sqlite"
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	db, err := sql.Open(name, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	if driver == sys.DriverSQLite {
		// sqlite allows a single writer, and every :memory: connection is a different database
		db.SetMaxOpenConns(1)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, pingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, nil
}

// OpenMongo connects to mongo and pings the primary
func OpenMongo(ctx context.Context, url string, pingTimeout time.Duration) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("error to connect to mongo: %w", err)
	}

	mCtx, mCancel := context.WithTimeout(ctx, pingTimeout)
	defer mCancel()
	if err := client.Ping(mCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("could not connect to mongo: %w", err)
	}
	return client, nil
}
