// Package schema manages the notes table of the SQL stores through embedded goose migrations.
package schema

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/ribgsilva/notes-app/sys"
)

//go:embed migrations
var migrations embed.FS

// Migration is the state of a single migration file
type Migration struct {
	Version int64
	Path    string
	Applied bool
}

func provider(db *sql.DB, driver string) (*goose.Provider, error) {
	var dialect goose.Dialect
	switch driver {
	case sys.DriverMySQL:
		dialect = goose.DialectMySQL
	case sys.DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("no migrations for driver %q", driver)
	}

	fsys, err := fs.Sub(migrations, "migrations/"+driver)
	if err != nil {
		return nil, fmt.Errorf("migrations fs: %w", err)
	}

	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose provider: %w", err)
	}
	return p, nil
}

// Create applies every pending migration
func Create(ctx context.Context, db *sql.DB, driver string) error {
	p, err := provider(db, driver)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := p.Up(ctx); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Drop rolls back every applied migration
func Drop(ctx context.Context, db *sql.DB, driver string) error {
	p, err := provider(db, driver)
	if err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	if _, err := p.DownTo(ctx, 0); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	return nil
}

// Status lists the known migrations and whether they are applied
func Status(ctx context.Context, db *sql.DB, driver string) ([]Migration, error) {
	p, err := provider(db, driver)
	if err != nil {
		return nil, fmt.Errorf("schema status: %w", err)
	}
	statuses, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("schema status: %w", err)
	}

	ms := make([]Migration, 0, len(statuses))
	for _, s := range statuses {
		ms = append(ms, Migration{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return ms, nil
}
