// Package note holds the note operations: validation, partial updates and the
// existence checks that decide between a mutation and a not found answer.
package note

import (
	"context"

	"github.com/ribgsilva/notes-app/persistence/v1/note"
	"go.uber.org/zap"
)

// Storer is the contract of a note store
type Storer interface {
	FindAll(ctx context.Context) ([]note.Note, error)
	FindByID(ctx context.Context, id uint64) (note.Note, bool, error)
	Save(ctx context.Context, n note.Note) (note.Note, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
}

// Core runs the note operations against a Storer
type Core struct {
	log    *zap.SugaredLogger
	storer Storer
}

// NewCore creates a Core
func NewCore(log *zap.SugaredLogger, storer Storer) *Core {
	return &Core{
		log:    log,
		storer: storer,
	}
}

// Healthy reports whether the store answers. Stores that can't be pinged are assumed healthy.
func (c *Core) Healthy(ctx context.Context) bool {
	p, ok := c.storer.(interface{ Ping(ctx context.Context) error })
	if !ok {
		return true
	}
	if err := p.Ping(ctx); err != nil {
		c.log.Warnw("health", "ERROR", err)
		return false
	}
	return true
}
