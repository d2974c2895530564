package note

import (
	"context"
)

// Query returns every note
func (c *Core) Query(ctx context.Context) ([]Note, error) {
	ns, err := c.storer.FindAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: OpRetrieveAll, Err: err}
	}
	return toNotes(ns), nil
}

// QueryByID returns the note with the given id or a *NotFoundError
func (c *Core) QueryByID(ctx context.Context, id uint64) (Note, error) {
	n, ok, err := c.storer.FindByID(ctx, id)
	if err != nil {
		return Note{}, &StorageError{Op: OpRetrieve, Err: err}
	}
	if !ok {
		return Note{}, &NotFoundError{ID: id}
	}
	return Note(n), nil
}
