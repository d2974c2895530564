package note

import (
	"context"
)

// Update replaces the provided fields of an existing note. The read and the write are not
// atomic: a delete landing in between is not detected.
func (c *Core) Update(ctx context.Context, id uint64, un UpdateNote) (Note, error) {
	n, ok, err := c.storer.FindByID(ctx, id)
	if err != nil {
		return Note{}, &StorageError{Op: OpUpdate, Err: err}
	}
	if !ok {
		return Note{}, &NotFoundError{ID: id}
	}

	if un.Title != nil {
		n.Title = *un.Title
	}
	if un.Content != nil {
		n.Content = *un.Content
	}

	saved, err := c.storer.Save(ctx, n)
	if err != nil {
		return Note{}, &StorageError{Op: OpUpdate, Err: err}
	}

	c.log.Infow("note updated", "id", id)
	return Note(saved), nil
}
