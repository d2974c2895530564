package note

import (
	"context"
)

// Delete removes an existing note or returns a *NotFoundError. Like Update, the existence
// check and the delete are not atomic.
func (c *Core) Delete(ctx context.Context, id uint64) error {
	exists, err := c.storer.ExistsByID(ctx, id)
	if err != nil {
		return &StorageError{Op: OpDelete, Err: err}
	}
	if !exists {
		return &NotFoundError{ID: id}
	}

	if err := c.storer.DeleteByID(ctx, id); err != nil {
		return &StorageError{Op: OpDelete, Err: err}
	}

	c.log.Infow("note deleted", "id", id)
	return nil
}
