package note

import (
	"context"

	"github.com/ribgsilva/notes-app/persistence/v1/note"
)

// Create validates and stores a new note, returning it with its assigned id
func (c *Core) Create(ctx context.Context, nn NewNote) (Note, error) {
	if err := nn.check(); err != nil {
		return Note{}, err
	}

	saved, err := c.storer.Save(ctx, note.Note{Title: nn.Title, Content: nn.Content})
	if err != nil {
		return Note{}, &StorageError{Op: OpCreate, Err: err}
	}

	c.log.Infow("note created", "id", saved.ID)
	return Note(saved), nil
}
