package note

import (
	"context"
	"fmt"
	"time"
)

// Save inserts the note when it has no id, assigning one, otherwise it overwrites the stored fields.
// It returns the persisted note.
func (s *Store) Save(ctx context.Context, n Note) (Note, error) {
	if n.ID == 0 {
		return s.insert(ctx, n)
	}
	return s.update(ctx, n)
}

func (s *Store) insert(ctx context.Context, n Note) (Note, error) {
	now := time.Now().UTC()

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	res, err := s.db.ExecContext(dbCtx,
		"INSERT INTO notes (title, content, created_at, updated_at) VALUES (?, ?, ?, ?)",
		n.Title, n.Content, now, now)
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec insert stmt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("failed to read inserted id: %w", err)
	}

	n.ID = uint64(id)
	return n, nil
}

func (s *Store) update(ctx context.Context, n Note) (Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	_, err := s.db.ExecContext(dbCtx,
		"UPDATE notes SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		n.Title, n.Content, time.Now().UTC(), n.ID)
	if err != nil {
		return Note{}, fmt.Errorf("failed to exec update stmt: %w", err)
	}

	s.evict(ctx, n.ID)
	return n, nil
}

// DeleteByID removes the note, deleting a missing note is a no-op
func (s *Store) DeleteByID(ctx context.Context, id uint64) error {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	if _, err := s.db.ExecContext(dbCtx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to exec delete stmt: %w", err)
	}

	s.evict(ctx, id)
	return nil
}
