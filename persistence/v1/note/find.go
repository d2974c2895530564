package note

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// FindAll returns every note ordered by id
func (s *Store) FindAll(ctx context.Context) ([]Note, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	rows, err := s.db.QueryContext(dbCtx, "SELECT id, title, content FROM notes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query find all: %w", err)
	}
	defer rows.Close()

	notes := []Note{}
	for rows.Next() {
		var n Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content); err != nil {
			return nil, fmt.Errorf("error parsing db data: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate find all: %w", err)
	}
	return notes, nil
}

// FindByID returns the note with the given id, the bool is false when there is none
func (s *Store) FindByID(ctx context.Context, id uint64) (Note, bool, error) {
	if n, ok := s.fromCache(ctx, id); ok {
		return n, true, nil
	}
	version, cacheable := s.cacheVersion(ctx, id)

	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	var n Note
	err := s.db.QueryRowContext(dbCtx, "SELECT id, title, content FROM notes WHERE id = ?", id).
		Scan(&n.ID, &n.Title, &n.Content)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return Note{}, false, nil
	case err != nil:
		return Note{}, false, fmt.Errorf("failed to query find stmt: %w", err)
	}

	if cacheable {
		s.toCache(ctx, n, version)
	}
	return n, true, nil
}

// ExistsByID reports whether a note with the given id is stored
func (s *Store) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	dbCtx, dbCancel := context.WithTimeout(ctx, s.cfg.OperationTimeout)
	defer dbCancel()

	var one int
	err := s.db.QueryRowContext(dbCtx, "SELECT 1 FROM notes WHERE id = ?", id).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("failed to query exists stmt: %w", err)
	}
	return true, nil
}
