package note

import (
	"encoding/json"

	"github.com/ribgsilva/notes-app/persistence/v1/note"
)

// Note is a stored note
type Note struct {
	ID      uint64 `json:"id" example:"1"`
	Title   string `json:"title" example:"Groceries"`
	Content string `json:"content" example:"Milk, eggs"`
}

// NewNote holds what is needed to create a note, both fields must have text
type NewNote struct {
	Title   string `json:"title" validate:"notblank" example:"Groceries"`
	Content string `json:"content" validate:"notblank" example:"Milk, eggs"`
}

// UpdateNote holds the fields to replace on a note, nil fields are left unchanged
type UpdateNote struct {
	Title   *string `json:"title,omitempty" example:"Groceries"`
	Content *string `json:"content,omitempty" example:"Milk, eggs, bread"`
}

// Event types accepted through messaging
const (
	EventCreate = "create"
	EventUpdate = "update"
	EventDelete = "delete"
)

// Event is a command received through messaging. Data holds a NewNote for create,
// an UpdateEvent for update and a DeleteEvent for delete.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// UpdateEvent is the data of an update event
type UpdateEvent struct {
	ID uint64 `json:"id"`
	UpdateNote
}

// DeleteEvent is the data of a delete event
type DeleteEvent struct {
	ID uint64 `json:"id"`
}

func toNotes(ns []note.Note) []Note {
	notes := make([]Note, 0, len(ns))
	for _, n := range ns {
		notes = append(notes, Note(n))
	}
	return notes
}
