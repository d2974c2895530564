package note

import (
	"fmt"
)

// ValidationError is returned when a required field is missing or blank
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NotFoundError is returned when there is no note with the requested id
type NotFoundError struct {
	ID uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note not found with id: %d", e.ID)
}

// StorageError wraps any failure coming from the store
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Operations reported in StorageError.Op
const (
	OpRetrieveAll = "retrieving notes"
	OpRetrieve    = "retrieving note"
	OpCreate      = "creating note"
	OpUpdate      = "updating note"
	OpDelete      = "deleting note"
)
