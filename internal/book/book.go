package book

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book represents a persisted book. Optional fields are nil when unset
// and are always serialized, as null.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      *string   `json:"author"`
	Genre       *string   `json:"genre"`
	Description *string   `json:"description"`
	Year        *int      `json:"year"`
	Cover       *string   `json:"cover"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Input carries the mutable fields for Create and Update. Update replaces
// every field, so an omitted optional field is stored as null.
type Input struct {
	Title       string  `json:"title" validate:"required,notblank"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
	Year        *int    `json:"year" validate:"omitempty,min=-2147483648,max=2147483647"`
	Cover       *string `json:"cover"`
}

// ValidationError is returned when a payload cannot be stored.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StoreError wraps a failure of the persistence layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("book store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
