package book

import (
	"context"
	"errors"
	"strconv"

	"ourshelves/internal/validate"
)

// Service provides book-related business logic on top of a Repository.
// It holds no state between calls.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ParseID parses a path id. Anything but a positive base-10 integer is
// reported as not ok.
func ParseID(raw string) (int64, bool) {
	if raw == "" || raw[0] == '+' {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List returns every book, newest first.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// GetByID returns the book with the given path id. A malformed id cannot
// match any row and yields ErrNotFound.
func (s *Service) GetByID(ctx context.Context, rawID string) (Book, error) {
	id, ok := ParseID(rawID)
	if !ok {
		return Book{}, ErrNotFound
	}
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Book{}, wrapStoreErr("get", err)
	}
	return b, nil
}

// Create validates in and stores it as a new book.
func (s *Service) Create(ctx context.Context, in Input) (Book, error) {
	if err := validateInput(in); err != nil {
		return Book{}, err
	}
	b, err := s.repo.Create(ctx, in)
	if err != nil {
		return Book{}, &StoreError{Op: "create", Err: err}
	}
	return b, nil
}

// Update replaces every mutable field of the book with the values in in.
// The book must exist before in is validated, and Update never inserts.
func (s *Service) Update(ctx context.Context, rawID string, in Input) error {
	id, ok := ParseID(rawID)
	if !ok {
		return ErrNotFound
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return wrapStoreErr("get", err)
	}
	if err := validateInput(in); err != nil {
		return err
	}
	return wrapStoreErr("update", s.repo.Update(ctx, id, in))
}

// Delete removes the book permanently.
func (s *Service) Delete(ctx context.Context, rawID string) error {
	id, ok := ParseID(rawID)
	if !ok {
		return ErrNotFound
	}
	return wrapStoreErr("delete", s.repo.Delete(ctx, id))
}

// Ping reports whether the store is reachable.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func validateInput(in Input) error {
	if errs := validate.Struct(in); len(errs) > 0 {
		return &ValidationError{Field: errs[0].Field, Message: errs[0].Message}
	}
	return nil
}

func wrapStoreErr(op string, err error) error {
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}
	return &StoreError{Op: op, Err: err}
}
