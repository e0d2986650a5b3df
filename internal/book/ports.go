package book

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

import (
	"context"
)

// Repository defines the contract for book data storage. Update and
// Delete return ErrNotFound when no row has the id.
type Repository interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (Book, error)
	Create(ctx context.Context, in Input) (Book, error)
	Update(ctx context.Context, id int64, in Input) error
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
}
