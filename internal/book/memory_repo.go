package book

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo keeps books in process memory. Ids come from a counter that
// is never rewound, so deleted ids are not reused.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  map[int64]Book
	nextID int64
	now    func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		books: make(map[int64]Book),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, cloneBook(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return cloneBook(b), nil
}

func (r *MemoryRepo) Create(ctx context.Context, in Input) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	b := applyInput(Book{ID: r.nextID, CreatedAt: r.now()}, in)
	r.books[b.ID] = b
	return cloneBook(b), nil
}

func (r *MemoryRepo) Update(ctx context.Context, id int64, in Input) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.books[id]
	if !ok {
		return ErrNotFound
	}
	r.books[id] = applyInput(b, in)
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrNotFound
	}
	delete(r.books, id)
	return nil
}

func (r *MemoryRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

// applyInput overwrites every mutable field of b.
func applyInput(b Book, in Input) Book {
	b.Title = in.Title
	b.Author = cloneString(in.Author)
	b.Genre = cloneString(in.Genre)
	b.Description = cloneString(in.Description)
	b.Year = cloneInt(in.Year)
	b.Cover = cloneString(in.Cover)
	return b
}

func cloneBook(b Book) Book {
	b.Author = cloneString(b.Author)
	b.Genre = cloneString(b.Genre)
	b.Description = cloneString(b.Description)
	b.Year = cloneInt(b.Year)
	b.Cover = cloneString(b.Cover)
	return b
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}
