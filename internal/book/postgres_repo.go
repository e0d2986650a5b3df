package book

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectColumns = `id, title, author, genre, description, year, cover, created_at`

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewPostgresRepo returns a repository on db. A zero timeout leaves
// statements bounded only by the caller's context.
func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func scanBook(row pgx.Row) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.Title, &b.Author, &b.Genre, &b.Description,
		&b.Year, &b.Cover, &b.CreatedAt,
	)
	return b, err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books ORDER BY id DESC`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Book, error) {
	const query = `SELECT ` + selectColumns + ` FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, err
	}
	return b, nil
}

func (r *PostgresRepo) Create(ctx context.Context, in Input) (Book, error) {
	const query = `
		INSERT INTO books (title, author, genre, description, year, cover)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + selectColumns

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return scanBook(r.db.QueryRow(timeoutCtx, query,
		in.Title, in.Author, in.Genre, in.Description, in.Year, in.Cover,
	))
}

func (r *PostgresRepo) Update(ctx context.Context, id int64, in Input) error {
	const query = `
		UPDATE books
		SET title = $1, author = $2, genre = $3, description = $4, year = $5, cover = $6
		WHERE id = $7`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query,
		in.Title, in.Author, in.Genre, in.Description, in.Year, in.Cover, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.Ping(timeoutCtx)
}

// Truncate removes every book and restarts the id sequence. Only the seed
// command uses it, to reset fixtures between end-to-end runs.
func (r *PostgresRepo) Truncate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `TRUNCATE TABLE books RESTART IDENTITY`)
	return err
}
