package repository

import (
	"context"
	"errors"
	"fmt"

	"bookstore-api/internal/domains/book/model"
	"bookstore-api/internal/infrastructure/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE 23505: unique_violation
const uniqueViolation = "23505"

const bookColumns = `isbn, amazon_url, author, language, pages, publisher, title, year`

type postgresRepository struct {
	db database.Querier
}

// NewPostgresRepository nhận Querier (thường là *pgxpool.Pool) từ container
func NewPostgresRepository(db database.Querier) RepositoryInterface {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY title`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return nil, fmt.Errorf("failed to scan book rows: %w", err)
	}

	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}

func (r *postgresRepository) GetByISBN(ctx context.Context, isbn string) (*model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1`

	book, err := scanBook(r.db.QueryRow(ctx, query, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by isbn: %w", err)
	}

	return book, nil
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) (*model.Book, error) {
	query := `
    INSERT INTO books (` + bookColumns + `)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + bookColumns

	created, err := scanBook(r.db.QueryRow(ctx, query,
		book.ISBN,
		book.AmazonURL,
		book.Author,
		book.Language,
		book.Pages,
		book.Publisher,
		book.Title,
		book.Year,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.ErrISBNAlreadyExists
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, isbn string, book *model.Book) (*model.Book, error) {
	query := `
    UPDATE books
    SET isbn = $1, amazon_url = $2, author = $3, language = $4,
        pages = $5, publisher = $6, title = $7, year = $8
    WHERE isbn = $9
    RETURNING ` + bookColumns

	updated, err := scanBook(r.db.QueryRow(ctx, query,
		book.ISBN,
		book.AmazonURL,
		book.Author,
		book.Language,
		book.Pages,
		book.Publisher,
		book.Title,
		book.Year,
		isbn,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		if isUniqueViolation(err) {
			return nil, model.ErrISBNAlreadyExists
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, isbn string) error {
	query := `DELETE FROM books WHERE isbn = $1`

	tag, err := r.db.Exec(ctx, query, isbn)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return model.ErrBookNotFound
	}
	return nil
}

func scanBook(row pgx.Row) (*model.Book, error) {
	var book model.Book
	err := row.Scan(
		&book.ISBN,
		&book.AmazonURL,
		&book.Author,
		&book.Language,
		&book.Pages,
		&book.Publisher,
		&book.Title,
		&book.Year,
	)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
