package service

import (
	"context"

	"bookstore-api/internal/domains/book/model"
	"bookstore-api/internal/domains/book/repository"

	"github.com/rs/zerolog/log"
)

// BookService - Implements ServiceInterface
type BookService struct {
	repo repository.RepositoryInterface
}

// NewService - Constructor with DI
func NewService(repo repository.RepositoryInterface) ServiceInterface {
	return &BookService{repo: repo}
}

// ListBooks trả về toàn bộ catalog, không phân trang
func (s *BookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListAll(ctx)
}

func (s *BookService) GetBook(ctx context.Context, isbn string) (*model.Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// CreateBook validate payload rồi mới chạm tới store.
// Payload invalid => *model.ValidationError, repo không được gọi.
func (s *BookService) CreateBook(ctx context.Context, payload model.Payload) (*model.Book, error) {
	book, err := model.ValidateCreate(payload)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &book)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("isbn", created.ISBN).
		Str("title", created.Title).
		Msg("Book created")

	return created, nil
}

// UpdateBook thay toàn bộ record của isbn trên path
func (s *BookService) UpdateBook(ctx context.Context, isbn string, payload model.Payload) (*model.Book, error) {
	book, err := model.ValidateUpdate(isbn, payload)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, isbn, &book)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("isbn", updated.ISBN).
		Msg("Book updated")

	return updated, nil
}

func (s *BookService) DeleteBook(ctx context.Context, isbn string) error {
	if err := s.repo.Delete(ctx, isbn); err != nil {
		return err
	}

	log.Info().Str("isbn", isbn).Msg("Book deleted")
	return nil
}
