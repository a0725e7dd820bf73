package service

import (
	"bookstore-api/internal/domains/book/model"
	"context"
)

// ServiceInterface - Định nghĩa business logic methods
type ServiceInterface interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, isbn string) (*model.Book, error)
	CreateBook(ctx context.Context, payload model.Payload) (*model.Book, error)
	UpdateBook(ctx context.Context, isbn string, payload model.Payload) (*model.Book, error)
	DeleteBook(ctx context.Context, isbn string) error
}
