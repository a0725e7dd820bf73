package repository

import (
	"bookstore-api/internal/domains/book/model"
	"context"
)

// RepositoryInterface - Data Store Adapter cho bảng books.
// Mỗi method là đúng một SQL statement có parameter binding.
type RepositoryInterface interface {
	// ListAll trả về toàn bộ books sort theo title, slice rỗng nếu chưa có row nào
	ListAll(ctx context.Context) ([]model.Book, error)

	// GetByISBN trả về model.ErrBookNotFound nếu không có row
	GetByISBN(ctx context.Context, isbn string) (*model.Book, error)

	// Create trả về model.ErrISBNAlreadyExists nếu vi phạm primary key
	Create(ctx context.Context, book *model.Book) (*model.Book, error)

	// Update thay toàn bộ non-key columns của row có isbn,
	// trả về model.ErrBookNotFound nếu không có row nào match
	Update(ctx context.Context, isbn string, book *model.Book) (*model.Book, error)

	// Delete trả về model.ErrBookNotFound nếu không có row nào bị xóa
	Delete(ctx context.Context, isbn string) error
}
