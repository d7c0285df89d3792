package repository

import (
	"context"

	"bookseed/internal/domain/entity"
)

// BookRepository defines the operations the generators need on books.
type BookRepository interface {
	// List returns every book ordered by id.
	List(ctx context.Context) ([]*entity.Book, error)

	// Create persists a new book. The referenced author and publisher must exist.
	Create(ctx context.Context, book *entity.Book) error
}
