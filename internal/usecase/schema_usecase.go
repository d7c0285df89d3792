package usecase

import (
	"context"

	"bookseed/internal/domain/repository"
)

// SchemaUsecase prepares and inspects the store.
type SchemaUsecase interface {
	// CreateTables syncs the tables of both domains.
	CreateTables(ctx context.Context) error

	// Stats returns row counts for the bookstore tables.
	Stats(ctx context.Context) ([]repository.TableCount, error)
}
