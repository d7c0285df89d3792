package repository

import (
	"context"

	"bookseed/internal/domain/entity"
)

// PublisherRepository defines the operations the generators need on publishers.
type PublisherRepository interface {
	// List returns every publisher ordered by id.
	List(ctx context.Context) ([]*entity.Publisher, error)

	// Create persists a new publisher.
	Create(ctx context.Context, publisher *entity.Publisher) error
}
