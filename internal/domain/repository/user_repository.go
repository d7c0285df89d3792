// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the generators and the store implementation.
package repository

import (
	"context"

	"bookseed/internal/domain/entity"
)

// UserRepository defines the operations the generators need on users.
type UserRepository interface {
	// List returns every user ordered by id.
	List(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and fills in its id and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
