package rdb

import (
	"context"

	"bookseed/internal/domain/entity"
	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/domain/repository"
	"bookseed/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (repo *bookRepository) List(ctx context.Context) ([]*entity.Book, error) {
	var models []model.BookModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Order("id").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list books")
	}

	return mapSlice(models, toBookDomain), nil
}

// Create inserts book. A missing author or publisher surfaces as ErrInvalidReference.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(bookM).Error; err != nil {
		return translateWriteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt

	return nil
}
