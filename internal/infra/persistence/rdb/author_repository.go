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

type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

// List returns every author in id order without follower ids.
func (repo *authorRepository) List(ctx context.Context) ([]*entity.Author, error) {
	var models []model.AuthorModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Order("id").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list authors")
	}

	return mapSlice(models, toAuthorDomain), nil
}

// Create inserts the author row only. Followers are written by SetFollowers.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorM := fromAuthorDomain(author)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(authorM).Error; err != nil {
		return translateWriteError(err, "failed to create author")
	}

	author.ID = authorM.ID
	author.CreatedAt = authorM.CreatedAt

	return nil
}

// SetFollowers replaces the follower set of authorID with userIDs.
func (repo *authorRepository) SetFollowers(ctx context.Context, authorID uint, userIDs []uint) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("author_id = ?", authorID).Delete(&model.AuthorFollowerModel{}).Error; err != nil {
		return translateWriteError(err, "failed to clear author followers")
	}
	if len(userIDs) == 0 {
		return nil
	}

	rows := make([]model.AuthorFollowerModel, 0, len(userIDs))
	for _, userID := range userIDs {
		rows = append(rows, model.AuthorFollowerModel{AuthorID: authorID, UserID: userID})
	}
	if err := db.Omit(clause.Associations).Create(&rows).Error; err != nil {
		return translateWriteError(err, "failed to add author followers")
	}

	return nil
}

// ListFollowerIDs returns the user ids following authorID in ascending order.
func (repo *authorRepository) ListFollowerIDs(ctx context.Context, authorID uint) ([]uint, error) {
	ids := []uint{}
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.AuthorFollowerModel{}).
		Where("author_id = ?", authorID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list author followers")
	}

	return ids, nil
}
