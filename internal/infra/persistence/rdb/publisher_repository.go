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

type publisherRepository struct {
	db *gorm.DB
}

// NewPublisherRepository is the constructor for publisherRepository.
func NewPublisherRepository(db *gorm.DB) repository.PublisherRepository {
	return &publisherRepository{db: db}
}

func (repo *publisherRepository) List(ctx context.Context) ([]*entity.Publisher, error) {
	var models []model.PublisherModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Order("id").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list publishers")
	}

	return mapSlice(models, toPublisherDomain), nil
}

func (repo *publisherRepository) Create(ctx context.Context, publisher *entity.Publisher) error {
	publisherM := fromPublisherDomain(publisher)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(publisherM).Error; err != nil {
		return translateWriteError(err, "failed to create publisher")
	}

	publisher.ID = publisherM.ID
	publisher.CreatedAt = publisherM.CreatedAt

	return nil
}
