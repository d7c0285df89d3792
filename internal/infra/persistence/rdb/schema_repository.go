package rdb

import (
	"context"
	"regexp"

	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/domain/repository"
	"bookseed/internal/errors"
	"bookseed/internal/infra/persistence/model"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type schemaRepository struct {
	db *gorm.DB
}

// NewSchemaRepository is the constructor for schemaRepository.
func NewSchemaRepository(db *gorm.DB) repository.SchemaRepository {
	return &schemaRepository{db: db}
}

// Sync creates or extends every table of both schemas. Existing rows are kept.
func (repo *schemaRepository) Sync(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to migrate schema")
	}

	return nil
}

// CountRows returns the row count of each table, in the order given.
// Counts may be served by a read replica when one is configured.
func (repo *schemaRepository) CountRows(ctx context.Context, tables []string) ([]repository.TableCount, error) {
	counts := make([]repository.TableCount, 0, len(tables))
	for _, table := range tables {
		if !tableNamePattern.MatchString(table) {
			return nil, errors.Errorf("invalid table name %q", table)
		}

		query, args, err := sq.Select("COUNT(*)").From(table).ToSql()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build count for %s", table)
		}

		var rows int64
		if err := repo.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count "+table)
		}

		counts = append(counts, repository.TableCount{Table: table, Rows: rows})
	}

	return counts, nil
}
