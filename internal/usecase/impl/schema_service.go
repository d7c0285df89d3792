package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookseed/internal/delivery/context"
	"bookseed/internal/domain/repository"
	"bookseed/internal/errors"
	"bookseed/internal/usecase"
)

type schemaService struct {
	schemaRepo repository.SchemaRepository
	logger     *slog.Logger
}

// NewSchemaService creates a new schema service instance
func NewSchemaService(schemaRepo repository.SchemaRepository, logger *slog.Logger) usecase.SchemaUsecase {
	return &schemaService{
		schemaRepo: schemaRepo,
		logger:     logger,
	}
}

func (s *schemaService) CreateTables(ctx context.Context) error {
	if err := s.schemaRepo.Sync(ctx); err != nil {
		return errors.Wrap(err, "failed to sync schema")
	}
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).InfoContext(ctx, "schema synced")

	return nil
}

func (s *schemaService) Stats(ctx context.Context) ([]repository.TableCount, error) {
	counts, err := s.schemaRepo.CountRows(ctx, repository.BookstoreTables)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count rows")
	}

	return counts, nil
}
