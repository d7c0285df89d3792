package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bookseed/internal/delivery/context"
	"bookseed/internal/domain/entity"
	domainerrors "bookseed/internal/domain/errors"
	"bookseed/internal/domain/service"
	"bookseed/internal/util"

	"github.com/google/uuid"
)

// batch tracks one generator invocation for logging.
type batch struct {
	logger  *slog.Logger
	kind    entity.Kind
	batchID string
	started time.Time
}

func startBatch(ctx context.Context, logger *slog.Logger, kind entity.Kind, count int) *batch {
	b := &batch{
		logger:  deliverycontext.GetLoggerOrDefault(ctx, logger),
		kind:    kind,
		batchID: uuid.NewString(),
		started: time.Now(),
	}
	b.logger.LogAttrs(ctx, slog.LevelDebug, "batch started",
		slog.String("kind", string(kind)),
		slog.String("batchId", b.batchID),
		slog.Int("requested", count),
	)

	return b
}

func (b *batch) done(ctx context.Context, created int) {
	b.logger.LogAttrs(ctx, slog.LevelInfo, "batch finished",
		slog.String("kind", string(b.kind)),
		slog.String("batchId", b.batchID),
		slog.Int("created", created),
		slog.String("elapsed", util.FormatDuration(time.Since(b.started))),
	)
}

func (b *batch) fail(ctx context.Context, created int, err error) {
	b.logger.LogAttrs(ctx, slog.LevelError, "batch aborted",
		slog.String("kind", string(b.kind)),
		slog.String("batchId", b.batchID),
		slog.Int("created", created),
		slog.String("elapsed", util.FormatDuration(time.Since(b.started))),
		slog.Any("error", err),
	)
}

func validateCount(count int) error {
	if count < 0 {
		return domainerrors.ErrInvalidCount
	}

	return nil
}

// pickOne returns a uniformly random element of items, which must be non-empty.
func pickOne[T any](faker service.FakeDataProvider, items []T) T {
	return items[faker.IntBetween(0, len(items)-1)]
}

// sample returns k distinct elements of items chosen uniformly, using a partial
// Fisher-Yates shuffle over a copy. k is clamped to len(items).
func sample[T any](faker service.FakeDataProvider, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k <= 0 {
		return []T{}
	}

	pool := make([]T, len(items))
	copy(pool, items)
	for i := range k {
		j := faker.IntBetween(i, len(pool)-1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}

func nopReporter() service.RowReporter {
	return service.RowReporterFunc(func(entity.Kind, entity.Labeled) {})
}
