package impl

import (
	"log/slog"
	"sync"

	"bookseed/internal/domain/entity"
	"bookseed/internal/infra/fake"
)

const testSeed = 42

func newTestLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestFaker() *fake.Provider {
	return fake.NewSeeded(testSeed)
}

// rowRecorder collects reported rows in order.
type rowRecorder struct {
	mu     sync.Mutex
	kinds  []entity.Kind
	labels []string
}

func (r *rowRecorder) RowCreated(kind entity.Kind, row entity.Labeled) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.kinds = append(r.kinds, kind)
	r.labels = append(r.labels, row.Label())
}

func uintPtr(v uint) *uint {
	return &v
}
