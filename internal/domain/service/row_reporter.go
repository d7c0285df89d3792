package service

import "bookseed/internal/domain/entity"

// RowReporter is told about every row a generator persists.
type RowReporter interface {
	RowCreated(kind entity.Kind, row entity.Labeled)
}

// RowReporterFunc adapts a function to RowReporter.
type RowReporterFunc func(kind entity.Kind, row entity.Labeled)

// RowCreated calls f.
func (f RowReporterFunc) RowCreated(kind entity.Kind, row entity.Labeled) {
	f(kind, row)
}
