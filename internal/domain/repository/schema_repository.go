package repository

import "context"

// BookstoreTables lists the bookstore tables in dependency order.
var BookstoreTables = []string{"users", "authors", "author_followers", "publishers", "books"}

// TableCount is the number of rows in one table.
type TableCount struct {
	Table string
	Rows  int64
}

// SchemaRepository manages the tables of both domains.
type SchemaRepository interface {
	// Sync creates missing tables, columns and indexes for every model.
	Sync(ctx context.Context) error

	// CountRows returns the row count of each named table, in the given order.
	CountRows(ctx context.Context, tables []string) ([]TableCount, error)
}
