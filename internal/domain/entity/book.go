package entity

import "time"

// Book always references one author and one publisher.
type Book struct {
	ID            uint
	Title         string
	Genre         string
	Price         int // Whole currency units, 100..1000 when generated.
	PublishedDate time.Time
	AuthorID      uint
	PublisherID   uint
	CreatedAt     time.Time
}

// Label returns the title.
func (b *Book) Label() string {
	return b.Title
}
