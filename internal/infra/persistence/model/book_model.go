package model

import "time"

// BookModel mirrors the 'books' table. Both references are mandatory.
type BookModel struct {
	ID            uint            `gorm:"primaryKey"`
	Title         string          `gorm:"type:varchar(100);not null"`
	Genre         string          `gorm:"type:varchar(200);not null"`
	Price         *int            `gorm:"check:price >= 0"`
	PublishedDate time.Time       `gorm:"type:date;not null"`
	AuthorID      uint            `gorm:"not null;index"`
	Author        *AuthorModel    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	PublisherID   uint            `gorm:"not null;index"`
	Publisher     *PublisherModel `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
