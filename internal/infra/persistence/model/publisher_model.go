package model

import "time"

// PublisherModel mirrors the 'publishers' table.
type PublisherModel struct {
	ID              uint            `gorm:"primaryKey"`
	FirstName       string          `gorm:"type:varchar(100);not null"`
	LastName        string          `gorm:"type:varchar(100);not null"`
	RecommendedByID *uint           `gorm:"index"`
	RecommendedBy   *PublisherModel `gorm:"foreignKey:RecommendedByID;constraint:OnDelete:CASCADE"`
	JoinDate        time.Time       `gorm:"type:date;not null"`
	PopularityScore int             `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (PublisherModel) TableName() string {
	return "publishers"
}
