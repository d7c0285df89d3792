package model

import "time"

// AuthorModel mirrors the 'authors' table. RecommendedByID points at an earlier author.
type AuthorModel struct {
	ID              uint         `gorm:"primaryKey"`
	FirstName       string       `gorm:"type:varchar(100);not null"`
	LastName        string       `gorm:"type:varchar(100);not null"`
	Address         *string      `gorm:"type:varchar(200)"`
	ZipCode         *string      `gorm:"type:varchar(20)"`
	TelNo           *string      `gorm:"type:varchar(100)"`
	RecommendedByID *uint        `gorm:"index"`
	RecommendedBy   *AuthorModel `gorm:"foreignKey:RecommendedByID;constraint:OnDelete:CASCADE"`
	JoinDate        time.Time    `gorm:"type:date;not null"`
	PopularityScore int          `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuthorModel) TableName() string {
	return "authors"
}

// AuthorFollowerModel mirrors the 'author_followers' join table.
type AuthorFollowerModel struct {
	AuthorID uint         `gorm:"primaryKey;autoIncrement:false"`
	Author   *AuthorModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	UserID   uint         `gorm:"primaryKey;autoIncrement:false;index"`
	User     *UserModel   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AuthorFollowerModel) TableName() string {
	return "author_followers"
}
