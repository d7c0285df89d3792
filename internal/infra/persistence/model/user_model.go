// Package model holds the gorm models for both schemas. Models are exported so
// the gorm gen tool in cmd/gen can build typed queries from them.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
