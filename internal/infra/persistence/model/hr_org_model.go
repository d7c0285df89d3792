package model

import "time"

// DepartmentModel mirrors the 'departments' table.
type DepartmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Location  string `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DepartmentModel) TableName() string {
	return "departments"
}

// EmployeeModel mirrors the 'employees' table. ManagerID is a self reference.
type EmployeeModel struct {
	ID           uint             `gorm:"primaryKey"`
	FirstName    string           `gorm:"type:varchar(100);not null"`
	LastName     string           `gorm:"type:varchar(100);not null"`
	Email        string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string           `gorm:"type:varchar(30)"`
	HireDate     time.Time        `gorm:"type:date;not null"`
	JobTitle     string           `gorm:"type:varchar(100)"`
	Salary       float64          `gorm:"type:decimal(12,2)"`
	DepartmentID uint             `gorm:"not null;index"`
	Department   *DepartmentModel `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	ManagerID    *uint            `gorm:"index"`
	Manager      *EmployeeModel   `gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}
