package model

import "time"

// ProjectModel mirrors the 'projects' table.
type ProjectModel struct {
	ID           uint             `gorm:"primaryKey"`
	Name         string           `gorm:"type:varchar(150);not null"`
	Description  string           `gorm:"type:text"`
	StartDate    time.Time        `gorm:"type:date;not null"`
	EndDate      *time.Time       `gorm:"type:date"`
	Budget       float64          `gorm:"type:decimal(14,2)"`
	DepartmentID uint             `gorm:"not null;index"`
	Department   *DepartmentModel `gorm:"foreignKey:DepartmentID;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProjectModel) TableName() string {
	return "projects"
}

// ProjectAssignmentModel mirrors the 'project_assignments' join table between
// projects and employees. The pairing carries the employee's role and start date.
type ProjectAssignmentModel struct {
	ProjectID    uint           `gorm:"primaryKey;autoIncrement:false"`
	Project      *ProjectModel  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	EmployeeID   uint           `gorm:"primaryKey;autoIncrement:false;index"`
	Employee     *EmployeeModel `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Role         string         `gorm:"type:varchar(50);not null"`
	AssignedDate time.Time      `gorm:"type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProjectAssignmentModel) TableName() string {
	return "project_assignments"
}

// TaskModel mirrors the 'tasks' table.
type TaskModel struct {
	ID          uint           `gorm:"primaryKey"`
	Title       string         `gorm:"type:varchar(200);not null"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(20);not null;default:'todo'"`
	DueDate     *time.Time     `gorm:"type:date"`
	ProjectID   uint           `gorm:"not null;index"`
	Project     *ProjectModel  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
	AssigneeID  *uint          `gorm:"index"`
	Assignee    *EmployeeModel `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TaskModel) TableName() string {
	return "tasks"
}
