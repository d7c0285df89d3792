package model

import "time"

// LeaveRequestModel mirrors the 'leave_requests' table.
type LeaveRequestModel struct {
	ID         uint           `gorm:"primaryKey"`
	EmployeeID uint           `gorm:"not null;index"`
	Employee   *EmployeeModel `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	LeaveType  string         `gorm:"type:varchar(30);not null"`
	StartDate  time.Time      `gorm:"type:date;not null"`
	EndDate    time.Time      `gorm:"type:date;not null"`
	Status     string         `gorm:"type:varchar(20);not null;default:'pending'"`
	Reason     string         `gorm:"type:text"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeaveRequestModel) TableName() string {
	return "leave_requests"
}

// AppraisalModel mirrors the 'appraisals' table. Rating is 1..5.
type AppraisalModel struct {
	ID         uint           `gorm:"primaryKey"`
	EmployeeID uint           `gorm:"not null;index"`
	Employee   *EmployeeModel `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	ReviewerID uint           `gorm:"not null;index"`
	Reviewer   *EmployeeModel `gorm:"foreignKey:ReviewerID;constraint:OnDelete:RESTRICT"`
	ReviewDate time.Time      `gorm:"type:date;not null"`
	Rating     int            `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comments   string         `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (AppraisalModel) TableName() string {
	return "appraisals"
}

// AssetModel mirrors the 'assets' table. AssignedToID is nil while the asset is in storage.
type AssetModel struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"type:varchar(100);not null"`
	AssetTag     string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	Category     string         `gorm:"type:varchar(50)"`
	PurchaseDate time.Time      `gorm:"type:date"`
	AssignedToID *uint          `gorm:"index"`
	AssignedTo   *EmployeeModel `gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (AssetModel) TableName() string {
	return "assets"
}

// PayrollModel mirrors the 'payrolls' table.
type PayrollModel struct {
	ID          uint           `gorm:"primaryKey"`
	EmployeeID  uint           `gorm:"not null;index"`
	Employee    *EmployeeModel `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	PeriodStart time.Time      `gorm:"type:date;not null"`
	PeriodEnd   time.Time      `gorm:"type:date;not null"`
	GrossPay    float64        `gorm:"type:decimal(12,2);not null"`
	Deductions  float64        `gorm:"type:decimal(12,2);not null;default:0"`
	NetPay      float64        `gorm:"type:decimal(12,2);not null"`
	PaidOn      *time.Time     `gorm:"type:date"`
}

// TableName explicitly sets the table name for GORM.
func (PayrollModel) TableName() string {
	return "payrolls"
}
