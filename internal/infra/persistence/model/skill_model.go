package model

// SkillModel mirrors the 'skills' table.
type SkillModel struct {
	ID    uint   `gorm:"primaryKey"`
	Skill string `gorm:"type:varchar(50);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SkillModel) TableName() string {
	return "skills"
}

// PersonModel mirrors the 'persons' table; each person has one skill.
type PersonModel struct {
	ID      uint        `gorm:"primaryKey"`
	Person  string      `gorm:"type:varchar(50);not null"`
	SkillID uint        `gorm:"not null;index"`
	Skill   *SkillModel `gorm:"foreignKey:SkillID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PersonModel) TableName() string {
	return "persons"
}
