package models

// Department represents the departments table. Phone and description are
// nullable, so they are pointers and serialize as JSON null when absent.
type Department struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:255;not null" json:"name"`
	Phone       *string `gorm:"size:50" json:"phone"`
	Description *string `gorm:"type:text" json:"description"`
	HospitalID  uint    `gorm:"not null;index" json:"hospital_id"`
	CreatedAt   string  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   string  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Department model
func (Department) TableName() string {
	return "departments"
}
