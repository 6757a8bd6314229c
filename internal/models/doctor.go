package models

// Doctor represents the doctors table. A doctor references a hospital and a
// department through independent foreign keys; nothing checks that the
// department belongs to the same hospital, matching the stored schema.
type Doctor struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FirstName    string  `gorm:"size:100;not null" json:"first_name"`
	LastName     string  `gorm:"size:100;not null" json:"last_name"`
	Phone        *string `gorm:"size:50" json:"phone"`
	Speciality   *string `gorm:"size:255" json:"speciality"`
	HospitalID   uint    `gorm:"not null;index" json:"hospital_id"`
	DepartmentID uint    `gorm:"not null;index" json:"department_id"`
	CreatedAt    string  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    string  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
