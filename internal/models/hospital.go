package models

// Hospital represents the hospitals table.
//
// Timestamps are stored and served as raw text so that responses return the
// column content verbatim and repeated reads of an unchanged row stay
// byte-identical.
type Hospital struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	City      string `gorm:"size:100;not null" json:"city"`
	State     string `gorm:"size:100;not null" json:"state"`
	Phone     string `gorm:"size:50;not null" json:"phone"`
	CreatedAt string `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt string `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalDetail is the aggregate served by the hospital lookup: the
// hospital's own fields flattened, plus every department and doctor row that
// references it. The child lists are exhaustive and always present.
type HospitalDetail struct {
	Hospital
	Departments []Department `json:"departments"`
	Doctors     []Doctor     `json:"doctors"`
}
