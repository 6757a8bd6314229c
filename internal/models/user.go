package models

// User represents the users table in the users store. The lookup serves
// exactly these eleven fields and nothing else.
type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	FirstName   string  `gorm:"size:100;not null" json:"first_name"`
	LastName    string  `gorm:"size:100;not null" json:"last_name"`
	DateOfBirth string  `gorm:"type:date;not null" json:"date_of_birth"`
	State       string  `gorm:"size:100;not null" json:"state"`
	Address     string  `gorm:"type:text;not null" json:"address"`
	Phone       *string `gorm:"size:50" json:"phone"`
	Email       *string `gorm:"size:255" json:"email"`
	Gender      *string `gorm:"size:20" json:"gender"`
	CreatedAt   string  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   string  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
