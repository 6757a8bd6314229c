package repository

import (
	"errors"

	"hospital-assist-service/internal/models"

	"gorm.io/gorm"
)

// userColumns is the documented field set of the user lookup. Selecting by
// name keeps columns added to the table later from leaking into responses.
var userColumns = []string{
	"id", "first_name", "last_name", "date_of_birth", "state", "address",
	"phone", "email", "gender", "created_at", "updated_at",
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Select(userColumns).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
