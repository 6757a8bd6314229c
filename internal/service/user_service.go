package service

import (
	"hospital-assist-service/internal/models"
	"hospital-assist-service/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUserDetails returns the eleven documented fields of one user.
func (s *UserService) GetUserDetails(id uint) (*models.User, error) {
	return s.userRepo.GetUserByID(id)
}
