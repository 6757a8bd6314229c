package repository

import (
	"errors"

	"hospital-assist-service/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetHospitalByID retrieves a hospital by ID
func (r *HospitalRepository) GetHospitalByID(id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		return nil, err
	}
	return &hospital, nil
}

// GetDepartmentsByHospitalID retrieves every department belonging to a
// hospital, in insertion order.
func (r *HospitalRepository) GetDepartmentsByHospitalID(hospitalID uint) ([]models.Department, error) {
	departments := make([]models.Department, 0)
	err := r.db.Where("hospital_id = ?", hospitalID).Order("id ASC").Find(&departments).Error
	return departments, err
}

// GetDoctorsByHospitalID retrieves every doctor belonging to a hospital, in
// insertion order.
func (r *HospitalRepository) GetDoctorsByHospitalID(hospitalID uint) ([]models.Doctor, error) {
	doctors := make([]models.Doctor, 0)
	err := r.db.Where("hospital_id = ?", hospitalID).Order("id ASC").Find(&doctors).Error
	return doctors, err
}
