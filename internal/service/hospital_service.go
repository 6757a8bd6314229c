package service

import (
	"hospital-assist-service/internal/models"
	"hospital-assist-service/internal/repository"
)

type HospitalService struct {
	hospitalRepo *repository.HospitalRepository
}

func NewHospitalService(hospitalRepo *repository.HospitalRepository) *HospitalService {
	return &HospitalService{hospitalRepo: hospitalRepo}
}

// GetHospitalDetails composes the hospital row with its departments and
// doctors. The hospital is resolved first so an unknown id fails with
// repository.ErrHospitalNotFound before any child query runs; a storage fault
// on any step surfaces as-is and no partial aggregate is returned.
func (s *HospitalService) GetHospitalDetails(id uint) (*models.HospitalDetail, error) {
	hospital, err := s.hospitalRepo.GetHospitalByID(id)
	if err != nil {
		return nil, err
	}

	departments, err := s.hospitalRepo.GetDepartmentsByHospitalID(id)
	if err != nil {
		return nil, err
	}

	doctors, err := s.hospitalRepo.GetDoctorsByHospitalID(id)
	if err != nil {
		return nil, err
	}

	return &models.HospitalDetail{
		Hospital:    *hospital,
		Departments: departments,
		Doctors:     doctors,
	}, nil
}
