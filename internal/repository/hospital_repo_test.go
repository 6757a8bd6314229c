package repository

import (
	"fmt"
	"testing"

	"hospital-assist-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newHospitalTestDB opens a private in-memory store and migrates the hospital
// dataset tables into it.
func newHospitalTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Hospital{}, &models.Department{}, &models.Doctor{}))
	return db
}

func strptr(s string) *string { return &s }

func seedTwoHospitals(t *testing.T, db *gorm.DB) {
	t.Helper()
	hospitals := []models.Hospital{
		{Name: "Springfield General", City: "Springfield", State: "IL", Phone: "555-0100"},
		{Name: "Shelbyville Medical", City: "Shelbyville", State: "IL", Phone: "555-0200"},
	}
	require.NoError(t, db.Create(&hospitals).Error)

	departments := []models.Department{
		{Name: "Pediatrics", Phone: strptr("555-0101"), HospitalID: 1},
		{Name: "Cardiology", HospitalID: 1},
		{Name: "Oncology", HospitalID: 2},
	}
	require.NoError(t, db.Create(&departments).Error)

	doctors := []models.Doctor{
		{FirstName: "Brown", LastName: "Smith", Phone: strptr("555-1234"), Speciality: strptr("Pediatrics"), HospitalID: 1, DepartmentID: 1},
		{FirstName: "Alice", LastName: "Jones", HospitalID: 1, DepartmentID: 2},
		{FirstName: "Carol", LastName: "White", Phone: strptr("555-9999"), HospitalID: 2, DepartmentID: 3},
	}
	require.NoError(t, db.Create(&doctors).Error)
}

func TestGetHospitalByID_Found(t *testing.T) {
	db := newHospitalTestDB(t)
	seedTwoHospitals(t, db)
	repo := NewHospitalRepo(db)

	hospital, err := repo.GetHospitalByID(1)
	assert.NoError(t, err)
	if assert.NotNil(t, hospital) {
		assert.Equal(t, uint(1), hospital.ID)
		assert.Equal(t, "Springfield General", hospital.Name)
		assert.Equal(t, "Springfield", hospital.City)
		assert.Equal(t, "555-0100", hospital.Phone)
	}
}

func TestGetHospitalByID_NotFound(t *testing.T) {
	db := newHospitalTestDB(t)
	seedTwoHospitals(t, db)
	repo := NewHospitalRepo(db)

	hospital, err := repo.GetHospitalByID(999)
	assert.ErrorIs(t, err, ErrHospitalNotFound)
	assert.Nil(t, hospital)
}

func TestGetDepartmentsByHospitalID_ExactRows(t *testing.T) {
	db := newHospitalTestDB(t)
	seedTwoHospitals(t, db)
	repo := NewHospitalRepo(db)

	departments, err := repo.GetDepartmentsByHospitalID(1)
	assert.NoError(t, err)
	// only hospital 1's departments, in insertion order
	if assert.Len(t, departments, 2) {
		assert.Equal(t, "Pediatrics", departments[0].Name)
		assert.Equal(t, "Cardiology", departments[1].Name)
		for _, dep := range departments {
			assert.Equal(t, uint(1), dep.HospitalID)
		}
	}
}

func TestGetDoctorsByHospitalID_ExactRows(t *testing.T) {
	db := newHospitalTestDB(t)
	seedTwoHospitals(t, db)
	repo := NewHospitalRepo(db)

	doctors, err := repo.GetDoctorsByHospitalID(1)
	assert.NoError(t, err)
	if assert.Len(t, doctors, 2) {
		assert.Equal(t, "Brown", doctors[0].FirstName)
		if assert.NotNil(t, doctors[0].Phone) {
			assert.Equal(t, "555-1234", *doctors[0].Phone)
		}
		assert.Nil(t, doctors[1].Phone)
		for _, d := range doctors {
			assert.Equal(t, uint(1), d.HospitalID)
		}
	}
}

func TestGetDepartmentsByHospitalID_NoRows(t *testing.T) {
	db := newHospitalTestDB(t)
	hospital := models.Hospital{Name: "Empty", City: "Nowhere", State: "KS", Phone: "555-0000"}
	require.NoError(t, db.Create(&hospital).Error)
	repo := NewHospitalRepo(db)

	departments, err := repo.GetDepartmentsByHospitalID(hospital.ID)
	assert.NoError(t, err)
	assert.NotNil(t, departments)
	assert.Empty(t, departments)
}
