package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-assist-service/internal/models"
	"hospital-assist-service/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockHospitalDirectory struct {
	out *models.HospitalDetail
	err error
}

func (m *mockHospitalDirectory) GetHospitalDetails(_ uint) (*models.HospitalDetail, error) {
	return m.out, m.err
}

func strptr(s string) *string { return &s }

func setupHospitalRouter(m HospitalDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHospitalHandler(m)
	r.GET("/hospital/:hospital_id", h.GetHospital)
	return r
}

func TestGetHospital_Found(t *testing.T) {
	mock := &mockHospitalDirectory{
		out: &models.HospitalDetail{
			Hospital: models.Hospital{
				ID:    1,
				Name:  "Springfield General",
				City:  "Springfield",
				State: "IL",
				Phone: "555-0100",
			},
			Departments: []models.Department{
				{ID: 10, Name: "Pediatrics", HospitalID: 1},
			},
			Doctors: []models.Doctor{
				{ID: 100, FirstName: "Brown", LastName: "Smith", Phone: strptr("555-1234"), HospitalID: 1, DepartmentID: 10},
			},
		},
	}
	r := setupHospitalRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/hospital/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"name":"Springfield General"`)
	assert.Contains(t, body, `"departments":[{`)
	assert.Contains(t, body, `"Pediatrics"`)
	assert.Contains(t, body, `"555-1234"`)
}

func TestGetHospital_NotFound(t *testing.T) {
	mock := &mockHospitalDirectory{err: repository.ErrHospitalNotFound}
	r := setupHospitalRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/hospital/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Hospital not found"}`, w.Body.String())
}

func TestGetHospital_StorageError(t *testing.T) {
	mock := &mockHospitalDirectory{err: errors.New("disk I/O error")}
	r := setupHospitalRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/hospital/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Database error: disk I/O error")
}

func TestGetHospital_InvalidID(t *testing.T) {
	mock := &mockHospitalDirectory{}
	r := setupHospitalRouter(mock)

	req := httptest.NewRequest(http.MethodGet, "/hospital/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid hospital ID")
}
