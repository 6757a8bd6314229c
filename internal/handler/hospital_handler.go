package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"hospital-assist-service/internal/models"
	"hospital-assist-service/internal/repository"
	"hospital-assist-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// HospitalDirectory is the minimal service surface the handler needs.
type HospitalDirectory interface {
	GetHospitalDetails(id uint) (*models.HospitalDetail, error)
}

type HospitalHandler struct {
	hospitalService HospitalDirectory
}

func NewHospitalHandler(hospitalService HospitalDirectory) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
	}
}

// GetHospital returns hospital info, associated departments, and doctors.
func (h *HospitalHandler) GetHospital(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("hospital_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	detail, err := h.hospitalService.GetHospitalDetails(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Hospital not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
		}
		return
	}

	utils.JSONResponse(c, detail)
}
