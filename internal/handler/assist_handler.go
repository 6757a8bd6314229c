package handler

import (
	"context"
	"net/http"

	"hospital-assist-service/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PhoneFinder is the minimal service surface the handler needs.
type PhoneFinder interface {
	FindDoctorPhone(ctx context.Context, userQuery string, hospitalID uint) (string, error)
}

type AssistHandler struct {
	assistService PhoneFinder
}

func NewAssistHandler(assistService PhoneFinder) *AssistHandler {
	return &AssistHandler{
		assistService: assistService,
	}
}

type callWatsonxRequest struct {
	StringInput string `json:"string_input" binding:"required"`
	HospitalID  uint   `json:"hospital_id" binding:"required"`
}

// CallWatsonx forwards the user's request plus the aggregated hospital data
// to the model and returns the generated text. Missing configuration,
// aggregation failures and transport failures all map to 500.
func (h *AssistHandler) CallWatsonx(c *gin.Context) {
	var req callWatsonxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	response, err := h.assistService.FindDoctorPhone(c.Request.Context(), req.StringInput, req.HospitalID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response": response,
	})
}
