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

// UserDirectory is the minimal service surface the handler needs.
type UserDirectory interface {
	GetUserDetails(id uint) (*models.User, error)
}

type UserHandler struct {
	userService UserDirectory
}

func NewUserHandler(userService UserDirectory) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetUser returns user info based on user_id.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUserDetails(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "User not found")
		} else {
			utils.ErrorResponse(c, http.StatusInternalServerError, fmt.Sprintf("Database error: %v", err))
		}
		return
	}

	utils.JSONResponse(c, user)
}
