package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONResponse sends data as-is with status 200. Lookup responses are bare
// row objects, not wrapped in an envelope.
func JSONResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ErrorResponse sends the standard error payload: {"detail": message}
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"detail": message,
	})
}
