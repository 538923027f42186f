package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/residenhealth/patient-sync-api/pkg/errors"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError sends an error response. Internal and foreign errors are
// reported generically so storage details never leak to the caller.
func RespondWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}
	c.JSON(status, Response{
		Success: false,
		Error:   message,
	})
}

// StatusFor maps an error to its HTTP status code.
func StatusFor(err error) int {
	switch errors.KindOf(err) {
	case errors.KindValidation:
		return http.StatusBadRequest
	case errors.KindNotFound, errors.KindMismatch:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
