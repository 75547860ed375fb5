package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issuetracker/internal/shared/errors"
)

// ErrorPayload is the body returned for every failed request.
type ErrorPayload struct {
	Message string `json:"message"`
}

// ErrorResponse sends an error response with the given status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorPayload{Message: message})
}

// ErrorResponseWithError sends an error response based on the error type.
// AppErrors carry their own status code; anything else becomes a generic 500
// so storage details never leak into the response body.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		ErrorResponse(c, appErr.Code, appErr.Message)
		return
	}

	ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
}

// BindingErrorResponse sends a 400 response for request body binding failures.
func BindingErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
}
