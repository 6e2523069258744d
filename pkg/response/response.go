package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorDetail is the {code, details} pair carried on every logical failure.
type ErrorDetail struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// Envelope is the uniform response body. Logical failures still ship with
// HTTP 200; callers inspect success/error.code, not the transport status.
type Envelope struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
	Message string       `json:"message"`
}

// OK writes a success envelope.
func OK(c *gin.Context, data any, message string) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Message: message})
}

// Fail writes a logical-failure envelope with HTTP 200.
func Fail(c *gin.Context, code, details, message string) {
	c.JSON(http.StatusOK, Envelope{
		Success: false,
		Error:   &ErrorDetail{Code: code, Details: details},
		Message: message,
	})
}

// AbortFail writes a logical-failure envelope with HTTP 200 and stops the
// handler chain. Used by the bearer-auth middleware.
func AbortFail(c *gin.Context, code, details, message string) {
	c.AbortWithStatusJSON(http.StatusOK, Envelope{
		Success: false,
		Error:   &ErrorDetail{Code: code, Details: details},
		Message: message,
	})
}

// AbortForbidden is the one transport-level failure in the API: the admin
// gate responds 403 instead of a 200 envelope.
func AbortForbidden(c *gin.Context, details, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Envelope{
		Success: false,
		Error:   &ErrorDetail{Code: "FORBIDDEN", Details: details},
		Message: message,
	})
}

// Internal writes an unstructured failure; store-level errors end up here.
func Internal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, Envelope{Success: false, Message: message})
}
