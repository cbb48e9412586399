// Package response provides standardized HTTP response builders for the tool hub API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeValidationError   = "validation_error"
	CodeToolNotFound      = "tool_not_found"
	CodeMissingCredential = "missing_credential"
	CodeUpstreamError     = "upstream_error"
	CodeTimeout           = "timeout"
	CodeInternalError     = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
