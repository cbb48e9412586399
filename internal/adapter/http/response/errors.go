// Package response provides standardized HTTP response builders for the tool hub API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: MsgInvalidRequestBody,
	})
}

// ValidationError writes a 400 Bad Request response with the given message.
func ValidationError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeValidationError,
		Message: message,
	})
}

// ToolNotFound writes a 404 Not Found response for unknown tool names.
func ToolNotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeToolNotFound,
		Message: message,
	})
}

// MissingCredential writes a 503 Service Unavailable response for tools whose
// upstream credential is not configured.
func MissingCredential(c echo.Context, message string) error {
	return c.JSON(http.StatusServiceUnavailable, &ErrorDetail{
		Code:    CodeMissingCredential,
		Message: message,
	})
}

// UpstreamError writes a 502 Bad Gateway response for upstream provider failures.
func UpstreamError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadGateway, &ErrorDetail{
		Code:    CodeUpstreamError,
		Message: message,
	})
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgTimeout,
	})
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return c.JSON(http.StatusGatewayTimeout, &ErrorDetail{
		Code:    CodeTimeout,
		Message: MsgRequestCancelled,
	})
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
