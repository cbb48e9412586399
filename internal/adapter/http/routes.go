// Package http provides the HTTP handler layer for the tool hub API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all tool hub API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ToolHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Tools group
	tools := api.Group("/tools")
	tools.GET("", h.ListTools)
	tools.POST("/:name", h.InvokeTool)
}
