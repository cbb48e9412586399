// Package http provides the HTTP handler layer for the tool hub API.
// It handles request parsing, response formatting, and error mapping.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/shkao/mcp-hub/internal/adapter/http/response"
	"github.com/shkao/mcp-hub/internal/domain"
	"github.com/shkao/mcp-hub/internal/usecase"
)

// ToolHandler handles HTTP requests for tool-related endpoints.
type ToolHandler struct {
	useCase usecase.ToolInvoker
}

// NewToolHandler creates a new ToolHandler with the given use case.
func NewToolHandler(uc usecase.ToolInvoker) *ToolHandler {
	return &ToolHandler{
		useCase: uc,
	}
}

// ListTools handles GET /api/v1/tools
//
// @Summary List available tools
// @Description List every registered tool with its parameter schema
// @Tags tools
// @Produce json
// @Success 200 {object} ToolListResponse
// @Router /api/v1/tools [get]
func (h *ToolHandler) ListTools(c echo.Context) error {
	definitions := h.useCase.ListTools()
	return response.OK(c, ToToolListResponse(definitions))
}

// InvokeTool handles POST /api/v1/tools/:name
//
// @Summary Invoke a tool
// @Description Invoke a registered tool by name with a JSON argument object
// @Tags tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name"
// @Param request body map[string]interface{} false "Tool arguments"
// @Success 200 {object} InvokeResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Unknown tool"
// @Failure 502 {object} response.ErrorDetail "Upstream provider error"
// @Failure 503 {object} response.ErrorDetail "Missing credential"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/tools/{name} [post]
func (h *ToolHandler) InvokeTool(c echo.Context) error {
	name := c.Param("name")

	args, err := decodeArgs(c)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	result, err := h.useCase.Invoke(c.Request().Context(), name, args)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToInvokeResponse(result))
}

// decodeArgs reads the request body as a JSON object. An empty body is
// treated as an empty argument object.
func decodeArgs(c echo.Context) (map[string]any, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal(body, &args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ToolHandler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrUnknownTool) {
		return response.ToolNotFound(c, err.Error())
	}

	if errors.Is(err, domain.ErrMissingCredential) {
		return response.MissingCredential(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		return response.UpstreamError(c, upstreamErr.Error())
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationError(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ToolHandler) Health(c echo.Context) error {
	return response.Health(c)
}
