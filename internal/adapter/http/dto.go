package http

import (
	"github.com/shkao/mcp-hub/internal/domain"
)

// ToolDefinitionDTO describes a callable tool in the listing response.
type ToolDefinitionDTO struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// ToolListResponse is the payload for the tool listing endpoint.
type ToolListResponse struct {
	Tools []ToolDefinitionDTO `json:"tools"`
}

// InvokeResponse is the payload for a successful tool invocation.
type InvokeResponse struct {
	Tool       string `json:"tool"`
	DurationMs int64  `json:"duration_ms"`
	Output     any    `json:"output"`
}

// ToToolListResponse converts domain tool definitions to the listing DTO.
func ToToolListResponse(definitions []domain.ToolDefinition) *ToolListResponse {
	resp := &ToolListResponse{
		Tools: make([]ToolDefinitionDTO, len(definitions)),
	}
	for i, def := range definitions {
		resp.Tools[i] = ToolDefinitionDTO{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  def.Parameters,
		}
	}
	return resp
}

// ToInvokeResponse converts a domain ToolResult to the invocation DTO.
func ToInvokeResponse(result *domain.ToolResult) *InvokeResponse {
	if result == nil {
		return nil
	}
	return &InvokeResponse{
		Tool:       result.Tool,
		DurationMs: result.DurationMs,
		Output:     result.Output,
	}
}
