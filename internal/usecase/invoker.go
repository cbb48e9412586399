// Package usecase contains the business logic for tool invocation.
// It resolves tools from the registry, checks arguments against each tool's
// parameter schema, and dispatches the call.
package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/shkao/mcp-hub/internal/domain"
	"github.com/shkao/mcp-hub/internal/infrastructure/timeutil"
)

// ToolInvoker defines the interface for tool invocation operations.
type ToolInvoker interface {
	// Invoke resolves the named tool, validates the arguments against its
	// parameter schema, and executes it.
	Invoke(ctx context.Context, name string, args map[string]any) (*domain.ToolResult, error)

	// ListTools returns the definitions of all registered tools.
	ListTools() []domain.ToolDefinition
}

// toolInvoker implements ToolInvoker on top of a domain.ToolRegistry.
type toolInvoker struct {
	registry *domain.ToolRegistry
	clock    timeutil.Clock
}

// Config contains configuration options for the invoker.
type Config struct {
	// Clock measures invocation durations (default: system clock)
	Clock timeutil.Clock
}

// NewToolInvoker creates a ToolInvoker with the given registry and
// configuration. If config is nil, defaults are used.
func NewToolInvoker(registry *domain.ToolRegistry, config *Config) ToolInvoker {
	inv := &toolInvoker{
		registry: registry,
		clock:    timeutil.NewRealClock(),
	}
	if config != nil && config.Clock != nil {
		inv.clock = config.Clock
	}
	return inv
}

// Invoke implements ToolInvoker.Invoke.
func (inv *toolInvoker) Invoke(ctx context.Context, name string, args map[string]any) (*domain.ToolResult, error) {
	t, ok := inv.registry.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTool, name)
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := validateArgs(t.Definition(), args); err != nil {
		return nil, err
	}

	start := inv.clock.Now()
	output, err := t.Invoke(ctx, args)
	if err != nil {
		return nil, err
	}

	return &domain.ToolResult{
		Tool:       name,
		Output:     output,
		DurationMs: inv.clock.Now().Sub(start).Milliseconds(),
	}, nil
}

// ListTools implements ToolInvoker.ListTools.
func (inv *toolInvoker) ListTools() []domain.ToolDefinition {
	tools := inv.registry.GetAll()
	definitions := make([]domain.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		definitions = append(definitions, t.Definition())
	}
	return definitions
}

// validateArgs checks the raw arguments against the tool's JSON-schema
// parameter object. Schema violations fail with a wrapped ErrInvalidRequest
// carrying every violation message.
func validateArgs(def domain.ToolDefinition, args map[string]any) error {
	if def.Parameters == nil {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(def.Parameters)
	documentLoader := gojsonschema.NewGoLoader(args)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("%w: argument validation failed: %v", domain.ErrInvalidRequest, err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, desc.String())
	}
	sort.Strings(messages)
	return fmt.Errorf("%w: %s", domain.ErrInvalidRequest, strings.Join(messages, "; "))
}
