package domain

import (
	"context"
	"sort"
	"sync"
)

// ToolDefinition describes the metadata the hub exposes for a tool.
type ToolDefinition struct {
	// Name is the unique tool identifier (e.g. "search_flights")
	Name string `json:"name"`

	// Description tells callers what the tool does and how to use it
	Description string `json:"description"`

	// Parameters is the JSON Schema object describing the accepted arguments
	Parameters map[string]any `json:"parameters"`
}

// Tool is the uniform interface every callable tool implements.
//
//go:generate mockgen -source=tool.go -destination=mock_tool.go -package=domain
type Tool interface {
	// Name returns the unique tool identifier
	Name() string

	// Definition returns the metadata exposed to callers
	Definition() ToolDefinition

	// Invoke executes the tool with the given arguments. Arguments have
	// already been checked against the definition's parameter schema.
	Invoke(ctx context.Context, args map[string]any) (any, error)
}

// ToolResult is the outcome of a successful tool invocation.
type ToolResult struct {
	// Tool is the name of the invoked tool
	Tool string `json:"tool"`

	// Output is the tool's return value (shape varies per tool)
	Output any `json:"output"`

	// DurationMs is how long the invocation took
	DurationMs int64 `json:"duration_ms"`
}

// ToolRegistry manages the collection of available tools.
// It is safe for concurrent use.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates an empty tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. A tool registered under an existing
// name replaces the previous one.
func (r *ToolRegistry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns the tool registered under the given name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// GetAll returns all registered tools sorted by name.
func (r *ToolRegistry) GetAll() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Tool, 0, len(r.tools))
	for _, t := range r.tools {
		all = append(all, t)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].Name() < all[j].Name()
	})
	return all
}

// Names returns the names of all registered tools sorted alphabetically.
func (r *ToolRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
