// Package tool contains the callable tool implementations exposed by the hub.
// Each tool satisfies domain.Tool: a definition with a JSON-schema parameter
// object plus an Invoke method operating on loosely-typed arguments.
package tool

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shkao/mcp-hub/internal/domain"
)

// stringArg reads an optional string argument. Absent keys return "".
func stringArg(args map[string]any, key string) (string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", domain.ErrInvalidRequest, key)
	}
	return s, nil
}

// intArg reads an integer argument, falling back to def when absent.
// JSON numbers arrive as float64; non-integral values are rejected.
func intArg(args map[string]any, key string, def int) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return def, nil
	}
	return coerceInt(key, raw)
}

// optionalIntArg reads an optional integer argument that may also arrive as
// its string representation (e.g. a numeric filter typed as text). Absent
// keys return nil.
func optionalIntArg(args map[string]any, key string) (*int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	if s, isString := raw.(string); isString {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidRequest, key, s)
		}
		return &n, nil
	}
	n, err := coerceInt(key, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// optionalBoolArg reads an optional boolean argument. Absent keys return nil.
func optionalBoolArg(args map[string]any, key string) (*bool, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}
	b, ok := raw.(bool)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a boolean", domain.ErrInvalidRequest, key)
	}
	return &b, nil
}

// stringListArg reads an optional list-of-strings argument. A comma-separated
// string is accepted as a convenience and split into entries.
func stringListArg(args map[string]any, key string) ([]string, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch v := raw.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts, nil
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a list of strings", domain.ErrInvalidRequest, key)
			}
			list = append(list, s)
		}
		return list, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a list of strings", domain.ErrInvalidRequest, key)
	}
}

// coerceInt converts a decoded JSON value to int, rejecting fractions.
func coerceInt(key string, raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s must be an integer, got %v", domain.ErrInvalidRequest, key, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidRequest, key)
	}
}
