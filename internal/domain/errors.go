package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tool hub. Callers match these with errors.Is
// to map failures to transport-level responses.
var (
	// ErrInvalidRequest indicates malformed or logically inconsistent input.
	// It is always raised before any network call and is wrapped with a
	// field-referencing message.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMissingCredential indicates a required API credential is absent from
	// the environment. It is raised before validation and before any I/O.
	ErrMissingCredential = errors.New("missing credential")

	// ErrUnknownTool indicates an invocation referenced a tool that is not
	// registered.
	ErrUnknownTool = errors.New("unknown tool")
)

// UpstreamError indicates an external API returned a non-success response or
// the request to it failed at the transport level. It is propagated to the
// caller unmodified: no retry, no backoff, single attempt.
type UpstreamError struct {
	// Provider identifies which upstream API failed
	Provider string

	// StatusCode is the HTTP status returned by the upstream (0 for
	// transport-level failures)
	StatusCode int

	// Body holds a snippet of the upstream response body, if any
	Body string

	// Err is the underlying transport error, if any
	Err error
}

// NewUpstreamError creates an UpstreamError for a non-success HTTP response.
func NewUpstreamError(provider string, statusCode int, body string) *UpstreamError {
	const maxBodySnippet = 512
	if len(body) > maxBodySnippet {
		body = body[:maxBodySnippet]
	}
	return &UpstreamError{
		Provider:   provider,
		StatusCode: statusCode,
		Body:       body,
	}
}

// NewUpstreamTransportError creates an UpstreamError wrapping a transport
// failure (connection refused, timeout, malformed response body).
func NewUpstreamTransportError(provider string, err error) *UpstreamError {
	return &UpstreamError{
		Provider: provider,
		Err:      err,
	}
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("provider %s: upstream returned status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("provider %s: upstream returned status %d", e.Provider, e.StatusCode)
}

// Unwrap returns the underlying transport error, if any.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}
