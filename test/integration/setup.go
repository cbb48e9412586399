// Package integration provides helpers and integration tests for the tool hub.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the invoker use case, tools, and provider clients.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/shkao/mcp-hub/internal/adapter/http"
	"github.com/shkao/mcp-hub/internal/adapter/http/response"
	"github.com/shkao/mcp-hub/internal/domain"
	"github.com/shkao/mcp-hub/internal/usecase"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ToolHandler
}

// NewTestServer creates a new test server with the given tools registered.
func NewTestServer(tools ...domain.Tool) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	registry := domain.NewToolRegistry()
	for _, t := range tools {
		registry.Register(t)
	}

	invoker := usecase.NewToolInvoker(registry, nil)
	handler := httpAdapter.NewToolHandler(invoker)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// InvokeRequest posts an invocation for the named tool.
func (ts *TestServer) InvokeRequest(tool string, args interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/tools/" + tool,
		Body:   args,
	})
}

// ListRequest fetches the tool listing.
func (ts *TestServer) ListRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/tools",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseInvokeResponse parses the response body as an InvokeResponse.
func (r *Response) ParseInvokeResponse() (*httpAdapter.InvokeResponse, error) {
	var resp httpAdapter.InvokeResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseToolList parses the response body as a ToolListResponse.
func (r *Response) ParseToolList() (*httpAdapter.ToolListResponse, error) {
	var resp httpAdapter.ToolListResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body as an error detail.
func (r *Response) ParseError() (*response.ErrorDetail, error) {
	var resp response.ErrorDetail
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
