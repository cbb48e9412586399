// Package cwa implements the weather provider adapter for the Central
// Weather Administration (CWA) Open Data API. It fetches the 36-hour
// forecast dataset, optionally filtered by location name.
//
// For the upstream API see https://opendata.cwa.gov.tw/dist/opendata-swagger.html
package cwa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/shkao/mcp-hub/internal/domain"
)

// ProviderName is the unique identifier for the CWA Open Data provider.
const ProviderName = "cwa_open_data"

// CredentialEnv is the environment variable holding the CWA authorization key.
const CredentialEnv = "CWA_API_KEY"

const (
	// defaultBaseURL points at the F-C0032-001 36-hour forecast dataset.
	defaultBaseURL = "https://opendata.cwa.gov.tw/api/v1/rest/datastore/F-C0032-001"
	defaultTimeout = 10 * time.Second
)

// Client fetches weather forecasts from the CWA Open Data API.
// The authorization key is optional: when absent the request is sent without
// one, matching the upstream API's open-data behavior.
type Client struct {
	baseURL    string
	httpClient *http.Client
	credential func() string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the forecast endpoint, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithCredential overrides the credential source. The default reads
// CWA_API_KEY from the process environment at call time.
func WithCredential(fn func() string) Option {
	return func(c *Client) {
		c.credential = fn
	}
}

// NewClient creates a CWA client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		credential: func() string { return os.Getenv(CredentialEnv) },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Forecast fetches the 36-hour weather forecast and returns the upstream
// response body as raw JSON. An empty locationName returns every available
// location; otherwise the upstream filters to the named city or county.
func (c *Client) Forecast(ctx context.Context, locationName string) (json.RawMessage, error) {
	params := url.Values{}
	if key := c.credential(); key != "" {
		params.Set("Authorization", key)
	}
	if locationName != "" {
		params.Set("locationName", locationName)
	}

	endpoint := c.baseURL
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamTransportError(ProviderName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.NewUpstreamTransportError(ProviderName, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, domain.NewUpstreamError(ProviderName, resp.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, domain.NewUpstreamTransportError(ProviderName, fmt.Errorf("upstream returned a non-JSON body"))
	}

	return json.RawMessage(body), nil
}
