package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/shkao/mcp-hub/internal/domain"
)

// ProviderName is the unique identifier for the SerpAPI Google Flights provider.
const ProviderName = "serpapi_google_flights"

// CredentialEnv is the environment variable holding the API key.
const CredentialEnv = "SERPAPI_API_KEY"

const (
	defaultBaseURL = "https://serpapi.com/search"
	defaultTimeout = 10 * time.Second
	engineName     = "google_flights"
)

// Client performs flight searches against the SerpAPI Google Flights API.
// Each search is a single synchronous GET: no caching, no retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	credential func() string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the search endpoint, mainly for tests.
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
// SERPAPI_API_KEY from the process environment at call time.
func WithCredential(fn func() string) Option {
	return func(c *Client) {
		c.credential = fn
	}
}

// NewClient creates a SerpAPI client with the given options.
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

// Search executes a flight search and returns the upstream response body as
// raw JSON. The credential check precedes validation and I/O: a missing key
// fails with domain.ErrMissingCredential before any network attempt. A
// non-success status propagates as *domain.UpstreamError, unmodified and
// unretried.
func (c *Client) Search(ctx context.Context, q domain.FlightQuery) (json.RawMessage, error) {
	apiKey := c.credential()
	if apiKey == "" {
		return nil, fmt.Errorf("%w: environment variable %s is not set", domain.ErrMissingCredential, CredentialEnv)
	}

	params, err := BuildParams(q)
	if err != nil {
		return nil, err
	}
	params.Set("engine", engineName)
	params.Set("api_key", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
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
