package api

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the public warframe.market v1 endpoint.
const DefaultBaseURL = "https://api.warframe.market/v1"

// Admitter gates requests against the marketplace rate limit.
// *ratelimit.Limiter satisfies it.
type Admitter interface {
	TryAdmit() bool
}

// Client provides access to the warframe.market REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    Admitter
	logger     *slog.Logger

	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a new REST API client. A nil limiter disables
// throttling (useful in tests).
func NewClient(baseURL string, limiter Admitter, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter:      limiter,
		logger:       slog.Default(),
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithBackoff sets the sleep between rate-limit admit attempts.
func WithBackoff(d time.Duration) ClientOption {
	return func(c *Client) {
		c.retryBackoff = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// CloseIdleConnections releases the transport's idle connections.
// Called once during tool shutdown.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
