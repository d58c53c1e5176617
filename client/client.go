package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ipiloni/phishintel/types"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ConfigClient defines the interface for a client of the configuration endpoint
type ConfigClient interface {
	// Configuration discovery
	GetConfigURL(ctx context.Context) (*types.ConfigURLResponse, error)
	GetHealth(ctx context.Context) (*types.HealthResponse, error)

	// Configuration
	SetTimeout(timeout time.Duration)
	SetHTTPClient(client *http.Client)
	GetBaseURL() string

	// Logger configuration
	SetLogger(logger *zap.Logger)
	GetLogger() *zap.Logger
}

var _ ConfigClient = (*Client)(nil)

// Config holds configuration options for the config client
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	UserAgent  string
	Headers    map[string]string
	Logger     *zap.Logger

	// TokenSource, when set, supplies the bearer token of every request
	TokenSource oauth2.TokenSource
}

// DefaultConfig returns a default configuration
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:   baseURL,
		Timeout:   30 * time.Second,
		UserAgent: "PhishIntel-Go-Client/1.0",
		Headers:   make(map[string]string),
		Logger:    zap.NewNop(),
	}
}

// Client represents a configuration endpoint client
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new config client with default configuration
func NewClient(baseURL string) ConfigClient {
	config := DefaultConfig(baseURL)
	return NewClientWithConfig(config)
}

// NewClientWithLogger creates a new config client with a custom logger
func NewClientWithLogger(baseURL string, logger *zap.Logger) ConfigClient {
	config := DefaultConfig(baseURL)
	if logger != nil {
		config.Logger = logger
	}
	return NewClientWithConfig(config)
}

// NewClientWithConfig creates a new config client with custom configuration
func NewClientWithConfig(config *Config) ConfigClient {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: config.Timeout,
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config:     config,
		httpClient: httpClient,
		logger:     logger,
	}
}

// endpointURL joins the base URL with an absolute endpoint path
func (c *Client) endpointURL(path string) string {
	return strings.TrimSuffix(c.config.BaseURL, "/") + path
}

// GetConfigURL asks the configuration endpoint for the backend base URL.
// A non-200 response yields a *StatusError. A body that is not JSON, or is
// JSON null, yields a *DecodeError.
func (c *Client) GetConfigURL(ctx context.Context) (*types.ConfigURLResponse, error) {
	endpoint := c.endpointURL(types.ConfigURLPath)
	c.logger.Debug("requesting backend url", zap.String("url", endpoint))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	resp, err := decodeConfigURL(body)
	if err != nil {
		c.logger.Debug("failed to decode config response", zap.Error(err))
		return nil, &DecodeError{Body: body, Err: err}
	}

	c.logger.Debug("config response received", zap.String("backend_url", resp.URL))
	return resp, nil
}

// decodeConfigURL accepts any JSON value except null. Only a string "url"
// member of an object is taken; every other shape yields an empty URL.
func decodeConfigURL(body []byte) (*types.ConfigURLResponse, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errNullBody
	}

	resp := &types.ConfigURLResponse{}
	if fields, ok := payload.(map[string]any); ok {
		if url, ok := fields["url"].(string); ok {
			resp.URL = url
		}
	}

	return resp, nil
}

// GetHealth retrieves the health status of the configuration server
func (c *Client) GetHealth(ctx context.Context) (*types.HealthResponse, error) {
	endpoint := c.endpointURL("/health")
	c.logger.Debug("checking health", zap.String("url", endpoint))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var health types.HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}

	c.logger.Debug("health check completed", zap.String("status", string(health.Status)))
	return &health, nil
}

// get performs a GET request and returns the body of a 200 response
func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)

	if c.config.TokenSource != nil {
		token, err := c.config.TokenSource.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to obtain access token: %w", err)
		}
		token.SetAuthHeader(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// setHeaders sets common headers for requests
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")

	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}

	for key, value := range c.config.Headers {
		req.Header.Set(key, value)
	}
}

// SetTimeout sets the timeout for HTTP requests
func (c *Client) SetTimeout(timeout time.Duration) {
	c.config.Timeout = timeout
	c.httpClient.Timeout = timeout
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// GetBaseURL returns the base URL of the client
func (c *Client) GetBaseURL() string {
	return c.config.BaseURL
}

// SetLogger sets the logger for the client
func (c *Client) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
}

// GetLogger returns the logger of the client
func (c *Client) GetLogger() *zap.Logger {
	return c.logger
}
