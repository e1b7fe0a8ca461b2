package gaconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/muurk/biollante/internal/logging"
	"github.com/muurk/biollante/internal/version"
)

const (
	// RequestIDHeader carries the id used to correlate a submission in logs
	RequestIDHeader = "X-Request-ID"

	// maxBodyLog caps how much of a response body is kept on errors
	maxBodyLog = 512
)

// Client sends configurations to the interactive job endpoint.
// It makes exactly one request per call: no retries, and no timeout unless
// one is set.
type Client struct {
	// Endpoint is the URL the job accepts user input on
	// (e.g., "http://rodan.local/interactive/<run-job-uuid>/")
	Endpoint string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// UserAgent is sent with every request
	UserAgent string
}

// Response is the job's answer to a submission
type Response struct {
	RequestID  string
	StatusCode int
	Status     string
	Body       []byte
	Duration   time.Duration
}

// NewClient creates a client for the given endpoint
func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
		UserAgent:  "biollante-cfg/" + version.Version,
	}
}

// SetTimeout sets the HTTP request timeout (0 disables it)
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// Start POSTs the configuration with the start discriminator
func (c *Client) Start(ctx context.Context, cfg *Configuration) (*Response, error) {
	return c.post(ctx, MethodStart, NewStartRequest(cfg))
}

// Finish POSTs the finish discriminator, which asks the job to keep the
// latest classifier and end
func (c *Client) Finish(ctx context.Context) (*Response, error) {
	return c.post(ctx, MethodFinish, NewFinishRequest())
}

// post performs a single JSON POST
func (c *Client) post(ctx context.Context, method string, payload any) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, NewEncodeError("failed to encode request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, NewNetworkError("failed to create POST request", c.Endpoint, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	logging.Debug("Sending request",
		zap.String("endpoint", c.Endpoint),
		zap.String("method", method),
		zap.String("request_id", requestID),
		zap.Int("body_bytes", len(body)),
	)

	started := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, NewNetworkError("POST request failed", c.Endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewNetworkError("failed to read response body", c.Endpoint, err)
	}

	result := &Response{
		RequestID:  requestID,
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       respBody,
		Duration:   time.Since(started),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, NewHTTPError(resp.StatusCode, c.Endpoint, truncate(string(respBody), maxBodyLog))
	}

	return result, nil
}

// truncate shortens s to at most n bytes
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
