package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// DefaultEndpoint is the MentraFlow receive-export URL.
const DefaultEndpoint = "https://resume-session-13.preview.emergentagent.com/api/mcp/receive-export"

// RequestIDHeader carries the per-export correlation id.
const RequestIDHeader = "X-Request-Id"

// Client posts export envelopes to a fixed endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
	now        func() time.Time
}

// Endpoint returns the backend URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Export sends userID and conversations to the backend and decodes its result.
// Arguments are forwarded as given; the backend is responsible for validation.
func (c *Client) Export(ctx context.Context, userID, conversations json.RawMessage) (*Result, error) {
	body, err := json.Marshal(NewEnvelope(userID, conversations, c.now()))
	if err != nil {
		return nil, fmt.Errorf("failed to encode envelope: %w", err)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	requestID := uuid.New().String()
	request.ContentLength = int64(len(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		request.Header.Set("User-Agent", c.userAgent)
	}

	logger := c.logger.With("request_id", requestID)
	logger.Info("sending export", "endpoint", c.endpoint, "bytes", len(body))
	started := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		logger.Warn("export failed", "error", err)
		return nil, err
	}
	defer response.Body.Close()

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	logger.Info("export finished", "status", response.StatusCode, "elapsed", time.Since(started))
	if response.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: response.StatusCode, Body: string(data)}
	}
	result := &Result{}
	if err := json.Unmarshal(data, result); err != nil {
		return nil, fmt.Errorf("invalid response body: %w", err)
	}
	return result, nil
}

// New creates a Client for endpoint; an empty endpoint selects DefaultEndpoint.
func New(endpoint string, options ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	ret := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}
