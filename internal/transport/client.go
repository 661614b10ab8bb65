// Package transport provides the HTTP fetch client used by all source
// extractors: bounded retries with linear backoff, JSON decoding, and
// detection of error payloads the league API returns with a 200 status.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nateprich/mfl-salary-top30/pkg/errors"
	"github.com/nateprich/mfl-salary-top30/pkg/logging"
)

// Defaults for the fetch client.
const (
	DefaultTimeout     = 30 * time.Second
	DefaultMaxAttempts = 3
	DefaultBackoff     = 1 * time.Second
)

// Client fetches JSON documents over HTTP with a bounded retry budget.
// Logging goes through the context logger (logging.Ctx), so fetches carry
// whatever run and season fields the caller has attached.
type Client struct {
	http        *http.Client
	maxAttempts int
	backoff     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithRetries sets the attempt budget and the base backoff duration.
func WithRetries(maxAttempts int, backoff time.Duration) Option {
	return func(c *Client) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		c.backoff = backoff
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a fetch client with the default retry budget.
func New(opts ...Option) *Client {
	c := &Client{
		http:        &http.Client{Timeout: DefaultTimeout},
		maxAttempts: DefaultMaxAttempts,
		backoff:     DefaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorEnvelope probes the response body for an explicit error field. The
// league API reports throttling and maintenance this way with a 200 status,
// so it must count as a retryable failure, not a valid payload.
type errorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

// FetchJSON gets url and decodes the body into target. A transport failure,
// a non-success status, and an error payload are all retried with linear
// backoff (attempt number times the base delay); once the budget is
// exhausted the last failure is returned as a *errors.FetchError.
func (c *Client) FetchJSON(ctx context.Context, url string, target any) error {
	log := logging.Ctx(ctx)
	var lastErr error
	lastStatus := 0

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			wait := time.Duration(attempt-1) * c.backoff
			log.Debug().
				Str("url", url).
				Int("attempt", attempt).
				Dur("backoff", wait).
				Msg("retrying fetch")
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}

		status, err := c.fetchOnce(ctx, url, target)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		lastErr = err
		if status != 0 {
			lastStatus = status
		}
		log.Warn().
			Err(err).
			Str("url", url).
			Int("attempt", attempt).
			Int("max_attempts", c.maxAttempts).
			Msg("fetch attempt failed")
	}

	return &errors.FetchError{
		URL:      url,
		Attempts: c.maxAttempts,
		Status:   lastStatus,
		Err:      lastErr,
	}
}

// fetchOnce performs a single GET and decode. It returns the HTTP status for
// failures at or above the HTTP layer, 0 otherwise.
func (c *Client) fetchOnce(ctx context.Context, url string, target any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var probe errorEnvelope
	if err := json.Unmarshal(body, &probe); err != nil {
		return resp.StatusCode, errors.WrapParse("json", "response body", err)
	}
	if msg := upstreamMessage(probe.Error); msg != "" {
		return resp.StatusCode, &errors.UpstreamError{URL: url, Message: msg}
	}

	if err := json.Unmarshal(body, target); err != nil {
		return resp.StatusCode, errors.WrapParse("json", "response body", err)
	}
	return resp.StatusCode, nil
}

// upstreamMessage extracts a printable message from an error field that may
// be a string, an object, or absent.
func upstreamMessage(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return string(trimmed)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
