// Package api implements the HTTP client for the phish.directory backend.
// All business logic (classification, scoring, persistence) lives behind
// this API; the dashboard only issues requests and renders the results.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/phishdirectory/dashboard/internal/metrics"
)

const (
	// ClientTimeout is the total request timeout.
	ClientTimeout = 30 * time.Second
	// DialTimeout is the connection timeout.
	DialTimeout = 10 * time.Second
	// TLSHandshakeTimeout is the TLS negotiation timeout.
	TLSHandshakeTimeout = 10 * time.Second
	// ResponseHeaderTimeout is time to wait for response headers.
	ResponseHeaderTimeout = 15 * time.Second

	// maxResponseBytes caps how much of a backend response is read.
	maxResponseBytes = 4 << 20

	userAgent = "PhishDirectory-Dashboard/1.0"

	// HeaderRequestID carries the outbound correlation ID.
	HeaderRequestID = "X-Request-ID"
)

// TokenSource provides the persisted session token at request time.
// An empty token with a nil error means no session is stored.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client issues requests against the backend REST API.
// It is stateless across calls and never retries.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	recorder metrics.Recorder
}

// NewClient creates a Client for the given base URL.
// The recorder may be metrics.NewNoop().
func NewClient(baseURL string, tokens TokenSource, recorder metrics.Recorder) *Client {
	return &Client{
		baseURL:  baseURL,
		http:     newHTTPClient(ClientTimeout),
		tokens:   tokens,
		recorder: recorder,
	}
}

// NewClientWithTimeout is NewClient with a custom total request timeout.
func NewClientWithTimeout(baseURL string, tokens TokenSource, recorder metrics.Recorder, timeout time.Duration) *Client {
	c := NewClient(baseURL, tokens, recorder)
	c.http.Timeout = timeout
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// newHTTPClient creates an HTTP client configured for backend calls.
// It has appropriate timeouts and does not follow redirects.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   DialTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   TLSHandshakeTimeout,
			ResponseHeaderTimeout: ResponseHeaderTimeout,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
			IdleConnTimeout:       90 * time.Second,
			DisableCompression:    false,
		},
		// Don't follow redirects - the backend never redirects legitimately
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// call performs a single request against <base-url><endpoint>.
// When requiresAuth is set, the token is read from the TokenSource at
// request time; a missing token fails with ErrAuthRequired before any
// network activity. A non-nil out is filled from the JSON response body.
func (c *Client) call(ctx context.Context, method, endpoint string, body any, requiresAuth bool, out any) error {
	var token string
	if requiresAuth {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if tok == "" {
			return ErrAuthRequired
		}
		token = tok
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(HeaderRequestID, ulid.Make().String())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	c.recorder.ObserveAPIRequestDuration(time.Since(start))
	if err != nil {
		c.recorder.IncAPIRequest(metrics.OutcomeNetworkError)
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.recorder.IncAPIRequest(metrics.OutcomeNetworkError)
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.recorder.IncAPIRequest(metrics.OutcomeAPIError)
		return &Error{Status: resp.StatusCode, Message: errorMessage(data)}
	}

	c.recorder.IncAPIRequest(metrics.OutcomeSuccess)

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// errorMessage extracts a human-readable message from an error body.
// Falls back to a generic message when the body is not JSON or carries
// no message field.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Message == "" {
		return FallbackErrorMessage
	}
	return body.Message
}
