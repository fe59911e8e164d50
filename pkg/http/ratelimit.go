package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/rand"
)

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_http_client.go github.com/kasuboski/dvrdispatch/pkg/http HTTPClient

const (
	DefaultMaxRetries  = 3
	DefaultBaseBackoff = time.Millisecond * 500
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RetryingClient retries requests the DVR answers with 429 or a transient 5xx.
// The client can be used concurrently.
type RetryingClient struct {
	client      HTTPClient
	baseBackoff time.Duration
	maxRetries  int
}

// ClientOption is a function that can be used to configure a RetryingClient
type ClientOption func(*RetryingClient)

// NewRetryingClient creates a new RetryingClient
func NewRetryingClient(opts ...ClientOption) *RetryingClient {
	c := &RetryingClient{
		client:      http.DefaultClient,
		maxRetries:  DefaultMaxRetries,
		baseBackoff: DefaultBaseBackoff,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithMaxRetries sets the maximum number of attempts for the client
func WithMaxRetries(maxRetries int) ClientOption {
	return func(c *RetryingClient) {
		c.maxRetries = maxRetries
	}
}

// WithBaseBackoff sets the base backoff time for the client
func WithBaseBackoff(baseBackoff time.Duration) ClientOption {
	return func(c *RetryingClient) {
		c.baseBackoff = baseBackoff
	}
}

// WithHTTPClient sets the http client to use for the client
func WithHTTPClient(client HTTPClient) ClientOption {
	return func(c *RetryingClient) {
		c.client = client
	}
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// Do executes the HTTP request, retrying rate limited and transient failures.
// Waiting between attempts stops early if the request context is done.
// If the maximum number of retries is reached an error is returned.
func (c *RetryingClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 && req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, err
			}
			req.Body = body
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}

		wait := c.getRetryAfter(resp, attempt)
		resp.Body.Close()

		if attempt == c.maxRetries-1 {
			break
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	return nil, fmt.Errorf("request to %s still failing after %d attempts", req.URL.Path, c.maxRetries)
}

// getRetryAfter calculates the appropriate retry delay
func (c *RetryingClient) getRetryAfter(resp *http.Response, attempt int) time.Duration {
	retryAfterHeader := resp.Header.Get("Retry-After")

	if retryAfterHeader != "" {
		seconds, err := strconv.Atoi(retryAfterHeader)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}

	// 2^n backoff
	expBackoff := time.Duration(1<<attempt) * c.baseBackoff
	if c.baseBackoff <= 0 {
		return expBackoff
	}

	// staggers the backoff to avoid a thundering herd
	jitter := time.Duration(rand.Int63n(int64(c.baseBackoff)))

	return expBackoff + jitter
}
