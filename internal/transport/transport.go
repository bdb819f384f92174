// Package transport provides HTTP round-trippers shared by the provider
// clients.
package transport

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

// RateLimitAware retries requests that are rejected with 429, honouring the
// Retry-After header. Provider SDK retry policies sit above this and handle
// everything else.
type RateLimitAware struct {
	base http.RoundTripper
}

func WithRateLimitHandling(base http.RoundTripper) *RateLimitAware {
	if base == nil {
		base = http.DefaultTransport
	}
	return &RateLimitAware{base: base}
}

func (t *RateLimitAware) RoundTrip(req *http.Request) (*http.Response, error) {
	// Buffer the body so the request can be replayed after a wait
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		if err := req.Body.Close(); err != nil {
			return nil, fmt.Errorf("failed to close request body: %w", err)
		}
	}

	for {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := t.base.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		wait := retryAfter(resp)
		if resp.StatusCode != http.StatusTooManyRequests || wait <= 0 {
			return resp, nil
		}

		if err := resp.Body.Close(); err != nil {
			return nil, fmt.Errorf("failed to close response body: %w", err)
		}

		log.Printf("Rate limited, waiting %s", wait)
		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(wait):
		}
	}
}

// retryAfter parses the Retry-After header as either a delay in seconds or an
// HTTP date. Returns 0 when absent or unparseable.
func retryAfter(resp *http.Response) time.Duration {
	value := resp.Header.Get("retry-after")
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if at, err := time.Parse(time.RFC1123, value); err == nil {
		return time.Until(at)
	}
	return 0
}
