// Package feed_client is the outbound HTTP driver. Every upstream call in
// the service (feed XML, article pages, handle pages, proxied images) goes
// through a Client so timeouts, the client identity header, per-host rate
// limiting, and body size limits are applied uniformly.
package feed_client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	apperrors "antena/utils/errors"
	"antena/utils/rate_limiter"
)

type Client struct {
	httpClient  *http.Client
	userAgent   string
	maxBody     int64
	rateLimiter *rate_limiter.HostRateLimiter
}

func New(timeout time.Duration, userAgent string, maxBody int64, limiter *rate_limiter.HostRateLimiter) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: timeout},
		userAgent:   userAgent,
		maxBody:     maxBody,
		rateLimiter: limiter,
	}
}

// Get fetches a URL and returns the body and its Content-Type. Non-2xx
// responses are errors; bodies are capped at the client's size limit.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, string, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.WaitForHost(ctx, rawURL); err != nil {
			return nil, "", fmt.Errorf("rate limit wait failed: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, "", apperrors.TimeoutError("request timed out", err,
				map[string]interface{}{"url": rawURL})
		}
		return nil, "", fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", apperrors.ExternalAPIError(
			fmt.Sprintf("server returned status %d", resp.StatusCode),
			apperrors.ErrUpstreamFailure,
			map[string]interface{}{"url": rawURL, "status": resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read body: %w", err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
