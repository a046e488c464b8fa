// Package fetch retrieves the third-party search results page the pipeline
// extracts from. The extraction core itself does no I/O; this collaborator
// owns timeouts, retries, and cache revalidation.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gangoo91/coursescout/internal/cache"
)

// Client wraps http.Client with a custom User-Agent, a per-request timeout,
// bounded retry on transient failures, and optional conditional caching.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// PerRequestTimeout bounds each attempt. Zero disables the extra bound.
	PerRequestTimeout time.Duration
	// Cache, when set, stores responses and replays validators on refetch.
	Cache *cache.Store
}

var errServer = errors.New("server error")

// Get issues a GET and returns body and content type. 5xx responses and
// timeouts are retried with linear backoff up to MaxAttempts; 4xx responses
// are returned immediately. When the cache holds validators and the origin
// answers 304, the cached body is served.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, string, error) {
	var etag, lastMod string
	if c.Cache != nil {
		if e, err := c.Cache.Load(ctx, rawURL); err == nil && e != nil {
			etag = e.ETag
			lastMod = e.LastModified
		}
	}

	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		body, ct, status, err := c.tryOnce(ctx, rawURL, etag, lastMod)
		if err == nil {
			if status == http.StatusNotModified && c.Cache != nil {
				if e, cerr := c.Cache.Load(ctx, rawURL); cerr == nil && e != nil {
					return e.Body, e.ContentType, nil
				}
				return nil, "", fmt.Errorf("304 with no cached body for %s", rawURL)
			}
			return body, ct, nil
		}
		if !isTransient(err) || i == attempts-1 {
			return nil, "", err
		}
		lastErr = err
		select {
		case <-ctx.Done():
			return nil, "", ctx.Err()
		case <-time.After(time.Duration(i+1) * 200 * time.Millisecond):
		}
	}
	return nil, "", lastErr
}

func (c *Client) tryOnce(ctx context.Context, rawURL, etag, lastMod string) ([]byte, string, int, error) {
	if c.PerRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PerRequestTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", 0, fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, "", 0, fmt.Errorf("unsupported URL scheme in %q", rawURL)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if etag != "" {
		req.Header.Set("If-None-Match", etag)
	}
	if lastMod != "" {
		req.Header.Set("If-Modified-Since", lastMod)
	}

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, "", 0, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotModified:
		return nil, "", resp.StatusCode, nil
	case resp.StatusCode >= 500:
		return nil, "", resp.StatusCode, fmt.Errorf("%w: %d from %s", errServer, resp.StatusCode, rawURL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, "", resp.StatusCode, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", resp.StatusCode, fmt.Errorf("read body: %w", err)
	}
	ct := resp.Header.Get("Content-Type")
	if c.Cache != nil {
		_ = c.Cache.Save(ctx, rawURL, ct, resp.Header.Get("ETag"), resp.Header.Get("Last-Modified"), body)
	}
	return body, ct, resp.StatusCode, nil
}

// isTransient covers 5xx responses, timeouts, and transport-level failures
// like a refused or reset connection. Malformed URLs and non-5xx statuses
// fail on the first attempt.
func isTransient(err error) bool {
	if errors.Is(err, errServer) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return true
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Op != "parse"
	}
	return false
}

func isHTTPScheme(u *url.URL) bool {
	s := strings.ToLower(u.Scheme)
	return s == "http" || s == "https"
}
