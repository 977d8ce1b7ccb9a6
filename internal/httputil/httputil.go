// Package httputil fetches remote reference pages.
package httputil

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout is the timeout of the client built when none is supplied.
const DefaultTimeout = 30 * time.Second

// DefaultMaxBodySize caps how much of a response body is read (64 MiB).
const DefaultMaxBodySize int64 = 64 << 20

// IsURL reports whether path is an http:// or https:// URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// NewClient returns an HTTP client with DefaultTimeout. When insecure is set,
// TLS certificate verification is disabled.
func NewClient(insecure bool) *http.Client {
	if !insecure {
		return &http.Client{Timeout: DefaultTimeout}
	}
	return &http.Client{
		Timeout: DefaultTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // User explicitly requested insecure mode
				MinVersion:         tls.VersionTLS12,
			},
		},
	}
}

// Fetch GETs url and returns the body and the Content-Type header.
// A nil client means NewClient(false). Bodies larger than maxSize are rejected;
// maxSize <= 0 means DefaultMaxBodySize.
func Fetch(ctx context.Context, client *http.Client, url, userAgent string, maxSize int64) ([]byte, string, error) {
	if client == nil {
		client = NewClient(false)
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxBodySize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("httputil: failed to create request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req) //nolint:gosec // G704 - URL is user-provided input
	if err != nil {
		return nil, "", fmt.Errorf("httputil: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("httputil: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("httputil: failed to read response body: %w", err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", fmt.Errorf("httputil: response body exceeds %d bytes", maxSize)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// IsHTMLMediaType reports whether a Content-Type header names an HTML document.
// An empty header is accepted since many static hosts omit it.
func IsHTMLMediaType(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}
