package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/kcoas/internal/httputil"
	"github.com/erraggy/kcoas/internal/options"
	"github.com/erraggy/kcoas/transformer"
)

// pageInput represents the three ways a reference page can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type pageInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Keycloak REST API reference HTML file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the reference page from"`
	Content string `json:"content,omitempty" jsonschema:"Inline HTML content of the reference page"`
}

// pageOptions are the transform settings that change the result.
type pageOptions struct {
	Encoding   string
	Title      string
	APIVersion string
}

// cacheEntry holds a cached transform result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *transformer.Result
	insertAt  time.Time
	expiresAt time.Time
}

// pageCacheStore provides a session-scoped cache for transformed pages.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. URL inputs are keyed by URL string. Every key also
// carries the pageOptions.
type pageCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var pageCache = &pageCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *pageCacheStore) get(key string) *transformer.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result with a specific TTL, evicting the oldest entry if at capacity.
func (c *pageCacheStore) putWithTTL(key string, result *transformer.Result, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *pageCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *pageCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *pageCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *pageCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given page input and options.
// An empty key means the input must not be cached.
func makeCacheKey(p pageInput, opts pageOptions) string {
	var source string
	switch {
	case p.File != "":
		absPath, err := filepath.Abs(p.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		source = fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case p.Content != "":
		h := sha256.Sum256([]byte(p.Content))
		source = "content:" + hex.EncodeToString(h[:])
	case p.URL != "":
		source = "url:" + p.URL
	default:
		return ""
	}
	return fmt.Sprintf("%s|%q|%q|%q", source, opts.Encoding, opts.Title, opts.APIVersion)
}

// validate checks the input shape and the server's input limits.
func (p pageInput) validate() error {
	if err := options.RequireOne(
		options.Source{Name: "file", Set: p.File != ""},
		options.Source{Name: "url", Set: p.URL != ""},
		options.Source{Name: "content", Set: p.Content != ""},
	); err != nil {
		return err
	}

	if p.File != "" && httputil.IsURL(p.File) {
		return fmt.Errorf("file must be a local path; use url for %s", p.File)
	}
	if p.URL != "" {
		if !cfg.AllowURLs {
			return fmt.Errorf("url inputs are disabled; set KCOAS_ALLOW_URLS=true to enable them")
		}
		if !httputil.IsURL(p.URL) {
			return fmt.Errorf("url must start with http:// or https://")
		}
	}
	if p.Content != "" && int64(len(p.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set KCOAS_MAX_INLINE_SIZE to increase",
			len(p.Content), cfg.MaxInlineSize)
	}
	return nil
}

// resolve transforms the page from whichever input was provided, using the
// cache for file, URL, and content inputs.
func (p pageInput) resolve(ctx context.Context, opts pageOptions) (*transformer.Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(p, opts)
		switch {
		case p.File != "":
			ttl = cfg.CacheFileTTL
		case p.URL != "":
			ttl = cfg.CacheURLTTL
		default:
			ttl = cfg.CacheContentTTL
		}
	}

	if key != "" {
		if cached := pageCache.get(key); cached != nil {
			return cached, nil
		}
	}

	topts := []transformer.Option{
		transformer.WithContext(ctx),
		transformer.WithEncoding(opts.Encoding),
		transformer.WithTitle(opts.Title),
		transformer.WithAPIVersion(opts.APIVersion),
	}
	switch {
	case p.File != "":
		topts = append(topts, transformer.WithFilePath(p.File))
	case p.URL != "":
		topts = append(topts, transformer.WithFilePath(p.URL))
		// SSRF-safe client unless private IPs are allowed.
		if !cfg.AllowPrivateIPs {
			topts = append(topts, transformer.WithHTTPClient(newSafeHTTPClient()))
		}
	default:
		topts = append(topts, transformer.WithReader(strings.NewReader(p.Content)))
	}

	result, err := transformer.TransformWithOptions(topts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		pageCache.putWithTTL(key, result, ttl)
	}
	return result, nil
}
