package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize int64
	MaxResolve    int

	// URL inputs.
	AllowURLs       bool
	AllowPrivateIPs bool

	// Transform tool defaults.
	OutputFormat string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from KCOAS_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("KCOAS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("KCOAS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("KCOAS_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("KCOAS_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("KCOAS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("KCOAS_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      envInt64("KCOAS_MAX_INLINE_SIZE", 10*1024*1024),
		MaxResolve:         envInt("KCOAS_MAX_RESOLVE", 100),
		AllowURLs:          envBool("KCOAS_ALLOW_URLS", true),
		AllowPrivateIPs:    envBool("KCOAS_ALLOW_PRIVATE_IPS", false),
		OutputFormat:       envFormat("KCOAS_OUTPUT_FORMAT", "json"),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return d
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	switch v {
	case "":
		return fallback
	case "json", "yaml":
		return v
	default:
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
}
