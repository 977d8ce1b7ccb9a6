package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearKCOASEnv clears all KCOAS_* env vars to isolate tests from the ambient environment.
func clearKCOASEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KCOAS_CACHE_ENABLED", "KCOAS_CACHE_MAX_SIZE",
		"KCOAS_CACHE_FILE_TTL", "KCOAS_CACHE_URL_TTL",
		"KCOAS_CACHE_CONTENT_TTL", "KCOAS_CACHE_SWEEP_INTERVAL",
		"KCOAS_MAX_INLINE_SIZE", "KCOAS_MAX_RESOLVE",
		"KCOAS_ALLOW_URLS", "KCOAS_ALLOW_PRIVATE_IPS",
		"KCOAS_OUTPUT_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

// withConfig swaps the active configuration for the duration of a test.
func withConfig(t *testing.T, mutate func(c *serverConfig)) {
	t.Helper()
	saved := *cfg
	mutate(cfg)
	t.Cleanup(func() { *cfg = saved })
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearKCOASEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 100, c.MaxResolve)
	assert.True(t, c.AllowURLs)
	assert.False(t, c.AllowPrivateIPs)
	assert.Equal(t, "json", c.OutputFormat)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearKCOASEnv(t)
	t.Setenv("KCOAS_CACHE_ENABLED", "false")
	t.Setenv("KCOAS_CACHE_MAX_SIZE", "50")
	t.Setenv("KCOAS_CACHE_FILE_TTL", "30m")
	t.Setenv("KCOAS_CACHE_URL_TTL", "2m")
	t.Setenv("KCOAS_CACHE_CONTENT_TTL", "10m")
	t.Setenv("KCOAS_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("KCOAS_MAX_INLINE_SIZE", "2048")
	t.Setenv("KCOAS_MAX_RESOLVE", "5")
	t.Setenv("KCOAS_ALLOW_URLS", "false")
	t.Setenv("KCOAS_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("KCOAS_OUTPUT_FORMAT", "yaml")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
	assert.Equal(t, 5, c.MaxResolve)
	assert.False(t, c.AllowURLs)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, "yaml", c.OutputFormat)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearKCOASEnv(t)
	t.Setenv("KCOAS_CACHE_ENABLED", "maybe")
	t.Setenv("KCOAS_CACHE_MAX_SIZE", "-1")
	t.Setenv("KCOAS_CACHE_FILE_TTL", "soon")
	t.Setenv("KCOAS_MAX_INLINE_SIZE", "big")
	t.Setenv("KCOAS_OUTPUT_FORMAT", "xml")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, "json", c.OutputFormat)
}
