package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("API_BASE_PATH", "")

	c := Load()
	assert.Equal(t, "8080", c.Port)
	assert.Empty(t, c.RedisAddr)
	assert.Equal(t, time.Hour, c.AccessTTL)
	assert.Equal(t, "/", c.BasePath())
	assert.Equal(t, 20, c.RateLimitUpload)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("RATE_LIMIT_AUTH", "not-a-number")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("ELASTICSEARCH_ADDRS", " http://a:9200, ,http://b:9200 ")
	t.Setenv("API_BASE_PATH", "/api/v1/")

	c := Load()
	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, 15*time.Minute, c.AccessTTL)
	assert.Equal(t, 10, c.RateLimitAuth)
	assert.True(t, c.CookieSecure)
	assert.Equal(t, []string{"http://a:9200", "http://b:9200"}, c.ESAddrs())
	assert.Equal(t, "/api/v1", c.BasePath())
}
