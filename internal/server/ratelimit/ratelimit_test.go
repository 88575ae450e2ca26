package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client", "/api/resume/upload", "POST")
		assert.True(t, allowed)
	}
}

func TestLimiter_BurstThenLimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/resume/upload", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},
		},
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("client", "/api/resume/upload", "POST")
		require.True(t, allowed, "request %d within burst must pass", i)
		assert.Equal(t, 10, info.Limit)
	}

	allowed, info := limiter.Allow("client", "/api/resume/upload", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/analysis/gap-check", Method: "POST", Limit: 5, Window: time.Hour, Burst: 1},
		},
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("alice", "/api/analysis/gap-check", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("alice", "/api/analysis/gap-check", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket
	allowed, _ = limiter.Allow("bob", "/api/analysis/gap-check", "POST")
	assert.True(t, allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("client", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path    string
		method  string
		matched bool
	}{
		{"/api/resume/upload", "POST", true},
		{"/api/analysis/gap-check", "POST", true},
		{"/api/auth/register", "POST", true},
		{"/api/auth/login", "POST", true},
		{"/api/analysis/history", "GET", false},
		{"/api/resume/upload", "GET", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			config := MatchEndpoint(tt.path, tt.method, configs)
			if tt.matched {
				assert.NotNil(t, config)
			} else {
				assert.Nil(t, config)
			}
		})
	}
}

func TestMatchEndpoint_Health(t *testing.T) {
	config := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, config)
	assert.Equal(t, 0, config.Limit)
}

func TestLoadConfig_DisabledByEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	config := LoadConfig()
	assert.False(t, config.Enabled)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	config := LoadConfig()
	assert.True(t, config.Enabled)
	assert.Equal(t, 1000, config.DefaultLimit)
	assert.Equal(t, time.Minute, config.DefaultWindow)
	assert.NotEmpty(t, config.Endpoints)
}
