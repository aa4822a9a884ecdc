package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/resumes", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
			{Path: "/api/resumes/", Method: "POST", Limit: 10, Window: time.Hour, Burst: 3},
			{Path: "/api/health", Method: "GET", Limit: 0},
		},
	}
}

func TestLimiterBurstExhaustion(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/api/resumes", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/api/resumes", "POST")
	assert.True(t, allowed)

	allowed, info := l.Allow("1.2.3.4", "/api/resumes", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.1.1.1", "/api/resumes", "POST")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("1.1.1.1", "/api/resumes", "POST")
	assert.False(t, allowed)

	allowed, _ = l.Allow("2.2.2.2", "/api/resumes", "POST")
	assert.True(t, allowed)
}

func TestLimiterUnlimitedEndpoint(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/api/resumes", "POST")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().Endpoints

	t.Run("exact match", func(t *testing.T) {
		m := MatchEndpoint("/api/resumes", "POST", configs)
		require.NotNil(t, m)
		assert.Equal(t, 2, m.Burst)
	})

	t.Run("prefix match for assessment route", func(t *testing.T) {
		m := MatchEndpoint("/api/resumes/candidate.docx/assessment", "POST", configs)
		require.NotNil(t, m)
		assert.Equal(t, 3, m.Burst)
	})

	t.Run("method mismatch falls through", func(t *testing.T) {
		m := MatchEndpoint("/api/resumes", "GET", configs)
		assert.Nil(t, m)
	})

	t.Run("no match", func(t *testing.T) {
		m := MatchEndpoint("/api/other", "POST", configs)
		assert.Nil(t, m)
	})
}
