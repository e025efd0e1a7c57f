package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"expense-capture/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func hit(t *testing.T, e *echo.Echo, handler echo.HandlerFunc, remoteAddr string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/parse-expense", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec.Code
}

// frozen pins the limiter clock so no tokens are refilled during a test
func frozen(rl *RateLimiter) *RateLimiter {
	now := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return rl
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	e := echo.New()
	rl := frozen(NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 2, RateLimitBurst: 4}))
	handler := rl.Middleware()(okHandler)

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusOK, hit(t, e, handler, "192.168.1.2:12345"), "request %d", i)
	}

	req := httptest.NewRequest(http.MethodGet, "/parse-expense", nil)
	req.RemoteAddr = "192.168.1.2:12345"
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_Defaults(t *testing.T) {
	rl := NewRateLimiter(config.SecurityConfig{})

	assert.Equal(t, 10, rl.burst)
	assert.InDelta(t, 5, float64(rl.limit), 0.001)
}

func TestRateLimiter_IndependentPerIP(t *testing.T) {
	e := echo.New()
	rl := frozen(NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 1, RateLimitBurst: 2}))
	handler := rl.Middleware()(okHandler)

	for _, ip := range []string{"10.0.0.1:1", "10.0.0.2:1", "10.0.0.3:1"} {
		assert.Equal(t, http.StatusOK, hit(t, e, handler, ip))
		assert.Equal(t, http.StatusOK, hit(t, e, handler, ip))
		assert.Equal(t, http.StatusTooManyRequests, hit(t, e, handler, ip))
	}
	assert.Equal(t, 3, rl.visitorCount())
}

func TestRateLimiter_Cleanup(t *testing.T) {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(config.SecurityConfig{})
	rl.now = func() time.Time { return now }

	rl.allow("old")
	now = now.Add(5 * time.Minute)
	rl.allow("new")

	rl.cleanup()

	assert.Equal(t, 1, rl.visitorCount())
	_, stillThere := rl.visitors["new"]
	assert.True(t, stillThere)
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(config.SecurityConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		rl.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_Concurrency(t *testing.T) {
	e := echo.New()
	rl := frozen(NewRateLimiter(config.SecurityConfig{RateLimitPerSecond: 5, RateLimitBurst: 10}))
	handler := rl.Middleware()(okHandler)

	var wg sync.WaitGroup
	var mu sync.Mutex
	codes := map[int]int{}

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/parse-expense", nil)
			req.RemoteAddr = "192.168.1.100:12345"
			rec := httptest.NewRecorder()
			_ = handler(e.NewContext(req, rec))

			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, codes[http.StatusOK])
	assert.Equal(t, 10, codes[http.StatusTooManyRequests])
}

func TestGetIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For first hop",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.1, 10.0.0.1"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "X-Real-IP header",
			headers:    map[string]string{"X-Real-IP": "192.168.1.2"},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.2",
		},
		{
			name: "X-Forwarded-For takes precedence",
			headers: map[string]string{
				"X-Forwarded-For": "192.168.1.1",
				"X-Real-IP":       "192.168.1.2",
			},
			remoteAddr: "127.0.0.1:12345",
			expected:   "192.168.1.1",
		},
		{
			name:       "Falls back to RealIP",
			headers:    map[string]string{},
			remoteAddr: "192.168.1.3:12345",
			expected:   "192.168.1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			req.RemoteAddr = tt.remoteAddr

			assert.Equal(t, tt.expected, getIP(e.NewContext(req, httptest.NewRecorder())))
		})
	}
}
