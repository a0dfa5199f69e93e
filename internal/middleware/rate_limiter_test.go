package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"finn-budget/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func newTestLimiter(perSecond, burst int) (*IPRateLimiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	limiter := NewIPRateLimiter(perSecond, burst)
	limiter.now = clock.Now
	return limiter, clock
}

func hit(t *testing.T, h echo.HandlerFunc, configure func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	req.RemoteAddr = "10.0.0.1:4000"
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	require.NoError(t, h(echo.New().NewContext(req, rec)))
	return rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestIPRateLimiter_BurstThenRefill(t *testing.T) {
	limiter, clock := newTestLimiter(2, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"), "request %d within burst", i)
	}
	assert.False(t, limiter.Allow("10.0.0.1"))

	clock.Advance(500 * time.Millisecond)
	assert.True(t, limiter.Allow("10.0.0.1"), "one token refills after half a second")
	assert.False(t, limiter.Allow("10.0.0.1"))
}

func TestIPRateLimiter_BucketsArePerAddress(t *testing.T) {
	limiter, _ := newTestLimiter(1, 1)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestIPRateLimiter_SweepDropsIdleVisitors(t *testing.T) {
	limiter, clock := newTestLimiter(5, 5)

	limiter.Allow("10.0.0.1")
	clock.Advance(2 * time.Minute)
	limiter.Allow("10.0.0.2")
	clock.Advance(2 * time.Minute)

	assert.Equal(t, 1, limiter.Sweep())
	assert.Equal(t, 1, limiter.tracked())
}

func TestIPRateLimiter_NonPositiveSettingsFallBack(t *testing.T) {
	limiter := NewIPRateLimiter(0, 0)

	assert.Equal(t, 1, limiter.burst)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestIPRateLimiter_RunStopsWithContext(t *testing.T) {
	limiter := NewIPRateLimiter(5, 5)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		limiter.Run(ctx, time.Millisecond)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestMiddleware_RejectsWithRetryAfter(t *testing.T) {
	limiter, _ := newTestLimiter(1, 2)
	h := limiter.Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, hit(t, h, nil).Code)
	assert.Equal(t, http.StatusOK, hit(t, h, nil).Code)

	rec := hit(t, h, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	var body errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, string(errors.SystemRateLimitExceeded), body.Error.Code)
}

func TestMiddleware_ForwardedForUsesFirstHop(t *testing.T) {
	limiter, _ := newTestLimiter(1, 1)
	h := limiter.Middleware()(okHandler)

	viaProxy := func(hops string) func(*http.Request) {
		return func(r *http.Request) { r.Header.Set("X-Forwarded-For", hops) }
	}

	assert.Equal(t, http.StatusOK, hit(t, h, viaProxy("203.0.113.9, 10.1.1.1")).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(t, h, viaProxy("203.0.113.9, 10.2.2.2")).Code)
	assert.Equal(t, http.StatusOK, hit(t, h, viaProxy("198.51.100.4")).Code)
}

func TestMiddleware_RealIPHeader(t *testing.T) {
	limiter, _ := newTestLimiter(1, 1)
	h := limiter.Middleware()(okHandler)

	realIP := func(r *http.Request) { r.Header.Set("X-Real-IP", "192.0.2.7") }

	assert.Equal(t, http.StatusOK, hit(t, h, realIP).Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(t, h, realIP).Code)
	assert.Equal(t, http.StatusOK, hit(t, h, nil).Code, "remote address has its own bucket")
}

func TestMiddleware_ConcurrentClientsShareBurst(t *testing.T) {
	limiter, _ := newTestLimiter(1, 10)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if limiter.Allow("10.0.0.1") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, allowed)
}
