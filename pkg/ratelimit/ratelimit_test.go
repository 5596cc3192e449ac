package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestMemory(max int, window time.Duration, now *time.Time) *MemoryLimiter {
	l := NewMemory(max, window)
	l.now = func() time.Time { return *now }
	return l
}

func TestMemoryLimiter_Allow(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	l := newTestMemory(3, time.Minute, &now)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "keys are independent")

	now = now.Add(time.Minute)
	assert.True(t, l.Allow("10.0.0.1"), "bucket refills over the window")
}

func TestMemoryLimiter_Sweep(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	l := newTestMemory(30, time.Minute, &now)

	l.Allow("a")
	l.Allow("b")
	assert.Equal(t, 2, l.Len())

	now = now.Add(2 * time.Minute)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}

type stubLimiter bool

func (s stubLimiter) Allow(string) bool { return bool(s) }

func TestMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		limiter      Limiter
		expectedCode int
	}{
		{name: "Allowed", limiter: stubLimiter(true), expectedCode: http.StatusOK},
		{name: "Limited", limiter: stubLimiter(false), expectedCode: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/webhook/pix", nil)
			w := httptest.NewRecorder()
			Middleware(tt.limiter)(next).ServeHTTP(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.10:51234"
	assert.Equal(t, "192.168.1.10", ClientIP(r))

	r.RemoteAddr = "192.168.1.10"
	assert.Equal(t, "192.168.1.10", ClientIP(r))
}
