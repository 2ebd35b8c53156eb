package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestLimiter(rate, burst int) *RateLimiter {
	return NewRateLimiter(RateLimitConfig{
		Rate:   rate,
		Window: time.Minute,
		Burst:  burst,
	})
}

func TestRateLimiter_AllowsUpToCapacity(t *testing.T) {
	t.Parallel()

	rl := newTestLimiter(3, 2)
	defer rl.Stop()

	// rate + burst requests pass, the next is refused
	for i := 0; i < 5; i++ {
		allowed, _, _ := rl.Allow("key")
		if !allowed {
			t.Fatalf("request %d: expected allowed", i+1)
		}
	}
	if allowed, _, _ := rl.Allow("key"); allowed {
		t.Error("expected the request over capacity to be refused")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	rl := newTestLimiter(1, 0)
	defer rl.Stop()

	if allowed, _, _ := rl.Allow("a"); !allowed {
		t.Fatal("first request for a should pass")
	}
	if allowed, _, _ := rl.Allow("a"); allowed {
		t.Error("second request for a should be refused")
	}
	if allowed, _, _ := rl.Allow("b"); !allowed {
		t.Error("first request for b should pass regardless of a")
	}
}

func TestRateLimit_Refused_Returns429WithHeaders(t *testing.T) {
	t.Parallel()

	rl := newTestLimiter(1, 0)
	defer rl.Stop()

	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/posts", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected a Retry-After header")
	}
	if rec.Header().Get("X-RateLimit-Remaining") != "0" {
		t.Errorf("expected zero remaining, got %q", rec.Header().Get("X-RateLimit-Remaining"))
	}
}
