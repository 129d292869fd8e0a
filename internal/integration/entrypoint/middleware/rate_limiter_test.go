package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TestRateLimiter_FixedWindow(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiterWithConfig(2, time.Minute)
	rl.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := rl.Allow(ctx, "ip"); !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if ok, _ := rl.Allow(ctx, "ip"); ok {
		t.Fatal("third attempt should be blocked")
	}
	if ok, _ := rl.Allow(ctx, "other"); !ok {
		t.Fatal("keys must not share a window")
	}

	now = now.Add(time.Minute + time.Second)
	if ok, _ := rl.Allow(ctx, "ip"); !ok {
		t.Fatal("new window should allow again")
	}

	rl.Cleanup()
	if len(rl.entries) != 1 {
		t.Errorf("expected expired entries to be removed, got %d", len(rl.entries))
	}
}

func TestRedisRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRedisRateLimiter(client, "rl:login", 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := rl.Allow(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}

	ok, err := rl.Allow(ctx, "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("fourth attempt should be blocked")
	}

	if ttl := mr.TTL("rl:login:10.0.0.1"); ttl <= 0 || ttl > time.Minute {
		t.Errorf("expected window expiry to be set, got %v", ttl)
	}

	mr.FastForward(time.Minute + time.Second)
	if ok, _ := rl.Allow(ctx, "10.0.0.1"); !ok {
		t.Fatal("attempt after the window should be allowed")
	}
}

func TestRateLimit_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiterWithConfig(1, time.Minute)
	router := gin.New()
	router.POST("/login", RateLimit(rl), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 2)
	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("unexpected status codes %v", codes)
	}
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, error) {
	return false, context.DeadlineExceeded
}

func TestRateLimit_FailsOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login", RateLimit(failingLimiter{}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected request to pass when the limiter fails, got %d", w.Code)
	}
}
