package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

func TestNewRateLimiter(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(10), 20)

	if rl.rate != rate.Limit(10) {
		t.Errorf("Expected rate 10, got %v", rl.rate)
	}
	if rl.burst != 20 {
		t.Errorf("Expected burst 20, got %d", rl.burst)
	}
	if rl.limiters == nil {
		t.Error("Limiters map should be initialized")
	}
}

func TestGetLimiter(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(10), 20)

	limiter1 := rl.getLimiter("session_1")
	if limiter1 != rl.getLimiter("session_1") {
		t.Error("getLimiter should return the same limiter for the same key")
	}
	if limiter1 == rl.getLimiter("session_2") {
		t.Error("getLimiter should return different limiters for different keys")
	}
}

func TestCleanup(t *testing.T) {
	rl := NewRateLimiter(rate.Limit(10), 20)
	rl.getLimiter("old")
	rl.limiters["old"].lastSeen = time.Now().Add(-time.Hour)
	rl.getLimiter("fresh")

	if removed := rl.Cleanup(10 * time.Minute); removed != 1 {
		t.Errorf("Cleanup removed %d, want 1", removed)
	}
	if _, ok := rl.limiters["fresh"]; !ok {
		t.Error("fresh limiter should survive cleanup")
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		burst       int
		requests    int
		wantBlocked int
	}{
		{"within burst", 3, 3, 0},
		{"over burst", 2, 4, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(RateLimitMiddleware(NewRateLimiter(rate.Limit(0.001), tt.burst), KeyByHeaderOrIP("X-Session-Id")))
			app.Get("/test", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

			blocked := 0
			for i := 0; i < tt.requests; i++ {
				req := httptest.NewRequest("GET", "/test", nil)
				req.Header.Set("X-Session-Id", "abc")
				resp, err := app.Test(req)
				if err != nil {
					t.Fatal(err)
				}
				if resp.StatusCode == fiber.StatusTooManyRequests {
					blocked++
					body, _ := io.ReadAll(resp.Body)
					if !strings.Contains(string(body), "Rate limit exceeded") {
						t.Errorf("unexpected body: %s", body)
					}
				}
			}

			if blocked != tt.wantBlocked {
				t.Errorf("blocked = %d, want %d", blocked, tt.wantBlocked)
			}
		})
	}
}

func TestRateLimitMiddlewareDifferentKeys(t *testing.T) {
	app := fiber.New()
	app.Use(RateLimitMiddleware(NewRateLimiter(rate.Limit(0.001), 1), KeyByHeaderOrIP("X-Session-Id")))
	app.Get("/test", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	for _, session := range []string{"a", "b"} {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Session-Id", session)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("session %s got %d, want 200", session, resp.StatusCode)
		}
	}
}

func TestRateLimitMiddlewareRouteScoped(t *testing.T) {
	app := fiber.New()
	limit := RateLimitMiddleware(NewRateLimiter(rate.Limit(0.001), 1), KeyByRouteAndIP)
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Post("/chat", limit, ok)
	app.Post("/leads", limit, ok)

	status := func(path string) int {
		resp, err := app.Test(httptest.NewRequest("POST", path, nil))
		if err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode
	}

	if got := status("/chat"); got != fiber.StatusOK {
		t.Fatalf("first /chat = %d", got)
	}
	if got := status("/chat"); got != fiber.StatusTooManyRequests {
		t.Errorf("second /chat = %d, want 429", got)
	}
	if got := status("/leads"); got != fiber.StatusOK {
		t.Errorf("/leads after /chat exhausted = %d, want 200", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	app := fiber.New()
	app.Use(CORS("*"))
	app.Post("/chat", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	req := httptest.NewRequest("OPTIONS", "/chat", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}
	if got := resp.Header.Get("Access-Control-Allow-Headers"); !strings.Contains(got, "x-client-info") {
		t.Errorf("Allow-Headers = %q", got)
	}
}
