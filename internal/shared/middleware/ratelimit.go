package middleware

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client key.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*visitor
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*visitor),
		rate:     r,
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.limiters[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = v
	}
	v.lastSeen = time.Now()
	return v.limiter
}

// Cleanup drops limiters idle for longer than maxIdle.
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-maxIdle)
	for key, v := range rl.limiters {
		if v.lastSeen.Before(cutoff) {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// KeyFunc picks the bucket for a request.
type KeyFunc func(c *fiber.Ctx) string

// KeyByIP buckets requests by client IP.
func KeyByIP(c *fiber.Ctx) string {
	return c.IP()
}

// KeyByHeaderOrIP prefers the given header (e.g. a session id) and falls back to the IP.
func KeyByHeaderOrIP(header string) KeyFunc {
	return func(c *fiber.Ctx) string {
		if v := c.Get(header); v != "" {
			return v
		}
		return c.IP()
	}
}

// KeyByRouteAndIP gives every route its own bucket per client IP.
func KeyByRouteAndIP(c *fiber.Ctx) string {
	return c.Method() + " " + c.Route().Path + "|" + c.IP()
}

// RateLimitMiddleware rejects requests over the limit with 429.
func RateLimitMiddleware(rl *RateLimiter, key KeyFunc) fiber.Handler {
	if key == nil {
		key = KeyByIP
	}
	return func(c *fiber.Ctx) error {
		if !rl.getLimiter(key(c)).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please slow down.",
			})
		}
		return c.Next()
	}
}
