package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// InMemoryRateLimiter tracks request timestamps per key inside a sliding
// window. Keys are authenticated user IDs, falling back to client IP for
// unauthenticated routes.
type InMemoryRateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	r := &InMemoryRateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go r.cleanup()
	return r
}

func (r *InMemoryRateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	cutoff := now.Add(-r.window)
	valid := r.seen[key][:0]
	for _, t := range r.seen[key] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	if len(valid) >= r.limit {
		r.seen[key] = valid
		return false
	}
	r.seen[key] = append(valid, now)
	return true
}

func (r *InMemoryRateLimiter) cleanup() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		r.mu.Lock()
		cutoff := time.Now().Add(-r.window)
		for k, times := range r.seen {
			var valid []time.Time
			for _, t := range times {
				if t.After(cutoff) {
					valid = append(valid, t)
				}
			}
			if len(valid) == 0 {
				delete(r.seen, k)
			} else {
				r.seen[k] = valid
			}
		}
		r.mu.Unlock()
	}
}

// limiterKey prefers the authenticated user ID so a user behind a shared
// NAT is not throttled by their neighbors; anonymous requests fall back
// to the client IP.
func limiterKey(c *gin.Context) string {
	if id := GetUserID(c); id != 0 {
		return fmt.Sprintf("user:%d", id)
	}
	return "ip:" + c.ClientIP()
}

// RateLimit returns a middleware enforcing the limiter per user or IP.
func RateLimit(limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(limiterKey(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
