package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter decides whether a request from the given client key may proceed.
type Limiter interface {
	Admit(key string) bool
}

// FixedWindowLimiter counts requests per client key within a fixed window.
// All counters reset together when the window elapses. The mutex keeps
// concurrent requests in the same window from losing updates.
type FixedWindowLimiter struct {
	mu          sync.Mutex
	max         int
	window      time.Duration
	windowStart time.Time
	counts      map[string]int
	now         func() time.Time
}

func NewFixedWindowLimiter(max int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		max:    max,
		window: window,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

func (l *FixedWindowLimiter) Admit(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		l.windowStart = now
		l.counts = make(map[string]int)
	}

	l.counts[key]++
	return l.counts[key] <= l.max
}

// RateLimit rejects requests over the limit with 429 before any routing or
// parsing happens. Requests are keyed by client IP.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Admit(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, please try again later!"})
			return
		}
		c.Next()
	}
}
