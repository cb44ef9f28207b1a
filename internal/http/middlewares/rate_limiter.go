package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

type ipLimiter struct {
	mu     sync.Mutex
	limit  int
	window time.Duration
	hits   map[string]int
	starts map[string]time.Time
}

func newIPLimiter(limit int, window time.Duration) *ipLimiter {
	return &ipLimiter{
		limit:  limit,
		window: window,
		hits:   make(map[string]int),
		starts: make(map[string]time.Time),
	}
}

func (l *ipLimiter) allow(key string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	start, seen := l.starts[key]
	if !seen || now.Sub(start) > l.window {
		l.sweep(now)
		l.starts[key] = now
		l.hits[key] = 0
	}

	if l.hits[key] >= l.limit {
		return false
	}

	l.hits[key]++
	return true
}

// sweep drops windows that have already elapsed so the maps track only
// clients seen within the last window.
func (l *ipLimiter) sweep(now time.Time) {
	for key, start := range l.starts {
		if now.Sub(start) > l.window {
			delete(l.starts, key)
			delete(l.hits, key)
		}
	}
}

// RateLimiter caps requests per client IP to limit per fixed window.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	limiter := newIPLimiter(limit, window)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.allow(c.RealIP(), time.Now()) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
