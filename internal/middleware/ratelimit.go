package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/michellealmonte/marketing-api/internal/config"
)

// clientLimiter tracks a token bucket per client IP so one abusive caller
// cannot exhaust the budget for everyone behind the same endpoint.
type clientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientBucket
	limit    rate.Limit
	burst    int
	lastSeen time.Duration
}

type clientBucket struct {
	limiter *rate.Limiter
	seen    time.Time
}

func newClientLimiter(cfg config.RateLimitConfig) *clientLimiter {
	perRequest := cfg.Interval / time.Duration(cfg.Requests)
	if perRequest <= 0 {
		perRequest = time.Second
	}
	return &clientLimiter{
		clients:  make(map[string]*clientBucket),
		limit:    rate.Every(perRequest),
		burst:    cfg.Requests,
		lastSeen: 2 * cfg.Interval,
	}
}

func (l *clientLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.clients[ip]
	if !ok {
		// Evict idle clients opportunistically to keep the map bounded.
		for key, b := range l.clients {
			if now.Sub(b.seen) > l.lastSeen {
				delete(l.clients, key)
			}
		}
		bucket = &clientBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[ip] = bucket
	}
	bucket.seen = now

	return bucket.limiter.AllowN(now, 1)
}

// RateLimiter applies a per-client-IP token bucket to the wrapped routes.
// A zero config disables the limiter.
func RateLimiter(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.Requests <= 0 || cfg.Interval <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				return next(c)
			}
		}
	}

	limiter := newClientLimiter(cfg)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.allow(c.RealIP(), time.Now()) {
				return deny(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			}
			return next(c)
		}
	}
}
