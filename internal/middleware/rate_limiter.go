package middleware

import (
	"sync"
	"time"

	"budgetwise/internal/errors"
	"budgetwise/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorIdleTTL     = 3 * time.Minute
	visitorSweepPeriod = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter enforces a per-client token bucket keyed by originating IP.
// Each instance owns its own visitor table, so separate route groups can
// carry independent limits.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*visitor
}

// NewRateLimiter creates a limiter allowing rps requests per second with the
// given burst per client IP, and starts the idle-visitor eviction loop.
func NewRateLimiter(rps, burst int) *RateLimiter {
	rl := &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: make(map[string]*visitor),
	}
	go rl.evictIdle()
	return rl
}

// Middleware returns the echo middleware enforcing this limiter.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(clientIP(c)) {
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	limiter := v.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

func (rl *RateLimiter) evictIdle() {
	for {
		time.Sleep(visitorSweepPeriod)
		rl.sweep(time.Now())
	}
}

// sweep drops visitors not seen since before now minus the idle TTL.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if now.Sub(v.lastSeen) > visitorIdleTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) visitorCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

// clientIP resolves the originating IP, preferring proxy-set headers.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}
