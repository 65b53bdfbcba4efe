package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/abdullah9786/nawab-products/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	purgeInterval = 5 * time.Minute
	idleTTL       = 10 * time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than idleTTL are dropped during periodic purges.
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	message   string
	lastPurge time.Time
	now       func() time.Time
}

// NewIPRateLimiter allows n requests per window per IP, refilled evenly.
func NewIPRateLimiter(n int, window time.Duration, message string) *IPRateLimiter {
	return &IPRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(window / time.Duration(n)),
		burst:    n,
		message:  message,
		now:      time.Now,
	}
}

// Allow consumes one token for ip.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPurge) > purgeInterval {
		l.purgeLocked(now)
		l.lastPurge = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

func (l *IPRateLimiter) purgeLocked(now time.Time) {
	purged := 0
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > idleTTL {
			delete(l.visitors, ip)
			purged++
		}
	}
	if purged > 0 {
		log.Debug().
			Int("purged", purged).
			Int("remaining", len(l.visitors)).
			Msg("rate limiter visitors purged")
	}
}

// Middleware answers 429 once the caller's bucket is empty.
func (l *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Fail(l.message))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return NewIPRateLimiter(20, time.Minute, "Too many login attempts. Try again in a minute.").Middleware()
}

// ContactRateLimiter limits enquiries to 5 per minute per IP.
func ContactRateLimiter() gin.HandlerFunc {
	return NewIPRateLimiter(5, time.Minute, "Too many messages. Please try again shortly.").Middleware()
}

// RateLimiter is the general API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return NewIPRateLimiter(limit, window, "Too many requests. Please slow down.").Middleware()
}
