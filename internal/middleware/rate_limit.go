package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// 120 requests per minute per client.
	rateLimitPerMinute = 120

	limiterIdleTTL       = 10 * time.Minute
	limiterSweepInterval = time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds a limiter per client IP. Entries idle past the TTL
// are evicted by a background sweep so the map stays bounded by the set of
// recently active clients.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
}

func newRateLimiterStore() *rateLimiterStore {
	s := &rateLimiterStore{
		limiters: make(map[string]*clientLimiter),
	}
	go s.sweep()
	return s
}

func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	cl, exists := s.limiters[ip]
	if !exists {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/rateLimitPerMinute), rateLimitPerMinute),
		}
		s.limiters[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

func (s *rateLimiterStore) sweep() {
	for range time.Tick(limiterSweepInterval) {
		s.evictIdle(time.Now().Add(-limiterIdleTTL))
	}
}

func (s *rateLimiterStore) evictIdle(cutoff time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for ip, cl := range s.limiters {
		if cl.lastSeen.Before(cutoff) {
			delete(s.limiters, ip)
		}
	}
}

// RateLimitMiddleware limits requests per client IP. Each call owns its own
// limiter store, so independent engines do not share counters.
func RateLimitMiddleware(log *zap.Logger) gin.HandlerFunc {
	store := newRateLimiterStore()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		limiter := store.getLimiter(ip)
		if !limiter.Allow() {
			log.Warn("rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate_limit_exceeded"})
			return
		}
		c.Next()
	}
}
