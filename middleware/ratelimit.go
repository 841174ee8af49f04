package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// rateLimiters holds one token-bucket limiter per client IP.
type rateLimiters struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	every   rate.Limit
	burst   int
}

func (rl *rateLimiters) forClient(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.clients[key]
	if !ok {
		limiter = rate.NewLimiter(rl.every, rl.burst)
		rl.clients[key] = limiter
	}
	return limiter
}

// RateLimit rejects clients exceeding limit requests per window. Used on
// the auth endpoints to slow down credential stuffing.
func RateLimit(window time.Duration, limit int) gin.HandlerFunc {
	rl := &rateLimiters{
		clients: make(map[string]*rate.Limiter),
		every:   rate.Every(window / time.Duration(limit)),
		burst:   limit,
	}
	return func(c *gin.Context) {
		if !rl.forClient(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			c.Abort()
			return
		}
		c.Next()
	}
}
