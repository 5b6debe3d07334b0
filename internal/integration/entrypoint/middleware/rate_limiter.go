// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxRequests is the default number of mutations allowed per window.
	defaultMaxRequests = 120
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// rateLimitEntry tracks rate limit data for a single client.
type rateLimitEntry struct {
	requests  int
	resetTime time.Time
}

// RateLimiter provides fixed-window, per-IP rate limiting for ledger mutations.
type RateLimiter struct {
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxRequests    int
	windowDuration time.Duration
	enabled        bool
	now            func() time.Time
}

// NewRateLimiter creates a rate limiter. Non-positive settings fall back to the defaults.
// A disabled limiter lets every request through.
func NewRateLimiter(maxRequests int, windowDuration time.Duration, enabled bool) *RateLimiter {
	if maxRequests <= 0 {
		maxRequests = defaultMaxRequests
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}

	return &RateLimiter{
		entries:        make(map[string]*rateLimitEntry),
		maxRequests:    maxRequests,
		windowDuration: windowDuration,
		enabled:        enabled,
		now:            time.Now,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		// Get client IP
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, retryAfter := rl.allow(clientIP)
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow checks if a request from the given key should be allowed and, when it
// is not, how long until the window resets.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			requests:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true, 0
	}

	if entry.requests < rl.maxRequests {
		entry.requests++
		return true, 0
	}

	return false, entry.resetTime.Sub(now)
}

// Reset clears the rate limiter state.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.entries = make(map[string]*rateLimitEntry)
}

// Cleanup removes expired entries.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}

// StartCleanup removes expired entries every window until stop is closed.
func (rl *RateLimiter) StartCleanup(stop <-chan struct{}) {
	ticker := time.NewTicker(rl.windowDuration)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			rl.Cleanup()
		}
	}
}
