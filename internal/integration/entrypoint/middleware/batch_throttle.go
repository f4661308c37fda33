// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/radio-billing/backend/internal/domain/error"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// throttleEntry tracks the triggers of a single client within the current window.
type throttleEntry struct {
	triggers  int
	resetTime time.Time
}

// BatchThrottle limits how often one client may start batch runs. Triggers beyond
// the limit are rejected until the client's window expires.
type BatchThrottle struct {
	mu          sync.Mutex
	entries     map[string]*throttleEntry
	maxTriggers int
	window      time.Duration
	now         func() time.Time
}

// NewBatchThrottle creates a throttle allowing maxTriggers per window and client IP.
func NewBatchThrottle(maxTriggers int, window time.Duration) *BatchThrottle {
	return &BatchThrottle{
		entries:     make(map[string]*throttleEntry),
		maxTriggers: maxTriggers,
		window:      window,
		now:         time.Now,
	}
}

// Middleware returns a Gin handler enforcing the throttle.
func (bt *BatchThrottle) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !bt.allow(clientIP) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many batch runs requested. Please try again later.",
				Code:  string(domainerror.ErrCodeBatchThrottled),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (bt *BatchThrottle) allow(key string) bool {
	bt.mu.Lock()
	defer bt.mu.Unlock()

	now := bt.now()

	entry, exists := bt.entries[key]
	if !exists || now.After(entry.resetTime) {
		bt.entries[key] = &throttleEntry{
			triggers:  1,
			resetTime: now.Add(bt.window),
		}
		return true
	}

	if entry.triggers < bt.maxTriggers {
		entry.triggers++
		return true
	}
	return false
}

// Cleanup removes expired entries.
func (bt *BatchThrottle) Cleanup() {
	bt.mu.Lock()
	defer bt.mu.Unlock()

	now := bt.now()
	for key, entry := range bt.entries {
		if now.After(entry.resetTime) {
			delete(bt.entries, key)
		}
	}
}
