package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/samber/lo"
)

const (
	defaultWindow   = 1 * time.Minute
	cleanupInterval = 1 * time.Minute
)

// RateLimitOption configures a RateLimiter.
type RateLimitOption func(*RateLimiter)

// WithWindow sets the sliding window length.
func WithWindow(d time.Duration) RateLimitOption {
	return func(rl *RateLimiter) {
		if d > 0 {
			rl.window = d
		}
	}
}

// WithLimitedPaths restricts limiting to the given paths. By default every path is limited.
func WithLimitedPaths(paths ...string) RateLimitOption {
	return func(rl *RateLimiter) {
		rl.paths = lo.SliceToMap(paths, func(p string) (string, struct{}) { return p, struct{}{} })
	}
}

// WithRejectMessage sets the message of the JSON body answered to limited clients.
func WithRejectMessage(msg string) RateLimitOption {
	return func(rl *RateLimiter) {
		rl.message = msg
	}
}

// RateLimiter limits requests per client IP over a sliding window.
type RateLimiter struct {
	limit       int                    // Maximum requests per window
	window      time.Duration          // Sliding window length
	paths       map[string]struct{}    // Limited paths; nil limits every path
	message     string                 // Message of the 429 body
	requests    map[string][]time.Time // IP -> request timestamps
	mu          sync.Mutex             // Guards requests
	now         func() time.Time       // Time source, replaced in tests
	cleanupDone chan struct{}          // Shutdown signal for cleanup goroutine
	closeOnce   sync.Once              // Ensures Close() runs only once
}

// NewRateLimiter creates a limiter allowing limit requests per window.
// Returns error if limit is not positive.
//
// IMPORTANT: Close() must be called when shutting down to stop the background
// cleanup goroutine and prevent goroutine leaks.
func NewRateLimiter(limit int, opts ...RateLimitOption) (*RateLimiter, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("rate limit must be positive, got %d", limit)
	}

	rl := &RateLimiter{
		limit:       limit,
		window:      defaultWindow,
		message:     "Too many requests. Please try again later.",
		requests:    make(map[string][]time.Time),
		now:         time.Now,
		cleanupDone: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(rl)
	}

	// Start background cleanup goroutine
	go rl.cleanupLoop()

	slog.Info("rate limiter initialized",
		"limit", limit,
		"window", rl.window.String(),
		"paths", len(rl.paths),
	)

	return rl, nil
}

type limitedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Middleware wraps next with rate limiting. Limited clients get 429 with a
// Retry-After header and a JSON body shaped like a failed submission.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Preflights and unlimited paths pass straight through
		if r.Method == http.MethodOptions || !rl.applies(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		// Extract client IP
		ip := ExtractIP(r)
		if ip == "" {
			// Shouldn't happen, but handle gracefully
			slog.Warn("failed to extract IP from request", "path", r.URL.Path)
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}

		// Check rate limit
		allowed, retryAfter := rl.allow(ip)
		if !allowed {
			slog.Debug("rate limit exceeded", "ip", ip, "path", r.URL.Path, "limit", rl.limit)

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			// Same body shape as a failed submission so the form shows the message
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(limitedResponse{Success: false, Message: rl.message})
			return
		}

		// Request allowed, proceed
		next.ServeHTTP(w, r)
	})
}

// applies reports whether path is subject to limiting.
func (rl *RateLimiter) applies(path string) bool {
	if rl.paths == nil {
		return true
	}
	_, ok := rl.paths[path]
	return ok
}

// allow records a request from ip if it fits the window.
// When it does not, the second value is the wait in whole seconds, at least 1.
func (rl *RateLimiter) allow(ip string) (bool, int) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Keep only requests inside the sliding window
	valid := filterValidTimestamps(rl.requests[ip], cutoff)

	// Check if limit exceeded
	if len(valid) >= rl.limit {
		rl.requests[ip] = valid
		// The oldest request leaves the window first
		wait := int(valid[0].Add(rl.window).Sub(now).Seconds())
		return false, max(wait, 1)
	}

	// Add current request timestamp
	rl.requests[ip] = append(valid, now)
	return true, 0
}

// cleanupLoop runs in the background and periodically removes stale entries.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.cleanupDone:
			return
		}
	}
}

// cleanup removes expired entries from the requests map.
// Drops IPs with no requests left in the window so the map does not grow unbounded.
func (rl *RateLimiter) cleanup() {
	// Same cutoff as allow
	cutoff := rl.now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, timestamps := range rl.requests {
		valid := filterValidTimestamps(timestamps, cutoff)
		// Remove IP if no valid requests remain
		if len(valid) == 0 {
			delete(rl.requests, ip)
			continue
		}
		rl.requests[ip] = valid
	}
}

// filterValidTimestamps keeps timestamps after the cutoff.
func filterValidTimestamps(timestamps []time.Time, cutoff time.Time) []time.Time {
	return lo.Filter(timestamps, func(ts time.Time, _ int) bool {
		return ts.After(cutoff)
	})
}

// Close stops the background cleanup goroutine.
// MUST be called when shutting down the server to prevent goroutine leaks.
// Safe to call multiple times.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.cleanupDone)
	})
}
