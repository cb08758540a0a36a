package middleware

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/config"
)

// clientCacheSize bounds the number of distinct client addresses tracked.
// Idle clients age out of the LRU; an evicted client simply starts a fresh
// window on its next request.
const clientCacheSize = 8192

// window holds the fixed-window counter for one client address.
type window struct {
	start time.Time
	count int
}

// RateLimiter admits requests per client address using a fixed window
// counter. It runs before any handler logic, including authentication.
type RateLimiter struct {
	mu       sync.Mutex
	clients  *lru.Cache
	max      int
	window   time.Duration
	timeFunc func() time.Time
}

// NewRateLimiter creates a RateLimiter from configuration.
func NewRateLimiter(cfg config.RateLimitConfig) (*RateLimiter, error) {
	clients, err := lru.New(clientCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create client cache: %w", err)
	}
	return &RateLimiter{
		clients:  clients,
		max:      cfg.MaxRequests,
		window:   time.Duration(cfg.WindowSeconds) * time.Second,
		timeFunc: time.Now,
	}, nil
}

// Limit is the middleware entry point. Requests beyond the window quota get
// 429 with a Retry-After header for the remainder of the window.
func (l *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		allowed, retryAfter := l.admit(key)
		if !allowed {
			w.Header().Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())+1))
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
				shared.CodeRateLimited, "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// admit atomically increments the client's counter and checks it against
// the quota. Returns whether the request is admitted and, when it is not,
// how long until the window resets.
func (l *RateLimiter) admit(key string) (bool, time.Duration) {
	now := l.timeFunc()

	l.mu.Lock()
	defer l.mu.Unlock()

	var win *window
	if v, ok := l.clients.Get(key); ok {
		win = v.(*window)
	}

	if win == nil || now.Sub(win.start) >= l.window {
		win = &window{start: now}
		l.clients.Add(key, win)
	}

	win.count++
	if win.count > l.max {
		return false, win.start.Add(l.window).Sub(now)
	}
	return true, 0
}

// clientKey derives the rate-limit key from the client address. RealIP
// middleware has already rewritten RemoteAddr from forwarding headers when
// they are present.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
