package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const reasonRateLimited = "rate_limited"

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	visitors sync.Map // map[string]*visitor
	stop     chan struct{}
	now      func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	window   time.Duration
	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{}), now: time.Now}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware that allows each client IP a burst of requests
// per window, refilled evenly across the window.
func (rl *RateLimiter) Limit(requests int, window time.Duration) Middleware {
	every := rate.Every(window / time.Duration(requests))
	prefix := strconv.Itoa(requests) + "/" + window.String() + "|"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v := rl.visitor(prefix+clientIP(r), every, requests, window)

			if delay, ok := v.reserve(rl.now()); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
				writeError(w, http.StatusTooManyRequests, reasonRateLimited, "too many requests, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) visitor(key string, every rate.Limit, burst int, window time.Duration) *visitor {
	if v, ok := rl.visitors.Load(key); ok {
		return v.(*visitor)
	}
	v, _ := rl.visitors.LoadOrStore(key, &visitor{
		limiter:  rate.NewLimiter(every, burst),
		window:   window,
		lastSeen: rl.now(),
	})
	return v.(*visitor)
}

// reserve takes a token if one is available now. Otherwise it returns the
// wait until the next token without consuming anything.
func (v *visitor) reserve(now time.Time) (time.Duration, bool) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()

	res := v.limiter.ReserveN(now, 1)
	if !res.OK() {
		return v.window, false
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return delay, false
	}
	return 0, true
}

// cleanup drops visitors idle for longer than their window; their bucket
// would be full again anyway.
func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := rl.now()
			rl.visitors.Range(func(key, value any) bool {
				v := value.(*visitor)
				v.mu.Lock()
				idle := now.Sub(v.lastSeen)
				v.mu.Unlock()
				if idle > v.window {
					rl.visitors.Delete(key)
				}
				return true
			})
		}
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
