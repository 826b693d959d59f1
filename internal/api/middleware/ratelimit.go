package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	visitorTTL    = 10 * time.Minute
	sweepInterval = 5 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// RateLimiter is a per-client-IP token bucket.
type RateLimiter struct {
	rps   rate.Limit
	burst int
	now   func() time.Time

	mu        sync.Mutex
	visitors  map[string]*limiterEntry
	lastSweep time.Time
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		visitors: map[string]*limiterEntry{},
	}
}

// RateLimit applies a simple IP-based token bucket limiter.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	return NewRateLimiter(rps, burst).Handler
}

func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(ip string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > sweepInterval {
		for k, v := range l.visitors {
			if now.Sub(v.last) > visitorTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	le, ok := l.visitors[ip]
	if !ok {
		le = &limiterEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[ip] = le
	}
	le.last = now
	return le.limiter.AllowN(now, 1)
}

// clientIP keys on the connection address. Behind a trusted proxy the router
// installs chi's RealIP first, which rewrites RemoteAddr from forwarding headers.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
