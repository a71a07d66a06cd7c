package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	appErr "github.com/skill-swap/backend/pkg/errors"
)

const (
	visitorTTL     = 10 * time.Minute
	visitorGCEvery = 5 * time.Minute
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// RateLimiter keeps one token bucket per client address.
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu       sync.Mutex
	visitors map[string]*limiterEntry

	stop chan struct{}
	once sync.Once
}

// NewRateLimiter starts a background sweep of idle clients; call Close to stop it.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		rps:      rate.Limit(rps),
		burst:    burst,
		visitors: map[string]*limiterEntry{},
		stop:     make(chan struct{}),
	}
	go rl.gc()
	return rl
}

func (rl *RateLimiter) gc() {
	t := time.NewTicker(visitorGCEvery)
	defer t.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-t.C:
			rl.sweep(now)
		}
	}
}

func (rl *RateLimiter) sweep(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for k, v := range rl.visitors {
		if now.Sub(v.last) > visitorTTL {
			delete(rl.visitors, k)
		}
	}
}

func (rl *RateLimiter) Close() {
	rl.once.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	le, ok := rl.visitors[key]
	if !ok {
		le = &limiterEntry{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.visitors[key] = le
	}
	le.last = time.Now()
	return le.limiter.Allow()
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests, appErr.CodeUnavailable, "Too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP keys on the connection address. Forwarding headers only count
// once a trusted RealIP middleware has rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
