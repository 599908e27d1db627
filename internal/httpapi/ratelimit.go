package httpapi

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// ClientLimiter rate-limits per client IP with one token bucket each.
type ClientLimiter struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewClientLimiter(reqPerSec float64, burst int) *ClientLimiter {
	return &ClientLimiter{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (cl *ClientLimiter) limiterFor(key string) *rate.Limiter {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if lim, ok := cl.m[key]; ok {
		return lim
	}
	lim := rate.NewLimiter(cl.r, cl.b)
	cl.m[key] = lim
	return lim
}

// Middleware rejects over-limit requests with 429 instead of queueing them.
func (cl *ClientLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !cl.limiterFor(host).Allow() {
			WriteError(w, r, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
