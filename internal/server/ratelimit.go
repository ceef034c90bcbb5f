package server

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	cerrors "github.com/matzehuels/crossnames/pkg/errors"
)

// staleAfter is how long an idle client's bucket is kept.
const staleAfter = 5 * time.Minute

// rateLimiter is a per-client token bucket. Each client may spend rate
// tokens per interval; buckets refill in whole intervals.
type rateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*bucket
	rate      int
	interval  time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type bucket struct {
	tokens   int
	refilled time.Time
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	return &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
		now:      time.Now,
	}
}

// allow spends a token for key. When none is left it returns the time until
// the next refill.
func (rl *rateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	rl.sweep(now)

	b, ok := rl.visitors[key]
	if !ok {
		rl.visitors[key] = &bucket{tokens: rl.rate - 1, refilled: now, lastSeen: now}
		return true, 0
	}
	b.lastSeen = now

	if n := int(now.Sub(b.refilled) / rl.interval); n > 0 {
		b.tokens = min(b.tokens+n*rl.rate, rl.rate)
		b.refilled = b.refilled.Add(time.Duration(n) * rl.interval)
	}

	if b.tokens <= 0 {
		return false, b.refilled.Add(rl.interval).Sub(now)
	}
	b.tokens--
	return true, 0
}

// sweep drops idle buckets at most once per minute.
func (rl *rateLimiter) sweep(now time.Time) {
	if now.Sub(rl.lastSweep) < time.Minute {
		return
	}
	rl.lastSweep = now
	for k, b := range rl.visitors {
		if now.Sub(b.lastSeen) > staleAfter {
			delete(rl.visitors, k)
		}
	}
}

// rateLimit rejects requests over the per-client budget with 429.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}
		ok, wait := s.limiter.allow(clientIP(r))
		if !ok {
			secs := int((wait + time.Second - 1) / time.Second)
			err := &cerrors.RateLimitedError{RetryAfter: secs}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			s.logger.Warn("rate limited", "client", clientIP(r), "retry_after", secs)
			s.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the host part of the peer address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
