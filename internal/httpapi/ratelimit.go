package httpapi

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// limiterIdleTTL is how long a client's bucket survives without requests.
	limiterIdleTTL = 10 * time.Minute
	// limiterSweepEvery is the cleanup ticker period.
	limiterSweepEvery = time.Minute
	// limiterMaxClients triggers an inline sweep on access once exceeded.
	limiterMaxClients = 10000
)

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// ipLimiter keeps one token bucket per client IP. Buckets idle for longer
// than idleTTL are evicted by a background sweep, and inline when the map
// grows past maxClients.
type ipLimiter struct {
	mu         sync.Mutex
	limit      rate.Limit
	burst      int
	idleTTL    time.Duration
	maxClients int
	now        func() time.Time
	entries    map[string]*limiterEntry

	stopCh    chan struct{}
	stopOnce  sync.Once
	cleanupWg sync.WaitGroup
}

func newIPLimiter(rps float64, burst int) *ipLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &ipLimiter{
		limit:      rate.Limit(rps),
		burst:      burst,
		idleTTL:    limiterIdleTTL,
		maxClients: limiterMaxClients,
		now:        time.Now,
		entries:    make(map[string]*limiterEntry),
		stopCh:     make(chan struct{}),
	}
	l.cleanupWg.Add(1)
	go l.cleanup(limiterSweepEvery)
	return l
}

func (l *ipLimiter) allow(key string) bool {
	l.mu.Lock()
	now := l.now()
	e, ok := l.entries[key]
	if !ok {
		if len(l.entries) >= l.maxClients {
			l.pruneLocked(now)
		}
		e = &limiterEntry{lim: rate.NewLimiter(l.limit, l.burst)}
		l.entries[key] = e
	}
	e.lastSeen = now
	l.mu.Unlock()
	return e.lim.AllowN(now, 1)
}

// prune drops buckets idle for longer than idleTTL.
func (l *ipLimiter) prune() {
	l.mu.Lock()
	l.pruneLocked(l.now())
	l.mu.Unlock()
}

func (l *ipLimiter) pruneLocked(now time.Time) {
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) > l.idleTTL {
			delete(l.entries, key)
		}
	}
}

func (l *ipLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *ipLimiter) cleanup(every time.Duration) {
	defer l.cleanupWg.Done()
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			l.prune()
		case <-l.stopCh:
			return
		}
	}
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (l *ipLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stopCh) })
	l.cleanupWg.Wait()
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// limitAuth rejects credential requests beyond the configured per-IP rate.
func (s *Server) limitAuth(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(clientIP(r)) {
			writeErr(w, http.StatusTooManyRequests, "too many requests", "rate_limited")
			return
		}
		next.ServeHTTP(w, r)
	})
}
