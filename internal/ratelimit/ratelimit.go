package ratelimit

import (
	"sync"
	"time"
)

// Limiter tracks request timestamps per user over a sliding window.
// Safe for concurrent use; the conversion core itself stays lock-free.
type Limiter struct {
	mu          sync.Mutex
	requests    map[int64][]time.Time
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

func New(maxRequests int, window time.Duration) *Limiter {
	return &Limiter{
		requests:    make(map[int64][]time.Time),
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Allow records a request for userID and reports whether it is within the
// limit. Requests older than the window are dropped first.
func (l *Limiter) Allow(userID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.requests[userID][:0]
	for _, ts := range l.requests[userID] {
		if ts.After(cutoff) {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.maxRequests {
		l.requests[userID] = recent
		return false
	}

	l.requests[userID] = append(recent, now)
	return true
}

// Evict drops users with no request in the last idleTTL once more than
// maxUsers are tracked. Keeps the map from growing without bound.
func (l *Limiter) Evict(idleTTL time.Duration, maxUsers int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.requests) <= maxUsers {
		return
	}

	cutoff := l.now().Add(-idleTTL)
	for id, times := range l.requests {
		active := false
		for _, ts := range times {
			if ts.After(cutoff) {
				active = true
				break
			}
		}
		if !active {
			delete(l.requests, id)
		}
	}
}

// Tracked returns the number of users currently held in memory.
func (l *Limiter) Tracked() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.requests)
}
