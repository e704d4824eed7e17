package mem

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimiterStore hands out one token-bucket limiter per visitor key.
type LimiterStore interface {
	Get(key string) *rate.Limiter
	Len() int
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// VisitorLimiters forgets a visitor once it has been idle for ttl.
// Expired entries are swept lazily on access, at most once per ttl.
type VisitorLimiters struct {
	mu        sync.Mutex
	data      map[string]*entry
	every     rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewVisitorLimiters(every rate.Limit, burst int, ttl time.Duration) *VisitorLimiters {
	return &VisitorLimiters{
		data:  make(map[string]*entry),
		every: every,
		burst: burst,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *VisitorLimiters) Get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl {
		s.sweep(now)
	}

	e, ok := s.data[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(s.every, s.burst)}
		s.data[key] = e
	}
	e.lastSeen = now
	return e.limiter
}

func (s *VisitorLimiters) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

func (s *VisitorLimiters) sweep(now time.Time) {
	for key, e := range s.data {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.data, key)
		}
	}
	s.lastSweep = now
}
