package server

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AI endpoints are the only generative surface and the only one worth
// metering. Each client gets a small token bucket refilled per minute.
const (
	defaultAIRequestsPerMinute = 10
	aiBurst                    = 3

	// Buckets idle long enough to have fully refilled carry no state worth
	// keeping and are evicted by the janitor.
	bucketIdleTTL    = 10 * time.Minute
	bucketSweepEvery = time.Minute
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// aiLimiter is a per-client token bucket for the name and image endpoints.
type aiLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	refillRate float64
	capacity   float64

	janitor *time.Ticker
	done    chan struct{}
	once    sync.Once
}

func newAILimiter() *aiLimiter {
	perMinute := defaultAIRequestsPerMinute
	if v := os.Getenv("RESUME_AI_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			perMinute = n
		}
	}
	l := &aiLimiter{
		buckets:    make(map[string]*bucket),
		refillRate: float64(perMinute) / 60.0,
		capacity:   aiBurst,
		janitor:    time.NewTicker(bucketSweepEvery),
		done:       make(chan struct{}),
	}
	go l.sweep()
	return l
}

// allow consumes one token for the client, reporting whether the request
// may proceed.
func (l *aiLimiter) allow(client string) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{tokens: l.capacity, lastRefill: now}
		l.buckets[client] = b
	}

	b.tokens += now.Sub(b.lastRefill).Seconds() * l.refillRate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (l *aiLimiter) sweep() {
	for {
		select {
		case <-l.janitor.C:
			l.evictIdle()
		case <-l.done:
			return
		}
	}
}

func (l *aiLimiter) evictIdle() {
	cutoff := time.Now().Add(-bucketIdleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for client, b := range l.buckets {
		if b.lastRefill.Before(cutoff) {
			delete(l.buckets, client)
		}
	}
}

// stop halts the eviction janitor. Safe to call more than once.
func (l *aiLimiter) stop() {
	l.once.Do(func() {
		l.janitor.Stop()
		close(l.done)
	})
}
