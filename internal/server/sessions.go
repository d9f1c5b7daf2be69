package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/resume-studio/internal/editor"
)

// Session couples one editor with the gates guarding its slow operations.
type Session struct {
	ID     string
	Editor *editor.Editor

	// exportGate admits one export at a time; concurrent requests are
	// refused, not queued.
	exportGate *semaphore.Weighted
	// aiGate does the same for image generation.
	aiGate *semaphore.Weighted

	lastAccess time.Time
}

// TryExport claims the export gate without blocking.
func (s *Session) TryExport() bool { return s.exportGate.TryAcquire(1) }

// EndExport releases the export gate.
func (s *Session) EndExport() { s.exportGate.Release(1) }

// TryAI claims the image generation gate without blocking.
func (s *Session) TryAI() bool { return s.aiGate.TryAcquire(1) }

// EndAI releases the image generation gate.
func (s *Session) EndAI() { s.aiGate.Release(1) }

// SessionStore holds live sessions in memory, keyed by uuid. Sessions idle
// past the TTL are evicted by a background janitor.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	namegen  editor.NameGenerator
	ttl      time.Duration

	janitor *time.Ticker
	done    chan struct{}
	once    sync.Once
}

// NewSessionStore creates a store evicting sessions idle longer than ttl.
func NewSessionStore(namegen editor.NameGenerator, ttl time.Duration) *SessionStore {
	st := &SessionStore{
		sessions: make(map[string]*Session),
		namegen:  namegen,
		ttl:      ttl,
		janitor:  time.NewTicker(ttl / 4),
		done:     make(chan struct{}),
	}
	go st.sweep()
	return st
}

// Create starts a new session seeded with the default record.
func (st *SessionStore) Create() *Session {
	sess := &Session{
		ID:         uuid.New().String(),
		Editor:     editor.New(st.namegen),
		exportGate: semaphore.NewWeighted(1),
		aiGate:     semaphore.NewWeighted(1),
		lastAccess: time.Now(),
	}

	st.mu.Lock()
	st.sessions[sess.ID] = sess
	st.mu.Unlock()
	return sess
}

// Get returns the session for id, refreshing its idle timer.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastAccess = time.Now()
	return sess, true
}

// Delete removes a session. Deleting an unknown id is a no-op.
func (st *SessionStore) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) sweep() {
	for {
		select {
		case <-st.janitor.C:
			st.evictIdle()
		case <-st.done:
			return
		}
	}
}

func (st *SessionStore) evictIdle() {
	cutoff := time.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()
	for id, sess := range st.sessions {
		if sess.lastAccess.Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}

// Stop halts the eviction janitor. Safe to call more than once.
func (st *SessionStore) Stop() {
	st.once.Do(func() {
		st.janitor.Stop()
		close(st.done)
	})
}
