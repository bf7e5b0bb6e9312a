package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local Store for development and tests. Expired
// entries are dropped on lookup and swept at most once per sweepEvery.
type MemoryStore struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	sessions  map[string]memoryEntry
	lastSweep time.Time
}

const sweepEvery = time.Minute

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: time.Now, sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Create(_ context.Context, userID int64) (*Session, error) {
	sess := newSession(userID)
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.lastSweep) >= sweepEvery {
		s.sweep(now)
	}
	s.sessions[sess.ID] = memoryEntry{sess: *sess, expiresAt: now.Add(s.ttl)}
	return sess, nil
}

// sweep drops every expired entry. Callers hold mu.
func (s *MemoryStore) sweep(now time.Time) {
	for id, e := range s.sessions {
		if !now.Before(e.expiresAt) {
			delete(s.sessions, id)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrNotFound
	}
	sess := e.sess
	return &sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

var _ Store = (*MemoryStore)(nil)
