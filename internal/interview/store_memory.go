package interview

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory implementation of Store.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Session
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]Session),
	}
}

// Get returns the session bound for an identity.
func (s *MemoryStore) Get(ctx context.Context, identity string) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.data[identity]
	if !ok {
		return Session{}, ErrNoActiveSession
	}
	return sess, nil
}

// Put stores or replaces the session for its identity.
func (s *MemoryStore) Put(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[session.Identity] = session
	return nil
}

// Delete removes the session for an identity, if any.
func (s *MemoryStore) Delete(ctx context.Context, identity string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, identity)
	return nil
}

var _ Store = (*MemoryStore)(nil)
