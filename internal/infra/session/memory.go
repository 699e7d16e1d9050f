package session

import (
	"context"
	"errors"
	"sync"

	domsession "github.com/bryanwahyu/health-agent/internal/domain/session"
)

var errNoID = errors.New("session id is required")

// MemoryStore keeps sessions for the lifetime of the process. Writes to the
// same id are last-write-wins.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domsession.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domsession.Session)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*domsession.Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, false, nil
	}
	return s.Clone(), true, nil
}

func (m *MemoryStore) Put(_ context.Context, s *domsession.Session) error {
	if s == nil || s.ID == "" {
		return errNoID
	}
	m.mu.Lock()
	m.sessions[s.ID] = s.Clone()
	m.mu.Unlock()
	return nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
