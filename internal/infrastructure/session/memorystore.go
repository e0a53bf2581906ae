package session

import (
	"context"
	"errors"
	"sync"

	"ispdesk/internal/domain/gate"
)

// MemoryStore keeps gate state in process memory. State is lost on restart,
// so it suits tests and single-process demos where Redis is disabled.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]gate.State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string]gate.State)}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (gate.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[sessionID]
	if !ok {
		return gate.Disconnected(), nil
	}
	return state, nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, state gate.State) error {
	if sessionID == "" {
		return errors.New("session ID cannot be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[sessionID] = state
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, sessionID)
	return nil
}
