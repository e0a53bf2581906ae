package usecases

import (
	"context"
	"errors"
	"sync"

	"ispdesk/internal/domain/gate"
)

type mockConnector struct {
	ConnectFunc func(ctx context.Context, method gate.AuthMethod, creds gate.Credentials) (*gate.DeviceSession, error)
	calls       int
}

func (m *mockConnector) Connect(ctx context.Context, method gate.AuthMethod, creds gate.Credentials) (*gate.DeviceSession, error) {
	m.calls++
	if m.ConnectFunc != nil {
		return m.ConnectFunc(ctx, method, creds)
	}
	return &gate.DeviceSession{Identity: "MikroTik", Board: "RB1009"}, nil
}

type mockStore struct {
	mu      sync.Mutex
	states  map[string]gate.State
	SaveErr error
}

func newMockStore() *mockStore {
	return &mockStore{states: make(map[string]gate.State)}
}

func (m *mockStore) Load(ctx context.Context, sessionID string) (gate.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.states[sessionID]; ok {
		return st, nil
	}
	return gate.Disconnected(), nil
}

func (m *mockStore) Save(ctx context.Context, sessionID string, state gate.State) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[sessionID] = state
	return nil
}

func (m *mockStore) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, sessionID)
	return nil
}

type reverseSealer struct{}

func (reverseSealer) Seal(plaintext string) (string, error) {
	r := []rune(plaintext)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return "sealed:" + string(r), nil
}

type mockTokens struct{}

func (mockTokens) Issue(sessionID string) (string, int64, error) {
	return "token-" + sessionID, 0, nil
}

func (mockTokens) Verify(token string) (string, error) {
	if len(token) > 6 && token[:6] == "token-" {
		return token[6:], nil
	}
	return "", errors.New("invalid token")
}
