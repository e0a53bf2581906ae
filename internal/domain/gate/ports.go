package gate

import "context"

// Store persists gate state per session. Load returns Disconnected for a
// session it has never seen.
type Store interface {
	Load(ctx context.Context, sessionID string) (State, error)
	Save(ctx context.Context, sessionID string, state State) error
	Clear(ctx context.Context, sessionID string) error
}

// DeviceSession describes the device that accepted a connection.
type DeviceSession struct {
	Identity string
	Board    string
	Version  string
}

// Connector establishes a session with the network-management device. It
// returns a *ConnectError for failures the operator can act on.
type Connector interface {
	Connect(ctx context.Context, method AuthMethod, creds Credentials) (*DeviceSession, error)
}
