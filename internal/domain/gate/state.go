// Package gate implements the Session Gate: the connected/disconnected state
// that guards every dashboard route behind a live session with the
// network-management device.
package gate

import (
	"fmt"
	"time"
)

type AuthMethod string

const (
	AuthMethodCredentials AuthMethod = "credentials"
	AuthMethodMAC         AuthMethod = "mac"
)

func (m AuthMethod) IsValid() bool {
	return m == AuthMethodCredentials || m == AuthMethodMAC
}

// Credentials are what the operator typed on the login screen. Username and
// Password are used by the credentials method, MACAddress by the mac method.
type Credentials struct {
	RouterIP   string `json:"router_ip"`
	Port       int    `json:"port"`
	Username   string `json:"username,omitempty"`
	Password   string `json:"password,omitempty"`
	MACAddress string `json:"mac_address,omitempty"`
}

// Address returns host:port for dialing.
func (c Credentials) Address() string {
	return fmt.Sprintf("%s:%d", c.RouterIP, c.Port)
}

// State is the persisted gate state of one browser session.
type State struct {
	Connected   bool         `json:"connected"`
	AuthMethod  AuthMethod   `json:"auth_method,omitempty"`
	Credentials *Credentials `json:"credentials,omitempty"`
	Device      string       `json:"device,omitempty"`
	ConnectedAt *time.Time   `json:"connected_at,omitempty"`
}

// Disconnected is the initial state of every session.
func Disconnected() State {
	return State{}
}

// Connected builds the state stored after a successful connect.
func Connected(method AuthMethod, creds Credentials, device string, at time.Time) State {
	at = at.UTC()
	return State{
		Connected:   true,
		AuthMethod:  method,
		Credentials: &creds,
		Device:      device,
		ConnectedAt: &at,
	}
}

// Public returns a copy safe to send to the browser: the password never leaves
// the server.
func (s State) Public() State {
	if s.Credentials == nil {
		return s
	}
	creds := *s.Credentials
	creds.Password = ""
	s.Credentials = &creds
	return s
}
