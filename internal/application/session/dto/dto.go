package dto

import (
	"time"

	"ispdesk/internal/domain/gate"
)

// SessionStateDTO is the gate state as seen by the browser. It never carries
// the router password.
type SessionStateDTO struct {
	Connected   bool            `json:"connected"`
	AuthMethod  string          `json:"auth_method,omitempty"`
	Credentials *CredentialsDTO `json:"credentials,omitempty"`
	Device      string          `json:"device,omitempty"`
	ConnectedAt *time.Time      `json:"connected_at,omitempty"`
}

type CredentialsDTO struct {
	RouterIP   string `json:"router_ip"`
	Port       int    `json:"port"`
	Username   string `json:"username,omitempty"`
	MACAddress string `json:"mac_address,omitempty"`
}

func ToSessionStateDTO(s gate.State) *SessionStateDTO {
	pub := s.Public()
	result := &SessionStateDTO{
		Connected:   pub.Connected,
		AuthMethod:  string(pub.AuthMethod),
		Device:      pub.Device,
		ConnectedAt: pub.ConnectedAt,
	}
	if pub.Credentials != nil {
		result.Credentials = &CredentialsDTO{
			RouterIP:   pub.Credentials.RouterIP,
			Port:       pub.Credentials.Port,
			Username:   pub.Credentials.Username,
			MACAddress: pub.Credentials.MACAddress,
		}
	}
	return result
}
