// Package device models managed network equipment and the live status
// readings sampled from routers.
package device

import (
	"fmt"
	"net"
	"strings"
	"time"

	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

type Type string

const (
	TypeRouter Type = "router"
	TypeSwitch Type = "switch"
	TypeAP     Type = "ap"
	TypeRadio  Type = "radio"
	TypeServer Type = "server"
)

var validTypes = map[Type]bool{
	TypeRouter: true,
	TypeSwitch: true,
	TypeAP:     true,
	TypeRadio:  true,
	TypeServer: true,
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
	StatusWarning     Status = "warning"
)

var validStatuses = map[Status]bool{
	StatusActive:      true,
	StatusInactive:    true,
	StatusMaintenance: true,
	StatusWarning:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// NewStatus parses s, treating an empty value as active.
func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusActive, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid device status: %s", s)
	}
	return st, nil
}

type Device struct {
	id         string
	name       string
	ipAddress  string
	deviceType Type
	model      *string
	location   *string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewDevice(name, ipAddress string, deviceType Type, model, location *string, status Status) (*Device, error) {
	name = strings.TrimSpace(name)
	ipAddress = strings.TrimSpace(ipAddress)
	if len(name) < 3 {
		return nil, fmt.Errorf("device name must be at least 3 characters")
	}
	if len(ipAddress) < 7 || net.ParseIP(ipAddress) == nil {
		return nil, fmt.Errorf("invalid IP address: %s", ipAddress)
	}
	if !deviceType.IsValid() {
		return nil, fmt.Errorf("invalid device type: %s", deviceType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid device status: %s", status)
	}

	now := biztime.NowUTC()
	return &Device{
		id:         id.New(),
		name:       name,
		ipAddress:  ipAddress,
		deviceType: deviceType,
		model:      model,
		location:   location,
		status:     status,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructDevice(
	id string,
	name string,
	ipAddress string,
	deviceType Type,
	model, location *string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Device, error) {
	if id == "" {
		return nil, fmt.Errorf("device ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid device status: %s", status)
	}
	return &Device{
		id:         id,
		name:       name,
		ipAddress:  ipAddress,
		deviceType: deviceType,
		model:      model,
		location:   location,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (d *Device) ID() string {
	return d.id
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) IPAddress() string {
	return d.ipAddress
}

func (d *Device) Type() Type {
	return d.deviceType
}

func (d *Device) Model() *string {
	return d.model
}

func (d *Device) Location() *string {
	return d.location
}

func (d *Device) Status() Status {
	return d.status
}

func (d *Device) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Device) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Device) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid device status: %s", newStatus)
	}
	if d.status == newStatus {
		return nil
	}
	d.status = newStatus
	d.updatedAt = biztime.NowUTC()
	return nil
}
