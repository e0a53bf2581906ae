package inventory

import "fmt"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusAssigned    Status = "assigned"
	StatusMaintenance Status = "maintenance"
	StatusDamaged     Status = "damaged"
	StatusExpired     Status = "expired"
)

var validStatuses = map[Status]bool{
	StatusAvailable:   true,
	StatusAssigned:    true,
	StatusMaintenance: true,
	StatusDamaged:     true,
	StatusExpired:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsAssigned() bool {
	return s == StatusAssigned
}

// NewStatus parses s, treating an empty value as available.
func NewStatus(s string) (Status, error) {
	if s == "" {
		return StatusAvailable, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid inventory status: %s", s)
	}
	return st, nil
}
