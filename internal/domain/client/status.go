package client

import "fmt"

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

var validStatuses = map[Status]bool{
	StatusActive:    true,
	StatusInactive:  true,
	StatusSuspended: true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid client status: %s", s)
	}
	return st, nil
}

// DocumentType is the kind of identity document a client registers with.
type DocumentType string

const (
	DocumentDNI      DocumentType = "DNI"
	DocumentRUC      DocumentType = "RUC"
	DocumentCE       DocumentType = "CE"
	DocumentPassport DocumentType = "Pasaporte"
)

var validDocumentTypes = map[DocumentType]bool{
	DocumentDNI:      true,
	DocumentRUC:      true,
	DocumentCE:       true,
	DocumentPassport: true,
}

func (d DocumentType) String() string {
	return string(d)
}

func (d DocumentType) IsValid() bool {
	return validDocumentTypes[d]
}
