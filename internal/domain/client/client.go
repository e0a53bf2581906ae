// Package client models ISP subscribers.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

// PlanSummary is the plan data joined into client rows and detail views.
type PlanSummary struct {
	ID            string
	Name          string
	DownloadSpeed int
	UploadSpeed   int
	Price         decimal.Decimal
}

// Contact holds the optional ways to reach and identify a client on the network.
// Nil means the value was not provided.
type Contact struct {
	Email      *string
	IPAddress  *string
	MACAddress *string
}

type Client struct {
	id               string
	name             string
	documentType     DocumentType
	documentNumber   string
	address          string
	phone            string
	contact          Contact
	planID           *string
	status           Status
	registrationDate time.Time
	createdAt        time.Time
	updatedAt        time.Time
	plan             *PlanSummary
}

// NewClient registers a new subscriber. New clients always start active.
func NewClient(
	name string,
	documentType DocumentType,
	documentNumber string,
	address string,
	phone string,
	contact Contact,
	planID *string,
) (*Client, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return nil, fmt.Errorf("client name must be at least 3 characters")
	}
	if !documentType.IsValid() {
		return nil, fmt.Errorf("invalid document type: %s", documentType)
	}
	if len(strings.TrimSpace(documentNumber)) < 5 {
		return nil, fmt.Errorf("document number must be at least 5 characters")
	}
	if len(strings.TrimSpace(address)) < 5 {
		return nil, fmt.Errorf("address must be at least 5 characters")
	}
	if len(strings.TrimSpace(phone)) < 7 {
		return nil, fmt.Errorf("phone must be at least 7 characters")
	}

	now := biztime.NowUTC()
	return &Client{
		id:               id.New(),
		name:             name,
		documentType:     documentType,
		documentNumber:   strings.TrimSpace(documentNumber),
		address:          strings.TrimSpace(address),
		phone:            strings.TrimSpace(phone),
		contact:          contact,
		planID:           planID,
		status:           StatusActive,
		registrationDate: now,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructClient(
	id string,
	name string,
	documentType DocumentType,
	documentNumber string,
	address string,
	phone string,
	contact Contact,
	planID *string,
	status Status,
	registrationDate time.Time,
	createdAt, updatedAt time.Time,
	plan *PlanSummary,
) (*Client, error) {
	if id == "" {
		return nil, fmt.Errorf("client ID cannot be empty")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid client status: %s", status)
	}

	return &Client{
		id:               id,
		name:             name,
		documentType:     documentType,
		documentNumber:   documentNumber,
		address:          address,
		phone:            phone,
		contact:          contact,
		planID:           planID,
		status:           status,
		registrationDate: registrationDate,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		plan:             plan,
	}, nil
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) DocumentType() DocumentType {
	return c.documentType
}

func (c *Client) DocumentNumber() string {
	return c.documentNumber
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Email() *string {
	return c.contact.Email
}

func (c *Client) IPAddress() *string {
	return c.contact.IPAddress
}

func (c *Client) MACAddress() *string {
	return c.contact.MACAddress
}

func (c *Client) PlanID() *string {
	return c.planID
}

func (c *Client) Status() Status {
	return c.status
}

func (c *Client) RegistrationDate() time.Time {
	return c.registrationDate
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

// Plan returns the joined plan, or nil when the client has no plan or the
// row was loaded without the join.
func (c *Client) Plan() *PlanSummary {
	return c.plan
}

// ChangeStatus moves the client to any valid status. Setting the current
// status again is a no-op.
func (c *Client) ChangeStatus(newStatus Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid client status: %s", newStatus)
	}
	if c.status == newStatus {
		return nil
	}
	c.status = newStatus
	c.updatedAt = biztime.NowUTC()
	return nil
}
