// Package plan models the service plan catalog offered to clients.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/id"
)

// Plan is a broadband offering: advertised speeds in Mbps and a monthly price.
type Plan struct {
	id            string
	name          string
	downloadSpeed int
	uploadSpeed   int
	price         decimal.Decimal
	createdAt     time.Time
	updatedAt     time.Time
}

func NewPlan(name string, downloadSpeed, uploadSpeed int, price decimal.Decimal) (*Plan, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return nil, fmt.Errorf("plan name must be at least 3 characters")
	}
	if downloadSpeed <= 0 || uploadSpeed <= 0 {
		return nil, fmt.Errorf("plan speeds must be positive")
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("plan price must be positive")
	}

	now := biztime.NowUTC()
	return &Plan{
		id:            id.New(),
		name:          name,
		downloadSpeed: downloadSpeed,
		uploadSpeed:   uploadSpeed,
		price:         price,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructPlan(
	id string,
	name string,
	downloadSpeed, uploadSpeed int,
	price decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Plan, error) {
	if id == "" {
		return nil, fmt.Errorf("plan ID cannot be empty")
	}
	return &Plan{
		id:            id,
		name:          name,
		downloadSpeed: downloadSpeed,
		uploadSpeed:   uploadSpeed,
		price:         price,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (p *Plan) ID() string {
	return p.id
}

func (p *Plan) Name() string {
	return p.name
}

func (p *Plan) DownloadSpeed() int {
	return p.downloadSpeed
}

func (p *Plan) UploadSpeed() int {
	return p.uploadSpeed
}

func (p *Plan) Price() decimal.Decimal {
	return p.price
}

func (p *Plan) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Plan) UpdatedAt() time.Time {
	return p.updatedAt
}
