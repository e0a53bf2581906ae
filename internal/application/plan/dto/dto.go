package dto

import (
	"time"

	"github.com/shopspring/decimal"

	commondto "ispdesk/internal/application/common/dto"
	"ispdesk/internal/domain/plan"
)

type PlanDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DownloadSpeed int             `json:"download_speed"`
	UploadSpeed   int             `json:"upload_speed"`
	Price         decimal.Decimal `json:"price"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		ID:            p.ID(),
		Name:          p.Name(),
		DownloadSpeed: p.DownloadSpeed(),
		UploadSpeed:   p.UploadSpeed(),
		Price:         p.Price(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func ToPlanOption(p *plan.Plan) commondto.Option {
	return commondto.Option{ID: p.ID(), Name: p.Name()}
}

// SearchFields lists the plan columns matched by the list search box.
func SearchFields(p *plan.Plan) []string {
	return []string{p.Name()}
}
