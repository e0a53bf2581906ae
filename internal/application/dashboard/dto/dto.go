package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"ispdesk/internal/domain/report"
)

type StatsDTO struct {
	Clients     CountsDTO       `json:"clients"`
	Tickets     CountsDTO       `json:"tickets"`
	OpenTickets int64           `json:"open_tickets"`
	Invoices    InvoiceStatsDTO `json:"invoices"`
	Devices     CountsDTO       `json:"devices"`
	GeneratedAt time.Time       `json:"generated_at"`
}

type CountsDTO struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

type InvoiceStatsDTO struct {
	Pending InvoiceSummaryDTO `json:"pending"`
	Overdue InvoiceSummaryDTO `json:"overdue"`
	Paid    InvoiceSummaryDTO `json:"paid"`
}

type InvoiceSummaryDTO struct {
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type NetworkDTO struct {
	Routers   []RouterStatusDTO `json:"routers"`
	UpdatedAt *time.Time        `json:"updated_at"`
}

type RouterStatusDTO struct {
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	CPULoad     float64 `json:"cpu_load"`
	MemoryUsage float64 `json:"memory_usage"`
	Uptime      string  `json:"uptime"`
}

// ToCountsDTO totals byStatus. A nil map is rendered as an empty object.
func ToCountsDTO(byStatus map[string]int64) CountsDTO {
	if byStatus == nil {
		byStatus = map[string]int64{}
	}
	var total int64
	for _, n := range byStatus {
		total += n
	}
	return CountsDTO{Total: total, ByStatus: byStatus}
}

func ToInvoiceSummaryDTO(s report.InvoiceSummary) InvoiceSummaryDTO {
	return InvoiceSummaryDTO{Count: s.Count, Total: s.Total}
}

func ToNetworkDTO(s report.NetworkSnapshot) *NetworkDTO {
	result := &NetworkDTO{Routers: make([]RouterStatusDTO, 0, len(s.Routers))}
	if !s.UpdatedAt.IsZero() {
		at := s.UpdatedAt
		result.UpdatedAt = &at
	}
	for _, r := range s.Routers {
		result.Routers = append(result.Routers, RouterStatusDTO{
			Name:        r.Name,
			Status:      r.Status,
			CPULoad:     r.CPULoad,
			MemoryUsage: r.MemoryUsage,
			Uptime:      r.Uptime,
		})
	}
	return result
}
