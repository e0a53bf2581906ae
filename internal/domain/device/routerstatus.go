package device

import (
	"context"
	"math"
	"time"
)

// RouterStatus is one reading of a router's health as shown on the dashboard.
// CPULoad and MemoryUsage are percentages in [0, 100].
type RouterStatus struct {
	Name        string
	Status      Status
	CPULoad     float64
	MemoryUsage float64
	Uptime      string
	SampledAt   time.Time
}

// StatusSampler produces the next set of readings. previous is the last
// snapshot, which simulated samplers evolve from.
type StatusSampler interface {
	Sample(ctx context.Context, previous []RouterStatus) ([]RouterStatus, error)
}

// ClampPercent bounds v to [0, 100] and rounds it to one decimal place.
func ClampPercent(v float64) float64 {
	v = math.Max(0, math.Min(100, v))
	return math.Round(v*10) / 10
}
