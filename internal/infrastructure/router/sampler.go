package router

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"ispdesk/internal/domain/device"
	"ispdesk/internal/shared/biztime"
)

// initialRouters is the fleet shown by the simulated sampler before its
// first jitter step.
var initialRouters = []device.RouterStatus{
	{Name: "Router Principal (RB1009)", Status: device.StatusActive, CPULoad: 42, MemoryUsage: 38, Uptime: "14d 7h 22m"},
	{Name: "Router Backup", Status: device.StatusActive, CPULoad: 21, MemoryUsage: 25, Uptime: "14d 7h 18m"},
	{Name: "AP Sector Norte", Status: device.StatusActive, CPULoad: 65, MemoryUsage: 72, Uptime: "6d 4h 17m"},
	{Name: "AP Sector Sur", Status: device.StatusMaintenance, CPULoad: 0, MemoryUsage: 15, Uptime: "0d 2h 45m"},
}

const (
	cpuJitter    = 5.0
	memoryJitter = 3.0
)

// SimulatedSampler random-walks the previous readings: CPU moves by up to
// ±5 points and memory by up to ±3, both kept within [0, 100].
type SimulatedSampler struct {
	random func() float64
}

func NewSimulatedSampler() *SimulatedSampler {
	return &SimulatedSampler{random: rand.Float64}
}

func (s *SimulatedSampler) Sample(_ context.Context, previous []device.RouterStatus) ([]device.RouterStatus, error) {
	now := biztime.NowUTC()

	if len(previous) == 0 {
		out := make([]device.RouterStatus, len(initialRouters))
		copy(out, initialRouters)
		for i := range out {
			out[i].SampledAt = now
		}
		return out, nil
	}

	out := make([]device.RouterStatus, len(previous))
	for i, r := range previous {
		r.CPULoad = device.ClampPercent(r.CPULoad + s.jitter(cpuJitter))
		r.MemoryUsage = device.ClampPercent(r.MemoryUsage + s.jitter(memoryJitter))
		r.SampledAt = now
		out[i] = r
	}
	return out, nil
}

// jitter returns a value in [-amplitude, amplitude).
func (s *SimulatedSampler) jitter(amplitude float64) float64 {
	return s.random()*2*amplitude - amplitude
}

// RouterOSSampler reads /system/resource on one configured router.
type RouterOSSampler struct {
	address  string
	username string
	password string
	timeout  time.Duration
	dial     dialFunc
}

func NewRouterOSSampler(address, username, password string, timeout time.Duration) *RouterOSSampler {
	return &RouterOSSampler{
		address:  address,
		username: username,
		password: password,
		timeout:  timeout,
		dial:     dialRouterOS,
	}
}

func (s *RouterOSSampler) Sample(ctx context.Context, _ []device.RouterStatus) ([]device.RouterStatus, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	api, closeFn, err := s.dial(ctx, s.address, s.username, s.password)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", s.address, err)
	}
	defer closeFn()

	identity, err := firstRow(api, "/system/identity/print")
	if err != nil {
		return nil, err
	}
	resource, err := firstRow(api, "/system/resource/print")
	if err != nil {
		return nil, err
	}

	name := identity["name"]
	if board := resource["board-name"]; board != "" {
		name = fmt.Sprintf("%s (%s)", name, board)
	}

	cpu, _ := strconv.ParseFloat(resource["cpu-load"], 64)

	return []device.RouterStatus{{
		Name:        name,
		Status:      device.StatusActive,
		CPULoad:     device.ClampPercent(cpu),
		MemoryUsage: memoryPercent(resource["total-memory"], resource["free-memory"]),
		Uptime:      resource["uptime"],
		SampledAt:   biztime.NowUTC(),
	}}, nil
}

// memoryPercent returns used memory as a percentage, or 0 when the totals
// are missing or malformed.
func memoryPercent(total, free string) float64 {
	t, err := strconv.ParseFloat(total, 64)
	if err != nil || t <= 0 {
		return 0
	}
	f, err := strconv.ParseFloat(free, 64)
	if err != nil {
		return 0
	}
	return device.ClampPercent((t - f) / t * 100)
}
