package service

import (
	"math"
	"time"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// KgCO2PerKWh is the grid emission factor applied to consumed energy.
const KgCO2PerKWh = 0.44

// FootprintCalculator converts device usage into CO2 estimates.
type FootprintCalculator struct {
	now func() time.Time
}

// NewFootprintCalculator creates a calculator. A nil clock uses time.Now.
func NewFootprintCalculator(now func() time.Time) *FootprintCalculator {
	if now == nil {
		now = time.Now
	}
	return &FootprintCalculator{now: now}
}

// Device returns the footprint of one device over all its usage intervals.
// Intervals without a start are skipped, and running intervals end now.
func (c *FootprintCalculator) Device(d domain.Device) domain.Footprint {
	kg, hours := c.raw(d)
	return domain.Footprint{KgCO2: round2(kg), Hours: round2(hours)}
}

// Devices returns one footprint per device, in input order.
func (c *FootprintCalculator) Devices(devices []domain.Device) []domain.Footprint {
	out := make([]domain.Footprint, len(devices))
	for i, d := range devices {
		out[i] = c.Device(d)
	}
	return out
}

// Report sums the footprint of devices and picks the highest emitter.
// The first device wins on ties, and HighestDevice is nil for an empty set.
func (c *FootprintCalculator) Report(devices []domain.Device) domain.CO2Report {
	var (
		report domain.CO2Report
		total  float64
		maxKg  = -1.0
	)
	for i := range devices {
		kg, _ := c.raw(devices[i])
		total += kg
		if kg > maxKg {
			maxKg = kg
			report.HighestDevice = &devices[i]
		}
	}
	report.TotalCO2 = round2(total)
	return report
}

// MemberStats aggregates the devices a member registered in a team.
func (c *FootprintCalculator) MemberStats(devices []domain.Device) domain.MemberStats {
	var stats domain.MemberStats
	var total float64
	for _, d := range devices {
		kg, _ := c.raw(d)
		total += kg
		stats.Watts += d.Watts
	}
	stats.NumDevices = len(devices)
	stats.CO2 = round2(total)
	stats.Trees = round2(total / domain.KgCO2PerTree)
	return stats
}

func (c *FootprintCalculator) raw(d domain.Device) (kg, hours float64) {
	now := c.now().UTC()
	for _, interval := range d.Intervals {
		if interval.Start.IsZero() {
			continue
		}
		end := now
		if interval.End != nil {
			end = *interval.End
		}
		h := end.Sub(interval.Start).Hours()
		if h < 0 {
			continue
		}
		hours += h
		kg += d.Watts * h / 1000 * KgCO2PerKWh
	}
	return kg, hours
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
