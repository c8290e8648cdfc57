package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/service"
)

var clock = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return time.Date(2024, 5, 1, hour, 0, 0, 0, time.UTC)
}

func closed(from, to int) domain.UsageInterval {
	end := at(to)
	return domain.UsageInterval{Start: at(from), End: &end}
}

func open(from int) domain.UsageInterval {
	return domain.UsageInterval{Start: at(from)}
}

func newCalculator() *service.FootprintCalculator {
	return service.NewFootprintCalculator(func() time.Time { return clock })
}

func TestFootprintCalculator_Device(t *testing.T) {
	calc := newCalculator()

	tests := []struct {
		name   string
		device domain.Device
		want   domain.Footprint
	}{
		{
			name:   "closed interval",
			device: domain.Device{Watts: 100, Intervals: []domain.UsageInterval{closed(8, 14)}},
			want:   domain.Footprint{KgCO2: 0.26, Hours: 6},
		},
		{
			name:   "open interval runs until now",
			device: domain.Device{Watts: 1000, Intervals: []domain.UsageInterval{open(8)}},
			want:   domain.Footprint{KgCO2: 0.88, Hours: 2},
		},
		{
			name: "intervals are summed before rounding",
			device: domain.Device{Watts: 500, Intervals: []domain.UsageInterval{
				closed(0, 1),
				closed(2, 3),
				open(9),
			}},
			want: domain.Footprint{KgCO2: 0.66, Hours: 3},
		},
		{
			name:   "missing start is skipped",
			device: domain.Device{Watts: 100, Intervals: []domain.UsageInterval{{}, closed(8, 9)}},
			want:   domain.Footprint{KgCO2: 0.04, Hours: 1},
		},
		{
			name:   "no intervals",
			device: domain.Device{Watts: 100},
			want:   domain.Footprint{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Device(tt.device)
			assert.InDelta(t, tt.want.KgCO2, got.KgCO2, 1e-9)
			assert.InDelta(t, tt.want.Hours, got.Hours, 1e-9)
		})
	}
}

func TestFootprintCalculator_Devices(t *testing.T) {
	calc := newCalculator()

	got := calc.Devices([]domain.Device{
		{ID: "a", Watts: 100, Intervals: []domain.UsageInterval{closed(8, 14)}},
		{ID: "b", Watts: 10},
	})

	require.Len(t, got, 2)
	assert.Equal(t, domain.Footprint{KgCO2: 0.26, Hours: 6}, got[0])
	assert.Equal(t, domain.Footprint{}, got[1])
	assert.Empty(t, calc.Devices(nil))
}

func TestFootprintCalculator_Report(t *testing.T) {
	calc := newCalculator()

	t.Run("total and highest device", func(t *testing.T) {
		devices := []domain.Device{
			{ID: "lamp", Watts: 100, Intervals: []domain.UsageInterval{closed(8, 14)}},
			{ID: "heater", Watts: 1000, Intervals: []domain.UsageInterval{open(8)}},
		}

		report := calc.Report(devices)
		assert.InDelta(t, 1.14, report.TotalCO2, 1e-9)
		require.NotNil(t, report.HighestDevice)
		assert.Equal(t, "heater", report.HighestDevice.ID)
	})

	t.Run("first device wins ties", func(t *testing.T) {
		devices := []domain.Device{
			{ID: "first", Watts: 100, Intervals: []domain.UsageInterval{closed(8, 9)}},
			{ID: "second", Watts: 100, Intervals: []domain.UsageInterval{closed(8, 9)}},
		}

		report := calc.Report(devices)
		require.NotNil(t, report.HighestDevice)
		assert.Equal(t, "first", report.HighestDevice.ID)
	})

	t.Run("devices that never ran still qualify", func(t *testing.T) {
		report := calc.Report([]domain.Device{{ID: "idle", Watts: 5}})
		assert.Zero(t, report.TotalCO2)
		require.NotNil(t, report.HighestDevice)
		assert.Equal(t, "idle", report.HighestDevice.ID)
	})

	t.Run("empty set", func(t *testing.T) {
		report := calc.Report(nil)
		assert.Zero(t, report.TotalCO2)
		assert.Nil(t, report.HighestDevice)
	})
}

func TestFootprintCalculator_MemberStats(t *testing.T) {
	calc := newCalculator()

	stats := calc.MemberStats([]domain.Device{
		{Watts: 100, Intervals: []domain.UsageInterval{closed(8, 14)}},
		{Watts: 1000, Intervals: []domain.UsageInterval{open(8)}},
	})

	assert.Equal(t, 2, stats.NumDevices)
	assert.InDelta(t, 1100, stats.Watts, 1e-9)
	assert.InDelta(t, 1.14, stats.CO2, 1e-9)
	assert.InDelta(t, 0.05, stats.Trees, 1e-9)

	empty := calc.MemberStats(nil)
	assert.Equal(t, domain.MemberStats{}, empty)
}

func TestFootprintCalculator_MemberStatsTrees(t *testing.T) {
	calc := newCalculator()

	tests := []struct {
		name  string
		watts float64
		hours int
		trees float64
	}{
		// 10 kW for 5 h is 50 kWh, 22 kg.
		{name: "one tree", watts: 10000, hours: 5, trees: 1},
		{name: "two trees", watts: 20000, hours: 5, trees: 2},
		{name: "fraction rounds to cents", watts: 1000, hours: 5, trees: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := calc.MemberStats([]domain.Device{
				{Watts: tt.watts, Intervals: []domain.UsageInterval{closed(8, 8+tt.hours)}},
			})
			assert.InDelta(t, tt.trees, stats.Trees, 1e-9)
			assert.InDelta(t, stats.CO2/domain.KgCO2PerTree, stats.Trees, 0.005)
		})
	}
}

func TestFootprintCalculator_DefaultClock(t *testing.T) {
	calc := service.NewFootprintCalculator(nil)

	started := time.Now().Add(-time.Hour)
	got := calc.Device(domain.Device{Watts: 1000, Intervals: []domain.UsageInterval{{Start: started}}})
	assert.InDelta(t, 1.0, got.Hours, 0.02)
}
