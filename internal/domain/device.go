package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// StatusArgument selects what an update-status call changes on a device.
type StatusArgument string

// Status argument constants.
const (
	ArgumentSwitch   StatusArgument = "Switch"
	ArgumentFavorite StatusArgument = "Favorite"
	ArgumentDelete   StatusArgument = "Delete"
)

// IsValid checks if the argument is known.
func (a StatusArgument) IsValid() bool {
	return a == ArgumentSwitch || a == ArgumentFavorite || a == ArgumentDelete
}

// Device represents a registered smart device.
// Field names on the wire follow the mobile client contract.
type Device struct {
	ID        string          `json:"stringid"`
	Name      string          `json:"nombre"`
	Category  string          `json:"categoria"`
	Watts     float64         `json:"watts"`
	Color     string          `json:"color"`
	Image     string          `json:"imagen"`
	State     bool            `json:"state"`
	Favorite  bool            `json:"favorite"`
	Email     string          `json:"email"`
	TeamCode  *string         `json:"team_code"`
	Intervals []UsageInterval `json:"created_at"`
}

// CreatedAt returns the start of the first usage interval.
func (d *Device) CreatedAt() (time.Time, bool) {
	if len(d.Intervals) == 0 {
		return time.Time{}, false
	}
	return d.Intervals[0].Start, true
}

// OpenInterval returns the index of the interval still running, or -1.
func (d *Device) OpenInterval() int {
	for i := len(d.Intervals) - 1; i >= 0; i-- {
		if d.Intervals[i].End == nil {
			return i
		}
	}
	return -1
}

// UsageInterval is a span of time during which a device was switched on.
// A nil End means the device is still running.
type UsageInterval struct {
	Start time.Time
	End   *time.Time
}

// naiveLayout matches ISO timestamps written without a zone, which are read as UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// MarshalJSON encodes the interval as a two-element array [start, end|null].
func (u UsageInterval) MarshalJSON() ([]byte, error) {
	pair := [2]*string{}
	start := u.Start.UTC().Format(time.RFC3339Nano)
	pair[0] = &start
	if u.End != nil {
		end := u.End.UTC().Format(time.RFC3339Nano)
		pair[1] = &end
	}
	return json.Marshal(pair)
}

// UnmarshalJSON decodes a [start, end|null] pair.
func (u *UsageInterval) UnmarshalJSON(data []byte) error {
	var pair []*string
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("usage interval must be a [start, end] array: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("usage interval must have 2 elements, got %d", len(pair))
	}

	var out UsageInterval
	if pair[0] != nil && *pair[0] != "" {
		start, err := ParseTimestamp(*pair[0])
		if err != nil {
			return err
		}
		out.Start = start
	}
	if pair[1] != nil && *pair[1] != "" {
		end, err := ParseTimestamp(*pair[1])
		if err != nil {
			return err
		}
		out.End = &end
	}

	*u = out
	return nil
}

// ParseTimestamp parses RFC 3339 timestamps and zone-less ISO timestamps (assumed UTC).
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.ParseInLocation(naiveLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

// Footprint is the estimated emission and runtime of one device.
type Footprint struct {
	KgCO2 float64
	Hours float64
}

// MarshalJSON encodes the footprint as [kgCO2, hours].
func (f Footprint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{f.KgCO2, f.Hours})
}

// UnmarshalJSON decodes a [kgCO2, hours] pair.
func (f *Footprint) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("footprint must have 2 elements, got %d", len(pair))
	}
	f.KgCO2, f.Hours = pair[0], pair[1]
	return nil
}

// CO2Report summarises the emissions of a set of devices.
type CO2Report struct {
	TotalCO2      float64 `json:"total_CO2"`
	HighestDevice *Device `json:"device_mas_CO2"`
}

// KgCO2PerTree is the yearly CO₂ absorption of one planted tree, used for every "trees" equivalent.
const KgCO2PerTree = 22.0

// MemberStats is the contribution of one member to a team.
type MemberStats struct {
	CO2        float64 `json:"CO2"`
	Watts      float64 `json:"watts"`
	NumDevices int     `json:"numdevices"`
	Trees      float64 `json:"trees"`
}
