package client

import (
	"context"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// Loader fetches the data behind each screen. Independent calls run
// together and a failure in one never cancels the others.
type Loader struct {
	client  *Client
	loading atomic.Int32
}

// NewLoader creates a loader on top of c.
func NewLoader(c *Client) *Loader {
	return &Loader{client: c}
}

// Loading reports whether any load is still in flight.
func (l *Loader) Loading() bool {
	return l.loading.Load() > 0
}

func (l *Loader) begin() func() {
	l.loading.Add(1)
	return func() { l.loading.Add(-1) }
}

func (l *Loader) record(ctx context.Context, what string, err error) error {
	if err != nil {
		l.client.logger.ErrorContext(ctx, "load failed",
			slog.String("section", what),
			slog.String("error", err.Error()),
		)
	}
	return err
}

// Dashboard is the home screen of a user.
type Dashboard struct {
	Devices    []domain.Device
	CO2        *domain.CO2Report
	DevicesErr error
	CO2Err     error
}

// Err returns the first failure.
func (d *Dashboard) Err() error {
	if d.DevicesErr != nil {
		return d.DevicesErr
	}
	return d.CO2Err
}

// TotalCO2 is zero until the report loads.
func (d *Dashboard) TotalCO2() float64 {
	if d.CO2 == nil {
		return 0
	}
	return d.CO2.TotalCO2
}

// Dashboard loads the devices of email, favorites first, and their CO₂ report.
func (l *Loader) Dashboard(ctx context.Context, email string) *Dashboard {
	defer l.begin()()

	var (
		out Dashboard
		g   errgroup.Group
	)
	g.Go(func() error {
		devices, err := l.client.GetDevices(ctx, ByEmail(email))
		out.Devices, out.DevicesErr = SortByFavorite(devices), l.record(ctx, "devices", err)
		return err
	})
	g.Go(func() error {
		report, err := l.client.ReadCO2(ctx, ByEmail(email))
		out.CO2, out.CO2Err = report, l.record(ctx, "co2", err)
		return err
	})
	// Each section keeps its own error; the first one returned here adds nothing.
	_ = g.Wait()

	return &out
}

// Teams lists the teams of email.
func (l *Loader) Teams(ctx context.Context, email string) ([]domain.Team, error) {
	defer l.begin()()

	teams, err := l.client.ReadTeams(ctx, email)
	return teams, l.record(ctx, "teams", err)
}

// TeamDetail is the team screen across its three tabs.
type TeamDetail struct {
	Code       string
	Devices    []domain.Device
	Members    []domain.TeamMember
	CO2        *domain.CO2Report
	DevicesErr error
	MembersErr error
	CO2Err     error
}

// Err returns the first failure.
func (t *TeamDetail) Err() error {
	for _, err := range []error{t.DevicesErr, t.MembersErr, t.CO2Err} {
		if err != nil {
			return err
		}
	}
	return nil
}

// HighestImpact names the device with the largest footprint.
func (t *TeamDetail) HighestImpact(c *Client) string {
	return HighestImpactLabel(t.CO2, c.Translator())
}

// TeamDetail loads devices, members ordered by role and the CO₂ report of a team.
func (l *Loader) TeamDetail(ctx context.Context, code string) *TeamDetail {
	defer l.begin()()

	out := TeamDetail{Code: code}
	var g errgroup.Group
	g.Go(func() error {
		devices, err := l.client.GetDevices(ctx, ByTeam(code))
		out.Devices, out.DevicesErr = SortByFavorite(devices), l.record(ctx, "team devices", err)
		return err
	})
	g.Go(func() error {
		members, err := l.client.GetMembers(ctx, code)
		out.Members, out.MembersErr = SortMembersByRole(members), l.record(ctx, "members", err)
		return err
	})
	g.Go(func() error {
		report, err := l.client.ReadCO2(ctx, ByTeam(code))
		out.CO2, out.CO2Err = report, l.record(ctx, "team co2", err)
		return err
	})
	// Each section keeps its own error; the first one returned here adds nothing.
	_ = g.Wait()

	return &out
}

// DeviceUsage pairs a device with its footprint.
type DeviceUsage struct {
	Device    domain.Device
	Footprint domain.Footprint
}

// Statistics is the per-device breakdown of an owner.
type Statistics struct {
	Usage    []DeviceUsage
	CO2      *domain.CO2Report
	UsageErr error
	CO2Err   error
}

// Err returns the first failure.
func (s *Statistics) Err() error {
	if s.UsageErr != nil {
		return s.UsageErr
	}
	return s.CO2Err
}

// Statistics loads the devices of owner and then their footprints, while the CO₂ report
// loads alongside.
func (l *Loader) Statistics(ctx context.Context, owner Owner) *Statistics {
	defer l.begin()()

	var (
		out Statistics
		g   errgroup.Group
	)
	g.Go(func() error {
		usage, err := l.usage(ctx, owner)
		out.Usage, out.UsageErr = usage, l.record(ctx, "footprints", err)
		return err
	})
	g.Go(func() error {
		report, err := l.client.ReadCO2(ctx, owner)
		out.CO2, out.CO2Err = report, l.record(ctx, "co2", err)
		return err
	})
	// Each section keeps its own error; the first one returned here adds nothing.
	_ = g.Wait()

	return &out
}

func (l *Loader) usage(ctx context.Context, owner Owner) ([]DeviceUsage, error) {
	devices, err := l.client.GetDevices(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return []DeviceUsage{}, nil
	}

	footprints, err := l.client.ReadPerDevice(ctx, devices)
	if err != nil {
		return nil, err
	}

	usage := make([]DeviceUsage, len(devices))
	for i, d := range devices {
		usage[i].Device = d
		if i < len(footprints) {
			usage[i].Footprint = footprints[i]
		}
	}
	return usage, nil
}

// Profile loads the profile of email.
func (l *Loader) Profile(ctx context.Context, email string) (*domain.User, error) {
	defer l.begin()()

	u, err := l.client.GetUser(ctx, email)
	return u, l.record(ctx, "profile", err)
}

// MemberStats loads the contribution of email to a team.
func (l *Loader) MemberStats(ctx context.Context, email, code string) (*domain.MemberStats, error) {
	defer l.begin()()

	stats, err := l.client.MemberStats(ctx, email, code)
	return stats, l.record(ctx, "member stats", err)
}
