//go:build integration

package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/service"
	"github.com/blueswitch/blueswitch/internal/testutil"
)

// steppingClock advances by step on every read.
type steppingClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestDeviceService_CreateDevice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))
	deviceService := service.NewDeviceService(db, service.NewFootprintCalculator(nil), nil)

	team, err := teamService.CreateTeam(ctx, "Casa", "ana@example.com")
	require.NoError(t, err)

	tests := []struct {
		name          string
		in            service.NewDevice
		expectedError error
	}{
		{name: "success - personal", in: service.NewDevice{Name: "Lamp", Category: "Luz", Watts: 60, Color: "#fa0", Email: "ana@example.com"}},
		{name: "success - team", in: service.NewDevice{Name: "TV", Category: "Ocio", Watts: 120, Email: "ana@example.com", TeamCode: team.Code}},
		{name: "error - zero watts", in: service.NewDevice{Name: "Lamp", Category: "Luz", Email: "ana@example.com"}, expectedError: service.ErrInvalidDevice},
		{name: "error - bad color", in: service.NewDevice{Name: "Lamp", Category: "Luz", Watts: 1, Color: "blue", Email: "ana@example.com"}, expectedError: service.ErrInvalidDevice},
		{name: "error - blank name", in: service.NewDevice{Name: "  ", Category: "Luz", Watts: 1, Email: "ana@example.com"}, expectedError: service.ErrInvalidDevice},
		{name: "error - unknown team", in: service.NewDevice{Name: "TV", Category: "Ocio", Watts: 1, Email: "ana@example.com", TeamCode: "ZZZZZZ"}, expectedError: service.ErrTeamNotFound},
		{name: "error - not a member", in: service.NewDevice{Name: "TV", Category: "Ocio", Watts: 1, Email: "eve@example.com", TeamCode: team.Code}, expectedError: service.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := deviceService.CreateDevice(ctx, tt.in)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			_, err = uuid.Parse(d.ID)
			assert.NoError(t, err)
			assert.True(t, d.State)
			assert.False(t, d.Favorite)

			stored, err := deviceService.ListDevices(ctx, service.Owner{Email: tt.in.Email})
			require.NoError(t, err)
			var found *domain.Device
			for i := range stored {
				if stored[i].ID == d.ID {
					found = &stored[i]
				}
			}
			require.NotNil(t, found)
			require.Len(t, found.Intervals, 1)
			assert.Nil(t, found.Intervals[0].End)
		})
	}
}

func TestDeviceService_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	clock := &steppingClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), step: time.Hour}
	calc := service.NewFootprintCalculator(func() time.Time { return time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC) })
	deviceService := service.NewDeviceService(db, calc, clock.Now)

	d, err := deviceService.CreateDevice(ctx, service.NewDevice{Name: "Heater", Category: "Clima", Watts: 1000, Email: "ana@example.com"})
	require.NoError(t, err)

	t.Run("switch off closes interval", func(t *testing.T) {
		updated, err := deviceService.UpdateStatus(ctx, "", d.ID, false, domain.ArgumentSwitch)
		require.NoError(t, err)
		assert.False(t, updated.State)
		require.Len(t, updated.Intervals, 1)
		require.NotNil(t, updated.Intervals[0].End)
		assert.Equal(t, time.Hour, updated.Intervals[0].End.Sub(updated.Intervals[0].Start))
	})

	t.Run("switch off again is a no-op", func(t *testing.T) {
		updated, err := deviceService.UpdateStatus(ctx, "", d.ID, false, domain.ArgumentSwitch)
		require.NoError(t, err)
		assert.Len(t, updated.Intervals, 1)
	})

	t.Run("switch on opens a new interval", func(t *testing.T) {
		updated, err := deviceService.UpdateStatus(ctx, "", d.ID, true, domain.ArgumentSwitch)
		require.NoError(t, err)
		assert.True(t, updated.State)
		require.Len(t, updated.Intervals, 2)
		assert.Nil(t, updated.Intervals[1].End)
		assert.Equal(t, 1, updated.OpenInterval())
	})

	t.Run("favorite stores the requested value", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			updated, err := deviceService.UpdateStatus(ctx, "", d.ID, true, domain.ArgumentFavorite)
			require.NoError(t, err)
			assert.True(t, updated.Favorite, "call %d", i+1)
		}

		updated, err := deviceService.UpdateStatus(ctx, "", d.ID, false, domain.ArgumentFavorite)
		require.NoError(t, err)
		assert.False(t, updated.Favorite)

		updated, err = deviceService.UpdateStatus(ctx, "", d.ID, false, domain.ArgumentFavorite)
		require.NoError(t, err)
		assert.False(t, updated.Favorite)
	})

	t.Run("unknown argument", func(t *testing.T) {
		_, err := deviceService.UpdateStatus(ctx, "", d.ID, true, domain.StatusArgument("Explode"))
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := deviceService.UpdateStatus(ctx, "", "not-a-uuid", true, domain.ArgumentSwitch)
		assert.ErrorIs(t, err, service.ErrDeviceNotFound)
	})

	t.Run("delete removes device and intervals", func(t *testing.T) {
		updated, err := deviceService.UpdateStatus(ctx, "", d.ID, false, domain.ArgumentDelete)
		require.NoError(t, err)
		assert.Nil(t, updated)

		_, err = deviceService.UpdateStatus(ctx, "", d.ID, false, domain.ArgumentDelete)
		assert.ErrorIs(t, err, service.ErrDeviceNotFound)

		var intervals int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM device_intervals WHERE device_id = $1`, d.ID).Scan(&intervals))
		assert.Zero(t, intervals)
	})
}

func TestDeviceService_ConcurrentSwitch(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	deviceService := service.NewDeviceService(db, service.NewFootprintCalculator(nil), nil)

	d, err := deviceService.CreateDevice(ctx, service.NewDevice{Name: "Fan", Category: "Clima", Watts: 50, Email: "ana@example.com"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(on bool) {
			defer wg.Done()
			_, err := deviceService.UpdateStatus(ctx, "", d.ID, on, domain.ArgumentSwitch)
			assert.NoError(t, err)
		}(i%2 == 0)
	}
	wg.Wait()

	devices, err := deviceService.ListDevices(ctx, service.Owner{Email: "ana@example.com"})
	require.NoError(t, err)
	require.Len(t, devices, 1)

	open := 0
	for _, in := range devices[0].Intervals {
		if in.End == nil {
			open++
		}
	}
	if devices[0].State {
		assert.Equal(t, 1, open)
	} else {
		assert.Zero(t, open)
	}
}

func TestDeviceService_ListAndReports(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	clock := &steppingClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), step: 2 * time.Hour}
	calc := service.NewFootprintCalculator(func() time.Time { return time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC) })
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))
	deviceService := service.NewDeviceService(db, calc, clock.Now)

	team, err := teamService.CreateTeam(ctx, "Casa", "ana@example.com")
	require.NoError(t, err)
	_, err = teamService.JoinTeam(ctx, "bob@example.com", "Casa", team.Code)
	require.NoError(t, err)

	lamp, err := deviceService.CreateDevice(ctx, service.NewDevice{Name: "Lamp", Category: "Luz", Watts: 100, Email: "ana@example.com", TeamCode: team.Code})
	require.NoError(t, err)
	heater, err := deviceService.CreateDevice(ctx, service.NewDevice{Name: "Heater", Category: "Clima", Watts: 1000, Email: "bob@example.com", TeamCode: team.Code})
	require.NoError(t, err)
	_, err = deviceService.CreateDevice(ctx, service.NewDevice{Name: "Phone", Category: "Carga", Watts: 10, Email: "ana@example.com"})
	require.NoError(t, err)

	_, err = deviceService.UpdateStatus(ctx, "", heater.ID, true, domain.ArgumentFavorite)
	require.NoError(t, err)

	t.Run("team devices favorites first", func(t *testing.T) {
		devices, err := deviceService.ListDevices(ctx, service.Owner{TeamCode: team.Code})
		require.NoError(t, err)
		require.Len(t, devices, 2)
		assert.Equal(t, heater.ID, devices[0].ID)
		assert.Equal(t, lamp.ID, devices[1].ID)
	})

	t.Run("owner devices span teams", func(t *testing.T) {
		devices, err := deviceService.ListDevices(ctx, service.Owner{Email: "ana@example.com"})
		require.NoError(t, err)
		assert.Len(t, devices, 2)
	})

	t.Run("ambiguous owner", func(t *testing.T) {
		_, err := deviceService.ListDevices(ctx, service.Owner{})
		assert.ErrorIs(t, err, service.ErrAmbiguousOwner)
	})

	t.Run("team report", func(t *testing.T) {
		// lamp runs 08:00-20:00, heater 10:00-20:00
		report, err := deviceService.ReadCO2(ctx, service.Owner{TeamCode: team.Code})
		require.NoError(t, err)
		assert.InDelta(t, 100*12/1000.0*0.44+1000*10/1000.0*0.44, report.TotalCO2, 0.01)
		require.NotNil(t, report.HighestDevice)
		assert.Equal(t, heater.ID, report.HighestDevice.ID)
	})

	t.Run("member stats within team", func(t *testing.T) {
		stats, err := deviceService.MemberStats(ctx, "ana@example.com", team.Code)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.NumDevices)
		assert.InDelta(t, 100, stats.Watts, 1e-9)
		assert.InDelta(t, 0.53, stats.CO2, 1e-9)
		assert.InDelta(t, 0.02, stats.Trees, 1e-9)
	})

	t.Run("member stats across everything", func(t *testing.T) {
		stats, err := deviceService.MemberStats(ctx, "ana@example.com", "")
		require.NoError(t, err)
		assert.Equal(t, 2, stats.NumDevices)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := deviceService.ReadCO2(ctx, service.Owner{TeamCode: "ZZZZZZ"})
		assert.ErrorIs(t, err, service.ErrTeamNotFound)
	})

	t.Run("team member may view", func(t *testing.T) {
		devices, err := deviceService.ListDevices(ctx, service.Owner{TeamCode: team.Code, Viewer: "bob@example.com"})
		require.NoError(t, err)
		assert.Len(t, devices, 2)
	})

	t.Run("outsider may not view team", func(t *testing.T) {
		_, err := deviceService.ListDevices(ctx, service.Owner{TeamCode: team.Code, Viewer: "eve@example.com"})
		assert.ErrorIs(t, err, service.ErrForbidden)

		_, err = deviceService.ReadCO2(ctx, service.Owner{TeamCode: team.Code, Viewer: "eve@example.com"})
		assert.ErrorIs(t, err, service.ErrForbidden)
	})
}

func TestDeviceService_UpdateStatusAccess(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))
	deviceService := service.NewDeviceService(db, service.NewFootprintCalculator(nil), nil)

	team, err := teamService.CreateTeam(ctx, "Casa", "ana@example.com")
	require.NoError(t, err)
	_, err = teamService.JoinTeam(ctx, "bob@example.com", "Casa", team.Code)
	require.NoError(t, err)

	shared, err := deviceService.CreateDevice(ctx, service.NewDevice{Name: "TV", Category: "Ocio", Watts: 120, Email: "ana@example.com", TeamCode: team.Code})
	require.NoError(t, err)
	personal, err := deviceService.CreateDevice(ctx, service.NewDevice{Name: "Phone", Category: "Carga", Watts: 10, Email: "ana@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name          string
		actor         string
		id            string
		arg           domain.StatusArgument
		expectedError error
	}{
		{name: "owner switches personal device", actor: "ana@example.com", id: personal.ID, arg: domain.ArgumentSwitch},
		{name: "owner email case-insensitive", actor: "ANA@example.com", id: personal.ID, arg: domain.ArgumentFavorite},
		{name: "team member switches shared device", actor: "bob@example.com", id: shared.ID, arg: domain.ArgumentSwitch},
		{name: "team member cannot touch personal device", actor: "bob@example.com", id: personal.ID, arg: domain.ArgumentSwitch, expectedError: service.ErrForbidden},
		{name: "outsider cannot favorite shared device", actor: "eve@example.com", id: shared.ID, arg: domain.ArgumentFavorite, expectedError: service.ErrForbidden},
		{name: "outsider cannot delete shared device", actor: "eve@example.com", id: shared.ID, arg: domain.ArgumentDelete, expectedError: service.ErrForbidden},
		{name: "outsider cannot delete personal device", actor: "eve@example.com", id: personal.ID, arg: domain.ArgumentDelete, expectedError: service.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deviceService.UpdateStatus(ctx, tt.actor, tt.id, true, tt.arg)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}

	devices, err := deviceService.ListDevices(ctx, service.Owner{Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Len(t, devices, 2)
}
