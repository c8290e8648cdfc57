package service

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
	"github.com/blueswitch/blueswitch/internal/repository/device"
	"github.com/blueswitch/blueswitch/internal/repository/member"
	"github.com/blueswitch/blueswitch/internal/repository/team"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Owner selects a device set either by user email or by team code.
// Viewer, when set, must belong to the team selected by TeamCode.
type Owner struct {
	Email    string
	TeamCode string
	Viewer   string
}

// Validate checks that exactly one key is set.
func (o Owner) Validate() error {
	if (o.Email == "") == (o.TeamCode == "") {
		return ErrAmbiguousOwner
	}
	return nil
}

// NewDevice is the input of CreateDevice.
type NewDevice struct {
	Name     string
	Category string
	Watts    float64
	Color    string
	Image    string
	Email    string
	TeamCode string
}

// DeviceService handles device business logic.
type DeviceService struct {
	db   *sql.DB
	calc *FootprintCalculator
	now  func() time.Time
}

// NewDeviceService creates a new device service.
func NewDeviceService(db *sql.DB, calc *FootprintCalculator, now func() time.Time) *DeviceService {
	if now == nil {
		now = time.Now
	}
	return &DeviceService{db: db, calc: calc, now: now}
}

// CreateDevice registers a device switched on from now.
// When a team code is given the team must exist and the owner must belong to it.
func (s *DeviceService) CreateDevice(ctx context.Context, in NewDevice) (*domain.Device, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.TeamCode = strings.TrimSpace(in.TeamCode)

	if in.Name == "" || in.Category == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: nombre, categoria and email are required", ErrInvalidDevice)
	}
	if in.Watts <= 0 {
		return nil, fmt.Errorf("%w: watts must be positive", ErrInvalidDevice)
	}
	if in.Color != "" && !hexColor.MatchString(in.Color) {
		return nil, fmt.Errorf("%w: color must be a hex value", ErrInvalidDevice)
	}

	d := &domain.Device{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Category: in.Category,
		Watts:    in.Watts,
		Color:    in.Color,
		Image:    in.Image,
		State:    true,
		Email:    in.Email,
	}
	if in.TeamCode != "" {
		code := in.TeamCode
		d.TeamCode = &code
	}

	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if d.TeamCode != nil {
			exists, err := team.Exists(ctx, tx, *d.TeamCode)
			if err != nil {
				return err
			}
			if !exists {
				return ErrTeamNotFound
			}
			if _, err := member.GetRole(ctx, tx, *d.TeamCode, d.Email); err != nil {
				if err == sql.ErrNoRows {
					return ErrForbidden
				}
				return err
			}
		}
		return device.Create(ctx, tx, d, s.now().UTC())
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

// ListDevices returns the devices of a user or of a team, favorites first.
func (s *DeviceService) ListDevices(ctx context.Context, owner Owner) ([]domain.Device, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	if owner.TeamCode != "" {
		exists, err := team.Exists(ctx, s.db, owner.TeamCode)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrTeamNotFound
		}
		if err := requireMember(ctx, s.db, owner.TeamCode, owner.Viewer); err != nil {
			return nil, err
		}
		return device.ListByTeam(ctx, s.db, owner.TeamCode)
	}

	return device.ListByOwner(ctx, s.db, owner.Email)
}

// ReadCO2 computes the CO2 report of a user's or a team's devices.
func (s *DeviceService) ReadCO2(ctx context.Context, owner Owner) (*domain.CO2Report, error) {
	devices, err := s.ListDevices(ctx, owner)
	if err != nil {
		return nil, err
	}
	report := s.calc.Report(devices)
	return &report, nil
}

// Footprints computes per-device footprints for devices supplied by the caller.
func (s *DeviceService) Footprints(devices []domain.Device) []domain.Footprint {
	return s.calc.Devices(devices)
}

// MemberStats aggregates the devices email registered in a team.
// An empty team code aggregates every device of the user.
func (s *DeviceService) MemberStats(ctx context.Context, email, teamCode string) (*domain.MemberStats, error) {
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidArgument)
	}

	var (
		devices []domain.Device
		err     error
	)
	if teamCode == "" {
		devices, err = device.ListByOwner(ctx, s.db, email)
	} else {
		devices, err = device.ListByTeamAndOwner(ctx, s.db, teamCode, email)
	}
	if err != nil {
		return nil, err
	}

	stats := s.calc.MemberStats(devices)
	return &stats, nil
}

// UpdateStatus applies a Switch, Favorite or Delete action to a device.
// It returns the updated device, or nil after a delete.
// A non-empty actor must own the device or belong to its team.
func (s *DeviceService) UpdateStatus(ctx context.Context, actor, id string, status bool, arg domain.StatusArgument) (*domain.Device, error) {
	if !arg.IsValid() {
		return nil, fmt.Errorf("%w: unknown argument %q", ErrInvalidArgument, arg)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrDeviceNotFound
	}

	var updated *domain.Device
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		d, err := device.GetForUpdate(ctx, tx, id)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrDeviceNotFound
			}
			return err
		}
		if err := requireDeviceAccess(ctx, tx, d, actor); err != nil {
			return err
		}

		switch arg {
		case domain.ArgumentDelete:
			return device.Delete(ctx, tx, id)

		case domain.ArgumentFavorite:
			if d.Favorite != status {
				if err := device.SetFavorite(ctx, tx, id, status); err != nil {
					return err
				}
			}

		default:
			if d.State != status {
				now := s.now().UTC()
				if err := device.SetState(ctx, tx, id, status); err != nil {
					return err
				}
				if status {
					err = device.OpenInterval(ctx, tx, id, now)
				} else {
					err = device.CloseIntervals(ctx, tx, id, now)
				}
				if err != nil {
					return err
				}
			}
		}

		updated, err = device.Get(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	if arg == domain.ArgumentDelete {
		return nil, nil
	}
	return updated, nil
}
