package client

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// Switch holds the on/off and favorite state of one device card.
// Toggle shows the new state right away and reverts it if the backend refuses.
type Switch struct {
	client *Client
	events *Events

	mu     sync.Mutex
	device domain.Device
}

// NewSwitch binds a device to the client. events may be nil.
func NewSwitch(c *Client, events *Events, d domain.Device) *Switch {
	return &Switch{client: c, events: events, device: d}
}

// Device returns a copy of the current state.
func (s *Switch) Device() domain.Device {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device
}

// On reports the displayed power state.
func (s *Switch) On() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.device.State
}

// Toggle flips the power state optimistically.
func (s *Switch) Toggle(ctx context.Context) error {
	s.mu.Lock()
	id := s.device.ID
	prev := s.device.State
	next := !prev
	s.device.State = next
	s.mu.Unlock()

	updated, err := s.client.UpdateStatus(ctx, id, next, domain.ArgumentSwitch)
	if err != nil {
		s.mu.Lock()
		// A newer toggle owns the state if it already moved on.
		if s.device.State == next {
			s.device.State = prev
		}
		s.mu.Unlock()

		s.client.logger.WarnContext(ctx, "device switch reverted",
			slog.String("device_id", id),
			slog.Bool("state", prev),
			slog.String("error", err.Error()),
		)
		return errors.Wrap(err, "switch device")
	}

	if updated != nil {
		s.mu.Lock()
		s.device.Intervals = updated.Intervals
		s.mu.Unlock()
	}
	return nil
}

// Favorite sets the favorite flag once the backend acknowledges it.
func (s *Switch) Favorite(ctx context.Context, favorite bool) error {
	id := s.Device().ID

	updated, err := s.client.UpdateStatus(ctx, id, favorite, domain.ArgumentFavorite)
	if err != nil {
		return errors.Wrap(err, "favorite device")
	}
	if updated != nil {
		favorite = updated.Favorite
	}

	s.mu.Lock()
	s.device.Favorite = favorite
	s.mu.Unlock()

	if s.events != nil {
		s.events.Publish(RefreshDevices)
	}
	return nil
}

// Delete removes the device and asks device lists to refresh.
func (s *Switch) Delete(ctx context.Context) error {
	id := s.Device().ID

	if _, err := s.client.UpdateStatus(ctx, id, false, domain.ArgumentDelete); err != nil {
		return errors.Wrap(err, "delete device")
	}

	if s.events != nil {
		s.events.Publish(RefreshDevices)
	}
	return nil
}
