package client

import (
	"context"

	"github.com/pkg/errors"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// MemberActions lists the actions a member card offers for a target role.
// Admins cannot be acted upon from the card.
func MemberActions(target domain.Role) []domain.MemberAction {
	switch target {
	case domain.RoleMember:
		return []domain.MemberAction{domain.ActionPromote, domain.ActionRemove}
	case domain.RoleAssistant:
		return []domain.MemberAction{domain.ActionDemote, domain.ActionRemove}
	default:
		return nil
	}
}

// Roster applies administrative changes to a team and notifies member lists.
type Roster struct {
	client *Client
	events *Events
}

// NewRoster creates a roster. events may be nil.
func NewRoster(c *Client, events *Events) *Roster {
	return &Roster{client: c, events: events}
}

// Apply runs action on the member email of team code.
func (r *Roster) Apply(ctx context.Context, code, email string, action domain.MemberAction) (*domain.TeamMember, error) {
	if !action.IsValid() {
		return nil, errors.Errorf("unknown member action %q", action)
	}

	m, err := r.client.UpdateMember(ctx, code, email, action)
	if err != nil {
		return nil, errors.Wrapf(err, "%s member", action)
	}

	if r.events != nil {
		r.events.Publish(RefreshMembers)
	}
	return m, nil
}

// DeleteTeam removes a team the signed-in user administers.
func (r *Roster) DeleteTeam(ctx context.Context, code string) error {
	if err := r.client.DeleteTeam(ctx, code); err != nil {
		return errors.Wrap(err, "delete team")
	}
	if r.events != nil {
		r.events.Publish(RefreshMembers)
	}
	return nil
}
