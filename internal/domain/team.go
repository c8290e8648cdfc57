package domain

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Role represents a member's permission level inside a team.
type Role string

// Role constants.
const (
	RoleAdmin     Role = "admin"
	RoleAssistant Role = "assistant"
	RoleMember    Role = "member"
)

// NewRole creates a new Role with validation.
func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid role: %s (must be one of: %s, %s, %s)", s, RoleAdmin, RoleAssistant, RoleMember)
	}
	return role, nil
}

// IsValid checks if the role is valid.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleAssistant || r == RoleMember
}

// Priority returns the display rank of the role, lower first.
// Unknown roles sort after every known one.
func (r Role) Priority() int {
	switch r {
	case RoleAdmin:
		return 1
	case RoleAssistant:
		return 2
	case RoleMember:
		return 3
	default:
		return 4
	}
}

// Promoted returns the next role up. ok is false when r is already admin.
func (r Role) Promoted() (next Role, ok bool) {
	switch r {
	case RoleMember:
		return RoleAssistant, true
	case RoleAssistant:
		return RoleAdmin, true
	default:
		return r, false
	}
}

// Demoted returns the next role down. ok is false when r is already member.
func (r Role) Demoted() (next Role, ok bool) {
	switch r {
	case RoleAdmin:
		return RoleAssistant, true
	case RoleAssistant:
		return RoleMember, true
	default:
		return r, false
	}
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (r *Role) Scan(value any) error {
	if value == nil {
		return fmt.Errorf("Role cannot be NULL")
	}

	var str string
	switch v := value.(type) {
	case string:
		str = v
	case []byte:
		str = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}

	role, err := NewRole(str)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (r Role) Value() (driver.Value, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid Role value: %s", r)
	}
	return string(r), nil
}

// MemberAction is an administrative change requested on a team member.
type MemberAction string

// Member action constants.
const (
	ActionPromote MemberAction = "promote"
	ActionDemote  MemberAction = "demote"
	ActionRemove  MemberAction = "remove"
)

// IsValid checks if the action is known.
func (a MemberAction) IsValid() bool {
	return a == ActionPromote || a == ActionDemote || a == ActionRemove
}

// Team represents a group of users sharing a set of devices.
// Role is the role of the user the team was read for.
type Team struct {
	Name      string       `json:"name"`
	Code      string       `json:"code"`
	Role      Role         `json:"role,omitempty"`
	Members   []TeamMember `json:"members"`
	Devices   []Device     `json:"devices"`
	CreatedAt *time.Time   `json:"created_at,omitempty"`
}

// TeamMember represents a user within a team.
type TeamMember struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
