package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
	"github.com/blueswitch/blueswitch/internal/repository/device"
	"github.com/blueswitch/blueswitch/internal/repository/member"
	"github.com/blueswitch/blueswitch/internal/repository/team"
)

// maxCodeAttempts bounds retries when a generated join code collides.
const maxCodeAttempts = 5

// TeamService handles team business logic.
type TeamService struct {
	db    *sql.DB
	codes *CodeGenerator
}

// NewTeamService creates a new team service.
func NewTeamService(db *sql.DB, codes *CodeGenerator) *TeamService {
	return &TeamService{db: db, codes: codes}
}

// CreateTeam creates a new team with a fresh join code and makes the creator its admin.
func (s *TeamService) CreateTeam(ctx context.Context, name, creatorEmail string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" || creatorEmail == "" {
		return nil, fmt.Errorf("%w: team_name and email are required", ErrInvalidArgument)
	}

	var created *domain.Team
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		code, err := s.freeCode(ctx, tx)
		if err != nil {
			return err
		}

		if err := team.Create(ctx, tx, code, name); err != nil {
			return err
		}
		if err := member.Add(ctx, tx, code, creatorEmail, domain.RoleAdmin); err != nil {
			return err
		}

		created, err = team.Get(ctx, tx, code)
		if err != nil {
			return fmt.Errorf("failed to read created team: %w", err)
		}
		created.Role = domain.RoleAdmin
		created.Members = []domain.TeamMember{{Email: creatorEmail, Role: domain.RoleAdmin}}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *TeamService) freeCode(ctx context.Context, exec repository.DBTX) (string, error) {
	for range maxCodeAttempts {
		code, err := s.codes.Generate()
		if err != nil {
			return "", err
		}
		exists, err := team.Exists(ctx, exec, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// JoinTeam adds email to the team as a plain member.
// The team name must match the code, ignoring case and surrounding spaces.
func (s *TeamService) JoinTeam(ctx context.Context, email, name, code string) (*domain.Team, error) {
	if email == "" || code == "" {
		return nil, fmt.Errorf("%w: email and team_code are required", ErrInvalidArgument)
	}

	var joined *domain.Team
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		t, err := team.Get(ctx, tx, code)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrTeamNotFound
			}
			return err
		}

		if !strings.EqualFold(strings.TrimSpace(name), t.Name) {
			return ErrTeamNameMismatch
		}

		if err := member.Add(ctx, tx, code, email, domain.RoleMember); err != nil {
			if repository.IsUniqueViolation(err) {
				return ErrAlreadyMember
			}
			return err
		}

		t.Role = domain.RoleMember
		joined = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return joined, nil
}

// ReadTeams returns every team of email with members and devices attached.
func (s *TeamService) ReadTeams(ctx context.Context, email string) ([]domain.Team, error) {
	teams, err := team.ListByMember(ctx, s.db, email)
	if err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}

	for i := range teams {
		members, err := member.List(ctx, s.db, teams[i].Code)
		if err != nil {
			return nil, err
		}
		devices, err := device.ListByTeam(ctx, s.db, teams[i].Code)
		if err != nil {
			return nil, err
		}
		teams[i].Members = members
		teams[i].Devices = devices
	}

	return teams, nil
}

// GetMembers returns the members of a team, admins first.
// A non-empty viewer must be a member of the team.
func (s *TeamService) GetMembers(ctx context.Context, viewer, code string) ([]domain.TeamMember, error) {
	exists, err := team.Exists(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrTeamNotFound
	}
	if err := requireMember(ctx, s.db, code, viewer); err != nil {
		return nil, err
	}

	members, err := member.List(ctx, s.db, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	return members, nil
}

// UpdateMember applies a promote, demote or remove action on target on behalf of actor.
// Admins may do anything to others; assistants may only remove plain members.
func (s *TeamService) UpdateMember(ctx context.Context, actor, code, target string, action domain.MemberAction) (*domain.TeamMember, error) {
	if !action.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMemberRole, action)
	}
	if actor == target {
		return nil, ErrSelfRoleChange
	}

	var updated *domain.TeamMember
	err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		exists, err := team.Exists(ctx, tx, code)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTeamNotFound
		}

		actorRole, err := member.GetRole(ctx, tx, code, actor)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrForbidden
			}
			return err
		}

		targetRole, err := member.GetRole(ctx, tx, code, target)
		if err != nil {
			if err == sql.ErrNoRows {
				return ErrMemberNotFound
			}
			return err
		}

		if !canManage(actorRole, targetRole, action) {
			return ErrForbidden
		}

		if targetRole == domain.RoleAdmin && action != domain.ActionPromote {
			admins, err := member.CountAdmins(ctx, tx, code)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}

		switch action {
		case domain.ActionPromote, domain.ActionDemote:
			next, ok := targetRole.Promoted()
			if action == domain.ActionDemote {
				next, ok = targetRole.Demoted()
			}
			if !ok {
				return ErrRoleUnchanged
			}
			updated, err = member.SetRole(ctx, tx, code, target, next)
			return err
		default:
			if err := member.Remove(ctx, tx, code, target); err != nil {
				return err
			}
			updated = &domain.TeamMember{Email: target, Role: targetRole}
			return nil
		}
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return updated, nil
}

func canManage(actor, target domain.Role, action domain.MemberAction) bool {
	switch actor {
	case domain.RoleAdmin:
		return true
	case domain.RoleAssistant:
		return action == domain.ActionRemove && target == domain.RoleMember
	default:
		return false
	}
}

// DeleteTeam removes a team. Only admins may delete it; devices stay with their owners.
func (s *TeamService) DeleteTeam(ctx context.Context, actor, code string) error {
	return repository.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		role, err := member.GetRole(ctx, tx, code, actor)
		if err != nil {
			if err == sql.ErrNoRows {
				exists, existsErr := team.Exists(ctx, tx, code)
				if existsErr != nil {
					return existsErr
				}
				if !exists {
					return ErrTeamNotFound
				}
				return ErrForbidden
			}
			return err
		}
		if role != domain.RoleAdmin {
			return ErrForbidden
		}

		if err := team.Delete(ctx, tx, code); err != nil {
			if err == sql.ErrNoRows {
				return ErrTeamNotFound
			}
			return err
		}
		return nil
	})
}
