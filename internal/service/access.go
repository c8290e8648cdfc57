package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/repository"
	"github.com/blueswitch/blueswitch/internal/repository/member"
)

// requireMember fails with ErrForbidden unless email belongs to the team.
// An empty email means the caller was not identified and is let through.
func requireMember(ctx context.Context, exec repository.DBTX, code, email string) error {
	if email == "" {
		return nil
	}
	if _, err := member.GetRole(ctx, exec, code, email); err != nil {
		if err == sql.ErrNoRows {
			return ErrForbidden
		}
		return err
	}
	return nil
}

// requireDeviceAccess lets the owner of d or a member of its team act on it.
func requireDeviceAccess(ctx context.Context, exec repository.DBTX, d *domain.Device, actor string) error {
	if actor == "" || strings.EqualFold(d.Email, actor) {
		return nil
	}
	if d.TeamCode == nil {
		return ErrForbidden
	}
	return requireMember(ctx, exec, *d.TeamCode, actor)
}
