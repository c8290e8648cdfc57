//go:build integration

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/service"
	"github.com/blueswitch/blueswitch/internal/testutil"
)

func TestTeamService_CreateAndJoin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))

	created, err := teamService.CreateTeam(ctx, "  Casa  ", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Casa", created.Name)
	assert.Len(t, created.Code, service.DefaultCodeLength)
	assert.Equal(t, domain.RoleAdmin, created.Role)

	tests := []struct {
		name          string
		email         string
		teamName      string
		code          string
		expectedError error
	}{
		{name: "success - name ignores case", email: "bob@example.com", teamName: "casa", code: created.Code},
		{name: "error - joins twice", email: "bob@example.com", teamName: "Casa", code: created.Code, expectedError: service.ErrAlreadyMember},
		{name: "error - wrong name", email: "carl@example.com", teamName: "Oficina", code: created.Code, expectedError: service.ErrTeamNameMismatch},
		{name: "error - unknown code", email: "carl@example.com", teamName: "Casa", code: "ZZZZZZ", expectedError: service.ErrTeamNotFound},
		{name: "error - creator already admin", email: "ana@example.com", teamName: "Casa", code: created.Code, expectedError: service.ErrAlreadyMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joined, err := teamService.JoinTeam(ctx, tt.email, tt.teamName, tt.code)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RoleMember, joined.Role)
		})
	}

	members, err := teamService.GetMembers(ctx, "bob@example.com", created.Code)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, domain.TeamMember{Email: "ana@example.com", Role: domain.RoleAdmin}, members[0])
	assert.Equal(t, domain.TeamMember{Email: "bob@example.com", Role: domain.RoleMember}, members[1])

	_, err = teamService.GetMembers(ctx, "eve@example.com", created.Code)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestTeamService_ReadTeams(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))
	deviceService := service.NewDeviceService(db, service.NewFootprintCalculator(nil), nil)

	casa, err := teamService.CreateTeam(ctx, "Casa", "ana@example.com")
	require.NoError(t, err)
	oficina, err := teamService.CreateTeam(ctx, "Oficina", "bob@example.com")
	require.NoError(t, err)
	_, err = teamService.JoinTeam(ctx, "ana@example.com", "Oficina", oficina.Code)
	require.NoError(t, err)

	_, err = deviceService.CreateDevice(ctx, service.NewDevice{
		Name: "Nevera", Category: "Cocina", Watts: 150, Email: "ana@example.com", TeamCode: casa.Code,
	})
	require.NoError(t, err)

	teams, err := teamService.ReadTeams(ctx, "ana@example.com")
	require.NoError(t, err)
	require.Len(t, teams, 2)

	byCode := map[string]domain.Team{}
	for _, tm := range teams {
		byCode[tm.Code] = tm
	}
	assert.Equal(t, domain.RoleAdmin, byCode[casa.Code].Role)
	assert.Len(t, byCode[casa.Code].Devices, 1)
	assert.Equal(t, domain.RoleMember, byCode[oficina.Code].Role)
	assert.Len(t, byCode[oficina.Code].Members, 2)

	none, err := teamService.ReadTeams(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTeamService_UpdateMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))

	team, err := teamService.CreateTeam(ctx, "Casa", "ana@example.com")
	require.NoError(t, err)
	for _, email := range []string{"bob@example.com", "carl@example.com", "dana@example.com"} {
		_, err := teamService.JoinTeam(ctx, email, "Casa", team.Code)
		require.NoError(t, err)
	}

	steps := []struct {
		name          string
		actor         string
		target        string
		action        domain.MemberAction
		wantRole      domain.Role
		expectedError error
	}{
		{name: "admin promotes member", actor: "ana@example.com", target: "bob@example.com", action: domain.ActionPromote, wantRole: domain.RoleAssistant},
		{name: "assistant cannot promote", actor: "bob@example.com", target: "carl@example.com", action: domain.ActionPromote, expectedError: service.ErrForbidden},
		{name: "assistant removes member", actor: "bob@example.com", target: "carl@example.com", action: domain.ActionRemove, wantRole: domain.RoleMember},
		{name: "member cannot remove", actor: "dana@example.com", target: "bob@example.com", action: domain.ActionRemove, expectedError: service.ErrForbidden},
		{name: "cannot change own role", actor: "ana@example.com", target: "ana@example.com", action: domain.ActionDemote, expectedError: service.ErrSelfRoleChange},
		{name: "admin promotes assistant to admin", actor: "ana@example.com", target: "bob@example.com", action: domain.ActionPromote, wantRole: domain.RoleAdmin},
		{name: "admin cannot promote past admin", actor: "ana@example.com", target: "bob@example.com", action: domain.ActionPromote, expectedError: service.ErrRoleUnchanged},
		{name: "member already lowest", actor: "ana@example.com", target: "dana@example.com", action: domain.ActionDemote, expectedError: service.ErrRoleUnchanged},
		{name: "removed member is gone", actor: "ana@example.com", target: "carl@example.com", action: domain.ActionPromote, expectedError: service.ErrMemberNotFound},
		{name: "outsider is forbidden", actor: "eve@example.com", target: "dana@example.com", action: domain.ActionRemove, expectedError: service.ErrForbidden},
		{name: "second admin demotes first", actor: "bob@example.com", target: "ana@example.com", action: domain.ActionDemote, wantRole: domain.RoleAssistant},
	}

	for _, st := range steps {
		t.Run(st.name, func(t *testing.T) {
			m, err := teamService.UpdateMember(ctx, st.actor, team.Code, st.target, st.action)

			if st.expectedError != nil {
				assert.ErrorIs(t, err, st.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, st.target, m.Email)
			assert.Equal(t, st.wantRole, m.Role)
		})
	}

	members, err := teamService.GetMembers(ctx, "", team.Code)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "bob@example.com", members[0].Email)
	assert.Equal(t, domain.RoleAdmin, members[0].Role)
}

func TestTeamService_DeleteTeam(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	teamService := service.NewTeamService(db, service.NewCodeGenerator(service.DefaultCodeLength))
	deviceService := service.NewDeviceService(db, service.NewFootprintCalculator(nil), nil)

	team, err := teamService.CreateTeam(ctx, "Casa", "ana@example.com")
	require.NoError(t, err)
	_, err = teamService.JoinTeam(ctx, "bob@example.com", "Casa", team.Code)
	require.NoError(t, err)
	d, err := deviceService.CreateDevice(ctx, service.NewDevice{
		Name: "Lampara", Category: "Luz", Watts: 40, Email: "bob@example.com", TeamCode: team.Code,
	})
	require.NoError(t, err)

	assert.ErrorIs(t, teamService.DeleteTeam(ctx, "bob@example.com", team.Code), service.ErrForbidden)
	assert.ErrorIs(t, teamService.DeleteTeam(ctx, "ana@example.com", "ZZZZZZ"), service.ErrTeamNotFound)
	require.NoError(t, teamService.DeleteTeam(ctx, "ana@example.com", team.Code))

	_, err = teamService.GetMembers(ctx, "ana@example.com", team.Code)
	assert.ErrorIs(t, err, service.ErrTeamNotFound)

	owned, err := deviceService.ListDevices(ctx, service.Owner{Email: "bob@example.com"})
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, d.ID, owned[0].ID)
	assert.Nil(t, owned[0].TeamCode)
}
