package handler

import (
	"context"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/service"
)

// DeviceServiceInterface defines the interface for device operations.
type DeviceServiceInterface interface {
	CreateDevice(ctx context.Context, in service.NewDevice) (*domain.Device, error)
	ListDevices(ctx context.Context, owner service.Owner) ([]domain.Device, error)
	ReadCO2(ctx context.Context, owner service.Owner) (*domain.CO2Report, error)
	Footprints(devices []domain.Device) []domain.Footprint
	MemberStats(ctx context.Context, email, teamCode string) (*domain.MemberStats, error)
	UpdateStatus(ctx context.Context, actor, id string, status bool, arg domain.StatusArgument) (*domain.Device, error)
}

// TeamServiceInterface defines the interface for team operations.
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, name, creatorEmail string) (*domain.Team, error)
	JoinTeam(ctx context.Context, email, name, code string) (*domain.Team, error)
	ReadTeams(ctx context.Context, email string) ([]domain.Team, error)
	GetMembers(ctx context.Context, viewer, code string) ([]domain.TeamMember, error)
	UpdateMember(ctx context.Context, actor, code, target string, action domain.MemberAction) (*domain.TeamMember, error)
	DeleteTeam(ctx context.Context, actor, code string) error
}

// UserServiceInterface defines the interface for user profile operations.
type UserServiceInterface interface {
	GetUser(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, update domain.User) (*domain.User, error)
	UploadAvatar(ctx context.Context, email, imageURI string) (*domain.User, error)
}

var (
	_ DeviceServiceInterface = (*service.DeviceService)(nil)
	_ TeamServiceInterface   = (*service.TeamService)(nil)
	_ UserServiceInterface   = (*service.UserService)(nil)
)
