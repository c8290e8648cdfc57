package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// Watts accepts both JSON numbers and numeric strings, since the mobile form posts text input.
type Watts float64

// UnmarshalJSON implements json.Unmarshaler.
func (w *Watts) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("watts must be numeric: %w", err)
		}
		*w = Watts(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*w = Watts(v)
	return nil
}

// OwnerRequest represents request body for POST /get_devices and POST /read-CO2.
type OwnerRequest struct {
	Email    string `json:"email"`
	TeamCode string `json:"team_code"`
}

// TeamCodeRequest represents request body for POST /get_members and POST /api/Teams/delete_team.
type TeamCodeRequest struct {
	TeamCode string `json:"team_code" binding:"required"`
}

// CreateDeviceRequest represents request body for POST /crear-device.
type CreateDeviceRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	Categoria string `json:"categoria" binding:"required"`
	Watts     Watts  `json:"watts" binding:"required"`
	Color     string `json:"color"`
	Imagen    string `json:"imagen"`
	Email     string `json:"email" binding:"required"`
	TeamCode  string `json:"team_code"`
}

// UpdateStatusRequest represents request body for POST /update-status.
type UpdateStatusRequest struct {
	ID       string `json:"id" binding:"required"`
	Status   *bool  `json:"status"`
	Argument string `json:"argument" binding:"required"`
}

// CreateTeamRequest represents request body for POST /api/Teams/create_team.
type CreateTeamRequest struct {
	TeamName string `json:"team_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// JoinTeamRequest represents request body for POST /api/Teams/join_team.
type JoinTeamRequest struct {
	Email    string `json:"email" binding:"required"`
	TeamName string `json:"team_name" binding:"required"`
	TeamCode string `json:"team_code" binding:"required"`
}

// EmailRequest represents request body for POST /api/Teams/read_teams and POST /get_user.
type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// UpdateMembersRequest represents request body for POST /api/Teams/update_members.
type UpdateMembersRequest struct {
	TeamCode string `json:"team_code" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// UpdateUserRequest represents request body for POST /update_user.
type UpdateUserRequest struct {
	Nombre string `json:"nombre"`
	Avatar string `json:"avatar"`
	Phone  string `json:"phone"`
	City   string `json:"city"`
	Email  string `json:"email" binding:"required"`
}

// UploadAvatarRequest represents request body for POST /upload_avatar.
type UploadAvatarRequest struct {
	Email    string `json:"email" binding:"required"`
	ImageURI string `json:"imageUri" binding:"required"`
}

// ReadPerDevRequest represents request body for POST /read_perDev.
type ReadPerDevRequest struct {
	Data []domain.Device `json:"data"`
}

// MemberStatsRequest represents request body for POST /readstatisdics_peruser.
type MemberStatsRequest struct {
	Email    string `json:"email" binding:"required"`
	TeamCode string `json:"team_code"`
}
