package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// TeamHandler handles team-related HTTP requests.
type TeamHandler struct {
	teamService TeamServiceInterface
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// CreateTeam handles POST /api/Teams/create_team.
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req CreateTeamRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if strings.TrimSpace(req.TeamName) == "" {
		BadRequest(c, "team_name is required")
		return
	}
	if !ensureCaller(c, req.Email) {
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), req.TeamName, req.Email)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, TeamResponse{
		Mensaje: "Equipo creado",
		Team:    team,
	})
}

// JoinTeam handles POST /api/Teams/join_team.
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	var req JoinTeamRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if !ensureCaller(c, req.Email) {
		return
	}

	team, err := h.teamService.JoinTeam(c.Request.Context(), req.Email, req.TeamName, strings.TrimSpace(req.TeamCode))
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, TeamResponse{
		Mensaje: "Te has unido al equipo",
		Team:    team,
	})
}

// ReadTeams handles POST /api/Teams/read_teams.
func (h *TeamHandler) ReadTeams(c *gin.Context) {
	var req EmailRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if !ensureCaller(c, req.Email) {
		return
	}

	teams, err := h.teamService.ReadTeams(c.Request.Context(), req.Email)
	if err != nil {
		serviceError(c, err)
		return
	}
	if teams == nil {
		teams = []domain.Team{}
	}

	c.JSON(http.StatusOK, TeamsResponse{Teams: teams})
}

// GetMembers handles POST /get_members.
func (h *TeamHandler) GetMembers(c *gin.Context) {
	var req TeamCodeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "team_code is required")
		return
	}

	members, err := h.teamService.GetMembers(c.Request.Context(), callerEmail(c), strings.TrimSpace(req.TeamCode))
	if err != nil {
		serviceError(c, err)
		return
	}
	if members == nil {
		members = []domain.TeamMember{}
	}

	c.JSON(http.StatusOK, MembersResponse{Members: members})
}

// UpdateMembers handles POST /api/Teams/update_members.
// The acting member is always the authenticated caller.
func (h *TeamHandler) UpdateMembers(c *gin.Context) {
	var req UpdateMembersRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	action := domain.MemberAction(strings.ToLower(strings.TrimSpace(req.Action)))
	if !action.IsValid() {
		BadRequest(c, "action must be one of promote, demote, remove")
		return
	}

	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	m, err := h.teamService.UpdateMember(c.Request.Context(), caller.Email, strings.TrimSpace(req.TeamCode), req.Email, action)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MemberResponse{
		Mensaje: "Miembro actualizado",
		Member:  m,
	})
}

// DeleteTeam handles POST /api/Teams/delete_team.
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	var req TeamCodeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "team_code is required")
		return
	}

	caller, ok := requireCaller(c)
	if !ok {
		return
	}

	if err := h.teamService.DeleteTeam(c.Request.Context(), caller.Email, strings.TrimSpace(req.TeamCode)); err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Mensaje: "Equipo eliminado"})
}
