package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/service"
)

// ErrorCode represents machine-readable error codes returned to clients.
type ErrorCode string

const (
	ErrorTeamExists      ErrorCode = "TEAM_EXISTS"
	ErrorAlreadyMember   ErrorCode = "ALREADY_MEMBER"
	ErrorNotFound        ErrorCode = "NOT_FOUND"
	ErrorForbidden       ErrorCode = "FORBIDDEN"
	ErrorInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrorLastAdmin       ErrorCode = "LAST_ADMIN"
	ErrorUnauthorized    ErrorCode = "UNAUTHORIZED"
)

// ErrorBody is the payload of an error response.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResponse represents error response structure.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// MessageResponse acknowledges a write with a human readable message.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// CreateDeviceResponse wraps the created device.
type CreateDeviceResponse struct {
	Mensaje string         `json:"mensaje"`
	Device  *domain.Device `json:"device"`
}

// UpdateStatusResponse wraps the device after an update-status call.
// Device is omitted after a delete.
type UpdateStatusResponse struct {
	Mensaje string         `json:"mensaje"`
	Device  *domain.Device `json:"device,omitempty"`
}

// TeamResponse wraps a created or joined team.
type TeamResponse struct {
	Mensaje string       `json:"mensaje"`
	Team    *domain.Team `json:"team"`
}

// TeamsResponse wraps the teams of a user.
type TeamsResponse struct {
	Teams []domain.Team `json:"teams"`
}

// MembersResponse wraps the members of a team.
type MembersResponse struct {
	Members []domain.TeamMember `json:"members"`
}

// MemberResponse wraps a member after an administrative change.
type MemberResponse struct {
	Mensaje string             `json:"mensaje"`
	Member  *domain.TeamMember `json:"member"`
}

// UserResponse wraps a profile after a write.
type UserResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user,omitempty"`
}

// StatsResponse wraps per-member statistics.
type StatsResponse struct {
	Success bool                `json:"success"`
	Data    *domain.MemberStats `json:"data"`
}

// Error sends error response.
func Error(c *gin.Context, code ErrorCode, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{
		Error: ErrorBody{
			Code:    code,
			Message: message,
		},
	})
}

// NotFound sends 404 error.
func NotFound(c *gin.Context, message string) {
	Error(c, ErrorNotFound, message, http.StatusNotFound)
}

// Conflict sends 409 error.
func Conflict(c *gin.Context, code ErrorCode, message string) {
	Error(c, code, message, http.StatusConflict)
}

// Forbidden sends 403 error.
func Forbidden(c *gin.Context, message string) {
	Error(c, ErrorForbidden, message, http.StatusForbidden)
}

// Unauthorized sends 401 error.
func Unauthorized(c *gin.Context, message string) {
	Error(c, ErrorUnauthorized, message, http.StatusUnauthorized)
}

// BadRequest sends 400 error.
func BadRequest(c *gin.Context, message string) {
	Error(c, ErrorInvalidArgument, message, http.StatusBadRequest)
}

// InternalError sends 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, "", message, http.StatusInternalServerError)
}

// serviceError maps service sentinel errors to HTTP responses.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		NotFound(c, "team not found")
	case errors.Is(err, service.ErrDeviceNotFound):
		NotFound(c, "device not found")
	case errors.Is(err, service.ErrMemberNotFound):
		NotFound(c, "member not found")
	case errors.Is(err, service.ErrUserNotFound):
		NotFound(c, "user not found")
	case errors.Is(err, service.ErrTeamNameMismatch):
		NotFound(c, "team name and code do not match")
	case errors.Is(err, service.ErrAlreadyMember):
		Conflict(c, ErrorAlreadyMember, "user already belongs to this team")
	case errors.Is(err, service.ErrCodeExhausted):
		Conflict(c, ErrorTeamExists, "could not allocate a team code, try again")
	case errors.Is(err, service.ErrLastAdmin):
		Conflict(c, ErrorLastAdmin, "team must keep at least one admin")
	case errors.Is(err, service.ErrForbidden):
		Forbidden(c, "not allowed to perform this action")
	case errors.Is(err, service.ErrSelfRoleChange):
		Forbidden(c, "cannot change own role")
	case errors.Is(err, service.ErrRoleUnchanged),
		errors.Is(err, service.ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidDevice),
		errors.Is(err, service.ErrInvalidMemberRole),
		errors.Is(err, service.ErrAmbiguousOwner):
		BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		InternalError(c, err.Error())
	}
}
