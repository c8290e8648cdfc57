package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	userService UserServiceInterface
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService UserServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetUser handles POST /get_user.
func (h *UserHandler) GetUser(c *gin.Context) {
	var req EmailRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "email is required")
		return
	}
	if !ensureCaller(c, req.Email) {
		return
	}

	u, err := h.userService.GetUser(c.Request.Context(), req.Email)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}

// UpdateUser handles POST /update_user.
// Blank fields keep their stored values.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if !ensureCaller(c, req.Email) {
		return
	}

	u, err := h.userService.UpdateUser(c.Request.Context(), domain.User{
		Name:   req.Nombre,
		Email:  req.Email,
		Avatar: req.Avatar,
		Phone:  req.Phone,
		City:   req.City,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Success: true, User: u})
}

// UploadAvatar handles POST /upload_avatar.
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	var req UploadAvatarRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "email and imageUri are required")
		return
	}
	if !ensureCaller(c, req.Email) {
		return
	}

	u, err := h.userService.UploadAvatar(c.Request.Context(), req.Email, req.ImageURI)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserResponse{Success: true, User: u})
}
