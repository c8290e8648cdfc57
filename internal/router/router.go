package router

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/handler"
	"github.com/blueswitch/blueswitch/internal/middleware"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Device *handler.DeviceHandler
	Team   *handler.TeamHandler
	User   *handler.UserHandler
	Stats  *handler.StatsHandler
}

// SetupRoutes configures all API routes.
func SetupRoutes(logger *slog.Logger, authMiddleware *middleware.AuthMiddleware, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(logger),
		middleware.RequestLogger(logger),
	)

	r.GET("/connection", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/", authMiddleware.Authenticate())

	// Device endpoints
	api.POST("/get_devices", h.Device.GetDevices)
	api.POST("/read-CO2", h.Device.ReadCO2)
	api.POST("/crear-device", h.Device.CreateDevice)
	api.POST("/update-status", h.Device.UpdateStatus)

	// Team endpoints
	api.POST("/get_members", h.Team.GetMembers)
	teams := api.Group("/api/Teams")
	teams.POST("/create_team", h.Team.CreateTeam)
	teams.POST("/join_team", h.Team.JoinTeam)
	teams.POST("/read_teams", h.Team.ReadTeams)
	teams.POST("/update_members", h.Team.UpdateMembers)
	teams.POST("/delete_team", h.Team.DeleteTeam)

	// User endpoints
	api.POST("/get_user", h.User.GetUser)
	api.POST("/update_user", h.User.UpdateUser)
	api.POST("/upload_avatar", h.User.UploadAvatar)

	// Statistics endpoints
	api.POST("/read_perDev", h.Stats.ReadPerDevice)
	api.POST("/readstatisdics_peruser", h.Stats.MemberStats)

	return r
}
