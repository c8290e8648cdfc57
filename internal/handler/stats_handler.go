package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/domain"
)

// StatsHandler handles footprint statistics requests.
type StatsHandler struct {
	deviceService DeviceServiceInterface
}

// NewStatsHandler creates a new statistics handler.
func NewStatsHandler(deviceService DeviceServiceInterface) *StatsHandler {
	return &StatsHandler{deviceService: deviceService}
}

// ReadPerDevice handles POST /read_perDev.
// It answers one [kgCO2, hours] pair per device, in request order.
func (h *StatsHandler) ReadPerDevice(c *gin.Context) {
	var req ReadPerDevRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	footprints := h.deviceService.Footprints(req.Data)
	if footprints == nil {
		footprints = []domain.Footprint{}
	}

	c.JSON(http.StatusOK, footprints)
}

// MemberStats handles POST /readstatisdics_peruser.
func (h *StatsHandler) MemberStats(c *gin.Context) {
	var req MemberStatsRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	stats, err := h.deviceService.MemberStats(c.Request.Context(), req.Email, req.TeamCode)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		Success: true,
		Data:    stats,
	})
}
