package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/blueswitch/blueswitch/internal/domain"
	"github.com/blueswitch/blueswitch/internal/service"
)

// DeviceHandler handles device-related HTTP requests.
type DeviceHandler struct {
	deviceService DeviceServiceInterface
}

// NewDeviceHandler creates a new device handler.
func NewDeviceHandler(deviceService DeviceServiceInterface) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

// CreateDevice handles POST /crear-device.
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}
	if !ensureCaller(c, req.Email) {
		return
	}

	d, err := h.deviceService.CreateDevice(c.Request.Context(), service.NewDevice{
		Name:     req.Nombre,
		Category: req.Categoria,
		Watts:    float64(req.Watts),
		Color:    req.Color,
		Image:    req.Imagen,
		Email:    req.Email,
		TeamCode: req.TeamCode,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateDeviceResponse{
		Mensaje: "Dispositivo creado",
		Device:  d,
	})
}

// GetDevices handles POST /get_devices.
func (h *DeviceHandler) GetDevices(c *gin.Context) {
	owner, ok := bindOwner(c)
	if !ok {
		return
	}

	devices, err := h.deviceService.ListDevices(c.Request.Context(), owner)
	if err != nil {
		serviceError(c, err)
		return
	}
	if devices == nil {
		devices = []domain.Device{}
	}

	c.JSON(http.StatusOK, devices)
}

// ReadCO2 handles POST /read-CO2.
func (h *DeviceHandler) ReadCO2(c *gin.Context) {
	owner, ok := bindOwner(c)
	if !ok {
		return
	}

	report, err := h.deviceService.ReadCO2(c.Request.Context(), owner)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateStatus handles POST /update-status.
func (h *DeviceHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	arg := domain.StatusArgument(strings.TrimSpace(req.Argument))
	if !arg.IsValid() {
		BadRequest(c, "argument must be one of Switch, Favorite, Delete")
		return
	}
	if arg != domain.ArgumentDelete && req.Status == nil {
		BadRequest(c, "status is required for Switch and Favorite")
		return
	}

	status := req.Status != nil && *req.Status
	d, err := h.deviceService.UpdateStatus(c.Request.Context(), callerEmail(c), req.ID, status, arg)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateStatusResponse{
		Mensaje: statusMessage(arg),
		Device:  d,
	})
}

func statusMessage(arg domain.StatusArgument) string {
	switch arg {
	case domain.ArgumentDelete:
		return "Dispositivo eliminado"
	case domain.ArgumentFavorite:
		return "Favorito actualizado"
	default:
		return "Estado actualizado"
	}
}

// bindOwner reads an {email} or {team_code} body.
func bindOwner(c *gin.Context) (service.Owner, bool) {
	var req OwnerRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return service.Owner{}, false
	}

	owner := service.Owner{
		Email:    strings.TrimSpace(req.Email),
		TeamCode: strings.TrimSpace(req.TeamCode),
		Viewer:   callerEmail(c),
	}
	if err := owner.Validate(); err != nil {
		BadRequest(c, err.Error())
		return service.Owner{}, false
	}
	if !ensureCaller(c, owner.Email) {
		return service.Owner{}, false
	}

	return owner, true
}
