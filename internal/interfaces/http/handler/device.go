package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/visionassist/backend/internal/application/catalog"
)

// DeviceHandler handles device-related API endpoints
type DeviceHandler struct {
	BaseHandler
	deviceService *catalogapp.DeviceService
}

// NewDeviceHandler creates a new DeviceHandler
func NewDeviceHandler(deviceService *catalogapp.DeviceService) *DeviceHandler {
	return &DeviceHandler{
		deviceService: deviceService,
	}
}

// Create godoc
// @ID           createDevice
// @Summary      Register a new device
// @Description  Register a new assistance device in the catalog
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateDeviceRequest true "Device creation request"
// @Success      201 {object} APIResponse[catalogapp.DeviceResponse]
// @Failure      400 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Router       /devices [post]
func (h *DeviceHandler) Create(c *gin.Context) {
	var req catalogapp.CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	device, err := h.deviceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, device)
}

// GetByID godoc
// @ID           getDeviceById
// @Summary      Get device by ID
// @Tags         devices
// @Produce      json
// @Param        id path string true "Device ID" format(uuid)
// @Success      200 {object} APIResponse[catalogapp.DeviceResponse]
// @Failure      404 {object} dto.Response
// @Router       /devices/{id} [get]
func (h *DeviceHandler) GetByID(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid device ID format")
		return
	}

	device, err := h.deviceService.GetByID(c.Request.Context(), deviceID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, device)
}

// List godoc
// @ID           listDevices
// @Summary      List devices
// @Description  Retrieve a paginated list of devices with optional filtering
// @Tags         devices
// @Produce      json
// @Param        search query string false "Search term (serial number, notes)"
// @Param        type query string false "Device type" Enums(glasses, bracelet, cane, pendant)
// @Param        status query string false "Device status" Enums(available, connected, disconnected, maintenance)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]catalogapp.DeviceResponse]
// @Router       /devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	var filter catalogapp.DeviceListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	devices, total, err := h.deviceService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, devices, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateDevice
// @Summary      Update a device
// @Tags         devices
// @Accept       json
// @Produce      json
// @Param        id path string true "Device ID" format(uuid)
// @Param        request body catalogapp.UpdateDeviceRequest true "Device update request"
// @Success      200 {object} APIResponse[catalogapp.DeviceResponse]
// @Failure      404 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Router       /devices/{id} [put]
func (h *DeviceHandler) Update(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid device ID format")
		return
	}

	var req catalogapp.UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	device, err := h.deviceService.Update(c.Request.Context(), deviceID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, device)
}

// Delete godoc
// @ID           deleteDevice
// @Summary      Delete a device
// @Tags         devices
// @Param        id path string true "Device ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Router       /devices/{id} [delete]
func (h *DeviceHandler) Delete(c *gin.Context) {
	deviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid device ID format")
		return
	}

	if err := h.deviceService.Delete(c.Request.Context(), deviceID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
