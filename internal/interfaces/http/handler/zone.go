package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	zoneapp "github.com/visionassist/backend/internal/application/zone"
)

// ZoneHandler handles zone and environment API endpoints
type ZoneHandler struct {
	BaseHandler
	zoneService *zoneapp.ZoneService
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(zoneService *zoneapp.ZoneService) *ZoneHandler {
	return &ZoneHandler{
		zoneService: zoneService,
	}
}

// Create godoc
// @ID           createZone
// @Summary      Create a navigation zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        request body zoneapp.CreateZoneRequest true "Zone creation request"
// @Success      201 {object} APIResponse[zoneapp.ZoneResponse]
// @Failure      400 {object} dto.Response
// @Router       /zones [post]
func (h *ZoneHandler) Create(c *gin.Context) {
	var req zoneapp.CreateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	zone, err := h.zoneService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, zone)
}

// GetByID godoc
// @ID           getZoneById
// @Summary      Get zone by ID
// @Tags         zones
// @Produce      json
// @Param        id path string true "Zone ID" format(uuid)
// @Success      200 {object} APIResponse[zoneapp.ZoneResponse]
// @Failure      404 {object} dto.Response
// @Router       /zones/{id} [get]
func (h *ZoneHandler) GetByID(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone ID format")
		return
	}

	zone, err := h.zoneService.GetByID(c.Request.Context(), zoneID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, zone)
}

// List godoc
// @ID           listZones
// @Summary      List zones
// @Tags         zones
// @Produce      json
// @Param        search query string false "Search term (name, description)"
// @Param        type query string false "Zone type" Enums(safe, restricted, danger, transit)
// @Param        page query int false "Page number" default(1)
// @Param        page_size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} APIResponse[[]zoneapp.ZoneResponse]
// @Router       /zones [get]
func (h *ZoneHandler) List(c *gin.Context) {
	var filter zoneapp.ZoneListFilter
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

	zones, total, err := h.zoneService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, zones, total, filter.Page, filter.PageSize)
}

// Update godoc
// @ID           updateZone
// @Summary      Update a zone
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        id path string true "Zone ID" format(uuid)
// @Param        request body zoneapp.UpdateZoneRequest true "Zone update request"
// @Success      200 {object} APIResponse[zoneapp.ZoneResponse]
// @Failure      404 {object} dto.Response
// @Router       /zones/{id} [put]
func (h *ZoneHandler) Update(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone ID format")
		return
	}

	var req zoneapp.UpdateZoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	zone, err := h.zoneService.Update(c.Request.Context(), zoneID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, zone)
}

// Delete godoc
// @ID           deleteZone
// @Summary      Delete a zone
// @Tags         zones
// @Param        id path string true "Zone ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Router       /zones/{id} [delete]
func (h *ZoneHandler) Delete(c *gin.Context) {
	zoneID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid zone ID format")
		return
	}

	if err := h.zoneService.Delete(c.Request.Context(), zoneID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateEnvironment godoc
// @ID           createEnvironment
// @Summary      Create an environment
// @Description  Create a named environment zones can be grouped under
// @Tags         zones
// @Accept       json
// @Produce      json
// @Param        request body zoneapp.CreateEnvironmentRequest true "Environment creation request"
// @Success      201 {object} APIResponse[zoneapp.EnvironmentResponse]
// @Failure      400 {object} dto.Response
// @Router       /environments [post]
func (h *ZoneHandler) CreateEnvironment(c *gin.Context) {
	var req zoneapp.CreateEnvironmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	env, err := h.zoneService.CreateEnvironment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, env)
}

// ListEnvironments godoc
// @ID           listEnvironments
// @Summary      List environments
// @Tags         zones
// @Produce      json
// @Success      200 {object} APIResponse[[]zoneapp.EnvironmentResponse]
// @Router       /environments [get]
func (h *ZoneHandler) ListEnvironments(c *gin.Context) {
	envs, err := h.zoneService.ListEnvironments(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, envs)
}
