package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	kpi "github.com/visionassist/backend/internal/application/analytics"
)

// DashboardHandler exposes the dashboard KPI endpoints
type DashboardHandler struct {
	BaseHandler
	kpiService *kpi.KPIService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(kpiService *kpi.KPIService) *DashboardHandler {
	return &DashboardHandler{
		kpiService: kpiService,
	}
}

// SalesTotals godoc
// @ID           getDashboardSales
// @Summary      Get sales totals
// @Description  All-time sales count and revenue for the dashboard header
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[kpi.SalesTotalsResponse]
// @Router       /dashboard/sales [get]
func (h *DashboardHandler) SalesTotals(c *gin.Context) {
	totals, err := h.kpiService.SalesTotals(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, totals)
}

// Bestsellers godoc
// @ID           getDashboardBestsellers
// @Summary      Get best selling device types
// @Description  Device counts grouped by type, ordered by popularity
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} APIResponse[[]kpi.TopProduct]
// @Router       /dashboard/bestsellers [get]
func (h *DashboardHandler) Bestsellers(c *gin.Context) {
	products, err := h.kpiService.TopProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// RevenueGrowth godoc
// @ID           getDashboardRevenueGrowth
// @Summary      Get revenue growth
// @Description  Month-to-date revenue compared against the previous month
// @Description  and the same month last year
// @Tags         dashboard
// @Produce      json
// @Param        endDate query string false "Reference date (RFC 3339 or YYYY-MM-DD, default now)"
// @Success      200 {object} APIResponse[kpi.RevenueGrowthResponse]
// @Failure      400 {object} dto.Response
// @Router       /dashboard/revenue-growth [get]
func (h *DashboardHandler) RevenueGrowth(c *gin.Context) {
	endDate, err := parseTimeParam(c, "endDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	growth, err := h.kpiService.RevenueGrowth(c.Request.Context(), endDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, growth)
}

// ProfitMargins godoc
// @ID           getDashboardProfitMargins
// @Summary      Get profit margins
// @Description  Revenue, cost and margin over the requested window,
// @Description  falling back to an estimated cost where none is recorded
// @Tags         dashboard
// @Produce      json
// @Param        startDate query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        endDate query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success      200 {object} APIResponse[kpi.ProfitMarginResponse]
// @Failure      400 {object} dto.Response
// @Router       /dashboard/profit-margins [get]
func (h *DashboardHandler) ProfitMargins(c *gin.Context) {
	startDate, err := parseTimeParam(c, "startDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	endDate, err := parseTimeParam(c, "endDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	margins, err := h.kpiService.ProfitMargin(c.Request.Context(), startDate, endDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, margins)
}

// PeriodProjections godoc
// @ID           getDashboardPeriodProjections
// @Summary      Get period projections
// @Description  Projected revenue for the current month or quarter based
// @Description  on the run rate so far
// @Tags         dashboard
// @Produce      json
// @Param        period query string false "Projection period" Enums(month, quarter) default(month)
// @Success      200 {object} APIResponse[kpi.PeriodProjectionsResponse]
// @Failure      400 {object} dto.Response
// @Router       /dashboard/period-projections [get]
func (h *DashboardHandler) PeriodProjections(c *gin.Context) {
	period := c.DefaultQuery("period", "month")

	projections, err := h.kpiService.PeriodProjections(c.Request.Context(), period)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, projections)
}

// ActiveUsers godoc
// @ID           getDashboardActiveUsers
// @Summary      Get monthly active users
// @Description  Per-month active user counts with the trend over the window
// @Tags         dashboard
// @Produce      json
// @Param        months query int false "Number of months to include" default(6)
// @Success      200 {object} APIResponse[kpi.MonthlyActiveUsersResponse]
// @Failure      400 {object} dto.Response
// @Router       /dashboard/active-users [get]
func (h *DashboardHandler) ActiveUsers(c *gin.Context) {
	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.BadRequest(c, "months must be a positive integer")
			return
		}
		months = parsed
	}

	mau, err := h.kpiService.MonthlyActiveUsers(c.Request.Context(), months)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, mau)
}

// SecurityIncidents godoc
// @ID           getDashboardSecurityIncidents
// @Summary      Get security incident statistics
// @Description  Incident counts by severity with the per-user rate over the window
// @Tags         dashboard
// @Produce      json
// @Param        startDate query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        endDate query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success      200 {object} APIResponse[kpi.SecurityIncidentsResponse]
// @Failure      400 {object} dto.Response
// @Router       /dashboard/security-incidents [get]
func (h *DashboardHandler) SecurityIncidents(c *gin.Context) {
	startDate, err := parseTimeParam(c, "startDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}
	endDate, err := parseTimeParam(c, "endDate")
	if err != nil {
		h.HandleError(c, err)
		return
	}

	incidents, err := h.kpiService.SecurityIncidents(c.Request.Context(), startDate, endDate)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, incidents)
}
