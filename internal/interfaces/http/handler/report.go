package handler

import (
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/visionassist/backend/internal/application/export"
	reportapp "github.com/visionassist/backend/internal/application/report"
)

// ReportHandler exposes the report generation and export endpoints.
// Each report returns its JSON payload by default; passing ?format=
// excel|csv|pdf streams the rendered file instead.
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
	exporter      *export.Exporter
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService, exporter *export.Exporter) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		exporter:      exporter,
	}
}

// reportWindow extracts the optional start/end window parameters
func (h *ReportHandler) reportWindow(c *gin.Context) (start, end *time.Time, ok bool) {
	start, err := parseTimeParam(c, "startDate")
	if err != nil {
		h.HandleError(c, err)
		return nil, nil, false
	}
	end, err = parseTimeParam(c, "endDate")
	if err != nil {
		h.HandleError(c, err)
		return nil, nil, false
	}
	return start, end, true
}

// respond either returns the payload as JSON or renders it in the
// requested export format and streams the file as an attachment.
// Generated files are removed once streamed.
func (h *ReportHandler) respond(c *gin.Context, payload any, reportName string) {
	rawFormat := c.Query("format")
	if rawFormat == "" {
		h.Success(c, payload)
		return
	}

	format, err := export.ParseFormat(rawFormat)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	path, err := h.exporter.Export(c.Request.Context(), payload, reportName, format)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer os.Remove(path)

	downloadName := export.DownloadName(reportName, format, time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+downloadName+`"`)
	c.Header("Content-Type", format.ContentType())
	c.File(path)
}

// Usage godoc
// @ID           getUsageReport
// @Summary      Generate the system usage report
// @Description  Per-device and per-user usage counts, device status
// @Description  distribution and activity volume over the window
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        endDate query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Param        format query string false "Export format" Enums(excel, csv, pdf)
// @Success      200 {object} APIResponse[reportapp.UsageReportData]
// @Failure      400 {object} dto.Response
// @Router       /reports/usage [get]
func (h *ReportHandler) Usage(c *gin.Context) {
	start, end, ok := h.reportWindow(c)
	if !ok {
		return
	}

	data, err := h.reportService.UsageReport(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.respond(c, data, reportapp.UsageReportName)
}

// Sales godoc
// @ID           getSalesReport
// @Summary      Generate the sales report
// @Description  Sales grouped by device type and by month over the window
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        endDate query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Param        format query string false "Export format" Enums(excel, csv, pdf)
// @Success      200 {object} APIResponse[reportapp.SalesReportData]
// @Failure      400 {object} dto.Response
// @Router       /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	start, end, ok := h.reportWindow(c)
	if !ok {
		return
	}

	data, err := h.reportService.SalesReport(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.respond(c, data, reportapp.SalesReportName)
}

// Zones godoc
// @ID           getZonesReport
// @Summary      Generate the zones report
// @Description  Zones grouped by type, environment and creation month
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        endDate query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Param        format query string false "Export format" Enums(excel, csv, pdf)
// @Success      200 {object} APIResponse[reportapp.ZoneReportData]
// @Failure      400 {object} dto.Response
// @Router       /reports/zones [get]
func (h *ReportHandler) Zones(c *gin.Context) {
	start, end, ok := h.reportWindow(c)
	if !ok {
		return
	}

	data, err := h.reportService.ZoneReport(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.respond(c, data, reportapp.ZonesReportName)
}

// MonthlyActiveUsers godoc
// @ID           getMonthlyActiveUsersReport
// @Summary      Generate the monthly active users report
// @Description  Active user details and per-month statistics over the window
// @Tags         reports
// @Produce      json
// @Param        months query int false "Number of months to include" default(6)
// @Param        startDate query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param        endDate query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Param        format query string false "Export format" Enums(excel, csv, pdf)
// @Success      200 {object} APIResponse[reportapp.MAUReportData]
// @Failure      400 {object} dto.Response
// @Router       /reports/monthly-active-users [get]
func (h *ReportHandler) MonthlyActiveUsers(c *gin.Context) {
	start, end, ok := h.reportWindow(c)
	if !ok {
		return
	}

	months := 0
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.BadRequest(c, "months must be a positive integer")
			return
		}
		months = parsed
	}

	data, err := h.reportService.MonthlyActiveUsersReport(c.Request.Context(), months, start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.respond(c, data, reportapp.MAUReportName)
}
