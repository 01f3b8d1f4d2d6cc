package handler

import (
	"net/http"

	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler implements dashboard API endpoints
type DashboardHandler struct {
	service *service.DashboardService
	reports *service.ReportService
	logger  *zap.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *service.DashboardService, reports *service.ReportService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		reports: reports,
		logger:  logger,
	}
}

// GetApiV1Dashboard retrieves the dashboard. Insights are included unless
// insights=false is passed.
func (h *DashboardHandler) GetApiV1Dashboard(c *gin.Context, params api.GetApiV1DashboardParams) {
	withInsights := params.Insights == nil || *params.Insights

	summary := h.service.Summary(c.Request.Context(), withInsights)

	response := api.DashboardSummary{
		Chart:       toAPILogs(summary.Chart),
		DisplayMode: api.DisplayMode(summary.DisplayMode),
		HealthScore: summary.HealthScore,
		LogCount:    summary.LogCount,
		ProfileName: summary.ProfileName,
	}
	if summary.LatestLog != nil {
		latest := toAPILog(*summary.LatestLog)
		response.LatestLog = &latest
	}
	if withInsights {
		response.Insights = stringPtr(summary.Insights)
	}

	c.JSON(http.StatusOK, response)
}

// GetApiV1DashboardReportPdf downloads the dashboard as a PDF
func (h *DashboardHandler) GetApiV1DashboardReportPdf(c *gin.Context) {
	report, err := h.reports.Generate()
	if err != nil {
		h.logger.Error("failed to generate report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to generate report",
			Details: stringPtr(err.Error()),
		})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+report.Filename)
	c.Data(http.StatusOK, "application/pdf", report.Content)
}
