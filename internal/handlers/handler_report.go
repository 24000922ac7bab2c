package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/dto"
	"github.com/kemgoum/gescom_backend/internal/middleware"
)

// reportHandler handles report snapshot requests. Creating a report
// computes the current metrics for the requested period and freezes them.
type reportHandler struct {
	reportService  portssvc.ReportSvcFacade
	metricsService portssvc.MetricsSvcFacade
}

func newReportHandler(reportService portssvc.ReportSvcFacade, metricsService portssvc.MetricsSvcFacade) *reportHandler {
	return &reportHandler{
		reportService:  reportService,
		metricsService: metricsService,
	}
}

// createReport godoc
// @Summary Generate a report snapshot
// @Description Computes the period's metrics, freezes them into an immutable report with status Sent, and notifies the oversight recipients
// @Tags reports
// @Accept json
// @Produce json
// @Param report body dto.CreateReportRequest true "Report title and period"
// @Success 201 {object} dto.ReportResponse
// @Failure 400 {object} map[string]string "Invalid request format or empty title"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /reports [post]
func (h *reportHandler) createReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateReportRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for createReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	authorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Author user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period := domain.PeriodToken(createReq.Period)
	if createReq.Period == "" {
		period = domain.PeriodMonth
	}

	bundle, err := h.metricsService.ComputeMetrics(c.Request.Context(), period, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute metrics for report", slog.String("error", err.Error()), slog.String("period", string(period)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics for report"})
		return
	}

	report, err := h.reportService.CreateReport(c.Request.Context(), createReq.Title, period, *bundle, authorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating report", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create report in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	logger.Info("Report created successfully", slog.String("report_id", report.ReportID))
	c.JSON(http.StatusCreated, dto.ToReportResponse(*report))
}

// listReports godoc
// @Summary List report snapshots
// @Description Returns all stored reports, most recent first
// @Tags reports
// @Produce json
// @Success 200 {array} dto.ReportResponse
// @Failure 500 {object} map[string]string "Failed to list reports"
// @Router /reports [get]
func (h *reportHandler) listReports(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reports, err := h.reportService.ListReports(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list reports", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponses(reports))
}

// getReport godoc
// @Summary Get a report snapshot
// @Description Retrieves a frozen report by its ID
// @Tags reports
// @Produce json
// @Param reportID path string true "Report ID"
// @Success 200 {object} dto.ReportResponse
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{reportID} [get]
func (h *reportHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reportID := c.Param("reportID")

	report, err := h.reportService.GetReportByID(c.Request.Context(), reportID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Report not found", slog.String("report_id", reportID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
			return
		}
		logger.Error("Failed to get report from service", slog.String("error", err.Error()), slog.String("report_id", reportID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReportResponse(*report))
}

// registerReportRoutes registers report specific routes
func registerReportRoutes(group *gin.RouterGroup, reportService portssvc.ReportSvcFacade, metricsService portssvc.MetricsSvcFacade) {
	reportHandler := newReportHandler(reportService, metricsService)

	reports := group.Group("/reports")
	{
		reports.POST("", reportHandler.createReport)
		reports.GET("", reportHandler.listReports)
		reports.GET("/:reportID", reportHandler.getReport)
	}
}
