package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/dto"
	"github.com/kemgoum/gescom_backend/internal/middleware"
)

// metricsHandler handles HTTP requests for computed accounting metrics.
type metricsHandler struct {
	metricsService portssvc.MetricsSvcFacade
}

func newMetricsHandler(metricsService portssvc.MetricsSvcFacade) *metricsHandler {
	return &metricsHandler{metricsService: metricsService}
}

// getMetrics godoc
// @Summary Compute accounting metrics for a period
// @Description Recomputes income, expenses, VAT and category breakdowns from the ledger and sales feed. Unknown period tokens fall back to month.
// @Tags metrics
// @Produce json
// @Param period query string false "Period token (week|month|quarter|year)" default(month)
// @Success 200 {object} dto.MetricsResponse
// @Failure 500 {object} map[string]string "Failed to compute metrics"
// @Router /metrics [get]
func (h *metricsHandler) getMetrics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := domain.PeriodToken(c.DefaultQuery("period", string(domain.PeriodMonth)))

	bundle, err := h.metricsService.ComputeMetrics(c.Request.Context(), period, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to compute metrics", slog.String("error", err.Error()), slog.String("period", string(period)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics"})
		return
	}

	logger.Debug("Metrics computed", slog.String("period", string(period)), slog.Int("entry_count", bundle.EntryCount))
	c.JSON(http.StatusOK, dto.ToMetricsResponse(*bundle))
}

// registerMetricsRoutes registers metrics specific routes
func registerMetricsRoutes(group *gin.RouterGroup, metricsService portssvc.MetricsSvcFacade) {
	metricsHandler := newMetricsHandler(metricsService)
	group.GET("/metrics", metricsHandler.getMetrics)
}
