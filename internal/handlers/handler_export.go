package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/middleware"
)

// exportHandler serializes the tabular export at the HTTP boundary. The
// service produces field-name-indexed rows; this handler renders them as
// CSV in the fixed column order, or as JSON rows when requested.
type exportHandler struct {
	exportService portssvc.ExportSvcFacade
}

func newExportHandler(exportService portssvc.ExportSvcFacade) *exportHandler {
	return &exportHandler{exportService: exportService}
}

// exportPeriod godoc
// @Summary Export a period's entries as a table
// @Description Exports the period's entries plus a summary row. format=csv (default) streams a CSV file; format=json returns the raw rows.
// @Tags export
// @Produce json
// @Produce text/csv
// @Param period query string false "Period token (week|month|quarter|year)" default(month)
// @Param format query string false "Output format (csv|json)" default(csv)
// @Success 200 {array} object
// @Failure 500 {object} map[string]string "Failed to export period"
// @Router /export [get]
func (h *exportHandler) exportPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	period := domain.PeriodToken(c.DefaultQuery("period", string(domain.PeriodMonth)))
	format := c.DefaultQuery("format", "csv")

	rows, err := h.exportService.ExportPeriod(c.Request.Context(), period, time.Now().UTC())
	if err != nil {
		logger.Error("Failed to export period", slog.String("error", err.Error()), slog.String("period", string(period)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export period"})
		return
	}

	if format == "json" {
		c.JSON(http.StatusOK, rows)
		return
	}

	filename := fmt.Sprintf("comptabilite_%s_%s.csv", period, time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(domain.ExportColumns); err != nil {
		logger.Error("Failed to write CSV header", slog.String("error", err.Error()))
		return
	}
	for _, row := range rows {
		record := make([]string, len(domain.ExportColumns))
		for i, col := range domain.ExportColumns {
			record[i] = cellString(row[col])
		}
		if err := w.Write(record); err != nil {
			logger.Error("Failed to write CSV row", slog.String("error", err.Error()))
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to flush CSV output", slog.String("error", err.Error()))
	}
}

// cellString renders one tabular cell for CSV output. Absent cells render
// empty so the summary row keeps its blank columns.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case decimal.Decimal:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// registerExportRoutes registers export specific routes
func registerExportRoutes(group *gin.RouterGroup, exportService portssvc.ExportSvcFacade) {
	exportHandler := newExportHandler(exportService)
	group.GET("/export", exportHandler.exportPeriod)
}
