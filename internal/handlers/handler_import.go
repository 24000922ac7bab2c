package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/dto"
	"github.com/kemgoum/gescom_backend/internal/middleware"
)

// importHandler handles the two-step spreadsheet reconciliation flow.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(importService portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: importService}
}

// previewImport godoc
// @Summary Preview a spreadsheet import
// @Description Parses raw tabular rows into staged candidate entries. Rows failing the acceptance checks are returned with a reason. Nothing is written to the ledger.
// @Tags import
// @Accept json
// @Produce json
// @Param rows body dto.ImportPreviewRequest true "Raw spreadsheet rows"
// @Success 200 {object} dto.ImportPreviewResponse
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /import/preview [post]
func (h *importHandler) previewImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	previewReq := dto.ImportPreviewRequest{}
	if err := c.ShouldBindJSON(&previewReq); err != nil {
		logger.Error("Failed to bind JSON for previewImport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	importerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Importer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	candidates, rejected, err := h.importService.PreviewImport(c.Request.Context(), previewReq.Rows, time.Now().UTC(), importerUserID)
	if err != nil {
		logger.Error("Failed to preview import", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to preview import"})
		return
	}

	logger.Info("Import previewed",
		slog.Int("accepted", len(candidates)),
		slog.Int("rejected", len(rejected)))
	c.JSON(http.StatusOK, dto.ImportPreviewResponse{
		Candidates:    dto.ToCandidateEntries(candidates),
		Rejected:      rejected,
		AcceptedCount: len(candidates),
		RejectedCount: len(rejected),
	})
}

// confirmImport godoc
// @Summary Confirm a previewed import
// @Description Appends the inspected candidates to the ledger as one all-or-nothing batch
// @Tags import
// @Accept json
// @Produce json
// @Param candidates body dto.ImportConfirmRequest true "Candidates to merge"
// @Success 200 {object} map[string]int "Number of entries written"
// @Failure 400 {object} map[string]string "Invalid request format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /import/confirm [post]
func (h *importHandler) confirmImport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	confirmReq := dto.ImportConfirmRequest{}
	if err := c.ShouldBindJSON(&confirmReq); err != nil {
		logger.Error("Failed to bind JSON for confirmImport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	importerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Importer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	imported, err := h.importService.ConfirmImport(c.Request.Context(), confirmReq.Candidates, importerUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error confirming import", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to confirm import", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm import"})
		return
	}

	logger.Info("Import confirmed", slog.Int("imported", imported))
	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

// registerImportRoutes registers import specific routes. The import flow is
// the heaviest write path, so it gets a per-IP rate limit.
func registerImportRoutes(group *gin.RouterGroup, importService portssvc.ImportSvcFacade, rateFormat string) {
	importHandler := newImportHandler(importService)

	rate, err := limiter.NewRateFromFormatted(rateFormat)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	ipLimiter := limiter.New(memorystore.NewStore(), rate)

	imports := group.Group("/import", middleware.RateLimit(ipLimiter))
	{
		imports.POST("/preview", importHandler.previewImport)
		imports.POST("/confirm", importHandler.confirmImport)
	}
}
