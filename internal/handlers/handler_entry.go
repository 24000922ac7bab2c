package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kemgoum/gescom_backend/internal/apperrors"
	"github.com/kemgoum/gescom_backend/internal/core/domain"
	portssvc "github.com/kemgoum/gescom_backend/internal/core/ports/services"
	"github.com/kemgoum/gescom_backend/internal/dto"
	"github.com/kemgoum/gescom_backend/internal/middleware"
)

// entryHandler handles HTTP requests related to accounting entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(entryService portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{entryService: entryService}
}

// createEntry godoc
// @Summary Record a new accounting entry
// @Description Creates a manual ledger entry in Pending status, dated at the creation instant
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateEntryRequest true "Entry details"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Invalid request format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateEntryRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), createReq, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create entry in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entry"})
		return
	}

	logger.Info("Entry created successfully", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(*entry))
}

// listEntries godoc
// @Summary List accounting entries
// @Description Returns the full entry collection, most recent first
// @Tags entries
// @Produce json
// @Success 200 {array} dto.EntryResponse
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// getEntry godoc
// @Summary Get an accounting entry
// @Description Retrieves an entry by its ID
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /entries/{entryID} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Entry not found", slog.String("entry_id", entryID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to get entry from service", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry))
}

// updateEntry godoc
// @Summary Update an accounting entry
// @Description Patches an existing entry. Updating an unknown ID is a silent no-op.
// @Tags entries
// @Accept json
// @Produce json
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateEntryRequest true "Fields to update"
// @Success 200 {object} dto.EntryResponse
// @Success 204 "Unknown entry ID, nothing updated"
// @Failure 400 {object} map[string]string "Invalid request format or validation error"
// @Router /entries/{entryID} [put]
func (h *entryHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	updateReq := dto.UpdateEntryRequest{}
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		logger.Error("Failed to bind JSON for updateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	entry, err := h.entryService.UpdateEntry(c.Request.Context(), entryID, updateReq)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update entry in service", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		return
	}
	if entry == nil {
		// Unknown ID, nothing was touched.
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Entry updated successfully", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry))
}

// deleteEntry godoc
// @Summary Delete an accounting entry
// @Description Removes the entry. Deleting an unknown ID is a silent no-op.
// @Tags entries
// @Param entryID path string true "Entry ID"
// @Success 204 "Deleted (or nothing to delete)"
// @Failure 500 {object} map[string]string "Failed to delete entry"
// @Router /entries/{entryID} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	if err := h.entryService.DeleteEntry(c.Request.Context(), entryID); err != nil {
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete entry"})
		return
	}

	logger.Info("Entry deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

// validateEntry godoc
// @Summary Validate a pending entry
// @Description Transitions a pending entry to Validated
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Entry is not pending"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /entries/{entryID}/validate [post]
func (h *entryHandler) validateEntry(c *gin.Context) {
	h.transitionEntry(c, h.entryService.ValidateEntry, "validate")
}

// rejectEntry godoc
// @Summary Reject a pending entry
// @Description Transitions a pending entry to the terminal Rejected state, excluding it from all totals
// @Tags entries
// @Produce json
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} map[string]string "Entry is not pending"
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /entries/{entryID}/reject [post]
func (h *entryHandler) rejectEntry(c *gin.Context) {
	h.transitionEntry(c, h.entryService.RejectEntry, "reject")
}

func (h *entryHandler) transitionEntry(c *gin.Context, op func(ctx context.Context, entryID string) (*domain.AccountingEntry, error), action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")

	entry, err := op(c.Request.Context(), entryID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Entry not found", slog.String("entry_id", entryID), slog.String("action", action))
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Invalid entry transition", slog.String("entry_id", entryID), slog.String("action", action), slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to transition entry", slog.String("entry_id", entryID), slog.String("action", action), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry status"})
		}
		return
	}

	logger.Info("Entry status changed", slog.String("entry_id", entryID), slog.String("status", string(entry.Status)))
	c.JSON(http.StatusOK, dto.ToEntryResponse(*entry))
}

// RegisterEntryRoutes registers entry specific routes
func RegisterEntryRoutes(group *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	entryHandler := newEntryHandler(entryService)

	entries := group.Group("/entries")
	{
		entries.POST("", entryHandler.createEntry)
		entries.GET("", entryHandler.listEntries)
		entries.GET("/:entryID", entryHandler.getEntry)
		entries.PUT("/:entryID", entryHandler.updateEntry)
		entries.DELETE("/:entryID", entryHandler.deleteEntry)
		entries.POST("/:entryID/validate", entryHandler.validateEntry)
		entries.POST("/:entryID/reject", entryHandler.rejectEntry)
	}
}
