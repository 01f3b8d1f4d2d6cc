package handler

import (
	"errors"
	"net/http"

	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MedicalHistoryHandler implements the medical history endpoints
type MedicalHistoryHandler struct {
	service *service.MedicalHistoryService
	logger  *zap.Logger
}

// NewMedicalHistoryHandler creates a new MedicalHistoryHandler
func NewMedicalHistoryHandler(service *service.MedicalHistoryService, logger *zap.Logger) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1MedicalHistory returns the current summary
func (h *MedicalHistoryHandler) GetApiV1MedicalHistory(c *gin.Context) {
	c.JSON(http.StatusOK, api.MedicalHistory{Summary: h.service.Summary()})
}

// PostApiV1MedicalHistory merges new information into the summary
func (h *MedicalHistoryHandler) PostApiV1MedicalHistory(c *gin.Context) {
	var req api.MedicalHistoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		invalidBody(c, err)
		return
	}

	update, err := h.service.Update(c.Request.Context(), req.Text)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, api.MedicalHistoryUpdate{
			Changed: update.Changed,
			Summary: update.Summary,
		})
	case errors.Is(err, service.ErrEmptyHistoryText):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Medical information text is required",
		})
	case c.Request.Context().Err() != nil:
		c.AbortWithStatus(statusClientClosedRequest)
	default:
		h.logger.Error("failed to update medical history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to update medical history",
			Details: stringPtr(err.Error()),
		})
	}
}
