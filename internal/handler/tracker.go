package handler

import (
	"net/http"

	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TrackerHandler implements the daily log endpoints
type TrackerHandler struct {
	service *service.TrackerService
	logger  *zap.Logger
}

// NewTrackerHandler creates a new TrackerHandler
func NewTrackerHandler(service *service.TrackerService, logger *zap.Logger) *TrackerHandler {
	return &TrackerHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1TrackerDraft returns the form defaults for today
func (h *TrackerHandler) GetApiV1TrackerDraft(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Draft())
}

// GetApiV1TrackerStatus reports the save acknowledgement
func (h *TrackerHandler) GetApiV1TrackerStatus(c *gin.Context) {
	c.JSON(http.StatusOK, api.TrackerStatus{
		LogCount: len(h.service.Logs()),
		Saved:    h.service.Saved(),
	})
}

// GetApiV1Logs lists every daily log
func (h *TrackerHandler) GetApiV1Logs(c *gin.Context) {
	c.JSON(http.StatusOK, toAPILogs(h.service.Logs()))
}

// PostApiV1Logs validates and appends a daily log. Omitted fields take the
// form defaults.
func (h *TrackerHandler) PostApiV1Logs(c *gin.Context) {
	req := h.service.Draft()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		invalidBody(c, err)
		return
	}

	log, err := h.service.Save(req)
	if err != nil {
		if validationFailed(c, err) {
			return
		}
		h.logger.Error("failed to save daily log", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to save daily log",
			Details: stringPtr(err.Error()),
		})
		return
	}

	c.JSON(http.StatusCreated, toAPILog(log))
}
