package handler

import (
	"net/http"

	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SettingsHandler implements profile and session setting endpoints
type SettingsHandler struct {
	service *service.SettingsService
	logger  *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(service *service.SettingsService, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1Profile returns the current profile
func (h *SettingsHandler) GetApiV1Profile(c *gin.Context) {
	c.JSON(http.StatusOK, toAPIProfile(h.service.Profile()))
}

// PutApiV1Profile merges the submitted fields onto the profile. Fields left
// out keep their current value.
func (h *SettingsHandler) PutApiV1Profile(c *gin.Context) {
	req := h.service.ProfileDraft()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		invalidBody(c, err)
		return
	}

	profile, err := h.service.UpdateProfile(req)
	if err != nil {
		if validationFailed(c, err) {
			return
		}
		h.logger.Error("failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to update profile",
			Details: stringPtr(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, toAPIProfile(profile))
}

// GetApiV1Languages lists the supported coach languages
func (h *SettingsHandler) GetApiV1Languages(c *gin.Context) {
	langs := h.service.Languages()
	response := make([]api.Language, 0, len(langs))
	for _, l := range langs {
		response = append(response, api.Language{Code: l.Code, Name: l.Name})
	}
	c.JSON(http.StatusOK, response)
}

// PostApiV1SettingsDisplayModeToggle flips light/dark mode
func (h *SettingsHandler) PostApiV1SettingsDisplayModeToggle(c *gin.Context) {
	mode := h.service.ToggleDisplayMode()
	c.JSON(http.StatusOK, api.DisplayModeResponse{DisplayMode: api.DisplayMode(mode)})
}

// PostApiV1SettingsReset deletes all session health data
func (h *SettingsHandler) PostApiV1SettingsReset(c *gin.Context) {
	c.JSON(http.StatusOK, toAPIState(h.service.Reset()))
}
