package handler

import (
	"errors"
	"net/http"

	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusClientClosedRequest is written when the client went away before the reply
const statusClientClosedRequest = 499

// ChatHandler implements the coaching conversation endpoints
type ChatHandler struct {
	service *service.ChatService
	logger  *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(service *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

// GetApiV1ChatMessages returns the conversation and the typing indicator
func (h *ChatHandler) GetApiV1ChatMessages(c *gin.Context) {
	c.JSON(http.StatusOK, api.ChatHistory{
		Messages: toAPIMessages(h.service.History()),
		Typing:   h.service.Typing(),
	})
}

// PostApiV1ChatMessages sends a message and blocks until the coach replies
func (h *ChatHandler) PostApiV1ChatMessages(c *gin.Context) {
	var req api.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		invalidBody(c, err)
		return
	}

	reply, err := h.service.Send(c.Request.Context(), req.Text)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, toAPIMessage(reply))
	case errors.Is(err, service.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "Message text is required",
		})
	case errors.Is(err, service.ErrSuperseded):
		c.JSON(http.StatusConflict, api.ErrorResponse{
			Code:    "SUPERSEDED",
			Message: "A newer message replaced this one",
		})
	case c.Request.Context().Err() != nil:
		c.AbortWithStatus(statusClientClosedRequest)
	default:
		h.logger.Error("failed to send chat message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "Failed to send message",
			Details: stringPtr(err.Error()),
		})
	}
}
