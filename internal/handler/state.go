package handler

import (
	"net/http"

	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StateHandler exposes the whole aggregate
type StateHandler struct {
	store  service.StateStoreInterface
	logger *zap.Logger
}

// NewStateHandler creates a new StateHandler
func NewStateHandler(store service.StateStoreInterface, logger *zap.Logger) *StateHandler {
	return &StateHandler{
		store:  store,
		logger: logger,
	}
}

// GetApiV1State returns a consistent snapshot of the session state
func (h *StateHandler) GetApiV1State(c *gin.Context) {
	c.JSON(http.StatusOK, toAPIState(h.store.Snapshot()))
}
