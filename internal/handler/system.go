package handler

import (
	"net/http"
	"time"

	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SystemHandler serves liveness and the API description
type SystemHandler struct {
	doc    *openapi3.T
	logger *zap.Logger
}

// NewSystemHandler creates a new SystemHandler serving doc
func NewSystemHandler(doc *openapi3.T, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		doc:    doc,
		logger: logger,
	}
}

// GetHealth reports that the process is up
func (h *SystemHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, api.HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}

// GetOpenapiJson serves the OpenAPI document
func (h *SystemHandler) GetOpenapiJson(c *gin.Context) {
	if h.doc == nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{
			Code:    "NOT_FOUND",
			Message: "API description is not available",
		})
		return
	}
	c.JSON(http.StatusOK, h.doc)
}
