package handler

import (
	"net/http"

	"github.com/AbhradeepRoy/Ayush/internal/audit"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultAuditLimit = 50

// AuditHandler exposes the session's mutation trail
type AuditHandler struct {
	audit  *audit.Logger
	logger *zap.Logger
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(auditLogger *audit.Logger, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{
		audit:  auditLogger,
		logger: logger,
	}
}

// GetApiV1Audit lists recent mutations, newest first
func (h *AuditHandler) GetApiV1Audit(c *gin.Context, params api.GetApiV1AuditParams) {
	limit := defaultAuditLimit
	if params.Limit != nil {
		if *params.Limit < 1 || *params.Limit > audit.DefaultCapacity {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "limit must be between 1 and 200",
			})
			return
		}
		limit = *params.Limit
	}

	entries := h.audit.Recent(limit)
	response := make([]api.AuditEntry, 0, len(entries))
	for _, e := range entries {
		entry := api.AuditEntry{
			Operation:    string(e.OperationType),
			ResourceType: string(e.ResourceType),
			Revision:     e.Revision,
			Timestamp:    e.Timestamp,
		}
		if e.ResourceID != "" {
			entry.ResourceId = stringPtr(e.ResourceID)
		}
		if len(e.AdditionalData) > 0 {
			data := map[string]interface{}(e.AdditionalData)
			entry.AdditionalData = &data
		}
		response = append(response, entry)
	}

	c.JSON(http.StatusOK, response)
}
