package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Liveness probe
	// (GET /health)
	GetHealth(c *gin.Context)
	// This API description as JSON
	// (GET /openapi.json)
	GetOpenapiJson(c *gin.Context)
	// Recent state mutations, newest first
	// (GET /api/v1/audit)
	GetApiV1Audit(c *gin.Context, params GetApiV1AuditParams)
	// Conversation history and whether the coach is typing
	// (GET /api/v1/chat/messages)
	GetApiV1ChatMessages(c *gin.Context)
	// Send a message and wait for the coach's reply
	// (POST /api/v1/chat/messages)
	PostApiV1ChatMessages(c *gin.Context)
	// Health score, latest metrics, activity chart and insights
	// (GET /api/v1/dashboard)
	GetApiV1Dashboard(c *gin.Context, params GetApiV1DashboardParams)
	// Dashboard snapshot as a PDF document
	// (GET /api/v1/dashboard/report.pdf)
	GetApiV1DashboardReportPdf(c *gin.Context)
	// Languages the coach can answer in
	// (GET /api/v1/languages)
	GetApiV1Languages(c *gin.Context)
	// Every daily log in insertion order
	// (GET /api/v1/logs)
	GetApiV1Logs(c *gin.Context)
	// Validate and append a daily log
	// (POST /api/v1/logs)
	PostApiV1Logs(c *gin.Context)
	// Compressed medical history summary
	// (GET /api/v1/medical-history)
	GetApiV1MedicalHistory(c *gin.Context)
	// Merge new medical information into the summary
	// (POST /api/v1/medical-history)
	PostApiV1MedicalHistory(c *gin.Context)
	// Current profile
	// (GET /api/v1/profile)
	GetApiV1Profile(c *gin.Context)
	// Merge the given fields onto the profile
	// (PUT /api/v1/profile)
	PutApiV1Profile(c *gin.Context)
	// Flip between light and dark mode
	// (POST /api/v1/settings/display-mode/toggle)
	PostApiV1SettingsDisplayModeToggle(c *gin.Context)
	// Delete all health data recorded in this session
	// (POST /api/v1/settings/reset)
	PostApiV1SettingsReset(c *gin.Context)
	// Full health state snapshot
	// (GET /api/v1/state)
	GetApiV1State(c *gin.Context)
	// Daily log form defaults for today
	// (GET /api/v1/tracker/draft)
	GetApiV1TrackerDraft(c *gin.Context)
	// Whether a log was saved within the acknowledgement window
	// (GET /api/v1/tracker/status)
	GetApiV1TrackerStatus(c *gin.Context)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

type MiddlewareFunc func(c *gin.Context)

// run applies the handler middlewares and reports whether the chain was aborted
func (siw *ServerInterfaceWrapper) run(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

// GetApiV1Audit operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Audit(c *gin.Context) {
	var params GetApiV1AuditParams

	err := runtime.BindQueryParameter("form", true, false, "limit", c.Request.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter limit: %w", err), http.StatusBadRequest)
		return
	}

	if siw.run(c) {
		siw.Handler.GetApiV1Audit(c, params)
	}
}

// GetApiV1Dashboard operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Dashboard(c *gin.Context) {
	var params GetApiV1DashboardParams

	err := runtime.BindQueryParameter("form", true, false, "insights", c.Request.URL.Query(), &params.Insights)
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter insights: %w", err), http.StatusBadRequest)
		return
	}

	if siw.run(c) {
		siw.Handler.GetApiV1Dashboard(c, params)
	}
}

// wrap adapts a parameterless operation
func (siw *ServerInterfaceWrapper) wrap(op func(ServerInterface, *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if siw.run(c) {
			op(siw.Handler, c)
		}
	}
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			c.JSON(statusCode, ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: err.Error(),
			})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	base := options.BaseURL
	router.GET(base+"/health", wrapper.wrap(ServerInterface.GetHealth))
	router.GET(base+"/openapi.json", wrapper.wrap(ServerInterface.GetOpenapiJson))
	router.GET(base+"/api/v1/audit", wrapper.GetApiV1Audit)
	router.GET(base+"/api/v1/chat/messages", wrapper.wrap(ServerInterface.GetApiV1ChatMessages))
	router.POST(base+"/api/v1/chat/messages", wrapper.wrap(ServerInterface.PostApiV1ChatMessages))
	router.GET(base+"/api/v1/dashboard", wrapper.GetApiV1Dashboard)
	router.GET(base+"/api/v1/dashboard/report.pdf", wrapper.wrap(ServerInterface.GetApiV1DashboardReportPdf))
	router.GET(base+"/api/v1/languages", wrapper.wrap(ServerInterface.GetApiV1Languages))
	router.GET(base+"/api/v1/logs", wrapper.wrap(ServerInterface.GetApiV1Logs))
	router.POST(base+"/api/v1/logs", wrapper.wrap(ServerInterface.PostApiV1Logs))
	router.GET(base+"/api/v1/medical-history", wrapper.wrap(ServerInterface.GetApiV1MedicalHistory))
	router.POST(base+"/api/v1/medical-history", wrapper.wrap(ServerInterface.PostApiV1MedicalHistory))
	router.GET(base+"/api/v1/profile", wrapper.wrap(ServerInterface.GetApiV1Profile))
	router.PUT(base+"/api/v1/profile", wrapper.wrap(ServerInterface.PutApiV1Profile))
	router.POST(base+"/api/v1/settings/display-mode/toggle", wrapper.wrap(ServerInterface.PostApiV1SettingsDisplayModeToggle))
	router.POST(base+"/api/v1/settings/reset", wrapper.wrap(ServerInterface.PostApiV1SettingsReset))
	router.GET(base+"/api/v1/state", wrapper.wrap(ServerInterface.GetApiV1State))
	router.GET(base+"/api/v1/tracker/draft", wrapper.wrap(ServerInterface.GetApiV1TrackerDraft))
	router.GET(base+"/api/v1/tracker/status", wrapper.wrap(ServerInterface.GetApiV1TrackerStatus))
}
