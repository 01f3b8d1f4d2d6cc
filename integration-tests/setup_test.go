package integration_tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/ai"
	"github.com/AbhradeepRoy/Ayush/internal/audit"
	"github.com/AbhradeepRoy/Ayush/internal/handler"
	"github.com/AbhradeepRoy/Ayush/internal/middleware"
	"github.com/AbhradeepRoy/Ayush/internal/pdf"
	"github.com/AbhradeepRoy/Ayush/internal/seed"
	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/AbhradeepRoy/Ayush/internal/state"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sessionStart = time.Date(2023, 10, 24, 8, 30, 0, 0, time.UTC)

// recordingGenerator wraps the offline generator and keeps every request
type recordingGenerator struct {
	mu       sync.Mutex
	requests []ai.Request
	inner    ai.Generator
}

func (g *recordingGenerator) Generate(ctx context.Context, req ai.Request) (string, error) {
	g.mu.Lock()
	g.requests = append(g.requests, req)
	g.mu.Unlock()
	return g.inner.Generate(ctx, req)
}

func (g *recordingGenerator) last(op ai.Operation) (ai.Request, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(g.requests) - 1; i >= 0; i-- {
		if g.requests[i].Operation == op {
			return g.requests[i], true
		}
	}
	return ai.Request{}, false
}

func (g *recordingGenerator) count(op ai.Operation) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, r := range g.requests {
		if r.Operation == op {
			n++
		}
	}
	return n
}

type session struct {
	router    *gin.Engine
	store     *state.Store
	generator *recordingGenerator
}

type sessionOptions struct {
	rateLimitRPS   float64
	rateLimitBurst int
}

// newSession wires the service the same way the server binary does
func newSession(t *testing.T, opts sessionOptions) *session {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	gen := &recordingGenerator{inner: ai.NewMockGenerator()}
	gateway := ai.NewGateway(gen, "gemini-3-flash-preview", logger)

	store := state.NewStore(func() model.HealthState { return seed.InitialState(sessionStart) }, logger)
	displayMode := middleware.NewDisplayMode()
	store.SetDisplayModeApplier(displayMode)

	auditLogger := audit.NewLogger(audit.DefaultCapacity, logger)
	auditLogger.Attach(store)

	dashboard := service.NewDashboardService(store, gateway, logger)
	dashboard.LimitInsights(opts.rateLimitRPS, opts.rateLimitBurst)

	swagger, err := api.GetSwagger()
	require.NoError(t, err)

	apiHandler := &handler.API{
		SystemHandler:         handler.NewSystemHandler(swagger, logger),
		StateHandler:          handler.NewStateHandler(store, logger),
		DashboardHandler:      handler.NewDashboardHandler(dashboard, service.NewReportService(store, pdf.NewPDFGenerator(logger), logger), logger),
		TrackerHandler:        handler.NewTrackerHandler(service.NewTrackerService(store, time.Minute, logger), logger),
		ChatHandler:           handler.NewChatHandler(service.NewChatService(store, gateway, logger), logger),
		MedicalHistoryHandler: handler.NewMedicalHistoryHandler(service.NewMedicalHistoryService(store, gateway, logger), logger),
		SettingsHandler:       handler.NewSettingsHandler(service.NewSettingsService(store, logger), logger),
		AuditHandler:          handler.NewAuditHandler(auditLogger, logger),
	}

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(displayMode.Middleware())
	router.Use(middleware.RequestLoggingMiddleware(logger))
	router.Use(middleware.ErrorLoggingMiddleware(logger))
	router.Use(middleware.ForRoutes(
		middleware.RateLimitMiddleware(opts.rateLimitRPS, opts.rateLimitBurst, logger),
		"POST /api/v1/chat/messages",
		"POST /api/v1/medical-history",
	))
	api.RegisterHandlers(router, apiHandler)

	return &session{router: router, store: store, generator: gen}
}

func (s *session) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.RemoteAddr = "192.0.2.10:5000"
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func getJSON[T any](t *testing.T, s *session, path string) T {
	t.Helper()
	w := s.request(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeBody[T](t, w)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
