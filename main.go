package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/ai"
	"github.com/AbhradeepRoy/Ayush/internal/audit"
	"github.com/AbhradeepRoy/Ayush/internal/config"
	"github.com/AbhradeepRoy/Ayush/internal/handler"
	"github.com/AbhradeepRoy/Ayush/internal/middleware"
	"github.com/AbhradeepRoy/Ayush/internal/pdf"
	"github.com/AbhradeepRoy/Ayush/internal/seed"
	"github.com/AbhradeepRoy/Ayush/internal/service"
	"github.com/AbhradeepRoy/Ayush/internal/state"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	cfg    *config.Config
)

func main() {
	// Load configuration
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize Zap logger
	logger, err = newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded successfully",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("ai_provider", cfg.AI.Provider),
		zap.String("ai_model", cfg.AI.Model),
	)

	// Initialize the text generation provider
	generator, err := ai.NewGenerator(context.Background(), cfg.AI, logger)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}
	gateway := ai.NewGateway(generator, cfg.AI.Model, logger)

	// Session state, seeded at startup and discarded on exit
	store := state.NewStore(func() model.HealthState {
		return seed.InitialState(time.Now())
	}, logger)

	displayMode := middleware.NewDisplayMode()
	store.SetDisplayModeApplier(displayMode)

	auditLogger := audit.NewLogger(audit.DefaultCapacity, logger)
	auditLogger.Attach(store)

	// Initialize services
	dashboardService := service.NewDashboardService(store, gateway, logger)
	dashboardService.LimitInsights(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst)
	reportService := service.NewReportService(store, pdf.NewPDFGenerator(logger), logger)
	trackerService := service.NewTrackerService(store, cfg.Tracker.AckDuration, logger)
	chatService := service.NewChatService(store, gateway, logger)
	medicalService := service.NewMedicalHistoryService(store, gateway, logger)
	settingsService := service.NewSettingsService(store, logger)

	swagger, err := api.GetSwagger()
	if err != nil {
		logger.Fatal("Failed to load API description", zap.Error(err))
	}

	// Create a unified handler that implements the ServerInterface
	apiHandler := &handler.API{
		SystemHandler:         handler.NewSystemHandler(swagger, logger),
		StateHandler:          handler.NewStateHandler(store, logger),
		DashboardHandler:      handler.NewDashboardHandler(dashboardService, reportService, logger),
		TrackerHandler:        handler.NewTrackerHandler(trackerService, logger),
		ChatHandler:           handler.NewChatHandler(chatService, logger),
		MedicalHistoryHandler: handler.NewMedicalHistoryHandler(medicalService, logger),
		SettingsHandler:       handler.NewSettingsHandler(settingsService, logger),
		AuditHandler:          handler.NewAuditHandler(auditLogger, logger),
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))

	// Add CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID", middleware.DisplayModeHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Add request ID middleware
	r.Use(middleware.RequestIDMiddleware())

	// Stamp the current light/dark mode on every response
	r.Use(displayMode.Middleware())

	// Add request logging middleware
	r.Use(middleware.RequestLoggingMiddleware(logger))

	// Add error logging middleware
	r.Use(middleware.ErrorLoggingMiddleware(logger))

	// Throttle the routes that always call the AI provider; dashboard insights
	// are limited inside the dashboard service
	r.Use(middleware.ForRoutes(
		middleware.RateLimitMiddleware(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst, logger),
		"POST /api/v1/chat/messages",
		"POST /api/v1/medical-history",
	))

	// Register API handlers
	api.RegisterHandlers(r, apiHandler)

	// Start server with graceful shutdown
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newLogger builds the production or development zap logger and applies
// the configured level and encoding
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.Logging.Format != "" {
		zapCfg.Encoding = cfg.Logging.Format
	}

	return zapCfg.Build()
}
