// Command gateway-check exercises the configured AI provider through all
// three gateway functions and reports whether each returned real text or
// its fallback.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/ai"
	"github.com/AbhradeepRoy/Ayush/internal/config"
	"github.com/AbhradeepRoy/Ayush/internal/seed"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	generator, err := ai.NewGenerator(ctx, cfg.AI, logger)
	if err != nil {
		logger.Fatal("Failed to initialize AI provider", zap.Error(err))
	}
	gateway := ai.NewGateway(generator, cfg.AI.Model, logger)

	logger.Info("Checking gateway",
		zap.String("provider", cfg.AI.Provider),
		zap.String("model", gateway.Model()),
	)

	state := seed.InitialState(time.Now())
	failed := 0

	// Check 1: coach response
	logger.Info("=== Coach response ===")
	reply := gateway.CoachResponse(ctx, "How can I sleep better?", state.Profile, state.DailyLogs, state.Messages)
	if !report(logger, "coach", reply, reply == ai.CoachFallback) {
		failed++
	}

	// Check 2: medical history compression
	logger.Info("=== Medical history compression ===")
	current := state.Profile.MedicalHistorySummary
	summary := gateway.CompressMedicalHistory(ctx, "Diagnosed with mild asthma in 2015. Allergic to penicillin.", current)
	if !report(logger, "compress", summary, summary == current) {
		failed++
	}

	// Check 3: daily insights
	logger.Info("=== Daily insights ===")
	insights := gateway.DailyHealthInsights(ctx, state.Profile, state.DailyLogs)
	if !report(logger, "insights", insights, insights == ai.InsightsFallback) {
		failed++
	}

	if failed > 0 {
		logger.Error("Gateway check finished with fallbacks", zap.Int("failed", failed))
		os.Exit(1)
	}
	logger.Info("=== All checks passed ===")
}

func report(logger *zap.Logger, name, text string, fellBack bool) bool {
	if fellBack {
		logger.Error("Gateway returned its fallback", zap.String("check", name), zap.String("text", text))
		return false
	}
	logger.Info("Gateway returned text", zap.String("check", name), zap.String("text", text))
	return true
}
