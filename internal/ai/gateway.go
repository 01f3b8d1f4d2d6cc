package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
)

// DefaultModel is the model identifier used when none is configured
const DefaultModel = "gemini-3-flash-preview"

const (
	// CoachFallback is returned by CoachResponse whenever the remote call fails or comes back empty
	CoachFallback = "I'm sorry, I'm having trouble connecting to my knowledge base right now. Please check your internet connection and try again."
	// InsightsFallback is returned by DailyHealthInsights on failure
	InsightsFallback = "Keep up the consistent tracking!"
)

// Gateway turns session state into prompts and forwards them to a Generator.
// None of its methods fail: every failure degrades to a fixed fallback.
type Gateway struct {
	generator Generator
	model     string
	logger    *zap.Logger
}

// NewGateway creates a Gateway that always calls generator with modelID
func NewGateway(generator Generator, modelID string, logger *zap.Logger) *Gateway {
	if modelID == "" {
		modelID = DefaultModel
	}
	return &Gateway{
		generator: generator,
		model:     modelID,
		logger:    logger,
	}
}

// Model returns the fixed model identifier
func (g *Gateway) Model() string {
	return g.model
}

// CoachResponse answers query in the context of the profile and the last
// CoachLogWindow logs. history is accepted for context size logging only.
func (g *Gateway) CoachResponse(ctx context.Context, query string, profile model.UserProfile, recentLogs []model.DailyLog, history []model.ChatMessage) string {
	text, ok := g.generate(ctx, Request{
		Operation:         OperationCoach,
		Prompt:            CoachPrompt(query, profile, recentLogs),
		SystemInstruction: CoachSystemPrompt(profile),
	}, zap.Int("history_len", len(history)))
	if !ok {
		return CoachFallback
	}
	return text
}

// CompressMedicalHistory merges rawText into currentSummary. On failure the
// current summary comes back unchanged.
func (g *Gateway) CompressMedicalHistory(ctx context.Context, rawText, currentSummary string) string {
	text, ok := g.generate(ctx, Request{
		Operation: OperationCompress,
		Prompt:    CompressPrompt(rawText, currentSummary),
	})
	if !ok {
		return currentSummary
	}
	return strings.TrimSpace(text)
}

// DailyHealthInsights asks for three bullet insights over the last InsightsLogWindow logs
func (g *Gateway) DailyHealthInsights(ctx context.Context, profile model.UserProfile, logs []model.DailyLog) string {
	prompt, err := InsightsPrompt(profile, logs)
	if err != nil {
		g.logger.Error("failed to build insights prompt", zap.Error(err))
		return InsightsFallback
	}

	text, ok := g.generate(ctx, Request{
		Operation:         OperationInsights,
		Prompt:            prompt,
		SystemInstruction: InsightsSystemPrompt(profile),
	})
	if !ok {
		return InsightsFallback
	}
	return text
}

// generate performs one call. Empty text counts as a failure.
func (g *Gateway) generate(ctx context.Context, req Request, fields ...zap.Field) (string, bool) {
	req.Model = g.model
	start := time.Now()

	text, err := g.generator.Generate(ctx, req)

	fields = append(fields,
		zap.String("operation", string(req.Operation)),
		zap.String("model", g.model),
		zap.Duration("duration", time.Since(start)),
	)
	if errors.Is(err, context.Canceled) {
		// Superseded chat turns and departed clients land here
		g.logger.Info("text generation canceled", fields...)
		return "", false
	}
	if err != nil {
		g.logger.Error("text generation failed", append(fields, zap.Error(err))...)
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		g.logger.Error("text generation returned no text", fields...)
		return "", false
	}

	g.logger.Info("text generation completed", append(fields, zap.Int("response_len", len(text)))...)
	return text, true
}
