package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/AbhradeepRoy/Ayush/internal/config"
	"go.uber.org/zap"
)

const (
	ProviderMock   = "mock"
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderAzure  = "azure"
)

// NewGenerator builds the Generator selected by cfg.Provider
func NewGenerator(ctx context.Context, cfg config.AIConfig, logger *zap.Logger) (Generator, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderMock
	}

	var (
		gen Generator
		err error
	)
	switch provider {
	case ProviderMock:
		gen = NewMockGenerator()
	case ProviderGemini:
		gen, err = asGenerator(NewGeminiGenerator(ctx, cfg.APIKey, logger))
	case ProviderOpenAI:
		gen, err = asGenerator(NewOpenAIGenerator(cfg.APIKey, cfg.BaseURL, logger))
	case ProviderAzure:
		gen, err = asGenerator(NewAzureOpenAIGenerator(cfg.Endpoint, cfg.APIKey, cfg.APIVersion, logger))
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize %s provider: %w", provider, err)
	}

	logger.Info("AI provider initialized", zap.String("provider", provider))
	return gen, nil
}

func asGenerator[G Generator](g G, err error) (Generator, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}
