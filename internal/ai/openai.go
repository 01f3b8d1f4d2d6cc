package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/azure"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

// DefaultAzureAPIVersion is used when no Azure API version is configured
const DefaultAzureAPIVersion = "2024-08-01-preview"

// OpenAIGenerator sends requests through the OpenAI chat completions API,
// either directly or through an Azure OpenAI deployment
type OpenAIGenerator struct {
	client *openai.Client
	logger *zap.Logger
}

// NewOpenAIGenerator creates a generator for api.openai.com or a compatible baseURL
func NewOpenAIGenerator(apiKey, baseURL string, logger *zap.Logger) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)

	return &OpenAIGenerator{client: &client, logger: logger}, nil
}

// NewAzureOpenAIGenerator creates a generator for an Azure OpenAI resource.
// The request model is used as the deployment name.
func NewAzureOpenAIGenerator(endpoint, apiKey, apiVersion string, logger *zap.Logger) (*OpenAIGenerator, error) {
	if endpoint == "" || apiKey == "" {
		return nil, fmt.Errorf("endpoint and apiKey are required")
	}
	if apiVersion == "" {
		apiVersion = DefaultAzureAPIVersion
	}

	client := openai.NewClient(
		azure.WithEndpoint(endpoint, apiVersion),
		azure.WithAPIKey(apiKey),
	)

	return &OpenAIGenerator{client: &client, logger: logger}, nil
}

// Generate performs a single chat completion request
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (string, error) {
	requestStart := time.Now()

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.SystemMessage(req.SystemInstruction))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	g.logger.Debug("OpenAI token usage",
		zap.String("operation", string(req.Operation)),
		zap.Int64("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int64("completion_tokens", resp.Usage.CompletionTokens),
		zap.Int64("total_tokens", resp.Usage.TotalTokens),
		zap.Duration("request_time", time.Since(requestStart)),
	)

	return resp.Choices[0].Message.Content, nil
}
