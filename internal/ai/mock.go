package ai

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// MockGenerator produces deterministic offline text. It lets the service run
// without credentials.
type MockGenerator struct{}

// NewMockGenerator creates a MockGenerator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate implements Generator
func (m *MockGenerator) Generate(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch req.Operation {
	case OperationCompress:
		newInfo := quotedLine(req.Prompt, "New information: ")
		current := quotedLine(req.Prompt, "Current summary: ")
		return strings.TrimSpace(current + " " + newInfo), nil
	case OperationInsights:
		return "- Your step count is trending in the right direction.\n" +
			"- Keep sleep between 7 and 9 hours for better recovery.\n" +
			"- Aim for at least 2 liters of water every day.", nil
	default:
		query := strings.TrimSpace(lineValue(req.Prompt, "User query: "))
		return fmt.Sprintf("Offline coach: thanks for asking about %q. Aim for 7-9 hours of sleep, "+
			"2 or more liters of water and over 8000 steps a day.\n\n"+
			"Disclaimer: I am an AI, not a healthcare professional. Please consult a doctor for diagnosis.", query), nil
	}
}

func lineValue(prompt, prefix string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if v, ok := strings.CutPrefix(line, prefix); ok {
			return v
		}
	}
	return ""
}

func quotedLine(prompt, prefix string) string {
	raw := lineValue(prompt, prefix)
	if s, err := strconv.Unquote(raw); err == nil {
		return s
	}
	return raw
}
