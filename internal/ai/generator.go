package ai

import "context"

// Operation names the gateway function a request was built for
type Operation string

const (
	OperationCoach    Operation = "coach"
	OperationCompress Operation = "compress_medical_history"
	OperationInsights Operation = "daily_insights"
)

// Request is a single text generation call
type Request struct {
	Model             string
	Prompt            string
	SystemInstruction string
	// Operation is local metadata for logging and the mock provider; it is not sent upstream.
	Operation Operation
}

// Generator is the remote text generation primitive shared by the gateway functions
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
