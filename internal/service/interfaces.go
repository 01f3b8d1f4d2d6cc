package service

import (
	"context"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
)

// StateStoreInterface defines the state container operations the services rely on
type StateStoreInterface interface {
	Snapshot() model.HealthState
	SetProfile(p model.UserProfile)
	UpdateProfile(fn func(model.UserProfile) (model.UserProfile, error)) (model.UserProfile, error)
	AppendLog(l model.DailyLog)
	AppendMessage(m model.ChatMessage)
	ToggleDisplayMode() model.DisplayMode
	Reset()
}

// GatewayInterface defines the AI gateway functions the services rely on.
// Implementations never fail; they degrade to fallback text.
type GatewayInterface interface {
	CoachResponse(ctx context.Context, query string, profile model.UserProfile, recentLogs []model.DailyLog, history []model.ChatMessage) string
	CompressMedicalHistory(ctx context.Context, rawText, currentSummary string) string
	DailyHealthInsights(ctx context.Context, profile model.UserProfile, logs []model.DailyLog) string
}
