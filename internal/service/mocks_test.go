package service

import (
	"context"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/seed"
	"github.com/AbhradeepRoy/Ayush/internal/state"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockGateway is a mock implementation of GatewayInterface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CoachResponse(ctx context.Context, query string, profile model.UserProfile, recentLogs []model.DailyLog, history []model.ChatMessage) string {
	args := m.Called(ctx, query, profile, recentLogs, history)
	return args.String(0)
}

func (m *MockGateway) CompressMedicalHistory(ctx context.Context, rawText, currentSummary string) string {
	args := m.Called(ctx, rawText, currentSummary)
	return args.String(0)
}

func (m *MockGateway) DailyHealthInsights(ctx context.Context, profile model.UserProfile, logs []model.DailyLog) string {
	args := m.Called(ctx, profile, logs)
	return args.String(0)
}

var testEpoch = time.Date(2023, 10, 24, 9, 0, 0, 0, time.UTC)

func newSeededStore() *state.Store {
	return state.NewStore(func() model.HealthState {
		return seed.InitialState(testEpoch)
	}, zap.NewNop())
}

func newEmptyStore() *state.Store {
	return state.NewStore(func() model.HealthState {
		return model.HealthState{Profile: seed.DefaultProfile(), DisplayMode: model.DisplayModeLight}
	}, zap.NewNop())
}
