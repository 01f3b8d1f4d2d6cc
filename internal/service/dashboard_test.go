package service

import (
	"context"
	"testing"

	"github.com/AbhradeepRoy/Ayush/internal/ai"
	"github.com/AbhradeepRoy/Ayush/internal/seed"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name string
		log  model.DailyLog
		want int
	}{
		{
			name: "every bonus is clamped at 100",
			log:  model.DailyLog{Steps: 9000, Sleep: 8, Water: 2.5, Mood: model.MoodHappy},
			want: 100,
		},
		{
			name: "no bonus",
			log:  model.DailyLog{Steps: 1000, Sleep: 4, Water: 0.5, Mood: model.MoodSad},
			want: 50,
		},
		{
			name: "steps threshold is exclusive",
			log:  model.DailyLog{Steps: 8000, Sleep: 0, Water: 0, Mood: model.MoodNeutral},
			want: 50,
		},
		{
			name: "sleep lower bound inclusive",
			log:  model.DailyLog{Sleep: 7, Mood: model.MoodTired},
			want: 65,
		},
		{
			name: "sleep upper bound inclusive",
			log:  model.DailyLog{Sleep: 9, Mood: model.MoodTired},
			want: 65,
		},
		{
			name: "sleep above range",
			log:  model.DailyLog{Sleep: 9.5, Mood: model.MoodTired},
			want: 50,
		},
		{
			name: "water threshold inclusive",
			log:  model.DailyLog{Water: 2, Mood: model.MoodStressed},
			want: 60,
		},
		{
			name: "seed log",
			log:  model.DailyLog{Date: "2023-10-23", Sleep: 7.5, Water: 2.5, Steps: 9500, Mood: model.MoodHappy},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HealthScore(tt.log))
		})
	}
}

func TestScoreLatest_EmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, ScoreLatest(model.HealthState{}))
}

func TestScoreLatest_UsesMostRecentLog(t *testing.T) {
	s := seed.InitialState(testEpoch).WithLog(model.DailyLog{Steps: 100, Sleep: 3, Water: 0, Mood: model.MoodSad})

	assert.Equal(t, 50, ScoreLatest(s))
}

func TestProperty_HealthScoreBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	moods := make([]any, 0, len(model.Moods))
	for _, m := range model.Moods {
		moods = append(moods, m)
	}

	properties.Property("score of any log stays within 50..100", prop.ForAll(
		func(steps int, sleep, water float64, mood model.Mood) bool {
			score := HealthScore(model.DailyLog{Steps: steps, Sleep: sleep, Water: water, Mood: mood})
			return score >= 50 && score <= 100
		},
		gen.IntRange(0, 50000),
		gen.Float64Range(0, 24),
		gen.Float64Range(0, 10),
		gen.OneConstOf(moods...),
	))

	properties.Property("happy never scores lower than the same log without happy", prop.ForAll(
		func(steps int, sleep float64) bool {
			base := model.DailyLog{Steps: steps, Sleep: sleep, Water: 1, Mood: model.MoodNeutral}
			happy := base
			happy.Mood = model.MoodHappy
			return HealthScore(happy) == HealthScore(base)+15
		},
		gen.IntRange(0, 50000),
		gen.Float64Range(0, 24),
	))

	properties.TestingRun(t)
}

func TestDashboardService_Summary_WithoutInsights(t *testing.T) {
	// Arrange
	store := newSeededStore()
	gateway := new(MockGateway)
	service := NewDashboardService(store, gateway, zap.NewNop())

	// Act
	summary := service.Summary(context.Background(), false)

	// Assert
	require.NotNil(t, summary)
	assert.Equal(t, "Health Seeker", summary.ProfileName)
	assert.Equal(t, model.DisplayModeLight, summary.DisplayMode)
	assert.Equal(t, 100, summary.HealthScore)
	require.NotNil(t, summary.LatestLog)
	assert.Equal(t, "2023-10-23", summary.LatestLog.Date)
	assert.Equal(t, 4, summary.LogCount)
	assert.Len(t, summary.Chart, 4)
	assert.Empty(t, summary.Insights)
	gateway.AssertNotCalled(t, "DailyHealthInsights", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardService_Summary_WithInsights(t *testing.T) {
	// Arrange
	store := newSeededStore()
	gateway := new(MockGateway)
	service := NewDashboardService(store, gateway, zap.NewNop())
	ctx := context.Background()

	gateway.On("DailyHealthInsights", ctx, seed.DefaultProfile(), seed.InitialDailyLogs()).
		Return("- Great sleep streak")

	// Act
	summary := service.Summary(ctx, true)

	// Assert
	assert.Equal(t, "- Great sleep streak", summary.Insights)
	gateway.AssertExpectations(t)
}

func TestDashboardService_Summary_ChartWindow(t *testing.T) {
	store := newSeededStore()
	for i := 0; i < 6; i++ {
		store.AppendLog(model.DailyLog{Date: "2023-10-24", Steps: i, Mood: model.MoodNeutral})
	}
	service := NewDashboardService(store, new(MockGateway), zap.NewNop())

	summary := service.Summary(context.Background(), false)

	assert.Equal(t, 10, summary.LogCount)
	require.Len(t, summary.Chart, ChartWindow)
	assert.Equal(t, "2023-10-23", summary.Chart[0].Date)
	assert.Equal(t, 5, summary.Chart[6].Steps)
}

func TestDashboardService_Summary_EmptyLogs(t *testing.T) {
	service := NewDashboardService(newEmptyStore(), new(MockGateway), zap.NewNop())

	summary := service.Summary(context.Background(), false)

	assert.Equal(t, 0, summary.HealthScore)
	assert.Nil(t, summary.LatestLog)
	assert.Empty(t, summary.Chart)
}

func TestDashboardService_Summary_InsightsLimited(t *testing.T) {
	// Arrange
	store := newSeededStore()
	gateway := new(MockGateway)
	service := NewDashboardService(store, gateway, zap.NewNop())
	service.LimitInsights(0.001, 2)
	ctx := context.Background()

	gateway.On("DailyHealthInsights", ctx, mock.Anything, mock.Anything).Return("- Great sleep streak")

	// Act
	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, service.Summary(ctx, true).Insights)
	}
	plain := service.Summary(ctx, false)

	// Assert
	assert.Equal(t, []string{"- Great sleep streak", "- Great sleep streak", ai.InsightsFallback, ai.InsightsFallback}, got)
	assert.Empty(t, plain.Insights)
	assert.Equal(t, 100, plain.HealthScore)
	gateway.AssertNumberOfCalls(t, "DailyHealthInsights", 2)
}

func TestDashboardService_LimitInsights_NonPositiveDisables(t *testing.T) {
	gateway := new(MockGateway)
	service := NewDashboardService(newSeededStore(), gateway, zap.NewNop())
	service.LimitInsights(0, 0)
	ctx := context.Background()

	gateway.On("DailyHealthInsights", ctx, mock.Anything, mock.Anything).Return("ok")

	for i := 0; i < 5; i++ {
		assert.Equal(t, "ok", service.Summary(ctx, true).Insights)
	}
	gateway.AssertNumberOfCalls(t, "DailyHealthInsights", 5)
}
