package service

import (
	"context"

	"github.com/AbhradeepRoy/Ayush/internal/ai"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// ChartWindow is how many recent logs feed the activity chart
	ChartWindow = 7

	baseScore = 50
	maxScore  = 100
)

// HealthScore derives the 50..100 heuristic from a single log
func HealthScore(l model.DailyLog) int {
	score := baseScore
	if l.Steps > 8000 {
		score += 10
	}
	if l.Sleep >= 7 && l.Sleep <= 9 {
		score += 15
	}
	if l.Water >= 2 {
		score += 10
	}
	if l.Mood == model.MoodHappy {
		score += 15
	}
	return min(score, maxScore)
}

// ScoreLatest scores the most recent log, or returns 0 when there is none
func ScoreLatest(s model.HealthState) int {
	latest, ok := s.LatestLog()
	if !ok {
		return 0
	}
	return HealthScore(latest)
}

// DashboardService assembles the dashboard view from the current state
type DashboardService struct {
	store    StateStoreInterface
	gateway  GatewayInterface
	logger   *zap.Logger
	insights *rate.Limiter
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(store StateStoreInterface, gateway GatewayInterface, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		store:   store,
		gateway: gateway,
		logger:  logger,
	}
}

// LimitInsights caps how often Summary asks the provider for insights.
// Requests over the limit still get a dashboard, with the fallback insight.
// A non-positive rps leaves insights unlimited.
func (s *DashboardService) LimitInsights(rps float64, burst int) {
	if rps <= 0 {
		s.insights = nil
		return
	}
	if burst <= 0 {
		burst = max(1, int(rps))
	}
	s.insights = rate.NewLimiter(rate.Limit(rps), burst)
}

// DashboardSummary represents the dashboard view
type DashboardSummary struct {
	ProfileName string            `json:"profile_name"`
	DisplayMode model.DisplayMode `json:"display_mode"`
	HealthScore int               `json:"health_score"`
	LatestLog   *model.DailyLog   `json:"latest_log"`
	LogCount    int               `json:"log_count"`
	Chart       []model.DailyLog  `json:"chart"`
	Insights    string            `json:"insights,omitempty"`
}

// Summary builds the dashboard from one snapshot. Insights are requested
// only when withInsights is set, since they cost a remote call.
func (s *DashboardService) Summary(ctx context.Context, withInsights bool) *DashboardSummary {
	snap := s.store.Snapshot()

	summary := &DashboardSummary{
		ProfileName: snap.Profile.Name,
		DisplayMode: snap.DisplayMode,
		HealthScore: ScoreLatest(snap),
		LogCount:    len(snap.DailyLogs),
		Chart:       model.LastLogs(snap.DailyLogs, ChartWindow),
	}
	if latest, ok := snap.LatestLog(); ok {
		summary.LatestLog = &latest
	}

	if withInsights {
		if s.insights != nil && !s.insights.Allow() {
			s.logger.Warn("insights throttled, using fallback")
			summary.Insights = ai.InsightsFallback
		} else {
			summary.Insights = s.gateway.DailyHealthInsights(ctx, snap.Profile, snap.DailyLogs)
		}
	}

	s.logger.Info("dashboard summary built",
		zap.Int("health_score", summary.HealthScore),
		zap.Int("log_count", summary.LogCount),
		zap.Bool("with_insights", withInsights),
	)

	return summary
}
