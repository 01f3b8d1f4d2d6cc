// Package api holds the HTTP contract: wire types, the server interface and
// the embedded OpenAPI description they are derived from.
package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Defines values for DisplayMode.
const (
	DisplayModeDark  DisplayMode = "dark"
	DisplayModeLight DisplayMode = "light"
)

// DisplayMode defines model for DisplayMode.
type DisplayMode string

// HealthStatus defines model for HealthStatus.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// UserProfile defines model for UserProfile.
type UserProfile struct {
	Age                   int     `json:"age"`
	Gender                string  `json:"gender"`
	Height                float64 `json:"height"`
	Language              string  `json:"language"`
	Lifestyle             string  `json:"lifestyle"`
	MedicalHistorySummary string  `json:"medical_history_summary"`
	Name                  string  `json:"name"`
	Weight                float64 `json:"weight"`
}

// DailyLog defines model for DailyLog.
type DailyLog struct {
	Date     types.Date `json:"date"`
	Diet     string     `json:"diet"`
	Mood     string     `json:"mood"`
	Sleep    float64    `json:"sleep"`
	Steps    int        `json:"steps"`
	Symptoms *string    `json:"symptoms,omitempty"`
	Water    float64    `json:"water"`
}

// ChatMessage defines model for ChatMessage.
type ChatMessage struct {
	Id        string    `json:"id"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthState defines model for HealthState.
type HealthState struct {
	DailyLogs   []DailyLog    `json:"daily_logs"`
	DisplayMode DisplayMode   `json:"display_mode"`
	Messages    []ChatMessage `json:"messages"`
	Profile     UserProfile   `json:"profile"`
}

// DashboardSummary defines model for DashboardSummary.
type DashboardSummary struct {
	Chart       []DailyLog  `json:"chart"`
	DisplayMode DisplayMode `json:"display_mode"`
	HealthScore int         `json:"health_score"`
	Insights    *string     `json:"insights,omitempty"`
	LatestLog   *DailyLog   `json:"latest_log"`
	LogCount    int         `json:"log_count"`
	ProfileName string      `json:"profile_name"`
}

// TrackerStatus defines model for TrackerStatus.
type TrackerStatus struct {
	LogCount int  `json:"log_count"`
	Saved    bool `json:"saved"`
}

// ChatHistory defines model for ChatHistory.
type ChatHistory struct {
	Messages []ChatMessage `json:"messages"`
	Typing   bool          `json:"typing"`
}

// SendMessageRequest defines model for SendMessageRequest.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// MedicalHistory defines model for MedicalHistory.
type MedicalHistory struct {
	Summary string `json:"summary"`
}

// MedicalHistoryUpdateRequest defines model for MedicalHistoryUpdateRequest.
type MedicalHistoryUpdateRequest struct {
	Text string `json:"text"`
}

// MedicalHistoryUpdate defines model for MedicalHistoryUpdate.
type MedicalHistoryUpdate struct {
	Changed bool   `json:"changed"`
	Summary string `json:"summary"`
}

// Language defines model for Language.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DisplayModeResponse defines model for DisplayModeResponse.
type DisplayModeResponse struct {
	DisplayMode DisplayMode `json:"display_mode"`
}

// AuditEntry defines model for AuditEntry.
type AuditEntry struct {
	AdditionalData *map[string]interface{} `json:"additional_data,omitempty"`
	Operation      string                  `json:"operation"`
	ResourceId     *string                 `json:"resource_id,omitempty"`
	ResourceType   string                  `json:"resource_type"`
	Revision       uint64                  `json:"revision"`
	Timestamp      time.Time               `json:"timestamp"`
}

// FieldError defines model for FieldError.
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Code    string        `json:"code"`
	Details *string       `json:"details,omitempty"`
	Fields  *[]FieldError `json:"fields,omitempty"`
	Message string        `json:"message"`
}

// GetApiV1DashboardParams defines parameters for GetApiV1Dashboard.
type GetApiV1DashboardParams struct {
	// Insights Request AI insights over the last five logs (default true)
	Insights *bool `form:"insights,omitempty" json:"insights,omitempty"`
}

// GetApiV1AuditParams defines parameters for GetApiV1Audit.
type GetApiV1AuditParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}
