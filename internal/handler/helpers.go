package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/draft"
	"github.com/AbhradeepRoy/Ayush/pkg/api"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime/types"
)

// Helper functions for type conversions between API types and internal models

// stringPtr creates a pointer to a string
func stringPtr(s string) *string {
	return &s
}

// stringToDate converts a calendar date string to types.Date. Unparseable
// dates become the zero date.
func stringToDate(s string) types.Date {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return types.Date{}
	}
	return types.Date{Time: t}
}

func toAPILog(l model.DailyLog) api.DailyLog {
	return api.DailyLog{
		Date:     stringToDate(l.Date),
		Diet:     l.Diet,
		Mood:     string(l.Mood),
		Sleep:    l.Sleep,
		Steps:    l.Steps,
		Symptoms: l.Symptoms,
		Water:    l.Water,
	}
}

func toAPILogs(logs []model.DailyLog) []api.DailyLog {
	out := make([]api.DailyLog, 0, len(logs))
	for _, l := range logs {
		out = append(out, toAPILog(l))
	}
	return out
}

func toAPIMessage(m model.ChatMessage) api.ChatMessage {
	return api.ChatMessage{
		Id:        m.ID,
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func toAPIMessages(msgs []model.ChatMessage) []api.ChatMessage {
	out := make([]api.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toAPIMessage(m))
	}
	return out
}

func toAPIProfile(p model.UserProfile) api.UserProfile {
	return api.UserProfile{
		Age:                   p.Age,
		Gender:                string(p.Gender),
		Height:                p.Height,
		Language:              p.Language,
		Lifestyle:             string(p.Lifestyle),
		MedicalHistorySummary: p.MedicalHistorySummary,
		Name:                  p.Name,
		Weight:                p.Weight,
	}
}

func toAPIState(s model.HealthState) api.HealthState {
	return api.HealthState{
		DailyLogs:   toAPILogs(s.DailyLogs),
		DisplayMode: api.DisplayMode(s.DisplayMode),
		Messages:    toAPIMessages(s.Messages),
		Profile:     toAPIProfile(s.Profile),
	}
}

// invalidBody responds to a request body that could not be decoded
func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, api.ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: "Invalid request body",
		Details: stringPtr(err.Error()),
	})
}

// validationFailed responds with one entry per rejected form field. It
// reports false when err is not a draft validation error.
func validationFailed(c *gin.Context, err error) bool {
	var verr *draft.ValidationError
	if !errors.As(err, &verr) {
		return false
	}

	fields := make([]api.FieldError, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, api.FieldError{Code: f.Code, Field: f.Field, Message: f.Message})
	}

	c.JSON(http.StatusBadRequest, api.ErrorResponse{
		Code:    "VALIDATION_ERROR",
		Message: "Some fields are invalid",
		Details: stringPtr(err.Error()),
		Fields:  &fields,
	})
	return true
}
