// Package seed holds the values a fresh session starts from.
package seed

import (
	"time"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
)

// WelcomeText is the coach's opening message
const WelcomeText = "Hello! I am your personal health coach. How can I help you today?"

// DefaultProfile returns the profile every session starts with
func DefaultProfile() model.UserProfile {
	return model.UserProfile{
		Name:                  "Health Seeker",
		Age:                   30,
		Gender:                model.GenderMale,
		Height:                170,
		Weight:                70,
		Lifestyle:             model.LifestyleModerate,
		Language:              "en",
		MedicalHistorySummary: "No significant medical history recorded.",
	}
}

// InitialDailyLogs returns the sample logs shown before the user records anything
func InitialDailyLogs() []model.DailyLog {
	return []model.DailyLog{
		{Date: "2023-10-20", Sleep: 7, Water: 2, Steps: 6000, Mood: model.MoodHappy, Diet: "Balanced"},
		{Date: "2023-10-21", Sleep: 6, Water: 1.5, Steps: 8000, Mood: model.MoodNeutral, Diet: "High Protein"},
		{Date: "2023-10-22", Sleep: 8, Water: 3, Steps: 12000, Mood: model.MoodStressed, Diet: "Keto"},
		{Date: "2023-10-23", Sleep: 7.5, Water: 2.5, Steps: 9500, Mood: model.MoodHappy, Diet: "Balanced"},
	}
}

// WelcomeMessage returns the coach greeting stamped at the given time
func WelcomeMessage(at time.Time) model.ChatMessage {
	return model.NewChatMessage(model.RoleModel, WelcomeText, at)
}

// InitialState builds the aggregate a session is created with
func InitialState(at time.Time) model.HealthState {
	return model.HealthState{
		Profile:     DefaultProfile(),
		DailyLogs:   InitialDailyLogs(),
		Messages:    []model.ChatMessage{WelcomeMessage(at)},
		DisplayMode: model.DisplayModeLight,
	}
}
