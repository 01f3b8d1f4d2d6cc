package model

import (
	"time"

	"github.com/google/uuid"
)

// Gender represents the self-reported gender of the user
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Lifestyle represents the user's general activity level
type Lifestyle string

const (
	LifestyleSedentary  Lifestyle = "Sedentary"
	LifestyleLight      Lifestyle = "Light"
	LifestyleModerate   Lifestyle = "Moderate"
	LifestyleActive     Lifestyle = "Active"
	LifestyleVeryActive Lifestyle = "Very Active"
)

// Lifestyles lists the activity levels in the order they are offered to the user
var Lifestyles = []Lifestyle{
	LifestyleSedentary,
	LifestyleLight,
	LifestyleModerate,
	LifestyleActive,
	LifestyleVeryActive,
}

// Mood represents how the user felt on a logged day
type Mood string

const (
	MoodHappy    Mood = "Happy"
	MoodNeutral  Mood = "Neutral"
	MoodSad      Mood = "Sad"
	MoodStressed Mood = "Stressed"
	MoodTired    Mood = "Tired"
)

// Moods lists every accepted mood
var Moods = []Mood{MoodHappy, MoodNeutral, MoodSad, MoodStressed, MoodTired}

// Role represents the author of a chat message
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// DisplayMode is the light/dark presentation flag
type DisplayMode string

const (
	DisplayModeLight DisplayMode = "light"
	DisplayModeDark  DisplayMode = "dark"
)

// DateLayout is the ISO 8601 calendar date layout used by DailyLog.Date
const DateLayout = "2006-01-02"

// UserProfile holds the single profile of the session
type UserProfile struct {
	Name                  string    `json:"name"`
	Age                   int       `json:"age"`
	Gender                Gender    `json:"gender"`
	Height                float64   `json:"height"` // cm
	Weight                float64   `json:"weight"` // kg
	Lifestyle             Lifestyle `json:"lifestyle"`
	Language              string    `json:"language"`
	MedicalHistorySummary string    `json:"medical_history_summary"`
}

// DailyLog is one day of tracked wellness metrics.
// Several logs may share a date; they simply accumulate.
type DailyLog struct {
	Date     string  `json:"date"`
	Sleep    float64 `json:"sleep"` // hours
	Water    float64 `json:"water"` // liters
	Steps    int     `json:"steps"`
	Mood     Mood    `json:"mood"`
	Diet     string  `json:"diet"`
	Symptoms *string `json:"symptoms,omitempty"`
}

// ChatMessage is one entry of the coaching conversation
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// NewChatMessage creates a message whose ID is a time-ordered UUID derived from the clock
func NewChatMessage(role Role, text string, at time.Time) ChatMessage {
	return ChatMessage{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Role:      role,
		Text:      text,
		Timestamp: at,
	}
}

// HealthState is the aggregate root of a session
type HealthState struct {
	Profile     UserProfile   `json:"profile"`
	DailyLogs   []DailyLog    `json:"daily_logs"`
	Messages    []ChatMessage `json:"messages"`
	DisplayMode DisplayMode   `json:"display_mode"`
}
