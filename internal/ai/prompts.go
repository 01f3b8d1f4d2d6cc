package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
)

const (
	// CoachLogWindow is how many recent logs the coach sees
	CoachLogWindow = 7
	// InsightsLogWindow is how many recent logs the insights are computed over
	InsightsLogWindow = 5
)

const coachSystemTemplate = `You are AyushAI, a personal health coach focused on lifestyle, nutrition, physical activity and stress management.

Guidelines:
1. Use the compressed medical profile below so the user never has to repeat past conditions.
2. Be concise and summarise where you can.
3. You coach wellness only. You do not diagnose.
4. End any medical-related advice with: "Disclaimer: I am an AI, not a healthcare professional. Please consult a doctor for diagnosis."
5. Respect Indian dietary habits and cultural context where relevant.
6. Answer strictly in the language the user asks for.

User profile:
Age: %d, Gender: %s, Lifestyle: %s
Medical profile: %s`

// CoachSystemPrompt embeds the profile into the coach's system instruction
func CoachSystemPrompt(p model.UserProfile) string {
	return fmt.Sprintf(coachSystemTemplate, p.Age, p.Gender, p.Lifestyle, p.MedicalHistorySummary)
}

// CoachPrompt builds the user turn from the query and the last CoachLogWindow logs
func CoachPrompt(query string, p model.UserProfile, logs []model.DailyLog) string {
	window := model.LastLogs(logs, CoachLogWindow)
	lines := make([]string, 0, len(window))
	for _, l := range window {
		lines = append(lines, fmt.Sprintf("Date: %s, Steps: %d, Sleep: %shrs, Water: %sL, Mood: %s",
			l.Date, l.Steps, num(l.Sleep), num(l.Water), l.Mood))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", p.Language)
	b.WriteString("Recent daily data:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "User query: %s\n", query)
	return b.String()
}

// CompressPrompt asks for rawText to be folded into the current summary
func CompressPrompt(rawText, currentSummary string) string {
	var b strings.Builder
	b.WriteString("Integrate the new medical report or information into the existing health profile summary.\n")
	fmt.Fprintf(&b, "New information: %q\n", rawText)
	fmt.Fprintf(&b, "Current summary: %q\n\n", currentSummary)
	b.WriteString("Task: produce one unified, concise medical profile summary under 200 words. ")
	b.WriteString("Focus on chronic conditions, allergies, past major surgeries and recent lab values.")
	return b.String()
}

// InsightsSystemPrompt is the system instruction for the insights call
func InsightsSystemPrompt(p model.UserProfile) string {
	return "You are a data-driven health coach. User language: " + p.Language
}

// InsightsPrompt asks for three bullet insights over the last InsightsLogWindow logs
func InsightsPrompt(p model.UserProfile, logs []model.DailyLog) (string, error) {
	encoded, err := json.Marshal(model.LastLogs(logs, InsightsLogWindow))
	if err != nil {
		return "", fmt.Errorf("failed to encode logs: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the following health logs from the last few days and give 3 key bullet-point insights (in %s).\n", p.Language)
	b.WriteString("Keep it actionable and positive.\n")
	fmt.Fprintf(&b, "Logs: %s", encoded)
	return b.String(), nil
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
