package model

import (
	"fmt"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState(logCount int) HealthState {
	s := HealthState{
		Profile:     UserProfile{Name: "Test", Age: 30, Language: "en"},
		DisplayMode: DisplayModeLight,
	}
	for i := 0; i < logCount; i++ {
		s.DailyLogs = append(s.DailyLogs, DailyLog{
			Date:  fmt.Sprintf("2024-01-%02d", i+1),
			Steps: i * 1000,
			Mood:  MoodNeutral,
		})
	}
	return s
}

func TestHealthState_WithLog_AppendsWithoutTouchingOriginal(t *testing.T) {
	// Arrange
	original := sampleState(3)
	log := DailyLog{Date: "2024-02-01", Sleep: 7, Water: 2, Steps: 9000, Mood: MoodHappy}

	// Act
	next := original.WithLog(log)

	// Assert
	assert.Len(t, original.DailyLogs, 3)
	require.Len(t, next.DailyLogs, 4)
	assert.Equal(t, log, next.DailyLogs[3])
	assert.Equal(t, original.DailyLogs, next.DailyLogs[:3])
}

func TestHealthState_WithLog_DuplicateDatesAccumulate(t *testing.T) {
	s := sampleState(0)
	log := DailyLog{Date: "2024-02-01", Mood: MoodSad}

	s = s.WithLog(log).WithLog(log)

	assert.Len(t, s.DailyLogs, 2)
}

func TestHealthState_WithLog_SymptomsNotShared(t *testing.T) {
	symptoms := "headache"
	s := sampleState(0).WithLog(DailyLog{Date: "2024-02-01", Symptoms: &symptoms})

	symptoms = "changed"

	require.NotNil(t, s.DailyLogs[0].Symptoms)
	assert.Equal(t, "headache", *s.DailyLogs[0].Symptoms)
}

func TestHealthState_WithMessage_PreservesOrder(t *testing.T) {
	now := time.Now()
	s := sampleState(0)

	s = s.WithMessage(NewChatMessage(RoleUser, "one", now))
	s = s.WithMessage(NewChatMessage(RoleUser, "two", now))
	s = s.WithMessage(NewChatMessage(RoleModel, "three", now))

	require.Len(t, s.Messages, 3)
	assert.Equal(t, "one", s.Messages[0].Text)
	assert.Equal(t, "two", s.Messages[1].Text)
	assert.Equal(t, RoleModel, s.Messages[2].Role)
}

func TestHealthState_WithProfile_ReplacesWholesale(t *testing.T) {
	s := sampleState(2)
	p := UserProfile{Name: "Other", Age: 41, Gender: GenderFemale, Lifestyle: LifestyleActive, Language: "hi"}

	next := s.WithProfile(p)

	assert.Equal(t, p, next.Profile)
	assert.Equal(t, "Test", s.Profile.Name)
	assert.Equal(t, s.DailyLogs, next.DailyLogs)
}

func TestHealthState_Clone_IsolatedFromAppends(t *testing.T) {
	s := sampleState(2)
	clone := s.Clone()

	_ = append(clone.DailyLogs, DailyLog{Date: "2030-01-01"})
	clone.DailyLogs[0].Steps = 123456

	assert.Equal(t, 0, s.DailyLogs[0].Steps)
}

func TestDisplayMode_Toggle(t *testing.T) {
	assert.Equal(t, DisplayModeDark, DisplayModeLight.Toggle())
	assert.Equal(t, DisplayModeLight, DisplayModeDark.Toggle())
	assert.Equal(t, DisplayModeLight, DisplayModeLight.Toggle().Toggle())
	assert.Equal(t, DisplayModeDark, DisplayMode("").Toggle())
}

func TestHealthState_LatestLog(t *testing.T) {
	_, ok := sampleState(0).LatestLog()
	assert.False(t, ok)

	latest, ok := sampleState(3).LatestLog()
	assert.True(t, ok)
	assert.Equal(t, "2024-01-03", latest.Date)
}

func TestLastLogs(t *testing.T) {
	tests := []struct {
		name      string
		count     int
		n         int
		wantLen   int
		wantFirst string
	}{
		{name: "fewer than window", count: 4, n: 5, wantLen: 4, wantFirst: "2024-01-01"},
		{name: "exactly window", count: 5, n: 5, wantLen: 5, wantFirst: "2024-01-01"},
		{name: "more than window", count: 9, n: 7, wantLen: 7, wantFirst: "2024-01-03"},
		{name: "empty", count: 0, n: 7, wantLen: 0},
		{name: "zero window", count: 3, n: 0, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LastLogs(sampleState(tt.count).DailyLogs, tt.n)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0].Date)
			}
		})
	}
}

func TestNewChatMessage_UniqueIDs(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		m := NewChatMessage(RoleUser, "hi", now)
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestLanguages(t *testing.T) {
	assert.Len(t, SupportedLanguages, 11)
	assert.True(t, IsSupportedLanguage("ta"))
	assert.False(t, IsSupportedLanguage("fr"))
	assert.Equal(t, "English", LanguageName("en"))
	assert.Equal(t, "xx", LanguageName("xx"))
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, LifestyleVeryActive.Valid())
	assert.False(t, Lifestyle("VeryActive").Valid())
	assert.True(t, MoodTired.Valid())
	assert.False(t, Mood("Angry").Valid())
	assert.True(t, GenderOther.Valid())
	assert.False(t, Gender("").Valid())
}

func TestProperty_AppendOnlyLogs(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("appending grows the sequence by one and keeps prior entries", prop.ForAll(
		func(existing int, steps int, sleep float64) bool {
			before := sampleState(existing)
			after := before.WithLog(DailyLog{Date: "2025-05-05", Steps: steps, Sleep: sleep, Mood: MoodHappy})

			if len(after.DailyLogs) != len(before.DailyLogs)+1 {
				return false
			}
			for i := range before.DailyLogs {
				if before.DailyLogs[i] != after.DailyLogs[i] {
					return false
				}
			}
			last := after.DailyLogs[len(after.DailyLogs)-1]
			return last.Steps == steps && last.Sleep == sleep
		},
		gen.IntRange(0, 30),
		gen.IntRange(0, 50000),
		gen.Float64Range(0, 24),
	))

	properties.Property("double toggle is identity", prop.ForAll(
		func(dark bool) bool {
			s := sampleState(1)
			if dark {
				s.DisplayMode = DisplayModeDark
			}
			return s.WithToggledDisplayMode().WithToggledDisplayMode().DisplayMode == s.DisplayMode
		},
		gen.Bool(),
	))

	properties.Property("window never exceeds n and ends with the latest log", prop.ForAll(
		func(count int, n int) bool {
			logs := sampleState(count).DailyLogs
			window := LastLogs(logs, n)
			want := min(count, n)
			if len(window) != want {
				return false
			}
			if want == 0 {
				return true
			}
			return window[len(window)-1] == logs[len(logs)-1]
		},
		gen.IntRange(0, 20),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}
