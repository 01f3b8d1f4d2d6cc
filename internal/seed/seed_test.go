package seed

import (
	"testing"
	"time"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialState(t *testing.T) {
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	s := InitialState(at)

	assert.Equal(t, DefaultProfile(), s.Profile)
	assert.Len(t, s.DailyLogs, 4)
	assert.Equal(t, model.DisplayModeLight, s.DisplayMode)
	require.Len(t, s.Messages, 1)
	assert.Equal(t, model.RoleModel, s.Messages[0].Role)
	assert.Equal(t, WelcomeText, s.Messages[0].Text)
	assert.Equal(t, at, s.Messages[0].Timestamp)
}

func TestInitialDailyLogs_ReturnsFreshSlice(t *testing.T) {
	a := InitialDailyLogs()
	a[0].Steps = 1

	assert.Equal(t, 6000, InitialDailyLogs()[0].Steps)
}

func TestDefaultProfile_UsesKnownValues(t *testing.T) {
	p := DefaultProfile()

	assert.True(t, p.Gender.Valid())
	assert.True(t, p.Lifestyle.Valid())
	assert.True(t, model.IsSupportedLanguage(p.Language))
}
