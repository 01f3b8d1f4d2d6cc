package service

import (
	"github.com/AbhradeepRoy/Ayush/internal/draft"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
)

// SettingsService backs the profile form and the session-wide switches
type SettingsService struct {
	store  StateStoreInterface
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(store StateStoreInterface, logger *zap.Logger) *SettingsService {
	return &SettingsService{
		store:  store,
		logger: logger,
	}
}

// Profile returns the current profile
func (s *SettingsService) Profile() model.UserProfile {
	return s.store.Snapshot().Profile
}

// ProfileDraft returns a form populated from the current profile
func (s *SettingsService) ProfileDraft() draft.ProfileDraft {
	return draft.NewProfileDraft(s.Profile())
}

// UpdateProfile validates d, merges it onto the current profile and commits it.
// The merge reads the profile under the store lock, so a medical summary
// committed meanwhile is kept.
func (s *SettingsService) UpdateProfile(d draft.ProfileDraft) (model.UserProfile, error) {
	profile, err := s.store.UpdateProfile(d.Commit)
	if err != nil {
		s.logger.Warn("profile update rejected", zap.Error(err))
		return model.UserProfile{}, err
	}

	s.logger.Info("profile updated",
		zap.String("language", profile.Language),
		zap.String("lifestyle", string(profile.Lifestyle)),
	)

	return profile, nil
}

// ToggleDisplayMode flips light/dark and returns the new mode
func (s *SettingsService) ToggleDisplayMode() model.DisplayMode {
	mode := s.store.ToggleDisplayMode()
	s.logger.Info("display mode toggled", zap.String("display_mode", string(mode)))
	return mode
}

// Languages lists the languages the coach can answer in
func (s *SettingsService) Languages() []model.Language {
	return model.SupportedLanguages
}

// Reset deletes everything recorded during the session
func (s *SettingsService) Reset() model.HealthState {
	s.store.Reset()
	s.logger.Warn("session health data deleted")
	return s.store.Snapshot()
}
