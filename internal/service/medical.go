package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
)

// ErrEmptyHistoryText is returned when no new medical information is supplied
var ErrEmptyHistoryText = errors.New("medical history text is empty")

// MedicalHistoryService maintains the compressed medical summary on the profile
type MedicalHistoryService struct {
	store   StateStoreInterface
	gateway GatewayInterface
	logger  *zap.Logger
	// slot admits one merge at a time so each one builds on the last
	slot chan struct{}
}

// NewMedicalHistoryService creates a new MedicalHistoryService
func NewMedicalHistoryService(store StateStoreInterface, gateway GatewayInterface, logger *zap.Logger) *MedicalHistoryService {
	return &MedicalHistoryService{
		store:   store,
		gateway: gateway,
		logger:  logger,
		slot:    make(chan struct{}, 1),
	}
}

// Summary returns the current medical history summary
func (s *MedicalHistoryService) Summary() string {
	return s.store.Snapshot().Profile.MedicalHistorySummary
}

// HistoryUpdate is the outcome of merging new information into the summary
type HistoryUpdate struct {
	Summary string `json:"summary"`
	Changed bool   `json:"changed"`
}

// Update merges rawText into the summary and commits the profile.
// Overlapping updates run one after another, each merging onto the summary
// the previous one committed. When the merge fails the summary stays as it was.
func (s *MedicalHistoryService) Update(ctx context.Context, rawText string) (*HistoryUpdate, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, ErrEmptyHistoryText
	}

	select {
	case s.slot <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-s.slot }()

	current := s.store.Snapshot().Profile.MedicalHistorySummary
	merged := s.gateway.CompressMedicalHistory(ctx, rawText, current)
	if err := ctx.Err(); err != nil {
		s.logger.Warn("medical history update abandoned by caller", zap.Error(err))
		return nil, err
	}

	if _, err := s.store.UpdateProfile(func(p model.UserProfile) (model.UserProfile, error) {
		p.MedicalHistorySummary = merged
		return p, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to commit medical history: %w", err)
	}

	changed := merged != current
	s.logger.Info("medical history updated",
		zap.Int("input_len", len(rawText)),
		zap.Int("summary_len", len(merged)),
		zap.Bool("changed", changed),
	)

	return &HistoryUpdate{Summary: merged, Changed: changed}, nil
}
