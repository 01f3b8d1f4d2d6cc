package service

import (
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/draft"
	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
)

// TrackerService backs the daily log form
type TrackerService struct {
	store  StateStoreInterface
	ack    *draft.Ack
	now    func() time.Time
	logger *zap.Logger
}

// NewTrackerService creates a new TrackerService whose save acknowledgement lasts ackDuration
func NewTrackerService(store StateStoreInterface, ackDuration time.Duration, logger *zap.Logger) *TrackerService {
	return &TrackerService{
		store:  store,
		ack:    draft.NewAck(ackDuration),
		now:    time.Now,
		logger: logger,
	}
}

// Draft returns a fresh form populated with today's defaults
func (s *TrackerService) Draft() draft.LogDraft {
	return draft.NewLogDraft(s.now())
}

// Save validates d, appends it to the log history and raises the acknowledgement
func (s *TrackerService) Save(d draft.LogDraft) (model.DailyLog, error) {
	log, err := d.Commit()
	if err != nil {
		s.logger.Warn("daily log rejected", zap.Error(err))
		return model.DailyLog{}, err
	}

	s.store.AppendLog(log)
	s.ack.Set()

	s.logger.Info("daily log saved",
		zap.String("date", log.Date),
		zap.Int("steps", log.Steps),
		zap.String("mood", string(log.Mood)),
	)

	return log, nil
}

// Saved reports whether a save happened within the acknowledgement window
func (s *TrackerService) Saved() bool {
	return s.ack.Active()
}

// Logs returns the full log history in insertion order
func (s *TrackerService) Logs() []model.DailyLog {
	return s.store.Snapshot().DailyLogs
}
