package state

import (
	"sync"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
)

// EventKind identifies which mutation produced an Event
type EventKind string

const (
	EventProfileUpdated     EventKind = "profile_updated"
	EventLogAppended        EventKind = "log_appended"
	EventMessageAppended    EventKind = "message_appended"
	EventDisplayModeToggled EventKind = "display_mode_toggled"
	EventReset              EventKind = "reset"
)

// Event is delivered to listeners after a mutation has been committed
type Event struct {
	Kind     EventKind
	Revision uint64
	State    model.HealthState
}

// Listener observes committed mutations. Listeners run in revision order and
// must not mutate the store.
type Listener func(Event)

// DisplayModeApplier propagates the light/dark flag to the presentation layer
type DisplayModeApplier interface {
	ApplyDisplayMode(mode model.DisplayMode)
}

// Store owns the single HealthState of a session. Every mutation swaps in a
// new aggregate, so a snapshot never changes after it is taken.
type Store struct {
	mu        sync.RWMutex
	state     model.HealthState
	revision  uint64
	initial   func() model.HealthState
	listeners []Listener
	applier   DisplayModeApplier
	logger    *zap.Logger

	// dispatchMu and turn hand out delivery slots in revision order
	dispatchMu sync.Mutex
	turn       *sync.Cond
	dispatched uint64
}

// NewStore creates a Store seeded by initial. initial is called again on Reset.
func NewStore(initial func() model.HealthState, logger *zap.Logger) *Store {
	s := &Store{
		state:   initial().Clone(),
		initial: initial,
		logger:  logger,
	}
	s.turn = sync.NewCond(&s.dispatchMu)
	return s
}

// SetDisplayModeApplier registers the presentation hook and applies the current mode to it
func (s *Store) SetDisplayModeApplier(applier DisplayModeApplier) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	s.applier = applier
	mode := s.state.DisplayMode
	s.mu.Unlock()

	if applier != nil {
		applier.ApplyDisplayMode(mode)
	}
}

// Subscribe registers a listener for every subsequent mutation
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// Snapshot returns a copy of the current aggregate
func (s *Store) Snapshot() model.HealthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Revision returns the number of mutations committed so far
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// SetProfile replaces the profile wholesale. Field ranges are the caller's concern.
func (s *Store) SetProfile(p model.UserProfile) {
	s.commit(EventProfileUpdated, func(cur model.HealthState) model.HealthState {
		return cur.WithProfile(p)
	})
}

// UpdateProfile applies fn to the current profile and commits the result in
// one step, so no other mutation lands between the read and the write. An
// error from fn aborts the update and is returned as is.
func (s *Store) UpdateProfile(fn func(model.UserProfile) (model.UserProfile, error)) (model.UserProfile, error) {
	next, err := s.update(EventProfileUpdated, func(cur model.HealthState) (model.HealthState, error) {
		p, err := fn(cur.Profile)
		if err != nil {
			return model.HealthState{}, err
		}
		return cur.WithProfile(p), nil
	})
	if err != nil {
		return model.UserProfile{}, err
	}
	return next.Profile, nil
}

// AppendLog adds a log to the end of the sequence
func (s *Store) AppendLog(l model.DailyLog) {
	s.commit(EventLogAppended, func(cur model.HealthState) model.HealthState {
		return cur.WithLog(l)
	})
}

// AppendMessage adds a chat message to the end of the history
func (s *Store) AppendMessage(m model.ChatMessage) {
	s.commit(EventMessageAppended, func(cur model.HealthState) model.HealthState {
		return cur.WithMessage(m)
	})
}

// ToggleDisplayMode flips the light/dark flag and returns the new mode
func (s *Store) ToggleDisplayMode() model.DisplayMode {
	next := s.commit(EventDisplayModeToggled, func(cur model.HealthState) model.HealthState {
		return cur.WithToggledDisplayMode()
	})
	return next.DisplayMode
}

// Reset discards everything recorded in the session and returns to the seed state
func (s *Store) Reset() {
	s.commit(EventReset, func(model.HealthState) model.HealthState {
		return s.initial()
	})
}

func (s *Store) commit(kind EventKind, next func(model.HealthState) model.HealthState) model.HealthState {
	st, _ := s.update(kind, func(cur model.HealthState) (model.HealthState, error) {
		return next(cur), nil
	})
	return st
}

// update swaps in the state produced by next and then notifies the applier
// and listeners. Notifications for revision n start only after those for n-1
// have finished, so observers never see modes or events out of order.
func (s *Store) update(kind EventKind, next func(model.HealthState) (model.HealthState, error)) (model.HealthState, error) {
	s.mu.Lock()
	candidate, err := next(s.state)
	if err != nil {
		s.mu.Unlock()
		return model.HealthState{}, err
	}
	prevMode := s.state.DisplayMode
	s.state = candidate.Clone()
	s.revision++
	ev := Event{Kind: kind, Revision: s.revision, State: s.state.Clone()}
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	applier := s.applier
	s.mu.Unlock()

	s.logger.Debug("state mutation committed",
		zap.String("kind", string(kind)),
		zap.Uint64("revision", ev.Revision),
		zap.Int("log_count", len(ev.State.DailyLogs)),
		zap.Int("message_count", len(ev.State.Messages)),
	)

	s.dispatchMu.Lock()
	for s.dispatched+1 != ev.Revision {
		s.turn.Wait()
	}
	if applier != nil && ev.State.DisplayMode != prevMode {
		applier.ApplyDisplayMode(ev.State.DisplayMode)
	}
	for _, l := range listeners {
		l(ev)
	}
	s.dispatched = ev.Revision
	s.turn.Broadcast()
	s.dispatchMu.Unlock()

	return ev.State, nil
}
