package audit

import (
	"strconv"
	"sync"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/state"
	"go.uber.org/zap"
)

// DefaultCapacity is how many entries the trail keeps
const DefaultCapacity = 200

// OperationType represents the type of operation performed
type OperationType string

const (
	OperationCreate OperationType = "CREATE"
	OperationUpdate OperationType = "UPDATE"
	OperationDelete OperationType = "DELETE"
)

// ResourceType represents the part of the health state that changed
type ResourceType string

const (
	ResourceProfile     ResourceType = "profile"
	ResourceDailyLog    ResourceType = "daily_log"
	ResourceChatMessage ResourceType = "chat_message"
	ResourceSettings    ResourceType = "settings"
	ResourceSession     ResourceType = "session"
)

// AuditLog represents an audit log entry
type AuditLog struct {
	Revision       uint64         `json:"revision"`
	OperationType  OperationType  `json:"operation"`
	ResourceType   ResourceType   `json:"resource_type"`
	ResourceID     string         `json:"resource_id,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
	AdditionalData map[string]any `json:"additional_data,omitempty"`
}

// Logger records every committed state mutation. Entries live in memory for
// the session only; the oldest are dropped past the capacity.
type Logger struct {
	mu       sync.RWMutex
	entries  []AuditLog
	capacity int
	now      func() time.Time
	logger   *zap.Logger
}

// NewLogger creates a new audit logger keeping at most capacity entries
func NewLogger(capacity int, logger *zap.Logger) *Logger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Logger{
		capacity: capacity,
		now:      time.Now,
		logger:   logger,
	}
}

// Attach subscribes the logger to store mutations
func (l *Logger) Attach(store *state.Store) {
	store.Subscribe(l.Observe)
}

// Observe converts a state event into an audit entry
func (l *Logger) Observe(ev state.Event) {
	entry := AuditLog{Revision: ev.Revision}

	switch ev.Kind {
	case state.EventProfileUpdated:
		entry.OperationType = OperationUpdate
		entry.ResourceType = ResourceProfile
		entry.AdditionalData = map[string]any{"language": ev.State.Profile.Language}
	case state.EventLogAppended:
		entry.OperationType = OperationCreate
		entry.ResourceType = ResourceDailyLog
		entry.ResourceID = strconv.Itoa(len(ev.State.DailyLogs) - 1)
		if latest, ok := ev.State.LatestLog(); ok {
			entry.AdditionalData = map[string]any{"date": latest.Date}
		}
	case state.EventMessageAppended:
		entry.OperationType = OperationCreate
		entry.ResourceType = ResourceChatMessage
		if n := len(ev.State.Messages); n > 0 {
			last := ev.State.Messages[n-1]
			entry.ResourceID = last.ID
			entry.AdditionalData = map[string]any{"role": string(last.Role)}
		}
	case state.EventDisplayModeToggled:
		entry.OperationType = OperationUpdate
		entry.ResourceType = ResourceSettings
		entry.AdditionalData = map[string]any{"display_mode": string(ev.State.DisplayMode)}
	case state.EventReset:
		entry.OperationType = OperationDelete
		entry.ResourceType = ResourceSession
	default:
		l.logger.Warn("unknown state event", zap.String("kind", string(ev.Kind)))
		return
	}

	l.Log(entry)
}

// Log appends an audit log entry
func (l *Logger) Log(entry AuditLog) {
	// Set timestamp if not provided
	if entry.Timestamp.IsZero() {
		entry.Timestamp = l.now()
	}

	// Log to structured logger first
	l.logger.Info("Audit log entry",
		zap.Uint64("revision", entry.Revision),
		zap.String("operation", string(entry.OperationType)),
		zap.String("resource_type", string(entry.ResourceType)),
		zap.String("resource_id", entry.ResourceID),
		zap.Time("timestamp", entry.Timestamp),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	if over := len(l.entries) - l.capacity; over > 0 {
		l.entries = append(l.entries[:0:0], l.entries[over:]...)
	}
}

// Recent returns up to limit entries, newest first. limit <= 0 returns all.
func (l *Logger) Recent(limit int) []AuditLog {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := len(l.entries)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]AuditLog, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out
}
