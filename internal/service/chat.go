package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
	"go.uber.org/zap"
)

var (
	// ErrEmptyMessage is returned when a chat message has no text
	ErrEmptyMessage = errors.New("message text is empty")
	// ErrSuperseded is returned when a newer message replaced the pending coaching call
	ErrSuperseded = errors.New("coaching reply superseded by a newer message")
)

// ChatService backs the coaching conversation. At most one coaching call is
// in flight: a newer message cancels the pending call and only the latest
// reply is committed.
type ChatService struct {
	store   StateStoreInterface
	gateway GatewayInterface
	now     func() time.Time
	logger  *zap.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewChatService creates a new ChatService
func NewChatService(store StateStoreInterface, gateway GatewayInterface, logger *zap.Logger) *ChatService {
	return &ChatService{
		store:   store,
		gateway: gateway,
		now:     time.Now,
		logger:  logger,
	}
}

// History returns the conversation in insertion order
func (s *ChatService) History() []model.ChatMessage {
	return s.store.Snapshot().Messages
}

// Typing reports whether a coaching call is pending
func (s *ChatService) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}

// Send appends the user's message, awaits the coach and appends its reply.
// The coach sees the profile, logs and history as they were before the message.
func (s *ChatService) Send(ctx context.Context, text string) (model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	id := s.seq
	s.cancel = cancel
	snap := s.store.Snapshot()
	s.store.AppendMessage(model.NewChatMessage(model.RoleUser, text, s.now()))
	s.mu.Unlock()

	s.logger.Info("coaching call started",
		zap.Uint64("call_id", id),
		zap.Int("query_len", len(text)),
	)

	reply := s.gateway.CoachResponse(callCtx, text, snap.Profile, snap.DailyLogs, snap.Messages)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seq != id {
		s.logger.Info("coaching reply dropped", zap.Uint64("call_id", id), zap.Uint64("latest_call_id", s.seq))
		return model.ChatMessage{}, ErrSuperseded
	}
	s.cancel = nil

	if err := ctx.Err(); err != nil {
		s.logger.Warn("coaching call abandoned by caller", zap.Uint64("call_id", id), zap.Error(err))
		return model.ChatMessage{}, err
	}

	msg := model.NewChatMessage(model.RoleModel, reply, s.now())
	s.store.AppendMessage(msg)

	s.logger.Info("coaching reply committed", zap.Uint64("call_id", id), zap.Int("reply_len", len(reply)))
	return msg, nil
}
