package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/AbhradeepRoy/Ayush/internal/draft"
	"github.com/AbhradeepRoy/Ayush/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMedicalHistoryService_Update_Success(t *testing.T) {
	// Arrange
	store := newSeededStore()
	gateway := new(MockGateway)
	service := NewMedicalHistoryService(store, gateway, zap.NewNop())
	ctx := context.Background()

	gateway.On("CompressMedicalHistory", ctx, "Vitamin D deficiency diagnosed.", "No significant medical history recorded.").
		Return("Vitamin D deficiency.")

	// Act
	update, err := service.Update(ctx, "Vitamin D deficiency diagnosed.")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Vitamin D deficiency.", update.Summary)
	assert.True(t, update.Changed)
	assert.Equal(t, "Vitamin D deficiency.", service.Summary())

	profile := store.Snapshot().Profile
	assert.Equal(t, "Health Seeker", profile.Name)
	assert.Equal(t, 30, profile.Age)
	gateway.AssertExpectations(t)
}

func TestMedicalHistoryService_Update_FailureKeepsSummary(t *testing.T) {
	store := newSeededStore()
	gateway := new(MockGateway)
	gateway.On("CompressMedicalHistory", mock.Anything, mock.Anything, mock.Anything).
		Return("No significant medical history recorded.")
	service := NewMedicalHistoryService(store, gateway, zap.NewNop())

	update, err := service.Update(context.Background(), "Blood report attached.")

	require.NoError(t, err)
	assert.False(t, update.Changed)
	assert.Equal(t, seed.DefaultProfile(), store.Snapshot().Profile)
}

func TestMedicalHistoryService_Update_RejectsBlank(t *testing.T) {
	store := newSeededStore()
	gateway := new(MockGateway)
	service := NewMedicalHistoryService(store, gateway, zap.NewNop())

	_, err := service.Update(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyHistoryText)
	assert.Equal(t, uint64(0), store.Revision())
	gateway.AssertNotCalled(t, "CompressMedicalHistory", mock.Anything, mock.Anything, mock.Anything)
}

func TestMedicalHistoryService_Update_CallerCanceled(t *testing.T) {
	store := newSeededStore()
	gateway := new(MockGateway)
	gateway.On("CompressMedicalHistory", mock.Anything, mock.Anything, mock.Anything).Return("ignored")
	service := NewMedicalHistoryService(store, gateway, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Update(ctx, "new info")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, seed.DefaultProfile().MedicalHistorySummary, service.Summary())
}

// queuedCompressor appends the new text to the summary it is given. Calls
// for "hold" wait until release is closed.
type queuedCompressor struct {
	MockGateway
	mu      sync.Mutex
	seen    []string
	entered chan string
	release chan struct{}
}

func newQueuedCompressor() *queuedCompressor {
	return &queuedCompressor{entered: make(chan string, 4), release: make(chan struct{})}
}

func (q *queuedCompressor) CompressMedicalHistory(ctx context.Context, rawText, currentSummary string) string {
	q.mu.Lock()
	q.seen = append(q.seen, currentSummary)
	q.mu.Unlock()
	q.entered <- rawText
	if strings.HasPrefix(rawText, "hold") {
		<-q.release
	}
	return currentSummary + " " + rawText
}

func TestMedicalHistoryService_Update_OverlappingUpdatesKeepBoth(t *testing.T) {
	store := newSeededStore()
	gateway := newQueuedCompressor()
	service := NewMedicalHistoryService(store, gateway, zap.NewNop())
	base := seed.DefaultProfile().MedicalHistorySummary

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := service.Update(context.Background(), "hold: asthma.")
		assert.NoError(t, err)
	}()
	require.Equal(t, "hold: asthma.", <-gateway.entered)

	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := service.Update(context.Background(), "penicillin allergy.")
		assert.NoError(t, err)
	}()

	select {
	case raw := <-gateway.entered:
		t.Fatalf("second merge %q started before the first committed", raw)
	case <-time.After(50 * time.Millisecond):
	}

	close(gateway.release)
	wg.Wait()

	assert.Equal(t, base+" hold: asthma. penicillin allergy.", service.Summary())
	assert.Equal(t, []string{base, base + " hold: asthma."}, gateway.seen)
}

func TestMedicalHistoryService_Update_WaitingCallerCanceled(t *testing.T) {
	store := newSeededStore()
	gateway := newQueuedCompressor()
	service := NewMedicalHistoryService(store, gateway, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = service.Update(context.Background(), "hold: first")
	}()
	<-gateway.entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := service.Update(ctx, "second")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	close(gateway.release)
	<-done
	assert.NotContains(t, service.Summary(), "second")
}

func TestMedicalHistoryService_Update_KeepsConcurrentProfileEdit(t *testing.T) {
	store := newSeededStore()
	gateway := newQueuedCompressor()
	medical := NewMedicalHistoryService(store, gateway, zap.NewNop())
	settings := NewSettingsService(store, zap.NewNop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = medical.Update(context.Background(), "hold: asthma.")
	}()
	<-gateway.entered

	_, err := settings.UpdateProfile(draft.ProfileDraft{Name: "Meera"})
	require.NoError(t, err)

	close(gateway.release)
	<-done

	profile := store.Snapshot().Profile
	assert.Equal(t, "Meera", profile.Name)
	assert.Contains(t, profile.MedicalHistorySummary, "asthma.")
}
