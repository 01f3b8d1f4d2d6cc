package draft

import (
	"sync"
	"time"
)

// DefaultAckDuration is how long a save acknowledgement stays visible
const DefaultAckDuration = 3 * time.Second

// Ack is a transient success flag that clears itself after a fixed duration.
// It is cosmetic and says nothing about durability.
type Ack struct {
	mu       sync.Mutex
	duration time.Duration
	active   bool
	timer    *time.Timer
}

// NewAck creates an Ack that clears after d
func NewAck(d time.Duration) *Ack {
	if d <= 0 {
		d = DefaultAckDuration
	}
	return &Ack{duration: d}
}

// Set raises the flag and restarts the clear timer
func (a *Ack) Set() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.active = true
	if a.timer != nil {
		a.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(a.duration, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.timer == t {
			a.active = false
			a.timer = nil
		}
	})
	a.timer = t
}

// Active reports whether the flag is currently raised
func (a *Ack) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}
