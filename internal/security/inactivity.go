package security

import (
	"sync"
	"time"
)

// InactivityTimeout is the security gate's single-shot silence window.
const InactivityTimeout = 15 * time.Second

// InactivityTimer fires OnExpire once if not reset or stopped within
// InactivityTimeout. It is restarted on every final caller transcript
// segment while the security gate is active and cancelled the moment the
// call unlocks or ends.
type InactivityTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	onFire  func()
	stopped bool
}

// NewInactivityTimer starts the timer immediately, firing onFire after
// InactivityTimeout unless Reset or Stop is called first.
func NewInactivityTimer(onFire func()) *InactivityTimer {
	t := &InactivityTimer{onFire: onFire}
	t.timer = time.AfterFunc(InactivityTimeout, t.fire)
	return t
}

func (t *InactivityTimer) fire() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	t.stopped = true
	t.mu.Unlock()
	if t.onFire != nil {
		t.onFire()
	}
}

// Reset restarts the countdown, e.g. on a final caller transcript segment.
// A no-op once the timer has been stopped or has already fired.
func (t *InactivityTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.timer.Reset(InactivityTimeout)
}

// Stop cancels the timer permanently, e.g. on unlock or call end.
func (t *InactivityTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.timer.Stop()
}
