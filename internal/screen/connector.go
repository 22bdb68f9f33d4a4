package screen

import (
	"sync"
	"time"
)

// ConnectScheduler runs the connecting→active flip after a delay. Cancel
// must stop a pending fire; a fire that already raced past Cancel is
// harmless because the machine checks call identity.
type ConnectScheduler interface {
	Schedule(delay time.Duration, fire func())
	Cancel()
}

// TimerScheduler is the production scheduler, one cancellable timer at a
// time.
type TimerScheduler struct {
	mu    sync.Mutex
	timer *time.Timer
}

// NewTimerScheduler builds an empty scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule arms the timer, replacing any pending one.
func (s *TimerScheduler) Schedule(delay time.Duration, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(delay, fire)
}

// Cancel stops the pending timer if one is armed.
func (s *TimerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
