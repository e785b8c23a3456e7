package animator

import (
	"sync"
	"time"
)

// DefaultFrameRate is the display refresh rate the timer scheduler emulates.
const DefaultFrameRate = 60

// FrameFunc runs once for a requested frame.
type FrameFunc func(now time.Time)

// CancelFunc withdraws a frame request. Calling it after the frame ran, or
// more than once, is harmless.
type CancelFunc func()

// FrameScheduler hands out one-shot "run at the next frame" requests. Callers
// that want a loop re-arm from inside the callback.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) CancelFunc
}

// TimerScheduler fires requests on a timer one frame interval in the future.
type TimerScheduler struct {
	interval time.Duration
	clock    Clock
}

// NewTimerScheduler builds a scheduler for frameRate frames per second.
// Non-positive rates fall back to DefaultFrameRate. A nil clock uses the
// system clock.
func NewTimerScheduler(frameRate int, clock Clock) *TimerScheduler {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &TimerScheduler{
		interval: time.Second / time.Duration(frameRate),
		clock:    clock,
	}
}

// Interval returns the delay between a request and its frame.
func (s *TimerScheduler) Interval() time.Duration {
	return s.interval
}

// RequestFrame arms a timer for fn.
func (s *TimerScheduler) RequestFrame(fn FrameFunc) CancelFunc {
	timer := time.AfterFunc(s.interval, func() {
		fn(s.clock.Now())
	})
	return func() {
		timer.Stop()
	}
}

// ManualScheduler queues frame requests until Fire is called. It lets tests
// and offline renderers step an animation one frame at a time.
type ManualScheduler struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]FrameFunc
	order   []uint64
}

// NewManualScheduler creates an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[uint64]FrameFunc)}
}

// RequestFrame queues fn for the next Fire.
func (s *ManualScheduler) RequestFrame(fn FrameFunc) CancelFunc {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.pending, id)
	}
}

// Pending reports how many requests are waiting.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Fire runs every request queued before the call, in request order.
// Requests made by the callbacks wait for the next Fire. It returns the
// number of callbacks run.
func (s *ManualScheduler) Fire(now time.Time) int {
	s.mu.Lock()
	order := s.order
	s.order = nil
	due := make([]FrameFunc, 0, len(order))
	for _, id := range order {
		if fn, ok := s.pending[id]; ok {
			due = append(due, fn)
			delete(s.pending, id)
		}
	}
	s.mu.Unlock()

	for _, fn := range due {
		fn(now)
	}
	return len(due)
}
