// Package animator orbits the light angle continuously over time.
//
// The Animator is a two-state machine (idle, running). While running it asks
// its FrameScheduler for a frame, advances the angle by an amount proportional
// to the elapsed time, and asks again. Rotation is measured against a 60 Hz
// reference frame so the angular velocity does not depend on the real tick
// rate.
package animator

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alexisbeaulieu97/lumen/pkg/shadow"
)

// Speed multiplier bounds and default.
const (
	MinSpeed     = 0.1
	MaxSpeed     = 5.0
	DefaultSpeed = 1.0
)

// BaseSpeed is the rotation in degrees per reference frame at speed 1.
const BaseSpeed = 0.5

// ReferenceFrame is the duration of one 60 Hz frame.
const ReferenceFrame = time.Second / 60

const referenceFrameMs = 1000.0 / 60.0

// Listener observes every change of the angle. It runs synchronously while
// the animator is locked. It may call Angle, Speed and IsAnimating, which do
// not take the lock, and must not call any other method.
type Listener func(angle float64)

// State is a snapshot of the animator.
type State struct {
	Angle     float64
	Animating bool
	Speed     float64
	// LastTick is zero until the first frame of a run.
	LastTick time.Time
}

// Option configures an Animator at construction.
type Option func(*Animator)

// WithAngle sets the starting angle. The value is normalized.
func WithAngle(deg float64) Option {
	return func(a *Animator) {
		a.angle.Store(shadow.NormalizeAngle(deg))
	}
}

// WithSpeed sets the starting speed multiplier. The value is clamped.
func WithSpeed(multiplier float64) Option {
	return func(a *Animator) {
		a.speed.Store(ClampSpeed(multiplier))
	}
}

// WithListener registers the angle change listener.
func WithListener(fn Listener) Option {
	return func(a *Animator) {
		a.listener = fn
	}
}

// Animator advances the light angle while running. All methods are safe for
// concurrent use. Writes are serialized by mu; angle, speed and running are
// also readable without it.
type Animator struct {
	mu        sync.Mutex
	scheduler FrameScheduler
	listener  Listener

	angle    atomicFloat
	speed    atomicFloat
	running  atomic.Bool
	lastTick time.Time

	// generation invalidates frames requested by an earlier run.
	generation uint64
	cancel     CancelFunc
}

// New creates an idle animator at the default angle and speed. A nil
// scheduler uses a 60 fps TimerScheduler. The scheduler must never invoke a
// callback from inside RequestFrame.
func New(scheduler FrameScheduler, opts ...Option) *Animator {
	if scheduler == nil {
		scheduler = NewTimerScheduler(DefaultFrameRate, nil)
	}
	a := &Animator{scheduler: scheduler}
	a.angle.Store(shadow.DefaultLightAngle)
	a.speed.Store(DefaultSpeed)
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ClampSpeed limits a multiplier to [MinSpeed, MaxSpeed].
func ClampSpeed(multiplier float64) float64 {
	if multiplier < MinSpeed {
		return MinSpeed
	}
	if multiplier > MaxSpeed {
		return MaxSpeed
	}
	return multiplier
}

// Rotation returns the degrees travelled during delta at the given speed.
func Rotation(delta time.Duration, speed float64) float64 {
	ms := float64(delta) / float64(time.Millisecond)
	return BaseSpeed * speed * ms / referenceFrameMs
}

// Angle returns the current angle in [0, 360).
func (a *Animator) Angle() float64 {
	return a.angle.Load()
}

// Speed returns the current speed multiplier.
func (a *Animator) Speed() float64 {
	return a.speed.Load()
}

// IsAnimating reports whether the animator is running.
func (a *Animator) IsAnimating() bool {
	return a.running.Load()
}

// State returns a consistent snapshot of all fields. It takes the lock, so
// listeners must not call it.
func (a *Animator) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return State{
		Angle:     a.angle.Load(),
		Animating: a.running.Load(),
		Speed:     a.speed.Load(),
		LastTick:  a.lastTick,
	}
}

// Start enters the running state. It reports false when already running.
func (a *Animator) Start() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.startLocked()
}

// Stop leaves the running state and withdraws the pending frame. It reports
// false when already idle.
func (a *Animator) Stop() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stopLocked()
}

// Toggle flips between running and idle and returns the new running state.
func (a *Animator) Toggle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running.Load() {
		a.stopLocked()
	} else {
		a.startLocked()
	}
	return a.running.Load()
}

// SetSpeed stores the clamped multiplier and returns it. The running state is
// unchanged.
func (a *Animator) SetSpeed(multiplier float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	speed := ClampSpeed(multiplier)
	a.speed.Store(speed)
	return speed
}

// SetAngle stores the normalized angle and returns it. A running animation
// continues from the new value on its next frame.
func (a *Animator) SetAngle(deg float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setAngleLocked(deg)
	return a.angle.Load()
}

// Reset moves the angle back to the default without touching the running
// state.
func (a *Animator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.setAngleLocked(shadow.DefaultLightAngle)
}

func (a *Animator) startLocked() bool {
	if a.running.Load() {
		return false
	}
	a.running.Store(true)
	a.lastTick = time.Time{}
	a.generation++
	a.requestLocked(a.generation)
	return true
}

func (a *Animator) stopLocked() bool {
	if !a.running.Load() {
		return false
	}
	a.running.Store(false)
	a.generation++
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	return true
}

func (a *Animator) requestLocked(generation uint64) {
	a.cancel = a.scheduler.RequestFrame(func(now time.Time) {
		a.tick(generation, now)
	})
}

func (a *Animator) tick(generation uint64, now time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running.Load() || generation != a.generation {
		return
	}

	var delta time.Duration
	if !a.lastTick.IsZero() {
		delta = now.Sub(a.lastTick)
	}
	a.lastTick = now

	if delta > 0 {
		a.setAngleLocked(a.angle.Load() + Rotation(delta, a.speed.Load()))
	}
	a.requestLocked(generation)
}

func (a *Animator) setAngleLocked(deg float64) {
	angle := shadow.NormalizeAngle(deg)
	a.angle.Store(angle)
	if a.listener != nil {
		a.listener(angle)
	}
}

// atomicFloat is a float64 that can be loaded and stored atomically.
type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *atomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}
