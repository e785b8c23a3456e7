// Package lighting owns the shared light state of an application session.
//
// An Engine holds the current light angle and the animator that orbits it,
// keeps the derived shadow offset in step with every angle change, and
// publishes the angle to hooks such as the global style variable mirror.
// One engine per session is intended; nothing prevents creating more.
//
// A nil *Engine is the "no engine" value. Its reads return the static
// defaults and its actions do nothing, so consumers can fall back to static
// styling without special cases.
package lighting

import (
	"sync"

	"github.com/alexisbeaulieu97/lumen/internal/animator"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/stylevars"
	"github.com/alexisbeaulieu97/lumen/pkg/shadow"
)

// Options are accepted once, at construction.
type Options struct {
	InitialAngle     float64
	InitialAnimating bool
	// InitialSpeed is clamped like any other speed, so a zero value becomes
	// animator.MinSpeed. Start from DefaultOptions.
	InitialSpeed float64
	// FrameRate is used when Scheduler is nil.
	FrameRate int
	Scheduler animator.FrameScheduler
	// Mirror receives the angle under stylevars.LightAngle when set.
	Mirror *stylevars.Store
	Logger *logger.Logger
}

// DefaultOptions returns 135°, idle, speed 1, 60 fps.
func DefaultOptions() Options {
	return Options{
		InitialAngle: shadow.DefaultLightAngle,
		InitialSpeed: animator.DefaultSpeed,
		FrameRate:    animator.DefaultFrameRate,
	}
}

// AngleHook is told about every angle change. Hooks run synchronously in
// registration order before the changing action returns. They may call any
// read method of the engine and their own unsubscribe function. They must not
// call engine actions.
type AngleHook func(angle float64)

type hookEntry struct {
	id uint64
	fn AngleHook
}

// Engine is the shared light state.
type Engine struct {
	anim *animator.Animator
	log  *logger.Logger

	mu     sync.RWMutex
	angle  float64
	offset shadow.Offset

	// dispatchMu serializes dispatch so a hook never sees angles out of
	// order. hooksMu guards the list only and is never held while a hook runs.
	dispatchMu sync.Mutex
	hooksMu    sync.Mutex
	hooks      []hookEntry
	nextHook   uint64
}

// New builds an engine from opts.
func New(opts Options) *Engine {
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = animator.NewTimerScheduler(opts.FrameRate, nil)
	}

	e := &Engine{log: opts.Logger.With("component", "lighting")}
	e.anim = animator.New(scheduler,
		animator.WithAngle(opts.InitialAngle),
		animator.WithSpeed(opts.InitialSpeed),
		animator.WithListener(e.angleChanged),
	)

	e.angle = e.anim.Angle()
	e.offset = shadow.ComputeShadowOffset(e.angle)

	if opts.Mirror != nil {
		e.OnAngleChange(MirrorTo(opts.Mirror))
	}
	if opts.InitialAnimating {
		e.anim.Start()
	}

	e.log.WithFields(map[string]any{
		"angle":     e.angle,
		"speed":     e.anim.Speed(),
		"animating": opts.InitialAnimating,
	}).Debug("lighting engine initialised")

	return e
}

// Angle returns the current light angle in [0, 360).
func (e *Engine) Angle() float64 {
	if e == nil {
		return shadow.DefaultLightAngle
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.angle
}

// IsAnimating reports whether the light is orbiting.
func (e *Engine) IsAnimating() bool {
	if e == nil {
		return false
	}
	return e.anim.IsAnimating()
}

// Speed returns the speed multiplier in [0.1, 5].
func (e *Engine) Speed() float64 {
	if e == nil {
		return animator.DefaultSpeed
	}
	return e.anim.Speed()
}

// ShadowOffset returns the shadow direction for the current angle.
func (e *Engine) ShadowOffset() shadow.Offset {
	if e == nil {
		return shadow.ComputeShadowOffset(shadow.DefaultLightAngle)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.offset
}

// Shadows returns the shadow builders bound to the current angle.
func (e *Engine) Shadows() Shadows {
	if e == nil {
		return ShadowsAt(shadow.DefaultLightAngle)
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return Shadows{angle: e.angle, offset: e.offset}
}

// SetLightAngle normalizes and stores deg.
func (e *Engine) SetLightAngle(deg float64) {
	if e == nil {
		return
	}
	e.anim.SetAngle(deg)
}

// ToggleAnimation flips the animation state.
func (e *Engine) ToggleAnimation() {
	if e == nil {
		return
	}
	running := e.anim.Toggle()
	e.log.With("animating", running).Debug("animation toggled")
}

// StartAnimation starts orbiting. It does nothing when already running.
func (e *Engine) StartAnimation() {
	if e == nil {
		return
	}
	if e.anim.Start() {
		e.log.Debug("animation started")
	}
}

// StopAnimation stops orbiting and cancels the pending frame. It does nothing
// when already idle.
func (e *Engine) StopAnimation() {
	if e == nil {
		return
	}
	if e.anim.Stop() {
		e.log.Debug("animation stopped")
	}
}

// SetAnimationSpeed stores the multiplier clamped to [0.1, 5].
func (e *Engine) SetAnimationSpeed(multiplier float64) {
	if e == nil {
		return
	}
	stored := e.anim.SetSpeed(multiplier)
	if stored != multiplier {
		e.log.WithFields(map[string]any{"requested": multiplier, "speed": stored}).Debug("animation speed clamped")
	}
}

// ResetLightAngle returns the angle to 135° and leaves animation alone.
func (e *Engine) ResetLightAngle() {
	if e == nil {
		return
	}
	e.anim.Reset()
	e.log.Debug("light angle reset")
}

// OnAngleChange registers hook, calls it once with the current angle, and
// returns a function that removes it.
func (e *Engine) OnAngleChange(hook AngleHook) (unsubscribe func()) {
	if e == nil || hook == nil {
		return func() {}
	}

	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.hooksMu.Lock()
	e.nextHook++
	id := e.nextHook
	e.hooks = append(e.hooks, hookEntry{id: id, fn: hook})
	e.hooksMu.Unlock()

	hook(e.Angle())

	return func() {
		e.hooksMu.Lock()
		defer e.hooksMu.Unlock()
		for i, h := range e.hooks {
			if h.id == id {
				e.hooks = append(e.hooks[:i:i], e.hooks[i+1:]...)
				return
			}
		}
	}
}

// Close stops the animation and drops every hook. It is safe to call more
// than once.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.StopAnimation()

	e.hooksMu.Lock()
	e.hooks = nil
	e.hooksMu.Unlock()
}

// angleChanged runs under the animator lock for every change.
func (e *Engine) angleChanged(angle float64) {
	e.mu.Lock()
	e.angle = angle
	e.offset = shadow.ComputeShadowOffset(angle)
	e.mu.Unlock()

	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()

	e.hooksMu.Lock()
	hooks := make([]hookEntry, len(e.hooks))
	copy(hooks, e.hooks)
	e.hooksMu.Unlock()

	for _, h := range hooks {
		h.fn(angle)
	}
}
