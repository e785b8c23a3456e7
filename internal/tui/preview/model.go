// Package preview renders a live terminal view of the lighting engine.
package preview

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/lighting"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
)

// Step sizes for the interactive controls.
const (
	AngleStep = 5.0
	SpeedStep = 0.25
)

// DefaultRefresh is how often the view is redrawn.
const DefaultRefresh = time.Second / 30

// frameMsg asks the model to redraw from the engine's current state.
type frameMsg time.Time

// ConfigReloadedMsg carries a freshly reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Model is the Bubble Tea state of the preview. The engine is shared and
// animates on its own goroutine; the model only reads it on each frame and
// forwards key presses as engine actions.
type Model struct {
	engine  *lighting.Engine
	brand   theme.Brand
	tintHue float64
	tintSat float64
	keys    keyMap
	help    help.Model
	refresh time.Duration
	status  string

	width  int
	height int

	quitting bool
}

// Option configures a Model at construction.
type Option func(*Model)

// WithRefresh sets the redraw interval. Non-positive values keep
// DefaultRefresh.
func WithRefresh(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.refresh = d
		}
	}
}

// WithTint keeps a hue and saturation override across brand changes. Zero
// values keep the preset's own.
func WithTint(hue, sat float64) Option {
	return func(m *Model) {
		m.tintHue = hue
		m.tintSat = sat
	}
}

// NewModel builds a preview tinted with brand over the engine attached to
// ctx. Without one the preview shows the static default light.
func NewModel(ctx context.Context, brand theme.Brand, opts ...Option) Model {
	m := Model{
		engine:  lighting.FromContext(ctx),
		keys:    defaultKeyMap(),
		help:    help.New(),
		refresh: DefaultRefresh,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.brand = brand.WithTint(m.tintHue, m.tintSat)
	return m
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return m.frame()
}

// Brand returns the brand currently tinting the preview.
func (m Model) Brand() theme.Brand {
	return m.brand
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) frame() tea.Cmd {
	return tea.Tick(m.refresh, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *Model) nextBrand() {
	names := theme.Names()
	next := names[0]
	for i, name := range names {
		if name == m.brand.Name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	brand, err := theme.Lookup(next)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.brand = brand.WithTint(m.tintHue, m.tintSat)
	m.status = "brand: " + brand.Label
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	brand, err := cfg.Brand()
	if err != nil {
		m.status = err.Error()
		return
	}
	m.brand = brand
	m.tintHue = cfg.Theme.Hue
	m.tintSat = cfg.Theme.Saturation

	m.engine.SetAnimationSpeed(cfg.Engine.InitialSpeed)
	if cfg.Engine.InitialAnimating {
		m.engine.StartAnimation()
	} else {
		m.engine.StopAnimation()
	}
	m.status = "config reloaded"
}
