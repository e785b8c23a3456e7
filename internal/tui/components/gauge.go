// Package components holds small reusable TUI widgets.
package components

import (
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// DefaultGaugeWidth is the bar width used when none is given.
const DefaultGaugeWidth = 24

// Gauge renders a value within [min, max] as a labelled bar.
type Gauge struct {
	bar progress.Model
	min float64
	max float64
}

// NewGauge creates a gauge over [min, max] with a gradient between the two
// hex colours.
func NewGauge(min, max float64, from, to string) Gauge {
	bar := progress.New(progress.WithGradient(from, to), progress.WithoutPercentage())
	bar.Width = DefaultGaugeWidth
	return Gauge{bar: bar, min: min, max: max}
}

// Ratio maps value onto [0, 1], clamping values outside the range.
func (g Gauge) Ratio(value float64) float64 {
	span := g.max - g.min
	if span <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, (value-g.min)/span))
}

// View renders the bar for value followed by label.
func (g Gauge) View(value float64, label string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, g.bar.ViewAs(g.Ratio(value)), " ", label)
}
