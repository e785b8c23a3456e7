package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGaugeRatio(t *testing.T) {
	t.Parallel()

	g := NewGauge(0.1, 5, "#ffffff", "#000000")

	t.Run("maps the range onto unit interval", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0.0, g.Ratio(0.1))
		require.Equal(t, 1.0, g.Ratio(5))
		require.InDelta(t, 0.5, g.Ratio(2.55), 1e-9)
	})

	t.Run("clamps values outside the range", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0.0, g.Ratio(-3))
		require.Equal(t, 1.0, g.Ratio(50))
	})

	t.Run("empty range reads as zero", func(t *testing.T) {
		t.Parallel()
		require.Zero(t, NewGauge(1, 1, "#ffffff", "#000000").Ratio(1))
	})
}

func TestGaugeView(t *testing.T) {
	t.Parallel()

	g := NewGauge(0, 360, "#ffffff", "#000000")
	view := g.View(180, "180°")

	require.Contains(t, view, "180°")
	require.True(t, len(strings.TrimSpace(view)) > len("180°"),
		"expected view to contain a bar in addition to the label")
}
