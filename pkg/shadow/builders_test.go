package shadow

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPanelShadowDefaultAngle(t *testing.T) {
	t.Parallel()

	got := PanelShadow(ComputeShadowOffset(135), DefaultPanelDistance, DefaultPanelBlur)
	require.Equal(t,
		"-14.1px 14.1px 60px rgba(255, 255, 255, 0.8), 14.1px -14.1px 60px rgba(163, 177, 198, 0.6)",
		got)
}

func TestPanelShadowNoNegativeZero(t *testing.T) {
	t.Parallel()

	got := PanelShadow(ComputeShadowOffset(0), DefaultPanelDistance, DefaultPanelBlur)
	require.Equal(t,
		"20.0px 0.0px 60px rgba(255, 255, 255, 0.8), -20.0px 0.0px 60px rgba(163, 177, 198, 0.6)",
		got)
	require.NotContains(t, got, "-0.0px")
}

func TestInsetShadow(t *testing.T) {
	t.Parallel()

	got := InsetShadow(ComputeShadowOffset(0), DefaultInsetDistance, DefaultInsetBlur)
	require.Equal(t,
		"inset -5.0px 0.0px 15px rgba(163, 177, 198, 0.5), inset 5.0px 0.0px 15px rgba(255, 255, 255, 0.7)",
		got)
}

func TestPanelAndInsetOffsetsAreExactNegations(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		o := ComputeShadowOffset(rng.Float64() * 360)
		distance := rng.Float64() * 50
		blur := rng.Float64() * 80

		panel := splitShadows(PanelShadow(o, distance, blur))
		require.Len(t, panel, 2)
		hl, sh := strings.Fields(panel[0]), strings.Fields(panel[1])
		require.Equal(t, negatePx(sh[0]), hl[0])
		require.Equal(t, negatePx(sh[1]), hl[1])

		inset := splitShadows(InsetShadow(o, distance, blur))
		require.Len(t, inset, 2)
		a, b := strings.Fields(inset[0]), strings.Fields(inset[1])
		require.Equal(t, "inset", a[0])
		require.Equal(t, "inset", b[0])
		require.Equal(t, negatePx(a[1]), b[1])
		require.Equal(t, negatePx(a[2]), b[2])
	}
}

func TestLayeredShadow(t *testing.T) {
	t.Parallel()

	got := LayeredShadow(ComputeShadowOffset(90), DefaultGlassHue, DefaultGlassSaturation)
	want := []string{
		"0.0px -1.5px 1px hsla(175, 21%, 35%, 0.12)",
		"0.0px -3.0px 2px hsla(175, 21%, 35%, 0.1)",
		"0.0px -6.0px 4px hsla(175, 21%, 35%, 0.08)",
		"0.0px -12.0px 8px hsla(175, 21%, 35%, 0.06)",
	}
	if diff := cmp.Diff(want, splitShadows(got)); diff != "" {
		t.Fatalf("LayeredShadow mismatch (-want +got):\n%s", diff)
	}
}

func TestLayeredShadowAlwaysFourLayersSharpToSoft(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		o := Offset{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		layers := splitShadows(LayeredShadow(o, rng.Float64()*360, rng.Float64()*100))
		require.Len(t, layers, 4)

		var blurs []string
		for _, l := range layers {
			blurs = append(blurs, strings.Fields(l)[2])
		}
		require.Equal(t, []string{"1px", "2px", "4px", "8px"}, blurs)
	}
}

func TestGlassLayersSpec(t *testing.T) {
	t.Parallel()

	layers := GlassLayers()
	require.Equal(t, Layer{Distance: 1, Blur: 1, Opacity: 0.12}, layers[0])
	require.Equal(t, Layer{Distance: 8, Blur: 8, Opacity: 0.06}, layers[3])
	for i := 1; i < len(layers); i++ {
		require.Greater(t, layers[i].Blur, layers[i-1].Blur)
		require.Less(t, layers[i].Opacity, layers[i-1].Opacity)
	}

	// Callers get a copy.
	layers[0].Opacity = 1
	require.Equal(t, 0.12, GlassLayers()[0].Opacity)
}

func TestGlassReflectionEdges(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"inset 0 -1px 0 rgba(255, 255, 255, 0.2), inset 1px 0 0 rgba(255, 255, 255, 0.4)",
		GlassReflectionEdges(ComputeShadowOffset(135)))
	require.Equal(t,
		"inset 0 1px 0 rgba(255, 255, 255, 0.6), inset -1px 0 0 rgba(255, 255, 255, 0.15)",
		GlassReflectionEdges(ComputeShadowOffset(315)))
}

func TestGlassReflectionEdgesDependOnSignOnly(t *testing.T) {
	t.Parallel()

	small := GlassReflectionEdges(Offset{X: 0.01, Y: 0.01})
	large := GlassReflectionEdges(Offset{X: 1, Y: 1})
	require.Equal(t, small, large)

	mixed := GlassReflectionEdges(Offset{X: -0.3, Y: 0.9})
	require.Equal(t,
		"inset 0 1px 0 rgba(255, 255, 255, 0.6), inset -1px 0 0 rgba(255, 255, 255, 0.15)",
		mixed)
}

func TestGlassBackgroundTracksLightAngle(t *testing.T) {
	t.Parallel()

	got := GlassBackground(135, DefaultGlassHue, DefaultGlassSaturation, DefaultGlassAngleOffset)
	require.Equal(t,
		"linear-gradient(180deg, hsla(175, 35%, 85%, 0.28) 0%, hsla(175, 35%, 70%, 0.12) 50%, hsla(175, 35%, 78%, 0.2) 100%)",
		got)

	require.True(t, strings.HasPrefix(GlassBackground(300, 10, 20, 45), "linear-gradient(345deg, "))
}

func TestGlassBorder(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hsla(175, 35%, 80%, 0.35)", GlassBorder(175, 35))
	require.Equal(t, "hsla(215.5, 40%, 80%, 0.35)", GlassBorder(215.5, 40))
}

func TestPxRoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0.3px", px(0.25))
	require.Equal(t, "-0.3px", px(-0.25))
	require.Equal(t, "0.0px", px(-0.04))
	require.Equal(t, "12.0px", px(12))
}

// splitShadows splits a shadow list on the commas that are not inside a
// colour function.
func splitShadows(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}

func negatePx(v string) string {
	switch {
	case v == "0.0px":
		return v
	case strings.HasPrefix(v, "-"):
		return strings.TrimPrefix(v, "-")
	default:
		return "-" + v
	}
}
