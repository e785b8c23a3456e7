package shadow

import "strings"

// Defaults used by consumers that do not pick their own parameters.
const (
	DefaultPanelDistance    = 20.0
	DefaultPanelBlur        = 60.0
	DefaultInsetDistance    = 5.0
	DefaultInsetBlur        = 15.0
	DefaultGlassHue         = 175.0
	DefaultGlassSaturation  = 35.0
	DefaultGlassAngleOffset = 45.0
)

// Neumorphic palette: the highlight is white, the shadow a desaturated gray.
const (
	highlightR, highlightG, highlightB = 255, 255, 255
	shadeR, shadeG, shadeB             = 163, 177, 198
)

// glassVerticalBias stretches glass shadows downward.
const glassVerticalBias = 1.5

// Layer is one entry of the layered glass shadow.
type Layer struct {
	Distance float64
	Blur     float64
	Opacity  float64
}

var glassLayers = [4]Layer{
	{Distance: 1, Blur: 1, Opacity: 0.12},
	{Distance: 2, Blur: 2, Opacity: 0.10},
	{Distance: 4, Blur: 4, Opacity: 0.08},
	{Distance: 8, Blur: 8, Opacity: 0.06},
}

// GlassLayers returns the fixed layer stack, sharpest first.
func GlassLayers() [4]Layer {
	return glassLayers
}

// PanelShadow returns the raised-surface shadow pair: a white highlight offset
// toward the light followed by a gray shadow offset along o.
func PanelShadow(o Offset, distance, blur float64) string {
	sh := o.Scale(distance)
	hl := sh.Inverted()
	return declaration(px(hl.X), px(hl.Y), number(blur)+"px", rgba(highlightR, highlightG, highlightB, 0.8)) +
		", " +
		declaration(px(sh.X), px(sh.Y), number(blur)+"px", rgba(shadeR, shadeG, shadeB, 0.6))
}

// InsetShadow returns the pressed-surface pair: a gray inset shadow along o
// and a white inset highlight mirrored against it.
func InsetShadow(o Offset, distance, blur float64) string {
	sh := o.Scale(distance)
	hl := sh.Inverted()
	return declaration("inset", px(sh.X), px(sh.Y), number(blur)+"px", rgba(shadeR, shadeG, shadeB, 0.5)) +
		", " +
		declaration("inset", px(hl.X), px(hl.Y), number(blur)+"px", rgba(highlightR, highlightG, highlightB, 0.7))
}

// LayeredShadow returns the four-layer tinted shadow used by floating glass
// elements. Saturation is damped to 60% of sat and lightness fixed at 35%.
func LayeredShadow(o Offset, hue, sat float64) string {
	layers := make([]string, 0, len(glassLayers))
	for _, l := range glassLayers {
		layers = append(layers, declaration(
			px(o.X*l.Distance),
			px(o.Y*l.Distance*glassVerticalBias),
			number(l.Blur)+"px",
			hsla(hue, sat*0.6, 35, l.Opacity),
		))
	}
	return strings.Join(layers, ", ")
}

// GlassReflectionEdges returns the inset edge highlights of a glass surface.
// Each axis picks one of two tiers from the sign of the light direction: the
// edge facing the light gets the strong highlight, the other a faint one.
func GlassReflectionEdges(o Offset) string {
	light := o.Inverted()

	vertical := declaration("inset", "0", "-1px", "0", rgba(highlightR, highlightG, highlightB, 0.2))
	if light.Y < 0 {
		vertical = declaration("inset", "0", "1px", "0", rgba(highlightR, highlightG, highlightB, 0.6))
	}

	horizontal := declaration("inset", "-1px", "0", "0", rgba(highlightR, highlightG, highlightB, 0.15))
	if light.X < 0 {
		horizontal = declaration("inset", "1px", "0", "0", rgba(highlightR, highlightG, highlightB, 0.4))
	}

	return vertical + ", " + horizontal
}

// GlassBackground returns the translucent surface gradient. It follows the
// light angle itself rather than the shadow vector; the alpha and lightness
// dip in the middle stop and partially recover at the end.
func GlassBackground(lightAngle, hue, sat, angleOffset float64) string {
	return "linear-gradient(" + number(lightAngle+angleOffset) + "deg, " +
		hsla(hue, sat, 85, 0.28) + " 0%, " +
		hsla(hue, sat, 70, 0.12) + " 50%, " +
		hsla(hue, sat, 78, 0.20) + " 100%)"
}

// GlassBorder returns the border colour for a glass surface.
func GlassBorder(hue, sat float64) string {
	return hsla(hue, sat, 80, 0.35)
}
