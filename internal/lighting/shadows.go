package lighting

import (
	"strconv"

	"github.com/alexisbeaulieu97/lumen/internal/stylevars"
	"github.com/alexisbeaulieu97/lumen/pkg/shadow"
)

// Shadows is a read-only view of the shadow builders at one light angle.
// Every call builds a fresh string.
type Shadows struct {
	angle  float64
	offset shadow.Offset
}

// ShadowsAt returns the view for an arbitrary angle.
func ShadowsAt(angle float64) Shadows {
	angle = shadow.NormalizeAngle(angle)
	return Shadows{angle: angle, offset: shadow.ComputeShadowOffset(angle)}
}

// Angle returns the light angle the view is bound to.
func (s Shadows) Angle() float64 { return s.angle }

// Offset returns the shadow direction.
func (s Shadows) Offset() shadow.Offset { return s.offset }

// PanelShadow builds the raised-surface shadow.
func (s Shadows) PanelShadow(distance, blur float64) string {
	return shadow.PanelShadow(s.offset, distance, blur)
}

// InsetShadow builds the pressed-surface shadow.
func (s Shadows) InsetShadow(distance, blur float64) string {
	return shadow.InsetShadow(s.offset, distance, blur)
}

// LayeredShadow builds the tinted four-layer glass shadow.
func (s Shadows) LayeredShadow(hue, sat float64) string {
	return shadow.LayeredShadow(s.offset, hue, sat)
}

// GlassReflectionEdges builds the glass edge highlights.
func (s Shadows) GlassReflectionEdges() string {
	return shadow.GlassReflectionEdges(s.offset)
}

// GlassBackground builds the glass gradient from the light angle.
func (s Shadows) GlassBackground(hue, sat, angleOffset float64) string {
	return shadow.GlassBackground(s.angle, hue, sat, angleOffset)
}

// GlassBorder builds the glass border colour.
func (s Shadows) GlassBorder(hue, sat float64) string {
	return shadow.GlassBorder(hue, sat)
}

// PanelShadowVar is the style variable holding the panel shadow.
const PanelShadowVar = "--panel-shadow"

// Variables exports every builder, with default geometry and the given tint,
// as CSS custom properties.
func (s Shadows) Variables(hue, sat float64) []stylevars.Var {
	return []stylevars.Var{
		{Name: stylevars.LightAngle, Value: FormatAngle(s.angle)},
		{Name: PanelShadowVar, Value: s.PanelShadow(shadow.DefaultPanelDistance, shadow.DefaultPanelBlur)},
		{Name: "--inset-shadow", Value: s.InsetShadow(shadow.DefaultInsetDistance, shadow.DefaultInsetBlur)},
		{Name: "--glass-shadow", Value: s.LayeredShadow(hue, sat)},
		{Name: "--glass-reflection", Value: s.GlassReflectionEdges()},
		{Name: "--glass-background", Value: s.GlassBackground(hue, sat, shadow.DefaultGlassAngleOffset)},
		{Name: "--glass-border", Value: s.GlassBorder(hue, sat)},
	}
}

// FormatAngle renders an angle the way it is mirrored into style variables.
func FormatAngle(angle float64) string {
	return strconv.FormatFloat(angle, 'f', -1, 64)
}
