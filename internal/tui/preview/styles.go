package preview

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	cssStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).MarginTop(1)
	footerStyle = lipgloss.NewStyle().MarginTop(1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(1, 3)
)

// Lightness percentages of the lit and shadowed panel edges, as in the
// glass highlight and layered shadow.
const (
	litLightness    = 85.0
	shadowLightness = 35.0
)

// hslHex converts CSS-style hue (degrees), saturation and lightness
// (percent) to a terminal hex colour.
func hslHex(hue, sat, light float64) string {
	return colorful.Hsl(hue, clampUnit(sat/100), clampUnit(light/100)).Clamped().Hex()
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
