package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/lumen/internal/animator"
	"github.com/alexisbeaulieu97/lumen/internal/lighting"
	"github.com/alexisbeaulieu97/lumen/internal/tui/components"
	"github.com/alexisbeaulieu97/lumen/pkg/shadow"
)

var arrows = [8]string{"→", "↘", "↓", "↙", "←", "↖", "↑", "↗"}

// lightArrow points from the panel toward the light. Screen y grows
// downward, as in CSS.
func lightArrow(angle float64) string {
	idx := int(math.Round(shadow.NormalizeAngle(angle)/45)) % len(arrows)
	return arrows[idx]
}

// View renders the current engine state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.engine.Shadows()
	anim := "paused"
	if m.engine.IsAnimating() {
		anim = "running"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("lumen · " + m.brand.Label))
	b.WriteString("\n\n")
	b.WriteString(m.renderPanel(s, anim))
	b.WriteString("\n")
	b.WriteString(m.renderCSS(s))

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderPanel(s lighting.Shadows, anim string) string {
	lit := hslHex(m.brand.Hue, m.brand.Saturation, litLightness)
	dark := hslHex(m.brand.Hue, m.brand.Saturation*0.6, shadowLightness)

	// The light sits opposite the shadow offset.
	light := s.Offset().Inverted()
	top, bottom := dark, lit
	if light.Y < 0 {
		top, bottom = lit, dark
	}
	left, right := dark, lit
	if light.X < 0 {
		left, right = lit, dark
	}

	orbit := components.NewGauge(0, 360, dark, lit)
	speedGauge := components.NewGauge(animator.MinSpeed, animator.MaxSpeed, dark, lit)
	speed := m.engine.Speed()

	rows := []string{
		row("light", orbit.View(s.Angle(), fmt.Sprintf("%s°  %s", lighting.FormatAngle(math.Round(s.Angle()*10)/10), lightArrow(s.Angle())))),
		row("speed", speedGauge.View(speed, fmt.Sprintf("%.2fx", speed))),
		row("motion", anim),
		row("offset", fmt.Sprintf("%+.2f, %+.2f", s.Offset().X, s.Offset().Y)),
		row("tint", swatch(lit)+" "+swatch(dark)),
	}

	return panelStyle.
		BorderTopForeground(lipgloss.Color(top)).
		BorderBottomForeground(lipgloss.Color(bottom)).
		BorderLeftForeground(lipgloss.Color(left)).
		BorderRightForeground(lipgloss.Color(right)).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderCSS(s lighting.Shadows) string {
	vars := s.Variables(m.brand.Hue, m.brand.Saturation)
	lines := make([]string, 0, len(vars))
	for _, v := range vars {
		line := fmt.Sprintf("%s: %s", v.Name, v.Value)
		if m.width > 0 && lipgloss.Width(line) > m.width {
			line = truncate(line, m.width)
		}
		lines = append(lines, cssStyle.Render(line))
	}
	return strings.Join(lines, "\n") + "\n"
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
