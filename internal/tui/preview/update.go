package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubble Tea messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if m.quitting {
			return m, nil
		}
		return m, m.frame()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case ConfigReloadedMsg:
		m.applyConfig(msg.Config)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.engine.ToggleAnimation()
	case key.Matches(msg, m.keys.Left):
		m.engine.SetLightAngle(m.engine.Angle() - AngleStep)
	case key.Matches(msg, m.keys.Right):
		m.engine.SetLightAngle(m.engine.Angle() + AngleStep)
	case key.Matches(msg, m.keys.Faster):
		m.engine.SetAnimationSpeed(m.engine.Speed() + SpeedStep)
	case key.Matches(msg, m.keys.Slower):
		m.engine.SetAnimationSpeed(m.engine.Speed() - SpeedStep)
	case key.Matches(msg, m.keys.Reset):
		m.engine.ResetLightAngle()
		m.status = "light reset"
	case key.Matches(msg, m.keys.Brand):
		m.nextBrand()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
