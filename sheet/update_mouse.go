package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheel(msg) {
		var cmd tea.Cmd
		if m.mouseInBounds(msg.X, msg.Y) {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if !m.mouseInBounds(msg.X, msg.Y) {
			m.outsideClick()
			return m, nil
		}
		h, ok := m.hitTest(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			m.pointerDown(h.loc, msg.Shift, h.handle)
			if !h.handle && m.isDoubleClick(h.loc) {
				return m, m.doubleClick(h.loc)
			}
		case tea.MouseButtonRight:
			m.contextMenu(h.loc, msg)
		}

	case tea.MouseActionMotion:
		if h, ok := m.hitTest(msg.X, msg.Y); ok {
			m.pointerOver(h.loc)
		}

	case tea.MouseActionRelease:
		m.pointerUp()
	}
	return m, nil
}

// isDoubleClick records a press at l and reports whether it completes a
// double click.
func (m *Model) isDoubleClick(l grid.Loc) bool {
	now := m.now()
	last := m.lastPress
	if last.ok && last.at == l && now.Sub(last.when) <= m.cfg.DoubleClickInterval {
		m.lastPress = press{}
		return true
	}
	m.lastPress = press{at: l, when: now, ok: true}
	return false
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}
