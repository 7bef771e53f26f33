package sheet

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.life.closed {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)

	case PointerDownMsg:
		m.pointerDown(grid.Loc{Row: msg.Row, Col: msg.Col}, msg.Shift, msg.FromHandle)
	case PointerOverMsg:
		m.pointerOver(grid.Loc{Row: msg.Row, Col: msg.Col})
	case PointerUpMsg:
		m.pointerUp()
	case DoubleClickMsg:
		cmd = m.doubleClick(grid.Loc{Row: msg.Row, Col: msg.Col})
	case ContextMenuMsg:
		m.contextMenu(grid.Loc{Row: msg.Row, Col: msg.Col}, msg.Mouse)
	case PasteMsg:
		if m.life.subs.has(subPaste) {
			m.paste(msg.Text)
		}
	case OutsideClickMsg:
		m.outsideClick()

	case CommitMsg:
		m.commitValue(msg.Value)
	case RevertMsg:
		m.closeEditor(false)
		m.focused = true
	case deferredMsg:
		cmd = m.updateDeferred(msg)

	default:
		// Cursor blinks and other editor-owned messages.
		if m.edit.active {
			cmd = m.forwardToEditor(msg)
		}
	}

	m.sync()
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.edit.active {
		return m.updateEditingKey(msg)
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Paste {
		if m.life.subs.has(subPaste) {
			m.paste(string(msg.Runes))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Copy):
		if m.life.subs.has(subCopy) {
			m.copySelection()
		}
		return m, nil
	case key.Matches(msg, km.Cut):
		if m.life.subs.has(subCut) {
			return m, m.cutSelection()
		}
		return m, nil
	case key.Matches(msg, km.Paste):
		if m.life.subs.has(subPaste) {
			m.pasteClipboard()
		}
		return m, nil
	}

	sel, ok := m.state.Selection()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Up):
		m.navigate(grid.Offset{Rows: -1}, false)
	case key.Matches(msg, km.Down):
		m.navigate(grid.Offset{Rows: 1}, false)
	case key.Matches(msg, km.Left):
		m.navigate(grid.Offset{Cols: -1}, false)
	case key.Matches(msg, km.Right):
		m.navigate(grid.Offset{Cols: 1}, false)

	case key.Matches(msg, km.ShiftUp):
		m.extend(grid.Offset{Rows: -1})
	case key.Matches(msg, km.ShiftDown):
		m.extend(grid.Offset{Rows: 1})
	case key.Matches(msg, km.ShiftLeft):
		m.extend(grid.Offset{Cols: -1})
	case key.Matches(msg, km.ShiftRight):
		m.extend(grid.Offset{Cols: 1})

	case key.Matches(msg, km.Tab):
		m.navigate(grid.Offset{Cols: 1}, true)
	case key.Matches(msg, km.ShiftTab):
		m.navigate(grid.Offset{Cols: -1}, true)

	case key.Matches(msg, km.Delete):
		return m, m.clearSelection()

	case key.Matches(msg, km.Enter):
		if m.data.Writable(sel.Start) {
			return m, m.beginEdit(sel.Start, false, nil)
		}

	default:
		if startsEdit(msg) && m.data.Writable(sel.Start) {
			return m, m.beginEdit(sel.Start, true, msg)
		}
	}
	return m, nil
}

// updateEditingKey routes keys while a cell is being edited.
func (m Model) updateEditingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	if m.edit.component {
		cmd := m.forwardToEditor(msg)
		if m.edit.forced || msg.Paste {
			return m, cmd
		}
		// The component sees the key first; the sheet reacts once the
		// component's command has delivered its message.
		var next deferredMsg
		switch {
		case key.Matches(msg, km.Enter):
			next = deferredMsg{kind: deferNavigate, off: grid.Offset{Rows: 1}}
		case key.Matches(msg, km.ReverseEnter):
			next = deferredMsg{kind: deferNavigate, off: grid.Offset{Rows: -1}}
		case key.Matches(msg, km.Tab):
			next = deferredMsg{kind: deferNavigate, off: grid.Offset{Cols: 1}}
		case key.Matches(msg, km.ShiftTab):
			next = deferredMsg{kind: deferNavigate, off: grid.Offset{Cols: -1}}
		case key.Matches(msg, km.Escape):
			next = deferredMsg{kind: deferRevert}
		default:
			return m, cmd
		}
		if cmd == nil {
			return m, m.deferred(next)
		}
		return m, tea.Sequence(cmd, m.deferred(next))
	}

	if msg.Paste {
		return m, m.forwardToEditor(msg)
	}

	typed := !m.state.ForceEdit()
	switch {
	case key.Matches(msg, km.Escape):
		m.closeEditor(false)
	case key.Matches(msg, km.Enter):
		m.commitAndNavigate(grid.Offset{Rows: 1}, true)
	case key.Matches(msg, km.ReverseEnter):
		m.commitAndNavigate(grid.Offset{Rows: -1}, true)
	case key.Matches(msg, km.Tab):
		m.commitAndNavigate(grid.Offset{Cols: 1}, true)
	case key.Matches(msg, km.ShiftTab):
		m.commitAndNavigate(grid.Offset{Cols: -1}, true)

	// An edit started by typing treats arrows as "commit and move"; an
	// explicit edit keeps them for the caret.
	case typed && key.Matches(msg, km.Up):
		m.commitAndNavigate(grid.Offset{Rows: -1}, false)
	case typed && key.Matches(msg, km.Down):
		m.commitAndNavigate(grid.Offset{Rows: 1}, false)
	case typed && key.Matches(msg, km.Left):
		m.commitAndNavigate(grid.Offset{Cols: -1}, false)
	case typed && key.Matches(msg, km.Right):
		m.commitAndNavigate(grid.Offset{Cols: 1}, false)
	case typed && key.Matches(msg, km.ShiftUp):
		m.closeEditor(true)
		m.extend(grid.Offset{Rows: -1})
	case typed && key.Matches(msg, km.ShiftDown):
		m.closeEditor(true)
		m.extend(grid.Offset{Rows: 1})
	case typed && key.Matches(msg, km.ShiftLeft):
		m.closeEditor(true)
		m.extend(grid.Offset{Cols: -1})
	case typed && key.Matches(msg, km.ShiftRight):
		m.closeEditor(true)
		m.extend(grid.Offset{Cols: 1})

	default:
		return m, m.forwardToEditor(msg)
	}
	return m, nil
}

func (m *Model) commitAndNavigate(off grid.Offset, jump bool) {
	m.closeEditor(true)
	m.navigate(off, jump)
}

// startsEdit reports whether a key typed over a cell starts editing it.
func startsEdit(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes || msg.Alt || msg.Paste || len(msg.Runes) == 0 {
		return false
	}
	r := msg.Runes[0]
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r >= 0xA0 && r <= 0xFF:
		return true
	case r == '=' || r == '-' || r == '+' || r == '.':
		return true
	default:
		return unicode.IsLetter(r)
	}
}

func (m *Model) updateDeferred(msg deferredMsg) tea.Cmd {
	if msg.owner != m.life || m.life.closed {
		return nil
	}
	switch msg.kind {
	case deferClear:
		m.emit(msg.mutation)
		m.closeEditor(false)
	case deferNavigate:
		m.closeEditor(false)
		m.navigate(msg.off, true)
		m.focused = true
	case deferRevert:
		m.closeEditor(false)
		m.focused = true
	}
	return nil
}
