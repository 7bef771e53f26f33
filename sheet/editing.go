package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

// beginEdit opens an editor on at. clear starts from a blank editor (the
// edit began by typing); seed is the key that started it.
//
// A different cell still being edited is committed first.
func (m *Model) beginEdit(at grid.Loc, clear bool, seed tea.Msg) tea.Cmd {
	cell, ok := m.data.At(at)
	if !ok || cell.ReadOnly {
		return nil
	}
	if m.edit.active {
		if m.edit.at == at {
			m.state.SetForceEdit(true)
			return nil
		}
		m.closeEditor(true)
	}

	m.state.BeginEdit(at, clear)

	text := m.cfg.renderers().EffectiveText(cell, at.Row, at.Col)
	initial := text
	if clear {
		initial = ""
	}
	build := m.cfg.Editor
	if cell.Component {
		build = m.cfg.ComponentEditor
	}
	ed, cmd := build(EditorContext{
		Cell:      cell,
		Row:       at.Row,
		Col:       at.Col,
		Initial:   initial,
		Width:     m.columnWidth(at.Col),
		ForceEdit: !clear,
	})
	if ed == nil {
		m.state.StopEdit()
		return cmd
	}
	m.edit = editSession{
		active:    true,
		at:        at,
		editor:    ed,
		initial:   text,
		component: cell.Component,
		forced:    cell.Component && cell.ForceComponent,
	}

	cmds := []tea.Cmd{cmd}
	if seed != nil {
		cmds = append(cmds, m.forwardToEditor(seed))
	} else {
		m.state.SetEditValue(ed.Value())
	}
	return tea.Batch(cmds...)
}

func (m *Model) forwardToEditor(msg tea.Msg) tea.Cmd {
	if !m.edit.active {
		return nil
	}
	var cmd tea.Cmd
	m.edit.editor, cmd = m.edit.editor.Update(msg)
	m.state.SetEditValue(m.edit.editor.Value())
	return cmd
}

// closeEditor leaves edit mode. With commit set, a text edit whose value
// differs from the cell's text is emitted; component cells report through
// CommitMsg instead.
func (m *Model) closeEditor(commit bool) {
	ed := m.edit
	m.edit = editSession{}
	if ed.active && commit && !ed.component {
		if v := ed.editor.Value(); v != ed.initial {
			if mu, ok := grid.PlanEdit(m.data, ed.at, v); ok {
				m.emit(mu)
			}
		}
	}
	m.state.StopEdit()
}

// commitValue finishes the current edit with an explicit value.
func (m *Model) commitValue(v any) {
	if !m.edit.active {
		return
	}
	if mu, ok := grid.PlanEdit(m.data, m.edit.at, v); ok {
		m.emit(mu)
	}
	m.closeEditor(false)
	m.focused = true
}
