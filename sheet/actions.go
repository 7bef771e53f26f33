package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

// navigate moves the single-cell selection from its start by off, skipping
// cells IsCellNavigable rejects. jump wraps horizontal moves across rows.
func (m *Model) navigate(off grid.Offset, jump bool) {
	sel, ok := m.state.Selection()
	if !ok {
		return
	}
	to, ok := grid.FindSelectable(m.data, sel.Start, off, jump, m.cfg.IsCellNavigable)
	if !ok {
		return
	}
	m.closeEditor(true)
	m.state.SetSelection(grid.Single(to))
}

// extend moves the selection end by off. The column is kept inside the
// grid; the row is not.
func (m *Model) extend(off grid.Offset) {
	sel, ok := m.state.Selection()
	if !ok {
		return
	}
	cols := m.data.Cols()
	if cols == 0 {
		return
	}
	end := grid.Loc{
		Row: sel.End.Row + off.Rows,
		Col: clampInt(sel.End.Col+off.Cols, 0, cols-1),
	}
	m.closeEditor(true)
	m.state.SetSelection(grid.Selection{Start: sel.Start, End: end})
}

// clearSelection blanks every writable selected cell. Through the per-cell
// channel the updates are delivered on the next tick.
func (m *Model) clearSelection() tea.Cmd {
	sel, ok := m.state.Selection()
	if !ok {
		return nil
	}
	mu := grid.PlanClear(m.data, sel)
	if m.cfg.OnMutation == nil && !m.cfg.Channels.Configured() {
		m.closeEditor(false)
		return nil
	}
	if m.cfg.OnMutation == nil && !m.cfg.Channels.Batched() {
		return m.deferred(deferredMsg{kind: deferClear, mutation: mu})
	}
	m.emit(mu)
	m.closeEditor(false)
	return nil
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil || m.edit.active {
		return
	}
	sel, ok := m.state.Selection()
	if !ok {
		return
	}
	_ = m.cfg.Clipboard.WriteText(grid.CopyText(m.data, sel, m.cfg.renderers()))
}

func (m *Model) cutSelection() tea.Cmd {
	if m.cfg.Clipboard == nil || m.edit.active {
		return nil
	}
	m.copySelection()
	return m.clearSelection()
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.paste(s)
}

// paste writes text at the selection's top-left corner and moves the
// selection end to the last pasted cell.
func (m *Model) paste(text string) {
	if m.edit.active {
		return
	}
	sel, ok := m.state.Selection()
	if !ok {
		return
	}
	mu := grid.PlanPaste(m.data, sel, m.cfg.ParsePaste(text))
	m.emit(mu)
	m.state.SetSelection(grid.Selection{Start: sel.Start, End: mu.End})
}

// emit delivers one mutation to the host.
func (m *Model) emit(mu grid.Mutation) {
	if mu.IsEmpty() && len(mu.Pasted) == 0 {
		return
	}
	if m.cfg.OnMutation != nil {
		m.cfg.OnMutation(mu)
		return
	}
	m.cfg.Channels.Dispatch(mu)
}

func (m *Model) pointerDown(at grid.Loc, shift, fromHandle bool) {
	if !m.data.Has(at) {
		return
	}
	editing, isEditing := m.state.Editing()
	same := isEditing && editing == at
	if isEditing && !same {
		m.closeEditor(true)
	}

	start, end := at, at
	if sel, ok := m.state.Selection(); ok {
		if shift || fromHandle {
			start = sel.Start
		}
		if fromHandle {
			end = sel.End
		}
	}

	if fromHandle {
		m.state.StartCopydown()
	} else {
		m.state.EndDrag()
		m.state.SetSelecting(!same)
	}
	m.state.SetForceEdit(same)
	m.state.SetSelection(grid.Selection{Start: start, End: end})

	m.focused = true
	m.life.subs.acquire()
}

func (m *Model) pointerOver(at grid.Loc) {
	if m.state.Selecting() {
		if _, editing := m.state.Editing(); !editing {
			if sel, ok := m.state.Selection(); ok {
				m.state.SetSelection(grid.Selection{Start: sel.Start, End: at})
			}
		}
	}
	if m.state.CopydownDragging() {
		if sel, ok := m.state.Selection(); ok {
			t, ok := grid.CopydownTarget(sel, at)
			m.state.SetCopydownTarget(t, ok)
		}
	}
}

// pointerUp applies a pending copydown and ends any drag.
func (m *Model) pointerUp() {
	if !m.life.subs.has(subPointerUp) {
		return
	}
	if m.state.CopydownDragging() {
		t, tok := m.state.CopydownTarget()
		sel, sok := m.state.Selection()
		if tok && sok {
			m.emit(grid.PlanCopydown(m.data, sel, t))
		}
	}
	m.state.EndDrag()
	m.life.subs.releasePointerUp()
}

func (m *Model) doubleClick(at grid.Loc) tea.Cmd {
	if !m.data.Writable(at) {
		return nil
	}
	return m.beginEdit(at, false, nil)
}

func (m *Model) contextMenu(at grid.Loc, mouse tea.MouseMsg) {
	cell, ok := m.data.At(at)
	if !ok || m.cfg.OnContextMenu == nil {
		return
	}
	m.cfg.OnContextMenu(ContextMenuEvent{Mouse: mouse, Cell: cell, Row: at.Row, Col: at.Col})
}

// outsideClick resets the interaction and drops every subscription.
func (m *Model) outsideClick() {
	if !m.life.subs.has(subOutsideClick) {
		return
	}
	m.closeEditor(true)
	m.state.Reset()
	m.life.subs.releaseAll()
}
