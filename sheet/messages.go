package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

// Façade messages for hosts that hit test themselves or embed custom
// editors. Coordinates are grid coordinates, not screen cells.

type PointerDownMsg struct {
	Row, Col int
	Shift    bool
	// FromHandle marks a press on the copydown handle.
	FromHandle bool
}

type PointerOverMsg struct {
	Row, Col int
}

type PointerUpMsg struct{}

type DoubleClickMsg struct {
	Row, Col int
}

type ContextMenuMsg struct {
	Row, Col int
	Mouse    tea.MouseMsg
}

// PasteMsg pastes Text at the selection, as a terminal paste would.
type PasteMsg struct {
	Text string
}

// CommitMsg finishes the current edit with Value. Component editors send it
// to report their result.
type CommitMsg struct {
	Value any
}

// RevertMsg abandons the current edit.
type RevertMsg struct{}

// OutsideClickMsg reports a pointer press outside the component.
type OutsideClickMsg struct{}

type deferredKind uint8

const (
	deferClear deferredKind = iota + 1
	deferNavigate
	deferRevert
)

// deferredMsg carries work postponed to the next update. It is bound to the
// model that scheduled it.
type deferredMsg struct {
	owner    *lifecycle
	kind     deferredKind
	mutation grid.Mutation
	off      grid.Offset
}

func (m Model) deferred(msg deferredMsg) tea.Cmd {
	msg.owner = m.life
	return func() tea.Msg { return msg }
}
